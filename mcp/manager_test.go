package mcp

import (
	"context"
	"errors"
	"testing"
)

func TestResolveExplicitName(t *testing.T) {
	m := NewManager(testConfig("", readOnlyProfile("crm"), readOnlyProfile("erp")), &fakeDriver{})

	name, err := m.Resolve("erp")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if name != "erp" {
		t.Errorf("Resolve = %q, want %q", name, "erp")
	}
}

func TestResolveUnknownName(t *testing.T) {
	m := NewManager(testConfig("", readOnlyProfile("crm")), &fakeDriver{})

	_, err := m.Resolve("missing")
	if !errors.Is(err, ErrUnknownProfile) {
		t.Errorf("Resolve error = %v, want ErrUnknownProfile", err)
	}
}

func TestResolveConfiguredDefault(t *testing.T) {
	m := NewManager(testConfig("erp", readOnlyProfile("crm"), readOnlyProfile("erp")), &fakeDriver{})

	name, err := m.Resolve("")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if name != "erp" {
		t.Errorf("Resolve = %q, want %q", name, "erp")
	}
}

func TestResolveSoleProfile(t *testing.T) {
	m := NewManager(testConfig("", readOnlyProfile("crm")), &fakeDriver{})

	name, err := m.Resolve("")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if name != "crm" {
		t.Errorf("Resolve = %q, want %q", name, "crm")
	}
}

func TestResolveMisconfiguredDefault(t *testing.T) {
	m := NewManager(testConfig("ghost", readOnlyProfile("crm")), &fakeDriver{})

	_, err := m.Resolve("")
	if !errors.Is(err, ErrUnknownProfile) {
		t.Errorf("Resolve error = %v, want ErrUnknownProfile", err)
	}
}

func TestResolveAmbiguousDefault(t *testing.T) {
	m := NewManager(testConfig("",
		readOnlyProfile("crm"), readOnlyProfile("erp"), readOnlyProfile("dw")), &fakeDriver{})

	_, err := m.Resolve("")
	if !errors.Is(err, ErrAmbiguousDefault) {
		t.Errorf("Resolve error = %v, want ErrAmbiguousDefault", err)
	}
}

func TestAcquireReturnsSameConnection(t *testing.T) {
	conn := &fakeConn{}
	driver := &fakeDriver{conns: []*fakeConn{conn}}
	m := NewManager(testConfig("", readOnlyProfile("crm")), driver)

	first, _, err := m.Acquire(context.Background(), "crm")
	if err != nil {
		t.Fatalf("first Acquire returned error: %v", err)
	}
	second, _, err := m.Acquire(context.Background(), "crm")
	if err != nil {
		t.Fatalf("second Acquire returned error: %v", err)
	}

	if first != second {
		t.Error("expected the same live connection on repeated acquire")
	}
	if len(driver.connStrs) != 1 {
		t.Errorf("driver connected %d times, want 1", len(driver.connStrs))
	}
}

func TestAcquireReplacesStaleConnection(t *testing.T) {
	stale := &fakeConn{}
	fresh := &fakeConn{}
	driver := &fakeDriver{conns: []*fakeConn{stale, fresh}}
	m := NewManager(testConfig("", readOnlyProfile("crm")), driver)

	first, _, err := m.Acquire(context.Background(), "crm")
	if err != nil {
		t.Fatalf("first Acquire returned error: %v", err)
	}

	stale.failProbe = true
	second, _, err := m.Acquire(context.Background(), "crm")
	if err != nil {
		t.Fatalf("second Acquire returned error: %v", err)
	}

	if first == second {
		t.Error("expected a new connection after probe failure")
	}
	if stale.closeCount != 1 {
		t.Errorf("stale connection closed %d times, want 1", stale.closeCount)
	}
}

func TestAcquireWrapsConnectError(t *testing.T) {
	driver := &fakeDriver{connectErr: errors.New("network unreachable")}
	m := NewManager(testConfig("", readOnlyProfile("crm")), driver)

	_, _, err := m.Acquire(context.Background(), "crm")
	if !errors.Is(err, ErrConnectionFailed) {
		t.Errorf("Acquire error = %v, want ErrConnectionFailed", err)
	}
}

func TestAcquirePassesAutocommitQuirk(t *testing.T) {
	profile := readOnlyProfile("sage100")
	profile.RequiresExplicitAutocommit = true
	driver := &fakeDriver{conns: []*fakeConn{{}}}
	m := NewManager(testConfig("", profile), driver)

	if _, _, err := m.Acquire(context.Background(), "sage100"); err != nil {
		t.Fatalf("Acquire returned error: %v", err)
	}

	if len(driver.opts) != 1 || !driver.opts[0].Autocommit {
		t.Error("expected explicit autocommit in connect options")
	}
}

func TestAcquirePassesAssembledConnectionString(t *testing.T) {
	profile := &ConnectionProfile{
		Name:     "crm",
		Driver:   "SQL Server",
		Server:   "db01",
		Database: "crm",
		Username: "reader",
		Password: "secret",
		ReadOnly: true,
	}
	driver := &fakeDriver{conns: []*fakeConn{{}}}
	m := NewManager(testConfig("", profile), driver)

	if _, _, err := m.Acquire(context.Background(), "crm"); err != nil {
		t.Fatalf("Acquire returned error: %v", err)
	}

	want := "Driver={SQL Server};Server=db01;Database=crm;UID=reader;PWD=secret"
	if driver.connStrs[0] != want {
		t.Errorf("connection string = %q, want %q", driver.connStrs[0], want)
	}
}

func TestCloseAll(t *testing.T) {
	crm := &fakeConn{}
	erp := &fakeConn{}
	driver := &fakeDriver{conns: []*fakeConn{crm, erp}}
	m := NewManager(testConfig("", readOnlyProfile("crm"), readOnlyProfile("erp")), driver)

	if _, _, err := m.Acquire(context.Background(), "crm"); err != nil {
		t.Fatalf("Acquire crm returned error: %v", err)
	}
	if _, _, err := m.Acquire(context.Background(), "erp"); err != nil {
		t.Fatalf("Acquire erp returned error: %v", err)
	}

	m.CloseAll()
	m.CloseAll() // idempotent

	if crm.closeCount != 1 || erp.closeCount != 1 {
		t.Errorf("close counts = %d, %d, want 1, 1", crm.closeCount, erp.closeCount)
	}

	// Next acquire reconnects
	if _, _, err := m.Acquire(context.Background(), "crm"); err != nil {
		t.Fatalf("Acquire after CloseAll returned error: %v", err)
	}
	if len(driver.connStrs) != 3 {
		t.Errorf("driver connected %d times, want 3", len(driver.connStrs))
	}
}
