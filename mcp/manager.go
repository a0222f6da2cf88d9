package mcp

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Manager owns the live physical connections, keyed by profile name. It
// establishes connections lazily, re-validates them with a trivial probe
// before reuse, and replaces stale handles transparently.
//
// Invariant: at most one live connection exists per profile name.
type Manager struct {
	mu          sync.Mutex
	profiles    map[string]*ConnectionProfile
	defaultName string
	limits      ServerLimits
	driver      Driver
	live        map[string]Conn
}

// NewManager builds a manager over the configured profiles, connecting
// through the given driver
func NewManager(cfg *Config, driver Driver) *Manager {
	return &Manager{
		profiles:    cfg.Connections,
		defaultName: cfg.DefaultConnection,
		limits:      cfg.Limits,
		driver:      driver,
		live:        make(map[string]Conn),
	}
}

// Limits returns the global query limits
func (m *Manager) Limits() ServerLimits {
	return m.limits
}

// DefaultName returns the configured default profile name, empty if none
func (m *Manager) DefaultName() string {
	return m.defaultName
}

// ProfileNames lists the configured profile names, sorted
func (m *Manager) ProfileNames() []string {
	names := make([]string, 0, len(m.profiles))
	for name := range m.profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve maps an optional profile name to a configured one: explicit name
// first, then the configured default, then the sole profile when exactly
// one exists.
func (m *Manager) Resolve(name string) (string, error) {
	if name != "" {
		if _, ok := m.profiles[name]; !ok {
			return "", fmt.Errorf("%w: %q", ErrUnknownProfile, name)
		}
		return name, nil
	}
	if m.defaultName != "" {
		if _, ok := m.profiles[m.defaultName]; !ok {
			return "", fmt.Errorf("%w: %q", ErrUnknownProfile, m.defaultName)
		}
		return m.defaultName, nil
	}
	if len(m.profiles) == 1 {
		for sole := range m.profiles {
			return sole, nil
		}
	}
	return "", ErrAmbiguousDefault
}

// Acquire returns a live connection for the named profile (or the default),
// creating or replacing the physical handle as needed. The returned profile
// is the resolved one; callers use it for policy decisions.
func (m *Manager) Acquire(ctx context.Context, name string) (Conn, *ConnectionProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	resolved, err := m.Resolve(name)
	if err != nil {
		return nil, nil, err
	}
	profile := m.profiles[resolved]

	if conn, ok := m.live[resolved]; ok {
		if m.probe(ctx, conn) == nil {
			return conn, profile, nil
		}
		// Stale handle: close and replace
		conn.Close()
		delete(m.live, resolved)
	}

	conn, err := m.driver.Connect(ctx, profile.BuildConnectionString(), ConnectOptions{
		DriverName: profile.Driver,
		Timeout:    m.limits.Timeout,
		Autocommit: profile.RequiresExplicitAutocommit,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("%w to %q: %v", ErrConnectionFailed, resolved, err)
	}

	m.live[resolved] = conn
	return conn, profile, nil
}

// probe re-validates a cached connection with a trivial statement
func (m *Manager) probe(ctx context.Context, conn Conn) error {
	rows, err := conn.Query(ctx, probeStatement)
	if err != nil {
		return err
	}
	return rows.Close()
}

// CloseAll closes every live connection, swallowing individual close
// errors. Safe to call multiple times; invoked on shutdown.
func (m *Manager) CloseAll() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, conn := range m.live {
		conn.Close()
	}
	m.live = make(map[string]Conn)
}
