package mcp

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// ConnectionProfile describes how to reach one database. Profiles are
// immutable once loaded; the connection manager references them by name.
type ConnectionProfile struct {
	Name             string
	ConnectionString string
	DSN              string
	Driver           string
	Server           string
	Database         string
	Username         string
	Password         string
	Params           map[string]string

	// ReadOnly rejects mutating statements before they reach the driver
	ReadOnly bool

	// RequiresExplicitAutocommit marks driver families (ProvideX/Sage100)
	// that need autocommit passed explicitly at connect time
	RequiresExplicitAutocommit bool
}

// BuildConnectionString returns the raw connection string when one is
// configured, otherwise assembles one from the profile components in a
// fixed order: DSN, Driver, Server, Database, UID, PWD, extra parameters.
func (p *ConnectionProfile) BuildConnectionString() string {
	if p.ConnectionString != "" {
		return p.ConnectionString
	}

	var parts []string
	if p.DSN != "" {
		parts = append(parts, "DSN="+p.DSN)
	}
	if p.Driver != "" {
		parts = append(parts, "Driver={"+p.Driver+"}")
	}
	if p.Server != "" {
		parts = append(parts, "Server="+p.Server)
	}
	if p.Database != "" {
		parts = append(parts, "Database="+p.Database)
	}
	if p.Username != "" {
		parts = append(parts, "UID="+p.Username)
	}
	if p.Password != "" {
		parts = append(parts, "PWD="+p.Password)
	}

	keys := make([]string, 0, len(p.Params))
	for key := range p.Params {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		parts = append(parts, key+"="+p.Params[key])
	}

	return strings.Join(parts, ";")
}

// ServerLimits holds the global query limits
type ServerLimits struct {
	MaxRows int
	Timeout time.Duration
}

// Config is the resolved server configuration: named connection profiles
// plus global limits
type Config struct {
	Connections       map[string]*ConnectionProfile
	DefaultConnection string
	Limits            ServerLimits
}

// Validate fails fast when the designated default does not name an
// existing profile
func (c *Config) Validate() error {
	if c.DefaultConnection == "" {
		return nil
	}
	if _, ok := c.Connections[c.DefaultConnection]; !ok {
		return fmt.Errorf("default connection %q not found in configured connections", c.DefaultConnection)
	}
	return nil
}

// detectAutocommitQuirk reports whether the profile targets a driver family
// known to require explicit autocommit at connect time. The heuristic keys
// off the assembled connection string and the profile name.
func detectAutocommitQuirk(name, connStr string) bool {
	return strings.Contains(strings.ToUpper(connStr), "PROVIDEX") ||
		strings.EqualFold(name, "SAGE100")
}
