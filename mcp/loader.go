package mcp

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"gopkg.in/ini.v1"
)

// LoadConfig reads the server configuration from an INI or YAML file.
// Path resolution order: explicit argument, ODBC_MCP_CONFIG environment
// variable, ./config/config.ini.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(configPathEnv)
	}
	if path == "" {
		path = defaultConfigPath
	}

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("configuration file not found: %s", path)
	}

	var cfg *Config
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json", ".toml":
		cfg, err = loadViperConfig(path)
	default:
		cfg, err = loadINIConfig(path)
	}
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadINIConfig parses the original configuration format: a SERVER section
// with global settings, every other section a connection profile.
func loadINIConfig(path string) (*Config, error) {
	file, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := newConfig()
	for _, section := range file.Sections() {
		name := section.Name()
		if name == ini.DefaultSection {
			continue
		}

		raw := make(map[string]interface{}, len(section.Keys()))
		for key, value := range section.KeysHash() {
			raw[strings.ToLower(key)] = value
		}

		if strings.EqualFold(name, "SERVER") {
			applyServerSettings(cfg, raw)
			continue
		}
		cfg.Connections[name] = parseProfile(name, raw)
	}
	return cfg, nil
}

// loadViperConfig parses the structured layout: a server mapping plus a
// connections mapping keyed by profile name. Viper lowercases mapping keys,
// so profile names and the configured default are normalized to lower case
// in this format.
func loadViperConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := newConfig()
	applyServerSettings(cfg, v.GetStringMap("server"))
	cfg.DefaultConnection = strings.ToLower(cfg.DefaultConnection)

	for name, raw := range v.GetStringMap("connections") {
		fields, ok := raw.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("connection %q: expected a mapping of settings", name)
		}
		cfg.Connections[name] = parseProfile(name, fields)
	}
	return cfg, nil
}

func newConfig() *Config {
	return &Config{
		Connections: make(map[string]*ConnectionProfile),
		Limits: ServerLimits{
			MaxRows: DefaultMaxRows,
			Timeout: DefaultTimeout,
		},
	}
}

func applyServerSettings(cfg *Config, raw map[string]interface{}) {
	if v, ok := raw["default_connection"]; ok {
		cfg.DefaultConnection = cast.ToString(v)
	}
	if v, ok := raw["max_rows"]; ok {
		if n := cast.ToInt(v); n > 0 {
			cfg.Limits.MaxRows = n
		}
	}
	if v, ok := raw["timeout"]; ok {
		if n := cast.ToInt(v); n > 0 {
			cfg.Limits.Timeout = time.Duration(n) * time.Second
		}
	}
}

// parseProfile builds a connection profile from a settings map. Unrecognized
// keys become extra connection string parameters. Empty strings count as
// unset, matching the original configuration semantics.
func parseProfile(name string, raw map[string]interface{}) *ConnectionProfile {
	profile := &ConnectionProfile{
		Name:     name,
		ReadOnly: true,
		Params:   make(map[string]string),
	}

	autocommitSet := false
	for key, value := range raw {
		text := cast.ToString(value)
		switch strings.ToLower(key) {
		case "connection_string":
			profile.ConnectionString = text
		case "dsn":
			profile.DSN = text
		case "driver":
			profile.Driver = text
		case "server":
			profile.Server = text
		case "database":
			profile.Database = text
		case "username":
			profile.Username = text
		case "password":
			profile.Password = text
		case "readonly":
			profile.ReadOnly = parseBoolFlag(text, true)
		case "autocommit":
			profile.RequiresExplicitAutocommit = parseBoolFlag(text, false)
			autocommitSet = true
		default:
			if text != "" {
				profile.Params[key] = text
			}
		}
	}

	if !autocommitSet {
		profile.RequiresExplicitAutocommit = detectAutocommitQuirk(name, profile.BuildConnectionString())
	}
	return profile
}

func parseBoolFlag(value string, defaultVal bool) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "yes", "1", "on":
		return true
	case "false", "no", "0", "off":
		return false
	default:
		return defaultVal
	}
}
