package mcp

import (
	"context"
	"errors"
	"io"
)

// ConnectionStatus summarizes a connection test. Optional fields are empty
// when the engine or driver could not report them.
type ConnectionStatus struct {
	Status         string `json:"status"`
	ConnectionName string `json:"connection_name,omitempty"`
	ServerVersion  string `json:"server_version,omitempty"`
	DriverName     string `json:"driver_name,omitempty"`
	DriverVersion  string `json:"driver_version,omitempty"`
	DatabaseName   string `json:"database_name,omitempty"`
	DBMSName       string `json:"dbms_name,omitempty"`
	DBMSVersion    string `json:"dbms_version,omitempty"`
	Error          string `json:"error,omitempty"`
}

// Test acquires the named connection and reports its status. It never
// fails: any error during acquisition comes back inside the status record.
func (m *Manager) Test(ctx context.Context, name string) ConnectionStatus {
	resolved, err := m.Resolve(name)
	if err != nil {
		// Name the connection that was attempted, falling back to the
		// configured default when the caller gave none
		if name == "" {
			name = m.defaultName
		}
		return ConnectionStatus{Status: "error", ConnectionName: name, Error: err.Error()}
	}

	conn, _, err := m.Acquire(ctx, name)
	if err != nil {
		return ConnectionStatus{Status: "error", ConnectionName: resolved, Error: err.Error()}
	}

	status := ConnectionStatus{Status: "connected", ConnectionName: resolved}

	// Best effort: not all engines support a version query
	if version, err := fetchServerVersion(ctx, conn); err == nil {
		status.ServerVersion = version
	}

	info := conn.Info(ctx)
	status.DriverName = orUnknown(info.DriverName)
	status.DriverVersion = orUnknown(info.DriverVersion)
	status.DatabaseName = orUnknown(info.DatabaseName)
	status.DBMSName = orUnknown(info.DBMSName)
	status.DBMSVersion = orUnknown(info.DBMSVersion)
	return status
}

func fetchServerVersion(ctx context.Context, conn Conn) (string, error) {
	rows, err := conn.Query(ctx, versionStatement)
	if err != nil {
		return "", err
	}
	defer rows.Close()

	row, err := rows.Next()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", io.ErrUnexpectedEOF
		}
		return "", err
	}
	if len(row) == 0 {
		return "", io.ErrUnexpectedEOF
	}
	return stringCell(row[0]), nil
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}
