package mcp

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/ini.v1"
)

// SystemDataSources enumerates the DSNs registered on the system by reading
// the odbc.ini registry files. Files are consulted in order; the first entry
// for a name wins. A missing registry yields an empty list, not an error.
func SystemDataSources() ([]DataSource, error) {
	seen := make(map[string]DataSource)

	for _, path := range dsnRegistryPaths() {
		file, err := ini.Load(path)
		if err != nil {
			continue
		}
		for _, section := range file.Sections() {
			name := section.Name()
			if name == ini.DefaultSection || strings.EqualFold(name, "ODBC Data Sources") {
				continue
			}
			if _, ok := seen[name]; ok {
				continue
			}
			driver := ""
			for key, value := range section.KeysHash() {
				if strings.EqualFold(key, "Driver") {
					driver = value
					break
				}
			}
			seen[name] = DataSource{Name: name, Driver: driver}
		}
	}

	dsns := make([]DataSource, 0, len(seen))
	for _, dsn := range seen {
		dsns = append(dsns, dsn)
	}
	sort.Slice(dsns, func(i, j int) bool { return dsns[i].Name < dsns[j].Name })
	return dsns, nil
}

func dsnRegistryPaths() []string {
	var paths []string
	if env := os.Getenv("ODBCINI"); env != "" {
		paths = append(paths, env)
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".odbc.ini"))
	}
	if sys := os.Getenv("ODBCSYSINI"); sys != "" {
		paths = append(paths, filepath.Join(sys, "odbc.ini"))
	}
	paths = append(paths, "/etc/odbc.ini")
	return paths
}
