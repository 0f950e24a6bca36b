package database

import "fmt"

// DefaultName is the name of the implicit database used when no
// multi-database configuration exists.
const DefaultName = ""

// Database binds a logical name to a migration-script directory and a
// connection target. Name is empty for the single-database layout. Options
// carries dialect-specific connection settings (host, port, user, table
// override) as an alternative to a url.
type Database struct {
	Name       string                 `mapstructure:"name" yaml:"name"`
	MigrateDir string                 `mapstructure:"migrate_dir" yaml:"migrate_dir"`
	URL        string                 `mapstructure:"url" yaml:"url"`
	Dialect    string                 `mapstructure:"dialect" yaml:"dialect"`
	Options    map[string]interface{} `mapstructure:"options" yaml:"options"`
}

// ConfigurationError reports a bad database selection or setup.
type ConfigurationError struct {
	Database string
	Reason   string
}

func (e *ConfigurationError) Error() string {
	if e.Database != "" {
		return fmt.Sprintf("database %q: %s", e.Database, e.Reason)
	}
	return e.Reason
}

// SelectNames narrows configured database names to the ones an operation
// applies to. With no request it returns all configured names in
// declaration order, or the unnamed default when nothing is configured.
// A requested name must be configured.
func SelectNames(configured []string, requested string) ([]string, error) {
	if requested == "" {
		if len(configured) == 0 {
			return []string{DefaultName}, nil
		}
		out := make([]string, len(configured))
		copy(out, configured)
		return out, nil
	}
	for _, name := range configured {
		if name == requested {
			return []string{requested}, nil
		}
	}
	return nil, &ConfigurationError{
		Database: requested,
		Reason:   fmt.Sprintf("not found in configuration (configured: %v)", configured),
	}
}

// Select applies SelectNames to full database entries, preserving
// declaration order. When nothing is configured the fallback entry is
// returned as the unnamed default.
func Select(configured []Database, fallback Database, requested string) ([]Database, error) {
	names := make([]string, 0, len(configured))
	for _, db := range configured {
		names = append(names, db.Name)
	}
	selected, err := SelectNames(names, requested)
	if err != nil {
		return nil, err
	}
	if len(configured) == 0 {
		fallback.Name = DefaultName
		return []Database{fallback}, nil
	}
	out := make([]Database, 0, len(selected))
	for _, name := range selected {
		for _, db := range configured {
			if db.Name == name {
				out = append(out, db)
				break
			}
		}
	}
	return out, nil
}
