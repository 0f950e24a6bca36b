package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sqlshift/sqlshift/internal/common"
	"github.com/sqlshift/sqlshift/internal/database"
	"github.com/sqlshift/sqlshift/internal/util"
	"github.com/sqlshift/sqlshift/pkg/plan"
	"gopkg.in/yaml.v3"
)

type LoggingConfig struct {
	Level         string `mapstructure:"level" yaml:"level"`                   // error, warn, info, debug
	Format        string `mapstructure:"format" yaml:"format"`                 // text, json
	MaskSensitive *bool  `mapstructure:"mask_sensitive" yaml:"mask_sensitive"` // enable/disable DSN masking
}

// ConfigDoc is the on-disk configuration. The top-level migrate_dir, dialect
// and url describe the single-database layout; databases, when present,
// overrides them with named entries.
type ConfigDoc struct {
	MigrateDir string              `mapstructure:"migrate_dir" yaml:"migrate_dir"`
	Dialect    string              `mapstructure:"dialect" yaml:"dialect"`
	URL        string              `mapstructure:"url" yaml:"url"`
	Databases  []database.Database `mapstructure:"databases" yaml:"databases"`
	Logging    LoggingConfig       `mapstructure:"logging" yaml:"logging"`
}

func (c *ConfigDoc) Load(path string) error {
	clean := filepath.Clean(path)
	// Ensure path points to a regular file to avoid opening directories/special files
	if info, statErr := os.Stat(clean); statErr != nil || !info.Mode().IsRegular() {
		if statErr != nil {
			return statErr
		}
		return fmt.Errorf("not a regular file: %s", clean)
	}
	// #nosec G304 -- config path is provided intentionally by the user/CI; cleaned and validated above
	f, err := os.Open(clean)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	dec := yaml.NewDecoder(f)
	if err := dec.Decode(c); err != nil {
		return err
	}
	c.applyDefaults()
	return c.validate()
}

func (c *ConfigDoc) applyDefaults() {
	if c.MigrateDir == "" {
		c.MigrateDir = "./migrations"
	}
	if c.Dialect == "" {
		c.Dialect = "postgresql"
	}
	for i := range c.Databases {
		if c.Databases[i].Dialect == "" {
			c.Databases[i].Dialect = c.Dialect
		}
		if c.Databases[i].MigrateDir == "" {
			c.Databases[i].MigrateDir = filepath.Join(c.MigrateDir, c.Databases[i].Name)
		}
	}
}

func (c *ConfigDoc) validate() error {
	for i, db := range c.Databases {
		if _, ok := util.TrimEmptyCheck(db.Name); !ok {
			return &database.ConfigurationError{Reason: fmt.Sprintf("databases[%d]: missing name", i)}
		}
	}
	return nil
}

// Planner builds the migration planner for this configuration.
func (c *ConfigDoc) Planner() *plan.Planner {
	return &plan.Planner{
		Databases: c.Databases,
		Fallback: database.Database{
			MigrateDir: c.MigrateDir,
			URL:        c.URL,
			Dialect:    c.Dialect,
		},
	}
}

// Targets resolves the databases an invocation applies to.
func (c *ConfigDoc) Targets(requested string) ([]database.Database, error) {
	p := c.Planner()
	return database.Select(p.Databases, p.Fallback, requested)
}

func (c *ConfigDoc) parseLogLevel() (common.LogLevel, error) {
	switch util.TrimAndLower(c.Logging.Level) {
	case "error":
		return common.LogLevelError, nil
	case "warn", "warning":
		return common.LogLevelWarn, nil
	case "info", "":
		return common.LogLevelInfo, nil
	case "debug":
		return common.LogLevelDebug, nil
	default:
		return common.LogLevelInfo, fmt.Errorf("invalid logging level: %s (valid: error, warn, info, debug)", c.Logging.Level)
	}
}

// SetupLogging configures the global logger based on config settings
func (c *ConfigDoc) SetupLogging() error {
	level, err := c.parseLogLevel()
	if err != nil {
		return err
	}

	var logger *common.Logger
	format := util.TrimAndLower(c.Logging.Format)
	switch format {
	case "json":
		logger = common.NewJSONLogger(level)
	case "text", "":
		logger = common.NewLogger(level)
	default:
		return fmt.Errorf("invalid logging format: %s (valid: text, json)", c.Logging.Format)
	}

	maskingEnabled := true
	if c.Logging.MaskSensitive != nil {
		maskingEnabled = *c.Logging.MaskSensitive
	}
	logger.EnableMasking(maskingEnabled)

	common.SetDefaultLogger(logger)

	logger.Debug("logging configured",
		"level", util.TrimWithDefault(util.TrimAndLower(c.Logging.Level), "info"),
		"format", util.TrimWithDefault(format, "text"),
		"mask_sensitive", maskingEnabled)

	return nil
}
