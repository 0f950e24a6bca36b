package postgresql

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
	"github.com/sqlshift/sqlshift/internal/constants"
	"github.com/sqlshift/sqlshift/internal/util"
)

type Config struct {
	DSN      string `mapstructure:"dsn"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
	// Table overrides the revision table name.
	Table string `mapstructure:"table"`
}

// ConfigFromMap decodes a loose config map into Config.
func ConfigFromMap(m map[string]interface{}) (Config, error) {
	var c Config
	if err := mapstructure.Decode(m, &c); err != nil {
		return Config{}, fmt.Errorf("decode postgresql config: %w", err)
	}
	return c, nil
}

// ToDSN prefers an explicit DSN and otherwise builds one from components.
func (c Config) ToDSN() string {
	dsn, hasDSN := util.TrimEmptyCheck(c.DSN)
	if hasDSN {
		return dsn
	}
	host, hasHost := util.TrimEmptyCheck(c.Host)
	if !hasHost {
		return ""
	}
	port := c.Port
	if port == 0 {
		port = constants.DefaultPostgresPort
	}
	ssl := util.TrimWithDefault(c.SSLMode, constants.DefaultPostgresSSLMode)
	fields := util.TrimSpaceFields(c.User, c.Password, c.DBName)
	user, password, dbname := fields[0], fields[1], fields[2]
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		user, password, host, port, dbname, ssl,
	)
}

func (c Config) table() string {
	return util.TrimWithDefault(c.Table, constants.RevisionTable)
}
