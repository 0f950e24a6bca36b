package sqlite

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
	"github.com/sqlshift/sqlshift/internal/constants"
	"github.com/sqlshift/sqlshift/internal/util"
)

type Config struct {
	Path string `mapstructure:"path"`
	// Table overrides the revision table name.
	Table string `mapstructure:"table"`
}

// ConfigFromMap decodes a loose config map into Config.
func ConfigFromMap(m map[string]interface{}) (Config, error) {
	var c Config
	if err := mapstructure.Decode(m, &c); err != nil {
		return Config{}, fmt.Errorf("decode sqlite config: %w", err)
	}
	return c, nil
}

func (c Config) table() string {
	return util.TrimWithDefault(c.Table, constants.RevisionTable)
}
