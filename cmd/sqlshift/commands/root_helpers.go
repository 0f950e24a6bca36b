package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"github.com/sqlshift/sqlshift/cmd/sqlshift/config"
)

// loadConfig reads the config file named by the viper "config" key and
// applies its logging settings.
func loadConfig(v *viper.Viper) (*config.ConfigDoc, error) {
	path := strings.TrimSpace(v.GetString("config"))
	if path == "" {
		return nil, fmt.Errorf("no config file given (use --config or SQLSHIFT_CONFIG)")
	}
	var doc config.ConfigDoc
	if err := doc.Load(path); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := doc.SetupLogging(); err != nil {
		return nil, err
	}
	return &doc, nil
}
