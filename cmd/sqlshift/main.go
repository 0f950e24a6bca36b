package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/sqlshift/sqlshift/cmd/sqlshift/commands"
	"github.com/sqlshift/sqlshift/internal/common"
)

var rootCmd = &cobra.Command{
	Use:   "sqlshift",
	Short: "Plan and render database schema migrations for CI pipelines",
}

func init() {
	// Defaults
	v := viper.GetViper()
	v.SetDefault("config", "./config/sqlshift.yaml")
	v.SetDefault("database", "")
	v.SetDefault("from", "")
	v.SetDefault("to", "")
	v.SetDefault("down", false)
	v.SetDefault("out", "")
	v.SetDefault("markdown", false)
	v.SetDefault("base", "")

	// Environment variables support: SQLSHIFT_CONFIG, SQLSHIFT_DATABASE, ...
	v.SetEnvPrefix("SQLSHIFT")
	v.AutomaticEnv()

	// Bind flags via Cobra and then bind to Viper
	rootCmd.PersistentFlags().String("config", v.GetString("config"), "path to the sqlshift config yaml")
	rootCmd.PersistentFlags().String("database", v.GetString("database"), "restrict the command to one configured database")
	commands.SQLCmd.Flags().String("from", v.GetString("from"), "lower revision pointer (default: base, or head with --down)")
	commands.SQLCmd.Flags().String("to", v.GetString("to"), "upper revision pointer (default: head, or base with --down)")
	commands.SQLCmd.Flags().Bool("down", v.GetBool("down"), "render downgrade SQL instead of upgrade SQL")
	commands.SQLCmd.Flags().String("out", v.GetString("out"), "write output to this file instead of stdout")
	commands.SQLCmd.Flags().Bool("markdown", v.GetBool("markdown"), "emit a markdown report instead of plain SQL")
	commands.CheckCmd.Flags().String("base", v.GetString("base"), "base branch to diff against (default: PR base or remote default branch)")

	_ = v.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = v.BindPFlag("database", rootCmd.PersistentFlags().Lookup("database"))
	_ = v.BindPFlag("from", commands.SQLCmd.Flags().Lookup("from"))
	_ = v.BindPFlag("to", commands.SQLCmd.Flags().Lookup("to"))
	_ = v.BindPFlag("down", commands.SQLCmd.Flags().Lookup("down"))
	_ = v.BindPFlag("out", commands.SQLCmd.Flags().Lookup("out"))
	_ = v.BindPFlag("markdown", commands.SQLCmd.Flags().Lookup("markdown"))
	_ = v.BindPFlag("base", commands.CheckCmd.Flags().Lookup("base"))

	rootCmd.AddCommand(commands.SQLCmd)
	rootCmd.AddCommand(commands.CheckCmd)
	rootCmd.AddCommand(commands.StatusCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		common.GetLogger().Error("command execution failed", "error", err)
		os.Exit(1)
	}
}
