package commands

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/sqlshift/sqlshift/internal/cienv"
	"github.com/sqlshift/sqlshift/internal/common"
)

// CheckCmd detects migration scripts the current branch introduces against
// the base branch and publishes the findings as CI step outputs.
var CheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Detect changed migration scripts and write CI step outputs",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		v := viper.GetViper()
		doc, err := loadConfig(v)
		if err != nil {
			return err
		}
		targets, err := doc.Targets(v.GetString("database"))
		if err != nil {
			return err
		}

		logger := common.GetLogger().WithComponent("check")

		base := strings.TrimSpace(v.GetString("base"))
		if base == "" {
			if base, err = cienv.EventBaseRefFromEnv(); err != nil {
				logger.Warn("cannot read event payload", "error", err)
			}
		}
		if base == "" {
			base = cienv.DefaultBranch(ctx)
		}
		logger.Debug("comparing against base branch", "base", base)

		files, err := cienv.ChangedFiles(ctx, base)
		if err != nil {
			return err
		}

		var all []string
		for _, db := range targets {
			revs := cienv.MigrationRevisions(files, db.MigrateDir)
			logger.WithDatabase(db.Name).Info("changed migrations detected", "count", len(revs))
			all = append(all, revs...)
		}

		outputs := []cienv.Output{
			{Key: "has_migrations", Value: boolString(len(all) > 0)},
			{Key: "migration_revisions", Value: strings.Join(all, ",")},
		}
		return cienv.WriteOutputs(outputs)
	},
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
