package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/sqlshift/sqlshift"
	"github.com/sqlshift/sqlshift/internal/common"
	"github.com/sqlshift/sqlshift/internal/database"
	"github.com/sqlshift/sqlshift/internal/history"
)

// StatusCmd compares each deployed database's recorded revision against the
// head of its script chain.
var StatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show deployed revision vs. chain head per database",
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

		logger := common.GetLogger().WithComponent("status")
		failed := false
		for _, db := range targets {
			if err := reportStatus(cmd, ctx, db); err != nil {
				logger.WithDatabase(db.Name).Error("status failed", "error", err)
				failed = true
			}
		}
		if failed {
			return fmt.Errorf("status failed for one or more databases")
		}
		return nil
	},
}

func reportStatus(cmd *cobra.Command, ctx context.Context, db database.Database) error {
	name := db.Name
	if name == "" {
		name = "default"
	}

	g, err := sqlshift.LoadGraph(db.MigrateDir)
	if err != nil {
		return err
	}
	if g.Len() == 0 {
		cmd.Printf("%s: no migration scripts\n", name)
		return nil
	}
	head := g.Scripts()[g.Len()-1].Revision

	if db.URL == "" && len(db.Options) == 0 {
		cmd.Printf("%s: head %s (%d revisions, no connection configured)\n", name, head, g.Len())
		return nil
	}

	r, err := history.OpenForDatabase(ctx, db)
	if err != nil {
		return err
	}
	defer func() { _ = r.Close() }()

	current, err := r.CurrentRevision(ctx)
	if err != nil {
		return err
	}
	switch {
	case current == "":
		cmd.Printf("%s: not initialized, head %s (%d pending)\n", name, head, g.Len())
	case current == head:
		cmd.Printf("%s: up to date at %s\n", name, head)
	default:
		rng, err := g.Range(current, sqlshift.Head)
		if err != nil {
			return err
		}
		covered, err := g.Between(rng)
		if err != nil {
			return err
		}
		cmd.Printf("%s: at %s, head %s (%d pending)\n", name, current, head, len(covered))
	}
	return nil
}
