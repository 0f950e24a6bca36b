package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/sqlshift/sqlshift"
	"github.com/sqlshift/sqlshift/internal/common"
	"github.com/sqlshift/sqlshift/pkg/plan"
)

// SQLCmd renders the SQL a revision range would execute, per database,
// without touching any database.
var SQLCmd = &cobra.Command{
	Use:   "sql",
	Short: "Render the SQL for a revision range without connecting anywhere",
	RunE: func(cmd *cobra.Command, args []string) error {
		v := viper.GetViper()
		doc, err := loadConfig(v)
		if err != nil {
			return err
		}

		from := sqlshift.Base
		to := sqlshift.Head
		dir := sqlshift.DirectionUp
		if v.GetBool("down") {
			from, to = sqlshift.Head, sqlshift.Base
			dir = sqlshift.DirectionDown
		}
		if s := strings.TrimSpace(v.GetString("from")); s != "" {
			from = s
		}
		if s := strings.TrimSpace(v.GetString("to")); s != "" {
			to = s
		}

		results, err := doc.Planner().Run(v.GetString("database"), from, to, dir)
		if err != nil {
			return err
		}
		report := plan.Report{Results: results}

		logger := common.GetLogger().WithComponent("sql")
		for _, res := range results {
			l := logger.WithDatabase(res.Database)
			if res.Err != nil {
				l.Error("sql generation failed", "error", res.Err)
				continue
			}
			l.Info("sql generated", "revisions", len(res.Revisions), "direction", string(dir))
		}

		if err := emitReport(report, v.GetString("out"), v.GetBool("markdown")); err != nil {
			return err
		}
		if report.HasErrors() {
			return fmt.Errorf("sql generation failed for one or more databases")
		}
		return nil
	},
}

// emitReport writes the rendered SQL: a markdown report, a single SQL file,
// or plain sections on stdout.
func emitReport(report plan.Report, out string, markdown bool) error {
	if markdown {
		return writeOrPrint(out, report.Markdown())
	}
	var b strings.Builder
	for _, res := range report.Results {
		if res.Err != nil {
			continue
		}
		if res.Database != "" {
			fmt.Fprintf(&b, "-- database: %s\n", res.Database)
		}
		b.WriteString(res.SQL)
	}
	return writeOrPrint(out, b.String())
}

func writeOrPrint(out, content string) error {
	if strings.TrimSpace(out) == "" {
		fmt.Print(content)
		return nil
	}
	clean := filepath.Clean(out)
	if err := os.WriteFile(clean, []byte(content), 0o600); err != nil {
		return fmt.Errorf("write %s: %w", clean, err)
	}
	return nil
}
