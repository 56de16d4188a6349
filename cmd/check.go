package cmd

import (
	"fmt"

	"hogger/core/reconcile"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// checkCmd verifies that the world database has every column hogger writes.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the world database schema",
	Long: `Compares the columns of every managed table with the columns hogger reads
and writes, and reports the missing ones. Run it after upgrading the server
core.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup()
		if err != nil {
			return err
		}
		defer e.close()

		report, err := reconcile.CheckSchema(e.db, e.registry)
		if err != nil {
			return err
		}
		if report.Matched {
			e.log.Info("Schema check passed", zap.Int("tables", len(report.Tables)))
			return nil
		}
		failed := 0
		for table, tbl := range report.Tables {
			if tbl.Status == "ok" {
				continue
			}
			failed++
			e.log.Error("Missing columns",
				zap.String("table", table),
				zap.String("type", tbl.Type),
				zap.Strings("columns", tbl.MissingColumns))
		}
		return fmt.Errorf("schema check failed for %d table(s)", failed)
	},
}

func init() {
	RootCmd.AddCommand(checkCmd)
}
