package cmd

import (
	"fmt"

	"hogger/core/reconcile"

	"github.com/spf13/cobra"
)

var yesRelease bool

// lockCmd is the parent command of the lock operations.
var lockCmd = &cobra.Command{
	Use:   "lock",
	Short: "Inspect or clear the reconciliation lock",
}

var lockStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether a run holds the lock",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup()
		if err != nil {
			return err
		}
		defer e.close()

		if !reconcile.HasSchema(e.db) {
			fmt.Fprintln(cmd.OutOrStdout(), "unlocked (no run has bootstrapped this database yet)")
			return nil
		}
		locked, err := reconcile.NewLock(e.db).IsLocked(cmd.Context())
		if err != nil {
			return err
		}
		if locked {
			fmt.Fprintln(cmd.OutOrStdout(), "locked")
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "unlocked")
		}
		return nil
	},
}

var lockReleaseCmd = &cobra.Command{
	Use:   "release",
	Short: "Clear a lock left behind by a crashed run",
	Long: `Clears the reconciliation lock. Only use this when no other run is active:
a run that crashed between taking and releasing the lock leaves it set.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup()
		if err != nil {
			return err
		}
		defer e.close()

		ctx := cmd.Context()
		if err := reconcile.EnsureSchema(ctx, e.db); err != nil {
			return err
		}
		if !confirm(cmd.InOrStdin(), cmd.OutOrStdout(), yesRelease, "Release the reconciliation lock?") {
			e.log.Warn("Operation cancelled by user. The lock was not released.")
			return nil
		}
		if err := reconcile.NewLock(e.db).Release(ctx); err != nil {
			return err
		}
		e.log.Info("Released reconciliation lock")
		return nil
	},
}

func init() {
	lockReleaseCmd.Flags().BoolVar(&yesRelease, "yes", false, "Auto-confirm (non-interactive)")
	lockCmd.AddCommand(lockStatusCmd, lockReleaseCmd)
	RootCmd.AddCommand(lockCmd)
}
