package cmd

import (
	"context"
	"errors"
	"fmt"

	"hogger/core/reconcile"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	yesConfirm  bool
	dryRun      bool
	failOnEmpty bool
	fromBucket  bool
)

// applyCmd reconciles the database against the manifests.
var applyCmd = &cobra.Command{
	Use:   "apply [dir_or_file]",
	Short: "Apply manifests to the world database",
	Long: `Reads the manifests, compares them with the entities stored in the world
database and, after confirmation, creates, updates and deletes rows so that the
database matches the manifests.

Examples:
  # Review and apply every manifest below ./world
  hogger apply ./world

  # Non-interactive apply, failing when there is nothing to do
  hogger apply ./world --yes --fail-on-empty

  # Read manifests from the configured bucket
  hogger apply manifests/ --from-bucket`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup()
		if err != nil {
			return err
		}
		defer e.close()

		ctx := cmd.Context()
		desired, err := loadDesired(ctx, e, args, fromBucket)
		if err != nil {
			return err
		}
		return reconcileTo(ctx, cmd, e, desired, "Apply these changes?")
	},
}

// reconcileTo runs one locked reconciliation of e's database towards desired.
func reconcileTo(ctx context.Context, cmd *cobra.Command, e *env, desired []reconcile.Entity, prompt string) error {
	r := reconcile.New(e.db, e.registry, e.log)
	if err := r.Begin(ctx); err != nil {
		if errors.Is(err, reconcile.ErrLocked) {
			return fmt.Errorf("%w; if no other run is active, clear it with 'hogger lock release'", err)
		}
		return err
	}
	defer func() {
		if err := r.Close(context.Background()); err != nil {
			e.log.Error("Failed to release reconciliation lock", zap.Error(err))
		}
	}()

	plan, err := r.Plan(ctx, desired)
	if err != nil {
		return fmt.Errorf("failed to plan: %w", err)
	}
	if err := reconcile.WriteReport(cmd.OutOrStdout(), e.registry, plan); err != nil {
		return err
	}

	if plan.Empty() {
		if failOnEmpty {
			return reconcile.ErrNothingToApply
		}
		e.log.Info("Nothing to apply")
		return nil
	}
	if dryRun {
		e.log.Info("Dry-run mode: No changes were made.")
		return nil
	}
	if !confirm(cmd.InOrStdin(), cmd.OutOrStdout(), yesConfirm, prompt) {
		e.log.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}

	return r.Apply(ctx, plan)
}

func addReconcileFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm the plan (non-interactive)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the plan without applying it")
	cmd.Flags().BoolVar(&failOnEmpty, "fail-on-empty", false, "Exit non-zero when there is nothing to apply")
}

func init() {
	addReconcileFlags(applyCmd)
	applyCmd.Flags().BoolVar(&fromBucket, "from-bucket", false, "Read manifests from object storage")
	RootCmd.AddCommand(applyCmd)
}
