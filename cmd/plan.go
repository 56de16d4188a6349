package cmd

import (
	"hogger/core/reconcile"

	"github.com/spf13/cobra"
)

var planFromBucket bool

// planCmd prints the plan without taking the lock.
var planCmd = &cobra.Command{
	Use:   "plan [dir_or_file]",
	Short: "Show what apply would change",
	Long: `Reads the manifests and prints the plan apply would execute. The database
is only read; the reconciliation lock is not taken.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup()
		if err != nil {
			return err
		}
		defer e.close()

		ctx := cmd.Context()
		desired, err := loadDesired(ctx, e, args, planFromBucket)
		if err != nil {
			return err
		}

		plan, err := reconcile.New(e.db, e.registry, e.log).Preview(ctx, desired)
		if err != nil {
			return err
		}
		return reconcile.WriteReport(cmd.OutOrStdout(), e.registry, plan)
	},
}

func init() {
	planCmd.Flags().BoolVar(&planFromBucket, "from-bucket", false, "Read manifests from object storage")
	RootCmd.AddCommand(planCmd)
}
