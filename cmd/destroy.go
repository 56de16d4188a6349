package cmd

import (
	"github.com/spf13/cobra"
)

// destroyCmd deletes every managed entity.
var destroyCmd = &cobra.Command{
	Use:   "destroy",
	Short: "Delete every entity managed by hogger",
	Long: `Reconciles the world database against an empty set of manifests, deleting
every row hogger created. Rows hogger never managed are left untouched.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup()
		if err != nil {
			return err
		}
		defer e.close()

		return reconcileTo(cmd.Context(), cmd, e, nil, "Delete every managed entity?")
	},
}

func init() {
	addReconcileFlags(destroyCmd)
	RootCmd.AddCommand(destroyCmd)
}
