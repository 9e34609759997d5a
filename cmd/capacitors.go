package cmd

import (
	"os"

	"inventree-sync/core/prompt"
	"inventree-sync/feature/capacitors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// capacitorsCmd imports capacitors interactively.
var capacitorsCmd = &cobra.Command{
	Use:   "capacitors",
	Short: "Interactively import electrolytic capacitors from GES electronics",
	Long: `Asks for the SKU, name and dimensions of each capacitor, derives its
parameters from the name, creates the part and supplier part, and books the
received quantity. Answer "n" to "Import another capacitor?" or close the
input to finish.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		rt, err := bootstrap(ctx, "capacitors")
		if err != nil {
			return err
		}
		defer rt.close()

		p := prompt.NewLinePrompter(os.Stdin, os.Stdout)
		svc := capacitors.NewService(rt.client, rt.reconciler(), p, os.Stdout, rt.cfg.Capacitors, rt.logger)
		n, err := svc.Run(ctx)
		rt.logger.Info("Capacitor import finished", zap.Int("imported", n))
		return err
	},
}

func init() {
	RootCmd.AddCommand(capacitorsCmd)
}
