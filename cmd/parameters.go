package cmd

import (
	"inventree-sync/feature/drills"
	"inventree-sync/feature/kicad"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// drillsCmd refreshes drill bit dimensions.
var drillsCmd = &cobra.Command{
	Use:   "drills",
	Short: "Write drill bit dimensions parsed from part names",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		rt, err := bootstrap(ctx, "drills")
		if err != nil {
			return err
		}
		defer rt.close()

		summary, err := drills.NewService(rt.client, rt.cfg.Drills, rt.logger).Run(ctx)
		rt.logger.Info("Drill bits refreshed", zap.Int("updated", summary.Updated), zap.Int("skipped", summary.Skipped))
		return err
	},
}

// kicadCmd links pin headers to KiCad.
var kicadCmd = &cobra.Command{
	Use:   "kicad",
	Short: "Set KiCad symbol and footprint of NS25-W pin headers",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		rt, err := bootstrap(ctx, "kicad")
		if err != nil {
			return err
		}
		defer rt.close()

		summary, err := kicad.NewService(rt.client, rt.cfg.Kicad, rt.logger).Run(ctx)
		rt.logger.Info("Pin headers refreshed", zap.Int("updated", summary.Updated), zap.Int("skipped", summary.Skipped))
		return err
	},
}

func init() {
	RootCmd.AddCommand(drillsCmd)
	RootCmd.AddCommand(kicadCmd)
}
