package cmd

import (
	"fmt"

	"inventree-sync/feature/connectors"

	"github.com/spf13/cobra"
)

// connectorsCmd imports the fixed connector housing list.
var connectorsCmd = &cobra.Command{
	Use:   "connectors",
	Short: "Import BLS/BLD connector housings from GES electronics",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		rt, err := bootstrap(ctx, "connectors")
		if err != nil {
			return err
		}
		defer rt.close()

		svc := connectors.NewService(rt.client, rt.reconciler(), rt.cfg.Connectors, rt.logger)
		results, err := svc.Run(ctx, connectors.DefaultHousings())
		for _, res := range results {
			state := "linked"
			if res.PartCreated {
				state = "created"
			}
			fmt.Printf("%-8s %-12s %s\n", res.Part.Name, state, rt.client.PartURL(res.Part.ID))
		}
		return err
	},
}

func init() {
	RootCmd.AddCommand(connectorsCmd)
}
