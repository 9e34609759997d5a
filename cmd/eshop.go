package cmd

import (
	"fmt"

	coreEshop "inventree-sync/core/eshop"
	"inventree-sync/core/images"
	"inventree-sync/core/utils"
	"inventree-sync/feature/eshop"

	"github.com/spf13/cobra"
)

// eshopCmd is the parent command for e-shop operations.
var eshopCmd = &cobra.Command{
	Use:   "eshop",
	Short: "Prusa Research e-shop operations",
}

// eshopImportCmd imports one product page.
var eshopImportCmd = &cobra.Command{
	Use:   "import <url>",
	Short: "Import a product from its e-shop page",
	Long: `Imports a product page in any language. New products are created with
their image; already imported products get price and availability refreshed.

Example:
  inventree-sync eshop import https://www.prusa3d.com/product/nozzle-brass-0-4mm/`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		rt, err := bootstrap(ctx, "eshop import")
		if err != nil {
			return err
		}
		defer rt.close()

		web := utils.NewHTTPClient(rt.cfg.Inventree.TimeoutSeconds)
		svc := eshop.NewService(
			rt.client,
			rt.reconciler(),
			coreEshop.NewFetcher(web, rt.cfg.Eshop.Currency, rt.logger),
			images.NewDownloader(web),
			rt.archive(),
			rt.cfg.Eshop,
			rt.logger,
		)
		res, err := svc.Import(ctx, args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Part:          %s\n", rt.client.PartURL(res.Part.ID))
		fmt.Printf("Supplier part: %s\n", rt.client.SupplierPartURL(res.SupplierPart.ID))
		return nil
	},
}

func init() {
	eshopCmd.AddCommand(eshopImportCmd)
	RootCmd.AddCommand(eshopCmd)
}
