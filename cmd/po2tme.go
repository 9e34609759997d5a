package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"inventree-sync/core/tabular"

	"github.com/spf13/cobra"
)

var (
	po2tmeInput       string
	po2tmeOutput      string
	po2tmeTab         bool
	po2tmeInDelimiter string
)

// po2tmeCmd converts a purchase order export to a TME order list.
var po2tmeCmd = &cobra.Command{
	Use:   "po2tme",
	Short: "Convert a purchase order export into a TME order list",
	Long: `Reads the SKU and Quantity columns of a purchase order export (CSV or
.xlsx) and writes them as "SKU,quantity" lines accepted by the TME order
import. "-" means standard input or output.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := tabular.Options{}
		if po2tmeTab {
			opts.OutDelimiter = '\t'
		}
		if d := []rune(po2tmeInDelimiter); len(d) == 1 {
			opts.InDelimiter = d[0]
		} else if po2tmeInDelimiter != "" {
			return fmt.Errorf("--in-delimiter must be a single character, got %q", po2tmeInDelimiter)
		}

		in := cmd.InOrStdin()
		if po2tmeInput != "-" {
			f, err := os.Open(po2tmeInput)
			if err != nil {
				return err
			}
			defer f.Close()
			in = f
		}

		var (
			rows []tabular.Row
			err  error
		)
		if strings.EqualFold(filepath.Ext(po2tmeInput), ".xlsx") {
			rows, err = tabular.ReadXLSX(in)
		} else {
			rows, err = tabular.ReadCSV(in, opts.InDelimiter)
		}
		if err != nil {
			return err
		}

		// The output is only opened once the input converted cleanly.
		out := cmd.OutOrStdout()
		if po2tmeOutput != "-" {
			f, err := os.Create(po2tmeOutput)
			if err != nil {
				return err
			}
			defer f.Close()
			out = f
		}
		return tabular.Write(out, rows, opts.OutDelimiter)
	},
}

func init() {
	po2tmeCmd.Flags().StringVarP(&po2tmeInput, "input", "i", "-", "input file, CSV or .xlsx")
	po2tmeCmd.Flags().StringVarP(&po2tmeOutput, "output", "o", "-", "output file")
	po2tmeCmd.Flags().BoolVarP(&po2tmeTab, "tab", "t", false, "separate output columns with a tab")
	po2tmeCmd.Flags().StringVar(&po2tmeInDelimiter, "in-delimiter", "", "input CSV delimiter (default ,)")
	RootCmd.AddCommand(po2tmeCmd)
}
