package commands

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"unitconv/internal/domain"
)

// table: rows are the source unit, columns the target unit.
func tableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "Print the conversion factor matrix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			units := domain.AllUnits()
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', tabwriter.AlignRight)

			fmt.Fprint(tw, "from\\to\t")
			for _, u := range units {
				fmt.Fprintf(tw, "%s\t", u.Symbol())
			}
			fmt.Fprintln(tw)

			for _, from := range units {
				fmt.Fprintf(tw, "%s\t", from.Symbol())
				for _, to := range units {
					f, err := appCtx.Engine.FormatFactor(from, to)
					if errors.Is(err, domain.ErrUnsupportedUnitPair) {
						f = "-"
					} else if err != nil {
						return err
					}
					fmt.Fprintf(tw, "%s\t", f)
				}
				fmt.Fprintln(tw)
			}
			return tw.Flush()
		},
	}
}
