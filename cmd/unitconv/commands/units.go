package commands

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"unitconv/internal/domain"
)

func unitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "units",
		Short: "List supported units",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printUnits(cmd.OutOrStdout())
		},
	}
}

func printUnits(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSYMBOL\tALIASES")
	for _, u := range domain.AllUnits() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", u, u.Symbol(), strings.Join(u.Aliases(), ", "))
	}
	return tw.Flush()
}
