package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"unitconv/internal/domain"
	"unitconv/internal/services/screen"
)

// convert <value> <from> <to>: print the converted value.
func convertCmd() *cobra.Command {
	var line bool
	cmd := &cobra.Command{
		Use:   "convert <value> <from> <to>",
		Short: "Convert a value between two units",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := args[0]
			from, fromErr := domain.ParseUnit(args[1])
			to, toErr := domain.ParseUnit(args[2])

			result, err := convert(cmd.Context(), raw, from, to)
			if errors.Is(err, domain.ErrUnknownUnit) {
				if fromErr != nil {
					err = fromErr
				} else if toErr != nil {
					err = toErr
				}
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if line {
				st := screen.State{Input: raw, From: from, To: to, Result: result}
				fmt.Fprintln(out, st.ResultLine())
				return nil
			}
			fmt.Fprintln(out, result)
			return nil
		},
	}
	cmd.Flags().BoolVar(&line, "line", false, `print "Result: <value> <unit>" instead of the bare value`)
	return cmd
}

// convert uses the remote server when one is configured.
func convert(ctx context.Context, raw string, from, to domain.Unit) (string, error) {
	if appCtx.Remote != nil {
		appCtx.Logger.Debug("remote convert", "server", appCtx.Config.ServerURL)
		return appCtx.Remote.Convert(ctx, raw, from, to)
	}
	return appCtx.Engine.Convert(raw, from, to)
}
