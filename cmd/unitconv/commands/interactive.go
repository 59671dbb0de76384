package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"unitconv/internal/domain"
	"unitconv/internal/services/screen"
)

const interactiveHelp = `Commands:
  from <unit>   choose the unit to convert from
  to <unit>     choose the unit to convert to
  clear         empty the value field
  units         list units
  show          print the current screen
  help          print this help
  quit          leave
Any other line replaces the value.`

// interactive: one screen event per input line.
func interactiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"repl"},
		Short:   "Convert interactively, line by line",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(appCtx.NewScreen(), cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
}

func runInteractive(svc *screen.Service, in io.Reader, out, errOut io.Writer) error {
	printScreen(out, svc.State())

	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		word, arg, _ := strings.Cut(line, " ")
		arg = strings.TrimSpace(arg)

		var upd screen.Update
		switch strings.ToLower(word) {
		case "quit", "exit":
			return nil
		case "help":
			fmt.Fprintln(out, interactiveHelp)
			continue
		case "units":
			if err := printUnits(out); err != nil {
				return err
			}
			continue
		case "show":
			printScreen(out, svc.State())
			continue
		case "clear":
			upd = svc.SetInput("")
		case "from", "to":
			u, err := domain.ParseUnit(arg)
			if err != nil {
				fmt.Fprintln(errOut, err)
				continue
			}
			if strings.EqualFold(word, "from") {
				upd = svc.SelectFrom(u)
			} else {
				upd = svc.SelectTo(u)
			}
		default:
			upd = svc.SetInput(line)
		}

		if upd.Notice != "" {
			fmt.Fprintln(errOut, upd.Notice)
		}
		printScreen(out, upd.State)
	}
	return sc.Err()
}

func printScreen(w io.Writer, st screen.State) {
	fmt.Fprintf(w, "[%s] -> [%s]\n", st.FromLabel(), st.ToLabel())
	fmt.Fprintln(w, st.ResultLine())
}
