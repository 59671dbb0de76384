package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"unitconv/internal/app"
)

var (
	appCtx *app.App

	logLevel  string
	scale     int32
	serverURL string
)

// Execute runs the CLI with os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	appCtx = nil

	root := &cobra.Command{
		Use:          "unitconv",
		Short:        "Length unit converter",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("log-level") {
				cfg.LogLevel = strings.ToLower(logLevel)
			}
			if flags.Changed("scale") {
				cfg.Scale = scale
			}
			if flags.Changed("server") {
				cfg.ServerURL = strings.TrimRight(serverURL, "/")
			}

			a, err := app.New(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			appCtx = a
			return nil
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn or error")
	root.PersistentFlags().Int32Var(&scale, "scale", 6, "fractional digits kept in results (0-18)")
	root.PersistentFlags().StringVar(&serverURL, "server", "", "convert through a unitconv server (e.g. http://127.0.0.1:8080)")

	root.AddCommand(convertCmd(), unitsCmd(), tableCmd(), interactiveCmd(), serveCmd())
	return root
}
