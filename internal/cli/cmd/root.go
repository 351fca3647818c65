// Package cmd provides Cobra CLI commands for dumber-overlay.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/dumber-overlay/internal/cli"
	"github.com/bnema/dumber-overlay/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	configDir string
	rootCmd   = &cobra.Command{
		Use:   "dumber-overlay",
		Short: "Overlay dialogs for the dumber browser",
		Long: `dumber-overlay layers web dialogs (menus, omnibox, popups) above a GTK4
browser window.

Each dialog is a WebKitGTK view loading <name>.html from the dev server in
development mode, or from build/<name>.html next to the binary when packaged.

Use 'dumber-overlay run' to open the window, or the other subcommands to
inspect the configured dialogs and settings.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch cmd.Name() {
			case "help", "completion", "schema":
				return nil
			}

			var err error
			app, err = cli.NewApp(configDir)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "read config.toml from this directory instead of the XDG config dir")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
