package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/dumber-overlay/internal/cli/styles"
)

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Show version and build information",
	RunE:  runAbout,
}

func init() {
	rootCmd.AddCommand(aboutCmd)
}

func runAbout(cmd *cobra.Command, _ []string) error {
	a := GetApp()
	if a == nil {
		return fmt.Errorf("app not initialized")
	}

	fmt.Fprintln(cmd.OutOrStdout(), styles.NewAboutRenderer(a.Theme).Render(a.BuildInfo))
	return nil
}
