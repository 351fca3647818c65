package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/dumber-overlay/internal/cli/styles"
)

var dialogsCmd = &cobra.Command{
	Use:   "dialogs",
	Short: "Inspect configured dialogs",
}

var dialogsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured dialogs with their geometry and page URL",
	Args:  cobra.NoArgs,
	RunE:  runDialogsList,
}

var dialogsURLCmd = &cobra.Command{
	Use:   "url <name>",
	Short: "Print the page URL a dialog loads",
	Long: `Print the URL of <name>.html for the configured build mode.

The dialog does not need to be configured; any valid name resolves.`,
	Args: cobra.ExactArgs(1),
	RunE: runDialogsURL,
}

func init() {
	rootCmd.AddCommand(dialogsCmd)
	dialogsCmd.AddCommand(dialogsListCmd)
	dialogsCmd.AddCommand(dialogsURLCmd)
}

func runDialogsList(cmd *cobra.Command, _ []string) error {
	a := GetApp()
	if a == nil {
		return fmt.Errorf("app not initialized")
	}
	urls, err := a.ContentURLs()
	if err != nil {
		return err
	}

	names := a.Config.DialogNames()
	if len(names) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), a.Theme.Subtle.Render("No dialogs configured"))
		return nil
	}

	rows := make([]styles.DialogRow, 0, len(names))
	for _, name := range names {
		d, _ := a.Config.Dialog(name)
		uri, err := urls.ContentURL(name)
		if err != nil {
			uri = err.Error()
		}
		rows = append(rows, styles.DialogRow{
			Name:        name,
			X:           d.X,
			Y:           d.Y,
			Width:       d.Width,
			Height:      d.Height,
			HideGraceMs: d.HideGraceMs,
			DevTools:    d.DevTools,
			URL:         uri,
		})
	}

	mode := a.Theme.Badge.Render(string(urls.Mode()))
	fmt.Fprintf(cmd.OutOrStdout(), "\n  %s %s\n\n", a.Theme.Title.Render("Dialogs"), mode)
	fmt.Fprintln(cmd.OutOrStdout(), styles.RenderDialogTable(a.Theme, rows))
	return nil
}

func runDialogsURL(cmd *cobra.Command, args []string) error {
	a := GetApp()
	if a == nil {
		return fmt.Errorf("app not initialized")
	}
	urls, err := a.ContentURLs()
	if err != nil {
		return err
	}

	uri, err := urls.ContentURL(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), uri)
	return nil
}
