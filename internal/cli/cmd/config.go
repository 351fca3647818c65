package cmd

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/dumber-overlay/internal/cli/styles"
	"github.com/bnema/dumber-overlay/internal/infrastructure/config"
)

var (
	configYes         bool
	configSchemaWrite string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Long:  `Print every setting with its effective value. Values that differ from the default are highlighted.`,
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of config.toml",
	Long: `Print the JSON schema of config.toml, for editor completion and validation.

Use --write to save it to a file instead.`,
	Args: cobra.NoArgs,
	RunE: runConfigSchema,
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Overwrite the config file with the defaults",
	Args:  cobra.NoArgs,
	RunE:  runConfigReset,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configSchemaCmd)
	configCmd.AddCommand(configResetCmd)
	configSchemaCmd.Flags().StringVar(&configSchemaWrite, "write", "", "write the schema to this file")
	configResetCmd.Flags().BoolVarP(&configYes, "yes", "y", false, "skip confirmation prompt")
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	a := GetApp()
	if a == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewConfigRenderer(a.Theme)
	fmt.Fprint(cmd.OutOrStdout(), renderer.RenderConfigInfo(a.ConfigManager.GetConfigFile()))
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderKeys(config.Describe(a.Config)))
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	a := GetApp()
	if a == nil {
		return fmt.Errorf("app not initialized")
	}
	fmt.Fprintln(cmd.OutOrStdout(), a.ConfigManager.GetConfigFile())
	return nil
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	if configSchemaWrite != "" {
		return config.WriteSchemaFile(configSchemaWrite)
	}

	data, err := config.JSONSchema()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func runConfigReset(cmd *cobra.Command, _ []string) error {
	a := GetApp()
	if a == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewConfigRenderer(a.Theme)
	path := a.ConfigManager.GetConfigFile()

	if configYes {
		if err := a.ConfigManager.Reset(); err != nil {
			fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderError(err))
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderResetSuccess(path))
		return nil
	}

	model := newResetModel(a.Theme, renderer, path, a.ConfigManager.Reset)
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return fmt.Errorf("run confirmation: %w", err)
	}
	if m, ok := final.(resetModel); ok && m.result != "" {
		fmt.Fprintln(cmd.OutOrStdout(), m.result)
	}
	return nil
}

// resetState represents the current state of the reset confirmation.
type resetState int

const (
	resetStateConfirm resetState = iota
	resetStateRunning
	resetStateDone
)

type resetDoneMsg struct{ err error }

// resetModel is the bubbletea model asking before the config is overwritten.
type resetModel struct {
	spinner  spinner.Model
	confirm  styles.ConfirmModel
	renderer *styles.ConfigRenderer
	state    resetState
	path     string
	reset    func() error

	result string
}

func newResetModel(theme *styles.Theme, renderer *styles.ConfigRenderer, path string, reset func() error) resetModel {
	return resetModel{
		spinner:  styles.NewDefaultSpinner(theme),
		confirm:  styles.NewConfirm(theme, fmt.Sprintf("Overwrite %s with the defaults?", path)).
			WithDetail("Dialogs not in the defaults (menu, omnibox) are removed."),
		renderer: renderer,
		path:     path,
		reset:    reset,
	}
}

func (m resetModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m resetModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case resetDoneMsg:
		m.state = resetStateDone
		if msg.err != nil {
			m.result = m.renderer.RenderError(msg.err)
		} else {
			m.result = m.renderer.RenderResetSuccess(m.path)
		}
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.state != resetStateConfirm {
		return m, nil
	}

	var cmd tea.Cmd
	m.confirm, cmd = m.confirm.Update(msg)
	if !m.confirm.Done() {
		return m, cmd
	}
	if !m.confirm.Result() {
		m.state = resetStateDone
		m.result = m.renderer.RenderCanceled()
		return m, tea.Quit
	}

	m.state = resetStateRunning
	reset := m.reset
	return m, func() tea.Msg {
		return resetDoneMsg{err: reset()}
	}
}

func (m resetModel) View() string {
	switch m.state {
	case resetStateConfirm:
		return m.confirm.View()
	case resetStateRunning:
		return fmt.Sprintf("\n  %s Writing defaults...\n", m.spinner.View())
	default:
		return ""
	}
}
