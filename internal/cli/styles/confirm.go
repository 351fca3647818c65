package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type confirmChoice int

const (
	choiceKeep confirmChoice = iota
	choiceOverwrite
)

type confirmOutcome int

const (
	outcomePending confirmOutcome = iota
	outcomeAnswered
	outcomeAborted
)

// confirmKeys are the bindings of the overwrite prompt. Overwriting always
// needs an explicit choice; the prompt opens on "keep".
var confirmKeys = struct {
	Overwrite key.Binding
	Keep      key.Binding
	Toggle    key.Binding
	Submit    key.Binding
	Abort     key.Binding
}{
	Overwrite: key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "overwrite")),
	Keep:      key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "keep")),
	Toggle:    key.NewBinding(key.WithKeys("left", "right", "h", "l", "tab"), key.WithHelp("←/→", "switch")),
	Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
	Abort:     key.NewBinding(key.WithKeys("esc", "q", "ctrl+c"), key.WithHelp("esc", "abort")),
}

// ConfirmModel asks before a file on disk is replaced.
type ConfirmModel struct {
	question string
	detail   string
	choice   confirmChoice
	outcome  confirmOutcome
	help     help.Model
	theme    *Theme
}

// NewConfirm creates a prompt for question that starts on "keep".
func NewConfirm(theme *Theme, question string) ConfirmModel {
	h := help.New()
	h.Styles.ShortKey = theme.Subtle
	h.Styles.ShortDesc = theme.Subtle
	return ConfirmModel{question: question, help: h, theme: theme}
}

// WithDetail adds a dimmed line under the question.
func (m ConfirmModel) WithDetail(detail string) ConfirmModel {
	m.detail = detail
	return m
}

// Overwriting reports whether "overwrite" is currently selected.
func (m ConfirmModel) Overwriting() bool { return m.choice == choiceOverwrite }

// Update handles key presses until the prompt is answered or aborted.
func (m ConfirmModel) Update(msg tea.Msg) (ConfirmModel, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok || m.Done() {
		return m, nil
	}
	switch {
	case key.Matches(k, confirmKeys.Overwrite):
		m.choice = choiceOverwrite
	case key.Matches(k, confirmKeys.Keep):
		m.choice = choiceKeep
	case key.Matches(k, confirmKeys.Toggle):
		m.choice = 1 - m.choice
	case key.Matches(k, confirmKeys.Submit):
		m.outcome = outcomeAnswered
	case key.Matches(k, confirmKeys.Abort):
		m.outcome = outcomeAborted
	}
	return m, nil
}

// View renders the prompt.
func (m ConfirmModel) View() string {
	t := m.theme
	button := func(label string, c confirmChoice) string {
		if m.choice == c {
			return t.ActiveButton.Render(label)
		}
		return t.InactiveButton.Render(label)
	}

	lines := []string{t.Title.Render(m.question)}
	if m.detail != "" {
		lines = append(lines, t.Subtle.Render(m.detail))
	}
	lines = append(lines,
		"",
		lipgloss.JoinHorizontal(lipgloss.Center, button(" Keep ", choiceKeep), "  ", button(" Overwrite ", choiceOverwrite)),
		"",
		m.help.ShortHelpView([]key.Binding{
			confirmKeys.Overwrite, confirmKeys.Keep, confirmKeys.Toggle, confirmKeys.Submit, confirmKeys.Abort,
		}),
	)
	return t.Box.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// Done reports whether the prompt was answered or aborted.
func (m ConfirmModel) Done() bool { return m.outcome != outcomePending }

// Result reports whether the user chose to overwrite.
func (m ConfirmModel) Result() bool {
	return m.outcome == outcomeAnswered && m.choice == choiceOverwrite
}
