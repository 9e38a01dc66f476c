package prompt

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// model is a one-question console prompt. The typed answer is submitted
// with Enter; Ctrl+C and Esc decline.
type model struct {
	question string
	answer   string
	accepted bool
	done     bool

	questionStyle lipgloss.Style
	answerStyle   lipgloss.Style
	helpStyle     lipgloss.Style
}

func initialModel(question string) model {
	return model{
		question: question,

		questionStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")),
		answerStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("170")),
		helpStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.done = true
			m.accepted = false
			return m, tea.Quit

		case "enter":
			m.done = true
			m.accepted = isYes(m.answer)
			return m, tea.Quit

		case "backspace":
			if len(m.answer) > 0 {
				m.answer = m.answer[:len(m.answer)-1]
			}

		default:
			if msg.Type == tea.KeyRunes {
				m.answer += string(msg.Runes)
			}
		}
	}
	return m, nil
}

func (m model) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.questionStyle.Render(m.question))
	b.WriteString(m.answerStyle.Render(m.answer))
	b.WriteString("\n")
	b.WriteString(m.helpStyle.Render("Enter: confirm | Esc: cancel"))
	return b.String()
}

// isYes reports whether a typed answer counts as confirmation. Only
// the exact answer y confirms; any other answer aborts.
func isYes(answer string) bool {
	return answer == "y"
}

// Confirm asks the question on the console and reports whether the user
// answered y.
func Confirm(question string) (bool, error) {
	p := tea.NewProgram(initialModel(question))
	finalModel, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("error running prompt: %v", err)
	}

	final := finalModel.(model)
	return final.accepted, nil
}
