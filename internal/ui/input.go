package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// inputModel is a single-line prompt, the terminal stand-in for the
// "Enter Destination URL" sheet.
type inputModel struct {
	title     string
	input     textinput.Model
	done      bool
	cancelled bool
}

func newInputModel(title, initial string) inputModel {
	ti := textinput.New()
	ti.Prompt = "› "
	ti.Placeholder = "https://"
	ti.CharLimit = 4096
	ti.Width = 60
	ti.SetValue(initial)
	ti.CursorEnd()
	ti.Focus()

	return inputModel{title: title, input: ti}
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		case tea.KeyEsc, tea.KeyCtrlC:
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	if m.done || m.cancelled {
		return ""
	}
	return fmt.Sprintf("%s\n%s\n%s\n",
		TitleStyle.Render(m.title),
		m.input.View(),
		HintStyle.Render("enter to load · esc to cancel"),
	)
}

// value returns the entered text, or ErrCancelled.
func (m inputModel) value() (string, error) {
	if m.cancelled {
		return "", ErrCancelled
	}
	v := strings.TrimSpace(m.input.Value())
	if v == "" {
		return "", fmt.Errorf("no input provided")
	}
	return v, nil
}

// Input prompts for a line of text, prefilled with initial. The prompt is
// drawn on stderr so stdout stays clean for piping.
func Input(title, initial string) (string, error) {
	p := tea.NewProgram(newInputModel(title, initial), tea.WithOutput(os.Stderr))
	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("running prompt: %w", err)
	}
	return final.(inputModel).value()
}
