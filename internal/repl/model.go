// Package repl provides the interactive terminal front end of memsh. It only
// draws the session state and turns key presses into calls to the
// interpreter.
package repl

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/atinylittleshell/memsh/internal/bash"
)

// Options configures the interactive model.
type Options struct {
	// Prompt is the prefix shown before the working directory.
	Prompt string
	Theme  Theme
	KeyMap *KeyMap
	Logger *zap.Logger
}

// Model is the Bubble Tea model of an interactive session.
type Model struct {
	sh     *bash.Bash
	state  bash.State
	prompt string
	theme  Theme
	keymap *KeyMap
	logger *zap.Logger

	input  textinput.Model
	hint   string
	height int
}

// NewModel creates the model for a session starting from state.
func NewModel(sh *bash.Bash, state bash.State, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	keymap := opts.KeyMap
	if keymap == nil {
		keymap = DefaultKeyMap()
	}

	ti := textinput.New()
	ti.Prompt = ""
	ti.Focus()

	m := Model{
		sh:     sh,
		state:  state,
		prompt: opts.Prompt,
		theme:  opts.Theme,
		keymap: keymap,
		logger: logger,
		input:  ti,
	}
	m.input.TextStyle = m.theme.Output
	return m
}

// State returns the current session state.
func (m Model) State() bash.State {
	return m.state
}

// Value returns the text currently typed at the prompt.
func (m Model) Value() string {
	return m.input.Value()
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.input.Width = max(msg.Width-len(Prompt(m.prompt, m.state.Cwd))-2, 0)
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keymap.Lookup(msg) {
	case ActionSubmit:
		return m.handleSubmit()
	case ActionRecallPrev:
		if m.sh.HasPrevCommand() {
			line, _ := m.sh.GetPrevCommand()
			m.setInput(line)
		}
		return m, nil
	case ActionRecallNext:
		line := ""
		if m.sh.HasNextCommand() {
			line, _ = m.sh.GetNextCommand()
		}
		m.setInput(line)
		return m, nil
	case ActionComplete:
		return m.handleComplete()
	case ActionClearScreen:
		m.state = m.sh.Execute("clear", m.state)
		m.hint = ""
		return m, nil
	case ActionInterrupt:
		return m, tea.Quit
	case ActionEOF:
		if m.input.Value() == "" {
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleSubmit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.state = m.sh.Execute(line, m.state)
	m.input.Reset()

	m.hint = ""
	if name, _ := bash.ParseInput(line); name != "" {
		if _, ok := m.sh.Lookup(name); !ok {
			if suggestions := m.sh.Suggest(name); len(suggestions) > 0 {
				m.hint = "did you mean: " + strings.Join(suggestions, ", ") + "?"
			}
		}
	}
	return m, nil
}

// handleComplete replaces the last space separated token of the input with
// its completion.
func (m Model) handleComplete() (tea.Model, tea.Cmd) {
	value := m.input.Value()
	head, token := "", value
	if i := strings.LastIndex(value, " "); i >= 0 {
		head, token = value[:i+1], value[i+1:]
	}

	completed, ok := m.sh.Autocomplete(token, m.state)
	if !ok {
		m.logger.Debug("nothing to complete", zap.String("token", token))
		return m, nil
	}
	m.setInput(head + completed)
	return m, nil
}

func (m *Model) setInput(value string) {
	m.input.SetValue(value)
	m.input.CursorEnd()
}

func (m Model) View() string {
	lines := make([]string, 0, len(m.state.History)+2)
	for _, entry := range m.state.History {
		lines = append(lines, renderEntry(entry, m.prompt, m.theme))
	}
	if m.hint != "" {
		lines = append(lines, m.theme.Hint.Render(m.hint))
	}
	lines = append(lines, m.theme.Prompt.Render(Prompt(m.prompt, m.state.Cwd))+" "+m.input.View())

	if m.height > 0 && len(lines) > m.height {
		lines = lines[len(lines)-m.height:]
	}
	return strings.Join(lines, "\n")
}
