package repl

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atinylittleshell/memsh/internal/bash"
	"github.com/atinylittleshell/memsh/internal/vfs"
)

func testSession(t *testing.T) (*bash.Bash, bash.State) {
	t.Helper()
	sh, err := bash.New(bash.Options{})
	require.NoError(t, err)

	state := bash.State{
		Structure: vfs.NewDirectory(
			vfs.Entry{Name: "file1", Node: vfs.NewFile("hi")},
			vfs.Entry{Name: "dir1", Node: vfs.NewDirectory(
				vfs.Entry{Name: "childDir", Node: vfs.NewDirectory()},
				vfs.Entry{Name: "dir1File", Node: vfs.NewFile("x")},
			)},
		),
	}
	return sh, state
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	sh, state := testSession(t)
	return NewModel(sh, state, Options{Prompt: "me", Theme: plainTheme()})
}

func send(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m, cmd
}

func typeText(s string) tea.Msg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	up    = tea.KeyMsg{Type: tea.KeyUp}
	down  = tea.KeyMsg{Type: tea.KeyDown}
	tab   = tea.KeyMsg{Type: tea.KeyTab}
)

func TestModel_Submit(t *testing.T) {
	m, _ := send(t, newTestModel(t), typeText("cat dir1/dir1File"), enter)

	assert.Equal(t, "", m.Value())
	assert.Equal(t, []bash.HistoryEntry{
		bash.Echo("cat dir1/dir1File", ""),
		bash.Output("x"),
	}, m.State().History)
	assert.Contains(t, m.View(), "me ~ $ cat dir1/dir1File\nx\nme ~ $ ")
}

func TestModel_PromptFollowsTheWorkingDirectory(t *testing.T) {
	m, _ := send(t, newTestModel(t), typeText("cd dir1"), enter)

	assert.Equal(t, "dir1", m.State().Cwd)
	assert.Contains(t, m.View(), "me ~/dir1 $ ")
}

func TestModel_Recall(t *testing.T) {
	m, _ := send(t, newTestModel(t),
		typeText("ls"), enter,
		typeText("pwd"), enter,
	)

	m, _ = send(t, m, up)
	assert.Equal(t, "pwd", m.Value())
	m, _ = send(t, m, up)
	assert.Equal(t, "ls", m.Value())
	m, _ = send(t, m, up)
	assert.Equal(t, "ls", m.Value())

	m, _ = send(t, m, down)
	assert.Equal(t, "pwd", m.Value())
	m, _ = send(t, m, down)
	assert.Equal(t, "", m.Value())
	m, _ = send(t, m, down)
	assert.Equal(t, "", m.Value())
}

func TestModel_Complete(t *testing.T) {
	m, _ := send(t, newTestModel(t), typeText("cat dir1/dir1F"), tab)
	assert.Equal(t, "cat dir1/dir1File", m.Value())

	m, _ = send(t, newTestModel(t), typeText("ls nothing"), tab)
	assert.Equal(t, "ls nothing", m.Value())
}

func TestModel_ClearScreen(t *testing.T) {
	m, _ := send(t, newTestModel(t), typeText("ls"), enter)
	require.NotEmpty(t, m.State().History)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlL})
	assert.Empty(t, m.State().History)
}

func TestModel_UnknownCommandHint(t *testing.T) {
	m, _ := send(t, newTestModel(t), typeText("mkdr x"), enter)

	view := m.View()
	assert.Contains(t, view, "mkdr: command not found")
	assert.Contains(t, view, "did you mean: mkdir?")

	m, _ = send(t, m, typeText("pwd"), enter)
	assert.NotContains(t, m.View(), "did you mean")
}

func TestModel_Quit(t *testing.T) {
	_, cmd := send(t, newTestModel(t), tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())

	_, cmd = send(t, newTestModel(t), tea.KeyMsg{Type: tea.KeyCtrlD})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())

	// ctrl+d only quits on an empty line
	m, _ := send(t, newTestModel(t), typeText("ls"), tea.KeyMsg{Type: tea.KeyCtrlD})
	assert.Equal(t, "ls", m.Value())
}

func TestModel_ViewKeepsTheLatestLines(t *testing.T) {
	m, _ := send(t, newTestModel(t), tea.WindowSizeMsg{Width: 80, Height: 2})
	m, _ = send(t, m, typeText("pwd"), enter, typeText("ls"), enter)

	assert.True(t, strings.HasPrefix(m.View(), "file1 dir1\nme ~ $ "), m.View())
}
