package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fatfinder/internal/picker"
	"fatfinder/internal/scanner"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	space = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	up    = tea.KeyMsg{Type: tea.KeyUp}
)

func newTestModel(t *testing.T, n int) (model, []scanner.FileRecord) {
	t.Helper()
	recs := make([]scanner.FileRecord, n)
	for i := range recs {
		recs[i] = scanner.FileRecord{Path: "/data/" + string(rune('a'+i)), Size: int64(i+1) * 1024 * 1024}
	}
	session, err := picker.NewSession(recs, 10)
	require.NoError(t, err)
	return newModel(session, Options{Root: "/data", HumanReadable: true, Keys: picker.DefaultKeyMap()}), recs
}

func send(t *testing.T, m model, msgs ...tea.Msg) (model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		var ok bool
		m, ok = next.(model)
		require.True(t, ok)
	}
	return m, cmd
}

func TestUpdate_NavigateAndMark(t *testing.T) {
	m, recs := newTestModel(t, 4)

	m, cmd := send(t, m, space, runes("w"), up, space, runes("s"))
	assert.Nil(t, cmd)
	assert.Equal(t, 2, m.session.Cursor())
	assert.Equal(t, []scanner.FileRecord{recs[1], recs[3]}, m.session.Marked())
}

func TestUpdate_UnknownKeyIsIgnored(t *testing.T) {
	m, _ := newTestModel(t, 4)
	before := m.session.Cursor()
	m, cmd := send(t, m, runes("z"))
	assert.Nil(t, cmd)
	assert.Equal(t, before, m.session.Cursor())
	assert.Empty(t, m.session.Marked())
}

func TestUpdate_Commit(t *testing.T) {
	m, recs := newTestModel(t, 3)

	m, cmd := send(t, m, space, enter)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.True(t, m.outcome.Committed)
	assert.Equal(t, []scanner.FileRecord{recs[2]}, m.outcome.Marked)
	assert.Empty(t, m.View())
}

func TestUpdate_Quit(t *testing.T) {
	m, _ := newTestModel(t, 3)

	m, cmd := send(t, m, space, runes("e"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.False(t, m.outcome.Committed)
	assert.Empty(t, m.outcome.Marked)
}

func TestView(t *testing.T) {
	m, _ := newTestModel(t, 3)
	m, _ = send(t, m, space, tea.WindowSizeMsg{Width: 120, Height: 40})

	view := m.View()
	assert.Contains(t, view, "Files: 3")
	assert.Contains(t, view, "Marked: 1 (3.00 MB)")
	assert.Contains(t, view, "[ ] /data/a: 1.00 MB")
	assert.Contains(t, view, "[X] /data/c: 3.00 MB")
	assert.Contains(t, view, "[2 / 2]")
	assert.Contains(t, view, "quit")
}

func TestView_DryRun(t *testing.T) {
	m, _ := newTestModel(t, 1)
	m.dryRun = true
	assert.Contains(t, m.View(), "dry-run")
}
