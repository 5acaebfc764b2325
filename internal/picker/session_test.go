package picker

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fatfinder/internal/scanner"
)

func makeRecords(n int) []scanner.FileRecord {
	recs := make([]scanner.FileRecord, n)
	for i := range recs {
		recs[i] = scanner.FileRecord{Path: fmt.Sprintf("/data/f%02d", i), Size: int64(i+1) * 1024}
	}
	return recs
}

type state struct {
	cursor, top, bottom int
}

func snapshot(s *Session) state {
	top, bottom := s.Viewport()
	return state{s.Cursor(), top, bottom}
}

func checkInvariant(t *testing.T, s *Session) {
	t.Helper()
	top, bottom := s.Viewport()
	assert.LessOrEqual(t, top, s.Cursor())
	assert.LessOrEqual(t, s.Cursor(), bottom)
	assert.Equal(t, s.Window(), bottom-top+1)
	assert.GreaterOrEqual(t, top, 0)
	assert.Less(t, bottom, s.Len())
}

func TestNewSession_Empty(t *testing.T) {
	s, err := NewSession(nil, 10)
	assert.Nil(t, s)
	assert.ErrorIs(t, err, ErrNoResults)
}

func TestNewSession_InitialState(t *testing.T) {
	s, err := NewSession(makeRecords(25), 10)
	require.NoError(t, err)
	assert.Equal(t, state{cursor: 24, top: 15, bottom: 24}, snapshot(s))
	assert.Empty(t, s.Marked())
	checkInvariant(t, s)
}

func TestNewSession_WindowClamp(t *testing.T) {
	s, err := NewSession(makeRecords(3), 10)
	require.NoError(t, err)
	assert.Equal(t, state{cursor: 2, top: 0, bottom: 2}, snapshot(s))

	// no scrolling is possible in either direction
	for i := 0; i < 5; i++ {
		s.MoveUp()
		top, bottom := s.Viewport()
		assert.Equal(t, 0, top)
		assert.Equal(t, 2, bottom)
	}
	assert.Equal(t, 0, s.Cursor())
	for i := 0; i < 5; i++ {
		s.MoveDown()
		checkInvariant(t, s)
	}
	assert.Equal(t, state{cursor: 2, top: 0, bottom: 2}, snapshot(s))
}

func TestMoveUp_ScrollsAtTopEdge(t *testing.T) {
	s, err := NewSession(makeRecords(12), 4)
	require.NoError(t, err)
	// cursor 11, viewport [8, 11]
	for i := 0; i < 3; i++ {
		s.MoveUp()
	}
	assert.Equal(t, state{cursor: 8, top: 8, bottom: 11}, snapshot(s))
	s.MoveUp()
	assert.Equal(t, state{cursor: 7, top: 7, bottom: 10}, snapshot(s))
	checkInvariant(t, s)
}

func TestMoveUpAtZeroIsNoop(t *testing.T) {
	s, err := NewSession(makeRecords(6), 3)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		s.MoveUp()
	}
	before := snapshot(s)
	assert.Equal(t, state{cursor: 0, top: 0, bottom: 2}, before)
	s.MoveUp()
	assert.Equal(t, before, snapshot(s))
}

func TestMoveDownAtLastIsNoop(t *testing.T) {
	s, err := NewSession(makeRecords(6), 3)
	require.NoError(t, err)
	before := snapshot(s)
	s.MoveDown()
	assert.Equal(t, before, snapshot(s))
}

func TestMoveUpThenDownRestoresInteriorState(t *testing.T) {
	s, err := NewSession(makeRecords(30), 7)
	require.NoError(t, err)
	// visit every cursor position; whenever the cursor is strictly inside
	// the viewport, up then down must restore cursor and viewport exactly
	checked := 0
	for s.Cursor() > 0 {
		before := snapshot(s)
		if before.cursor > before.top {
			s.MoveUp()
			s.MoveDown()
			assert.Equal(t, before, snapshot(s))
			checked++
		}
		s.MoveUp()
		checkInvariant(t, s)
	}
	assert.Positive(t, checked)
}

func TestMoveDownThenUpRestoresState(t *testing.T) {
	s, err := NewSession(makeRecords(20), 5)
	require.NoError(t, err)
	for i := 0; i < 19; i++ {
		s.MoveUp()
	}
	// cursor 0, viewport [0, 4]; moving down inside the window and back is exact
	for i := 0; i < 3; i++ {
		s.MoveDown()
		before := snapshot(s)
		s.MoveDown()
		s.MoveUp()
		assert.Equal(t, before, snapshot(s))
	}
}

func TestPaging(t *testing.T) {
	s, err := NewSession(makeRecords(25), 10)
	require.NoError(t, err)
	s.PageUp()
	assert.Equal(t, state{cursor: 14, top: 14, bottom: 23}, snapshot(s))
	s.PageUp()
	s.PageUp()
	assert.Equal(t, state{cursor: 0, top: 0, bottom: 9}, snapshot(s))
	s.PageDown()
	assert.Equal(t, state{cursor: 10, top: 1, bottom: 10}, snapshot(s))
	checkInvariant(t, s)
}

func TestToggleMarkTwiceRestores(t *testing.T) {
	s, err := NewSession(makeRecords(5), 10)
	require.NoError(t, err)
	s.MoveUp()
	cur := s.Cursor()
	assert.False(t, s.IsMarked(cur))
	s.ToggleMark()
	assert.True(t, s.IsMarked(cur))
	assert.Equal(t, []scanner.FileRecord{s.Current()}, s.Marked())
	s.ToggleMark()
	assert.False(t, s.IsMarked(cur))
	assert.Empty(t, s.Marked())
}

func TestMarkedInDisplayOrder(t *testing.T) {
	recs := makeRecords(5)
	s, err := NewSession(recs, 10)
	require.NoError(t, err)
	s.ToggleMark() // index 4
	s.MoveUp()
	s.MoveUp()
	s.MoveUp()
	s.ToggleMark() // index 1

	assert.Equal(t, []scanner.FileRecord{recs[1], recs[4]}, s.Marked())
	assert.Equal(t, recs[1].Size+recs[4].Size, s.MarkedSize())
}

func TestSessionIsDetachedFromInput(t *testing.T) {
	recs := makeRecords(3)
	s, err := NewSession(recs, 10)
	require.NoError(t, err)
	recs[2].Path = "/changed"
	assert.Equal(t, "/data/f02", s.Current().Path)
}

func TestRender(t *testing.T) {
	s, err := NewSession(makeRecords(6), 3)
	require.NoError(t, err)
	s.MoveUp()
	s.ToggleMark()

	var buf bytes.Buffer
	r := Renderer{
		HumanReadable: true,
		Highlight:     func(line string) string { return ">" + line + "<" },
	}
	require.NoError(t, s.Render(&buf, r))

	assert.Equal(t, strings.Join([]string{
		"[ ] /data/f03: 4.00 KB",
		">[X] /data/f04: 5.00 KB<",
		"[ ] /data/f05: 6.00 KB",
		"[4 / 5]",
		"",
	}, "\n"), buf.String())
}

func TestRender_RawSizes(t *testing.T) {
	s, err := NewSession(makeRecords(1), 10)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, s.Render(&buf, Renderer{HumanReadable: false}))
	assert.Equal(t, "[ ] /data/f00: 1024\n[0 / 0]\n", buf.String())
}

func TestNewRendererHighlightKeepsText(t *testing.T) {
	s, err := NewSession(makeRecords(2), 10)
	require.NoError(t, err)
	row := NewRenderer(true).Row(s, s.Cursor())
	assert.Contains(t, row, "[ ] /data/f01: 2.00 KB")
}

type scriptedKeys struct {
	keys []string
	err  error
}

func (k *scriptedKeys) ReadKey() (string, error) {
	if len(k.keys) == 0 {
		if k.err != nil {
			return "", k.err
		}
		return "", errors.New("script exhausted")
	}
	next := k.keys[0]
	k.keys = k.keys[1:]
	return next, nil
}

func TestLoop_Commit(t *testing.T) {
	recs := makeRecords(4)
	s, err := NewSession(recs, 10)
	require.NoError(t, err)

	keys := &scriptedKeys{keys: []string{" ", "w", "x", "w", " ", "s", "enter"}}
	var out bytes.Buffer
	outcome, err := Loop(s, keys, &out, DefaultKeyMap(), Renderer{HumanReadable: true})
	require.NoError(t, err)

	assert.True(t, outcome.Committed)
	assert.Equal(t, []scanner.FileRecord{recs[1], recs[3]}, outcome.Marked)
	// one redraw per key read
	assert.Equal(t, 7, strings.Count(out.String(), clearScreen))
}

func TestLoop_Quit(t *testing.T) {
	s, err := NewSession(makeRecords(4), 10)
	require.NoError(t, err)

	keys := &scriptedKeys{keys: []string{" ", "e"}}
	outcome, err := Loop(s, keys, &bytes.Buffer{}, DefaultKeyMap(), Renderer{})
	require.NoError(t, err)
	assert.False(t, outcome.Committed)
	assert.Empty(t, outcome.Marked)
}

func TestLoop_ReadErrorNeverCommits(t *testing.T) {
	s, err := NewSession(makeRecords(4), 10)
	require.NoError(t, err)

	boom := errors.New("tty gone")
	keys := &scriptedKeys{keys: []string{" "}, err: boom}
	outcome, err := Loop(s, keys, &bytes.Buffer{}, DefaultKeyMap(), Renderer{})
	assert.ErrorIs(t, err, boom)
	assert.False(t, outcome.Committed)
}

func TestKeyMapAction(t *testing.T) {
	km := DefaultKeyMap()
	cases := map[string]Action{
		"w":      ActionUp,
		"up":     ActionUp,
		"s":      ActionDown,
		"down":   ActionDown,
		" ":      ActionToggle,
		"space":  ActionToggle,
		"enter":  ActionCommit,
		"e":      ActionQuit,
		"ctrl+c": ActionQuit,
		"pgup":   ActionPageUp,
		"pgdown": ActionPageDown,
		"z":      ActionNone,
	}
	for name, want := range cases {
		assert.Equal(t, want, km.Action(name), name)
	}

	km.Quit.SetEnabled(false)
	assert.Equal(t, ActionNone, km.Action("q"))
}
