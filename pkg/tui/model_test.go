package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackcoderx/reqtree/pkg/fsys"
	"github.com/blackcoderx/reqtree/pkg/rest"
)

const root = "/ws/http"

func newTestModel(t *testing.T) (Model, *rest.Manager) {
	t.Helper()
	m := rest.NewManager(fsys.NewMemory(), root)

	require.NoError(t, m.CreateFolder("users", ""))
	e, err := m.Create("list", rest.GET, root+"/users")
	require.NoError(t, err)
	e.SetURL("https://x.test/users")
	e.SetHeaders([]rest.KeyValue{{Key: "Accept", Value: "application/json"}})
	require.NoError(t, e.Save())
	_, err = m.Create("health", rest.HEAD, "")
	require.NoError(t, err)

	model := NewModel(m)
	model = update(t, model, tea.WindowSizeMsg{Width: 120, Height: 30})
	model = update(t, model, loadTree(m)())
	return model, m
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model
}

func press(t *testing.T, m Model, key string) (Model, tea.Cmd) {
	t.Helper()
	var msg tea.KeyMsg
	switch key {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+y":
		msg = tea.KeyMsg{Type: tea.KeyCtrlY}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func paths(rows []row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.node.NodePath()
	}
	return out
}

func TestModel_LoadsCollapsedTree(t *testing.T) {
	m, _ := newTestModel(t)

	assert.False(t, m.loading)
	assert.Equal(t, []string{root + "/users", root + "/health.HEAD"}, paths(m.rows))
	assert.Equal(t, 0, m.cursor)
}

func TestModel_ExpandAndNavigate(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = press(t, m, "enter")
	assert.Equal(t, []string{root + "/users", root + "/users/list.GET", root + "/health.HEAD"}, paths(m.rows))
	assert.Equal(t, 1, m.rows[1].depth)

	m, _ = press(t, m, "j")
	m, _ = press(t, m, "down")
	assert.Equal(t, 2, m.cursor)
	m, _ = press(t, m, "down")
	assert.Equal(t, 2, m.cursor, "cursor stops at the last row")

	m, _ = press(t, m, "k")
	m, _ = press(t, m, "up")
	m, _ = press(t, m, "up")
	assert.Equal(t, 0, m.cursor)

	m, _ = press(t, m, "enter")
	assert.Len(t, m.rows, 2, "enter collapses an expanded folder")
}

func TestModel_PreviewRequest(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = press(t, m, "enter")
	m, _ = press(t, m, "down")
	m, cmd := press(t, m, "enter")
	require.NotNil(t, cmd)

	msg := cmd()
	preview, ok := msg.(previewMsg)
	require.True(t, ok)
	require.NoError(t, preview.err)
	assert.Contains(t, preview.content, "https://x.test/users")

	m = update(t, m, msg)
	assert.Equal(t, root+"/users/list.GET", m.previewPath)
	assert.Contains(t, m.View(), "list")
}

func TestModel_CopyPath(t *testing.T) {
	m, _ := newTestModel(t)

	var copied string
	m.copyToClipboard = func(s string) error {
		copied = s
		return nil
	}
	m, _ = press(t, m, "down")
	m, _ = press(t, m, "ctrl+y")
	assert.Equal(t, root+"/health.HEAD", copied)
	assert.Contains(t, m.status, "copied")

	m.copyToClipboard = func(string) error { return errors.New("no clipboard") }
	m, _ = press(t, m, "ctrl+y")
	assert.Contains(t, m.status, "no clipboard")
}

func TestModel_RefreshPicksUpChanges(t *testing.T) {
	m, manager := newTestModel(t)

	_, err := manager.Create("added", rest.POST, "")
	require.NoError(t, err)

	m, cmd := press(t, m, "r")
	require.NotNil(t, cmd)
	assert.True(t, m.loading)

	m = update(t, m, loadTree(manager)())
	assert.False(t, m.loading)
	assert.Contains(t, paths(m.rows), root+"/added.POST")
}

func TestModel_Filter(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = press(t, m, "/")
	assert.True(t, m.filtering)
	assert.Len(t, m.rows, 2, "an empty filter lists every request")

	for _, r := range "lst" {
		m, _ = press(t, m, string(r))
	}
	require.NotEmpty(t, m.rows)
	assert.Equal(t, root+"/users/list.GET", m.rows[0].node.NodePath())
	assert.Equal(t, "users/list.GET", m.rows[0].label)

	m, _ = press(t, m, "esc")
	assert.False(t, m.filtering)
	assert.Equal(t, []string{root + "/users", root + "/health.HEAD"}, paths(m.rows))
}

func TestModel_Quit(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := press(t, m, "q")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestRecordMarkdown(t *testing.T) {
	md := RecordMarkdown(rest.Record{
		Name:     "create",
		Method:   rest.POST,
		URL:      "https://x.test/users",
		Headers:  []rest.KeyValue{{Key: "X-Pipe", Value: "a|b"}},
		Body:     rest.JSONBody(`{"a":1}`),
		Response: []byte(`{"status":201}`),
	})

	assert.Contains(t, md, "# POST create")
	assert.Contains(t, md, "`https://x.test/users`")
	assert.Contains(t, md, `| X-Pipe | a\|b |`)
	assert.Contains(t, md, "{\n  \"a\": 1\n}")
	assert.Contains(t, md, "## Last response")
}
