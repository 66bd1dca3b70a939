package tui

import (
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/blackcoderx/reqtree/pkg/rest"
)

const (
	defaultWidth  = 100
	defaultHeight = 24
)

// newSpinner creates the dots spinner shown while scanning.
func newSpinner() spinner.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Spinner{
		Frames: []string{".  ", ".. ", "...", " ..", "  .", "   "},
		FPS:    time.Second / 6,
	}
	sp.Style = lipgloss.NewStyle().Foreground(AccentColor)
	return sp
}

// newFilterInput creates the fuzzy filter input.
func newFilterInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "filter requests..."
	ti.Prompt = "/ "
	ti.CharLimit = 200
	ti.PromptStyle = lipgloss.NewStyle().Foreground(AccentColor)
	ti.TextStyle = lipgloss.NewStyle().Foreground(TextColor)
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(DimColor)
	return ti
}

// NewModel creates a browser for the tree managed by m. The tree is scanned
// by Init.
func NewModel(m *rest.Manager) Model {
	model := Model{
		manager:         m,
		expanded:        map[string]bool{},
		viewport:        viewport.New(previewWidth(defaultWidth), paneHeight(defaultHeight)),
		filter:          newFilterInput(),
		spinner:         newSpinner(),
		loading:         true,
		width:           defaultWidth,
		height:          defaultHeight,
		copyToClipboard: clipboard.WriteAll,
	}
	model.viewport.SetContent(HelpStyle.Render("Select a request to preview it."))
	return model
}

// Init scans the tree.
func (m Model) Init() tea.Cmd {
	return tea.Batch(loadTree(m.manager), m.spinner.Tick)
}

// loadTree scans the request tree off the event loop.
func loadTree(manager *rest.Manager) tea.Cmd {
	return func() tea.Msg {
		nodes, err := manager.GetRequests()
		return treeLoadedMsg{nodes: nodes, err: err}
	}
}

// loadPreview opens and renders the request at path.
func loadPreview(manager *rest.Manager, path string, width int) tea.Cmd {
	return func() tea.Msg {
		e, err := manager.Open(path)
		if err != nil {
			return previewMsg{path: path, err: err}
		}
		if e == nil {
			return previewMsg{path: path, content: HelpStyle.Render("Request no longer exists. Press r to refresh.")}
		}
		return previewMsg{path: path, content: RenderRecord(e.Record(), width)}
	}
}

func treeWidth(total int) int {
	w := total * 2 / 5
	if w < 24 {
		w = 24
	}
	return w
}

func previewWidth(total int) int {
	w := total - treeWidth(total) - 3
	if w < 20 {
		w = 20
	}
	return w
}

func paneHeight(total int) int {
	h := total - 3
	if h < 5 {
		h = 5
	}
	return h
}
