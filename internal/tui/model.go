package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/govec/pen"
)

// mode is the interaction mode of the canvas.
type mode int

const (
	modeSelect mode = iota
	modePen
	modeEdit
)

func (m mode) String() string {
	switch m {
	case modeSelect:
		return "select"
	case modePen:
		return "pen"
	case modeEdit:
		return "edit"
	default:
		return "?"
	}
}

// Model is the bubbletea model for the pen demo canvas. It implements the
// host side of the pen contract: an in-memory shape store, pointer event
// classification (including double clicks), zoom, and the animation-frame
// loop driving the hover preview.
type Model struct {
	width  int
	height int

	host *pen.MemHost
	mode mode

	creator *pen.Creator
	editor  *pen.Editor
	editID  pen.ShapeID

	// Pan offset in document units.
	panX, panY float64

	// Drag of a projected handle (edit mode): the host's generic drag
	// machinery, reporting moves back through ApplyHandleMove.
	dragHandle string

	// Double-click classification.
	lastClick    time.Time
	lastClickPos pen.Point

	// Frame loop state for the hover preview.
	framing bool

	status      string
	helpVisible bool
	keys        keyMap
	help        help.Model
}

// New creates the demo canvas with an empty shape store.
func New() Model {
	return Model{
		host:   pen.NewMemHost(),
		status: "pen-tui ready  (p: pen tool, h: help)",
		keys:   newKeyMap(),
		help:   help.New(),
	}
}

// Init requests nothing; all work is event driven.
func (m Model) Init() tea.Cmd {
	return nil
}

// frameMsg is the animation-frame tick for the hover preview loop.
type frameMsg time.Time

func frameCmd() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// doubleClickWindow is how close in time and space two presses must be
// to count as a double click.
const (
	doubleClickWindow = 350 * time.Millisecond
	doubleClickSlop   = 3.0 // document units
)
