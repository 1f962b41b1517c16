package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/govec/pen"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case frameMsg:
		// Animation-frame loop: keep ticking only while the editor still
		// wants frames for the hover preview.
		if m.mode == modeEdit && m.editor != nil && m.editor.Frame() {
			return m, frameCmd()
		}
		m.framing = false
		return m, nil
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.helpVisible = !m.helpVisible
		return m, nil

	case key.Matches(msg, m.keys.ZoomIn):
		m.host.SetZoom(m.host.Zoom() * 1.2)
		m.status = fmt.Sprintf("zoom: %.2fx", m.host.Zoom())
		return m, nil

	case key.Matches(msg, m.keys.ZoomOut):
		m.host.SetZoom(m.host.Zoom() / 1.2)
		m.status = fmt.Sprintf("zoom: %.2fx", m.host.Zoom())
		return m, nil

	case key.Matches(msg, m.keys.Pan):
		step := 8 / m.host.Zoom()
		switch msg.String() {
		case "up":
			m.panY -= step
		case "down":
			m.panY += step
		case "left":
			m.panX -= step
		case "right":
			m.panX += step
		}
		return m, nil

	case key.Matches(msg, m.keys.Pen):
		m = m.leaveEdit()
		m.host.SetActiveTool(pen.ToolPen)
		m.creator = pen.NewCreator(m.host)
		m.mode = modePen
		m.status = "pen: click to place anchors, drag for curves, enter to commit"
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		id, ok := m.lastCurveID()
		if !ok {
			m.status = "edit: no curve to edit"
			return m, nil
		}
		m = m.leaveEdit()
		m.host.SetActiveTool(pen.ToolPointer)
		ed, err := pen.NewEditor(m.host, id)
		if err != nil {
			m.status = "edit: " + err.Error()
			return m, nil
		}
		m.editor = ed
		m.editID = id
		m.mode = modeEdit
		m.status = fmt.Sprintf("edit %s: click segment to insert, double-click anchor to remove, ctrl to preview", id)
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		return m.dispatchKey(pen.KeyEnter)

	case key.Matches(msg, m.keys.Escape):
		return m.dispatchKey(pen.KeyEscape)
	}
	return m, nil
}

func (m Model) dispatchKey(k pen.Key) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modePen:
		if m.creator != nil {
			m.creator.KeyDown(k)
			m = m.settleCreator()
		}
	case modeEdit:
		if m.editor != nil {
			m.editor.KeyDown(k)
			m = m.settleEditor()
		}
	}
	return m, nil
}

func (m Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.host.SetZoom(m.host.Zoom() * 1.1)
		return m, nil
	case tea.MouseButtonWheelDown:
		m.host.SetZoom(m.host.Zoom() / 1.1)
		return m, nil
	}

	cx, cy := msg.X, msg.Y
	ox, oy, cw, ch := m.canvasRect()
	if cx < ox || cx >= ox+cw || cy < oy || cy >= oy+ch {
		return m, nil
	}

	ev := pen.PointerEvent{
		Pos:     m.cellToDoc(cx-ox, cy-oy),
		Mods:    eventMods(msg),
		Pressed: msg.Button == tea.MouseButtonLeft && msg.Action != tea.MouseActionRelease,
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		double := time.Since(m.lastClick) < doubleClickWindow &&
			ev.Pos.Distance(m.lastClickPos) <= doubleClickSlop
		m.lastClick = time.Now()
		m.lastClickPos = ev.Pos
		return m.pointerDown(ev, double)

	case tea.MouseActionMotion:
		return m.pointerMove(ev)

	case tea.MouseActionRelease:
		return m.pointerUp(ev)
	}
	return m, nil
}

func (m Model) pointerDown(ev pen.PointerEvent, double bool) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modePen:
		if m.creator == nil {
			return m, nil
		}
		if double {
			m.creator.DoubleClick(ev)
		} else {
			m.creator.PointerDown(ev)
		}
		m = m.settleCreator()
		return m, nil

	case modeEdit:
		if m.editor == nil {
			return m, nil
		}
		if !double && !ev.Mods.Has(pen.ModAlt) {
			if id, ok := m.handleAt(ev.Pos); ok {
				m.dragHandle = id
				m.status = "drag " + id
				return m, nil
			}
		}
		var act pen.EditAction
		if double {
			act = m.editor.DoubleClick(ev)
		} else {
			act = m.editor.PointerDown(ev)
		}
		switch act {
		case pen.EditAnchor:
			m.status = "edit: anchor selected"
		case pen.EditInserted:
			m.status = "edit: anchor inserted"
		case pen.EditRemoved:
			m.status = "edit: anchor removed"
		case pen.EditSmoothed:
			m.status = "edit: anchor smoothed"
		}
		m = m.settleEditor()
		return m, nil
	}
	return m, nil
}

func (m Model) pointerMove(ev pen.PointerEvent) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modePen:
		if m.creator != nil {
			m.creator.PointerMove(ev)
		}
		return m, nil

	case modeEdit:
		if m.editor == nil {
			return m, nil
		}
		if m.dragHandle != "" && ev.Pressed {
			if s, ok := m.editedCurve(); ok {
				moved, err := pen.ApplyHandleMove(s, m.dragHandle, ev.Pos)
				if err == nil {
					m.host.ReplaceShape(m.editID, moved)
				}
			}
			return m, nil
		}
		m.editor.PointerMove(ev)
		var cmd tea.Cmd
		if !m.framing && ev.Mods.Has(pen.ModCtrl) {
			m.framing = true
			cmd = frameCmd()
		}
		return m, cmd
	}
	return m, nil
}

func (m Model) pointerUp(ev pen.PointerEvent) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modePen:
		if m.creator != nil {
			m.creator.PointerUp(ev)
		}
	case modeEdit:
		m.dragHandle = ""
	}
	return m, nil
}

// settleCreator folds a terminal creator state back into select mode.
func (m Model) settleCreator() Model {
	if m.creator == nil {
		return m
	}
	switch m.creator.State() {
	case pen.CreateCommitted:
		m.status = fmt.Sprintf("committed %s", m.creator.ShapeID())
		m.creator = nil
		m.mode = modeSelect
		m.host.SetActiveTool(pen.ToolPointer)
	case pen.CreateDiscarded:
		m.status = "discarded"
		m.creator = nil
		m.mode = modeSelect
		m.host.SetActiveTool(pen.ToolPointer)
	}
	return m
}

func (m Model) settleEditor() Model {
	if m.editor != nil && m.editor.Done() {
		m.status = fmt.Sprintf("edit %s: done", m.editID)
		m.editor = nil
		m.editID = ""
		m.mode = modeSelect
		m.dragHandle = ""
	}
	return m
}

// leaveEdit exits any in-flight session before switching modes.
func (m Model) leaveEdit() Model {
	if m.editor != nil {
		m.editor.Exit()
		m = m.settleEditor()
	}
	if m.creator != nil {
		m.creator.KeyDown(pen.KeyEscape)
		m = m.settleCreator()
	}
	return m
}

// lastCurveID returns the most recently created curve shape.
func (m Model) lastCurveID() (pen.ShapeID, bool) {
	ids := m.host.IDs()
	for i := len(ids) - 1; i >= 0; i-- {
		if s, ok := m.host.Shape(ids[i]); ok {
			if _, isCurve := s.(*pen.CurveShape); isCurve {
				return ids[i], true
			}
		}
	}
	return "", false
}

func (m Model) editedCurve() (*pen.CurveShape, bool) {
	s, ok := m.host.Shape(m.editID)
	if !ok {
		return nil, false
	}
	cs, ok := s.(*pen.CurveShape)
	return cs, ok
}

// handleAt tests the projected handles of the edited curve against a
// document-space position, nearest first.
func (m Model) handleAt(p pen.Point) (string, bool) {
	s, ok := m.editedCurve()
	if !ok {
		return "", false
	}
	radius := 6 / m.host.Zoom()
	bestID := ""
	bestDist := radius
	for _, h := range pen.CurveHandles(s) {
		if d := h.Pos.Distance(p); d <= bestDist {
			bestID = h.ID
			bestDist = d
		}
	}
	return bestID, bestID != ""
}

func eventMods(msg tea.MouseMsg) pen.Modifiers {
	var mods pen.Modifiers
	if msg.Shift {
		mods |= pen.ModShift
	}
	if msg.Alt {
		mods |= pen.ModAlt
	}
	if msg.Ctrl {
		mods |= pen.ModCtrl
	}
	return mods
}
