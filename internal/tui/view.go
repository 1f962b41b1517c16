package tui

import (
	"fmt"
	"strings"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	_, _, cw, ch := m.canvasRect()

	header := titleStyle.Render(" pen ─ terminal curve editor ") +
		dimStyle.Render(fmt.Sprintf(" [%s] zoom %.2fx  shapes %d",
			m.mode, m.host.Zoom(), len(m.host.IDs())))

	canvas := m.renderCanvas(cw, ch)

	status := statusStyle.Render(" " + m.status)

	var footer string
	if m.helpVisible {
		footer = m.help.FullHelpView(m.keys.FullHelp())
	} else {
		footer = m.help.ShortHelpView(m.keys.ShortHelp())
	}

	var b strings.Builder
	b.WriteString(header)
	b.WriteByte('\n')
	b.WriteString(strings.Join(canvas, "\n"))
	b.WriteByte('\n')
	b.WriteString(status)
	b.WriteByte('\n')
	b.WriteString(footer)
	return appStyle.Render(b.String())
}
