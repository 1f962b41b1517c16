package main

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/govec/pen/internal/tui"
)

func main() {
	p := tea.NewProgram(tui.New(), tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}
