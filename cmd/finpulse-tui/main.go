package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rvillegas/finpulse/internal/tui"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: finpulse-tui <dataset-file>")
		os.Exit(1)
	}
	datasetPath := os.Args[1]

	if _, err := os.Stat(datasetPath); os.IsNotExist(err) {
		fmt.Printf("Error: dataset file not found: %s\n", datasetPath)
		os.Exit(1)
	}

	model := tui.NewModel(datasetPath)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
