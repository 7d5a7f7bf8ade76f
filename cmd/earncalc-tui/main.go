package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bajramiymer-oss/earncalc/internal/config"
	"github.com/bajramiymer-oss/earncalc/internal/domain"
	"github.com/bajramiymer-oss/earncalc/internal/tui"
)

func main() {
	// A parameter file is optional; without one the stock form values are
	// used and everything is adjusted interactively.
	params := domain.DefaultParameters()
	if len(os.Args) > 1 {
		parser := config.NewInputParser()
		loaded, err := parser.LoadFromFile(os.Args[1])
		if err != nil {
			fmt.Printf("Error loading parameters: %v\n", err)
			os.Exit(1)
		}
		params = loaded
	}

	model := tui.NewModel(params)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
