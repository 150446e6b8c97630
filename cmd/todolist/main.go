package main

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/todolist/internal/config"
	"github.com/jask/todolist/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, closeLog, err := openLog(cfg.Log)
	if err != nil {
		log.Fatalf("log: %v", err)
	}

	p := tea.NewProgram(tui.New(cfg.UI, tui.WithLogger(logger)), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	closeLog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// openLog sends debug output to a file, since the terminal belongs to the UI.
func openLog(cfg config.LogConfig) (*log.Logger, func(), error) {
	if cfg.File == "" {
		return log.New(io.Discard, "", 0), func() {}, nil
	}
	f, err := tea.LogToFile(cfg.File, "todolist")
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", cfg.File, err)
	}
	return log.Default(), func() { _ = f.Close() }, nil
}
