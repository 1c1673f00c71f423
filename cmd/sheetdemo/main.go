// Package main runs a terminal demo of the bottom sheet controller.
//
// Drag the sheet with the mouse, scroll it with the wheel, or press
// m / n / space to maximize, minimize or toggle. Settings are read from
// sheet.yaml in the working directory unless -config names another file.
// Set SHEETDEMO_LOG to a path to write a transition log.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-drift/sheet/pkg/errors"
	"github.com/go-drift/sheet/pkg/sheet"
)

func main() {
	configPath := flag.String("config", "", "path to a sheet.yaml file")
	items := flag.Int("items", 60, "number of rows in the sheet content")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if path := os.Getenv("SHEETDEMO_LOG"); path != "" {
		f, err := tea.LogToFile(path, "sheetdemo")
		if err != nil {
			errors.Report(&errors.SheetError{
				Op:   "sheetdemo.log",
				Kind: errors.KindConfig,
				Path: path,
				Err:  err,
			})
		} else {
			defer f.Close()
		}
	}

	m, err := newModel(cfg, contentLines(*items))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer m.controller.Detach()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (sheet.Config, error) {
	if path != "" {
		return sheet.LoadConfig(path)
	}
	dir, err := os.Getwd()
	if err != nil {
		return sheet.Config{}, err
	}
	return sheet.LoadConfigOptional(dir)
}

func contentLines(n int) []string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("Row %d", i+1)
	}
	return lines
}
