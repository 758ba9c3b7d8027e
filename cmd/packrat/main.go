package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/jask/packrat/internal/config"
	"github.com/jask/packrat/internal/gear"
	"github.com/jask/packrat/internal/logging"
	"github.com/jask/packrat/internal/store"
	"github.com/jask/packrat/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(logging.Config{Level: cfg.Logging.Level, File: cfg.Logging.File})
	if err != nil {
		log.Printf("warn: log file unavailable: %v", err)
	}

	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		fmt.Fprintln(os.Stderr, "packrat needs an interactive terminal")
		os.Exit(1)
	}

	// Some terminals under-report color support through multiplexers.
	if os.Getenv("CLICOLOR_FORCE") != "" || strings.Contains(os.Getenv("COLORTERM"), "truecolor") {
		lipgloss.SetColorProfile(termenv.TrueColor)
	}

	st := store.New(logging.Component(logger, "store"))
	app, err := tui.New(cfg, st, logging.Component(logger, "tui"))
	if err != nil {
		log.Fatalf("board: %v", err)
	}
	defer app.Close()

	// Seeding after the board is built lets every pane hear the creates.
	if cfg.UI.DemoItems {
		seedDemo(st)
	}

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}

func seedDemo(st *store.Store) {
	tent := st.Create("Tent", "Two-person backpacking tent", 1200)
	stove := st.Create("Stove", "Canister stove with piezo igniter", 90)
	poles := st.Create("Trekking poles", "Collapsible carbon pair", 430)
	cubes := st.Create("Packing cubes", "Set of three compression cubes", 250)
	st.Create("Headlamp", "Rechargeable, 400 lumen", 85)
	spork := st.Create("Titanium spork", "Long-handled spork", 17)

	st.Reassign(tent.ID, gear.GroupCamping)
	st.Reassign(stove.ID, gear.GroupCamping)
	st.Reassign(poles.ID, gear.GroupHiking)
	st.Reassign(cubes.ID, gear.GroupTravel)
	st.Reassign(spork.ID, gear.GroupKitchen)
}
