package main

import (
	"fmt"
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/drawer/internal/config"
	"github.com/jask/drawer/internal/drawer"
	"github.com/jask/drawer/internal/tui"
	"github.com/jask/drawer/internal/visibility"
)

var pages = []tui.Page{
	{Title: "Inbox", Body: "Drag from the left edge, press tab, or click a menu row."},
	{Title: "Starred", Body: "Nothing starred yet."},
	{Title: "Archive", Body: "Older conversations live here."},
	{Title: "Settings", Body: "Edit ~/.config/drawer/config.toml to change the animation."},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if cfg.Debug.LogFile != "" {
		f, err := tea.LogToFile(cfg.Debug.LogFile, "drawer")
		if err != nil {
			log.Fatalf("log file: %v", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	opts, err := cfg.DrawerOptions()
	if err != nil {
		log.Fatalf("drawer options: %v", err)
	}
	// the host owns this state; the drawer only follows it
	state := visibility.New(cfg.Drawer.StartOpen)
	opts.State = state
	nav := tui.NewNav(pages)
	opts.Menu = nav.Menu()
	opts.Content = nav.Content()

	d, err := drawer.New(opts)
	if err != nil {
		log.Fatalf("drawer: %v", err)
	}
	defer d.Dispose()

	state.Subscribe(func(v visibility.Value) {
		log.Printf("host: drawer visible=%t", v.Visible)
	})

	p := tea.NewProgram(tui.New(d, tui.ThemeFromConfig(cfg.Style), nav),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}
