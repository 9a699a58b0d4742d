// Package tui hosts a drawer in a bubbletea program: it turns mouse and key
// messages into drawer input, drives animation frames, and paints the layers.
package tui

import (
	"log"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/drawer/internal/drawer"
	"github.com/jask/drawer/internal/visibility"
)

// frameInterval is the frame period while an animation runs.
const frameInterval = time.Second / 60

// frameMsg is one scheduled frame for the animation generation gen.
type frameMsg struct {
	gen uint64
}

// App ties the drawer to the terminal.
type App struct {
	drawer *drawer.Drawer
	theme  Theme
	keys   keyMap
	nav    *Nav

	width  int
	height int

	// frame chain bookkeeping; at most one frame per generation is in flight
	frameGen  uint64
	frameLive bool

	// pointer state for the gesture in progress
	pressed  bool
	captured bool
	moved    bool
	pressX   int

	sub visibility.Subscription
}

// New builds the host for d. The drawer renders its own Menu and Content
// widgets; nav is the model the host's keys and clicks move, normally the one
// those widgets came from.
func New(d *drawer.Drawer, theme Theme, nav *Nav) *App {
	a := &App{
		drawer: d,
		theme:  theme,
		keys:   newKeyMap(),
		nav:    nav,
	}
	nav.Help = a.helpLine()
	a.sub = d.Subscribe(a.onVisibility)
	return a
}

func (a *App) onVisibility(v visibility.Value) {
	if v.Visible {
		a.nav.Status = "menu open"
	} else {
		a.nav.Status = "menu closed"
	}
}

func (a *App) Init() tea.Cmd {
	return a.scheduleFrame()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		a.drawer.Resize(m.Width, m.Height)
	case frameMsg:
		if m.gen != a.frameGen || !a.frameLive {
			return a, nil
		}
		a.frameLive = false
		a.drawer.Frame()
	case tea.KeyMsg:
		if key.Matches(m, a.keys.Quit) {
			a.shutdown()
			return a, tea.Quit
		}
		a.handleKey(m)
	case tea.MouseMsg:
		a.handleMouse(m)
	case tea.BlurMsg:
		a.cancelPointer()
	}
	return a, a.scheduleFrame()
}

// scheduleFrame starts a frame chain for the current animation generation.
// Frames left over from a superseded animation carry an old generation and
// are dropped in Update.
func (a *App) scheduleFrame() tea.Cmd {
	if !a.drawer.NeedsFrames() {
		return nil
	}
	gen := a.drawer.Generation()
	if a.frameLive && a.frameGen == gen {
		return nil
	}
	a.frameGen, a.frameLive = gen, true
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return frameMsg{gen: gen}
	})
}

func (a *App) handleKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, a.keys.Toggle):
		a.drawer.ToggleDrawer()
	case key.Matches(msg, a.keys.Open):
		a.drawer.OpenDrawer()
	case key.Matches(msg, a.keys.Close):
		a.drawer.CloseDrawer()
	case !a.drawer.IsOpen():
		return
	case key.Matches(msg, a.keys.Up):
		if a.nav.Cursor > 0 {
			a.nav.Cursor--
		}
	case key.Matches(msg, a.keys.Down):
		if a.nav.Cursor < len(a.nav.Pages)-1 {
			a.nav.Cursor++
		}
	case key.Matches(msg, a.keys.Select):
		a.nav.Current = a.nav.Cursor
		a.drawer.CloseDrawer()
	}
}

func (a *App) handleMouse(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		a.pressed, a.moved, a.pressX = true, false, msg.X
		a.captured = a.drawer.DragStart(float64(msg.X))
		if a.captured {
			log.Printf("tui: drag start x=%d", msg.X)
		}
	case tea.MouseActionMotion:
		if !a.pressed {
			return
		}
		if msg.X != a.pressX {
			a.moved = true
		}
		if a.captured {
			a.drawer.DragUpdate(float64(msg.X))
		}
	case tea.MouseActionRelease:
		if !a.pressed {
			return
		}
		wasCaptured, moved := a.captured, a.moved
		a.pressed, a.captured, a.moved = false, false, false
		if wasCaptured {
			a.drawer.DragEnd()
		}
		if !moved {
			a.click(msg.X, msg.Y)
		}
	}
}

// click handles a press and release without movement.
func (a *App) click(x, y int) {
	if a.inContent(x) {
		a.drawer.Tap()
		return
	}
	if row := y - a.menuTop() - menuHeaderRows; a.drawer.IsOpen() && row >= 0 && row < len(a.nav.Pages) {
		a.nav.Cursor, a.nav.Current = row, row
		a.drawer.CloseDrawer()
	}
}

func (a *App) inContent(x int) bool {
	left, _, w, _ := a.contentRect(a.drawer.Transforms())
	return x >= left && x < left+w
}

func (a *App) cancelPointer() {
	if a.captured {
		a.drawer.DragCancel()
	}
	a.pressed, a.captured, a.moved = false, false, false
}

func (a *App) shutdown() {
	a.drawer.Unsubscribe(a.sub)
	a.drawer.Dispose()
}

// Current returns the index of the page shown in the content.
func (a *App) Current() int { return a.nav.Current }

// Status returns the last visibility status line.
func (a *App) Status() string { return a.nav.Status }
