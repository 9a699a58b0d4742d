package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/drawer/internal/widgets"
)

// Page is one drawer menu entry and the body shown when it is selected.
type Page struct {
	Title string
	Body  string
}

// Nav is the page list behind the menu and the page shown as content. Its
// Menu and Content widgets are what the drawer is constructed with; the host
// moves the cursor and paints them.
type Nav struct {
	Pages   []Page
	Cursor  int
	Current int
	Status  string
	Help    string

	menuPalette    widgets.Palette
	contentPalette widgets.Palette
}

// NewNav returns a Nav showing the first page.
func NewNav(pages []Page) *Nav {
	return &Nav{Pages: pages}
}

// Menu is the drawer-side widget listing the pages.
func (n *Nav) Menu() widgets.Widget { return navMenu{n} }

// Content is the main view showing the current page.
func (n *Nav) Content() widgets.Widget { return navContent{n} }

func (n *Nav) page() Page {
	if n.Current >= 0 && n.Current < len(n.Pages) {
		return n.Pages[n.Current]
	}
	return Page{Title: "Home"}
}

type navMenu struct{ n *Nav }

func (m navMenu) Paint(p widgets.Palette) { m.n.menuPalette = p }

func (m navMenu) Render(width, height int) string {
	titles := make([]string, len(m.n.Pages))
	for i, p := range m.n.Pages {
		titles[i] = p.Title
	}
	bg := lipgloss.NewStyle().Background(m.n.menuPalette.Bg)
	return widgets.Menu{
		Title:    "Menu",
		Items:    titles,
		Selected: m.n.Cursor,
		Style:    bg.Foreground(m.n.menuPalette.Fg),
		Active:   bg.Foreground(m.n.menuPalette.Accent).Bold(true),
	}.Render(width, height)
}

type navContent struct{ n *Nav }

func (c navContent) Paint(p widgets.Palette) { c.n.contentPalette = p }

func (c navContent) Render(width, height int) string {
	page := c.n.page()
	body := page.Body
	if c.n.Help != "" {
		body += "\n\n" + c.n.Help
	}
	if c.n.Status != "" {
		body += "\n" + c.n.Status
	}
	return widgets.Box{
		Title:      page.Title,
		Content:    body,
		Foreground: c.n.contentPalette.Fg,
		Background: c.n.contentPalette.Bg,
	}.Render(width, height)
}
