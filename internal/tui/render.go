package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/drawer/internal/geometry"
	"github.com/jask/drawer/internal/widgets"
)

const (
	// cellHeightPx converts the drawer's vertical offset into terminal rows.
	cellHeightPx = 16
	// menuHeaderRows is the title plus the blank row widgets.Menu draws.
	menuHeaderRows = 2
)

func (a *App) View() string {
	if a.width <= 0 || a.height <= 0 {
		return ""
	}
	tr := a.drawer.Transforms()
	base := a.renderDrawer(tr)
	left, top, w, h := a.contentRect(tr)
	return widgets.OverlayAt(base, a.renderContent(tr, w, h), left, top, a.width, a.height)
}

// contentRect is the scaled content box, shrunk around its vertical centre
// and pushed right by the translation.
func (a *App) contentRect(tr geometry.Transforms) (left, top, width, height int) {
	width = max(1, int(math.Round(float64(a.width)*tr.ContentScale)))
	height = max(1, int(math.Round(float64(a.height)*tr.ContentScale)))
	left = int(math.Round(tr.ContentTranslateX))
	top = (a.height - height) / 2
	return left, top, width, height
}

func (a *App) menuTop() int {
	return int(math.Round(a.drawer.Transforms().DrawerOffsetY / cellHeightPx))
}

// menuPalette fades the menu colours in from the backdrop with the drawer's
// opacity.
func (a *App) menuPalette(tr geometry.Transforms) widgets.Palette {
	backdrop := a.drawer.Options().Backdrop
	return widgets.Palette{
		Fg:     blend(backdrop, a.theme.DrawerFg, tr.DrawerOpacity),
		Accent: blend(backdrop, a.theme.Accent, tr.DrawerOpacity),
		Bg:     backdrop,
	}
}

func (a *App) renderDrawer(tr geometry.Transforms) string {
	opts := a.drawer.Options()
	bg := lipgloss.NewStyle().Background(opts.Backdrop)
	base := widgets.Fill(a.width, a.height, bg.Render)

	if p, ok := opts.Menu.(widgets.Painter); ok {
		p.Paint(a.menuPalette(tr))
	}
	menuWidth := max(1, int(math.Round(float64(a.width)*opts.OpenRatio)))
	top := int(math.Round(tr.DrawerOffsetY / cellHeightPx))
	return widgets.OverlayAt(base, opts.Menu.Render(menuWidth, a.height), 0, top, a.width, a.height)
}

func (a *App) renderContent(tr geometry.Transforms, width, height int) string {
	opts := a.drawer.Options()
	if p, ok := opts.Content.(widgets.Painter); ok {
		p.Paint(widgets.Palette{Fg: a.theme.ContentFg, Accent: a.theme.Accent, Bg: a.theme.ContentBg})
	}
	var content widgets.Widget = opts.Content
	if opts.Decoration != nil {
		// blend 0 draws the border in the content colour, which reads as none
		content = widgets.Framed{
			Child:      opts.Content,
			BorderFg:   blend(a.theme.ContentBg, opts.Decoration.Border, tr.DecorationBlend),
			Background: a.theme.ContentBg,
		}
	}
	return widgets.Fit(content.Render(width, height), width, height)
}

func (a *App) helpLine() string {
	parts := make([]string, 0, len(a.keys.help()))
	for _, b := range a.keys.help() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " · ")
}
