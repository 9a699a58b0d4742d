package drawer

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/drawer/internal/anim"
	"github.com/jask/drawer/internal/gesture"
	"github.com/jask/drawer/internal/visibility"
	"github.com/jask/drawer/internal/widgets"
)

const (
	DefaultOpenRatio = 0.75
	DefaultDuration  = 250 * time.Millisecond
)

var (
	ErrInvalidOpenRatio = errors.New("open ratio must be in (0, 1]")
	ErrInvalidDuration  = errors.New("duration must be positive")
	ErrMissingWidget    = errors.New("menu and content widgets are required")
)

// Decoration is drawn around the content while the drawer is open.
type Decoration struct {
	Border lipgloss.Color
}

// Options configure a Drawer. They cannot change after New.
type Options struct {
	// Menu is rendered behind the content; Content is the main view. Both
	// are required.
	Menu    widgets.Widget
	Content widgets.Widget

	// State is an externally owned visibility. When nil the drawer creates and
	// owns one.
	State *visibility.State

	Backdrop          lipgloss.Color
	OpenRatio         float64
	Duration          time.Duration
	Curve             anim.Curve
	Decoration        *Decoration
	AnimateDecoration bool
	CancelPolicy      gesture.CancelPolicy

	// Clock defaults to the wall clock.
	Clock anim.Clock
}

// DefaultOptions returns the documented defaults: open ratio 0.75, 250ms, the
// "ease" curve, animated decoration and settle-on-cancel. Menu and Content
// are left for the caller.
func DefaultOptions() Options {
	return Options{
		Backdrop:          lipgloss.Color("#11111b"),
		OpenRatio:         DefaultOpenRatio,
		Duration:          DefaultDuration,
		Curve:             anim.Ease,
		AnimateDecoration: true,
		CancelPolicy:      gesture.CancelSettle,
	}
}

func (o Options) validate() error {
	if !(o.OpenRatio > 0 && o.OpenRatio <= 1) {
		return fmt.Errorf("%w: got %v", ErrInvalidOpenRatio, o.OpenRatio)
	}
	if o.Duration <= 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidDuration, o.Duration)
	}
	if o.Menu == nil || o.Content == nil {
		return ErrMissingWidget
	}
	return nil
}
