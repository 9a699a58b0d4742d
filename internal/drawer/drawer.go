// Package drawer couples a visibility state with the animation driver and
// gesture tracker that render it.
//
// The drawer is host-agnostic: a host forwards input with the Drag*, Tap and
// Resize methods, calls Frame on every scheduled frame while NeedsFrames is
// true, and applies the returned transforms. All methods must be called from
// the host's single event loop.
package drawer

import (
	"fmt"
	"log"

	"github.com/jask/drawer/internal/anim"
	"github.com/jask/drawer/internal/geometry"
	"github.com/jask/drawer/internal/gesture"
	"github.com/jask/drawer/internal/visibility"
)

// Drawer is one slide-behind drawer.
type Drawer struct {
	opts    Options
	state   *visibility.State
	owned   bool
	driver  *anim.Driver
	tracker *gesture.Tracker
	mapper  geometry.Mapper

	width, height int

	sub      visibility.Subscription
	disposed bool
}

// New validates opts and builds a drawer. Progress starts at the endpoint
// matching the initial visibility.
func New(opts Options) (*Drawer, error) {
	if err := opts.validate(); err != nil {
		return nil, fmt.Errorf("new drawer: %w", err)
	}
	if opts.Curve == nil {
		opts.Curve = anim.Ease
	}
	d := &Drawer{opts: opts, state: opts.State}
	if d.state == nil {
		d.state = visibility.New(false)
		d.owned = true
	}
	d.driver = anim.NewDriver(opts.Duration, opts.Curve, opts.Clock)
	if d.state.IsOpen() {
		d.driver.JumpTo(1)
	}
	d.tracker = gesture.NewTracker(d.driver, d.state, 0, opts.OpenRatio, opts.CancelPolicy)
	d.mapper = geometry.Mapper{
		OpenRatio:         opts.OpenRatio,
		Curve:             opts.Curve,
		AnimateDecoration: opts.AnimateDecoration,
	}
	d.sub = d.state.Subscribe(d.handleVisibilityChanged)
	return d, nil
}

// handleVisibilityChanged is the only caller of RunForward and RunBackward.
// While a drag is captured the finger owns progress; the release settles it.
func (d *Drawer) handleVisibilityChanged(v visibility.Value) {
	log.Printf("drawer: visible=%t progress=%.3f", v.Visible, d.driver.Progress())
	if d.tracker.Phase() == gesture.Captured {
		return
	}
	if v.Visible {
		d.driver.RunForward()
		return
	}
	d.driver.RunBackward()
}

// Options returns the construction options.
func (d *Drawer) Options() Options { return d.opts }

// State returns the visibility state the drawer follows.
func (d *Drawer) State() *visibility.State { return d.state }

// OpenDrawer requests the open state.
func (d *Drawer) OpenDrawer() { d.state.Open() }

// CloseDrawer requests the closed state.
func (d *Drawer) CloseDrawer() { d.state.Close() }

// ToggleDrawer flips the requested state.
func (d *Drawer) ToggleDrawer() { d.state.Toggle() }

// IsOpen reports the settled state, which may lead progress while animating.
func (d *Drawer) IsOpen() bool { return d.state.IsOpen() }

// Subscribe registers fn for visibility changes.
func (d *Drawer) Subscribe(fn func(visibility.Value)) visibility.Subscription {
	return d.state.Subscribe(fn)
}

// Unsubscribe removes a registration made with Subscribe.
func (d *Drawer) Unsubscribe(id visibility.Subscription) {
	d.state.Unsubscribe(id)
}

// Resize sets the available area in cells.
func (d *Drawer) Resize(width, height int) {
	d.width, d.height = width, height
	d.tracker.SetWidth(float64(width))
	d.mapper.Width = float64(width)
}

// Size returns the last size passed to Resize.
func (d *Drawer) Size() (width, height int) { return d.width, d.height }

// DragStart begins a horizontal drag at column x and reports whether it was
// captured.
func (d *Drawer) DragStart(x float64) bool {
	if d.disposed {
		return false
	}
	ok := d.tracker.Start(x)
	if ok {
		log.Printf("drawer: drag captured at x=%.1f", x)
	}
	return ok
}

// DragUpdate moves a captured drag to column x.
func (d *Drawer) DragUpdate(x float64) { d.tracker.Update(x) }

// DragEnd releases a captured drag and settles to the nearer end.
func (d *Drawer) DragEnd() { d.tracker.End() }

// DragCancel aborts a captured drag according to the cancel policy.
func (d *Drawer) DragCancel() { d.tracker.Cancel() }

// Dragging reports whether a drag is captured.
func (d *Drawer) Dragging() bool { return d.tracker.Phase() == gesture.Captured }

// Tap handles a tap on the content. While the drawer is open the tap closes
// it and Tap returns true.
func (d *Drawer) Tap() bool {
	if d.disposed || !geometry.TapCatcher(d.state.Value()) {
		return false
	}
	d.state.Close()
	return true
}

// Progress returns the current progress.
func (d *Drawer) Progress() float64 { return d.driver.Progress() }

// Generation identifies the current animation; see anim.Driver.Generation.
func (d *Drawer) Generation() uint64 { return d.driver.Generation() }

// NeedsFrames reports whether the host should keep scheduling frames.
func (d *Drawer) NeedsFrames() bool { return !d.disposed && d.driver.Running() }

// Frame advances the animation and returns the transforms to draw along with
// whether more frames are needed.
func (d *Drawer) Frame() (geometry.Transforms, bool) {
	if d.disposed {
		return d.Transforms(), false
	}
	_, running := d.driver.Tick()
	return d.Transforms(), running
}

// Transforms returns the transforms for the current progress.
func (d *Drawer) Transforms() geometry.Transforms {
	return d.mapper.Map(d.driver.Progress())
}

// TapCatcher reports whether the content overlay currently catches taps.
func (d *Drawer) TapCatcher() bool {
	return geometry.TapCatcher(d.state.Value())
}

// Dispose stops the animation and detaches from the visibility state. An
// externally supplied state is left intact for its owner; a self-created one
// loses every observer. Dispose is idempotent.
func (d *Drawer) Dispose() {
	if d.disposed {
		return
	}
	d.disposed = true
	d.driver.Stop()
	d.state.Unsubscribe(d.sub)
	if d.owned {
		d.state.Clear()
	}
}
