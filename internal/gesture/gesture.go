// Package gesture decides which horizontal drags drive the drawer and maps
// finger movement onto progress.
package gesture

import (
	"fmt"
	"strings"

	"github.com/jask/drawer/internal/anim"
)

// Phase is the tracker state.
type Phase int

const (
	Idle Phase = iota
	Captured
)

func (p Phase) String() string {
	if p == Captured {
		return "captured"
	}
	return "idle"
}

// CancelPolicy says what a cancelled drag does with progress.
type CancelPolicy int

const (
	// CancelSettle treats a cancel like a release.
	CancelSettle CancelPolicy = iota
	// CancelLeave leaves progress wherever the finger left it.
	CancelLeave
)

// ParseCancelPolicy accepts "settle" or "leave".
func ParseCancelPolicy(s string) (CancelPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "settle":
		return CancelSettle, nil
	case "leave":
		return CancelLeave, nil
	}
	return CancelSettle, fmt.Errorf("unknown cancel policy %q", s)
}

func (c CancelPolicy) String() string {
	if c == CancelLeave {
		return "leave"
	}
	return "settle"
}

// Animator is the part of anim.Driver the tracker writes to.
type Animator interface {
	Progress() float64
	Stop()
	JumpTo(v float64)
	AnimateTo(v float64)
}

// Visibility is the part of visibility.State the tracker reads and requests.
type Visibility interface {
	IsOpen() bool
	Open()
	Close()
}

// session exists only while a drag is captured.
type session struct {
	startX          float64
	progressAtStart float64
	// span is the drag distance covering the full progress range, fixed at
	// Start so a resize mid-drag does not move the drawer under the finger.
	span float64
}

// Tracker is the Idle/Captured state machine. It is not safe for concurrent
// use; all calls come from the host's event loop.
type Tracker struct {
	anim      Animator
	vis       Visibility
	width     float64
	openRatio float64
	cancel    CancelPolicy
	drag      *session
}

// NewTracker returns an idle tracker. openRatio must already be validated.
func NewTracker(a Animator, v Visibility, width, openRatio float64, cancel CancelPolicy) *Tracker {
	return &Tracker{anim: a, vis: v, width: width, openRatio: openRatio, cancel: cancel}
}

// Phase returns the current state.
func (t *Tracker) Phase() Phase {
	if t.drag != nil {
		return Captured
	}
	return Idle
}

// SetWidth updates the available width. A drag in flight keeps its scale.
func (t *Tracker) SetWidth(w float64) { t.width = w }

// EdgeRegion is the distance from the active edge inside which a drag may start.
func (t *Tracker) EdgeRegion() float64 {
	return t.width * (1 - t.openRatio)
}

// CanCapture reports whether a drag starting at x would be captured.
func (t *Tracker) CanCapture(x float64) bool {
	if t.width <= 0 {
		return false
	}
	edge := t.EdgeRegion()
	if !t.vis.IsOpen() {
		return x >= 0 && x <= edge
	}
	// open: only the strip of content just right of the drawer
	boundary := t.width * t.openRatio
	return x >= boundary && x <= boundary+edge
}

// Start begins a drag at x. It returns whether the drag was captured; a drag
// that is not captured is ignored until the next Start.
func (t *Tracker) Start(x float64) bool {
	t.drag = nil
	if !t.CanCapture(x) {
		return false
	}
	t.anim.Stop()
	t.drag = &session{
		startX:          x,
		progressAtStart: t.anim.Progress(),
		span:            t.width * t.openRatio,
	}
	return true
}

// Update moves the captured drag to x.
func (t *Tracker) Update(x float64) {
	if t.drag == nil {
		return
	}
	delta := (x - t.drag.startX) / t.drag.span
	t.anim.JumpTo(anim.Clamp01(t.drag.progressAtStart + delta))
}

// End releases the drag and settles to the nearer endpoint.
func (t *Tracker) End() {
	if t.drag == nil {
		return
	}
	t.drag = nil
	t.settle()
}

// Cancel aborts the drag according to the cancel policy.
func (t *Tracker) Cancel() {
	if t.drag == nil {
		return
	}
	t.drag = nil
	if t.cancel == CancelSettle {
		t.settle()
	}
}

// settle requests the visibility matching progress and then animates there
// explicitly, since the request is a no-op when visibility already matches.
func (t *Tracker) settle() {
	if t.anim.Progress() >= 0.5 {
		t.vis.Open()
		t.anim.AnimateTo(1)
		return
	}
	t.vis.Close()
	t.anim.AnimateTo(0)
}
