// Package anim drives a single progress value in [0,1] over time.
//
// The driver never schedules anything itself. A host frame loop calls Tick
// while Running reports true; that call is the only point where time advances.
package anim

import (
	"math"
	"time"
)

// Clock supplies the current time to a Driver.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock is the wall clock.
var SystemClock Clock = systemClock{}

// Driver interpolates progress toward a target with a fixed duration and curve.
type Driver struct {
	clock    Clock
	duration time.Duration
	curve    Curve

	progress float64
	from     float64
	target   float64
	start    time.Time
	span     time.Duration
	running  bool
	gen      uint64

	nextID     int
	tickers    map[int]func(float64)
	completers map[int]func(float64)
	order      []int
}

// NewDriver returns a stopped driver at progress 0. A nil clock means
// SystemClock and a nil curve means Linear.
func NewDriver(duration time.Duration, curve Curve, clock Clock) *Driver {
	if clock == nil {
		clock = SystemClock
	}
	if curve == nil {
		curve = Linear
	}
	return &Driver{
		clock:      clock,
		duration:   duration,
		curve:      curve,
		tickers:    make(map[int]func(float64)),
		completers: make(map[int]func(float64)),
	}
}

// Progress returns the current value.
func (d *Driver) Progress() float64 { return d.progress }

// Target returns where the current or last animation was headed.
func (d *Driver) Target() float64 { return d.target }

// Running reports whether an animation is in flight.
func (d *Driver) Running() bool { return d.running }

// Duration returns the configured full-range duration.
func (d *Driver) Duration() time.Duration { return d.duration }

// Generation changes every time an animation starts or is stopped. Frame
// schedulers tag frames with it and drop frames from older generations.
func (d *Driver) Generation() uint64 { return d.gen }

// OnTick registers fn to run whenever progress changes, either on a frame or a
// jump. The returned func removes it.
func (d *Driver) OnTick(fn func(progress float64)) (remove func()) {
	return d.listen(d.tickers, fn)
}

// OnComplete registers fn to run when an animation reaches its target.
func (d *Driver) OnComplete(fn func(progress float64)) (remove func()) {
	return d.listen(d.completers, fn)
}

func (d *Driver) listen(set map[int]func(float64), fn func(float64)) func() {
	id := d.nextID
	d.nextID++
	set[id] = fn
	d.order = append(d.order, id)
	return func() { delete(set, id) }
}

// RunForward animates to 1 over the full duration.
func (d *Driver) RunForward() { d.animate(1, d.duration) }

// RunBackward animates to 0 over the full duration.
func (d *Driver) RunBackward() { d.animate(0, d.duration) }

// AnimateTo animates to target with the duration scaled by the distance left,
// so a release mid-drag keeps the same speed as a full run.
func (d *Driver) AnimateTo(target float64) {
	target = Clamp01(target)
	span := time.Duration(math.Abs(target-d.progress) * float64(d.duration))
	d.animate(target, span)
}

// JumpTo sets progress immediately and stops any animation.
func (d *Driver) JumpTo(v float64) {
	d.Stop()
	v = Clamp01(v)
	d.target = v
	if v == d.progress {
		return
	}
	d.progress = v
	d.emit(d.tickers)
}

// Stop halts the in-flight animation, leaving progress where it is.
func (d *Driver) Stop() {
	if !d.running {
		return
	}
	d.running = false
	d.gen++
}

func (d *Driver) animate(target float64, span time.Duration) {
	d.gen++
	d.from = d.progress
	d.target = target
	d.start = d.clock.Now()
	d.span = span
	d.running = true
	if span <= 0 || d.from == target {
		d.finish()
	}
}

// Tick advances the animation to the clock's current time and returns the new
// progress and whether the animation is still running. Ticks on a stopped
// driver do nothing.
func (d *Driver) Tick() (float64, bool) {
	if !d.running {
		return d.progress, false
	}
	elapsed := d.clock.Now().Sub(d.start)
	frac := Clamp01(float64(elapsed) / float64(d.span))
	if frac >= 1 {
		d.finish()
		return d.progress, false
	}
	d.progress = Clamp01(d.from + (d.target-d.from)*d.curve(frac))
	d.emit(d.tickers)
	return d.progress, true
}

func (d *Driver) finish() {
	changed := d.progress != d.target
	d.progress = d.target
	d.running = false
	if changed {
		d.emit(d.tickers)
	}
	d.emit(d.completers)
}

func (d *Driver) emit(set map[int]func(float64)) {
	live := d.order[:0]
	var fns []func(float64)
	for _, id := range d.order {
		_, isTick := d.tickers[id]
		_, isDone := d.completers[id]
		if !isTick && !isDone {
			continue
		}
		live = append(live, id)
		if fn, ok := set[id]; ok {
			fns = append(fns, fn)
		}
	}
	d.order = live
	p := d.progress
	for _, fn := range fns {
		fn(p)
	}
}
