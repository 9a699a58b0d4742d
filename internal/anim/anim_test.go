package anim

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

func newFakeClock() *fakeClock { return &fakeClock{now: time.Unix(1700000000, 0)} }

func newLinear(c Clock) *Driver { return NewDriver(250*time.Millisecond, Linear, c) }

func step(c *fakeClock, d *Driver, ms int) bool {
	c.advance(time.Duration(ms) * time.Millisecond)
	_, running := d.Tick()
	return running
}

func TestRunForwardReachesOne(t *testing.T) {
	clk := newFakeClock()
	d := newLinear(clk)
	d.RunForward()
	require.True(t, d.Running())

	require.True(t, step(clk, d, 125))
	require.InDelta(t, 0.5, d.Progress(), 1e-9)

	require.False(t, step(clk, d, 200))
	require.Equal(t, 1.0, d.Progress())
	require.False(t, d.Running())
}

func TestNoTicksAfterCompletion(t *testing.T) {
	clk := newFakeClock()
	d := newLinear(clk)
	ticks, done := 0, 0
	d.OnTick(func(float64) { ticks++ })
	d.OnComplete(func(float64) { done++ })

	d.RunForward()
	step(clk, d, 300)
	require.Equal(t, 1, done)
	before := ticks
	step(clk, d, 16)
	step(clk, d, 16)
	require.Equal(t, before, ticks)
	require.Equal(t, 1, done)
}

func TestRunForwardSupersedesBackward(t *testing.T) {
	clk := newFakeClock()
	d := newLinear(clk)
	d.JumpTo(1)
	d.RunBackward()
	step(clk, d, 100)
	require.Less(t, d.Progress(), 1.0)
	gen := d.Generation()

	d.RunForward()
	require.NotEqual(t, gen, d.Generation())

	last := d.Progress()
	var seen []float64
	d.OnTick(func(p float64) { seen = append(seen, p) })
	for i := 0; i < 40 && d.Running(); i++ {
		step(clk, d, 16)
	}
	require.Equal(t, 1.0, d.Progress())
	for _, p := range seen {
		require.GreaterOrEqual(t, p, last, "no backward tick after RunForward")
		last = p
	}
}

func TestJumpToClampsAndStops(t *testing.T) {
	clk := newFakeClock()
	d := newLinear(clk)
	d.RunForward()
	d.JumpTo(1.7)
	require.False(t, d.Running())
	require.Equal(t, 1.0, d.Progress())
	d.JumpTo(-3)
	require.Equal(t, 0.0, d.Progress())
}

func TestAnimateToScalesDuration(t *testing.T) {
	clk := newFakeClock()
	d := newLinear(clk)
	d.JumpTo(0.6)
	d.AnimateTo(1)
	// 0.4 of 250ms
	require.True(t, step(clk, d, 50))
	require.InDelta(t, 0.8, d.Progress(), 1e-9)
	require.False(t, step(clk, d, 50))
	require.Equal(t, 1.0, d.Progress())
}

func TestAnimateToCurrentCompletesImmediately(t *testing.T) {
	d := newLinear(newFakeClock())
	done := 0
	d.OnComplete(func(float64) { done++ })
	d.AnimateTo(0)
	require.False(t, d.Running())
	require.Equal(t, 1, done)
}

func TestRemoveListener(t *testing.T) {
	clk := newFakeClock()
	d := newLinear(clk)
	hits := 0
	remove := d.OnTick(func(float64) { hits++ })
	d.JumpTo(0.5)
	remove()
	d.JumpTo(0.2)
	require.Equal(t, 1, hits)
}

func TestCurvesHitEndpointsAndStayMonotonic(t *testing.T) {
	for _, name := range CurveNames() {
		c, err := CurveByName(name)
		require.NoError(t, err)
		require.InDelta(t, 0, c(0), 1e-9, name)
		require.InDelta(t, 1, c(1), 1e-9, name)
		prev := 0.0
		for i := 1; i <= 100; i++ {
			v := c(float64(i) / 100)
			require.GreaterOrEqual(t, v+1e-6, prev, "%s not monotonic at %d", name, i)
			prev = v
		}
	}
}

func TestEaseMatchesCSS(t *testing.T) {
	// cubic-bezier(0.25, 0.1, 0.25, 1) at x=0.5 is ~0.8024
	require.InDelta(t, 0.8024, Ease(0.5), 1e-3)
	require.InDelta(t, 0.5, EaseInOut(0.5), 1e-6)
}

func TestCurveByName(t *testing.T) {
	c, err := CurveByName("Ease-In-Out")
	require.NoError(t, err)
	require.InDelta(t, EaseInOut(0.3), c(0.3), 1e-12)

	_, err = CurveByName("eas")
	require.True(t, errors.Is(err, ErrUnknownCurve))
	require.Contains(t, err.Error(), `did you mean "ease"`)

	_, err = CurveByName("springy-bounce-thing")
	require.ErrorIs(t, err, ErrUnknownCurve)
	require.NotContains(t, err.Error(), "did you mean")
}
