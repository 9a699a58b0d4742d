package gesture

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/drawer/internal/anim"
	"github.com/jask/drawer/internal/visibility"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

type recorder struct {
	*visibility.State
	opens, closes int
}

func (r *recorder) Open()  { r.opens++; r.State.Open() }
func (r *recorder) Close() { r.closes++; r.State.Close() }

type fixture struct {
	clock   *fakeClock
	driver  *anim.Driver
	vis     *recorder
	tracker *Tracker
}

func newFixture(open bool, cancel CancelPolicy) *fixture {
	clk := &fakeClock{now: time.Unix(0, 0)}
	d := anim.NewDriver(250*time.Millisecond, anim.Linear, clk)
	if open {
		d.JumpTo(1)
	}
	v := &recorder{State: visibility.New(open)}
	return &fixture{clock: clk, driver: d, vis: v, tracker: NewTracker(d, v, 400, 0.75, cancel)}
}

func (f *fixture) settle() {
	for i := 0; i < 100 && f.driver.Running(); i++ {
		f.clock.now = f.clock.now.Add(16 * time.Millisecond)
		f.driver.Tick()
	}
}

func TestEdgeGuardWhenClosed(t *testing.T) {
	f := newFixture(false, CancelSettle)
	require.False(t, f.tracker.Start(350))
	require.Equal(t, Idle, f.tracker.Phase())

	// events for an uncaptured gesture are ignored
	f.tracker.Update(10)
	f.tracker.End()
	require.Equal(t, 0.0, f.driver.Progress())
	require.Zero(t, f.vis.opens+f.vis.closes)

	require.True(t, f.tracker.Start(50))
	require.Equal(t, Captured, f.tracker.Phase())
}

func TestEdgeGuardWhenOpen(t *testing.T) {
	f := newFixture(true, CancelSettle)
	// boundary at 300, edge region 100 to its right
	require.False(t, f.tracker.Start(50))
	require.False(t, f.tracker.Start(200), "drags inside the menu are not captured")
	require.False(t, f.tracker.Start(210))
	require.Equal(t, Idle, f.tracker.Phase())
	require.True(t, f.tracker.Start(300))
	require.True(t, f.tracker.Start(320))
	require.True(t, f.tracker.Start(400))
}

func TestMenuDragLeavesOpenDrawerAlone(t *testing.T) {
	f := newFixture(true, CancelSettle)
	require.False(t, f.tracker.Start(210))
	f.tracker.Update(150)
	f.tracker.End()
	require.Equal(t, 1.0, f.driver.Progress())
	require.True(t, f.vis.IsOpen())
}

func TestResizeMidDragKeepsScale(t *testing.T) {
	f := newFixture(false, CancelSettle)
	require.True(t, f.tracker.Start(0))
	f.tracker.Update(150)
	require.InDelta(t, 0.5, f.driver.Progress(), 1e-9)

	f.tracker.SetWidth(800)
	f.tracker.Update(150)
	require.InDelta(t, 0.5, f.driver.Progress(), 1e-9)
	f.tracker.Update(0)
	f.tracker.End()
	require.False(t, f.vis.IsOpen())

	// the next drag picks up the new width
	require.True(t, f.tracker.Start(0))
	f.tracker.Update(150)
	require.InDelta(t, 0.25, f.driver.Progress(), 1e-9)
}

func TestUpdateTracksFingerLinearly(t *testing.T) {
	f := newFixture(false, CancelSettle)
	require.True(t, f.tracker.Start(20))
	f.tracker.Update(20 + 150)
	require.InDelta(t, 0.5, f.driver.Progress(), 1e-9)
	f.tracker.Update(20 + 75)
	require.InDelta(t, 0.25, f.driver.Progress(), 1e-9)
	f.tracker.Update(1000)
	require.Equal(t, 1.0, f.driver.Progress())
	f.tracker.Update(-1000)
	require.Equal(t, 0.0, f.driver.Progress())
}

func TestCaptureStopsAnimation(t *testing.T) {
	f := newFixture(false, CancelSettle)
	f.driver.RunForward()
	f.clock.now = f.clock.now.Add(50 * time.Millisecond)
	f.driver.Tick()
	require.True(t, f.tracker.Start(10))
	require.False(t, f.driver.Running())
}

func TestThresholdOpens(t *testing.T) {
	f := newFixture(false, CancelSettle)
	require.True(t, f.tracker.Start(0))
	f.tracker.Update(150)
	require.Equal(t, 0.5, f.driver.Progress())
	f.tracker.End()

	require.Equal(t, 1, f.vis.opens)
	require.True(t, f.vis.IsOpen())
	require.True(t, f.driver.Running())
	require.Equal(t, 1.0, f.driver.Target())
	f.settle()
	require.Equal(t, 1.0, f.driver.Progress())
	require.Equal(t, Idle, f.tracker.Phase())
}

func TestRoundTripLeavesStateAlone(t *testing.T) {
	f := newFixture(false, CancelSettle)
	notified := 0
	f.vis.Subscribe(func(visibility.Value) { notified++ })

	require.True(t, f.tracker.Start(40))
	f.tracker.Update(100)
	f.tracker.Update(70)
	f.tracker.Update(40)
	require.InDelta(t, 0, f.driver.Progress(), 1e-9)
	f.tracker.End()
	f.settle()

	require.InDelta(t, 0, f.driver.Progress(), 1e-9)
	require.Zero(t, notified)
	require.False(t, f.vis.IsOpen())
}

func TestReleaseBelowHalfWhileOpenCloses(t *testing.T) {
	f := newFixture(true, CancelSettle)
	require.True(t, f.tracker.Start(300))
	f.tracker.Update(300 - 200)
	require.InDelta(t, 1-200.0/300, f.driver.Progress(), 1e-9)
	f.tracker.End()
	require.False(t, f.vis.IsOpen())
	f.settle()
	require.Equal(t, 0.0, f.driver.Progress())
}

func TestReleaseSettlesWhenValueUnchanged(t *testing.T) {
	f := newFixture(true, CancelSettle)
	notified := 0
	f.vis.Subscribe(func(visibility.Value) { notified++ })
	require.True(t, f.tracker.Start(300))
	f.tracker.Update(260)
	f.tracker.End()
	require.Zero(t, notified)
	require.True(t, f.driver.Running())
	f.settle()
	require.Equal(t, 1.0, f.driver.Progress())
}

func TestCancelPolicies(t *testing.T) {
	leave := newFixture(false, CancelLeave)
	require.True(t, leave.tracker.Start(0))
	leave.tracker.Update(120)
	leave.tracker.Cancel()
	require.Equal(t, Idle, leave.tracker.Phase())
	require.False(t, leave.driver.Running())
	require.InDelta(t, 0.4, leave.driver.Progress(), 1e-9)
	require.Zero(t, leave.vis.opens+leave.vis.closes)

	settle := newFixture(false, CancelSettle)
	require.True(t, settle.tracker.Start(0))
	settle.tracker.Update(120)
	settle.tracker.Cancel()
	require.Equal(t, 1, settle.vis.closes)
	settle.settle()
	require.Equal(t, 0.0, settle.driver.Progress())
}

func TestOutOfOrderEventsIgnored(t *testing.T) {
	f := newFixture(false, CancelSettle)
	f.tracker.Update(200)
	f.tracker.End()
	f.tracker.Cancel()
	require.Equal(t, 0.0, f.driver.Progress())
	require.Zero(t, f.vis.opens+f.vis.closes)
}

func TestZeroWidthNeverCaptures(t *testing.T) {
	f := newFixture(false, CancelSettle)
	f.tracker.SetWidth(0)
	require.False(t, f.tracker.Start(0))
}

func TestParseCancelPolicy(t *testing.T) {
	p, err := ParseCancelPolicy("Leave")
	require.NoError(t, err)
	require.Equal(t, CancelLeave, p)
	p, err = ParseCancelPolicy("")
	require.NoError(t, err)
	require.Equal(t, CancelSettle, p)
	_, err = ParseCancelPolicy("bounce")
	require.Error(t, err)
}
