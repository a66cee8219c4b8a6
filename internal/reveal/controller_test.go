package reveal

import (
	"sync"
	"testing"
	"time"

	"github.com/zacademygit/Zacademy-sub001/internal/clock"
)

type recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *recorder) listen(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recorder) count(kind EventKind, phase Phase) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.events {
		if e.Kind == kind && e.Phase == phase {
			n++
		}
	}
	return n
}

func (r *recorder) childStarts() map[int][]time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[int][]time.Time)
	for _, e := range r.events {
		if e.Kind == EventChild && e.State == Visible {
			out[e.Index] = append(out[e.Index], e.At)
		}
	}
	return out
}

var testEpoch = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func newTestController(t *testing.T, children int, once bool) (*Controller, *clock.FakeClock, *recorder) {
	t.Helper()
	container, child := FadeUp{
		Offset:   20,
		Duration: 500 * time.Millisecond,
		Stagger:  200 * time.Millisecond,
	}.Sets()

	fake := clock.Fake(testEpoch)
	rec := &recorder{}
	ctrl := NewController(Config{
		Container: container,
		Child:     child,
		Threshold: 0.2,
		Once:      once,
		Children:  children,
	}, WithClock(fake), WithListener(rec.listen))
	return ctrl, fake, rec
}

func TestControllerStartsHidden(t *testing.T) {
	ctrl, _, _ := newTestController(t, 3, true)

	snap := ctrl.Snapshot()
	if snap.Phase != PhaseHidden || snap.Latched {
		t.Fatalf("initial snapshot = %+v", snap)
	}
	if snap.Container.Name != Hidden {
		t.Fatalf("container = %v, want hidden", snap.Container.Name)
	}
	for i, child := range snap.Children {
		if child.Name != Hidden {
			t.Fatalf("child %d = %v, want hidden", i, child.Name)
		}
	}
}

func TestControllerBelowThresholdDoesNotTrip(t *testing.T) {
	ctrl, _, rec := newTestController(t, 3, true)

	ctrl.Observe(0.1)
	ctrl.Observe(0)
	if ctrl.Latched() {
		t.Fatalf("latched below threshold")
	}
	if n := len(rec.events); n != 0 {
		t.Fatalf("got %d events below threshold", n)
	}
}

func TestControllerLatchIsOneShot(t *testing.T) {
	ctrl, fake, rec := newTestController(t, 3, true)

	ctrl.Observe(0.5)
	fake.Advance(100 * time.Millisecond)
	ctrl.Observe(0)
	ctrl.Observe(0.9)
	fake.Advance(5 * time.Second)
	ctrl.Observe(0)
	ctrl.Observe(1)

	if got := rec.count(EventPhase, PhaseRevealing); got != 1 {
		t.Fatalf("animation started %d times, want 1", got)
	}
	if ctrl.Phase() != PhaseRevealed {
		t.Fatalf("phase = %v, want revealed", ctrl.Phase())
	}
	for index, starts := range rec.childStarts() {
		if len(starts) != 1 {
			t.Fatalf("child %d started %d times", index, len(starts))
		}
	}
}

func TestControllerStaggerOrdering(t *testing.T) {
	const children = 5
	const interval = 200 * time.Millisecond
	ctrl, fake, rec := newTestController(t, children, true)

	ctrl.Observe(1)
	for i := 0; i < 20; i++ {
		fake.Advance(50 * time.Millisecond)
	}

	starts := rec.childStarts()
	if len(starts) != children {
		t.Fatalf("started %d children, want %d", len(starts), children)
	}
	if !starts[0][0].Equal(testEpoch) {
		t.Fatalf("child 0 started at %v, want trip time", starts[0][0])
	}
	for i := 1; i < children; i++ {
		prev, cur := starts[i-1][0], starts[i][0]
		if cur.Sub(prev) < interval {
			t.Fatalf("child %d started %v after child %d, want >= %v", i, cur.Sub(prev), i-1, interval)
		}
	}
}

func TestControllerRevealedAfterLastChildCompletes(t *testing.T) {
	ctrl, fake, _ := newTestController(t, 3, true)

	ctrl.Observe(1)
	if ctrl.Phase() != PhaseRevealing {
		t.Fatalf("phase = %v, want revealing", ctrl.Phase())
	}

	// last child starts at 400ms and runs 500ms
	fake.Advance(899 * time.Millisecond)
	if ctrl.Phase() != PhaseRevealing {
		t.Fatalf("phase before completion = %v, want revealing", ctrl.Phase())
	}
	fake.Advance(time.Millisecond)
	if ctrl.Phase() != PhaseRevealed {
		t.Fatalf("phase after completion = %v, want revealed", ctrl.Phase())
	}

	snap := ctrl.Snapshot()
	for i, child := range snap.Children {
		if !child.IsNeutral() {
			t.Fatalf("child %d not fully visible: %+v", i, child)
		}
	}
}

func TestControllerReplaysWhenNotOnce(t *testing.T) {
	ctrl, fake, rec := newTestController(t, 2, false)

	ctrl.Observe(1)
	fake.Advance(100 * time.Millisecond)
	ctrl.Observe(0)

	if ctrl.Latched() || ctrl.Phase() != PhaseHidden {
		t.Fatalf("expected reset, phase=%v latched=%v", ctrl.Phase(), ctrl.Latched())
	}
	if snap := ctrl.Snapshot(); snap.Children[1].Name != Hidden {
		t.Fatalf("child 1 = %v after reset", snap.Children[1].Name)
	}

	// the cancelled child timer must not fire into the reset region
	fake.Advance(time.Second)
	if snap := ctrl.Snapshot(); snap.Children[1].Name != Hidden {
		t.Fatalf("cancelled transition applied after reset")
	}

	ctrl.Observe(1)
	fake.Advance(time.Second)
	if got := rec.count(EventPhase, PhaseRevealing); got != 2 {
		t.Fatalf("animation started %d times, want 2", got)
	}
}

func TestControllerUnobservableFailsOpen(t *testing.T) {
	ctrl, fake, _ := newTestController(t, 4, true)

	ctrl.Unobservable()
	snap := ctrl.Snapshot()
	if snap.Phase != PhaseRevealed || !snap.Latched {
		t.Fatalf("snapshot = %+v, want revealed", snap)
	}
	for i, child := range snap.Children {
		if child.Name != Visible {
			t.Fatalf("child %d = %v, want visible", i, child.Name)
		}
	}
	if n := fake.PendingCount(); n != 0 {
		t.Fatalf("%d timers scheduled for unobservable region", n)
	}

	ctrl.Observe(0)
	if ctrl.Phase() != PhaseRevealed {
		t.Fatalf("observation changed an unobservable region")
	}
}

func TestControllerTeardownDiscardsPendingTransitions(t *testing.T) {
	ctrl, fake, rec := newTestController(t, 3, true)

	ctrl.Observe(1)
	ctrl.Teardown()
	fake.Advance(5 * time.Second)

	starts := rec.childStarts()
	if len(starts) != 1 {
		t.Fatalf("children started after teardown: %v", starts)
	}
	if ctrl.Phase() != PhaseRevealing {
		t.Fatalf("phase moved after teardown: %v", ctrl.Phase())
	}

	ctrl.Observe(1)
	if got := rec.count(EventPhase, PhaseRevealing); got != 1 {
		t.Fatalf("observe after teardown started animation")
	}
}

func TestControllerSnapshotDelays(t *testing.T) {
	container, child := FadeUp{Duration: 400 * time.Millisecond, Stagger: 100 * time.Millisecond, Delay: 50 * time.Millisecond}.Sets()
	ctrl := NewController(Config{Container: container, Child: child, Threshold: 3, Children: 3})

	snap := ctrl.Snapshot()
	if snap.Threshold != 1 {
		t.Fatalf("threshold = %v, want clamped to 1", snap.Threshold)
	}
	want := []time.Duration{50 * time.Millisecond, 150 * time.Millisecond, 250 * time.Millisecond}
	for i, d := range want {
		if snap.Delays[i] != d {
			t.Fatalf("delay[%d] = %v, want %v", i, snap.Delays[i], d)
		}
	}
}

func TestControllerWithoutChildren(t *testing.T) {
	ctrl, fake, _ := newTestController(t, 0, true)
	ctrl.Observe(1)
	fake.Advance(500 * time.Millisecond)
	if ctrl.Phase() != PhaseRevealed {
		t.Fatalf("phase = %v, want revealed", ctrl.Phase())
	}
}
