package reveal

import (
	"sync"
	"time"

	"github.com/zacademygit/Zacademy-sub001/internal/clock"
)

// Phase is the lifecycle position of a reveal region.
type Phase int

const (
	PhaseHidden Phase = iota
	PhaseRevealing
	PhaseRevealed
)

func (p Phase) String() string {
	switch p {
	case PhaseRevealing:
		return "revealing"
	case PhaseRevealed:
		return "revealed"
	default:
		return "hidden"
	}
}

// EventKind says what an Event changed.
type EventKind int

const (
	EventContainer EventKind = iota
	EventChild
	EventPhase
)

// Event reports one state application. Index is the child index for
// EventChild and -1 otherwise.
type Event struct {
	Kind  EventKind
	Index int
	State StateName
	Phase Phase
	At    time.Time
}

// Listener observes controller events. It is called without the
// controller lock held.
type Listener func(Event)

// Config describes one reveal region.
type Config struct {
	Container VariantSet
	Child     VariantSet
	// Threshold is the visible fraction of the container, in [0,1],
	// that trips the reveal.
	Threshold float64
	// Once keeps the region revealed after the first trip.
	Once     bool
	Children int
}

// ControllerOption tunes a Controller.
type ControllerOption func(*Controller)

// WithClock sets the time source for staggered starts.
func WithClock(c clock.Clock) ControllerOption {
	return func(ctrl *Controller) {
		if c != nil {
			ctrl.clock = c
		}
	}
}

// WithListener registers a listener for state changes.
func WithListener(l Listener) ControllerOption {
	return func(ctrl *Controller) {
		ctrl.listener = l
	}
}

// Controller drives one reveal region from hidden to visible.
type Controller struct {
	mu       sync.Mutex
	cfg      Config
	plan     StaggerPlan
	clock    clock.Clock
	listener Listener

	latch        Latch
	phase        Phase
	container    StateName
	children     []StateName
	timers       []*clock.Timer
	generation   uint64
	unobservable bool
	torn         bool
}

// NewController returns a controller with every element hidden.
func NewController(cfg Config, opts ...ControllerOption) *Controller {
	cfg.Threshold = clamp01(cfg.Threshold)
	if cfg.Children < 0 {
		cfg.Children = 0
	}

	c := &Controller{
		cfg:       cfg,
		plan:      cfg.Container.Plan(cfg.Children),
		clock:     clock.Real(),
		phase:     PhaseHidden,
		container: Hidden,
		children:  make([]StateName, cfg.Children),
	}
	for i := range c.children {
		c.children[i] = Hidden
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Observe reports the fraction of the container inside the viewport.
func (c *Controller) Observe(fraction float64) {
	c.mu.Lock()
	if c.torn || c.unobservable {
		c.mu.Unlock()
		return
	}

	var events []Event
	if c.crosses(fraction) {
		if c.latch.Trip() {
			events = c.beginLocked()
		}
	} else if !c.cfg.Once && c.latch.Tripped() {
		events = c.resetLocked()
	}
	c.mu.Unlock()

	c.emit(events)
}

// Unobservable reveals the region at once for rendering contexts that
// have no viewport.
func (c *Controller) Unobservable() {
	c.mu.Lock()
	if c.torn || c.unobservable {
		c.mu.Unlock()
		return
	}
	c.unobservable = true
	c.latch.Trip()
	c.stopTimersLocked()
	c.generation++

	now := c.clock.Now()
	var events []Event
	if c.container != Visible {
		c.container = Visible
		events = append(events, Event{Kind: EventContainer, Index: -1, State: Visible, Phase: c.phase, At: now})
	}
	for i := range c.children {
		if c.children[i] != Visible {
			c.children[i] = Visible
			events = append(events, Event{Kind: EventChild, Index: i, State: Visible, Phase: c.phase, At: now})
		}
	}
	if c.phase != PhaseRevealed {
		c.phase = PhaseRevealed
		events = append(events, Event{Kind: EventPhase, Index: -1, State: Visible, Phase: PhaseRevealed, At: now})
	}
	c.mu.Unlock()

	c.emit(events)
}

// Teardown discards pending staggered transitions. Later calls to
// Observe are ignored.
func (c *Controller) Teardown() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.torn = true
	c.stopTimersLocked()
	c.generation++
}

// Phase returns the current lifecycle phase.
func (c *Controller) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// Latched reports whether the trigger has fired.
func (c *Controller) Latched() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.latch.Tripped()
}

// Snapshot is a point-in-time view of a region for rendering.
type Snapshot struct {
	Phase     Phase
	Latched   bool
	Threshold float64
	Once      bool
	Container VisualState
	Children  []VisualState
	// Delays holds each child's start delay relative to the trip.
	Delays []time.Duration
}

// Snapshot returns the current looks of the container and children.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	children := make([]VisualState, len(c.children))
	delays := make([]time.Duration, len(c.children))
	for i, name := range c.children {
		children[i] = c.cfg.Child.State(name)
		delays[i] = c.childDelay(i)
	}
	return Snapshot{
		Phase:     c.phase,
		Latched:   c.latch.Tripped(),
		Threshold: c.cfg.Threshold,
		Once:      c.cfg.Once,
		Container: c.cfg.Container.State(c.container),
		Children:  children,
		Delays:    delays,
	}
}

func (c *Controller) crosses(fraction float64) bool {
	return fraction > 0 && fraction >= c.cfg.Threshold
}

func (c *Controller) childDelay(i int) time.Duration {
	return c.cfg.Container.ChildDelay() + c.plan.Delay(i)
}

// completionDelay is when the last transition of the region ends,
// measured from the trip.
func (c *Controller) completionDelay() time.Duration {
	done := c.cfg.Container.Transition().Duration
	if n := len(c.children); n > 0 {
		last := c.childDelay(n-1) + c.cfg.Child.Transition().Duration
		if last > done {
			done = last
		}
	}
	return done
}

func (c *Controller) beginLocked() []Event {
	c.generation++
	generation := c.generation
	now := c.clock.Now()

	c.phase = PhaseRevealing
	c.container = Visible
	events := []Event{
		{Kind: EventPhase, Index: -1, State: Visible, Phase: PhaseRevealing, At: now},
		{Kind: EventContainer, Index: -1, State: Visible, Phase: PhaseRevealing, At: now},
	}

	for i := range c.children {
		delay := c.childDelay(i)
		if delay <= 0 {
			c.children[i] = Visible
			events = append(events, Event{Kind: EventChild, Index: i, State: Visible, Phase: PhaseRevealing, At: now})
			continue
		}
		index := i
		c.timers = append(c.timers, c.clock.AfterFunc(delay, func() {
			c.applyChild(generation, index)
		}))
	}

	c.timers = append(c.timers, c.clock.AfterFunc(c.completionDelay(), func() {
		c.finish(generation)
	}))
	return events
}

func (c *Controller) resetLocked() []Event {
	c.stopTimersLocked()
	c.generation++
	c.latch.Reset()
	c.phase = PhaseHidden
	c.container = Hidden
	for i := range c.children {
		c.children[i] = Hidden
	}
	return []Event{{Kind: EventPhase, Index: -1, State: Hidden, Phase: PhaseHidden, At: c.clock.Now()}}
}

func (c *Controller) applyChild(generation uint64, index int) {
	c.mu.Lock()
	if c.torn || generation != c.generation {
		c.mu.Unlock()
		return
	}
	c.children[index] = Visible
	event := Event{Kind: EventChild, Index: index, State: Visible, Phase: c.phase, At: c.clock.Now()}
	c.mu.Unlock()

	c.emit([]Event{event})
}

func (c *Controller) finish(generation uint64) {
	c.mu.Lock()
	if c.torn || generation != c.generation {
		c.mu.Unlock()
		return
	}
	c.phase = PhaseRevealed
	c.timers = nil
	event := Event{Kind: EventPhase, Index: -1, State: Visible, Phase: PhaseRevealed, At: c.clock.Now()}
	c.mu.Unlock()

	c.emit([]Event{event})
}

func (c *Controller) stopTimersLocked() {
	for _, timer := range c.timers {
		timer.Stop()
	}
	c.timers = nil
}

func (c *Controller) emit(events []Event) {
	if c.listener == nil {
		return
	}
	for _, event := range events {
		c.listener(event)
	}
}
