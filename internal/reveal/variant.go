package reveal

import (
	"strconv"
	"time"
)

// DefaultDuration is used when a transition is declared without a
// positive duration.
const DefaultDuration = 500 * time.Millisecond

// Transition binds the hidden→visible move to a duration and a curve.
type Transition struct {
	Duration time.Duration
	Easing   Easing
}

// NewTransition returns a Transition with a positive duration and a
// non-nil easing.
func NewTransition(d time.Duration, easing Easing) Transition {
	return Transition{Duration: d, Easing: easing}.normalized()
}

func (t Transition) normalized() Transition {
	if t.Duration <= 0 {
		t.Duration = DefaultDuration
	}
	if t.Easing == nil {
		t.Easing = Ease()
	}
	return t
}

// At returns the state reached at elapsed time into the transition.
func (t Transition) At(from, to VisualState, elapsed time.Duration) VisualState {
	t = t.normalized()
	return Interpolate(from, to, t.Easing, float64(elapsed)/float64(t.Duration))
}

// CSS renders a CSS transition list for opacity and transform with an
// extra start delay.
func (t Transition) CSS(delay time.Duration) string {
	t = t.normalized()
	timing := Milliseconds(t.Duration) + " " + t.Easing.CSS() + " " + Milliseconds(delay)
	return "opacity " + timing + ", transform " + timing
}

// Milliseconds formats a duration the way CSS expects it.
func Milliseconds(d time.Duration) string {
	return strconv.FormatInt(d.Milliseconds(), 10) + "ms"
}

// States names the two looks of a variant set.
type States struct {
	Hidden  VisualState
	Visible VisualState
}

// VariantSet is an immutable description of an element's hidden and
// visible looks and how it moves between them. A container set may
// also carry the stagger applied to its children.
type VariantSet struct {
	hidden        VisualState
	visible       VisualState
	transition    Transition
	stagger       time.Duration
	delayChildren time.Duration
}

// Option tunes a VariantSet at definition time.
type Option func(*VariantSet)

// StaggerChildren offsets child i by i × interval.
func StaggerChildren(interval time.Duration) Option {
	return func(v *VariantSet) {
		if interval < 0 {
			interval = 0
		}
		v.stagger = interval
	}
}

// DelayChildren delays every child by d before the stagger applies.
func DelayChildren(d time.Duration) Option {
	return func(v *VariantSet) {
		if d < 0 {
			d = 0
		}
		v.delayChildren = d
	}
}

// Define builds a VariantSet. The visible state is always resolved to
// full opacity with no offset and no scaling; only its name survives
// from the caller's value.
func Define(states States, transition Transition, opts ...Option) VariantSet {
	hidden := states.Hidden
	hidden.Name = Hidden
	if hidden.Scale == 0 {
		hidden.Scale = 1
	}

	v := VariantSet{
		hidden:     hidden,
		visible:    Neutral(),
		transition: transition.normalized(),
	}
	for _, opt := range opts {
		opt(&v)
	}
	return v
}

func (v VariantSet) Hidden() VisualState { return v.hidden }

func (v VariantSet) Visible() VisualState { return v.visible }

func (v VariantSet) Transition() Transition { return v.transition.normalized() }

// Stagger returns the per-child interval.
func (v VariantSet) Stagger() time.Duration { return v.stagger }

// ChildDelay returns the delay applied before the first child moves.
func (v VariantSet) ChildDelay() time.Duration { return v.delayChildren }

// State returns the look for name. Unknown names resolve to hidden.
func (v VariantSet) State(name StateName) VisualState {
	if name == Visible {
		return v.visible
	}
	return v.hidden
}

// Plan returns the stagger plan for n children of this container.
func (v VariantSet) Plan(n int) StaggerPlan {
	return NewStaggerPlan(n, v.stagger)
}

// FadeUp describes the common "fade in while rising" list reveal.
type FadeUp struct {
	Offset   float64
	Scale    float64
	Duration time.Duration
	Stagger  time.Duration
	Delay    time.Duration
	Easing   Easing
}

// Sets builds the container and child variant sets for the reveal. The
// container only fades; the children fade, rise and scale.
func (f FadeUp) Sets() (container, child VariantSet) {
	transition := NewTransition(f.Duration, f.Easing)
	container = Define(States{Hidden: HiddenState(0, 0, 1)}, transition,
		StaggerChildren(f.Stagger), DelayChildren(f.Delay))
	child = Define(States{Hidden: HiddenState(0, f.Offset, f.Scale)}, transition)
	return container, child
}
