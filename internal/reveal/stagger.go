package reveal

import "time"

// StaggerPlan holds the start delay of each child, in child order.
type StaggerPlan struct {
	delays []time.Duration
}

// NewStaggerPlan returns delays i × interval for i in [0, n). Negative
// counts yield an empty plan and negative intervals are treated as 0.
func NewStaggerPlan(n int, interval time.Duration) StaggerPlan {
	if n < 0 {
		n = 0
	}
	if interval < 0 {
		interval = 0
	}
	delays := make([]time.Duration, n)
	for i := range delays {
		delays[i] = time.Duration(i) * interval
	}
	return StaggerPlan{delays: delays}
}

func (p StaggerPlan) Len() int { return len(p.delays) }

// Delay returns the delay of child i, or 0 when i is out of range.
func (p StaggerPlan) Delay(i int) time.Duration {
	if i < 0 || i >= len(p.delays) {
		return 0
	}
	return p.delays[i]
}

// Last returns the delay of the final child.
func (p StaggerPlan) Last() time.Duration {
	if len(p.delays) == 0 {
		return 0
	}
	return p.delays[len(p.delays)-1]
}

// Delays returns a copy of the plan.
func (p StaggerPlan) Delays() []time.Duration {
	out := make([]time.Duration, len(p.delays))
	copy(out, p.delays)
	return out
}

// Latch is a one-shot trigger.
type Latch struct {
	tripped bool
}

// Trip sets the latch and reports whether this call was the one that
// set it.
func (l *Latch) Trip() bool {
	if l.tripped {
		return false
	}
	l.tripped = true
	return true
}

func (l *Latch) Tripped() bool { return l.tripped }

// Reset clears the latch. Only replaying controllers call it.
func (l *Latch) Reset() { l.tripped = false }
