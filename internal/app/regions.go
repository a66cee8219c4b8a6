package app

import (
	"html/template"
	"strconv"
	"strings"

	"github.com/zacademygit/Zacademy-sub001/internal/clock"
	"github.com/zacademygit/Zacademy-sub001/internal/reveal"
)

// revealSets is the one pair of variant sets every list section shares.
type revealSets struct {
	container reveal.VariantSet
	child     reveal.VariantSet
	threshold float64
	once      bool
	clock     clock.Clock
}

func newRevealSets(cfg RevealConfig, c clock.Clock) revealSets {
	container, child := reveal.FadeUp{
		Offset:   cfg.Offset,
		Scale:    cfg.Scale,
		Duration: cfg.Duration,
		Stagger:  cfg.Stagger,
		Delay:    cfg.Delay,
		Easing:   reveal.EaseOut(),
	}.Sets()
	return revealSets{
		container: container,
		child:     child,
		threshold: cfg.Threshold,
		once:      cfg.Once,
		clock:     c,
	}
}

// region is a rendered reveal region. Attrs go on the container
// element; each item carries its own start delay.
type region[T any] struct {
	Attrs    template.HTMLAttr
	Style    template.CSS
	Revealed bool
	Items    []regionItem[T]
}

type regionItem[T any] struct {
	Value T
	Index int
	Style template.CSS
}

// newRegion renders values as one reveal region. Without a viewport
// the region is rendered already revealed.
func newRegion[T any](sets revealSets, interactive bool, values []T) region[T] {
	ctrl := reveal.NewController(reveal.Config{
		Container: sets.container,
		Child:     sets.child,
		Threshold: sets.threshold,
		Once:      sets.once,
		Children:  len(values),
	}, reveal.WithClock(sets.clock))
	defer ctrl.Teardown()

	if !interactive {
		ctrl.Unobservable()
	}
	snap := ctrl.Snapshot()
	revealed := snap.Phase == reveal.PhaseRevealed

	out := region[T]{
		Attrs:    regionAttrs(snap),
		Style:    template.CSS(snap.Container.Style() + ";transition:" + sets.container.Transition().CSS(0)),
		Revealed: revealed,
		Items:    make([]regionItem[T], len(values)),
	}
	for i, value := range values {
		style := snap.Children[i].Style()
		if !revealed {
			style += ";transition:" + sets.child.Transition().CSS(snap.Delays[i])
		}
		out.Items[i] = regionItem[T]{Value: value, Index: i, Style: template.CSS(style)}
	}
	return out
}

func regionAttrs(snap reveal.Snapshot) template.HTMLAttr {
	var b strings.Builder
	b.WriteString(`data-reveal data-reveal-threshold="`)
	b.WriteString(strconv.FormatFloat(snap.Threshold, 'f', -1, 64))
	b.WriteString(`" data-reveal-once="`)
	b.WriteString(strconv.FormatBool(snap.Once))
	b.WriteString(`"`)
	if snap.Phase == reveal.PhaseRevealed {
		b.WriteString(` data-revealed`)
	}
	return template.HTMLAttr(b.String())
}
