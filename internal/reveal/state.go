package reveal

import (
	"strconv"
	"strings"
)

// StateName tags a visual state.
type StateName string

const (
	Hidden  StateName = "hidden"
	Visible StateName = "visible"
)

// VisualState is the look of an element in one named state. OffsetY is
// a vertical offset in pixels; Scale is a factor near 1.
type VisualState struct {
	Name    StateName
	Opacity float64
	OffsetY float64
	Scale   float64
}

// Neutral returns the fully resolved visible state.
func Neutral() VisualState {
	return VisualState{Name: Visible, Opacity: 1, OffsetY: 0, Scale: 1}
}

// HiddenState returns a hidden state with the given look. A zero scale
// is read as "unscaled".
func HiddenState(opacity, offsetY, scale float64) VisualState {
	if scale == 0 {
		scale = 1
	}
	return VisualState{Name: Hidden, Opacity: clamp01(opacity), OffsetY: offsetY, Scale: scale}
}

// IsNeutral reports whether the state needs no opacity or transform.
func (s VisualState) IsNeutral() bool {
	return s.Opacity == 1 && s.OffsetY == 0 && s.Scale == 1
}

// Style renders the state as inline CSS declarations.
func (s VisualState) Style() string {
	var b strings.Builder
	b.WriteString("opacity:")
	b.WriteString(formatFloat(s.Opacity))
	b.WriteString(";transform:")
	b.WriteString(s.Transform())
	return b.String()
}

// Transform renders the CSS transform for the state.
func (s VisualState) Transform() string {
	if s.OffsetY == 0 && s.Scale == 1 {
		return "none"
	}
	var parts []string
	if s.OffsetY != 0 {
		parts = append(parts, "translateY("+formatFloat(s.OffsetY)+"px)")
	}
	if s.Scale != 1 {
		parts = append(parts, "scale("+formatFloat(s.Scale)+")")
	}
	return strings.Join(parts, " ")
}

// Interpolate returns the state progress of the way from one state to
// another, after easing. Only opacity, offset and scale move.
func Interpolate(from, to VisualState, easing Easing, progress float64) VisualState {
	if easing == nil {
		easing = Linear()
	}
	progress = clamp01(progress)
	if progress == 1 {
		return to
	}
	p := easing.Ease(progress)
	return VisualState{
		Name:    from.Name,
		Opacity: lerp(from.Opacity, to.Opacity, p),
		OffsetY: lerp(from.OffsetY, to.OffsetY, p),
		Scale:   lerp(from.Scale, to.Scale, p),
	}
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
