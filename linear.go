package axiskit

import (
	"math"
	"strconv"
)

// ----------------------------------------------------------------------------
// Linear

// Linear is a scale for floating point values within a fixed range. The
// step is the domain distance between consecutive ticks. The range may
// be inverted (min > max) together with a negative step to produce an
// inverted axis.
type Linear struct {
	min, max float64
	step     float64
	scale    float64
	labeller Labeller
}

var _ Scale = (*Linear)(nil)

// TruncateLabel is the default linear labeller. It truncates the value
// toward zero and renders it as a base-10 integer.
func TruncateLabel(v float64) string {
	return strconv.FormatInt(int64(v), 10)
}

// NewLinear returns a linear scale over [min, max] with ticks every
// step, labelled with TruncateLabel.
func NewLinear(min, max, step float64) *Linear {
	return NewLinearWithLabeller(min, max, step, TruncateLabel)
}

// NewLinearWithLabeller returns a linear scale whose ticks are labelled
// by l. A nil l yields unlabelled ticks.
func NewLinearWithLabeller(min, max, step float64, l Labeller) *Linear {
	return &Linear{
		min:      min,
		max:      max,
		step:     step,
		scale:    factor(min, max),
		labeller: l,
	}
}

// Normalize maps v to its axis position. It does not clamp.
func (s *Linear) Normalize(v float64) Normalized {
	return Normalized((v - s.min) * s.scale)
}

// Ticks returns ticks from the range start to the range end, step
// apart. The range end is always included: if stepping does not land on
// it exactly a final tick at the end is appended. A zero step yields a
// single tick for a degenerate range and no ticks otherwise; a step
// whose sign opposes the range direction yields no ticks.
func (s *Linear) Ticks() []Tick {
	if s.step == 0 {
		if s.min == s.max {
			return []Tick{{Location: 0, Label: s.label(s.min)}}
		}
		return nil
	}

	n := int(math.Floor((s.max - s.min) / s.step))
	if n < 0 {
		return nil
	}

	ticks := make([]Tick, 0, n+2)
	for i := 0; i <= n; i++ {
		v := s.min + float64(i)*s.step
		ticks = append(ticks, Tick{
			Location: Normalized(float64(i) * s.step * s.scale),
			Label:    s.label(v),
		})
	}
	if last := s.min + float64(n)*s.step; last != s.max {
		ticks = append(ticks, Tick{
			Location: s.Normalize(s.max),
			Label:    s.label(s.max),
		})
	}
	return ticks
}

func (s *Linear) label(v float64) string {
	if s.labeller == nil {
		return ""
	}
	return s.labeller(v)
}
