package axiskit

import "time"

// ----------------------------------------------------------------------------
// Time

// DefaultTimeLayout is the layout of the default time tick labels, a
// day and abbreviated month such as "26-Feb".
const DefaultTimeLayout = "02-Jan"

// Time is a scale for timestamps within a fixed range. The range is
// converted to milliseconds since the Unix epoch at construction;
// Normalize and Ticks operate on those integers. The step is the
// duration between consecutive ticks and may be negative together with
// an inverted range (from after to).
type Time struct {
	from, to int64 // milliseconds since the Unix epoch
	step     int64
	scale    float64
	labeller TimeLabeller
}

var _ Scale = (*Time)(nil)

// LocalTimeLabel returns a labeller rendering the instant in the local
// time zone using the given layout.
func LocalTimeLabel(layout string) TimeLabeller {
	return func(t time.Time) string {
		return t.In(time.Local).Format(layout)
	}
}

// NewTime returns a time scale over [from, to] with ticks every step,
// labelled as local-time day and month ("26-Feb").
func NewTime(from, to time.Time, step time.Duration) *Time {
	return NewTimeWithLabeller(from, to, step, LocalTimeLabel(DefaultTimeLayout))
}

// NewTimeWithLayout returns a time scale whose tick labels render the
// instant in the local time zone using the given layout, e.g.
// "15:04:05.000" for sub-second resolution.
func NewTimeWithLayout(from, to time.Time, step time.Duration, layout string) *Time {
	return NewTimeWithLabeller(from, to, step, LocalTimeLabel(layout))
}

// NewTimeWithLabeller returns a time scale whose ticks are labelled by
// l, bypassing local-time formatting entirely. A nil l yields
// unlabelled ticks.
func NewTimeWithLabeller(from, to time.Time, step time.Duration, l TimeLabeller) *Time {
	f, t := from.UnixMilli(), to.UnixMilli()
	return &Time{
		from:     f,
		to:       t,
		step:     step.Milliseconds(),
		scale:    factor(float64(f), float64(t)),
		labeller: l,
	}
}

// Normalize maps v, in milliseconds since the Unix epoch, to its axis
// position. It does not clamp.
func (s *Time) Normalize(v float64) Normalized {
	return Normalized((v - float64(s.from)) * s.scale)
}

// NormalizeTime maps an instant to its axis position.
func (s *Time) NormalizeTime(t time.Time) Normalized {
	return s.Normalize(float64(t.UnixMilli()))
}

// Ticks returns ticks from the range start to the range end, one step
// apart. The boundary rules match Linear.Ticks: the range end is always
// included, a zero step yields a single tick only for a degenerate
// range, and a step opposing the range direction yields no ticks.
func (s *Time) Ticks() []Tick {
	if s.step == 0 {
		if s.from == s.to {
			return []Tick{{Location: 0, Label: s.label(s.from)}}
		}
		return nil
	}

	n := (s.to - s.from) / s.step
	if n < 0 {
		return nil
	}

	ticks := make([]Tick, 0, n+2)
	for i := int64(0); i <= n; i++ {
		v := s.from + i*s.step
		ticks = append(ticks, Tick{
			Location: Normalized(float64(v-s.from) * s.scale),
			Label:    s.label(v),
		})
	}
	if last := s.from + n*s.step; last != s.to {
		ticks = append(ticks, Tick{
			Location: s.Normalize(float64(s.to)),
			Label:    s.label(s.to),
		})
	}
	return ticks
}

func (s *Time) label(ms int64) string {
	if s.labeller == nil {
		return ""
	}
	return s.labeller(time.UnixMilli(ms).UTC())
}
