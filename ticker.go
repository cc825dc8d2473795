package axiskit

import (
	"time"

	"gonum.org/v1/plot"
)

// ----------------------------------------------------------------------------
// PlotTicker

// PlotTicker exposes a Scale as a gonum/plot Ticker so that the scale's
// ticks can drive a plot.Axis. The scale's normalized tick locations
// are placed proportionally onto whatever axis interval gonum asks for.
type PlotTicker struct {
	Scale Scale
}

var _ plot.Ticker = PlotTicker{}

// Ticks implements plot.Ticker. Unlabelled ticks become minor ticks.
func (pt PlotTicker) Ticks(min, max float64) []plot.Tick {
	ticks := pt.Scale.Ticks()
	out := make([]plot.Tick, len(ticks))
	for i, t := range ticks {
		out[i] = plot.Tick{
			Value: min + float64(t.Location)*(max-min),
			Label: t.Label,
		}
	}
	return out
}

// ----------------------------------------------------------------------------
// TickerScale

// TickerScale is a linear scale whose ticks are chosen by a gonum/plot
// Ticker instead of a fixed step. It satisfies the same contract as
// Linear and Time and follows the same degenerate-range fallback.
type TickerScale struct {
	min, max float64
	scale    float64
	ticker   plot.Ticker
}

var _ Scale = (*TickerScale)(nil)

// NewFromTicker returns a scale over [min, max] ticked by the given
// plot Ticker.
func NewFromTicker(min, max float64, ticker plot.Ticker) *TickerScale {
	return &TickerScale{
		min:    min,
		max:    max,
		scale:  factor(min, max),
		ticker: ticker,
	}
}

// NiceLinear returns a scale over [min, max] with automatically chosen
// "nice" tick values.
func NiceLinear(min, max float64) *TickerScale {
	return NewFromTicker(min, max, plot.DefaultTicks{})
}

// NiceTime returns a scale over the instants [from, to], in
// milliseconds since the Unix epoch, with automatically chosen tick
// values labelled in the local time zone using the given layout. An
// empty layout falls back to DefaultTimeLayout.
func NiceTime(from, to time.Time, layout string) *TickerScale {
	if layout == "" {
		layout = DefaultTimeLayout
	}
	ticker := plot.TimeTicks{
		Format: layout,
		Time: func(v float64) time.Time {
			return time.UnixMilli(int64(v)).In(time.Local)
		},
	}
	return NewFromTicker(float64(from.UnixMilli()), float64(to.UnixMilli()), ticker)
}

// Normalize maps v to its axis position. It does not clamp.
func (s *TickerScale) Normalize(v float64) Normalized {
	return Normalized((v - s.min) * s.scale)
}

// NormalizeTime maps an instant to its axis position, for scales whose
// domain is milliseconds since the Unix epoch as built by NiceTime.
func (s *TickerScale) NormalizeTime(t time.Time) Normalized {
	return s.Normalize(float64(t.UnixMilli()))
}

// Ticks returns the ticker's ticks for the scale range, normalized.
func (s *TickerScale) Ticks() []Tick {
	pticks := s.ticker.Ticks(s.min, s.max)
	ticks := make([]Tick, len(pticks))
	for i, t := range pticks {
		ticks[i] = Tick{
			Location: s.Normalize(t.Value),
			Label:    t.Label,
		}
	}
	return ticks
}
