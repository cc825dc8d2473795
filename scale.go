package axiskit

import "time"

// ----------------------------------------------------------------------------
// Scale

// A Normalized is a position along an axis. Values produced from inside
// the scale's domain lie in [0, 1], 0 being the domain start and 1 the
// domain end. Values are not clamped, so out-of-domain input yields
// positions outside [0, 1].
type Normalized float64

// A Tick marks a position along an axis, optionally carrying a display
// label. An empty Label means the tick is unlabelled, same as in
// gonum/plot.
type Tick struct {
	Location Normalized
	Label    string
}

// Scale is the capability shared by all axis scales: normalizing a
// domain value and producing the full ordered tick sequence for the
// domain. Implementations are immutable; a Scale may be shared freely
// between consumers. Two scales are "the same" only if they are the
// same instance.
type Scale interface {
	// Normalize maps a domain value to its axis position.
	// For example, for a linear scale between 50 and 100:
	//
	//	Normalize(50)  -> 0
	//	Normalize(60)  -> 0.2
	//	Normalize(75)  -> 0.5
	//	Normalize(100) -> 1
	//
	// The Time scale interprets the value as milliseconds since the
	// Unix epoch.
	Normalize(v float64) Normalized

	// Ticks returns the ticks to be rendered along the axis, ordered
	// from the domain start towards the domain end. The result is a
	// pure function of the scale: repeated calls return equal slices.
	Ticks() []Tick
}

// A Labeller renders a domain value as tick or data point text.
type Labeller func(v float64) string

// A TimeLabeller renders an instant as tick or data point text. The
// instant is passed in UTC; labellers wanting wall-clock output
// convert to their zone of choice.
type TimeLabeller func(t time.Time) string

// factor returns the normalization factor 1/(max-min), falling back to
// 1 for a degenerate range so that a zero-width scale maps its single
// domain value to 0 instead of dividing by zero.
func factor(min, max float64) float64 {
	if max == min {
		return 1
	}
	return 1 / (max - min)
}
