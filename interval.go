package axiskit

import "math"

// ----------------------------------------------------------------------------
// Interval

// Interval represents a (potentially degenerate) real interval, used to
// learn the range covered by actual data before constructing a scale
// over it. An edge set to NaN means this edge is not yet determined.
type Interval struct {
	Min, Max float64
}

// UnsetInterval returns an interval with both edges undetermined.
func UnsetInterval() Interval {
	return Interval{math.NaN(), math.NaN()}
}

// Update expands i to include the given values. NaN values are ignored.
func (i *Interval) Update(xs ...float64) {
	for _, x := range xs {
		if math.IsNaN(x) {
			continue
		}
		if !(i.Min < x) {
			i.Min = x
		}
		if !(i.Max > x) {
			i.Max = x
		}
	}
}

// IsSet reports whether both edges of i have been determined.
func (i Interval) IsSet() bool {
	return !math.IsNaN(i.Min) && !math.IsNaN(i.Max)
}

// Width returns Max - Min.
func (i Interval) Width() float64 {
	return i.Max - i.Min
}

// Equal reports whether i and j have the same edges. NaN edges compare
// equal to NaN edges.
func (i Interval) Equal(j Interval) bool {
	if math.IsNaN(i.Min) {
		return math.IsNaN(j.Min)
	}
	if math.IsNaN(i.Max) {
		return math.IsNaN(j.Max)
	}
	return i.Min == j.Min && i.Max == j.Max
}

// ----------------------------------------------------------------------------
// Expansion

// Expansion describes how much a data interval is padded before being
// used as a scale range, so that the outermost data points do not sit
// exactly on the axis ends.
type Expansion struct {
	Absolute float64
	Relative float64 // fraction of the interval width
}

// Expanded returns i padded on both sides by e.
func (i Interval) Expanded(e Expansion) Interval {
	ext := e.Relative*i.Width() + e.Absolute
	return Interval{i.Min - ext, i.Max + ext}
}
