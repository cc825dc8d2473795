// Package series turns chart data plus a pair of scales into normalized
// chart geometry.
//
// A Series holds the data points of one plotted quantity together with
// the X and Y scales it is drawn against. The package computes where
// each point lands on the unit square and, depending on the series
// type, which line segments or bar spans connect them. It produces
// geometry only; rendering the geometry is the concern of whatever
// drawing layer consumes it.
package series

import (
	"math"
	"strconv"

	"github.com/axiskit/axiskit"
)

// ----------------------------------------------------------------------------
// Points

// A Point is one datum of a series. The optional Label is display text
// attached to this particular point, e.g. an annotation above a marker.
type Point struct {
	X, Y  float64
	Label string
}

// Points is the ordered data of a series.
type Points []Point

// Ranges returns the intervals covered by the X and Y values of ps.
func (ps Points) Ranges() (x, y axiskit.Interval) {
	x, y = axiskit.UnsetInterval(), axiskit.UnsetInterval()
	for _, p := range ps {
		x.Update(p.X)
		y.Update(p.Y)
	}
	return x, y
}

// ----------------------------------------------------------------------------
// Series

// Type describes how the data points of a series are connected.
type Type int

const (
	// Line joins consecutive points with line segments.
	Line Type = iota
	// Scatter does not join the points; each stands on its own.
	Scatter
	// Bar draws a vertical span per point.
	Bar
)

func (t Type) String() string {
	return []string{"line", "scatter", "bar"}[int(t)]
}

// BarDirection describes which way the bars of a Bar series extend.
type BarDirection int

const (
	// Rise extends each bar from the axis baseline up to the datum.
	Rise BarDirection = iota
	// Drop extends each bar from the datum up to the axis end.
	Drop
)

// A Tooltipper produces hover text for a data point.
type Tooltipper func(x, y float64) string

// YTooltip is a basic tooltipper that renders the truncated y value.
func YTooltip(x, y float64) string {
	return strconv.FormatInt(int64(y), 10)
}

// Series is one plotted quantity: its data, how the points connect, and
// the scales mapping the data onto the unit square.
type Series struct {
	// Name identifies the series, e.g. for legends or styling.
	Name string

	Data Points
	Type Type

	// Direction applies to Bar series only.
	Direction BarDirection

	// X and Y map data coordinates to normalized positions.
	X, Y axiskit.Scale

	// Step is the gap quantum along x: consecutive points further
	// apart than one Step are treated as a break in the data, ending
	// the current line segment. Zero disables gap detection. Scatter
	// and Bar series ignore it.
	Step float64

	// Tooltip produces hover text per point. Nil means no tooltips.
	Tooltip Tooltipper
}

// A ProjectedPoint pairs a datum with its normalized position.
type ProjectedPoint struct {
	X, Y  float64
	U, V  axiskit.Normalized
	Label string
}

// Project maps every data point through the series' scales. The order
// of the data is preserved.
func (s *Series) Project() []ProjectedPoint {
	pts := make([]ProjectedPoint, len(s.Data))
	for i, p := range s.Data {
		pts[i] = ProjectedPoint{
			X:     p.X,
			Y:     p.Y,
			U:     s.X.Normalize(p.X),
			V:     s.Y.Normalize(p.Y),
			Label: p.Label,
		}
	}
	return pts
}

// Segments returns the projected points split into runs of contiguous
// data. A new run starts whenever two consecutive points are separated
// by more than one Step quantum along x, so that a line drawn through
// the series breaks where data is missing.
func (s *Series) Segments() [][]ProjectedPoint {
	projected := s.Project()
	if len(projected) == 0 {
		return nil
	}

	step := s.Step
	if step == 0 {
		step = math.MaxFloat64
	}

	var segments [][]ProjectedPoint
	var current []ProjectedPoint
	lastSnap := math.Inf(-1)
	for i, p := range projected {
		snap := math.Floor(p.X/step) * step
		if i > 0 && snap-lastSnap > step {
			segments = append(segments, current)
			current = nil
		}
		current = append(current, p)
		lastSnap = snap
	}
	return append(segments, current)
}

// A LineSegment joins two consecutive points of a Line series.
type LineSegment struct {
	From, To ProjectedPoint
	Tooltip  string
}

// Lines returns the segments joining consecutive points of a Line
// series, honoring gap detection. The tooltip of a segment combines the
// tooltips of its two endpoints. Non-Line series yield nothing.
func (s *Series) Lines() []LineSegment {
	if s.Type != Line {
		return nil
	}

	var lines []LineSegment
	for _, seg := range s.Segments() {
		for i := 1; i < len(seg); i++ {
			l := LineSegment{From: seg[i-1], To: seg[i]}
			if s.Tooltip != nil {
				l.Tooltip = s.Tooltip(l.From.X, l.From.Y) + "-" + s.Tooltip(l.To.X, l.To.Y)
			}
			lines = append(lines, l)
		}
	}
	return lines
}

// A BarSpan is the vertical extent of one bar, at normalized horizontal
// position U covering [From, To] along the y axis.
type BarSpan struct {
	X, Y     float64
	U        axiskit.Normalized
	From, To axiskit.Normalized
	Tooltip  string
}

// BarSpans returns one span per point of a Bar series: from the
// baseline up to the datum for Rise, from the datum to the axis end for
// Drop. Empty spans are skipped. Non-Bar series yield nothing.
func (s *Series) BarSpans() []BarSpan {
	if s.Type != Bar {
		return nil
	}

	var bars []BarSpan
	for _, p := range s.Project() {
		b := BarSpan{X: p.X, Y: p.Y, U: p.U}
		switch s.Direction {
		case Rise:
			b.From, b.To = 0, p.V
		case Drop:
			b.From, b.To = p.V, 1
		}
		if b.From == b.To {
			continue
		}
		if s.Tooltip != nil {
			b.Tooltip = s.Tooltip(p.X, p.Y)
		}
		bars = append(bars, b)
	}
	return bars
}
