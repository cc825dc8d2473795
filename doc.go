// Package axiskit provides the scale math of a chart axis: the mapping
// of domain values onto a normalized [0, 1] position and the generation
// of tick marks with display labels.
//
// It plays nicely with gonum.org/v1/plot but does not depend on any
// particular rendering layer.
//
// Scales
//
// A Scale maps a fixed domain range to the unit interval. Two concrete
// scales are provided:
//   - Linear   A scale over a floating point range with a fixed step.
//   - Time     A scale over a timestamp range (millisecond resolution)
//              with a fixed step duration and local-time tick labels.
//
// Both may be constructed with an inverted range (start > end) and a
// matching negative step to support inverted axes. A TickerScale
// derives its ticks from a gonum/plot Ticker instead of a fixed step.
//
// Scales are immutable once constructed and are meant to be shared by
// reference between consumers, e.g. an axis and the series drawn
// against it. Normalized positions are not clamped: values outside the
// domain map outside [0, 1].
//
// Series and datasets
//
// The series subpackage turns data points plus a pair of scales into
// normalized chart geometry (line segments, bar spans, scatter
// markers). The dataset subpackage reads such points from CSV and XLSX
// files.
package axiskit
