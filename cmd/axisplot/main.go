// Command axisplot renders a chart from a CSV or XLSX dataset to a PNG
// file, with the axis ticks driven by axiskit scales.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/axiskit/axiskit"
	"github.com/axiskit/axiskit/dataset"
	"github.com/axiskit/axiskit/series"
)

var (
	output     string
	chartType  string
	title      string
	xLabel     string
	yLabel     string
	sheet      string
	timeAxis   bool
	timeLayout string
	width      float64
	height     float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "axisplot [input.csv|input.xlsx]",
		Short: "Render a line, scatter or bar chart from a dataset",
		Long: `axisplot reads x/y data points (with optional per-point labels) from
a CSV or XLSX file and renders them as a PNG chart. Axis ticks are
computed by axiskit scales.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&output, "output", "o", "chart.png", "Output PNG path")
	rootCmd.Flags().StringVar(&chartType, "type", "line", "Chart type: line, scatter, bar")
	rootCmd.Flags().StringVar(&title, "title", "", "Chart title")
	rootCmd.Flags().StringVar(&xLabel, "x-label", "", "X axis label")
	rootCmd.Flags().StringVar(&yLabel, "y-label", "", "Y axis label")
	rootCmd.Flags().StringVar(&sheet, "sheet", "", "XLSX sheet name (default: first sheet)")
	rootCmd.Flags().BoolVar(&timeAxis, "time", false, "Treat x values as timestamps")
	rootCmd.Flags().StringVar(&timeLayout, "time-layout", "", "Layout for time tick labels (default: 02-Jan)")
	rootCmd.Flags().Float64Var(&width, "width", 20, "Image width in centimeters")
	rootCmd.Flags().Float64Var(&height, "height", 12, "Image height in centimeters")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	pts, err := dataset.ReadFile(args[0], sheet)
	if err != nil {
		return fmt.Errorf("reading dataset: %w", err)
	}

	p, err := buildPlot(pts)
	if err != nil {
		return err
	}

	w := vg.Length(width) * vg.Centimeter
	h := vg.Length(height) * vg.Centimeter
	if err := p.Save(w, h, output); err != nil {
		return fmt.Errorf("saving %s: %w", output, err)
	}
	return nil
}

func buildPlot(pts series.Points) (*plot.Plot, error) {
	p, err := plot.New()
	if err != nil {
		return nil, fmt.Errorf("creating plot: %w", err)
	}
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel

	// Pad the data ranges so the outermost points clear the axes.
	pad := axiskit.Expansion{Relative: 0.05}
	xiv, yiv := pts.Ranges()
	xiv, yiv = xiv.Expanded(pad), yiv.Expanded(pad)

	p.Y.Min, p.Y.Max = yiv.Min, yiv.Max
	p.Y.Tick.Marker = axiskit.PlotTicker{Scale: axiskit.NiceLinear(yiv.Min, yiv.Max)}

	xys := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		xys[i].X, xys[i].Y = pt.X, pt.Y
	}

	switch chartType {
	case "line":
		l, err := plotter.NewLine(xys)
		if err != nil {
			return nil, fmt.Errorf("building line: %w", err)
		}
		p.Add(l)
	case "scatter":
		s, err := plotter.NewScatter(xys)
		if err != nil {
			return nil, fmt.Errorf("building scatter: %w", err)
		}
		p.Add(s)
	case "bar":
		vals := make(plotter.Values, len(pts))
		for i, pt := range pts {
			vals[i] = pt.Y
		}
		b, err := plotter.NewBarChart(vals, vg.Points(12))
		if err != nil {
			return nil, fmt.Errorf("building bars: %w", err)
		}
		p.Add(b)
	default:
		return nil, fmt.Errorf("invalid type: %s (must be line, scatter, or bar)", chartType)
	}

	if chartType == "bar" {
		// Bars are placed at 0..n-1, so label them from the data
		// instead of ticking the x range.
		names := make([]string, len(pts))
		for i, pt := range pts {
			if names[i] = pt.Label; names[i] == "" {
				names[i] = axiskit.TruncateLabel(pt.X)
			}
		}
		p.NominalX(names...)
		return p, nil
	}

	p.X.Min, p.X.Max = xiv.Min, xiv.Max
	if timeAxis {
		from, to := time.UnixMilli(int64(xiv.Min)), time.UnixMilli(int64(xiv.Max))
		p.X.Tick.Marker = axiskit.PlotTicker{Scale: axiskit.NiceTime(from, to, timeLayout)}
	} else {
		p.X.Tick.Marker = axiskit.PlotTicker{Scale: axiskit.NiceLinear(xiv.Min, xiv.Max)}
	}
	return p, nil
}
