//go:build ignore
// +build ignore

package main

import (
	"fmt"
	"image/color"
	"os"
	"time"

	"github.com/axiskit/axiskit"
	"github.com/axiskit/axiskit/series"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

const margin = 50

func main() {
	end := time.Now()
	start := end.AddDate(0, 0, -4)

	data := series.Points{
		{X: ms(start), Y: 1},
		{X: ms(start.AddDate(0, 0, 1)), Y: 4, Label: "spike"},
		{X: ms(start.AddDate(0, 0, 2)), Y: 3},
		{X: ms(start.AddDate(0, 0, 3)), Y: 2},
		{X: ms(end), Y: 5},
	}

	s := series.Series{
		Name:    "some-series",
		Data:    data,
		Type:    series.Line,
		X:       axiskit.NewTime(start, end, 24*time.Hour),
		Y:       axiskit.NewLinear(0, 5, 1),
		Tooltip: series.YTooltip,
	}

	img := vgimg.New(600, 480)
	dc := draw.New(img)

	drawChart(dc, &s)
	write(img, "testdata/series-00.png")
}

func ms(t time.Time) float64 {
	return float64(t.UnixMilli())
}

func drawChart(c draw.Canvas, s *series.Series) {
	font, err := vg.MakeFont("Helvetica", 10)
	if err != nil {
		panic(err)
	}
	text := draw.TextStyle{Color: color.Black, Font: font, XAlign: draw.XCenter, YAlign: draw.YTop}
	line := draw.LineStyle{Color: color.Black, Width: 1}

	x0, y0 := c.Min.X+margin, c.Min.Y+margin
	x1, y1 := c.Max.X-margin, c.Max.Y-margin
	w, h := x1-x0, y1-y0

	// Axis lines.
	c.StrokeLine2(line, x0, y0, x1, y0)
	c.StrokeLine2(line, x0, y0, x0, y1)

	// Ticks with labels.
	for _, t := range s.X.Ticks() {
		x := x0 + vg.Length(t.Location)*w
		c.StrokeLine2(line, x, y0, x, y0-5)
		c.FillText(text, vg.Point{X: x, Y: y0 - 7}, t.Label)
	}
	ytext := text
	ytext.XAlign = draw.XRight
	ytext.YAlign = draw.YCenter
	for _, t := range s.Y.Ticks() {
		y := y0 + vg.Length(t.Location)*h
		c.StrokeLine2(line, x0-5, y, x0, y)
		c.FillText(ytext, vg.Point{X: x0 - 7, Y: y}, t.Label)
	}

	// The series itself.
	stroke := draw.LineStyle{Color: color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}, Width: 2}
	for _, l := range s.Lines() {
		c.StrokeLine2(stroke,
			x0+vg.Length(l.From.U)*w, y0+vg.Length(l.From.V)*h,
			x0+vg.Length(l.To.U)*w, y0+vg.Length(l.To.V)*h)
	}
	for _, p := range s.Project() {
		if p.Label == "" {
			continue
		}
		pt := vg.Point{X: x0 + vg.Length(p.U)*w, Y: y0 + vg.Length(p.V)*h + 5}
		ltext := text
		ltext.YAlign = draw.YBottom
		c.FillText(ltext, pt, p.Label)
	}
}

func write(canvas *vgimg.Canvas, name string) {
	w, err := os.Create(name)
	if err != nil {
		panic(err)
	}
	png := vgimg.PngCanvas{Canvas: canvas}
	if _, err = png.WriteTo(w); err != nil {
		panic(err)
	}
	if err = w.Close(); err != nil {
		panic(err)
	}
	fmt.Println("wrote", name)
}
