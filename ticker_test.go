package axiskit

import (
	"testing"
	"time"

	"gonum.org/v1/plot"
)

func TestPlotTicker(t *testing.T) {
	pt := PlotTicker{Scale: NewLinear(0, 100, 25)}

	got := pt.Ticks(10, 20)
	want := []plot.Tick{
		{Value: 10, Label: "0"},
		{Value: 12.5, Label: "25"},
		{Value: 15, Label: "50"},
		{Value: 17.5, Label: "75"},
		{Value: 20, Label: "100"},
	}
	if len(got) != len(want) {
		t.Fatalf("Ticks(10, 20) = %v, want %v", got, want)
	}
	for i := range got {
		if !near(got[i].Value, want[i].Value) || got[i].Label != want[i].Label {
			t.Errorf("tick %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestTickerScale(t *testing.T) {
	s := NewFromTicker(0, 4, plot.ConstantTicks{
		{Value: 0, Label: "lo"},
		{Value: 1, Label: ""}, // minor tick stays unlabelled
		{Value: 2, Label: "mid"},
		{Value: 4, Label: "hi"},
	})

	want := []Tick{{0, "lo"}, {0.25, ""}, {0.5, "mid"}, {1, "hi"}}
	if got := s.Ticks(); !ticksEqual(got, want) {
		t.Errorf("Ticks() = %v, want %v", got, want)
	}
	if got := s.Normalize(3); !near(float64(got), 0.75) {
		t.Errorf("Normalize(3) = %g, want 0.75", got)
	}
}

func TestNiceLinear(t *testing.T) {
	s := NiceLinear(0, 10)

	ticks := s.Ticks()
	if len(ticks) == 0 {
		t.Fatal("NiceLinear(0, 10) produced no ticks")
	}
	labelled := 0
	for _, tk := range ticks {
		if tk.Location < -1e-9 || tk.Location > 1+1e-9 {
			t.Errorf("tick %v outside [0, 1]", tk)
		}
		if tk.Label != "" {
			labelled++
		}
	}
	if labelled < 2 {
		t.Errorf("got %d labelled ticks, want at least 2", labelled)
	}
}

func TestNiceTime(t *testing.T) {
	from := time.Date(2022, time.March, 2, 0, 0, 0, 0, time.Local)
	to := from.Add(6 * time.Hour)
	s := NiceTime(from, to, "15:04")

	ticks := s.Ticks()
	if len(ticks) == 0 {
		t.Fatal("NiceTime produced no ticks")
	}
	for _, tk := range ticks {
		if tk.Location < -1e-9 || tk.Location > 1+1e-9 {
			t.Errorf("tick %v outside [0, 1]", tk)
		}
	}
	if got := s.NormalizeTime(from.Add(3 * time.Hour)); !near(float64(got), 0.5) {
		t.Errorf("NormalizeTime(from+3h) = %g, want 0.5", got)
	}
}
