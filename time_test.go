package axiskit

import (
	"strconv"
	"testing"
	"time"
)

func TestTimeTicksDayRange(t *testing.T) {
	// Four whole days with one tick per day, mirroring an axis over
	// recent history. Dates are chosen away from DST transitions.
	end := time.Date(2022, time.March, 2, 16, 56, 0, 0, time.Local)
	start := end.AddDate(0, 0, -4)
	s := NewTime(start, end, 24*time.Hour)

	want := []Tick{
		{0, "26-Feb"},
		{0.25, "27-Feb"},
		{0.5, "28-Feb"},
		{0.75, "01-Mar"},
		{1, "02-Mar"},
	}
	if got := s.Ticks(); !ticksEqual(got, want) {
		t.Errorf("Ticks() = %v, want %v", got, want)
	}

	if got := s.NormalizeTime(end.AddDate(0, 0, -2)); !near(float64(got), 0.5) {
		t.Errorf("NormalizeTime(end-2d) = %g, want 0.5", got)
	}
}

func TestTimeTicksZeroStep(t *testing.T) {
	end := time.Now()
	start := end.Add(-time.Hour)

	if got := NewTime(start, end, 0).Ticks(); len(got) != 0 {
		t.Errorf("zero step over an hour: Ticks() = %v, want none", got)
	}

	// A degenerate range still gets its single tick.
	s := NewTimeWithLayout(end, end, 0, "15:04")
	if got := s.Ticks(); len(got) != 1 || got[0].Location != 0 {
		t.Errorf("zero step, degenerate range: Ticks() = %v, want one tick at 0", got)
	}
}

func TestTimeTicksInverted(t *testing.T) {
	newer := time.Date(2022, time.March, 2, 12, 0, 0, 0, time.Local)
	older := newer.AddDate(0, 0, -2)
	s := NewTime(newer, older, -24*time.Hour)

	want := []Tick{
		{0, "02-Mar"},
		{0.5, "01-Mar"},
		{1, "28-Feb"},
	}
	if got := s.Ticks(); !ticksEqual(got, want) {
		t.Errorf("Ticks() = %v, want %v", got, want)
	}
}

func TestTimeTicksEndNotOnStep(t *testing.T) {
	start := time.Date(2022, time.March, 2, 12, 0, 0, 0, time.UTC)
	end := start.Add(100 * time.Minute)
	s := NewTimeWithLabeller(start, end, 30*time.Minute, nil)

	want := []Tick{{0, ""}, {0.3, ""}, {0.6, ""}, {0.9, ""}, {1, ""}}
	if got := s.Ticks(); !ticksEqual(got, want) {
		t.Errorf("Ticks() = %v, want %v", got, want)
	}
}

func TestTimeCustomLayout(t *testing.T) {
	start := time.Date(2022, time.March, 2, 12, 0, 0, 0, time.Local)
	end := start.Add(time.Second)
	s := NewTimeWithLayout(start, end, 250*time.Millisecond, "05.000")

	want := []Tick{
		{0, "00.000"},
		{0.25, "00.250"},
		{0.5, "00.500"},
		{0.75, "00.750"},
		{1, "01.000"},
	}
	if got := s.Ticks(); !ticksEqual(got, want) {
		t.Errorf("Ticks() = %v, want %v", got, want)
	}
}

func TestTimeCustomLabeller(t *testing.T) {
	start := time.Unix(1000, 0)
	end := time.Unix(3000, 0)
	s := NewTimeWithLabeller(start, end, 1000*time.Second, func(t time.Time) string {
		return strconv.FormatInt(t.Unix(), 10)
	})

	want := []Tick{{0, "1000"}, {0.5, "2000"}, {1, "3000"}}
	if got := s.Ticks(); !ticksEqual(got, want) {
		t.Errorf("Ticks() = %v, want %v", got, want)
	}
}

func TestTimeNormalize(t *testing.T) {
	start := time.Unix(0, 0)
	end := start.Add(1000 * time.Millisecond)
	s := NewTime(start, end, 100*time.Millisecond)

	for i, tc := range []struct {
		ms   float64
		want float64
	}{
		{0, 0}, {250, 0.25}, {1000, 1}, {1500, 1.5}, {-500, -0.5},
	} {
		if got := s.Normalize(tc.ms); !near(float64(got), tc.want) {
			t.Errorf("%d: Normalize(%g) = %g, want %g", i, tc.ms, got, tc.want)
		}
	}
}
