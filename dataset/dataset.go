// Package dataset reads series data points from CSV and XLSX files.
//
// A dataset is a sheet of rows with an x column, a y column and an
// optional label column. The x column may hold plain numbers or
// timestamps; timestamps are converted to milliseconds since the Unix
// epoch so that the points can be plotted against a time scale. A
// leading header row is detected and skipped.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/axiskit/axiskit/series"
)

// ErrNoData indicates the input contained no data rows.
var ErrNoData = errors.New("dataset: no data rows")

// ErrNoSheet indicates the workbook contains no sheets.
var ErrNoSheet = errors.New("dataset: workbook has no sheets")

// timeLayouts are tried in order when an x value does not parse as a
// number.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ReadFile reads the data points of the file at path, dispatching on
// the file extension: ".xlsx" is read as a workbook (sheet selects the
// sheet, empty means the first one), anything else as CSV.
func ReadFile(path, sheet string) (series.Points, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return ReadXLSX(path, sheet)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadCSV(f)
}

// ReadCSV reads data points from CSV input with columns x, y and an
// optional label.
func ReadCSV(r io.Reader) (series.Points, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var pts series.Points
	for row := 0; ; row++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataset: reading CSV: %w", err)
		}
		p, ok, err := parseRow(record, row)
		if err != nil {
			return nil, err
		}
		if ok {
			pts = append(pts, p)
		}
	}
	if len(pts) == 0 {
		return nil, ErrNoData
	}
	return pts, nil
}

// ReadXLSX reads data points from the given sheet of an xlsx workbook.
// An empty sheet name selects the first sheet.
func ReadXLSX(path, sheet string) (series.Points, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: opening %s: %w", path, err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, ErrNoSheet
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("dataset: reading sheet %q: %w", sheet, err)
	}

	var pts series.Points
	for i, record := range rows {
		p, ok, err := parseRow(record, i)
		if err != nil {
			return nil, err
		}
		if ok {
			pts = append(pts, p)
		}
	}
	if len(pts) == 0 {
		return nil, ErrNoData
	}
	return pts, nil
}

// parseRow turns one record into a point. A blank record is skipped, as
// is a non-numeric first row (header). ok reports whether a point was
// produced.
func parseRow(record []string, row int) (p series.Point, ok bool, err error) {
	fields := make([]string, 0, len(record))
	for _, f := range record {
		fields = append(fields, strings.TrimSpace(f))
	}
	if len(fields) < 2 || (fields[0] == "" && fields[1] == "") {
		return series.Point{}, false, nil
	}

	x, err := parseX(fields[0])
	if err != nil {
		if row == 0 {
			return series.Point{}, false, nil // header
		}
		return series.Point{}, false, fmt.Errorf("dataset: row %d: bad x value %q", row+1, fields[0])
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return series.Point{}, false, fmt.Errorf("dataset: row %d: bad y value %q", row+1, fields[1])
	}

	p = series.Point{X: x, Y: y}
	if len(fields) > 2 {
		p.Label = fields[2]
	}
	return p, true, nil
}

// parseX parses an x value as a number or, failing that, as a timestamp
// rendered as milliseconds since the Unix epoch.
func parseX(s string) (float64, error) {
	if x, err := strconv.ParseFloat(s, 64); err == nil {
		return x, nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return float64(t.UnixMilli()), nil
		}
	}
	return 0, fmt.Errorf("dataset: unparseable x value %q", s)
}
