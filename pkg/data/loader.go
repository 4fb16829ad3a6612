// Package data loads the generated CSV back into columnar form for the
// analysis commands. Empty cells become NaN so downstream imputation can see
// them.
package data

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
)

// Frame is an immutable columnar view of a loaded CSV file.
type Frame struct {
	Header []string
	cols   map[string]int
	cells  [][]string // column-major
}

// LoadCSV reads an entire CSV file into a Frame. All rows must have the same
// width as the header.
func LoadCSV(path string) (*Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("data: open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(bufio.NewReader(f))
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("data: read %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("data: %s is empty", path)
	}

	header := records[0]
	fr := &Frame{
		Header: header,
		cols:   make(map[string]int, len(header)),
		cells:  make([][]string, len(header)),
	}
	for j, name := range header {
		fr.cols[name] = j
		fr.cells[j] = make([]string, 0, len(records)-1)
	}
	for _, rec := range records[1:] {
		for j, v := range rec {
			fr.cells[j] = append(fr.cells[j], v)
		}
	}
	return fr, nil
}

// Rows returns the number of data rows.
func (f *Frame) Rows() int {
	if len(f.cells) == 0 {
		return 0
	}
	return len(f.cells[0])
}

// HasColumn reports whether the frame contains the named column.
func (f *Frame) HasColumn(name string) bool {
	_, ok := f.cols[name]
	return ok
}

// StringColumn returns the raw cells of a column.
func (f *Frame) StringColumn(name string) ([]string, error) {
	j, ok := f.cols[name]
	if !ok {
		return nil, fmt.Errorf("data: no column %q", name)
	}
	return f.cells[j], nil
}

// FloatColumn parses a column as float64. Empty cells become NaN; any other
// unparsable cell is an error.
func (f *Frame) FloatColumn(name string) ([]float64, error) {
	raw, err := f.StringColumn(name)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(raw))
	for i, s := range raw {
		if s == "" {
			out[i] = math.NaN()
			continue
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("data: column %q row %d: %w", name, i, err)
		}
		out[i] = v
	}
	return out, nil
}

// IntColumn parses a column as int. No missing values are allowed.
func (f *Frame) IntColumn(name string) ([]int, error) {
	raw, err := f.StringColumn(name)
	if err != nil {
		return nil, err
	}
	out := make([]int, len(raw))
	for i, s := range raw {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("data: column %q row %d: %w", name, i, err)
		}
		out[i] = v
	}
	return out, nil
}

// Matrix assembles the named columns into a row-major feature matrix.
func (f *Frame) Matrix(names []string) ([][]float64, error) {
	cols := make([][]float64, len(names))
	for j, name := range names {
		c, err := f.FloatColumn(name)
		if err != nil {
			return nil, err
		}
		cols[j] = c
	}
	n := f.Rows()
	X := make([][]float64, n)
	for i := 0; i < n; i++ {
		row := make([]float64, len(names))
		for j := range names {
			row[j] = cols[j][i]
		}
		X[i] = row
	}
	return X, nil
}
