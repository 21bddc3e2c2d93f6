package dataset

import (
	"math"
	"strconv"
	"strings"

	"corte-report-go/internal/types"
)

// Table is a raw spreadsheet: a header row followed by data rows, as read
// from the source file before any normalization.
type Table struct {
	Sheet  string     `json:"sheet,omitempty"`
	Header []string   `json:"header"`
	Rows   [][]string `json:"rows"`
}

// Value is a single cell. Numeric is set once the cell has been coerced.
type Value struct {
	Text    string
	Number  float64
	Numeric bool
}

// Dataset is an immutable snapshot of a cut report with canonical headers.
// Transformations return a new Dataset and leave the receiver untouched.
type Dataset struct {
	columns []string
	index   map[string]int
	rows    [][]Value
}

// New builds a Dataset from a raw table: headers are normalized, blank rows
// are skipped and any row whose Usuario contains "totales" is dropped.
func New(t Table) Dataset {
	ds := Dataset{
		columns: NormalizeHeaders(t.Header),
	}
	ds.index = buildIndex(ds.columns)
	userIdx, hasUser := ds.index[types.ColUser]
	for _, raw := range t.Rows {
		if blankRow(raw) {
			continue
		}
		row := make([]Value, len(ds.columns))
		for i := range row {
			if i < len(raw) {
				row[i] = Value{Text: raw[i]}
			}
		}
		if hasUser && IsTotalsLabel(row[userIdx].Text) {
			continue
		}
		ds.rows = append(ds.rows, row)
	}
	return ds
}

// IsTotalsLabel reports whether an identifier marks a totals/footer row.
func IsTotalsLabel(s string) bool {
	return strings.Contains(strings.ToLower(s), "totales")
}

// Columns returns the header names in order.
func (d Dataset) Columns() []string {
	out := make([]string, len(d.columns))
	copy(out, d.columns)
	return out
}

func (d Dataset) Len() int { return len(d.rows) }

func (d Dataset) Has(col string) bool {
	_, ok := d.index[col]
	return ok
}

// Text returns the raw text of a cell, or "" when the column is absent.
func (d Dataset) Text(row int, col string) string {
	i, ok := d.index[col]
	if !ok {
		return ""
	}
	return d.rows[row][i].Text
}

// Number returns the numeric value of a cell. Absent columns and values that
// do not parse read as zero.
func (d Dataset) Number(row int, col string) float64 {
	i, ok := d.index[col]
	if !ok {
		return 0
	}
	return coerce(d.rows[row][i])
}

// Sum adds a column across all rows.
func (d Dataset) Sum(col string) float64 {
	var total float64
	for r := range d.rows {
		total += d.Number(r, col)
	}
	return total
}

// WithNumeric returns a copy where the named columns, if present, hold
// numeric values. Coercing an already numeric column is a no-op.
func (d Dataset) WithNumeric(cols ...string) Dataset {
	var targets []int
	for _, c := range cols {
		if i, ok := d.index[c]; ok {
			targets = append(targets, i)
		}
	}
	out := d.clone()
	for _, row := range out.rows {
		for _, i := range targets {
			row[i] = Value{Text: row[i].Text, Number: coerce(row[i]), Numeric: true}
		}
	}
	return out
}

// WithColumn returns a copy with col set to fn(row) for every row. The column
// is appended when absent and overwritten otherwise.
func (d Dataset) WithColumn(col string, fn func(row int) Value) Dataset {
	out := d.clone()
	i, ok := out.index[col]
	if !ok {
		i = len(out.columns)
		out.columns = append(out.columns, col)
		out.index = buildIndex(out.columns)
		for r := range out.rows {
			out.rows[r] = append(out.rows[r], Value{})
		}
	}
	for r := range out.rows {
		out.rows[r][i] = fn(r)
	}
	return out
}

func (d Dataset) clone() Dataset {
	out := Dataset{
		columns: make([]string, len(d.columns)),
		index:   make(map[string]int, len(d.index)),
		rows:    make([][]Value, len(d.rows)),
	}
	copy(out.columns, d.columns)
	for k, v := range d.index {
		out.index[k] = v
	}
	for r, row := range d.rows {
		out.rows[r] = make([]Value, len(row), len(row)+1)
		copy(out.rows[r], row)
	}
	return out
}

// buildIndex keeps the first occurrence when two headers normalize to the
// same canonical name.
func buildIndex(cols []string) map[string]int {
	idx := make(map[string]int, len(cols))
	for i, c := range cols {
		if _, seen := idx[c]; !seen {
			idx[c] = i
		}
	}
	return idx
}

func blankRow(raw []string) bool {
	for _, c := range raw {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func coerce(v Value) float64 {
	if v.Numeric {
		return v.Number
	}
	return ParseNumber(v.Text)
}

// ParseNumber converts cell text to a float. Anything that is not a finite
// number becomes zero.
func ParseNumber(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
