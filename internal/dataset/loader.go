package dataset

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported spreadsheet format")
	ErrSheetNotFound     = errors.New("sheet not found")
	ErrNoHeader          = errors.New("no header row")
)

// LoadOptions selects what to read from a workbook. An empty Sheet means the
// first sheet. Delimiter applies to CSV input only; 0 sniffs it from the
// header line.
type LoadOptions struct {
	Sheet     string
	Delimiter rune
}

// Load opens a spreadsheet file and returns its first row as header and the
// remaining rows as data.
func Load(path string, opts LoadOptions) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()
	return LoadReader(f, filepath.Base(path), opts)
}

// LoadReader is Load for an already open stream. name is only used to pick
// the format from its extension.
func LoadReader(r io.Reader, name string, opts LoadOptions) (Table, error) {
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		return loadWorkbook(r, opts)
	case ".xls":
		return loadLegacyWorkbook(r, opts)
	case ".csv", ".txt":
		return loadCSV(r, opts)
	default:
		return Table{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

func loadWorkbook(r io.Reader, opts LoadOptions) (Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return Table{}, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	idx, err := pickSheet(sheets, opts.Sheet)
	if err != nil {
		return Table{}, err
	}
	sheet := sheets[idx]

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return Table{}, fmt.Errorf("read rows: %w", err)
	}
	t, err := split(rows)
	if err != nil {
		return Table{}, fmt.Errorf("sheet %q: %w", sheet, err)
	}
	t.Sheet = sheet
	return t, nil
}

// loadLegacyWorkbook reads a BIFF8 (.xls) workbook with the same sheet rules
// as loadWorkbook. Cells come back as the decoder's display text.
func loadLegacyWorkbook(r io.Reader, opts LoadOptions) (t Table, err error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Table{}, fmt.Errorf("read workbook: %w", err)
	}
	// the BIFF decoder panics on some malformed records
	defer func() {
		if p := recover(); p != nil {
			t, err = Table{}, fmt.Errorf("open workbook: malformed xls: %v", p)
		}
	}()

	wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return Table{}, fmt.Errorf("open workbook: %w", err)
	}
	if wb == nil {
		return Table{}, errors.New("open workbook: no Workbook stream in xls file")
	}
	sheets := make([]string, 0, wb.NumSheets())
	for i := 0; i < wb.NumSheets(); i++ {
		if ws := wb.GetSheet(i); ws != nil {
			sheets = append(sheets, ws.Name)
		} else {
			sheets = append(sheets, "")
		}
	}
	idx, err := pickSheet(sheets, opts.Sheet)
	if err != nil {
		return Table{}, err
	}
	ws := wb.GetSheet(idx)
	if ws == nil {
		return Table{}, fmt.Errorf("sheet %q: %w", sheets[idx], ErrNoHeader)
	}

	var rows [][]string
	width := 0
	for i := 0; i <= int(ws.MaxRow); i++ {
		row := ws.Row(i)
		if row == nil {
			rows = append(rows, nil)
			continue
		}
		last := row.LastCol()
		if last < width {
			last = width
		}
		cells := make([]string, last)
		for c := 0; c < last; c++ {
			cells[c] = row.Col(c)
		}
		cells = trimTrailingBlanks(cells)
		if i == 0 {
			width = len(cells)
		}
		rows = append(rows, cells)
	}
	// a sheet without cells still reports row 0
	if len(rows) == 1 && len(rows[0]) == 0 {
		rows = nil
	}

	t, err = split(rows)
	if err != nil {
		return Table{}, fmt.Errorf("sheet %q: %w", sheets[idx], err)
	}
	t.Sheet = sheets[idx]
	return t, nil
}

// pickSheet returns the index of want in sheets, or 0 when want is empty.
func pickSheet(sheets []string, want string) (int, error) {
	if len(sheets) == 0 {
		return 0, fmt.Errorf("no sheets")
	}
	if want == "" {
		return 0, nil
	}
	for i, s := range sheets {
		if s == want {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q (available: %s)", ErrSheetNotFound, want, strings.Join(sheets, ", "))
}

func trimTrailingBlanks(cells []string) []string {
	n := len(cells)
	for n > 0 && strings.TrimSpace(cells[n-1]) == "" {
		n--
	}
	return cells[:n]
}

func loadCSV(r io.Reader, opts LoadOptions) (Table, error) {
	br := bufio.NewReader(r)
	delim := opts.Delimiter
	if delim == 0 {
		first, _ := br.Peek(4096)
		delim = sniffDelimiter(string(first))
	}
	cr := csv.NewReader(br)
	cr.Comma = delim
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	rows, err := cr.ReadAll()
	if err != nil {
		return Table{}, fmt.Errorf("read csv: %w", err)
	}
	if len(rows) > 0 && len(rows[0]) > 0 {
		rows[0][0] = strings.TrimPrefix(rows[0][0], "\ufeff")
	}
	return split(rows)
}

// sniffDelimiter picks the most frequent of ',', ';' and tab on the first line.
func sniffDelimiter(sample string) rune {
	line := sample
	if i := strings.IndexByte(sample, '\n'); i >= 0 {
		line = sample[:i]
	}
	best, bestCount := ',', strings.Count(line, ",")
	for _, d := range []rune{';', '\t'} {
		if c := strings.Count(line, string(d)); c > bestCount {
			best, bestCount = d, c
		}
	}
	return best
}

func split(rows [][]string) (Table, error) {
	if len(rows) == 0 {
		return Table{}, ErrNoHeader
	}
	return Table{Header: rows[0], Rows: rows[1:]}, nil
}
