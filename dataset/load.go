package dataset

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

// ============================================================================
// LOADER — spreadsheet bytes → normalized Table
// ============================================================================
// Reads .xlsx (excelize), legacy .xls, or .csv into raw rows, then applies
// the normalization rules: lowercase/trim column names, parse and shift
// dates, derive month labels, canonicalize device codes.
// ============================================================================

// Required columns after name normalization. A source missing either is
// rejected at load time rather than failing lazily at first access.
var requiredColumns = []string{"date", "duration_minutes"}

// interpretedColumns are the columns the loader maps onto typed Session
// fields. Everything else is carried in Session.Extra uninterpreted.
var interpretedColumns = map[string]bool{
	"date":             true,
	"game":             true,
	"device":           true,
	"area":             true,
	"duration_minutes": true,
}

// Load parses spreadsheet bytes into a normalized Table.
// The name's extension selects the reader (.xls, .csv, default .xlsx).
// Returns *DataFormatError when the source is not usable.
func Load(name string, data []byte) (*Table, error) {
	rows, err := readRows(name, data)
	if err != nil {
		return nil, err
	}
	return buildTable(name, rows)
}

// LoadFile reads and parses a spreadsheet from disk.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Load(filepath.Base(path), data)
}

// ============================================================================
// RAW ROW READING
// ============================================================================

func readRows(name string, data []byte) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xls":
		workbook, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
		if err != nil {
			return nil, formatErrf(name, "not a readable XLS workbook: %v", err)
		}
		if workbook.NumSheets() == 0 {
			return nil, formatErrf(name, "no worksheet found")
		}
		rows := workbook.ReadAllCells(100000)
		if len(rows) == 0 {
			return nil, formatErrf(name, "worksheet is empty")
		}
		return rows, nil

	case ".csv":
		reader := csv.NewReader(bytes.NewReader(data))
		reader.FieldsPerRecord = -1 // ragged rows are tolerated, cells default empty
		rows, err := reader.ReadAll()
		if err != nil {
			return nil, formatErrf(name, "not readable as CSV: %v", err)
		}
		if len(rows) == 0 {
			return nil, formatErrf(name, "file is empty")
		}
		return rows, nil

	default:
		file, err := excelize.OpenReader(bytes.NewReader(data))
		if err != nil {
			return nil, formatErrf(name, "not a readable workbook: %v", err)
		}
		defer func() { _ = file.Close() }()

		sheetName := file.GetSheetName(0)
		if sheetName == "" {
			return nil, formatErrf(name, "no worksheet found")
		}
		rows, err := file.GetRows(sheetName)
		if err != nil {
			return nil, formatErrf(name, "failed to read worksheet %q: %v", sheetName, err)
		}
		if len(rows) == 0 {
			return nil, formatErrf(name, "worksheet %q is empty", sheetName)
		}
		return rows, nil
	}
}

// ============================================================================
// NORMALIZATION
// ============================================================================

func buildTable(source string, rows [][]string) (*Table, error) {
	headers := make([]string, len(rows[0]))
	index := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		key := strings.ToLower(strings.TrimSpace(h))
		headers[i] = key
		if _, exists := index[key]; !exists {
			index[key] = i
		}
	}

	var missing []string
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, formatErrf(source, "missing required columns: %s", strings.Join(missing, ", "))
	}

	hasDevice := hasColumn(index, "device")
	var extraCols []string
	for _, h := range headers {
		if !interpretedColumns[h] {
			extraCols = append(extraCols, h)
		}
	}

	table := &Table{Columns: headers}
	for n, row := range rows[1:] {
		if blankRow(row) {
			continue
		}

		rawDate := cell(row, index, "date")
		if rawDate == "" {
			return nil, formatErrf(source, "row %d: empty date", n+2)
		}
		date, err := parseDate(rawDate)
		if err != nil {
			return nil, formatErrf(source, "row %d: unparseable date %q", n+2, rawDate)
		}
		// Every date is shifted forward by exactly one year. Fixed rule
		// carried over from the source dataset; do not make configurable.
		date = date.AddDate(1, 0, 0)

		rawDur := cell(row, index, "duration_minutes")
		duration, err := strconv.ParseFloat(strings.ReplaceAll(rawDur, ",", ""), 64)
		if err != nil {
			return nil, formatErrf(source, "row %d: unparseable duration_minutes %q", n+2, rawDur)
		}

		s := Session{
			Date:            date,
			Month:           date.Month().String(),
			MonthNum:        int(date.Month()),
			Game:            cell(row, index, "game"),
			Device:          cell(row, index, "device"),
			Area:            cell(row, index, "area"),
			DurationMinutes: duration,
		}
		if hasDevice {
			s.Device = CanonicalDevice(s.Device)
		}
		if len(extraCols) > 0 {
			s.Extra = make(map[string]string, len(extraCols))
			for _, col := range extraCols {
				s.Extra[col] = cell(row, index, col)
			}
		}

		table.Sessions = append(table.Sessions, s)
	}

	return table, nil
}

func hasColumn(index map[string]int, name string) bool {
	_, ok := index[name]
	return ok
}

func cell(row []string, index map[string]int, col string) string {
	i, ok := index[col]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func blankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// ============================================================================
// DATE PARSING
// ============================================================================

// dateLayouts covers the formats spreadsheet readers hand back for date
// cells, most specific first.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"01/02/2006 15:04:05",
	"01/02/2006 15:04",
	"01/02/2006",
	"1/2/2006",
	"01/02/06 15:04",
	"01/02/06",
	"1/2/06",
	"01-02-06",
	"02-Jan-06",
	"Jan 2, 2006",
	"January 2, 2006",
}

// excelEpoch is day zero of Excel's 1900 date system.
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

func parseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}

	// Cells without a date style come back as raw serial numbers.
	if serial, err := strconv.ParseFloat(value, 64); err == nil && serial > 0 {
		days := int(serial)
		frac := serial - float64(days)
		t := excelEpoch.AddDate(0, 0, days)
		return t.Add(time.Duration(frac * 24 * float64(time.Hour))), nil
	}

	return time.Time{}, fmt.Errorf("unrecognized date format %q", value)
}
