// Package importer reads work logs exported from spreadsheets or other tools
// and turns them into work day rows for one employee.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	enc "github.com/MrJamesThe3rd/mydays/internal/encoding"
	"github.com/MrJamesThe3rd/mydays/internal/workday"
)

// Skipped records a data row that was left out and why.
type Skipped struct {
	Row    int
	Reason string
}

type Result struct {
	Rows    []workday.AddOrUpdateParams
	Skipped []Skipped
	Charset enc.Charset
	// Profile is the matched header layout, or "positional" when the file
	// had no header row.
	Profile string
}

// Parser auto-detects encoding, separator and header layout.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) (*Result, error) {
	utf8r, charset, err := enc.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	content, err := io.ReadAll(utf8r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	reader := csv.NewReader(bytes.NewReader(content))
	reader.Comma = separator(content)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, lines, err := readAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	res := &Result{Charset: charset, Profile: "positional"}

	cols, start := positional, 0

	if profile, found, headerIdx, ok := detectHeader(rows); ok {
		res.Profile = profile.Name
		cols, start = found, headerIdx+1
	}

	if err := parseRows(res, cols, rows[start:], lines[start:]); err != nil {
		return nil, err
	}

	return res, nil
}

// readAll reads every record along with the file line it starts on, since
// the csv reader skips blank lines.
func readAll(reader *csv.Reader) ([][]string, []int, error) {
	var (
		rows  [][]string
		lines []int
	)

	for {
		record, err := reader.Read()
		if err == io.EOF {
			return rows, lines, nil
		}

		if err != nil {
			return nil, nil, err
		}

		line, _ := reader.FieldPos(0)

		rows = append(rows, record)
		lines = append(lines, line)
	}
}

// separator picks ';' whenever the input contains one, since decimal
// commas make ',' counts unreliable.
func separator(content []byte) rune {
	if bytes.ContainsRune(content, ';') {
		return ';'
	}

	return ','
}

// parseRows appends parsed rows to res. lines holds the file line of each
// row, used as the row number in messages.
func parseRows(res *Result, cols columns, rows [][]string, lines []int) error {
	seen := make(map[string]int)

	for i, row := range rows {
		rowNum := lines[i]

		if isBlank(row) {
			continue
		}

		date, ok := parseDate(cellValue(row, cols.date))
		if !ok {
			res.Skipped = append(res.Skipped, Skipped{Row: rowNum, Reason: fmt.Sprintf("unreadable date %q", cellValue(row, cols.date))})
			continue
		}

		if first, dup := seen[date]; dup {
			res.Skipped = append(res.Skipped, Skipped{Row: rowNum, Reason: fmt.Sprintf("date %s already on row %d", date, first)})
			continue
		}

		worked, err := parseWorked(cellValue(row, cols.worked))
		if err != nil {
			return fmt.Errorf("row %d: %w %q", rowNum, err, cellValue(row, cols.worked))
		}

		amount, err := parseAmount(cellValue(row, cols.amount))
		if err != nil {
			return fmt.Errorf("row %d: %w %q", rowNum, err, cellValue(row, cols.amount))
		}

		if amount != nil && amount.IsNegative() {
			return fmt.Errorf("row %d: %w", rowNum, workday.ErrNegativeAmount)
		}

		seen[date] = rowNum

		res.Rows = append(res.Rows, workday.AddOrUpdateParams{
			Date:         date,
			Worked:       worked,
			CustomAmount: amount,
			Notes:        cellValue(row, cols.notes),
		})
	}

	return nil
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}

	return true
}
