package importer

import "strings"

// Profile names the header columns of one work log layout. Only DateCol is
// required; the other columns are read when present.
type Profile struct {
	Name      string
	DateCol   string
	WorkedCol string
	AmountCol string
	NotesCol  string
}

// profiles are tried in order against every row until one matches a header.
var profiles = []Profile{
	{Name: "english", DateCol: "date", WorkedCol: "worked", AmountCol: "amount", NotesCol: "notes"},
	{Name: "portuguese", DateCol: "data", WorkedCol: "trabalhou", AmountCol: "valor", NotesCol: "notas"},
	{Name: "spreadsheet", DateCol: "day", WorkedCol: "present", AmountCol: "pay", NotesCol: "comment"},
}

// positional is used when no header is found: date, worked, amount, notes.
var positional = columns{date: 0, worked: 1, amount: 2, notes: 3}

// columns holds cell indices; -1 means the column is absent.
type columns struct {
	date, worked, amount, notes int
}

func normalizeHeader(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// detectHeader returns the first row whose cells name a profile's date
// column, with the resolved column indices.
func detectHeader(rows [][]string) (*Profile, columns, int, bool) {
	for rowIdx, row := range rows {
		index := make(map[string]int, len(row))

		for i, cell := range row {
			if name := normalizeHeader(cell); name != "" {
				if _, dup := index[name]; !dup {
					index[name] = i
				}
			}
		}

		for i := range profiles {
			p := &profiles[i]

			date, ok := index[p.DateCol]
			if !ok {
				continue
			}

			cols := columns{date: date, worked: -1, amount: -1, notes: -1}
			if idx, ok := index[p.WorkedCol]; ok {
				cols.worked = idx
			}

			if idx, ok := index[p.AmountCol]; ok {
				cols.amount = idx
			}

			if idx, ok := index[p.NotesCol]; ok {
				cols.notes = idx
			}

			return p, cols, rowIdx, true
		}
	}

	return nil, columns{}, 0, false
}
