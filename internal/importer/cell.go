package importer

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/mydays/internal/isodate"
)

var (
	ErrInvalidAmount = errors.New("invalid amount")
	ErrInvalidWorked = errors.New("invalid worked value")
)

var dateLayouts = []string{isodate.Layout, "02-01-2006", "02/01/2006", "02.01.2006"}

// parseDate accepts yyyy-MM-dd and the day-first forms and returns the
// canonical yyyy-MM-dd string.
func parseDate(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}

	for _, layout := range dateLayouts {
		if len(s) != len(layout) {
			continue
		}

		if t, err := time.Parse(layout, s); err == nil {
			return isodate.Format(t), true
		}
	}

	return "", false
}

// parseAmount reads "1.234,56", "1234,56" and "1234.56". A comma always
// marks the decimals; dots before it are thousands separators. A currency
// sign or code is ignored. An empty cell yields nil.
func parseAmount(s string) (*decimal.Decimal, error) {
	clean := strings.NewReplacer("€", "", "EUR", "", " ", "", "\u00a0", "").Replace(strings.TrimSpace(s))
	if clean == "" {
		return nil, nil
	}

	if strings.Contains(clean, ",") {
		clean = strings.ReplaceAll(clean, ".", "")
		clean = strings.ReplaceAll(clean, ",", ".")
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return nil, ErrInvalidAmount
	}

	return &d, nil
}

// parseWorked treats an empty cell as worked: listing a day is taken to
// mean it was worked unless it says otherwise.
func parseWorked(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "true", "yes", "y", "1", "x", "sim", "s":
		return true, nil
	case "false", "no", "n", "0", "não", "nao", "-":
		return false, nil
	default:
		return false, ErrInvalidWorked
	}
}

func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
