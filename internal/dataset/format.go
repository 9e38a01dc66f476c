package dataset

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// Kind names the formatting applied to a column.
type Kind string

const (
	KindDate     Kind = "date"
	KindCurrency Kind = "currency"
)

// Directives maps column names to their format kind.
type Directives map[string]Kind

// ParseKind converts a config value into a directive kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "date":
		return KindDate, nil
	case "currency":
		return KindCurrency, nil
	default:
		return "", fmt.Errorf("unknown format directive %q", s)
	}
}

// DateLayout is the rendering layout for date cells (MM/DD/YYYY).
const DateLayout = "01/02/2006"

// Layouts accepted for date-directive cells.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006/01/02",
	time.RFC3339,
}

// ParseDate parses a date cell in any of the accepted layouts.
func ParseDate(s string) (time.Time, error) {
	trimmed := strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// ParseAmount parses a currency cell as a float value.
func ParseAmount(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// TitleCase uppercases the first letter of every word and lowercases
// the rest, treating any non-letter as a word boundary: payment_date
// becomes Payment_Date.
func TitleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}

// Format returns a new dataset with title-cased headers, date columns
// rendered as MM/DD/YYYY, and currency columns validated as numeric.
// The input dataset is never modified. Directive keys are matched
// against the title-cased header names, so a directive for "amount"
// applies to a column named "AMOUNT". Empty cells pass through
// untouched.
func Format(d *Dataset, directives Directives) (*Dataset, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	out := &Dataset{
		Columns: make([]string, len(d.Columns)),
		Cells:   make(map[string][]string, len(d.Columns)),
	}
	for i, col := range d.Columns {
		name := TitleCase(col)
		if _, exists := out.Cells[name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateColumn, name)
		}
		out.Columns[i] = name
		out.Cells[name] = append([]string(nil), d.Cells[col]...)
	}

	for col, kind := range directives {
		name := TitleCase(col)
		idx := out.ColumnIndex(name)
		if idx < 0 {
			return nil, fmt.Errorf("%w: %s", ErrUnknownColumn, col)
		}
		cells := out.Cells[name]
		switch kind {
		case KindDate:
			for i, cell := range cells {
				if cell == "" {
					continue
				}
				t, err := ParseDate(cell)
				if err != nil {
					return nil, fmt.Errorf("column %s row %d: cannot render %q as date: %v", name, i+1, cell, err)
				}
				cells[i] = t.Format(DateLayout)
			}
		case KindCurrency:
			for i, cell := range cells {
				if cell == "" {
					continue
				}
				if _, err := ParseAmount(cell); err != nil {
					return nil, fmt.Errorf("column %s row %d: %q is not a numeric amount", name, i+1, cell)
				}
			}
		default:
			return nil, fmt.Errorf("column %s: unknown format directive %q", name, kind)
		}
	}
	return out, nil
}
