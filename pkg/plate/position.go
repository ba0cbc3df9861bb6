package plate

import (
	"cmp"
	"strconv"
	"strings"
)

// Position is the row and column of a well, both zero based.
type Position struct {
	Row    int
	Column int
}

// Pos is a shorthand for Position{Row: row, Column: column}.
func Pos(row, column int) Position {
	return Position{Row: row, Column: column}
}

// Compare orders positions by row, then column.
func (p Position) Compare(o Position) int {
	if c := cmp.Compare(p.Row, o.Row); c != 0 {
		return c
	}
	return cmp.Compare(p.Column, o.Column)
}

// Valid reports whether both coordinates are non-negative.
func (p Position) Valid() bool {
	return p.Row >= 0 && p.Column >= 0
}

// String returns the spreadsheet style id, e.g. {0,0} is "A1" and {26,11} is "AA12".
func (p Position) String() string {
	if !p.Valid() {
		return "?" + strconv.Itoa(p.Row) + ":" + strconv.Itoa(p.Column)
	}
	return RowName(p.Row) + strconv.Itoa(p.Column+1)
}

// RowName converts a zero based row index into its letter code:
// 0 is "A", 25 is "Z", 26 is "AA", 701 is "ZZ", 702 is "AAA".
func RowName(row int) string {
	if row < 0 {
		return ""
	}
	var b []byte
	for n := row + 1; n > 0; n = (n - 1) / 26 {
		b = append(b, byte('A'+(n-1)%26))
	}
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

// ParseRow converts a letter code ("A", "aa") back into a zero based row index.
func ParseRow(s string) (int, error) {
	if s == "" {
		return 0, ErrInvalidPosition.Here().Append("empty row")
	}
	n := 0
	for _, c := range strings.ToUpper(s) {
		if c < 'A' || c > 'Z' {
			return 0, ErrInvalidPosition.Here().Appendf("row %q", s)
		}
		n = n*26 + int(c-'A'+1)
	}
	return n - 1, nil
}

// ParsePosition parses a well id such as "A1", "h12" or "AB7".
func ParsePosition(id string) (Position, error) {
	i := strings.IndexFunc(id, func(r rune) bool { return r >= '0' && r <= '9' })
	if i <= 0 {
		return Position{}, ErrInvalidPosition.Here().Appendf("id %q", id)
	}
	row, err := ParseRow(id[:i])
	if err != nil {
		return Position{}, err
	}
	column, err := strconv.Atoi(id[i:])
	if err != nil || column < 1 {
		return Position{}, ErrInvalidPosition.Here().Appendf("id %q", id)
	}
	return Position{Row: row, Column: column - 1}, nil
}
