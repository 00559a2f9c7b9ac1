package tabular

import (
	"fmt"
	"strconv"
	"strings"
)

// openEnd marks an unbounded range edge ("A:Z" has open rows).
const openEnd = -1

// Range is a zero-based, inclusive cell rectangle parsed from A1 notation.
// EndRow/EndCol equal to -1 mean unbounded.
type Range struct {
	StartCol, StartRow int
	EndCol, EndRow     int
}

// ParseRange parses "A1", "A2:B1000", "A:Z" or "A2:A" into a Range.
// A single cell ("A1") is a start point: rows and columns extend without bound.
func ParseRange(a1 string) (Range, error) {
	a1 = strings.TrimSpace(a1)
	if a1 == "" {
		return Range{}, fmt.Errorf("empty range")
	}
	start, end, hasEnd := strings.Cut(a1, ":")
	sc, sr, err := parseCell(start)
	if err != nil {
		return Range{}, fmt.Errorf("parse range %q: %w", a1, err)
	}
	if sc == openEnd {
		return Range{}, fmt.Errorf("parse range %q: missing start column", a1)
	}
	if sr == openEnd {
		sr = 0
	}
	if !hasEnd {
		return Range{StartCol: sc, StartRow: sr, EndCol: openEnd, EndRow: openEnd}, nil
	}
	ec, er, err := parseCell(end)
	if err != nil {
		return Range{}, fmt.Errorf("parse range %q: %w", a1, err)
	}
	if (ec != openEnd && ec < sc) || (er != openEnd && er < sr) {
		return Range{}, fmt.Errorf("parse range %q: end before start", a1)
	}
	return Range{StartCol: sc, StartRow: sr, EndCol: ec, EndRow: er}, nil
}

// parseCell splits "AB12" into a zero-based column and row; missing parts are openEnd.
func parseCell(cell string) (col, row int, err error) {
	cell = strings.ToUpper(cell)
	i := 0
	for i < len(cell) && cell[i] >= 'A' && cell[i] <= 'Z' {
		i++
	}
	letters, digits := cell[:i], cell[i:]
	if letters == "" && digits == "" {
		return 0, 0, fmt.Errorf("empty cell reference")
	}
	col, row = openEnd, openEnd
	if letters != "" {
		col = 0
		for _, c := range letters {
			col = col*26 + int(c-'A'+1)
		}
		col--
	}
	if digits != "" {
		n, err := strconv.Atoi(digits)
		if err != nil || n < 1 {
			return 0, 0, fmt.Errorf("invalid row %q", digits)
		}
		row = n - 1
	}
	return col, row, nil
}

// ColumnName converts a zero-based column index to letters (0 -> "A", 26 -> "AA").
func ColumnName(col int) string {
	name := ""
	for col >= 0 {
		name = string(rune('A'+col%26)) + name
		col = col/26 - 1
	}
	return name
}

func (r Range) rowInside(i int) bool {
	return i >= r.StartRow && (r.EndRow == openEnd || i <= r.EndRow)
}

// Slice cuts the rectangle out of a full table. Trailing empty cells and rows are dropped,
// matching what the spreadsheet API returns.
func (r Range) Slice(table [][]string) [][]string {
	out := [][]string{}
	for i, row := range table {
		if !r.rowInside(i) {
			continue
		}
		var cells []string
		if r.StartCol < len(row) {
			end := len(row)
			if r.EndCol != openEnd && r.EndCol+1 < end {
				end = r.EndCol + 1
			}
			cells = append(cells, row[r.StartCol:end]...)
		}
		out = append(out, trimRight(cells))
	}
	for len(out) > 0 && len(out[len(out)-1]) == 0 {
		out = out[:len(out)-1]
	}
	return out
}

// Apply writes values into table starting at the range origin, growing rows as needed, and
// returns the modified table. Values beyond a bounded range edge are ignored.
func (r Range) Apply(table [][]string, values [][]string) [][]string {
	for i, vals := range values {
		ri := r.StartRow + i
		if !r.rowInside(ri) {
			break
		}
		for len(table) <= ri {
			table = append(table, []string{})
		}
		row := table[ri]
		for j, v := range vals {
			ci := r.StartCol + j
			if r.EndCol != openEnd && ci > r.EndCol {
				break
			}
			for len(row) <= ci {
				row = append(row, "")
			}
			row[ci] = v
		}
		table[ri] = trimRight(row)
	}
	return table
}

// Blank empties every cell inside the range and returns the modified table.
func (r Range) Blank(table [][]string) [][]string {
	for i, row := range table {
		if !r.rowInside(i) {
			continue
		}
		for j := range row {
			if j >= r.StartCol && (r.EndCol == openEnd || j <= r.EndCol) {
				row[j] = ""
			}
		}
		table[i] = trimRight(row)
	}
	return table
}

func trimRight(row []string) []string {
	n := len(row)
	for n > 0 && row[n-1] == "" {
		n--
	}
	if n == 0 {
		return []string{}
	}
	return row[:n]
}
