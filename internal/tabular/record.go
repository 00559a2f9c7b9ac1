// Package tabular maps header-plus-rows tables to keyed records and back.
package tabular

import "strings"

// Record is one data row keyed by header name.
type Record map[string]string

// Get returns the first non-empty value among keys, or "".
func (r Record) Get(keys ...string) string {
	for _, k := range keys {
		if v := r[k]; v != "" {
			return v
		}
	}
	return ""
}

// normalizeHeader maps any casing of "day" to "day"; every other header is kept verbatim.
func normalizeHeader(h string) string {
	if strings.EqualFold(h, "day") {
		return "day"
	}
	return h
}

// MapRows treats table[0] as the header row and maps each remaining row to a Record.
// Cells missing from short rows default to "". Duplicate headers let the last column win.
func MapRows(table [][]string) []Record {
	if len(table) == 0 {
		return []Record{}
	}
	headers := table[0]
	records := make([]Record, 0, len(table)-1)
	for _, row := range table[1:] {
		rec := make(Record, len(headers))
		for i, h := range headers {
			v := ""
			if i < len(row) {
				v = row[i]
			}
			rec[normalizeHeader(h)] = v
		}
		records = append(records, rec)
	}
	return records
}

// ToRow lays rec out positionally in columns order; absent keys become "".
func ToRow(rec Record, columns []string) []string {
	row := make([]string, len(columns))
	for i, c := range columns {
		row[i] = rec[c]
	}
	return row
}

// ColumnIndex returns the position of name in headers, or -1.
func ColumnIndex(headers []string, name string) int {
	name = normalizeHeader(name)
	for i, h := range headers {
		if normalizeHeader(h) == name {
			return i
		}
	}
	return -1
}
