// Package workbook implements the domain repositories on top of a domain.TableStore, treating
// each sheet as a table whose first row names the columns.
package workbook

import (
	"sort"
	"strconv"
	"strings"

	"weddinginvite/internal/domain"
)

// Column names shared by several sheets.
const (
	colFamilyID      = "family_id"
	colFamilyName    = "family_name"
	colMemberName    = "member_name"
	colMemberNames   = "member_names"
	colEventsInvited = "events_invited"
	colContactNumber = "contact_number"
	colEventID       = "event_id"
	colEventName     = "event_name"
	colDisplayOrder  = "display_order"
	colDay           = "day"
)

// parseDisplayOrder returns the integer display order, or domain.DefaultDisplayOrder when the
// cell is empty or not a number.
func parseDisplayOrder(v string) int {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return domain.DefaultDisplayOrder
	}
	return n
}

// splitList splits a comma-separated cell into trimmed, non-empty items.
func splitList(v string) []string {
	items := []string{}
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			items = append(items, p)
		}
	}
	return items
}

// sortByDisplayOrder stable-sorts items by the order key so ties keep sheet order.
func sortByDisplayOrder[T any](items []T, order func(T) int) {
	sort.SliceStable(items, func(i, j int) bool {
		return order(items[i]) < order(items[j])
	})
}
