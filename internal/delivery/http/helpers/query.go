package helpers

import (
	"net/http"
	"strconv"
	"strings"
)

// QueryString returns the trimmed query parameter name.
func QueryString(r *http.Request, name string) string {
	return strings.TrimSpace(r.URL.Query().Get(name))
}

// QueryInt reads an integer query parameter. Missing, invalid or below-min values fall back
// to def; values above max are clamped to max.
func QueryInt(r *http.Request, name string, def, min, max int) int {
	s := QueryString(r, name)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < min {
		return def
	}
	if v > max {
		return max
	}
	return v
}
