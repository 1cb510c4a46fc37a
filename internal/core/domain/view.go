package domain

import (
	"sort"
	"strings"
)

// SortMode selects the comparator for a View
type SortMode int

const (
	SortAdded SortMode = iota // insertion order, stable
	SortTitle                 // title, case-insensitive ascending
	SortYear                  // year as free text, empty sorts as "0"
)

// ParseSortMode maps a flag value to a sort mode. Unknown values fall
// back to insertion order.
func ParseSortMode(s string) SortMode {
	switch strings.ToLower(s) {
	case "title":
		return SortTitle
	case "year":
		return SortYear
	default:
		return SortAdded
	}
}

// View is a read-only filtered/sorted projection of a Store. It is
// recomputed on demand and never mutates the underlying store.
type View struct {
	Query string
	Sort  SortMode
}

// Matches reports whether an asset passes the view's query: a
// case-insensitive substring match against the title or the tag set.
// An empty query matches everything.
func (v View) Matches(a *Asset) bool {
	query := strings.ToLower(strings.TrimSpace(v.Query))
	if query == "" {
		return true
	}
	if strings.Contains(strings.ToLower(a.Title), query) {
		return true
	}
	return strings.Contains(strings.ToLower(a.TagsString()), query)
}

// Compute derives the presentation order from the store: filter first,
// then sort. The store itself is left untouched.
func (v View) Compute(s *Store) []*Asset {
	var out []*Asset
	for _, a := range s.Assets() {
		if v.Matches(a) {
			out = append(out, a)
		}
	}

	switch v.Sort {
	case SortTitle:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Title) < strings.ToLower(out[j].Title)
		})
	case SortYear:
		sort.SliceStable(out, func(i, j int) bool {
			return yearKey(out[i]) < yearKey(out[j])
		})
	}
	// SortAdded keeps store order

	return out
}

// yearKey treats an empty year as "0" so undated works sort first.
// Comparison is deliberately lexicographic; year is free text.
func yearKey(a *Asset) string {
	if a.Year == "" {
		return "0"
	}
	return a.Year
}
