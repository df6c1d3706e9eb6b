// Package listquery filters, sorts and paginates an in-memory collection.
// The dashboard tables work off the cached copy of each collection, so the
// whole query runs over the slice at hand instead of going back upstream.
package listquery

import (
	"sort"
	"strings"

	"github.com/TheDemonTuan/client-score-management/pkg/envelope"
)

type Options struct {
	Search string `form:"search"`
	SortBy string `form:"sort_by"`
	Order  string `form:"order" binding:"omitempty,oneof=asc desc"`
	Page   int    `form:"page" binding:"omitempty,min=1"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=100"`
}

// Schema declares how one entity type is searched and sorted. Match receives
// an already-lowercased term. Sort maps a sort_by value to an ascending
// comparison.
type Schema[E any] struct {
	Match func(rec E, term string) bool
	Sort  map[string]func(a, b E) bool
}

// Apply runs search, sort and pagination in that order over a copy of items.
// The input slice is never mutated. Meta is nil unless a page was requested.
func Apply[E any](items []E, schema Schema[E], opts Options) ([]E, *envelope.Meta) {
	out := make([]E, len(items))
	copy(out, items)

	if opts.Search != "" && schema.Match != nil {
		term := strings.ToLower(opts.Search)
		filtered := out[:0]
		for _, rec := range out {
			if schema.Match(rec, term) {
				filtered = append(filtered, rec)
			}
		}
		out = filtered
	}

	if opts.SortBy != "" {
		if less, ok := schema.Sort[opts.SortBy]; ok {
			sort.SliceStable(out, func(i, j int) bool {
				if opts.Order == "desc" {
					return less(out[j], out[i])
				}
				return less(out[i], out[j])
			})
		}
	}

	if opts.Limit <= 0 {
		return out, nil
	}

	page := opts.Page
	if page < 1 {
		page = 1
	}
	total := len(out)
	totalPages := (total + opts.Limit - 1) / opts.Limit
	meta := &envelope.Meta{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalItems:  total,
		Limit:       opts.Limit,
	}

	start := (page - 1) * opts.Limit
	if start >= total {
		return []E{}, meta
	}
	end := start + opts.Limit
	if end > total {
		end = total
	}
	return out[start:end], meta
}

// ContainsFold reports whether any of the given fields contains term.
// Fields are lowered here so Match implementations stay one-liners.
func ContainsFold(term string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}
