// Package listview implements the one pattern every dashboard screen shares:
// a filterable, searchable projection of a collection with summary
// aggregates. Screens compose predicates instead of duplicating filter code.
package listview

import "strings"

// Predicate decides whether an item stays in the projection.
type Predicate[T any] func(T) bool

// Aggregate folds the filtered collection into one summary value.
type Aggregate[T any] struct {
	Name string
	Fold func(items []T) float64
}

// Filter returns the items satisfying every predicate, preserving order.
func Filter[T any](items []T, predicates ...Predicate[T]) []T {
	if len(predicates) == 0 {
		return items
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		keep := true
		for _, p := range predicates {
			if !p(item) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, item)
		}
	}
	return out
}

// TextSearch builds a predicate matching items whose indexed fields contain
// the query, case-insensitively. An empty query matches everything.
func TextSearch[T any](query string, fields func(T) []string) Predicate[T] {
	query = strings.ToLower(strings.TrimSpace(query))
	return func(item T) bool {
		if query == "" {
			return true
		}
		for _, f := range fields(item) {
			if strings.Contains(strings.ToLower(f), query) {
				return true
			}
		}
		return false
	}
}

// Equals builds a predicate matching items whose extracted field equals want.
// An empty want matches everything, mirroring an unset dropdown filter.
func Equals[T any](want string, field func(T) string) Predicate[T] {
	return func(item T) bool {
		if want == "" {
			return true
		}
		return field(item) == want
	}
}

// Summarize computes the named aggregates over the (already filtered) items.
func Summarize[T any](items []T, aggregates ...Aggregate[T]) map[string]float64 {
	out := make(map[string]float64, len(aggregates))
	for _, agg := range aggregates {
		out[agg.Name] = agg.Fold(items)
	}
	return out
}

// Count is a ready-made aggregate counting the filtered items.
func Count[T any]() Aggregate[T] {
	return Aggregate[T]{
		Name: "count",
		Fold: func(items []T) float64 { return float64(len(items)) },
	}
}

// Sum builds an aggregate totalling a numeric field.
func Sum[T any](name string, value func(T) float64) Aggregate[T] {
	return Aggregate[T]{
		Name: name,
		Fold: func(items []T) float64 {
			var total float64
			for _, item := range items {
				total += value(item)
			}
			return total
		},
	}
}

// CountIf builds an aggregate counting items satisfying the predicate.
func CountIf[T any](name string, p Predicate[T]) Aggregate[T] {
	return Aggregate[T]{
		Name: name,
		Fold: func(items []T) float64 {
			var n float64
			for _, item := range items {
				if p(item) {
					n++
				}
			}
			return n
		},
	}
}
