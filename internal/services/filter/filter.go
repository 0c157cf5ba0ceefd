package filter

import (
	"strings"
	"time"

	"TrendMatrix/internal/domain/models"
)

// Any is the wildcard value for enum-like predicate fields.
const Any = "any"

// Spec is a predicate specification. All set fields compose with logical AND;
// empty or "any" fields impose no constraint on their axis.
type Spec struct {
	// TextQuery matches as a case-insensitive substring of the item's
	// name/asset label.
	TextQuery string
	// Category requires an exact match unless empty or "any".
	Category string
	// Status requires an exact match unless empty or "any".
	Status string
	// From/To bound the item timestamp inclusively; zero values are open.
	From time.Time
	To   time.Time
}

// Item is the view of a record the filter engine needs.
type Item interface {
	FilterName() string
	FilterCategory() string
	FilterStatus() string
	FilterTime() time.Time
}

// Apply returns the subsequence of items matching spec, original relative
// order preserved. It is a pure function: the input slice is never mutated
// and identical inputs yield identical outputs.
func Apply[T Item](items []T, spec Spec) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if Matches(it, spec) {
			out = append(out, it)
		}
	}
	return out
}

// Matches reports whether a single item passes every set predicate.
func Matches(it Item, spec Spec) bool {
	if q := strings.TrimSpace(spec.TextQuery); q != "" {
		if !strings.Contains(strings.ToLower(it.FilterName()), strings.ToLower(q)) {
			return false
		}
	}
	if !wildcard(spec.Category) && it.FilterCategory() != spec.Category {
		return false
	}
	if !wildcard(spec.Status) && it.FilterStatus() != spec.Status {
		return false
	}
	if ts := it.FilterTime(); !ts.IsZero() {
		if !spec.From.IsZero() && ts.Before(spec.From) {
			return false
		}
		if !spec.To.IsZero() && ts.After(spec.To) {
			return false
		}
	}
	return true
}

func wildcard(s string) bool {
	return s == "" || strings.EqualFold(s, Any)
}

// SignalItem adapts a Signal to the filter engine.
type SignalItem struct{ models.Signal }

func (s SignalItem) FilterName() string     { return s.Asset }
func (s SignalItem) FilterCategory() string { return string(s.Type) }
func (s SignalItem) FilterStatus() string   { return s.Status }
func (s SignalItem) FilterTime() time.Time  { return s.Timestamp }

// ProjectItem adapts a Project to the filter engine.
type ProjectItem struct{ models.Project }

func (p ProjectItem) FilterName() string     { return p.Name }
func (p ProjectItem) FilterCategory() string { return p.Category }
func (p ProjectItem) FilterStatus() string   { return "" }
func (p ProjectItem) FilterTime() time.Time  { return time.Time{} }

// WrapSignals converts signals into filterable items.
func WrapSignals(in []models.Signal) []SignalItem {
	out := make([]SignalItem, 0, len(in))
	for _, s := range in {
		out = append(out, SignalItem{s})
	}
	return out
}

// WrapProjects converts projects into filterable items.
func WrapProjects(in []models.Project) []ProjectItem {
	out := make([]ProjectItem, 0, len(in))
	for _, p := range in {
		out = append(out, ProjectItem{p})
	}
	return out
}

// UnwrapSignals extracts the signals back out of filtered items.
func UnwrapSignals(in []SignalItem) []models.Signal {
	out := make([]models.Signal, 0, len(in))
	for _, it := range in {
		out = append(out, it.Signal)
	}
	return out
}

// UnwrapProjects extracts the projects back out of filtered items.
func UnwrapProjects(in []ProjectItem) []models.Project {
	out := make([]models.Project, 0, len(in))
	for _, it := range in {
		out = append(out, it.Project)
	}
	return out
}
