// Package report turns connector configuration into upstream Umami queries and
// turns Umami responses into schema-shaped rows
package report

import "strings"

// Kind is the report kind selected by the host. Its value doubles as the
// upstream path segment under /api/websites/{id}/
type Kind string

const (
	// ActiveUsers reports the current number of unique visitors
	ActiveUsers Kind = "active"
	// Events reports custom events bucketed by time unit
	Events Kind = "events"
	// PageViews reports pageview and session time series
	PageViews Kind = "pageviews"
	// Stats reports summarized website stats with change values
	Stats Kind = "stats"
	// Metrics reports visitor counts grouped by one dimension
	Metrics Kind = "metrics"
)

// kinds is the closed set in presentation order
var kinds = []Kind{ActiveUsers, Events, PageViews, Stats, Metrics}

// Kinds returns all known report kinds in presentation order
func Kinds() []Kind { return append([]Kind(nil), kinds...) }

// Valid reports whether k is one of the known kinds
func (k Kind) Valid() bool {
	switch k {
	case ActiveUsers, Events, PageViews, Stats, Metrics:
		return true
	}
	return false
}

// Label is the human facing option label used by the config form
func (k Kind) Label() string {
	switch k {
	case ActiveUsers:
		return "Active users"
	case Events:
		return "Website events"
	case PageViews:
		return "Page views"
	case Stats:
		return "Summarized stats"
	case Metrics:
		return "Metrics"
	}
	return string(k)
}

// NeedsDateRange reports whether queries for k carry startAt and endAt
func (k Kind) NeedsDateRange() bool { return k != ActiveUsers }

// ParseKind validates s as a report kind
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.TrimSpace(s))
	if err := k.check(); err != nil {
		return "", err
	}
	return k, nil
}

func (k Kind) check() error {
	if k.Valid() {
		return nil
	}
	return InvalidKind(string(k))
}
