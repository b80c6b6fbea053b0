package search

import (
	"sort"
	"time"

	"github.com/ritmdance/studio/models"
)

// EventFilter holds the active event listing filters
type EventFilter struct {
	Query    string // Free text over title and description
	Category string // Category substring, or All
}

// Matches reports whether event passes every active filter
func (f EventFilter) Matches(event *models.Event) bool {
	if !matchesQuery(f.Query, event.Title, event.Description) {
		return false
	}
	if !isAll(f.Category) && !containsFold(event.Category, f.Category) {
		return false
	}
	return true
}

// FilterEvents returns the events matching f, in their original order
func FilterEvents(events []*models.Event, f EventFilter) []*models.Event {
	out := make([]*models.Event, 0, len(events))
	for _, event := range events {
		if f.Matches(event) {
			out = append(out, event)
		}
	}
	return out
}

// DistinctCategories lists the event categories present, in first-seen order
func DistinctCategories(events []*models.Event) []string {
	categories := make([]string, 0, len(events))
	for _, event := range events {
		categories = append(categories, event.Category)
	}
	return distinct(categories)
}

// SeedCategory resolves a category query parameter to a known category,
// falling back to All
func SeedCategory(events []*models.Event, query string) string {
	return seed(DistinctCategories(events), query)
}

var eventDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseEventDate parses the ISO date of an event
func ParseEventDate(value string) (time.Time, bool) {
	for _, layout := range eventDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// SortEventsByDate returns a copy ordered by date ascending. Events whose
// date cannot be parsed keep their relative order after the dated ones.
func SortEventsByDate(events []*models.Event) []*models.Event {
	sorted := make([]*models.Event, len(events))
	copy(sorted, events)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, aOK := ParseEventDate(sorted[i].Date)
		b, bOK := ParseEventDate(sorted[j].Date)
		switch {
		case aOK && bOK:
			return a.Before(b)
		case aOK:
			return true
		default:
			return false
		}
	})

	return sorted
}

// SplitUpcoming separates events after now from the rest. Undated events
// count as past.
func SplitUpcoming(events []*models.Event, now time.Time) (upcoming, past []*models.Event) {
	upcoming = []*models.Event{}
	past = []*models.Event{}

	for _, event := range events {
		if date, ok := ParseEventDate(event.Date); ok && date.After(now) {
			upcoming = append(upcoming, event)
		} else {
			past = append(past, event)
		}
	}

	return upcoming, past
}
