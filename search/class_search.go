package search

import "github.com/ritmdance/studio/models"

// ClassFilter holds the active course listing filters
type ClassFilter struct {
	Query string // Free text over title and description
	Level string // Exact level, or All
	Type  string // Type of dance substring, or All
}

// Matches reports whether class passes every active filter
func (f ClassFilter) Matches(class *models.DanceClass) bool {
	if !matchesQuery(f.Query, class.Title, class.Description) {
		return false
	}
	if !isAll(f.Level) && string(class.Level) != f.Level {
		return false
	}
	if !isAll(f.Type) && !containsFold(class.TypeOfDance, f.Type) {
		return false
	}
	return true
}

// FilterClasses returns the classes matching f, in their original order
func FilterClasses(classes []*models.DanceClass, f ClassFilter) []*models.DanceClass {
	out := make([]*models.DanceClass, 0, len(classes))
	for _, class := range classes {
		if f.Matches(class) {
			out = append(out, class)
		}
	}
	return out
}

// DistinctTypes lists the types of dance present, in first-seen order
func DistinctTypes(classes []*models.DanceClass) []string {
	types := make([]string, 0, len(classes))
	for _, class := range classes {
		types = append(types, class.TypeOfDance)
	}
	return distinct(types)
}

// DistinctLevels lists the levels present, in first-seen order
func DistinctLevels(classes []*models.DanceClass) []string {
	levels := make([]string, 0, len(classes))
	for _, class := range classes {
		levels = append(levels, string(class.Level))
	}
	return distinct(levels)
}

// SeedType resolves a category query parameter to a known type of dance.
// When no loaded type contains the query the filter falls back to All.
func SeedType(classes []*models.DanceClass, query string) string {
	return seed(DistinctTypes(classes), query)
}

// ClassesAtLocation keeps the classes related to the location id
func ClassesAtLocation(classes []*models.DanceClass, locationID int64) []*models.DanceClass {
	out := []*models.DanceClass{}
	for _, class := range classes {
		if locationID != 0 && class.LocationID() == locationID {
			out = append(out, class)
		}
	}
	return out
}

// ClassesByInstructor keeps the classes related to the instructor id
func ClassesByInstructor(classes []*models.DanceClass, instructorID int64) []*models.DanceClass {
	out := []*models.DanceClass{}
	for _, class := range classes {
		if instructorID != 0 && class.InstructorID() == instructorID {
			out = append(out, class)
		}
	}
	return out
}
