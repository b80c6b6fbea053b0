package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTestimonialStars(t *testing.T) {
	tests := []struct {
		rating            float64
		full, half, empty int
	}{
		{rating: 5, full: 5},
		{rating: 4.5, full: 4, half: 1},
		{rating: 4.3, full: 4, half: 1},
		{rating: 4.2, full: 4, empty: 1},
		{rating: 0, empty: 5},
		{rating: -2, empty: 5},
		{rating: 9, full: 5},
	}

	for _, tt := range tests {
		stars := (&Testimonial{Rating: tt.rating}).StarRating()
		assert.Equal(t, StarRating{Full: tt.full, Half: tt.half, Empty: tt.empty}, stars, "rating %v", tt.rating)
	}
}

func TestServiceIcon(t *testing.T) {
	assert.Equal(t, "heart", ServiceIcon("heart"))
	assert.Equal(t, "graduation", ServiceIcon(" Graduation "))
	assert.Equal(t, DefaultServiceIcon, ServiceIcon("rocket"))
	assert.Equal(t, DefaultServiceIcon, ServiceIcon(""))
}

func TestCanonicalSlugs(t *testing.T) {
	assert.Equal(t, "salsa-cubana", (&DanceClass{Title: "Salsa Cubana"}).CanonicalSlug())
	assert.Equal(t, "custom", (&DanceClass{Title: "Salsa Cubana", Slug: "custom"}).CanonicalSlug())
	assert.Equal(t, "ana-pop", (&Instructor{Name: "Ana Pop"}).CanonicalSlug())
	assert.Equal(t, "summer-party", (&Event{Title: "Summer Party!"}).CanonicalSlug())
	assert.Equal(t, "radauti", (&Location{City: "Rădăuți"}).CanonicalSlug())
	assert.Equal(t, "suceava", (&Location{City: "Rădăuți", Slug: "suceava"}).CanonicalSlug())
	assert.Equal(t, "first-steps", (&BlogPost{Title: "First Steps"}).CanonicalSlug())
}

func TestAvailableCourseProjection(t *testing.T) {
	class := &DanceClass{
		ID:                  4,
		Title:               "Bachata",
		Level:               LevelAdvanced,
		TypeOfDance:         "Salsa & Bachata",
		Schedule:            "Wed 20:00",
		RegistrationEnabled: true,
		AvailableSpots:      2,
	}

	course := class.ToAvailableCourse()

	assert.Equal(t, &AvailableCourse{
		ID:                  4,
		Title:               "Bachata",
		RegistrationEnabled: true,
		AvailableSpots:      2,
		TypeOfDance:         "Salsa & Bachata",
		Level:               LevelAdvanced,
		Schedule:            "Wed 20:00",
	}, course)
}

func TestClassRelationIDs(t *testing.T) {
	class := &DanceClass{}
	assert.Equal(t, int64(0), class.LocationID())
	assert.Equal(t, int64(0), class.InstructorID())

	class.Location = &Location{ID: 3}
	class.Instructor = &Instructor{ID: 7}
	assert.Equal(t, int64(3), class.LocationID())
	assert.Equal(t, int64(7), class.InstructorID())
}
