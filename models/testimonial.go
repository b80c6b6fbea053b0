package models

import "math"

// StarRating is a rating split into full, half and empty stars out of five
type StarRating struct {
	Full  int `json:"full"`
	Half  int `json:"half"`
	Empty int `json:"empty"`
}

// Testimonial represents a student review
type Testimonial struct {
	ID         int64      `json:"id"`         // CMS identifier
	DocumentID string     `json:"documentId"` // CMS document identifier (v5)
	Name       string     `json:"name"`       // Reviewer name
	Comment    string     `json:"comment"`    // Review text
	Rating     float64    `json:"rating"`     // 0 to 5, halves allowed
	Stars      StarRating `json:"stars"`      // Rating prepared for half-star display
	Role       string     `json:"role"`       // e.g. "Student"
	Image      *Media     `json:"image"`      // Reviewer photo
	Timestamps
}

// StarRating clamps the rating to 0..5 and rounds it to the nearest half
func (t *Testimonial) StarRating() StarRating {
	rating := math.Max(0, math.Min(5, t.Rating))
	halves := int(math.Round(rating * 2))
	full := halves / 2
	half := halves % 2
	return StarRating{Full: full, Half: half, Empty: 5 - full - half}
}
