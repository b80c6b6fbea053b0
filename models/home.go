package models

// HomeContent is the aggregated payload for the home page
type HomeContent struct {
	Classes      []*DanceClass  `json:"classes"`
	Services     []*Service     `json:"services"`
	Events       []*Event       `json:"events"`
	Instructors  []*Instructor  `json:"instructors"`
	Testimonials []*Testimonial `json:"testimonials"`
}
