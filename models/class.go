package models

// Level is the difficulty of a dance class
type Level string

const (
	LevelBeginner     Level = "Beginner"
	LevelIntermediate Level = "Intermediate"
	LevelAdvanced     Level = "Advanced"
)

// Levels lists the known levels in display order
var Levels = []Level{LevelBeginner, LevelIntermediate, LevelAdvanced}

// DanceClass represents a course offered by the school
type DanceClass struct {
	ID                  int64       `json:"id"`                  // CMS identifier
	DocumentID          string      `json:"documentId"`          // CMS document identifier (v5)
	Title               string      `json:"title"`               // Class title
	Slug                string      `json:"slug"`                // Stored slug, empty when not set
	URLSlug             string      `json:"urlSlug"`             // Stored or derived slug used in links
	Description         string      `json:"description"`         // Long description
	Schedule            string      `json:"schedule"`            // Free text schedule
	Price               float64     `json:"price"`               // Monthly price
	Level               Level       `json:"level"`               // Difficulty level
	TypeOfDance         string      `json:"typeOfDance"`         // e.g. "Salsa & Bachata"
	Image               *Media      `json:"image"`               // Cover image
	Location            *Location   `json:"location"`            // Related location
	Instructor          *Instructor `json:"instructor"`          // Related instructor
	RegistrationEnabled bool        `json:"registrationEnabled"` // Whether sign-ups are open
	AvailableSpots      int         `json:"availableSpots"`      // Remaining places
	WaitlistEnabled     bool        `json:"waitlistEnabled"`     // Whether a waitlist is kept when full
	Timestamps
}

// LocationID returns the id of the related location, or 0 when there is none
func (c *DanceClass) LocationID() int64 {
	if c.Location == nil {
		return 0
	}
	return c.Location.ID
}

// InstructorID returns the id of the related instructor, or 0 when there is none
func (c *DanceClass) InstructorID() int64 {
	if c.Instructor == nil {
		return 0
	}
	return c.Instructor.ID
}

// AvailableCourse is the projection of a class offered by the registration form
type AvailableCourse struct {
	ID                  int64  `json:"id"`
	Title               string `json:"title"`
	RegistrationEnabled bool   `json:"registrationEnabled"`
	AvailableSpots      int    `json:"availableSpots"`
	WaitlistEnabled     bool   `json:"waitlistEnabled"`
	TypeOfDance         string `json:"typeOfDance"`
	Level               Level  `json:"level"`
	Schedule            string `json:"schedule"`
}

// ToAvailableCourse projects the class for the registration form
func (c *DanceClass) ToAvailableCourse() *AvailableCourse {
	return &AvailableCourse{
		ID:                  c.ID,
		Title:               c.Title,
		RegistrationEnabled: c.RegistrationEnabled,
		AvailableSpots:      c.AvailableSpots,
		WaitlistEnabled:     c.WaitlistEnabled,
		TypeOfDance:         c.TypeOfDance,
		Level:               c.Level,
		Schedule:            c.Schedule,
	}
}
