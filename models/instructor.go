package models

// Instructor represents a dance instructor at the school
type Instructor struct {
	ID          int64             `json:"id"`          // CMS identifier
	DocumentID  string            `json:"documentId"`  // CMS document identifier (v5)
	Name        string            `json:"name"`        // Full name
	Slug        string            `json:"slug"`        // Stored slug, empty when not set
	URLSlug     string            `json:"urlSlug"`     // Stored or derived slug used in links
	Bio         string            `json:"bio"`         // Biography
	Specialties []string          `json:"specialties"` // Dance styles, in CMS order
	Image       *Media            `json:"image"`       // Portrait
	SocialMedia map[string]string `json:"socialMedia"` // Network name to profile URL
	Timestamps
}

// InstructorProfile is an instructor together with the classes they teach
type InstructorProfile struct {
	Instructor *Instructor   `json:"instructor"`
	Classes    []*DanceClass `json:"classes"`
}
