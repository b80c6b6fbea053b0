package models

// Organizer describes who runs an event
type Organizer struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Event represents a party, workshop or performance
type Event struct {
	ID              int64      `json:"id"`              // CMS identifier
	DocumentID      string     `json:"documentId"`      // CMS document identifier (v5)
	Title           string     `json:"title"`           // Event title
	Slug            string     `json:"slug"`            // Stored slug, empty when not set
	URLSlug         string     `json:"urlSlug"`         // Stored or derived slug used in links
	Description     string     `json:"description"`     // Long description
	Date            string     `json:"date"`            // ISO datetime
	Location        string     `json:"location"`        // Free text venue
	Category        string     `json:"category"`        // Optional category
	Image           *Media     `json:"image"`           // Cover image
	MaxParticipants *int       `json:"maxParticipants"` // Capacity, nil when unlimited
	Organizer       *Organizer `json:"organizer"`       // Optional organizer
	Price           *float64   `json:"price"`           // Entry price, nil when not set
	Timestamps
}
