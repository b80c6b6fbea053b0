package models

// Location represents a studio where classes take place
type Location struct {
	ID           int64    `json:"id"`           // CMS identifier
	DocumentID   string   `json:"documentId"`   // CMS document identifier (v5)
	Name         string   `json:"name"`         // Studio name
	Slug         string   `json:"slug"`         // Stored slug, empty when not set
	URLSlug      string   `json:"urlSlug"`      // Stored or derived slug used in links
	Address      string   `json:"address"`      // Street address
	City         string   `json:"city"`         // City, may carry diacritics
	Image        *Media   `json:"image"`        // Photo
	Phone        string   `json:"phone"`        // Contact phone
	Email        string   `json:"email"`        // Contact email
	OpeningHours string   `json:"openingHours"` // Free text opening hours
	Facilities   []string `json:"facilities"`   // Amenities list
	Timestamps
}

// LocationProfile is a location together with the classes held there
type LocationProfile struct {
	Location *Location     `json:"location"`
	Classes  []*DanceClass `json:"classes"`
}
