package models

// BlogPost represents an article
type BlogPost struct {
	ID         int64  `json:"id"`         // CMS identifier
	DocumentID string `json:"documentId"` // CMS document identifier (v5)
	Title      string `json:"title"`      // Headline
	Content    string `json:"content"`    // Body
	Excerpt    string `json:"excerpt"`    // Teaser
	Slug       string `json:"slug"`       // Stored slug
	URLSlug    string `json:"urlSlug"`    // Stored or derived slug used in links
	Image      *Media `json:"image"`      // Cover image
	Timestamps
}
