package models

// Timestamps holds the CMS bookkeeping dates shared by every content type.
// Values are passed through as the ISO strings the CMS returns.
type Timestamps struct {
	PublishedAt string `json:"publishedAt"` // Publication timestamp
	CreatedAt   string `json:"createdAt"`   // Creation timestamp
	UpdatedAt   string `json:"updatedAt"`   // Last update timestamp
}

// Media represents an uploaded file referenced by a content entry
type Media struct {
	ID              int64             `json:"id"`              // CMS media identifier
	URL             string            `json:"url"`             // Absolute URL of the original file
	AlternativeText string            `json:"alternativeText"` // Alt text, empty when not set
	Formats         map[string]string `json:"formats"`         // Resized variants keyed by format name
}
