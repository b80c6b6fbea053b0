package models

import "strings"

// DefaultServiceIcon is used when a service names an unknown icon
const DefaultServiceIcon = "sparkles"

var serviceIcons = map[string]struct{}{
	"music":      {},
	"users":      {},
	"heart":      {},
	"sparkles":   {},
	"graduation": {},
	"party":      {},
}

// Service represents an offering shown on the home page
type Service struct {
	ID          int64  `json:"id"`          // CMS identifier
	DocumentID  string `json:"documentId"`  // CMS document identifier (v5)
	Title       string `json:"title"`       // Service title
	Description string `json:"description"` // Short description
	Icon        string `json:"icon"`        // Icon key as stored in the CMS
	IconName    string `json:"iconName"`    // Icon key the front-end can render
	Link        string `json:"link"`        // Target page
	Timestamps
}

// ServiceIcon maps a CMS icon key onto a known presentational icon
func ServiceIcon(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	if _, ok := serviceIcons[key]; ok {
		return key
	}
	return DefaultServiceIcon
}
