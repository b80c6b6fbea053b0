package dtos

import "github.com/ritmdance/studio/models"

type ClassListRequest struct {
	Query         *string `query:"q"`
	Level         *string `query:"level" validate:"omitempty,oneof=all Beginner Intermediate Advanced"`
	Type          *string `query:"type"`
	Category      *string `query:"category"`
	Limit         *int    `query:"limit" validate:"omitempty,min=1,max=100"`
	StartingAfter *string `query:"starting_after"`
}

type ClassFacets struct {
	Types  []string `json:"types"`
	Levels []string `json:"levels"`
}

type ClassListResponse struct {
	Data       []*models.DanceClass `json:"data"`
	HasMore    bool                 `json:"has_more"`
	TotalCount int64                `json:"total_count"`
	NextCursor string               `json:"next_cursor,omitempty"`
	Type       string               `json:"type"`
	Level      string               `json:"level"`
	Facets     ClassFacets          `json:"facets"`
}

type EventListRequest struct {
	Query         *string `query:"q"`
	Category      *string `query:"category"`
	Limit         *int    `query:"limit" validate:"omitempty,min=1,max=100"`
	StartingAfter *string `query:"starting_after"`
}

type EventListResponse struct {
	Upcoming   []*models.Event `json:"upcoming"`
	Past       []*models.Event `json:"past"`
	HasMore    bool            `json:"has_more"`
	TotalCount int64           `json:"total_count"`
	NextCursor string          `json:"next_cursor,omitempty"`
	Category   string          `json:"category"`
	Categories []string        `json:"categories"`
}

type RevalidateRequest struct {
	Collections []string `json:"collections" validate:"omitempty,dive,required"`
}

type RevalidateResponse struct {
	Collections []string `json:"collections"`
}
