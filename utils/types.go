package utils

type PaginatedResult[T any] struct {
	Data       []T   `json:"data"`
	HasMore    bool  `json:"has_more"`
	TotalCount int64 `json:"total_count"`
	NextCursor []any `json:"next_cursor,omitempty"`
}
