package search

import "github.com/ritmdance/studio/utils"

// DefaultLimit is the page size used when none is requested
const DefaultLimit = 50

// Paginate returns the page of items following the item whose id is
// startingAfter. A zero startingAfter starts at the beginning; an id that is
// not in the list yields an empty page.
func Paginate[T any](items []T, idOf func(T) int64, limit int, startingAfter int64) *utils.PaginatedResult[T] {
	if limit <= 0 {
		limit = DefaultLimit
	}

	start := 0
	if startingAfter != 0 {
		start = len(items)
		for i, item := range items {
			if idOf(item) == startingAfter {
				start = i + 1
				break
			}
		}
	}

	end := start + limit
	if end > len(items) {
		end = len(items)
	}

	page := make([]T, 0, end-start)
	page = append(page, items[start:end]...)

	result := &utils.PaginatedResult[T]{
		Data:       page,
		HasMore:    end < len(items),
		TotalCount: int64(len(items)),
	}

	if result.HasMore && len(page) > 0 {
		result.NextCursor = []any{idOf(page[len(page)-1])}
	}

	return result
}
