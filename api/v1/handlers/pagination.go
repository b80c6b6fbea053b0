package handlers

import (
	"fmt"

	"github.com/ritmdance/studio/utils"
)

func decodeStartingAfter(startingAfter *string, key string) (int64, error) {
	if startingAfter == nil || *startingAfter == "" {
		return 0, nil
	}

	cursor, err := utils.DecryptCursor(*startingAfter, key)
	if err != nil {
		return 0, fmt.Errorf("invalid starting_after cursor")
	}

	id, err := utils.CursorInt64(cursor)
	if err != nil {
		return 0, fmt.Errorf("invalid starting_after cursor")
	}

	return id, nil
}

func encodeNextCursor(next []any, key string) (string, error) {
	if len(next) == 0 {
		return "", nil
	}

	cursor, err := utils.EncryptCursor(next, key)
	if err != nil {
		return "", fmt.Errorf("failed to encrypt cursor: %w", err)
	}

	return cursor, nil
}

func limitOrDefault(limit *int) int {
	if limit == nil {
		return 0
	}
	return *limit
}

func valueOr(value *string, fallback string) string {
	if value == nil {
		return fallback
	}
	return *value
}
