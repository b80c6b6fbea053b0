package tasks

import (
	"context"

	"github.com/ritmdance/studio/cms"
)

// Task types
type TaskType string

const (
	TypeRefreshCollection TaskType = "content:refresh"
)

// Queue name
const QueueRefresh = "refresh"

// Client defines an interface for enqueuing tasks
type Client interface {
	// EnqueueRefreshCollection adds a job to re-fetch a collection into the cache
	EnqueueRefreshCollection(ctx context.Context, collection cms.Collection) error
}
