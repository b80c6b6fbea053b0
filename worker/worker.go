package worker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/ritmdance/studio/cms"
	"github.com/ritmdance/studio/container"
	"github.com/ritmdance/studio/tasks"
	"github.com/rs/zerolog/log"
)

// Refresher re-fetches a collection into the cache
type Refresher interface {
	Refresh(ctx context.Context, collection cms.Collection) error
}

// Worker represents the background job processor
type Worker struct {
	server    *asynq.Server
	client    *asynq.Client
	scheduler *asynq.Scheduler

	schedule  string
	refresher Refresher
}

// Ensure Worker implements tasks.Client
var _ tasks.Client = (*Worker)(nil)

// NewWorker creates a worker that shares the container's redis connection
func NewWorker(container *container.Container, refresher Refresher) (*Worker, error) {
	if container.Redis == nil {
		return nil, errors.New("worker requires redis")
	}

	cfg := container.Config

	// Configure server with queues and priorities
	server := asynq.NewServerFromRedisClient(
		container.Redis.Client,
		asynq.Config{
			Queues: map[string]int{
				tasks.QueueRefresh: 10,
			},
			Concurrency: 4,
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				log.Error().Err(err).Str("task", task.Type()).Str("payload", string(task.Payload())).Msg("Background task failed")
			}),
		},
	)

	// Client for enqueuing tasks
	client := asynq.NewClientFromRedisClient(container.Redis.Client)

	// Scheduler for the periodic refresh
	scheduler := asynq.NewScheduler(
		asynq.RedisClientOpt{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDatabase,
		},
		&asynq.SchedulerOpts{},
	)

	return &Worker{
		server:    server,
		client:    client,
		scheduler: scheduler,
		schedule:  cfg.RefreshSchedule,
		refresher: refresher,
	}, nil
}

// Start registers the handlers and the refresh schedule and runs them
func (w *Worker) Start() error {
	mux := asynq.NewServeMux()
	mux.HandleFunc(string(tasks.TypeRefreshCollection), w.handleRefreshCollection)

	if w.schedule != "" {
		for _, collection := range cms.Collections {
			task, opts := w.refreshTask(collection)
			if _, err := w.scheduler.Register(w.schedule, task, opts...); err != nil {
				return fmt.Errorf("failed to schedule refresh of %s: %w", collection, err)
			}
		}

		if err := w.scheduler.Start(); err != nil {
			return fmt.Errorf("failed to start scheduler: %w", err)
		}

		log.Info().Str("schedule", w.schedule).Msg("Scheduled collection refresh")
	}

	return w.server.Start(mux)
}

func (w *Worker) Stop() error {
	if w.schedule != "" {
		w.scheduler.Shutdown()
	}
	w.server.Shutdown()
	return w.client.Close()
}

func (w *Worker) refreshTask(collection cms.Collection) (*asynq.Task, []asynq.Option) {
	task := asynq.NewTask(string(tasks.TypeRefreshCollection), []byte(collection))

	return task, []asynq.Option{
		asynq.MaxRetry(3),
		asynq.Timeout(time.Minute),
		asynq.Queue(tasks.QueueRefresh),
		asynq.TaskID(fmt.Sprintf("%s:%s", tasks.TypeRefreshCollection, collection)),
	}
}

// EnqueueRefreshCollection adds a job to re-fetch a collection. A refresh that
// is already queued is not queued twice.
func (w *Worker) EnqueueRefreshCollection(ctx context.Context, collection cms.Collection) error {
	task, opts := w.refreshTask(collection)

	_, err := w.client.EnqueueContext(ctx, task, opts...)
	if err != nil {
		if errors.Is(err, asynq.ErrTaskIDConflict) || errors.Is(err, asynq.ErrDuplicateTask) {
			log.Debug().Str("collection", string(collection)).Msg("Refresh task already queued, skipping duplicate")
			return nil
		}
		return fmt.Errorf("error enqueueing refresh task: %w", err)
	}

	log.Debug().Str("collection", string(collection)).Msg("Successfully enqueued refresh task")

	return nil
}

func (w *Worker) handleRefreshCollection(ctx context.Context, task *asynq.Task) error {
	collection, err := cms.ParseCollection(string(task.Payload()))
	if err != nil {
		return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
	}

	log.Info().Str("collection", string(collection)).Msg("Executing refresh job for collection")

	if err := w.refresher.Refresh(ctx, collection); err != nil {
		return fmt.Errorf("error refreshing %s: %w", collection, err)
	}

	return nil
}
