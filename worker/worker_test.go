package worker

import (
	"context"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/ritmdance/studio/cms"
	"github.com/ritmdance/studio/config"
	"github.com/ritmdance/studio/container"
	"github.com/ritmdance/studio/tasks"
	"github.com/stretchr/testify/assert"
)

type fakeRefresher struct {
	refreshed []cms.Collection
	err       error
}

func (f *fakeRefresher) Refresh(ctx context.Context, collection cms.Collection) error {
	f.refreshed = append(f.refreshed, collection)
	return f.err
}

func TestHandleRefreshCollection(t *testing.T) {
	refresher := &fakeRefresher{}
	w := &Worker{refresher: refresher}

	task := asynq.NewTask(string(tasks.TypeRefreshCollection), []byte("events"))

	assert.NoError(t, w.handleRefreshCollection(context.Background(), task))
	assert.Equal(t, []cms.Collection{cms.Events}, refresher.refreshed)
}

func TestHandleRefreshCollectionUnknownSkipsRetry(t *testing.T) {
	refresher := &fakeRefresher{}
	w := &Worker{refresher: refresher}

	task := asynq.NewTask(string(tasks.TypeRefreshCollection), []byte("pages"))

	err := w.handleRefreshCollection(context.Background(), task)
	assert.ErrorIs(t, err, asynq.SkipRetry)
	assert.Empty(t, refresher.refreshed)
}

func TestHandleRefreshCollectionPropagatesFailure(t *testing.T) {
	refresher := &fakeRefresher{err: errors.New("cms down")}
	w := &Worker{refresher: refresher}

	task := asynq.NewTask(string(tasks.TypeRefreshCollection), []byte("classes"))

	assert.Error(t, w.handleRefreshCollection(context.Background(), task))
}

func TestRefreshTaskOptions(t *testing.T) {
	w := &Worker{}

	task, opts := w.refreshTask(cms.BlogPosts)
	assert.Equal(t, "content:refresh", task.Type())
	assert.Equal(t, []byte("blog-posts"), task.Payload())
	assert.Len(t, opts, 4)
}

func TestNewWorkerRequiresRedis(t *testing.T) {
	_, err := NewWorker(&container.Container{Config: &config.Config{}}, &fakeRefresher{})
	assert.Error(t, err)
}
