package jobs

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolRunKeepsOrder(t *testing.T) {
	var calls int32
	pool := NewPool("test", func(_ context.Context, job Job) error {
		atomic.AddInt32(&calls, 1)
		if job.Payload.(int)%3 == 0 {
			return fmt.Errorf("job %s rejected", job.ID)
		}
		return nil
	}, PoolConfig{Workers: 4})

	jobs := make([]Job, 10)
	for i := range jobs {
		jobs[i] = Job{ID: fmt.Sprintf("job-%d", i), Type: "decode", Payload: i}
	}

	results := pool.Run(context.Background(), jobs)
	require.Len(t, results, len(jobs))
	assert.Equal(t, int32(len(jobs)), atomic.LoadInt32(&calls))
	for i, res := range results {
		assert.Equal(t, jobs[i].ID, res.Job.ID)
		if i%3 == 0 {
			assert.Error(t, res.Err)
		} else {
			assert.NoError(t, res.Err)
		}
	}
}

func TestPoolRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pool := NewPool("cancelled", func(ctx context.Context, _ Job) error {
		return ctx.Err()
	}, PoolConfig{Workers: 2})

	results := pool.Run(ctx, []Job{{ID: "a"}, {ID: "b"}, {ID: "c"}})
	require.Len(t, results, 3)
	for _, res := range results {
		assert.True(t, errors.Is(res.Err, context.Canceled), "job %s", res.Job.ID)
	}
}

func TestPoolRunNoJobs(t *testing.T) {
	pool := NewPool("empty", func(context.Context, Job) error { return nil }, PoolConfig{})
	assert.Empty(t, pool.Run(context.Background(), nil))
}
