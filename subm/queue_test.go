package subm

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueRunsJobsInFifoOrder(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var mu sync.Mutex
	var order []int64
	active := 0
	maxActive := 0

	queue := NewQueue(1, func(ctx context.Context, j Job) {
		mu.Lock()
		active++
		if active > maxActive {
			maxActive = active
		}
		order = append(order, j.Seq)
		mu.Unlock()

		time.Sleep(10 * time.Millisecond)

		mu.Lock()
		active--
		mu.Unlock()
	})
	go queue.Run(ctx)

	teamUuid := uuid.New()
	handles := make([]<-chan struct{}, 0, 5)
	for i := int64(1); i <= 5; i++ {
		handles = append(handles, queue.Enqueue(Job{TeamUUID: teamUuid, Seq: i}))
	}

	for _, done := range handles {
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatal("job did not complete in time")
		}
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []int64{1, 2, 3, 4, 5}, order)
	assert.Equal(t, 1, maxActive, "two jobs ran concurrently")
}

func TestQueuePanickingJobDoesNotBlockNext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	queue := NewQueue(1, func(ctx context.Context, j Job) {
		if j.Seq == 1 {
			panic("boom")
		}
	})
	go queue.Run(ctx)

	first := queue.Enqueue(Job{TeamUUID: uuid.New(), Seq: 1})
	second := queue.Enqueue(Job{TeamUUID: uuid.New(), Seq: 2})

	select {
	case <-first:
	case <-time.After(5 * time.Second):
		t.Fatal("panicking job's handle did not resolve")
	}
	select {
	case <-second:
	case <-time.After(5 * time.Second):
		t.Fatal("job after a panicking one did not run")
	}
}

func TestQueueAllowsMultipleJobsPerTeam(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var mu sync.Mutex
	count := 0
	queue := NewQueue(1, func(ctx context.Context, j Job) {
		mu.Lock()
		count++
		mu.Unlock()
	})
	go queue.Run(ctx)

	teamUuid := uuid.New()
	first := queue.Enqueue(Job{TeamUUID: teamUuid, Seq: 1})
	second := queue.Enqueue(Job{TeamUUID: teamUuid, Seq: 2})

	<-first
	<-second

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, 2, count)
}
