package store

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kieseatic/Ats/internal/types"
)

func TestMemoryStore_AddAndList(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Add(ctx, []types.JobRecord{
		{ID: "a", Title: "First"},
		{ID: "b", Title: "Second"},
	}))
	require.NoError(t, s.Add(ctx, []types.JobRecord{{ID: "c", Title: "Third"}}))

	jobs, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 3)
	assert.Equal(t, "a", jobs[0].ID, "append-only: upload order is preserved")
	assert.Equal(t, "c", jobs[2].ID)

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestMemoryStore_Get(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, s.Add(ctx, []types.JobRecord{{ID: "a", Title: "First"}}))

	job, err := s.Get(ctx, "a")
	require.NoError(t, err)
	require.NotNil(t, job)
	assert.Equal(t, "First", job.Title)

	missing, err := s.Get(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMemoryStore_ListReturnsCopy(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, s.Add(ctx, []types.JobRecord{{ID: "a", Title: "First"}}))

	jobs, err := s.List(ctx)
	require.NoError(t, err)
	jobs[0].Title = "mutated"

	again, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "First", again[0].Title)
}

func TestMemoryStore_ConcurrentAdds(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = s.Add(ctx, []types.JobRecord{{ID: fmt.Sprintf("job-%d", i)}})
		}(i)
	}
	wg.Wait()

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 20, n)
}
