package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/activitylog/api/activity/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestMemoryRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(MemoryRepositoryTestSuite))
}

type MemoryRepositoryTestSuite struct {
	ActivityRepositorySuite
}

func (suite *MemoryRepositoryTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.base = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	suite.repo = NewMemoryRepository()
}

func TestMemoryRepositoryReturnsCopies(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	activity := &domain.Activity{
		UserID:  "u1",
		Action:  domain.ActionLogin,
		Details: map[string]any{"k": "v"},
	}
	require.NoError(t, repo.CreateActivity(ctx, activity))
	activity.Details["k"] = "changed"

	got, err := repo.GetActivity(ctx, activity.ID)
	require.NoError(t, err)
	assert.Equal(t, "v", got.Details["k"])
	assert.False(t, got.Timestamp.IsZero(), "timestamp defaults to now")
}

func TestMemoryRepositoryConcurrentCreates(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, repo.CreateActivity(ctx, &domain.Activity{UserID: "u", Action: domain.ActionLogin}))
		}()
	}
	wg.Wait()

	opt := &domain.QueryActivityOptions{Filter: domain.NoFilter()}
	require.NoError(t, repo.QueryActivities(ctx, opt))
	assert.Equal(t, int64(50), opt.Total)
	assert.Len(t, opt.Result, 50)

	seen := map[string]bool{}
	for _, a := range opt.Result {
		assert.False(t, seen[a.ID.Hex()], "ids are unique")
		seen[a.ID.Hex()] = true
	}
}

func TestMemoryRepositoryHonoursCanceledContext(t *testing.T) {
	repo := NewMemoryRepository()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := repo.CreateActivity(ctx, &domain.Activity{UserID: "u", Action: domain.ActionLogin})
	assert.ErrorIs(t, err, context.Canceled)
}
