package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/activitylog/api/activity/domain"
	"github.com/activitylog/api/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRetentionSweeperSweepOnce(t *testing.T) {
	mockSvc := domain.NewMockService(t)
	mockSvc.EXPECT().
		DeleteActivitiesOlderThan(mock.Anything, 30).
		Return(int64(3), nil).
		Once()

	sweeper := NewRetentionSweeper(mockSvc, config.RetentionConfig{Days: 30})
	assert.Equal(t, defaultRetentionInterval, sweeper.interval)

	deleted, err := sweeper.SweepOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)
}

func TestRetentionSweeperLoop(t *testing.T) {
	mockSvc := domain.NewMockService(t)
	swept := make(chan struct{}, 8)
	mockSvc.EXPECT().
		DeleteActivitiesOlderThan(mock.Anything, 7).
		Run(func(context.Context, int) {
			select {
			case swept <- struct{}{}:
			default:
			}
		}).
		Return(int64(0), errors.New("store unavailable")).
		Maybe()

	sweeper := NewRetentionSweeper(mockSvc, config.RetentionConfig{Days: 7, Interval: 10 * time.Millisecond})
	sweeper.initialWait = time.Millisecond
	sweeper.Start()
	sweeper.Start()

	for i := 0; i < 2; i++ {
		select {
		case <-swept:
		case <-time.After(2 * time.Second):
			t.Fatal("sweeper did not run")
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, sweeper.Stop(ctx))
	require.NoError(t, sweeper.Stop(ctx), "stop is idempotent")
}

func TestRetentionSweeperStopBeforeStart(t *testing.T) {
	sweeper := NewRetentionSweeper(domain.NewMockService(t), config.RetentionConfig{Days: 1})
	require.NoError(t, sweeper.Stop(context.Background()))
}
