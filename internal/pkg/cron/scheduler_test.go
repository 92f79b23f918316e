package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_RunsImmediatelyAndStops(t *testing.T) {
	s := NewScheduler()

	var runs atomic.Int32
	ran := make(chan struct{}, 1)
	s.AddJob("count", time.Hour, func(ctx context.Context) error {
		runs.Add(1)
		select {
		case ran <- struct{}{}:
		default:
		}
		return nil
	})

	s.Start(context.Background())
	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not run on start")
	}
	s.Stop()

	assert.Equal(t, int32(1), runs.Load())
}

func TestScheduler_StopWithoutStart(t *testing.T) {
	s := NewScheduler()
	s.Stop()
}

func TestScheduler_RunOnceJoinsErrors(t *testing.T) {
	s := NewScheduler()
	boom := errors.New("boom")

	var order []string
	s.AddJob("first", time.Minute, func(ctx context.Context) error {
		order = append(order, "first")
		return boom
	})
	s.AddJob("second", time.Minute, func(ctx context.Context) error {
		order = append(order, "second")
		return nil
	})

	err := s.RunOnce(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "first")
	assert.Equal(t, []string{"first", "second"}, order)
}
