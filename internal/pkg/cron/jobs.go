package cron

import (
	"context"
	"fmt"
	"time"

	"github.com/taskmate/taskmate-backend-go/internal/domain/leave"
)

const (
	PoolStatsInterval     = 30 * time.Second
	PendingLeavesInterval = time.Minute
)

type PoolStatter interface {
	PoolStats() (acquired, idle, total int32)
}

type GaugeSetter interface {
	SetDBPoolStats(acquired, idle, total int32)
	SetPendingLeaves(n int)
}

// RegisterGaugeJobs adds the jobs that keep the pool and pending-leave gauges
// current.
func RegisterGaugeJobs(s *Scheduler, pool PoolStatter, requests leave.LeaveRequestRepository, gauges GaugeSetter) {
	s.AddJob("db-pool-stats", PoolStatsInterval, func(ctx context.Context) error {
		gauges.SetDBPoolStats(pool.PoolStats())
		return nil
	})

	s.AddJob("pending-leaves", PendingLeavesInterval, func(ctx context.Context) error {
		pending, err := requests.CountPending(ctx)
		if err != nil {
			return fmt.Errorf("count pending leave requests: %w", err)
		}
		gauges.SetPendingLeaves(pending)
		return nil
	})
}
