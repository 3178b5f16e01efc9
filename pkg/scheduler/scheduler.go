// Package scheduler wraps robfig/cron for the server's background jobs.
package scheduler

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/robfig/cron/v3"
)

// Service runs registered jobs; a job still running when its next tick
// arrives is skipped.
type Service struct {
	cron *cron.Cron
}

func NewService(loc *time.Location) *Service {
	logger := cron.VerbosePrintfLogger(log.New(os.Stdout, "[Scheduler] ", log.LstdFlags))
	return &Service{
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithSeconds(),
			cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
		),
	}
}

// ScheduleInterval registers a periodic job every given duration, rounded
// down to whole seconds.
func (s *Service) ScheduleInterval(interval time.Duration, job func()) (cron.EntryID, error) {
	seconds := int(interval / time.Second)
	if seconds <= 0 {
		return 0, fmt.Errorf("interval must be at least 1s, got %s", interval)
	}
	return s.cron.AddFunc(fmt.Sprintf("@every %ds", seconds), job)
}

func (s *Service) Start() {
	s.cron.Start()
}

// Stop waits for running jobs to finish.
func (s *Service) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
