package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"

	"lankadrive-backend/internal/jobs"
	"lankadrive-backend/internal/logger"
)

// Scheduler drives the nightly fleet maintenance and the admin reminder
// jobs on their configured cron expressions.
type Scheduler struct {
	cron *cron.Cron
	jobs *jobs.JobRunner
}

// NewScheduler builds a scheduler around the job runner. Cron expressions
// are evaluated in UTC with seconds precision.
func NewScheduler(jobRunner *jobs.JobRunner) *Scheduler {
	s := &Scheduler{
		cron: cron.New(
			cron.WithLocation(time.UTC),
			cron.WithSeconds(),
		),
		jobs: jobRunner,
	}
	s.registerJobs()
	return s
}

func (s *Scheduler) registerJobs() {
	cfg := s.jobs.Config().Scheduler

	register := func(name, spec string, job func()) {
		if _, err := s.cron.AddFunc(spec, job); err != nil {
			logger.Error("Failed to register cron job", "job", name, "spec", spec, "error", err)
			return
		}
		logger.Info("Registered cron job", "job", name, "spec", spec)
	}

	register("prune-blocked-dates", cfg.PruneBlockedDates, s.jobs.PruneExpiredBlockedDates)
	register("send-inquiry-reminders", cfg.SendInquiryReminders, s.jobs.SendPendingInquiryReminders)
}

// Start begins running registered jobs on schedule.
func (s *Scheduler) Start() {
	s.cron.Start()
	logger.Info("Cron scheduler started")
}

// Stop halts scheduling and waits for any in-flight job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Info("Cron scheduler stopped")
}

// IsRunning reports whether any jobs are registered.
func (s *Scheduler) IsRunning() bool {
	return len(s.cron.Entries()) > 0
}
