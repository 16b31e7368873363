package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/robfig/cron/v3"
)

// Scheduler runs the service's recurring background jobs on cron schedules.
type Scheduler struct {
	scheduler gocron.Scheduler
}

// NewScheduler creates a new scheduler running in UTC
func NewScheduler() (*Scheduler, error) {
	scheduler, err := gocron.NewScheduler(gocron.WithLocation(time.UTC))
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}
	return &Scheduler{scheduler: scheduler}, nil
}

// RegisterCron registers a named task on a standard 5-field cron expression.
// The expression is validated up front so a bad config fails at startup, not
// at first fire.
func (s *Scheduler) RegisterCron(name, cronExpression string, task func()) error {
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	schedule, err := parser.Parse(cronExpression)
	if err != nil {
		return fmt.Errorf("invalid cron expression %q for job %s: %w", cronExpression, name, err)
	}

	_, err = s.scheduler.NewJob(
		gocron.CronJob(cronExpression, false),
		gocron.NewTask(task),
		gocron.WithName(name),
	)
	if err != nil {
		return fmt.Errorf("failed to register job %s: %w", name, err)
	}

	nextRun := schedule.Next(time.Now().UTC())
	log.Printf("📅 [SCHEDULER] Registered job %s (cron: %s, next run: %s)",
		name, cronExpression, nextRun.Format(time.RFC3339))
	return nil
}

// Start begins running registered jobs
func (s *Scheduler) Start() {
	s.scheduler.Start()
	log.Println("🚀 [SCHEDULER] Job scheduler started")
}

// Stop gracefully shuts the scheduler down
func (s *Scheduler) Stop() {
	if err := s.scheduler.Shutdown(); err != nil {
		log.Printf("⚠️ [SCHEDULER] Shutdown error: %v", err)
		return
	}
	log.Println("✅ [SCHEDULER] Job scheduler stopped")
}
