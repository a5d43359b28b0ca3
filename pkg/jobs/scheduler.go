package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/sannty/salescrm/ent"
	"github.com/sannty/salescrm/ent/task"
	"github.com/sannty/salescrm/ent/user"
	"github.com/sannty/salescrm/pkg/email"
	"github.com/sannty/salescrm/pkg/logger"
	"github.com/sannty/salescrm/pkg/tasks"
)

// Scheduler runs the recurring background jobs: the overdue task sweep and
// the per-owner overdue digest emails.
type Scheduler struct {
	cron  *cron.Cron
	db    *ent.Client
	tasks *tasks.Service
	email *email.Service
	log   logger.Logger
}

// NewScheduler creates a new job scheduler
func NewScheduler(db *ent.Client, taskSvc *tasks.Service, emailSvc *email.Service, log logger.Logger) *Scheduler {
	return &Scheduler{
		cron:  cron.New(),
		db:    db,
		tasks: taskSvc,
		email: emailSvc,
		log:   log,
	}
}

// Start registers the jobs and starts the cron loop. The sweep runs every
// hour; digests go out once a day at 08:00 server time.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc("0 * * * *", s.runSweep); err != nil {
		return err
	}
	if _, err := s.cron.AddFunc("0 8 * * *", s.runDigests); err != nil {
		return err
	}
	s.cron.Start()
	s.log.Info("job scheduler started")
	return nil
}

// Stop stops the cron loop and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Scheduler) runSweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if _, err := s.tasks.SweepOverdue(ctx); err != nil {
		s.log.Error("overdue sweep failed", "error", err)
	}
}

func (s *Scheduler) runDigests() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	overdue, err := s.db.Task.Query().
		Where(task.StatusEQ(task.StatusOverdue)).
		All(ctx)
	if err != nil {
		s.log.Error("failed to load overdue tasks for digests", "error", err)
		return
	}

	byOwner := make(map[int][]*ent.Task)
	for _, t := range overdue {
		byOwner[t.OwnerID] = append(byOwner[t.OwnerID], t)
	}

	for ownerID, owned := range byOwner {
		owner, err := s.db.User.Query().Where(user.IDEQ(ownerID)).Only(ctx)
		if err != nil {
			s.log.Warn("skipping digest for unknown owner", "owner_id", ownerID, "error", err)
			continue
		}
		if err := s.email.SendOverdueDigest(ctx, owner, owned); err != nil {
			s.log.Warn("failed to send overdue digest", "owner_id", ownerID, "error", err)
		}
	}
}
