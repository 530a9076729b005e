package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/mamadbah2/rabbitry/internal/config"
	"github.com/mamadbah2/rabbitry/internal/repository/mongodb"
	"github.com/mamadbah2/rabbitry/internal/service/herd"
	"github.com/mamadbah2/rabbitry/internal/service/reminder"
)

// Scheduler manages scheduled tasks: the nightly herd snapshot archive and
// the reminder push. Archive and reminder are each optional; a nil repository
// or reminder service disables that half of the job.
type Scheduler struct {
	cron        *cron.Cron
	herdSvc     *herd.Service
	archiveRepo mongodb.Repository
	reminderSvc *reminder.Service
	cfg         config.Config
	logger      *zap.Logger
}

// NewScheduler creates a new scheduler instance.
func NewScheduler(cfg config.Config, herdSvc *herd.Service, archiveRepo mongodb.Repository, reminderSvc *reminder.Service, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	// robfig/cron/v3 default parser is standard cron (5 fields: min, hour,
	// dom, month, dow). The configured timezone anchors "nightly".
	opts := []cron.Option{}
	if loc, err := time.LoadLocation(cfg.Schedule.Timezone); err == nil {
		opts = append(opts, cron.WithLocation(loc))
	} else {
		logger.Warn("invalid timezone, scheduling in server local time",
			zap.String("timezone", cfg.Schedule.Timezone), zap.Error(err))
	}
	c := cron.New(opts...)

	return &Scheduler{
		cron:        c,
		herdSvc:     herdSvc,
		archiveRepo: archiveRepo,
		reminderSvc: reminderSvc,
		cfg:         cfg,
		logger:      logger,
	}
}

// Start starts the scheduler.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler", zap.String("schedule", s.cfg.Schedule.CronSchedule))

	_, err := s.cron.AddFunc(s.cfg.Schedule.CronSchedule, s.runNightly)
	if err != nil {
		s.logger.Error("failed to schedule nightly job", zap.Error(err))
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) runNightly() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if s.archiveRepo != nil {
		snap := s.herdSvc.Snapshot()
		if err := s.archiveRepo.SaveSnapshot(ctx, snap); err != nil {
			s.logger.Error("failed to archive herd snapshot", zap.Error(err))
		} else {
			s.logger.Info("herd snapshot archived", zap.String("date", snap.Date))
		}
	}

	if s.reminderSvc != nil {
		sent := s.reminderSvc.SendDueReminders(ctx)
		s.logger.Info("reminder run finished", zap.Int("sent", sent))
	}
}
