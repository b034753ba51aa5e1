package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/posbridge/brink-insights-api/internal/config"
	"github.com/posbridge/brink-insights-api/internal/usecases/locating"
	"github.com/sirupsen/logrus"
)

// LocationSyncService periodically reloads the location metadata cache from
// the database so new or deactivated stores propagate without a restart.
type LocationSyncService struct {
	scheduler *gocron.Scheduler
	cfg       config.LocationSync
	cache     locating.Provider

	syncRunning       bool
	syncMutex         sync.Mutex
	lastSyncStartedAt time.Time
}

func NewLocationSyncService(cache locating.Provider, appConfig *config.Config) *LocationSyncService {
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": appConfig.LocationSync.CronSchedule,
		"sync_enabled":  appConfig.LocationSync.Enabled,
	}).Info("location sync scheduler configured")

	return &LocationSyncService{
		scheduler: scheduler,
		cfg:       appConfig.LocationSync,
		cache:     cache,
	}
}

// Start schedules the refresh job and runs one refresh immediately so the
// cache is warm before the first request.
func (s *LocationSyncService) Start(ctx context.Context) error {
	if err := s.cache.Refresh(ctx); err != nil {
		logrus.WithError(err).Warn("initial location cache refresh failed")
	}

	if !s.cfg.Enabled {
		logrus.Info("location sync disabled by configuration")
		return nil
	}

	_, err := s.scheduler.Cron(s.cfg.CronSchedule).Do(func() {
		s.syncLocations(ctx)
	})
	if err != nil {
		return fmt.Errorf("scheduling location sync: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("stopping location sync scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *LocationSyncService) syncLocations(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("location sync already running, skipping")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	if err := s.cache.Refresh(ctx); err != nil {
		logrus.WithError(err).Error("location cache refresh failed")
		return
	}

	logrus.Info("location cache refreshed")
}
