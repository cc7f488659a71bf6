package scheduler

import (
	"database/sql"

	"github.com/robfig/cron/v3"
	"github.com/vitrine/marketplace-backend/pkg/logger"
)

// StatsSource is satisfied by *sql.DB.
type StatsSource interface {
	Stats() sql.DBStats
}

// DBStatsScheduler periodically logs connection pool usage.
type DBStatsScheduler struct {
	cron   *cron.Cron
	source StatsSource
	spec   string
}

// NewDBStatsScheduler builds a scheduler for spec, a cron expression or
// descriptor such as "@every 5m".
func NewDBStatsScheduler(source StatsSource, spec string) *DBStatsScheduler {
	return &DBStatsScheduler{
		cron:   cron.New(),
		source: source,
		spec:   spec,
	}
}

func (s *DBStatsScheduler) Start() error {
	if _, err := s.cron.AddFunc(s.spec, s.report); err != nil {
		logger.Error("Failed to add cron job for database stats", err, map[string]interface{}{
			"spec": s.spec,
		})
		return err
	}

	s.cron.Start()
	logger.Info("Database stats scheduler started", map[string]interface{}{
		"spec": s.spec,
	})
	return nil
}

func (s *DBStatsScheduler) report() {
	stats := s.source.Stats()
	fields := map[string]interface{}{
		"open":                stats.OpenConnections,
		"in_use":              stats.InUse,
		"idle":                stats.Idle,
		"wait_count":          stats.WaitCount,
		"wait_duration":       stats.WaitDuration.String(),
		"max_idle_closed":     stats.MaxIdleClosed,
		"max_lifetime_closed": stats.MaxLifetimeClosed,
	}

	if stats.MaxOpenConnections > 0 && stats.InUse >= stats.MaxOpenConnections {
		logger.Warn("Database connection pool exhausted", fields)
		return
	}
	logger.Info("Database connection pool stats", fields)
}

// Stop waits for a running report to finish.
func (s *DBStatsScheduler) Stop() {
	logger.Info("Stopping database stats scheduler...")
	<-s.cron.Stop().Done()
	logger.Info("Database stats scheduler stopped")
}
