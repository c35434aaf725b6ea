// Package backup writes periodic export workbooks as local backups.
package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	apperrors "github.com/labops/labstock/internal/errors"
)

// Config holds the backup scheduler configuration. An empty CronSchedule
// disables automatic backups entirely.
type Config struct {
	CronSchedule   string
	Dir            string
	RetentionCount int // number of backup files to keep, 0 = unlimited
}

// OnBackup is invoked after each successful backup with the written path.
type OnBackup func(path string)

// Scheduler runs exports on a cron schedule and prunes old backup files.
type Scheduler struct {
	cron     *cron.Cron
	export   func() (string, []byte, error)
	config   Config
	onBackup OnBackup
	logger   *zap.Logger
}

// NewScheduler creates a backup scheduler. The export function returns
// the dated filename and workbook bytes to write.
func NewScheduler(cfg Config, export func() (string, []byte, error), onBackup OnBackup, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Dir == "" {
		cfg.Dir = "backups"
	}
	if cfg.RetentionCount < 0 {
		cfg.RetentionCount = 0
	}
	return &Scheduler{
		cron:     cron.New(),
		export:   export,
		config:   cfg,
		onBackup: onBackup,
		logger:   logger,
	}
}

// Start schedules backups. With no cron schedule configured this is a
// no-op and backups stay manual.
func (s *Scheduler) Start() error {
	if s.config.CronSchedule == "" {
		s.logger.Info("automatic backups disabled")
		return nil
	}

	if _, err := s.cron.AddFunc(s.config.CronSchedule, func() {
		if err := s.RunOnce(); err != nil {
			s.logger.Error("scheduled backup failed", zap.Error(err))
		}
	}); err != nil {
		return apperrors.Wrap(apperrors.ErrBackupFailed,
			fmt.Sprintf("invalid backup schedule %q", s.config.CronSchedule), err)
	}

	s.cron.Start()
	s.logger.Info("backup scheduler started",
		zap.String("schedule", s.config.CronSchedule),
		zap.String("dir", s.config.Dir),
		zap.Int("retention", s.config.RetentionCount))
	return nil
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.cron.Stop()
}

// RunOnce writes a single backup file and applies retention pruning.
func (s *Scheduler) RunOnce() error {
	if err := os.MkdirAll(s.config.Dir, 0755); err != nil {
		return apperrors.Wrap(apperrors.ErrBackupFailed, "failed to create backup directory", err)
	}

	filename, data, err := s.export()
	if err != nil {
		return apperrors.Wrap(apperrors.ErrBackupFailed, "export failed", err)
	}

	// Timestamped name so multiple backups per day do not clobber each other.
	stamped := fmt.Sprintf("%s_%s%s",
		strings.TrimSuffix(filename, filepath.Ext(filename)),
		time.Now().Format("150405"),
		filepath.Ext(filename))
	path := filepath.Join(s.config.Dir, stamped)

	if err := os.WriteFile(path, data, 0644); err != nil {
		return apperrors.Wrap(apperrors.ErrBackupFailed, "failed to write backup file", err)
	}

	s.logger.Info("backup written", zap.String("path", path))
	if s.onBackup != nil {
		s.onBackup(path)
	}

	return s.prune()
}

// prune deletes the oldest backup files beyond the retention count.
func (s *Scheduler) prune() error {
	if s.config.RetentionCount == 0 {
		return nil
	}

	entries, err := os.ReadDir(s.config.Dir)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrBackupFailed, "failed to list backup directory", err)
	}

	var files []os.DirEntry
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".xlsx") {
			files = append(files, e)
		}
	}
	if len(files) <= s.config.RetentionCount {
		return nil
	}

	sort.Slice(files, func(i, j int) bool {
		fi, _ := files[i].Info()
		fj, _ := files[j].Info()
		if fi == nil || fj == nil {
			return files[i].Name() < files[j].Name()
		}
		return fi.ModTime().Before(fj.ModTime())
	})

	for _, old := range files[:len(files)-s.config.RetentionCount] {
		path := filepath.Join(s.config.Dir, old.Name())
		if err := os.Remove(path); err != nil {
			s.logger.Warn("failed to prune backup", zap.String("path", path), zap.Error(err))
			continue
		}
		s.logger.Debug("pruned backup", zap.String("path", path))
	}
	return nil
}
