// Package service orchestrates a single analysis run, from the API fetches
// through the rendered table and the persisted report file.
package service

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"repohealth/analyzer"
	"repohealth/config"
	"repohealth/db"
	"repohealth/github"
	"repohealth/logger"
	"repohealth/models"
	"repohealth/report"
)

// AnalyzerInterface abstracts the analyzer operations needed by the service
// (for testability)
type AnalyzerInterface interface {
	Analyze(ctx context.Context, owner, name string) *models.HealthReport
}

// HistoryInterface abstracts the report history operations needed by the service
// (for testability)
type HistoryInterface interface {
	StoreReport(ctx context.Context, report *models.HealthReport) error
	Close() error
}

// Service errors
var (
	ErrServiceInit     = fmt.Errorf("service initialization error")
	ErrServiceShutdown = fmt.Errorf("service shutdown error")
)

// Service represents the main application service
type Service struct {
	config   *config.Config
	analyzer AnalyzerInterface
	history  HistoryInterface
	renderer *report.Renderer
	out      io.Writer
}

// New creates a new service instance from loaded configuration
func New(cfg *config.Config) (*Service, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: configuration cannot be nil", ErrServiceInit)
	}

	client := github.NewClient(cfg.GitHubToken)

	svc := &Service{
		config:   cfg,
		analyzer: analyzer.New(client, cfg.PageSize),
		renderer: report.NewRenderer(os.Stdout, true),
		out:      os.Stdout,
	}

	// Report history is optional; an analysis run works fine without it
	if cfg.HistoryEnabled {
		database, err := db.New()
		if err != nil {
			logger.Warn("Report history disabled", zap.Error(err))
		} else {
			svc.history = database
		}
	}

	logger.Info("Service initialized successfully",
		zap.Int("page_size", cfg.PageSize),
		zap.String("report_path", cfg.ReportPath),
		zap.Bool("history_enabled", svc.history != nil))

	return svc, nil
}

// Run analyzes a single repository, prints the report table and persists the
// full report to the configured path
func (s *Service) Run(ctx context.Context, owner, name string) error {
	if ctx.Err() != nil {
		return fmt.Errorf("context cancelled: %w", ctx.Err())
	}

	fmt.Fprintf(s.out, "Analyzing %s/%s...\n", owner, name)
	healthReport := s.analyzer.Analyze(ctx, owner, name)

	if err := s.renderer.Render(healthReport); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	if err := report.WriteJSON(healthReport, s.config.ReportPath); err != nil {
		return fmt.Errorf("failed to persist report: %w", err)
	}
	fmt.Fprintf(s.out, "Detailed report saved to %s\n", s.config.ReportPath)

	// Archiving failures are logged but never fail the run
	if s.history != nil {
		if err := s.history.StoreReport(ctx, healthReport); err != nil {
			logger.Warn("Failed to archive report",
				zap.String("owner", owner),
				zap.String("repo", name),
				zap.Error(err))
		}
	}

	logger.Info("Successfully analyzed repository",
		zap.String("owner", owner),
		zap.String("repo", name))

	return nil
}

// Close performs cleanup operations
func (s *Service) Close() error {
	logger.Info("Closing service")
	if s.history != nil {
		if err := s.history.Close(); err != nil {
			return fmt.Errorf("%w: failed to close report history: %v", ErrServiceShutdown, err)
		}
	}
	return nil
}
