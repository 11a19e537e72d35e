package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"repohealth/models"
)

// StoreReport archives a finished health report
func (db *DB) StoreReport(ctx context.Context, report *models.HealthReport) error {
	if report == nil {
		return fmt.Errorf("%w: report cannot be nil", ErrInvalidInput)
	}
	if report.Owner == "" || report.Repo == "" {
		return fmt.Errorf("%w: report owner and repo cannot be empty", ErrInvalidInput)
	}

	payload, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to encode report payload: %w", err)
	}

	// Flattened columns fall back to zero for unavailable sections
	var stars, totalIssues, totalCommits int
	if report.BasicInfo.Available && report.BasicInfo.Data != nil {
		stars = report.BasicInfo.Data.Stars
	}
	if report.IssuesAnalysis.Available && report.IssuesAnalysis.Data != nil {
		totalIssues = report.IssuesAnalysis.Data.TotalIssues
	}
	if report.CommitAnalysis.Available && report.CommitAnalysis.Data != nil {
		totalCommits = report.CommitAnalysis.Data.TotalCommits
	}

	safeLogInfo("Storing health report",
		zap.String("owner", report.Owner),
		zap.String("repo", report.Repo))
	query := `
		INSERT INTO health_reports (
			owner, repo, generated_at, stars,
			total_issues, total_commits, payload
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err = db.conn.ExecContext(ctx, query,
		report.Owner, report.Repo, report.GeneratedAt, stars,
		totalIssues, totalCommits, payload,
	)
	if err != nil {
		return fmt.Errorf("failed to store health report: %w", err)
	}

	safeLogInfo("Health report stored successfully",
		zap.String("owner", report.Owner),
		zap.String("repo", report.Repo))
	return nil
}

// GetLatestReport retrieves the most recently stored report for a repository
func (db *DB) GetLatestReport(ctx context.Context, owner, repo string) (*models.HealthReport, error) {
	if owner == "" || repo == "" {
		return nil, fmt.Errorf("%w: owner and repo cannot be empty", ErrInvalidInput)
	}

	safeLogInfo("Retrieving latest report",
		zap.String("owner", owner),
		zap.String("repo", repo))
	query := `
		SELECT id, owner, repo, generated_at, stars,
			total_issues, total_commits, payload
		FROM health_reports
		WHERE owner = $1 AND repo = $2
		ORDER BY generated_at DESC
		LIMIT 1
	`

	stmt, err := db.getStmt(ctx, query)
	if err != nil {
		return nil, err
	}

	var record ReportRecord
	if err := stmt.GetContext(ctx, &record, owner, repo); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%w: %s/%s", ErrReportNotFound, owner, repo)
		}
		return nil, fmt.Errorf("failed to get latest report for %s/%s: %w", owner, repo, err)
	}

	var report models.HealthReport
	if err := json.Unmarshal(record.Payload, &report); err != nil {
		return nil, fmt.Errorf("failed to decode stored report: %w", err)
	}

	safeLogInfo("Latest report retrieved successfully",
		zap.String("owner", owner),
		zap.String("repo", repo))
	return &report, nil
}

// GetReportStats returns statistics about the stored history of a repository
func (db *DB) GetReportStats(ctx context.Context, owner, repo string) (*ReportStats, error) {
	if owner == "" || repo == "" {
		return nil, fmt.Errorf("%w: owner and repo cannot be empty", ErrInvalidInput)
	}

	query := `
		SELECT
			COUNT(*) as total_reports,
			MIN(generated_at) as first_run,
			MAX(generated_at) as last_run
		FROM health_reports
		WHERE owner = $1 AND repo = $2
	`

	stmt, err := db.getStmt(ctx, query)
	if err != nil {
		return nil, err
	}

	var row reportStatsRow
	if err := stmt.GetContext(ctx, &row, owner, repo); err != nil {
		return nil, fmt.Errorf("failed to get report statistics for %s/%s: %w", owner, repo, err)
	}

	if row.TotalReports == 0 {
		return nil, fmt.Errorf("%w: %s/%s", ErrNoReportsFound, owner, repo)
	}

	stats := &ReportStats{TotalReports: row.TotalReports}
	if row.FirstRun.Valid {
		stats.FirstRun = row.FirstRun.Time
	}
	if row.LastRun.Valid {
		stats.LastRun = row.LastRun.Time
	}

	return stats, nil
}
