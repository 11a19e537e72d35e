package db

import (
	"database/sql"
	"time"
)

// ReportRecord is one archived analysis run. Payload carries the full
// serialized report; the flattened columns exist so history can be queried
// without unpacking JSON.
type ReportRecord struct {
	ID           int       `db:"id"`
	Owner        string    `db:"owner"`
	Repo         string    `db:"repo"`
	GeneratedAt  time.Time `db:"generated_at"`
	Stars        int       `db:"stars"`
	TotalIssues  int       `db:"total_issues"`
	TotalCommits int       `db:"total_commits"`
	Payload      []byte    `db:"payload"`
}

// ReportStats summarizes the stored history of one repository.
type ReportStats struct {
	TotalReports int       `db:"total_reports"`
	FirstRun     time.Time `db:"first_run"`
	LastRun      time.Time `db:"last_run"`
}

// reportStatsRow scans the aggregate query; the run timestamps are NULL when
// no rows match.
type reportStatsRow struct {
	TotalReports int          `db:"total_reports"`
	FirstRun     sql.NullTime `db:"first_run"`
	LastRun      sql.NullTime `db:"last_run"`
}
