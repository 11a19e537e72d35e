// Package models defines the core data structures used throughout the application.
package models

import "time"

// Availability marks whether a report section could be computed. When a fetch
// fails the section stays in the report with Available=false and the cause in
// Reason, and downstream consumers must render it as unavailable rather than
// assume its data is present.
type Availability struct {
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

// Present returns the availability marker for a computed section.
func Present() Availability {
	return Availability{Available: true}
}

// Unavailable returns the availability marker for a failed section.
func Unavailable(reason string) Availability {
	return Availability{Available: false, Reason: reason}
}

// RepositorySummary holds the static attributes of a repository.
type RepositorySummary struct {
	Name        string    `json:"name"`
	Language    string    `json:"language"`
	Stars       int       `json:"stars"`
	Forks       int       `json:"forks"`
	OpenIssues  int       `json:"open_issues"`
	CreatedAt   time.Time `json:"created_at"`
	LastUpdate  time.Time `json:"last_update"`
	HasWiki     bool      `json:"has_wiki"`
	HasProjects bool      `json:"has_projects"`
}

// IssueSummary holds the issue metrics computed from one fetched page.
// OpenIssues + ClosedIssues always equals TotalIssues for that page.
type IssueSummary struct {
	TotalIssues  int `json:"total_issues"`
	OpenIssues   int `json:"open_issues"`
	ClosedIssues int `json:"closed_issues"`
	// AvgTimeToCloseDays is the arithmetic mean of per-issue close times in
	// whole days, 0 when no closed issue carries a usable closure timestamp.
	AvgTimeToCloseDays float64 `json:"avg_time_to_close_days"`
	// SkippedRecords counts closed issues lacking a closure timestamp. They
	// stay in ClosedIssues but are excluded from the average.
	SkippedRecords int `json:"skipped_records"`
	// Truncated is true when the page was full, meaning the repository may
	// hold more issues than were counted.
	Truncated bool `json:"truncated"`
}

// CommitSummary holds the commit metrics computed from one fetched page.
type CommitSummary struct {
	TotalCommits int `json:"total_commits"`
	// CommitFrequencyPerDay is commits divided by the day span between the
	// oldest and newest commit dates (inclusive), rounded to 2 decimals.
	CommitFrequencyPerDay float64 `json:"commit_frequency_per_day"`
	Truncated             bool    `json:"truncated"`
}

// RepoInfoSection wraps the repository summary with its availability.
type RepoInfoSection struct {
	Availability
	Data *RepositorySummary `json:"data,omitempty"`
}

// IssuesSection wraps the issue summary with its availability.
type IssuesSection struct {
	Availability
	Data *IssueSummary `json:"data,omitempty"`
}

// CommitsSection wraps the commit summary with its availability.
type CommitsSection struct {
	Availability
	Data *CommitSummary `json:"data,omitempty"`
}

// HealthReport is the full result of one analysis run. It is assembled once,
// never mutated afterwards, and serialized verbatim.
type HealthReport struct {
	Owner          string          `json:"owner"`
	Repo           string          `json:"repo"`
	GeneratedAt    time.Time       `json:"generated_at"`
	BasicInfo      RepoInfoSection `json:"basic_info"`
	IssuesAnalysis IssuesSection   `json:"issues_analysis"`
	CommitAnalysis CommitsSection  `json:"commit_analysis"`
}
