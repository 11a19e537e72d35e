// Package analyzer turns raw GitHub API records into the health report's
// summary metrics.
package analyzer

import (
	"context"
	"time"

	"repohealth/github"
	"repohealth/models"
)

const defaultPageSize = 100

// Client defines the GitHub client operations needed by the analyzer
type Client interface {
	FetchRepo(ctx context.Context, owner, name string) (*github.RepoResponse, error)
	FetchIssues(ctx context.Context, owner, name string, perPage int) ([]github.IssueResponse, error)
	FetchCommits(ctx context.Context, owner, name string, perPage int) ([]github.CommitResponse, error)
}

// Analyzer computes the three report sections for a repository.
type Analyzer struct {
	client   Client
	pageSize int
}

// New creates an analyzer fetching at most pageSize records per section.
func New(client Client, pageSize int) *Analyzer {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return &Analyzer{
		client:   client,
		pageSize: pageSize,
	}
}

// Analyze assembles the full health report for one repository. Sections are
// fetched strictly in order (repository info, issues, commits) and a failed
// section degrades to unavailable without aborting the run, so the returned
// report is always complete in shape.
func (a *Analyzer) Analyze(ctx context.Context, owner, name string) *models.HealthReport {
	report := &models.HealthReport{
		Owner:       owner,
		Repo:        name,
		GeneratedAt: time.Now().UTC(),
	}

	report.BasicInfo = a.AnalyzeRepository(ctx, owner, name)
	report.IssuesAnalysis = a.AnalyzeIssues(ctx, owner, name)
	report.CommitAnalysis = a.AnalyzeCommits(ctx, owner, name)

	return report
}
