package analyzer

import (
	"context"
	"time"

	"repohealth/logger"
	"repohealth/models"

	"github.com/montanaflynn/stats"
	"go.uber.org/zap"
)

const day = 24 * time.Hour

// AnalyzeIssues fetches one page of issues in both states and computes the
// issue metrics. Every non-closed record counts as open, so the open and
// closed counts always add up to the total. Closed records without a closure
// timestamp stay in the closed count but are skipped for the average.
func (a *Analyzer) AnalyzeIssues(ctx context.Context, owner, name string) models.IssuesSection {
	issues, err := a.client.FetchIssues(ctx, owner, name, a.pageSize)
	if err != nil {
		logger.Warn("Issue analysis unavailable",
			zap.Error(err),
			zap.String("owner", owner),
			zap.String("name", name))
		return models.IssuesSection{Availability: models.Unavailable(err.Error())}
	}

	summary := &models.IssueSummary{
		TotalIssues: len(issues),
		Truncated:   len(issues) == a.pageSize,
	}

	var closeDays []float64
	for _, issue := range issues {
		if issue.State != "closed" {
			summary.OpenIssues++
			continue
		}
		summary.ClosedIssues++

		if issue.ClosedAt == nil {
			summary.SkippedRecords++
			logger.Warn("Closed issue has no closure timestamp, excluding from average",
				zap.Int("issue", issue.Number),
				zap.String("owner", owner),
				zap.String("name", name))
			continue
		}

		// Whole days per record, truncated
		days := int(issue.ClosedAt.Sub(issue.CreatedAt) / day)
		closeDays = append(closeDays, float64(days))
	}

	if len(closeDays) > 0 {
		mean, err := stats.Mean(closeDays)
		if err != nil {
			logger.Warn("Failed to average issue close times", zap.Error(err))
		} else {
			summary.AvgTimeToCloseDays = mean
		}
	}

	logger.Info("Issue analysis complete",
		zap.String("owner", owner),
		zap.String("name", name),
		zap.Int("total", summary.TotalIssues),
		zap.Int("open", summary.OpenIssues),
		zap.Int("closed", summary.ClosedIssues),
		zap.Int("skipped", summary.SkippedRecords),
		zap.Bool("truncated", summary.Truncated))

	return models.IssuesSection{Availability: models.Present(), Data: summary}
}
