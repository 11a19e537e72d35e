package analyzer

import (
	"context"
	"time"

	"repohealth/logger"
	"repohealth/models"

	"github.com/montanaflynn/stats"
	"go.uber.org/zap"
)

// AnalyzeCommits fetches one page of commits and computes the commit
// frequency over the day span covered by the page. Only the date component
// of each author timestamp matters; the span is inclusive on both ends, so a
// single-day page has a span of one day.
func (a *Analyzer) AnalyzeCommits(ctx context.Context, owner, name string) models.CommitsSection {
	commits, err := a.client.FetchCommits(ctx, owner, name, a.pageSize)
	if err != nil {
		logger.Warn("Commit analysis unavailable",
			zap.Error(err),
			zap.String("owner", owner),
			zap.String("name", name))
		return models.CommitsSection{Availability: models.Unavailable(err.Error())}
	}

	summary := &models.CommitSummary{
		TotalCommits: len(commits),
		Truncated:    len(commits) == a.pageSize,
	}

	if len(commits) == 0 {
		logger.Info("Commit analysis complete, no commits on page",
			zap.String("owner", owner),
			zap.String("name", name))
		return models.CommitsSection{Availability: models.Present(), Data: summary}
	}

	minDate := dateOf(commits[0].Commit.Author.Date)
	maxDate := minDate
	for _, commit := range commits[1:] {
		d := dateOf(commit.Commit.Author.Date)
		if d.Before(minDate) {
			minDate = d
		}
		if d.After(maxDate) {
			maxDate = d
		}
	}

	spanDays := int(maxDate.Sub(minDate)/day) + 1
	if spanDays > 0 {
		frequency := float64(summary.TotalCommits) / float64(spanDays)
		rounded, err := stats.Round(frequency, 2)
		if err != nil {
			logger.Warn("Failed to round commit frequency", zap.Error(err))
		} else {
			summary.CommitFrequencyPerDay = rounded
		}
	}

	logger.Info("Commit analysis complete",
		zap.String("owner", owner),
		zap.String("name", name),
		zap.Int("total", summary.TotalCommits),
		zap.Int("span_days", spanDays),
		zap.Float64("frequency", summary.CommitFrequencyPerDay),
		zap.Bool("truncated", summary.Truncated))

	return models.CommitsSection{Availability: models.Present(), Data: summary}
}

// dateOf truncates a timestamp to its UTC calendar date.
func dateOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
