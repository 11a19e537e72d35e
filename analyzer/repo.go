package analyzer

import (
	"context"

	"repohealth/logger"
	"repohealth/models"

	"go.uber.org/zap"
)

// AnalyzeRepository retrieves the static repository attributes. A fetch
// failure yields an unavailable section carrying the cause.
func (a *Analyzer) AnalyzeRepository(ctx context.Context, owner, name string) models.RepoInfoSection {
	repo, err := a.client.FetchRepo(ctx, owner, name)
	if err != nil {
		logger.Warn("Repository info unavailable",
			zap.Error(err),
			zap.String("owner", owner),
			zap.String("name", name))
		return models.RepoInfoSection{Availability: models.Unavailable(err.Error())}
	}

	summary := &models.RepositorySummary{
		Name:        repo.Name,
		Language:    repo.Language,
		Stars:       repo.StargazersCount,
		Forks:       repo.ForksCount,
		OpenIssues:  repo.OpenIssuesCount,
		CreatedAt:   repo.CreatedAt,
		LastUpdate:  repo.UpdatedAt,
		HasWiki:     repo.HasWiki,
		HasProjects: repo.HasProjects,
	}

	return models.RepoInfoSection{Availability: models.Present(), Data: summary}
}
