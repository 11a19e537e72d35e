package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"repohealth/logger"

	"go.uber.org/zap"
)

// Client represents a GitHub API client
type Client struct {
	token      string
	httpClient *http.Client
	baseURL    *url.URL
}

type RepoResponse struct {
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	HTMLURL         string    `json:"html_url"`
	Language        string    `json:"language"`
	ForksCount      int       `json:"forks_count"`
	StargazersCount int       `json:"stargazers_count"`
	OpenIssuesCount int       `json:"open_issues_count"`
	WatchersCount   int       `json:"watchers_count"`
	HasWiki         bool      `json:"has_wiki"`
	HasProjects     bool      `json:"has_projects"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// IssueResponse covers both open and closed issues. ClosedAt is nil for open
// issues and, occasionally, for malformed closed records.
type IssueResponse struct {
	Number    int        `json:"number"`
	State     string     `json:"state"`
	CreatedAt time.Time  `json:"created_at"`
	ClosedAt  *time.Time `json:"closed_at"`
}

// CommitAuthor is the author block nested inside a commit record.
type CommitAuthor struct {
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Date  time.Time `json:"date"`
}

// CommitDetail is the commit block nested inside a commit record.
type CommitDetail struct {
	Message string       `json:"message"`
	Author  CommitAuthor `json:"author"`
}

type CommitResponse struct {
	SHA     string       `json:"sha"`
	Commit  CommitDetail `json:"commit"`
	HTMLURL string       `json:"html_url"`
}

func NewClient(token string) *Client {
	baseURL, _ := url.Parse("https://api.github.com")
	logger.Info("Initializing GitHub client", zap.String("base_url", baseURL.String()))
	return &Client{
		token: token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL: baseURL,
	}
}

// get performs an authenticated GET against the API and decodes the body
// into out. A non-200 status is an error; there are no retries.
func (c *Client) get(ctx context.Context, reqURL *url.URL, out any) error {
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", fmt.Sprintf("token %s", c.token))
	req.Header.Set("Accept", "application/vnd.github.v3+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// FetchRepo retrieves the static attributes of a repository.
func (c *Client) FetchRepo(ctx context.Context, owner, name string) (*RepoResponse, error) {
	path := fmt.Sprintf("/repos/%s/%s", owner, name)
	reqURL := c.baseURL.ResolveReference(&url.URL{Path: path})

	logger.Info("Fetching repository",
		zap.String("owner", owner),
		zap.String("name", name),
		zap.String("url", reqURL.String()))

	var repo RepoResponse
	if err := c.get(ctx, reqURL, &repo); err != nil {
		logger.Error("Failed to fetch repository",
			zap.Error(err),
			zap.String("owner", owner),
			zap.String("name", name))
		return nil, fmt.Errorf("failed to fetch repository: %w", err)
	}

	logger.Info("Successfully fetched repository",
		zap.String("owner", owner),
		zap.String("name", name),
		zap.String("language", repo.Language),
		zap.Int("stars", repo.StargazersCount))

	return &repo, nil
}

// FetchIssues retrieves a single page of issues in both open and closed
// state, in the order the API returns them. At most perPage records come
// back; anything beyond the first page is never fetched.
func (c *Client) FetchIssues(ctx context.Context, owner, name string, perPage int) ([]IssueResponse, error) {
	path := fmt.Sprintf("/repos/%s/%s/issues", owner, name)
	reqURL := c.baseURL.ResolveReference(&url.URL{Path: path})

	q := reqURL.Query()
	q.Set("state", "all")
	q.Set("per_page", strconv.Itoa(perPage))
	reqURL.RawQuery = q.Encode()

	logger.Info("Fetching issues",
		zap.String("owner", owner),
		zap.String("name", name),
		zap.Int("per_page", perPage),
		zap.String("url", reqURL.String()))

	var issues []IssueResponse
	if err := c.get(ctx, reqURL, &issues); err != nil {
		logger.Error("Failed to fetch issues",
			zap.Error(err),
			zap.String("owner", owner),
			zap.String("name", name))
		return nil, fmt.Errorf("failed to fetch issues: %w", err)
	}

	logger.Info("Successfully fetched issues",
		zap.String("owner", owner),
		zap.String("name", name),
		zap.Int("count", len(issues)))

	return issues, nil
}

// FetchCommits retrieves a single page of commits in the order the API
// returns them. At most perPage records come back.
func (c *Client) FetchCommits(ctx context.Context, owner, name string, perPage int) ([]CommitResponse, error) {
	path := fmt.Sprintf("/repos/%s/%s/commits", owner, name)
	reqURL := c.baseURL.ResolveReference(&url.URL{Path: path})

	q := reqURL.Query()
	q.Set("per_page", strconv.Itoa(perPage))
	reqURL.RawQuery = q.Encode()

	logger.Info("Fetching commits",
		zap.String("owner", owner),
		zap.String("name", name),
		zap.Int("per_page", perPage),
		zap.String("url", reqURL.String()))

	var commits []CommitResponse
	if err := c.get(ctx, reqURL, &commits); err != nil {
		logger.Error("Failed to fetch commits",
			zap.Error(err),
			zap.String("owner", owner),
			zap.String("name", name))
		return nil, fmt.Errorf("failed to fetch commits: %w", err)
	}

	logger.Info("Successfully fetched commits",
		zap.String("owner", owner),
		zap.String("name", name),
		zap.Int("count", len(commits)))

	return commits, nil
}
