package analyzer

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"repohealth/github"
	"repohealth/models"
)

func TestAnalyzeIssues(t *testing.T) {
	testCases := []struct {
		name     string
		pageSize int
		issues   []github.IssueResponse
		expected models.IssueSummary
	}{
		{
			name:     "closed and open mix",
			pageSize: 100,
			issues: []github.IssueResponse{
				{
					Number:    1,
					State:     "closed",
					CreatedAt: date(2024, time.January, 1),
					ClosedAt:  timePtr(date(2024, time.January, 3)),
				},
				{
					Number:    2,
					State:     "open",
					CreatedAt: date(2024, time.January, 5),
				},
			},
			expected: models.IssueSummary{
				TotalIssues:        2,
				OpenIssues:         1,
				ClosedIssues:       1,
				AvgTimeToCloseDays: 2.0,
			},
		},
		{
			name:     "no issues",
			pageSize: 100,
			issues:   []github.IssueResponse{},
			expected: models.IssueSummary{},
		},
		{
			name:     "no closed issues yields zero average",
			pageSize: 100,
			issues: []github.IssueResponse{
				{Number: 1, State: "open", CreatedAt: date(2024, time.January, 1)},
				{Number: 2, State: "open", CreatedAt: date(2024, time.January, 2)},
			},
			expected: models.IssueSummary{
				TotalIssues: 2,
				OpenIssues:  2,
			},
		},
		{
			name:     "per record truncation before averaging",
			pageSize: 100,
			issues: []github.IssueResponse{
				{
					Number:    1,
					State:     "closed",
					CreatedAt: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
					// 36 hours counts as one whole day
					ClosedAt: timePtr(time.Date(2024, time.January, 2, 12, 0, 0, 0, time.UTC)),
				},
				{
					Number:    2,
					State:     "closed",
					CreatedAt: date(2024, time.January, 1),
					ClosedAt:  timePtr(date(2024, time.January, 4)),
				},
			},
			expected: models.IssueSummary{
				TotalIssues:        2,
				ClosedIssues:       2,
				AvgTimeToCloseDays: 2.0,
			},
		},
		{
			name:     "closed issue without closure timestamp is skipped",
			pageSize: 100,
			issues: []github.IssueResponse{
				{
					Number:    1,
					State:     "closed",
					CreatedAt: date(2024, time.January, 1),
					ClosedAt:  timePtr(date(2024, time.January, 3)),
				},
				{
					Number:    2,
					State:     "closed",
					CreatedAt: date(2024, time.January, 1),
				},
			},
			expected: models.IssueSummary{
				TotalIssues:        2,
				ClosedIssues:       2,
				SkippedRecords:     1,
				AvgTimeToCloseDays: 2.0,
			},
		},
		{
			name:     "full page marks truncation",
			pageSize: 2,
			issues: []github.IssueResponse{
				{Number: 1, State: "open", CreatedAt: date(2024, time.January, 1)},
				{Number: 2, State: "open", CreatedAt: date(2024, time.January, 2)},
			},
			expected: models.IssueSummary{
				TotalIssues: 2,
				OpenIssues:  2,
				Truncated:   true,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client := &mockClient{}
			client.On("FetchIssues", mock.Anything, "test-owner", "test-repo", tc.pageSize).
				Return(tc.issues, nil)

			section := New(client, tc.pageSize).AnalyzeIssues(context.Background(), "test-owner", "test-repo")

			assert.True(t, section.Available)
			assert.Equal(t, tc.expected, *section.Data)
			assert.Equal(t, section.Data.TotalIssues, section.Data.OpenIssues+section.Data.ClosedIssues)
			client.AssertExpectations(t)
		})
	}
}

func TestAnalyzeIssuesUnavailable(t *testing.T) {
	client := &mockClient{}
	client.On("FetchIssues", mock.Anything, "test-owner", "test-repo", 100).
		Return(nil, assert.AnError)

	section := New(client, 100).AnalyzeIssues(context.Background(), "test-owner", "test-repo")

	assert.False(t, section.Available)
	assert.Equal(t, assert.AnError.Error(), section.Reason)
	assert.Nil(t, section.Data)
	client.AssertExpectations(t)
}
