package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"repohealth/models"
)

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "repo_health_report.json")

	require.NoError(t, WriteJSON(sampleReport(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	// Two-space indentation
	assert.True(t, strings.HasPrefix(string(data), "{\n  \""))

	var decoded models.HealthReport
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "test-owner", decoded.Owner)
	assert.Equal(t, "test-repo", decoded.Repo)
	assert.True(t, decoded.BasicInfo.Available)
	require.NotNil(t, decoded.BasicInfo.Data)
	assert.Equal(t, 128, decoded.BasicInfo.Data.Stars)
	require.NotNil(t, decoded.IssuesAnalysis.Data)
	assert.Equal(t, 10, decoded.IssuesAnalysis.Data.TotalIssues)
	assert.Equal(t, 2.5, decoded.IssuesAnalysis.Data.AvgTimeToCloseDays)
	require.NotNil(t, decoded.CommitAnalysis.Data)
	assert.Equal(t, 0.67, decoded.CommitAnalysis.Data.CommitFrequencyPerDay)
}

func TestWriteJSONFieldNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")

	require.NoError(t, WriteJSON(sampleReport(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	content := string(data)
	for _, key := range []string{
		`"basic_info"`,
		`"issues_analysis"`,
		`"commit_analysis"`,
		`"avg_time_to_close_days"`,
		`"commit_frequency_per_day"`,
		`"total_issues"`,
		`"total_commits"`,
		`"available"`,
	} {
		assert.Contains(t, content, key)
	}
}

func TestWriteJSONUnavailableSection(t *testing.T) {
	report := sampleReport()
	report.IssuesAnalysis = models.IssuesSection{Availability: models.Unavailable("status 500")}

	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, WriteJSON(report, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"reason": "status 500"`)

	var decoded models.HealthReport
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.False(t, decoded.IssuesAnalysis.Available)
	assert.Equal(t, "status 500", decoded.IssuesAnalysis.Reason)
	assert.Nil(t, decoded.IssuesAnalysis.Data)
}

func TestWriteJSONOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")

	first := sampleReport()
	first.BasicInfo.Data.Stars = 1
	require.NoError(t, WriteJSON(first, path))

	second := sampleReport()
	second.BasicInfo.Data.Stars = 2
	require.NoError(t, WriteJSON(second, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded models.HealthReport
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 2, decoded.BasicInfo.Data.Stars)
}

func TestWriteJSONCreateError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "report.json")

	err := WriteJSON(sampleReport(), path)
	assert.Error(t, err)
	assert.NoFileExists(t, path)
}
