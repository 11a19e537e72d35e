// Package report renders a health report for the console and persists it as
// a structured file.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"repohealth/models"
)

const reportTitle = "Repository Health Report"

// naValue is printed for every metric of an unavailable section.
const naValue = "N/A"

// Renderer writes the two-column metric table.
type Renderer struct {
	out     io.Writer
	colored bool
}

// NewRenderer creates a renderer writing to out.
func NewRenderer(out io.Writer, colored bool) *Renderer {
	return &Renderer{
		out:     out,
		colored: colored,
	}
}

// Render prints the report title and the Metric/Value table. Unavailable
// sections render as N/A rows instead of failing; counts cut off by the page
// limit carry a trailing plus sign.
func (r *Renderer) Render(report *models.HealthReport) error {
	if r.colored {
		color.New(color.Bold).Fprintln(r.out, reportTitle)
	} else {
		fmt.Fprintln(r.out, reportTitle)
	}
	fmt.Fprintln(r.out, strings.Repeat("=", len(reportTitle)))
	fmt.Fprintln(r.out)

	table := tablewriter.NewTable(r.out,
		tablewriter.WithConfig(tablewriter.Config{
			Header: tw.CellConfig{
				Alignment: tw.CellAlignment{Global: tw.AlignLeft},
				Formatting: tw.CellFormatting{
					AutoFormat: tw.Off,
				},
			},
			Row: tw.CellConfig{
				Alignment: tw.CellAlignment{
					PerColumn: []tw.Align{tw.AlignLeft, tw.AlignRight},
				},
			},
		}),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.Border{
				Left:   tw.Off,
				Right:  tw.Off,
				Top:    tw.Off,
				Bottom: tw.Off,
			},
			Settings: tw.Settings{
				Separators: tw.Separators{
					BetweenColumns: tw.Off,
				},
			},
		}),
	)

	table.Header([]string{"Metric", "Value"})
	for _, row := range buildRows(report) {
		table.Append(row)
	}
	table.Render()
	fmt.Fprintln(r.out)

	return nil
}

// buildRows flattens the report sections into table rows, in the fixed order
// the report has always used.
func buildRows(report *models.HealthReport) [][]string {
	rows := make([][]string, 0, 9)

	repoName, language, stars, forks := naValue, naValue, naValue, naValue
	if info := report.BasicInfo; info.Available && info.Data != nil {
		repoName = info.Data.Name
		language = info.Data.Language
		if language == "" {
			// The API reports no language for repositories without code
			language = naValue
		}
		stars = strconv.Itoa(info.Data.Stars)
		forks = strconv.Itoa(info.Data.Forks)
	}
	rows = append(rows,
		[]string{"Repository Name", repoName},
		[]string{"Primary Language", language},
		[]string{"Stars", stars},
		[]string{"Forks", forks},
	)

	totalIssues, openIssues, avgClose := naValue, naValue, naValue
	if issues := report.IssuesAnalysis; issues.Available && issues.Data != nil {
		totalIssues = countValue(issues.Data.TotalIssues, issues.Data.Truncated)
		openIssues = strconv.Itoa(issues.Data.OpenIssues)
		avgClose = fmt.Sprintf("%.1f", issues.Data.AvgTimeToCloseDays)
	}
	rows = append(rows,
		[]string{"Total Issues", totalIssues},
		[]string{"Open Issues", openIssues},
		[]string{"Average Days to Close", avgClose},
	)

	totalCommits, commitsPerDay := naValue, naValue
	if commits := report.CommitAnalysis; commits.Available && commits.Data != nil {
		totalCommits = countValue(commits.Data.TotalCommits, commits.Data.Truncated)
		commitsPerDay = fmt.Sprintf("%.2f", commits.Data.CommitFrequencyPerDay)
	}
	rows = append(rows,
		[]string{"Total Commits", totalCommits},
		[]string{"Commits per Day", commitsPerDay},
	)

	return rows
}

// countValue renders a count, marking page-limited counts with a plus sign.
func countValue(n int, truncated bool) string {
	if truncated {
		return strconv.Itoa(n) + "+"
	}
	return strconv.Itoa(n)
}
