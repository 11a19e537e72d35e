// Package main contains the CLI commands for the application,
// built using the Cobra library.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"repohealth/config"
)

var rootCmd = &cobra.Command{
	Use:   "repohealth",
	Short: "A CLI tool to check the health of a GitHub repository.",
	Long: `repohealth inspects a GitHub repository and reports basic health
metrics: repository info, issue counts with the average time to close, and
commit activity. The report is printed as a table and saved as a JSON file.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runAnalyze(cmd); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("owner", "o", "", "Repository owner (falls back to REPO_OWNER, then prompts)")
	rootCmd.PersistentFlags().StringP("repo", "r", "", "Repository name (falls back to REPO_NAME, then prompts)")
	rootCmd.Flags().String("output", "", "Path for the JSON report (default "+config.DefaultReportPath+")")
	rootCmd.Flags().Int("page-size", config.DefaultPageSize, "Records fetched per page (max 100)")
}

func main() {
	Execute()
}
