package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"repohealth/config"
	"repohealth/db"
	"repohealth/logger"
	"repohealth/report"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the stored report history for a repository",
	Long: `history summarizes the archived analysis runs for a repository and
prints the most recent stored report. Archiving is enabled with
HISTORY_ENABLED and the POSTGRES_* connection settings.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runHistory(cmd); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command) error {
	cfg := config.NewConfig()
	if err := cfg.Load(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := logger.Initialize(cfg.LogLevel); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	flagOwner, _ := cmd.Flags().GetString("owner")
	flagRepo, _ := cmd.Flags().GetString("repo")
	owner, name, err := resolveRepository(flagOwner, flagRepo, cfg, os.Stdin, os.Stdout)
	if err != nil {
		return err
	}

	database, err := db.New()
	if err != nil {
		return fmt.Errorf("failed to open report history: %w", err)
	}
	defer database.Close()

	ctx := cmd.Context()
	stats, err := database.GetReportStats(ctx, owner, name)
	if err != nil {
		return err
	}

	latest, err := database.GetLatestReport(ctx, owner, name)
	if err != nil {
		return err
	}

	fmt.Printf("Stored reports for %s/%s: %d\n", owner, name, stats.TotalReports)
	fmt.Printf("First run: %s\n", stats.FirstRun.Format(time.RFC3339))
	fmt.Printf("Last run:  %s\n", stats.LastRun.Format(time.RFC3339))
	fmt.Println()
	fmt.Printf("Latest report (generated %s):\n\n", latest.GeneratedAt.Format(time.RFC3339))

	return report.NewRenderer(os.Stdout, true).Render(latest)
}
