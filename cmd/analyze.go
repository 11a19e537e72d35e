package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"repohealth/config"
	"repohealth/logger"
	"repohealth/service"
)

// runAnalyze performs the default analysis flow: load configuration, resolve
// the target repository and run the service once.
func runAnalyze(cmd *cobra.Command) error {
	cfg := config.NewConfig()
	if err := cfg.Load(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := logger.Initialize(cfg.LogLevel); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	if cmd.Flags().Changed("output") {
		cfg.ReportPath, _ = cmd.Flags().GetString("output")
	}
	if cmd.Flags().Changed("page-size") {
		cfg.PageSize, _ = cmd.Flags().GetInt("page-size")
		if cfg.PageSize <= 0 || cfg.PageSize > config.DefaultPageSize {
			cfg.PageSize = config.DefaultPageSize
		}
	}

	flagOwner, _ := cmd.Flags().GetString("owner")
	flagRepo, _ := cmd.Flags().GetString("repo")
	owner, name, err := resolveRepository(flagOwner, flagRepo, cfg, os.Stdin, os.Stdout)
	if err != nil {
		return err
	}

	svc, err := service.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize service: %w", err)
	}
	defer func() {
		if err := svc.Close(); err != nil {
			logger.Error("Error during service shutdown", zap.Error(err))
		}
	}()

	// Interrupts cancel any in-flight API request
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return svc.Run(ctx, owner, name)
}

// resolveRepository picks the target repository from flags, environment
// configuration, or interactive prompts, in that order.
func resolveRepository(flagOwner, flagRepo string, cfg *config.Config, in io.Reader, out io.Writer) (string, string, error) {
	owner := flagOwner
	if owner == "" {
		owner = cfg.RepoOwner
	}
	name := flagRepo
	if name == "" {
		name = cfg.RepoName
	}

	scanner := bufio.NewScanner(in)
	var err error
	if owner == "" {
		owner, err = promptValue(scanner, out, "Enter repository owner: ")
		if err != nil {
			return "", "", err
		}
	}
	if name == "" {
		name, err = promptValue(scanner, out, "Enter repository name: ")
		if err != nil {
			return "", "", err
		}
	}

	if owner == "" || name == "" {
		return "", "", fmt.Errorf("repository owner and name are required")
	}

	return owner, name, nil
}

// promptValue asks for a single line of input
func promptValue(scanner *bufio.Scanner, out io.Writer, prompt string) (string, error) {
	fmt.Fprint(out, prompt)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", fmt.Errorf("no input provided")
	}
	return strings.TrimSpace(scanner.Text()), nil
}
