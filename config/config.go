package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// DefaultPageSize is the number of records requested per fetch, which is also
// the maximum the hosting API allows per page.
const DefaultPageSize = 100

// DefaultReportPath is where the serialized report lands unless overridden.
const DefaultReportPath = "repo_health_report.json"

// Config holds all configuration for the application
type Config struct {
	GitHubToken    string
	RepoOwner      string
	RepoName       string
	PageSize       int
	ReportPath     string
	LogLevel       string
	HistoryEnabled bool
}

// NewConfig creates a new Config instance
func NewConfig() *Config {
	return &Config{}
}

// Load loads configuration from environment variables
func (c *Config) Load() error {
	// Set up Viper
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Read .env file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Required fields
	c.GitHubToken = viper.GetString("GITHUB_TOKEN")
	if c.GitHubToken == "" {
		return fmt.Errorf("GITHUB_TOKEN is required")
	}

	// Optional prompt defaults; the command layer asks interactively when
	// these are empty.
	c.RepoOwner = viper.GetString("REPO_OWNER")
	c.RepoName = viper.GetString("REPO_NAME")

	// Optional fields with defaults
	c.PageSize = viper.GetInt("PAGE_SIZE")
	if c.PageSize <= 0 || c.PageSize > DefaultPageSize {
		c.PageSize = DefaultPageSize
	}

	c.ReportPath = viper.GetString("REPORT_PATH")
	if c.ReportPath == "" {
		c.ReportPath = DefaultReportPath
	}

	c.LogLevel = viper.GetString("LOG_LEVEL")
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}

	c.HistoryEnabled = viper.GetBool("HISTORY_ENABLED")

	return nil
}
