package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/SAP-F-2025/curriculum-interview/internal/config"
	"github.com/SAP-F-2025/curriculum-interview/internal/utils"
)

var rootCmd = &cobra.Command{
	Use:   "interviewd",
	Short: "Curriculum interview service",
	Long: `interviewd runs the onboarding interview API: it walks a learner through a
short branching questionnaire and turns the answers into a personalized
curriculum plan.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "", "Log level (overrides LOG_LEVEL)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

// loadConfig reads the environment and builds the process logger.
func loadConfig(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.LogLevel = level
	}

	logger := utils.NewLogger(os.Stdout, cfg.Environment, cfg.LogLevel)
	slog.SetDefault(logger)
	return cfg, logger, nil
}
