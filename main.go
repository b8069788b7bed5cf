// package main is the entry point for the release-notes tool
package main

import (
	"log/slog"
	"os"

	configcmd "github.com/alan/release-notes/cmd/config"
	"github.com/alan/release-notes/cmd/generate"
	greetcmd "github.com/alan/release-notes/cmd/greet"
	"github.com/alan/release-notes/internal/commands"
	"github.com/alan/release-notes/internal/config"
	"github.com/spf13/cobra"
)

func main() {
	var configFile string
	var logLevel string
	var logFormat string

	rootCmd := &cobra.Command{
		Use:   "release-notes",
		Short: "Generate release notes and publish them as GitHub releases",
		Long: `release-notes is a CLI tool that compiles release notes from the issues
closed and pull requests merged since the previous release and publishes them
as a GitHub release, authenticating as a GitHub App installation.`,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			setupLogger(logLevel, logFormat)
		},
	}

	// Add global flags
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "release-notes.yaml", "Configuration file path")
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVarP(&logFormat, "log-format", "f", "text", "Log format (text, json)")

	rootCmd.AddCommand(generate.NewGenerateCmd(&configFile, config.LoadOptionalConfig))
	rootCmd.AddCommand(configcmd.NewConfigCmd(&configFile, config.LoadConfig, config.SaveConfig))
	rootCmd.AddCommand(greetcmd.NewGreetCmd())

	if err := rootCmd.Execute(); err != nil {
		commands.ReportError(os.Stderr, err)
		os.Exit(1)
	}
}

func setupLogger(level, format string) {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})
	} else {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})
	}

	slog.SetDefault(slog.New(handler))
}
