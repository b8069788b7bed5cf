// Package config implements the config command for initializing and updating release-notes configuration.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alan/release-notes/cmd"
	"github.com/alan/release-notes/internal/commands"
	"github.com/spf13/cobra"
)

// ConfigCommand encapsulates the config command with common functionality
type ConfigCommand struct {
	commands.BaseCommand
	Owner          string
	Repo           string
	AppID          string
	InstallationID string
	APIURL         string
	Out            io.Writer
}

// NewConfigCmd creates and returns the config command
func NewConfigCmd(globalConfigFile *string, loadConfig func(string) (*cmd.Config, error), saveConfig func(string, *cmd.Config) error) *cobra.Command {
	configCmd := &ConfigCommand{}

	cobraCmd := &cobra.Command{
		Use:   "config",
		Short: "Initialize a new release-notes.yaml configuration file",
		Long: `Config creates or updates release-notes.yaml with the repository and
GitHub App identifiers used by generate.

When run from a git repository, the owner and repository are detected from the
git remote origin. The app private key is never written to the file; provide it
through APP_PRIVATE_KEY when generating.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cobraCmd *cobra.Command, _ []string) error {
			configCmd.ConfigFile = globalConfigFile
			configCmd.LoadConfig = loadConfig
			configCmd.SaveConfig = saveConfig
			configCmd.Out = cobraCmd.OutOrStdout()

			return configCmd.Run()
		},
	}

	addConfigFlags(cobraCmd, configCmd)
	return cobraCmd
}

// addConfigFlags adds all flags to the config command
func addConfigFlags(cobraCmd *cobra.Command, cc *ConfigCommand) {
	cobraCmd.Flags().StringVarP(&cc.Owner, "owner", "o", "", "GitHub organization or username (auto-detected from git if available)")
	cobraCmd.Flags().StringVarP(&cc.Repo, "repo", "r", "", "GitHub repository name (auto-detected from git if available)")
	cobraCmd.Flags().StringVar(&cc.AppID, "app-id", "", "GitHub App ID")
	cobraCmd.Flags().StringVar(&cc.InstallationID, "installation-id", "", "GitHub App installation ID")
	cobraCmd.Flags().StringVar(&cc.APIURL, "api-url", "", "GitHub Enterprise API URL (e.g. https://ghe.example.com/api/v3/)")
}

// Run creates or updates the config file, detecting owner and repo from git when missing
func (cc *ConfigCommand) Run() error {
	config, isUpdate := loadOrCreateConfig(*cc.ConfigFile, cc.LoadConfig)

	config.Override(cmd.Config{
		Owner:          cc.Owner,
		Repo:           cc.Repo,
		AppID:          cc.AppID,
		InstallationID: cc.InstallationID,
		APIURL:         cc.APIURL,
	})

	if config.Owner == "" || config.Repo == "" {
		detect := cc.DetectRepo
		if detect == nil {
			detect = commands.DetectGitRepoInfo
		}
		if gitInfo, err := detect(); err == nil {
			if config.Owner == "" {
				config.Owner = gitInfo.Org
				slog.Info("Auto-detected owner", "owner", config.Owner)
			}
			if config.Repo == "" {
				config.Repo = gitInfo.Repo
				slog.Info("Auto-detected repository", "repo", config.Repo)
			}
		} else {
			slog.Debug("Git detection unavailable", "error", err)
		}
	}

	if config.Owner == "" {
		return fmt.Errorf("owner is required (use --owner flag or run from a git repository)")
	}
	if config.Repo == "" {
		return fmt.Errorf("repository is required (use --repo flag or run from a git repository)")
	}

	if err := cc.SaveConfigWithErrorHandling(config); err != nil {
		return err
	}

	out := cc.Out
	if out == nil {
		out = os.Stdout
	}
	displayConfigSuccess(out, *cc.ConfigFile, config, isUpdate)
	return nil
}

// displayConfigSuccess shows the configuration success message
func displayConfigSuccess(out io.Writer, configFile string, config *cmd.Config, isUpdate bool) {
	action := "initialized"
	if isUpdate {
		action = "updated"
	}
	fmt.Fprintf(out, "Successfully %s %s with:\n", action, configFile)
	fmt.Fprintf(out, "  Owner: %s\n", config.Owner)
	fmt.Fprintf(out, "  Repository: %s\n", config.Repo)
	if config.AppID != "" {
		fmt.Fprintf(out, "  App ID: %s\n", config.AppID)
	}
	if config.InstallationID != "" {
		fmt.Fprintf(out, "  Installation ID: %s\n", config.InstallationID)
	}
	if config.APIURL != "" {
		fmt.Fprintf(out, "  API URL: %s\n", config.APIURL)
	}
}

// loadOrCreateConfig loads existing config or creates a new one
func loadOrCreateConfig(configFile string, loadConfig func(string) (*cmd.Config, error)) (*cmd.Config, bool) {
	if config, err := loadConfig(configFile); err == nil {
		return config, true
	}
	return &cmd.Config{}, false
}
