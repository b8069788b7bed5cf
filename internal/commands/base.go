package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/alan/release-notes/cmd"
	"github.com/alan/release-notes/internal/config"
	"github.com/alan/release-notes/internal/credentials"
	"github.com/alan/release-notes/internal/github"
)

// BaseCommand provides common fields and initialization for commands that talk to GitHub
type BaseCommand struct {
	ConfigFile   *string
	LoadConfig   func(string) (*cmd.Config, error)
	SaveConfig   func(string, *cmd.Config) error
	Getenv       func(string) string          // defaults to os.Getenv
	DetectRepo   func() (*GitRepoInfo, error) // defaults to the git remote of the working directory
	GitHubClient *github.Client
	Context      context.Context
	Config       *cmd.Config
	Credentials  *credentials.Credentials
}

// Init resolves configuration and authenticates as the GitHub App installation.
// Values in flags win over the environment, which wins over the config file.
func (bc *BaseCommand) Init(ctx context.Context, flags cmd.Config) error {
	if err := bc.ResolveConfig(flags); err != nil {
		return err
	}

	creds, err := credentials.New(bc.Config.AppID, bc.Config.InstallationID, bc.Config.PrivateKey)
	if err != nil {
		return err
	}
	bc.Credentials = creds

	if ctx == nil {
		ctx = context.Background()
	}
	bc.Context = ctx

	slog.Info("Creating GitHub App client", "app_id", creds.AppID, "installation_id", creds.InstallationID)
	client, err := github.NewAppClient(ctx, creds, github.AppOptions{
		Org:     bc.Config.Owner,
		Repo:    bc.Config.Repo,
		BaseURL: bc.Config.APIURL,
	})
	if err != nil {
		return cmd.ConfigError("create GitHub App client", err)
	}
	bc.GitHubClient = client

	return nil
}

// ResolveConfig merges the config file, environment and flags into bc.Config
func (bc *BaseCommand) ResolveConfig(flags cmd.Config) error {
	loaded, err := bc.LoadConfig(*bc.ConfigFile)
	if err != nil {
		return cmd.ConfigError("load configuration", err)
	}

	getenv := bc.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	resolved := *loaded
	resolved.Override(config.FromEnv(getenv))
	resolved.Override(flags)
	resolved.ApplyDefaults()

	if err := bc.fillRepository(&resolved); err != nil {
		return err
	}

	bc.Config = &resolved
	return nil
}

// fillRepository detects owner and repo from git when they are still missing
func (bc *BaseCommand) fillRepository(c *cmd.Config) error {
	if c.Owner != "" && c.Repo != "" {
		return nil
	}

	detect := bc.DetectRepo
	if detect == nil {
		detect = DetectGitRepoInfo
	}

	info, err := detect()
	if err != nil {
		return cmd.ConfigError("owner and repo are required (set GITHUB_OWNER/GITHUB_REPO, use --owner/--repo or run from a git repository)", err)
	}

	if c.Owner == "" {
		c.Owner = info.Org
		slog.Info("Auto-detected owner", "owner", c.Owner)
	}
	if c.Repo == "" {
		c.Repo = info.Repo
		slog.Info("Auto-detected repository", "repo", c.Repo)
	}

	return nil
}

// SaveConfigWithErrorHandling saves the config with standardized error handling
func (bc *BaseCommand) SaveConfigWithErrorHandling(config *cmd.Config) error {
	if err := bc.SaveConfig(*bc.ConfigFile, config); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}
	return nil
}
