// Package generate implements the generate command that builds and publishes release notes.
package generate

import (
	"io"
	"os"

	"github.com/alan/release-notes/cmd"
	"github.com/alan/release-notes/internal/commands"
	"github.com/alan/release-notes/internal/notes"
	"github.com/spf13/cobra"
)

// GenerateCommand encapsulates the generate command with common functionality
type GenerateCommand struct {
	commands.BaseCommand
	Flags        cmd.Config
	AutoPrevious bool
	DryRun       bool
	Out          io.Writer
}

// NewGenerateCmd creates the generate command
func NewGenerateCmd(globalConfigFile *string, loadConfig func(string) (*cmd.Config, error)) *cobra.Command {
	generateCmd := &GenerateCommand{}

	cobraCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate release notes and publish them as a GitHub release",
		Long: `Generate collects the issues closed and pull requests merged since the
previous release, groups them into features, bug fixes and other changes, and
publishes the result as the GitHub release for the tag. When a release for the
tag already exists its body is replaced.

Authentication uses a GitHub App installation. APP_ID, INSTALLATION_ID and
APP_PRIVATE_KEY must be set in the environment (the key may be PEM or
base64-encoded PEM).

Examples:
  release-notes generate --tag v1.2.0 --previous-tag v1.1.0
  release-notes generate --tag v1.2.0 --auto-previous
  release-notes generate --dry-run`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cobraCmd *cobra.Command, _ []string) error {
			generateCmd.ConfigFile = globalConfigFile
			generateCmd.LoadConfig = loadConfig
			generateCmd.Out = cobraCmd.OutOrStdout()
			if err := generateCmd.Init(cobraCmd.Context(), generateCmd.Flags); err != nil {
				return err
			}

			return generateCmd.Run()
		},
	}

	flags := cobraCmd.Flags()
	flags.StringVarP(&generateCmd.Flags.Owner, "owner", "o", "", "Repository owner (auto-detected from git if available)")
	flags.StringVarP(&generateCmd.Flags.Repo, "repo", "r", "", "Repository name (auto-detected from git if available)")
	flags.StringVarP(&generateCmd.Flags.TagName, "tag", "t", "", "Tag of the release to publish (default \""+cmd.DefaultTag+"\")")
	flags.StringVarP(&generateCmd.Flags.PreviousTag, "previous-tag", "p", "", "Tag of the previous release; only changes after it are included")
	flags.BoolVar(&generateCmd.AutoPrevious, "auto-previous", false, "Detect the previous tag from repository tags when --previous-tag is not set")
	flags.BoolVar(&generateCmd.DryRun, "dry-run", false, "Render the release notes without publishing them")

	return cobraCmd
}

// Run executes the generate command
func (gc *GenerateCommand) Run() error {
	out := gc.Out
	if out == nil {
		out = os.Stdout
	}

	commands.DisplayBanner(out, gc.GitHubClient.Org(), gc.GitHubClient.Repo(), gc.Config.TagName)

	result, err := notes.Run(gc.Context, gc.GitHubClient, notes.Options{
		Tag:            gc.Config.TagName,
		PreviousTag:    gc.Config.PreviousTag,
		DetectPrevious: gc.AutoPrevious,
		DryRun:         gc.DryRun,
		Out:            out,
	})
	if err != nil {
		return err
	}

	commands.DisplayResult(out, result)
	return nil
}
