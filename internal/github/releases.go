package github

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/go-github/v57/github"
)

// GetReleaseByTag fetches the release published for tag
func (c *Client) GetReleaseByTag(ctx context.Context, tag string) (*Release, error) {
	slog.Debug("GitHub API: Getting release by tag", "org", c.org, "repo", c.repo, "tag", tag)
	release, _, err := c.client.Repositories.GetReleaseByTag(ctx, c.org, c.repo, tag)
	if err != nil {
		return nil, fmt.Errorf("failed to get release %s: %w", tag, err)
	}
	return convertRelease(release), nil
}

// CreateRelease creates a new release
func (c *Client) CreateRelease(ctx context.Context, release NewRelease) (*Release, error) {
	req := &github.RepositoryRelease{
		TagName:    github.String(release.TagName),
		Name:       github.String(release.Name),
		Body:       github.String(release.Body),
		Draft:      github.Bool(release.Draft),
		Prerelease: github.Bool(release.Prerelease),
	}

	slog.Debug("GitHub API: Creating release", "org", c.org, "repo", c.repo, "tag", release.TagName, "prerelease", release.Prerelease)
	created, _, err := c.client.Repositories.CreateRelease(ctx, c.org, c.repo, req)
	if err != nil {
		// Callers inspect the raw error to recognize an existing release
		return nil, err
	}
	return convertRelease(created), nil
}

// UpdateReleaseBody replaces the body of an existing release and leaves every other field untouched
func (c *Client) UpdateReleaseBody(ctx context.Context, id int64, body string) (*Release, error) {
	req := &github.RepositoryRelease{
		Body: github.String(body),
	}

	slog.Debug("GitHub API: Updating release", "org", c.org, "repo", c.repo, "release_id", id)
	updated, _, err := c.client.Repositories.EditRelease(ctx, c.org, c.repo, id, req)
	if err != nil {
		return nil, fmt.Errorf("failed to update release %d: %w", id, err)
	}
	return convertRelease(updated), nil
}

func convertRelease(release *github.RepositoryRelease) *Release {
	return &Release{
		ID:          release.GetID(),
		TagName:     release.GetTagName(),
		Name:        release.GetName(),
		Body:        release.GetBody(),
		Draft:       release.GetDraft(),
		Prerelease:  release.GetPrerelease(),
		URL:         release.GetHTMLURL(),
		PublishedAt: timestampPtr(release.PublishedAt),
	}
}
