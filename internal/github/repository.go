package github

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/go-github/v57/github"
)

// ListTags gets all tags from the repository
func (c *Client) ListTags(ctx context.Context) ([]string, error) {
	tags, err := paginatedList(func(page int) ([]*github.RepositoryTag, *github.Response, error) {
		opts := &github.ListOptions{
			PerPage: perPage,
			Page:    page,
		}
		slog.Debug("GitHub API: Listing tags", "org", c.org, "repo", c.repo, "page", page)
		return c.client.Repositories.ListTags(ctx, c.org, c.repo, opts)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}

	// Convert to string slice
	tagNames := make([]string, 0, len(tags))
	for _, tag := range tags {
		tagNames = append(tagNames, tag.GetName())
	}

	return tagNames, nil
}
