package github

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/go-github/v57/github"
)

// ListClosedPullRequests fetches one page of closed pull requests, merged or not
func (c *Client) ListClosedPullRequests(ctx context.Context) ([]PullRequest, error) {
	opts := &github.PullRequestListOptions{
		State: "closed",
		ListOptions: github.ListOptions{
			PerPage: perPage,
		},
	}

	slog.Debug("GitHub API: Listing pull requests", "org", c.org, "repo", c.repo, "state", "closed")
	prs, _, err := c.client.PullRequests.List(ctx, c.org, c.repo, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list closed pull requests: %w", err)
	}

	allPRs := make([]PullRequest, 0, len(prs))
	for _, pr := range prs {
		allPRs = append(allPRs, PullRequest{
			Number:   pr.GetNumber(),
			Title:    pr.GetTitle(),
			Author:   pr.GetUser().GetLogin(),
			MergedAt: timestampPtr(pr.MergedAt),
			URL:      pr.GetHTMLURL(),
		})
	}

	return allPRs, nil
}
