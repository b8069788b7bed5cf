package github

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/go-github/v57/github"
)

// ListClosedIssues fetches one page of closed issues, updated since the given time when set.
// Pull requests are included and flagged with IsPullRequest.
func (c *Client) ListClosedIssues(ctx context.Context, since *time.Time) ([]Issue, error) {
	opts := &github.IssueListByRepoOptions{
		State: "closed",
		ListOptions: github.ListOptions{
			PerPage: perPage,
		},
	}
	if since != nil {
		opts.Since = *since
	}

	slog.Debug("GitHub API: Listing issues", "org", c.org, "repo", c.repo, "state", "closed", "since", since)
	issues, _, err := c.client.Issues.ListByRepo(ctx, c.org, c.repo, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list closed issues: %w", err)
	}

	allIssues := make([]Issue, 0, len(issues))
	for _, issue := range issues {
		allIssues = append(allIssues, convertIssue(issue))
	}

	return allIssues, nil
}

func convertIssue(issue *github.Issue) Issue {
	labels := make([]string, 0, len(issue.Labels))
	for _, label := range issue.Labels {
		labels = append(labels, label.GetName())
	}

	return Issue{
		Number:        issue.GetNumber(),
		Title:         issue.GetTitle(),
		Labels:        labels,
		Author:        issue.GetUser().GetLogin(),
		ClosedBy:      issue.GetClosedBy().GetLogin(),
		ClosedAt:      timestampPtr(issue.ClosedAt),
		URL:           issue.GetHTMLURL(),
		IsPullRequest: issue.IsPullRequest(),
	}
}

func timestampPtr(ts *github.Timestamp) *time.Time {
	if ts == nil {
		return nil
	}
	t := ts.Time
	return &t
}
