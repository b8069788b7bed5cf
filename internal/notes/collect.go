package notes

import (
	"context"
	"log/slog"
	"time"

	"github.com/alan/release-notes/cmd"
	"github.com/alan/release-notes/internal/github"
)

// Changes are the closed issues and merged pull requests that go into a release
type Changes struct {
	Issues    []github.Issue
	MergedPRs []github.PullRequest
	Since     *time.Time // publish time of the previous release, nil when unknown
}

// Collect gathers the changes since previousTag. An empty or unresolvable
// previousTag means no date bound. Only the first page of each listing is read.
func Collect(ctx context.Context, api API, previousTag string) (*Changes, error) {
	since := resolveSince(ctx, api, previousTag)

	slog.Info("Fetching closed issues")
	issues, err := api.ListClosedIssues(ctx, since)
	if err != nil {
		return nil, cmd.FetchError("list closed issues", err)
	}
	actualIssues := filterIssues(issues)
	slog.Info("Found closed issues", "count", len(actualIssues))

	slog.Info("Fetching merged pull requests")
	prs, err := api.ListClosedPullRequests(ctx)
	if err != nil {
		return nil, cmd.FetchError("list closed pull requests", err)
	}
	mergedPRs := filterMerged(prs, since)
	slog.Info("Found merged pull requests", "count", len(mergedPRs))

	return &Changes{
		Issues:    actualIssues,
		MergedPRs: mergedPRs,
		Since:     since,
	}, nil
}

// resolveSince returns the publish time of the previous release.
// Lookup failures are not fatal: the run continues unfiltered.
func resolveSince(ctx context.Context, api API, previousTag string) *time.Time {
	if previousTag == "" {
		return nil
	}

	release, err := api.GetReleaseByTag(ctx, previousTag)
	if err != nil {
		slog.Warn("Previous tag not found, including all items", "tag", previousTag, "error", err)
		return nil
	}
	if release.PublishedAt == nil {
		slog.Warn("Previous release has no publish date, including all items", "tag", previousTag)
		return nil
	}

	slog.Info("Filtering changes since previous release", "tag", previousTag, "since", release.PublishedAt.Format(time.RFC3339))
	return release.PublishedAt
}

// filterIssues drops pull requests listed by the issues endpoint
func filterIssues(issues []github.Issue) []github.Issue {
	var filtered []github.Issue
	for _, issue := range issues {
		if issue.IsPullRequest {
			continue
		}
		filtered = append(filtered, issue)
	}
	return filtered
}

// filterMerged keeps merged pull requests, and when since is set only those merged strictly after it.
// The pull request listing has no server side date filter, so this runs client side.
func filterMerged(prs []github.PullRequest, since *time.Time) []github.PullRequest {
	var merged []github.PullRequest
	for _, pr := range prs {
		if pr.MergedAt == nil {
			continue
		}
		if since != nil && !pr.MergedAt.After(*since) {
			continue
		}
		merged = append(merged, pr)
	}
	return merged
}
