// Package notes compiles release notes from closed issues and merged pull requests
// and publishes them as a GitHub release.
//
// The pipeline runs strictly forward: verify the app installation, collect
// changes since the previous release, classify them, render markdown and
// publish. The only step that looks back is the publisher, which updates an
// existing release when creating one reports that the tag is already taken.
package notes

import (
	"context"
	"time"

	"github.com/alan/release-notes/internal/github"
)

// API is the subset of the GitHub API the pipeline depends on
type API interface {
	VerifyInstallation(ctx context.Context) (string, error)
	GetReleaseByTag(ctx context.Context, tag string) (*github.Release, error)
	ListClosedIssues(ctx context.Context, since *time.Time) ([]github.Issue, error)
	ListClosedPullRequests(ctx context.Context) ([]github.PullRequest, error)
	CreateRelease(ctx context.Context, release github.NewRelease) (*github.Release, error)
	UpdateReleaseBody(ctx context.Context, id int64, body string) (*github.Release, error)
}

// TagLister lists repository tags for previous tag detection
type TagLister interface {
	ListTags(ctx context.Context) ([]string, error)
}
