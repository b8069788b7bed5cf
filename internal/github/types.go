package github

import "time"

// Issue represents a closed issue from GitHub
type Issue struct {
	Number        int
	Title         string
	Labels        []string
	Author        string
	ClosedBy      string // empty when GitHub does not report a closer
	ClosedAt      *time.Time
	URL           string
	IsPullRequest bool // the issues endpoint also lists pull requests
}

// PullRequest represents a pull request from GitHub
type PullRequest struct {
	Number   int
	Title    string
	Author   string
	MergedAt *time.Time // nil when closed without merging
	URL      string
}

// Release represents a GitHub release
type Release struct {
	ID          int64
	TagName     string
	Name        string
	Body        string
	Draft       bool
	Prerelease  bool
	URL         string
	PublishedAt *time.Time
}

// NewRelease holds the fields sent when creating a release
type NewRelease struct {
	TagName    string
	Name       string
	Body       string
	Draft      bool
	Prerelease bool
}
