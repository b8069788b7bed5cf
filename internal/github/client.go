package github

import (
	"net/http"

	"github.com/google/go-github/v57/github"
)

// perPage is the page size for every listing call
const perPage = 100

// Client wraps the GitHub API client for a single repository
type Client struct {
	client         *github.Client // installation scoped
	apps           *github.Client // app (JWT) scoped, used for installation lookups
	org            string
	repo           string
	installationID int64
}

// NewClient creates a client that sends every request through httpClient.
// The same client serves installation and app endpoints.
func NewClient(httpClient *http.Client, org, repo string) *Client {
	gh := github.NewClient(httpClient)
	return &Client{
		client: gh,
		apps:   gh,
		org:    org,
		repo:   repo,
	}
}

// Org returns the repository owner the client is bound to
func (c *Client) Org() string {
	return c.org
}

// Repo returns the repository name the client is bound to
func (c *Client) Repo() string {
	return c.repo
}
