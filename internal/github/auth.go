package github

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/alan/release-notes/internal/credentials"
	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
)

// tokenReuseWindow bounds how long oauth2 reuses a token before asking the
// installation transport again. The transport caches and refreshes the real
// installation token itself.
const tokenReuseWindow = 5 * time.Minute

// AppOptions configures a GitHub App backed client
type AppOptions struct {
	Org     string
	Repo    string
	BaseURL string // GitHub Enterprise API URL, empty for github.com
}

// NewAppClient creates a client authenticated as a GitHub App installation
func NewAppClient(ctx context.Context, creds *credentials.Credentials, opts AppOptions) (*Client, error) {
	appsTransport, err := ghinstallation.NewAppsTransport(http.DefaultTransport, creds.AppID, []byte(creds.PrivateKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create app transport: %w", err)
	}

	installationTransport := ghinstallation.NewFromAppsTransport(appsTransport, creds.InstallationID)

	ts := &installationTokenSource{ctx: ctx, transport: installationTransport}
	tc := oauth2.NewClient(ctx, ts)

	client := github.NewClient(tc)
	apps := github.NewClient(&http.Client{Transport: appsTransport})

	if opts.BaseURL != "" {
		if client, err = client.WithEnterpriseURLs(opts.BaseURL, opts.BaseURL); err != nil {
			return nil, fmt.Errorf("invalid GitHub API URL %q: %w", opts.BaseURL, err)
		}
		if apps, err = apps.WithEnterpriseURLs(opts.BaseURL, opts.BaseURL); err != nil {
			return nil, fmt.Errorf("invalid GitHub API URL %q: %w", opts.BaseURL, err)
		}

		// Token exchange must hit the same /api/v3 root as the API calls
		base := enterpriseBaseURL(client)
		appsTransport.BaseURL = base
		installationTransport.BaseURL = base
	}

	return &Client{
		client:         client,
		apps:           apps,
		org:            opts.Org,
		repo:           opts.Repo,
		installationID: creds.InstallationID,
	}, nil
}

// enterpriseBaseURL returns the normalized API root of client without a trailing slash
func enterpriseBaseURL(client *github.Client) string {
	return strings.TrimSuffix(client.BaseURL.String(), "/")
}

// installationTokenSource adapts an installation transport to oauth2
type installationTokenSource struct {
	ctx       context.Context
	transport *ghinstallation.Transport
}

func (s *installationTokenSource) Token() (*oauth2.Token, error) {
	token, err := s.transport.Token(s.ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to obtain installation token: %w", err)
	}
	return &oauth2.Token{
		AccessToken: token,
		Expiry:      time.Now().Add(tokenReuseWindow),
	}, nil
}

// VerifyInstallation confirms the installation resolves and returns the account it acts for
func (c *Client) VerifyInstallation(ctx context.Context) (string, error) {
	slog.Debug("GitHub API: Getting installation", "installation_id", c.installationID)
	installation, _, err := c.apps.Apps.GetInstallation(ctx, c.installationID)
	if err != nil {
		return "", fmt.Errorf("failed to get installation %d: %w", c.installationID, err)
	}
	return installation.GetAccount().GetLogin(), nil
}
