package notes

import (
	"context"
	"errors"
	"time"

	"github.com/alan/release-notes/internal/github"
)

// fakeAPI is an in-memory API that records the calls made against it
type fakeAPI struct {
	account   string
	verifyErr error

	releases   map[string]*github.Release
	releaseErr error

	issues    []github.Issue
	issuesErr error
	prs       []github.PullRequest
	prsErr    error

	createErr error
	updateErr error

	tags    []string
	tagsErr error

	calls      []string
	issueSince *time.Time
	created    []github.NewRelease
	updatedID  int64
	updateBody string
}

var errNotFound = errors.New("404 Not Found")

func (f *fakeAPI) VerifyInstallation(_ context.Context) (string, error) {
	f.calls = append(f.calls, "verify")
	return f.account, f.verifyErr
}

func (f *fakeAPI) GetReleaseByTag(_ context.Context, tag string) (*github.Release, error) {
	f.calls = append(f.calls, "get:"+tag)
	if f.releaseErr != nil {
		return nil, f.releaseErr
	}
	release, ok := f.releases[tag]
	if !ok {
		return nil, errNotFound
	}
	return release, nil
}

func (f *fakeAPI) ListClosedIssues(_ context.Context, since *time.Time) ([]github.Issue, error) {
	f.calls = append(f.calls, "issues")
	f.issueSince = since
	return f.issues, f.issuesErr
}

func (f *fakeAPI) ListClosedPullRequests(_ context.Context) ([]github.PullRequest, error) {
	f.calls = append(f.calls, "pulls")
	return f.prs, f.prsErr
}

func (f *fakeAPI) CreateRelease(_ context.Context, release github.NewRelease) (*github.Release, error) {
	f.calls = append(f.calls, "create")
	f.created = append(f.created, release)
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &github.Release{
		ID:         1,
		TagName:    release.TagName,
		Name:       release.Name,
		Body:       release.Body,
		Prerelease: release.Prerelease,
		URL:        "https://github.com/octo/demo/releases/tag/" + release.TagName,
	}, nil
}

func (f *fakeAPI) UpdateReleaseBody(_ context.Context, id int64, body string) (*github.Release, error) {
	f.calls = append(f.calls, "update")
	f.updatedID = id
	f.updateBody = body
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	for _, release := range f.releases {
		if release.ID == id {
			updated := *release
			updated.Body = body
			return &updated, nil
		}
	}
	return nil, errNotFound
}

// taggedFakeAPI also implements TagLister
type taggedFakeAPI struct {
	*fakeAPI
}

func (f taggedFakeAPI) ListTags(_ context.Context) ([]string, error) {
	f.calls = append(f.calls, "tags")
	return f.tags, f.tagsErr
}

func timePtr(t time.Time) *time.Time {
	return &t
}
