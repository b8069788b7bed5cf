package notes

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/alan/release-notes/cmd"
	"github.com/alan/release-notes/internal/github"
)

// prereleaseMarkers flag a tag as a prerelease when found anywhere in it
var prereleaseMarkers = []string{"beta", "alpha", "rc"}

// Outcome is the result of trying to create a release
type Outcome int

const (
	// OutcomeCreated means the release was created
	OutcomeCreated Outcome = iota
	// OutcomeConflicted means a release for the tag already exists
	OutcomeConflicted
	// OutcomeFailed means creation failed for any other reason
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCreated:
		return "created"
	case OutcomeConflicted:
		return "updated"
	default:
		return "failed"
	}
}

// Publication describes the release left on GitHub after publishing
type Publication struct {
	Outcome Outcome // OutcomeCreated or OutcomeConflicted
	Release *github.Release
}

// IsPrerelease reports whether tag contains beta, alpha or rc (case-sensitive)
func IsPrerelease(tag string) bool {
	for _, marker := range prereleaseMarkers {
		if strings.Contains(tag, marker) {
			return true
		}
	}
	return false
}

// createOutcome maps the error of a create call to an outcome
func createOutcome(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeCreated
	case github.IsAlreadyExists(err):
		return OutcomeConflicted
	default:
		return OutcomeFailed
	}
}

// Publish creates the release for tag, or replaces the body of the existing one.
// Nothing guards against a concurrent run between the failed create and the update.
func Publish(ctx context.Context, api API, tag, body string) (*Publication, error) {
	slog.Info("Creating release", "tag", tag)

	created, err := api.CreateRelease(ctx, github.NewRelease{
		TagName:    tag,
		Name:       fmt.Sprintf("Release %s", tag),
		Body:       body,
		Draft:      false,
		Prerelease: IsPrerelease(tag),
	})

	switch createOutcome(err) {
	case OutcomeCreated:
		return &Publication{Outcome: OutcomeCreated, Release: created}, nil
	case OutcomeConflicted:
		slog.Warn("Release already exists, updating", "tag", tag)
		updated, err := updateExisting(ctx, api, tag, body)
		if err != nil {
			return nil, err
		}
		return &Publication{Outcome: OutcomeConflicted, Release: updated}, nil
	default:
		return nil, cmd.PublishError("create release "+tag, err)
	}
}

func updateExisting(ctx context.Context, api API, tag, body string) (*github.Release, error) {
	existing, err := api.GetReleaseByTag(ctx, tag)
	if err != nil {
		return nil, cmd.PublishError("get existing release "+tag, err)
	}

	updated, err := api.UpdateReleaseBody(ctx, existing.ID, body)
	if err != nil {
		return nil, cmd.PublishError("update release "+tag, err)
	}
	return updated, nil
}
