package notes

import (
	"context"
	"fmt"
	"sort"

	"github.com/Masterminds/semver/v3"
)

// PreviousTag returns the highest semantic version tag strictly lower than current.
// Tags that are not semantic versions are ignored. ok is false when none qualifies.
func PreviousTag(tags []string, current string) (string, bool) {
	currentVersion, err := semver.NewVersion(current)
	if err != nil {
		return "", false
	}

	type candidate struct {
		tag     string
		version *semver.Version
	}
	var candidates []candidate

	for _, tag := range tags {
		v, err := semver.NewVersion(tag)
		if err != nil {
			continue
		}
		if v.LessThan(currentVersion) {
			candidates = append(candidates, candidate{tag: tag, version: v})
		}
	}

	if len(candidates) == 0 {
		return "", false
	}

	// Sort tags in descending order (most recent first)
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].version.GreaterThan(candidates[j].version)
	})

	return candidates[0].tag, true
}

// DetectPreviousTag lists repository tags and picks the one preceding current
func DetectPreviousTag(ctx context.Context, lister TagLister, current string) (string, bool, error) {
	tags, err := lister.ListTags(ctx)
	if err != nil {
		return "", false, fmt.Errorf("failed to detect previous tag: %w", err)
	}
	tag, ok := PreviousTag(tags, current)
	return tag, ok, nil
}
