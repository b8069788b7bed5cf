package notes

import (
	"strings"

	"github.com/alan/release-notes/internal/github"
)

// Category is the release notes section an issue belongs to
type Category int

const (
	// CategoryOther holds issues without a bug or feature label
	CategoryOther Category = iota
	// CategoryBugFix holds issues with a label containing "bug"
	CategoryBugFix
	// CategoryFeature holds issues with a label containing "feature" or "enhancement"
	CategoryFeature
)

// Buckets are the classified changes of a release
type Buckets struct {
	Features     []github.Issue
	BugFixes     []github.Issue
	Other        []github.Issue
	Merged       []github.PullRequest
	Contributors []string // logins, deduplicated, first-seen order
}

// Empty reports whether there is nothing to list
func (b Buckets) Empty() bool {
	return len(b.Features) == 0 && len(b.BugFixes) == 0 && len(b.Other) == 0 && len(b.Merged) == 0
}

// Classify sorts issues into exactly one of features, bug fixes or other,
// and collects contributors from pull request authors and issue closers.
func Classify(issues []github.Issue, merged []github.PullRequest) Buckets {
	var b Buckets

	for _, issue := range issues {
		switch ClassifyLabels(issue.Labels) {
		case CategoryBugFix:
			b.BugFixes = append(b.BugFixes, issue)
		case CategoryFeature:
			b.Features = append(b.Features, issue)
		default:
			b.Other = append(b.Other, issue)
		}
	}

	b.Merged = merged
	b.Contributors = contributors(issues, merged)

	return b
}

// ClassifyLabels matches label names case-insensitively by substring.
// The bug check wins over the feature check.
func ClassifyLabels(labels []string) Category {
	if anyLabelContains(labels, "bug") {
		return CategoryBugFix
	}
	if anyLabelContains(labels, "feature", "enhancement") {
		return CategoryFeature
	}
	return CategoryOther
}

func anyLabelContains(labels []string, needles ...string) bool {
	for _, label := range labels {
		name := strings.ToLower(label)
		for _, needle := range needles {
			if strings.Contains(name, needle) {
				return true
			}
		}
	}
	return false
}

func contributors(issues []github.Issue, merged []github.PullRequest) []string {
	seen := make(map[string]bool)
	var logins []string

	add := func(login string) {
		if login == "" || seen[login] {
			return
		}
		seen[login] = true
		logins = append(logins, login)
	}

	for _, pr := range merged {
		add(pr.Author)
	}
	for _, issue := range issues {
		add(issue.ClosedBy)
	}

	return logins
}
