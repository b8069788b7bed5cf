package notes

import (
	"fmt"
	"strings"
	"time"

	"github.com/alan/release-notes/internal/github"
)

// dateLayout renders dates as month/day/year without padding
const dateLayout = "1/2/2006"

// NoChangesLine is rendered instead of any section when nothing was closed
const NoChangesLine = "No issues or pull requests were closed in this release."

// Section headings in render order
const (
	HeadingFeatures     = "### ✨ New Features"
	HeadingBugFixes     = "### 🐛 Bug Fixes"
	HeadingMerged       = "### 🔀 Merged Pull Requests"
	HeadingOther        = "### 📋 Other Changes"
	HeadingContributors = "### 👥 Contributors"
)

// Header carries the release level values shown above the sections
type Header struct {
	Tag         string
	PreviousTag string
	Date        time.Time
}

// Render builds the markdown release notes. Empty sections are left out.
// The output depends only on its arguments.
func Render(h Header, b Buckets) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# Release %s\n\n", h.Tag)
	fmt.Fprintf(&sb, "Released on %s\n\n", h.Date.Format(dateLayout))

	if h.PreviousTag != "" {
		fmt.Fprintf(&sb, "## Changes since %s\n\n", h.PreviousTag)
	}

	writeIssueSection(&sb, HeadingFeatures, b.Features)
	writeIssueSection(&sb, HeadingBugFixes, b.BugFixes)

	if len(b.Merged) > 0 {
		sb.WriteString(HeadingMerged + "\n\n")
		for _, pr := range b.Merged {
			fmt.Fprintf(&sb, "- %s (#%d) by @%s\n", pr.Title, pr.Number, pr.Author)
		}
		sb.WriteString("\n")
	}

	writeIssueSection(&sb, HeadingOther, b.Other)

	if b.Empty() {
		sb.WriteString(NoChangesLine + "\n\n")
	}

	if len(b.Contributors) > 0 {
		mentions := make([]string, 0, len(b.Contributors))
		for _, login := range b.Contributors {
			mentions = append(mentions, "@"+login)
		}
		sb.WriteString(HeadingContributors + "\n\n")
		fmt.Fprintf(&sb, "Thank you to all contributors: %s\n\n", strings.Join(mentions, ", "))
	}

	return sb.String()
}

func writeIssueSection(sb *strings.Builder, heading string, issues []github.Issue) {
	if len(issues) == 0 {
		return
	}
	sb.WriteString(heading + "\n\n")
	for _, issue := range issues {
		fmt.Fprintf(sb, "- %s (#%d)\n", issue.Title, issue.Number)
	}
	sb.WriteString("\n")
}
