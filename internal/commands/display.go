package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/alan/release-notes/internal/notes"
)

// formatBanner creates the run header shown before the pipeline starts
func formatBanner(owner, repo, tag string) string {
	var msg strings.Builder

	msg.WriteString("🚀 Starting Release Notes Generator\n")
	fmt.Fprintf(&msg, "📦 Repository: %s/%s\n", owner, repo)
	fmt.Fprintf(&msg, "🏷️  Tag: %s\n", tag)

	return msg.String()
}

// DisplayBanner prints the run header
func DisplayBanner(w io.Writer, owner, repo, tag string) {
	fmt.Fprint(w, formatBanner(owner, repo, tag))
}

// formatPublication creates the success message for a published release
func formatPublication(publication *notes.Publication) string {
	var msg strings.Builder

	if publication.Outcome == notes.OutcomeConflicted {
		msg.WriteString("✅ Release updated successfully!\n")
	} else {
		msg.WriteString("✅ Release created successfully!\n")
	}
	fmt.Fprintf(&msg, "🔗 URL: %s\n", publication.Release.URL)

	return msg.String()
}

// DisplayResult prints the outcome of a pipeline run
func DisplayResult(w io.Writer, result *notes.Result) {
	if result.Publication != nil {
		fmt.Fprint(w, formatPublication(result.Publication))
	} else {
		fmt.Fprintln(w, "📝 Dry run: release was not published")
	}
	fmt.Fprintln(w, "\n✅ Release notes generation complete!")
}
