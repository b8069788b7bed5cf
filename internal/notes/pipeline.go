package notes

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/alan/release-notes/cmd"
)

const ruleWidth = 80

// Options configure a single pipeline run
type Options struct {
	Tag            string
	PreviousTag    string
	DetectPrevious bool             // derive PreviousTag from repository tags when empty
	DryRun         bool             // render without publishing
	Now            func() time.Time // defaults to time.Now
	Out            io.Writer        // receives the rendered notes, defaults to io.Discard
}

// Result is what a run produced
type Result struct {
	Notes       string
	Changes     *Changes
	Publication *Publication // nil on dry runs
}

// Run verifies the installation, collects changes, renders notes and publishes them
func Run(ctx context.Context, api API, opts Options) (*Result, error) {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	out := opts.Out
	if out == nil {
		out = io.Discard
	}

	slog.Info("Authenticating with GitHub App")
	account, err := api.VerifyInstallation(ctx)
	if err != nil {
		return nil, cmd.AuthError("verify installation", err)
	}
	slog.Info("Authenticated", "account", account)

	previousTag := opts.PreviousTag
	if previousTag == "" && opts.DetectPrevious {
		previousTag = detectPrevious(ctx, api, opts.Tag)
	}

	changes, err := Collect(ctx, api, previousTag)
	if err != nil {
		return nil, err
	}

	slog.Info("Generating release notes")
	buckets := Classify(changes.Issues, changes.MergedPRs)
	notes := Render(Header{
		Tag:         opts.Tag,
		PreviousTag: previousTag,
		Date:        now(),
	}, buckets)

	rule := strings.Repeat("─", ruleWidth)
	fmt.Fprintf(out, "\n📄 Generated Release Notes:\n%s\n%s\n%s\n", rule, notes, rule)

	result := &Result{Notes: notes, Changes: changes}

	if opts.DryRun {
		slog.Info("Dry run, skipping publish", "tag", opts.Tag)
		return result, nil
	}

	publication, err := Publish(ctx, api, opts.Tag, notes)
	if err != nil {
		return nil, err
	}
	result.Publication = publication

	slog.Info("Release published", "tag", opts.Tag, "outcome", publication.Outcome.String(), "url", publication.Release.URL)
	return result, nil
}

// detectPrevious falls back to no previous tag when tags cannot be listed or none precedes tag
func detectPrevious(ctx context.Context, api API, tag string) string {
	lister, ok := api.(TagLister)
	if !ok {
		slog.Warn("Previous tag detection unavailable")
		return ""
	}

	previous, found, err := DetectPreviousTag(ctx, lister, tag)
	if err != nil {
		slog.Warn("Could not detect previous tag, including all items", "error", err)
		return ""
	}
	if !found {
		slog.Info("No earlier release tag found", "tag", tag)
		return ""
	}

	slog.Info("Detected previous tag", "tag", previous)
	return previous
}
