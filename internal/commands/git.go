package commands

import (
	"fmt"
	"os/exec"
	"regexp"
	"strings"
)

var (
	// git@github.com:org/repo.git
	sshRemotePattern = regexp.MustCompile(`^git@[^:]+:([^/]+)/([^/]+?)(?:\.git)?$`)
	// https://github.com/org/repo.git or ssh://git@host/org/repo.git
	urlRemotePattern = regexp.MustCompile(`^(?:https?|ssh)://[^/]+/([^/]+)/([^/]+?)(?:\.git)?/?$`)
)

// GitRepoInfo holds detected git repository information
type GitRepoInfo struct {
	Org  string
	Repo string
}

// DetectGitRepoInfo reads owner and repository from the origin remote of the working directory
func DetectGitRepoInfo() (*GitRepoInfo, error) {
	if !isGitRepository() {
		return nil, fmt.Errorf("not in a git repository")
	}

	gitCmd := exec.Command("git", "remote", "get-url", "origin")
	output, err := gitCmd.Output()
	if err != nil {
		return nil, fmt.Errorf("failed to read git remote: %w", err)
	}

	org, repo, err := ParseRemoteURL(strings.TrimSpace(string(output)))
	if err != nil {
		return nil, err
	}

	return &GitRepoInfo{Org: org, Repo: repo}, nil
}

// isGitRepository checks if current directory is in a git repository
func isGitRepository() bool {
	gitCmd := exec.Command("git", "rev-parse", "--git-dir")
	return gitCmd.Run() == nil
}

// ParseRemoteURL extracts org and repo from SSH and HTTPS remote URLs
func ParseRemoteURL(remoteURL string) (string, string, error) {
	if matches := sshRemotePattern.FindStringSubmatch(remoteURL); len(matches) == 3 {
		return matches[1], matches[2], nil
	}

	if matches := urlRemotePattern.FindStringSubmatch(remoteURL); len(matches) == 3 {
		return matches[1], matches[2], nil
	}

	return "", "", fmt.Errorf("unable to parse remote URL: %s", remoteURL)
}
