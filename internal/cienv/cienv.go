package cienv

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path"
	"path/filepath"
	"strings"

	"github.com/sqlshift/sqlshift/internal/constants"
	"github.com/sqlshift/sqlshift/internal/script"
	"github.com/tidwall/gjson"
)

// ChangedFiles lists the paths touched between the merge base of baseRef
// and the current HEAD, the same view a pull request shows.
func ChangedFiles(ctx context.Context, baseRef string) ([]string, error) {
	out, err := runGit(ctx, "diff", "--name-only", baseRef+"...HEAD")
	if err != nil {
		return nil, fmt.Errorf("git diff against %s: %w", baseRef, err)
	}
	var files []string
	for _, line := range strings.Split(out, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			files = append(files, line)
		}
	}
	return files, nil
}

// MigrationRevisions filters changed files down to migration scripts under
// migrateDir and extracts their revision ids from the filename convention.
// Order follows the input; duplicates are dropped. migrateDir is cleaned
// before matching: git emits paths relative to the repository root without
// a "./" prefix, while config files commonly carry one.
func MigrationRevisions(files []string, migrateDir string) []string {
	dir := path.Clean(filepath.ToSlash(migrateDir))
	prefix := dir + "/"
	if dir == "." {
		prefix = ""
	}
	seen := map[string]bool{}
	var revisions []string
	for _, f := range files {
		f = filepath.ToSlash(f)
		if !strings.HasPrefix(f, prefix) {
			continue
		}
		ext := strings.ToLower(filepath.Ext(f))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		rev := script.RevisionFromFilename(f)
		if rev == "" || seen[rev] {
			continue
		}
		seen[rev] = true
		revisions = append(revisions, rev)
	}
	return revisions
}

// Output is one step-output key/value pair.
type Output struct {
	Key   string
	Value string
}

// WriteOutputs appends the pairs to the GitHub Actions output file, or
// prints them to stdout when running outside Actions.
func WriteOutputs(outputs []Output) error {
	path := os.Getenv(constants.GithubOutputEnv)
	if path == "" {
		for _, o := range outputs {
			fmt.Printf("%s=%s\n", o.Key, o.Value)
		}
		return nil
	}
	f, err := os.OpenFile(filepath.Clean(path), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("open %s: %w", constants.GithubOutputEnv, err)
	}
	defer func() { _ = f.Close() }()
	for _, o := range outputs {
		if _, err := fmt.Fprintf(f, "%s=%s\n", o.Key, o.Value); err != nil {
			return fmt.Errorf("write %s: %w", constants.GithubOutputEnv, err)
		}
	}
	return nil
}

// EventBaseRef extracts the pull request base branch from a GitHub event
// payload file, or "" when the payload carries none.
func EventBaseRef(path string) (string, error) {
	clean := filepath.Clean(path)
	// #nosec G304 -- path comes from the GITHUB_EVENT_PATH environment set by the CI runner
	data, err := os.ReadFile(clean)
	if err != nil {
		return "", err
	}
	return gjson.GetBytes(data, "pull_request.base.ref").String(), nil
}

// EventBaseRefFromEnv reads the event payload named by GITHUB_EVENT_PATH.
func EventBaseRefFromEnv() (string, error) {
	path := os.Getenv(constants.GithubEventPathEnv)
	if path == "" {
		return "", nil
	}
	return EventBaseRef(path)
}

// fallbackBranches is the probe order when the remote HEAD is unknown.
var fallbackBranches = []string{"main", "master", "staging", "develop"}

// DefaultBranch discovers the repository's default branch: the remote HEAD
// when git knows it, otherwise the first well-known branch present on the
// remote, otherwise "main".
func DefaultBranch(ctx context.Context) string {
	if out, err := runGit(ctx, "symbolic-ref", "refs/remotes/origin/HEAD"); err == nil {
		if b := parseSymbolicRef(out); b != "" {
			return b
		}
	}
	if out, err := runGit(ctx, "branch", "-r"); err == nil {
		if b := pickRemoteBranch(strings.Split(out, "\n")); b != "" {
			return b
		}
	}
	return "main"
}

// parseSymbolicRef turns "refs/remotes/origin/main" into "main".
func parseSymbolicRef(out string) string {
	ref := strings.TrimSpace(out)
	const prefix = "refs/remotes/origin/"
	if !strings.HasPrefix(ref, prefix) {
		return ""
	}
	return strings.TrimPrefix(ref, prefix)
}

// pickRemoteBranch scans `git branch -r` output for the first well-known
// branch name.
func pickRemoteBranch(lines []string) string {
	present := map[string]bool{}
	for _, line := range lines {
		name := strings.TrimSpace(line)
		name = strings.TrimPrefix(name, "origin/")
		if name != "" {
			present[name] = true
		}
	}
	for _, candidate := range fallbackBranches {
		if present[candidate] {
			return candidate
		}
	}
	return ""
}

func runGit(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return string(out), nil
}
