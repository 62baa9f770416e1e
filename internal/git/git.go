// Package git shells out to the git binary for the little the tool
// needs: repo discovery, init, and whole-tree commits.
package git

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

func run(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("git %s: %w: %s",
			strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
	}
	return strings.TrimSpace(stdout.String()), nil
}

// WorktreeRoot resolves the top-level directory of the worktree that
// contains dir.
func WorktreeRoot(dir string) (string, error) {
	return run(dir, "rev-parse", "--show-toplevel")
}

func Init(dir string) error {
	_, err := run(dir, "init")
	return err
}

// CommitAll stages everything and commits. A clean tree is not an
// error; the commit is just skipped.
func CommitAll(dir, message string) error {
	if _, err := run(dir, "add", "--all"); err != nil {
		return err
	}
	status, err := run(dir, "status", "--porcelain")
	if err != nil {
		return err
	}
	if status == "" {
		return nil
	}
	_, err = run(dir, "commit", "--message", message)
	return err
}

// HeadShortHash returns the abbreviated hash of HEAD.
func HeadShortHash(dir string) (string, error) {
	return run(dir, "rev-parse", "--short", "HEAD")
}
