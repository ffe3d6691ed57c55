// Package vcs wraps the git operations needed to materialize the
// vendored maplibre-native checkout.
package vcs

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Git runs git against a working tree.
type Git struct {
	stdout io.Writer
	stderr io.Writer
}

// NewGit creates a Git with stdio wired through to the process.
func NewGit() *Git {
	return &Git{stdout: os.Stdout, stderr: os.Stderr}
}

// SetStdout redirects git's stdout.
func (g *Git) SetStdout(w io.Writer) { g.stdout = w }

// SetStderr redirects git's stderr.
func (g *Git) SetStderr(w io.Writer) { g.stderr = w }

// SubmoduleUpdate initializes and updates the submodule at path inside
// repoDir, recursively. maplibre-native itself vendors further
// submodules (vendor/*), so --recursive is required for a buildable
// tree.
func (g *Git) SubmoduleUpdate(ctx context.Context, repoDir, path string) error {
	args := []string{"-C", repoDir, "submodule", "update", "--init", "--recursive"}
	if path != "" {
		args = append(args, "--", path)
	}
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Stdout = g.stdout
	cmd.Stderr = g.stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("git submodule update: %w", err)
	}
	return nil
}
