// Package cmake wraps the preset-based cmake configure/build workflow.
package cmake

import (
	"io"
	"os"
	"os/exec"
	"sort"
	"strings"

	"github.com/acalcutt/maplibre-native-from-source/pkgs/buildsys"
)

// CMake drives a CMake build configured through a named preset.
type CMake struct {
	sourceDir string
	buildDir  string
	preset    string
	buildType string
	env       map[string]string

	stdout io.Writer
	stderr io.Writer
}

var _ buildsys.BuildSystem = (*CMake)(nil)

// New returns a ready-to-use CMake rooted at sourceDir, building into
// buildDir.
func New(sourceDir, buildDir string) *CMake {
	return &CMake{
		sourceDir: sourceDir,
		buildDir:  buildDir,
		env:       map[string]string{},
		stdout:    os.Stdout,
		stderr:    os.Stderr,
	}
}

// Source overrides the source directory.
func (c *CMake) Source(dir string) { c.sourceDir = dir }

// Preset selects the configure preset passed as --preset.
func (c *CMake) Preset(name string) *CMake {
	c.preset = name
	return c
}

// BuildType sets the configuration passed as --config to the build step.
// Only multi-config generators (Visual Studio) consume it; leave it empty
// for Ninja presets.
func (c *CMake) BuildType(name string) *CMake {
	c.buildType = name
	return c
}

// Env sets an environment variable for the cmake child processes only;
// the tool's own environment is left alone.
func (c *CMake) Env(key, value string) {
	c.env[key] = value
}

// SetStdout redirects the child processes' stdout.
func (c *CMake) SetStdout(w io.Writer) { c.stdout = w }

// SetStderr redirects the child processes' stderr.
func (c *CMake) SetStderr(w io.Writer) { c.stderr = w }

// Configure runs "cmake -S <source> --preset <name>" with extra args
// appended at the end.
func (c *CMake) Configure(args ...string) error {
	return c.run(c.configureArgs(args))
}

// Build runs "cmake --build <build>" with optional extra arguments.
func (c *CMake) Build(args ...string) error {
	return c.run(c.buildArgs(args))
}

// OutputDir returns the build directory.
func (c *CMake) OutputDir() string {
	return c.buildDir
}

func (c *CMake) configureArgs(extra []string) []string {
	cmakeArgs := []string{"-S", c.sourceDir}
	if c.preset != "" {
		cmakeArgs = append(cmakeArgs, "--preset", c.preset)
	}
	return append(cmakeArgs, extra...)
}

func (c *CMake) buildArgs(extra []string) []string {
	cmakeArgs := []string{"--build", c.buildDir}
	if c.buildType != "" {
		cmakeArgs = append(cmakeArgs, "--config", c.buildType)
	}
	return append(cmakeArgs, extra...)
}

// run executes cmake with stdio wired through. The returned error is the
// raw *exec.ExitError on non-zero exit so callers can propagate the
// tool's exit code verbatim.
func (c *CMake) run(args []string) error {
	cmd := exec.Command("cmake", args...)
	cmd.Stdout = c.stdout
	cmd.Stderr = c.stderr
	if len(c.env) > 0 {
		cmd.Env = mergeEnv(os.Environ(), c.env)
	}
	return cmd.Run()
}

func mergeEnv(base []string, override map[string]string) []string {
	envMap := make(map[string]string, len(base))
	for _, kv := range base {
		if k, v, ok := strings.Cut(kv, "="); ok {
			envMap[k] = v
		}
	}
	for k, v := range override {
		envMap[k] = v
	}
	keys := make([]string, 0, len(envMap))
	for k := range envMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, k+"="+envMap[k])
	}
	return out
}
