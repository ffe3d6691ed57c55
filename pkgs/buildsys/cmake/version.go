package cmake

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"golang.org/x/mod/semver"
)

// MinVersion is the oldest cmake able to consume the preset schema the
// native tree ships (toolchainFile support arrived in 3.21).
const MinVersion = "3.21.0"

var (
	// ErrNotFound means cmake is not installed or not in PATH.
	ErrNotFound = errors.New("cmake not found in PATH")
	// ErrVersionUnknown means cmake ran but its version output did not
	// parse. Callers should warn and proceed.
	ErrVersionUnknown = errors.New("cannot determine cmake version")
	// ErrVersionTooOld means cmake predates preset support we rely on.
	ErrVersionTooOld = errors.New("cmake too old")
)

// CheckVersion runs "cmake --version" and compares against min
// (e.g. "3.21.0"). It returns the detected version string when one was
// parsed, alongside any error.
func CheckVersion(min string) (string, error) {
	out, err := exec.Command("cmake", "--version").Output()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	v, ok := parseVersion(string(out))
	if !ok {
		return "", ErrVersionUnknown
	}
	if semver.Compare("v"+v, "v"+min) < 0 {
		return v, fmt.Errorf("%w: have %s, need %s or newer", ErrVersionTooOld, v, min)
	}
	return v, nil
}

// parseVersion extracts "3.28.3" from output like "cmake version 3.28.3".
// Vendor suffixes (3.29.0-msvc4) are dropped before comparison.
func parseVersion(output string) (string, bool) {
	line, _, _ := strings.Cut(output, "\n")
	fields := strings.Fields(line)
	if len(fields) < 3 || fields[0] != "cmake" || fields[1] != "version" {
		return "", false
	}
	v, _, _ := strings.Cut(fields[2], "-")
	if !semver.IsValid("v" + v) {
		return "", false
	}
	return v, true
}
