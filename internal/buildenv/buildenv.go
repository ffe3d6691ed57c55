// Package buildenv locates the vendored native source tree and supplies
// environment defaults for the external build tools.
package buildenv

import (
	"os"
	"path/filepath"
	"runtime"
	"strconv"
)

// SourceDirEnv overrides the location of the maplibre-native checkout.
const SourceDirEnv = "MAPLIBRE_NATIVE_DIR"

// defaultSourceDir is the vendored submodule path relative to the
// package root.
const defaultSourceDir = "maplibre-native"

// SourceDir returns the absolute path of the native source tree:
// MAPLIBRE_NATIVE_DIR when set, otherwise ./maplibre-native. The path is
// not required to exist; callers that need a populated tree check with
// SourceReady.
func SourceDir() (string, error) {
	if dir := os.Getenv(SourceDirEnv); dir != "" {
		return filepath.Abs(dir)
	}
	return filepath.Abs(defaultSourceDir)
}

// SourceReady reports whether dir holds a populated checkout. An
// uninitialized submodule leaves an empty directory behind, so the
// top-level CMakeLists.txt is the marker.
func SourceReady(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, "CMakeLists.txt"))
	return err == nil
}

// Defaults returns environment defaults for the build-tool invocation,
// only for keys the caller's environment leaves unset. Everything already
// set (vcpkg cache locations, binary sources, parallelism) passes through
// verbatim via process inheritance.
func Defaults() map[string]string {
	defaults := map[string]string{
		"VCPKG_DISABLE_METRICS":      "1",
		"CMAKE_BUILD_PARALLEL_LEVEL": strconv.Itoa(runtime.NumCPU()),
	}
	for key := range defaults {
		if _, ok := os.LookupEnv(key); ok {
			delete(defaults, key)
		}
	}
	return defaults
}
