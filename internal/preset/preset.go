// Package preset maps the host platform to one of maplibre-native's
// node configure presets and works out where that preset puts its build
// tree.
package preset

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"

	"github.com/acalcutt/maplibre-native-from-source/internal/platform"
)

// Build tools a preset implies.
const (
	ToolNinja        = "ninja"
	ToolVisualStudio = "visual-studio"
)

// DefaultBuildType is used when the manifest does not cache a
// CMAKE_BUILD_TYPE for the resolved preset. Only the Visual Studio path
// consumes it (multi-config generators ignore the cache variable and
// need --config at build time).
const DefaultBuildType = "Release"

// ErrUnsupportedPlatform reports a host with no preset mapping.
var ErrUnsupportedPlatform = errors.New("unsupported platform")

// DirSource tags which rung of the build-directory ladder produced
// Resolution.BuildDir.
type DirSource int

const (
	// DirFromManifest: the manifest's binaryDir template, expanded.
	DirFromManifest DirSource = iota
	// DirSynthesized: build-<preset> under the source dir, used when the
	// manifest is absent, unreadable, or silent about the preset.
	DirSynthesized
)

func (s DirSource) String() string {
	if s == DirFromManifest {
		return "manifest"
	}
	return "synthesized"
}

// Resolution is the complete outcome of preset resolution, constructed
// fresh per invocation and immutable afterwards.
type Resolution struct {
	Preset    string
	Tool      string
	BuildDir  string
	BuildType string
	ExtraArgs []string

	DirSource DirSource
	Warning   string // non-empty when a recoverable degrade happened
}

// rule is one row of the platform mapping table. An empty arch matches
// any architecture.
type rule struct {
	os        string
	arch      string
	preset    string
	tool      string
	extraArgs []string
}

var rules = []rule{
	{os: platform.Darwin, preset: "macos-metal-node", tool: ToolNinja},
	{os: platform.Linux, preset: "linux-opengl-node", tool: ToolNinja},
	{os: platform.Windows, arch: platform.Arm64, preset: "windows-arm64-opengl-node", tool: ToolVisualStudio,
		extraArgs: []string{"-DVCPKG_TARGET_TRIPLET=arm64-windows"}},
	{os: platform.Windows, arch: platform.X64, preset: "windows-opengl-node", tool: ToolNinja,
		extraArgs: []string{"-DVCPKG_TARGET_TRIPLET=x64-windows"}},
}

// Resolve maps p to a build configuration. It is a pure function of its
// arguments: no caching, no filesystem or process side effects. m may be
// nil when the manifest could not be read; that degrades to a
// synthesized build directory, never to an error. The only fatal outcome
// is a platform with no mapping entry.
func Resolve(p platform.Platform, sourceDir string, m *Manifest) (Resolution, error) {
	r, ok := lookupRule(p)
	if !ok {
		return Resolution{}, fmt.Errorf("%w: %s", ErrUnsupportedPlatform, p)
	}

	res := Resolution{
		Preset:    r.preset,
		Tool:      r.tool,
		BuildType: DefaultBuildType,
		ExtraArgs: slices.Clone(r.extraArgs),
	}

	res.BuildDir, res.DirSource, res.Warning = resolveBuildDir(r.preset, sourceDir, m)

	if m != nil {
		if bt := m.BuildType(r.preset); bt != "" {
			res.BuildType = bt
		}
	}
	return res, nil
}

func lookupRule(p platform.Platform) (rule, bool) {
	for _, r := range rules {
		if r.os != p.OS {
			continue
		}
		if r.arch == "" || r.arch == p.Arch {
			return r, true
		}
	}
	return rule{}, false
}

// resolveBuildDir walks the fallback ladder: manifest binaryDir template
// first, synthesized build-<preset> directory second.
func resolveBuildDir(preset, sourceDir string, m *Manifest) (dir string, src DirSource, warning string) {
	if m == nil {
		return synthesizedDir(preset, sourceDir), DirSynthesized,
			"preset manifest unavailable, using synthesized build directory"
	}
	template := m.BinaryDir(preset)
	if template == "" {
		return synthesizedDir(preset, sourceDir), DirSynthesized,
			fmt.Sprintf("preset %q not in manifest, using synthesized build directory", preset)
	}
	expanded, ok := expandSourceDir(template, sourceDir)
	if !ok {
		return synthesizedDir(preset, sourceDir), DirSynthesized,
			fmt.Sprintf("binaryDir %q uses unsupported macros, using synthesized build directory", template)
	}
	return filepath.FromSlash(expanded), DirFromManifest, ""
}

func synthesizedDir(preset, sourceDir string) string {
	return filepath.Join(sourceDir, "build-"+preset)
}
