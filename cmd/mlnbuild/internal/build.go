package internal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/qiniu/x/log"
	"github.com/spf13/cobra"

	"github.com/acalcutt/maplibre-native-from-source/internal/buildenv"
	"github.com/acalcutt/maplibre-native-from-source/internal/platform"
	"github.com/acalcutt/maplibre-native-from-source/internal/preset"
	"github.com/acalcutt/maplibre-native-from-source/internal/vcs"
	"github.com/acalcutt/maplibre-native-from-source/pkgs/buildsys/cmake"
)

var (
	buildQuiet    bool
	buildSource   string
	buildSkipSync bool
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build maplibre-native for the host platform",
	Long: `Build resolves the configure preset for the host, deletes any stale
build directory, then runs the cmake configure and build steps.`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().BoolVarP(&buildQuiet, "quiet", "q", false, "Suppress build tool output")
	buildCmd.Flags().StringVar(&buildSource, "source", "", "Path to the maplibre-native checkout")
	buildCmd.Flags().BoolVar(&buildSkipSync, "skip-sync", false, "Skip git submodule initialization")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	sourceDir, overridden, err := pickSourceDir(buildSource)
	if err != nil {
		return fmt.Errorf("failed to locate source dir: %w", err)
	}

	// Fail fast on an unmapped platform before anything touches the
	// filesystem or spawns a process.
	plat := platform.Detect()
	if _, err := preset.Resolve(plat, sourceDir, nil); err != nil {
		return err
	}

	// Preflight before any side effects.
	if v, err := cmake.CheckVersion(cmake.MinVersion); err != nil {
		if !errors.Is(err, cmake.ErrVersionUnknown) {
			return err
		}
		log.Warnf("%v, continuing anyway", err)
	} else {
		log.Infof("using cmake %s", v)
	}

	// The vendored submodule starts out as an empty directory. A custom
	// --source / MAPLIBRE_NATIVE_DIR checkout is the caller's to manage.
	if !buildSkipSync && !overridden && !buildenv.SourceReady(sourceDir) {
		log.Infof("initializing %s submodule", filepath.Base(sourceDir))
		git := vcs.NewGit()
		if buildQuiet {
			git.SetStdout(io.Discard)
		}
		if err := git.SubmoduleUpdate(ctx, ".", filepath.Base(sourceDir)); err != nil {
			return err
		}
	}
	if !buildenv.SourceReady(sourceDir) {
		return fmt.Errorf("no maplibre-native source at %s", sourceDir)
	}

	// Re-resolved from scratch now that the source tree (and with it the
	// manifest) is in place; the resolver never caches.
	res, err := resolveForHost(plat, sourceDir)
	if err != nil {
		return err
	}
	log.Infof("preset %s, tool %s, build dir %s (%s)", res.Preset, res.Tool, res.BuildDir, res.DirSource)

	// The build dir is exclusively ours: stale trees are deleted, never
	// merged.
	if err := os.RemoveAll(res.BuildDir); err != nil {
		return fmt.Errorf("failed to clean build dir: %w", err)
	}

	c := cmake.New(sourceDir, res.BuildDir)
	c.Preset(res.Preset)
	if res.Tool == preset.ToolVisualStudio {
		c.BuildType(res.BuildType)
	}
	for k, v := range buildenv.Defaults() {
		c.Env(k, v)
	}
	if buildQuiet {
		c.SetStdout(io.Discard)
	}

	if err := c.Configure(res.ExtraArgs...); err != nil {
		return fmt.Errorf("cmake configure failed: %w", err)
	}
	if err := c.Build(); err != nil {
		return fmt.Errorf("cmake build failed: %w", err)
	}

	log.Infof("build artifacts in %s", c.OutputDir())
	return nil
}

// pickSourceDir picks the native source tree, reporting whether the
// caller overrode the vendored default.
func pickSourceDir(flagValue string) (dir string, overridden bool, err error) {
	if flagValue != "" {
		dir, err = filepath.Abs(flagValue)
		return dir, true, err
	}
	dir, err = buildenv.SourceDir()
	return dir, os.Getenv(buildenv.SourceDirEnv) != "", err
}

// resolveForHost resolves plat against the manifest shipped in the
// source tree. Manifest trouble degrades to the synthesized build dir
// with a warning; only an unmapped platform is fatal.
func resolveForHost(plat platform.Platform, sourceDir string) (preset.Resolution, error) {
	m := loadManifest(sourceDir)
	res, err := preset.Resolve(plat, sourceDir, m)
	if err != nil {
		return preset.Resolution{}, err
	}
	if res.Warning != "" {
		log.Warn(res.Warning)
	}
	return res, nil
}

func loadManifest(sourceDir string) *preset.Manifest {
	path := filepath.Join(sourceDir, preset.ManifestName)
	m, err := preset.ParseManifest(path, nil)
	if err != nil {
		log.Warnf("cannot read %s: %v", path, err)
		return nil
	}
	return m
}
