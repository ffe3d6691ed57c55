package buildenv

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSourceDirOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(SourceDirEnv, dir)

	got, err := SourceDir()
	if err != nil {
		t.Fatalf("SourceDir() returned error: %v", err)
	}
	if got != dir {
		t.Errorf("SourceDir() = %q, want %q", got, dir)
	}
}

func TestSourceDirDefault(t *testing.T) {
	t.Setenv(SourceDirEnv, "")

	got, err := SourceDir()
	if err != nil {
		t.Fatalf("SourceDir() returned error: %v", err)
	}
	if !filepath.IsAbs(got) {
		t.Errorf("SourceDir() = %q, want absolute path", got)
	}
	if filepath.Base(got) != defaultSourceDir {
		t.Errorf("SourceDir() = %q, want path ending in %q", got, defaultSourceDir)
	}
}

func TestSourceReady(t *testing.T) {
	dir := t.TempDir()
	if SourceReady(dir) {
		t.Error("SourceReady on empty dir = true, want false")
	}

	if err := os.WriteFile(filepath.Join(dir, "CMakeLists.txt"), []byte("# x\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if !SourceReady(dir) {
		t.Error("SourceReady with CMakeLists.txt = false, want true")
	}
}

func TestDefaultsRespectEnvironment(t *testing.T) {
	t.Setenv("VCPKG_DISABLE_METRICS", "0")
	t.Setenv("CMAKE_BUILD_PARALLEL_LEVEL", "")
	os.Unsetenv("CMAKE_BUILD_PARALLEL_LEVEL")

	defaults := Defaults()
	if _, ok := defaults["VCPKG_DISABLE_METRICS"]; ok {
		t.Error("Defaults() overrides an already-set variable")
	}
	if v := defaults["CMAKE_BUILD_PARALLEL_LEVEL"]; v == "" || v == "0" {
		t.Errorf("CMAKE_BUILD_PARALLEL_LEVEL default = %q, want positive count", v)
	}
}
