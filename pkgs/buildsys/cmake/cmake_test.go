package cmake

import (
	"strings"
	"testing"
)

func TestConfigureArgs(t *testing.T) {
	c := New("/src", "/src/build")
	c.Preset("linux-opengl-node")

	args := c.configureArgs(nil)
	want := []string{"-S", "/src", "--preset", "linux-opengl-node"}
	if strings.Join(args, " ") != strings.Join(want, " ") {
		t.Errorf("configureArgs = %v, want %v", args, want)
	}
}

func TestConfigureArgsExtra(t *testing.T) {
	c := New("/src", "/src/build")
	c.Preset("windows-opengl-node")

	args := c.configureArgs([]string{"-DVCPKG_TARGET_TRIPLET=x64-windows"})
	joined := strings.Join(args, " ")
	if !strings.HasSuffix(joined, "-DVCPKG_TARGET_TRIPLET=x64-windows") {
		t.Errorf("extra args not appended last: %v", args)
	}
	if !strings.Contains(joined, "--preset windows-opengl-node") {
		t.Errorf("missing preset selection: %v", args)
	}
}

func TestBuildArgs(t *testing.T) {
	c := New("/src", "/src/build")

	args := c.buildArgs(nil)
	want := "--build /src/build"
	if got := strings.Join(args, " "); got != want {
		t.Errorf("buildArgs = %q, want %q", got, want)
	}
}

func TestBuildArgsConfig(t *testing.T) {
	c := New("/src", "/src/build")
	c.BuildType("RelWithDebInfo")

	args := c.buildArgs([]string{"--parallel", "8"})
	want := "--build /src/build --config RelWithDebInfo --parallel 8"
	if got := strings.Join(args, " "); got != want {
		t.Errorf("buildArgs = %q, want %q", got, want)
	}
}

func TestMergeEnv(t *testing.T) {
	base := []string{"PATH=/usr/bin", "HOME=/home/me"}
	merged := mergeEnv(base, map[string]string{
		"VCPKG_DISABLE_METRICS": "1",
		"HOME":                  "/tmp",
	})

	got := strings.Join(merged, ";")
	for _, want := range []string{"HOME=/tmp", "PATH=/usr/bin", "VCPKG_DISABLE_METRICS=1"} {
		if !strings.Contains(got, want) {
			t.Errorf("mergeEnv missing %q, got %q", want, got)
		}
	}
	if strings.Contains(got, "HOME=/home/me") {
		t.Errorf("override did not replace base value: %q", got)
	}
}
