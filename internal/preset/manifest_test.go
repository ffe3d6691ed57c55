package preset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseManifestFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ManifestName)
	content := `{
		"version": 3,
		"configurePresets": [
			{"name": "linux-opengl-node", "binaryDir": "${sourceDir}/build"}
		]
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	m, err := ParseManifest(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, m.Version)

	p, ok := m.Lookup("linux-opengl-node")
	require.True(t, ok)
	assert.Equal(t, "${sourceDir}/build", p.BinaryDir)
}

func TestParseManifestMissingFile(t *testing.T) {
	_, err := ParseManifest(filepath.Join(t.TempDir(), ManifestName), nil)
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestParseManifestMalformed(t *testing.T) {
	_, err := ParseManifest("", []byte(`{"configurePresets": [`))
	require.Error(t, err)
}

func TestBinaryDirInherits(t *testing.T) {
	m, err := ParseManifest("", []byte(`{
		"configurePresets": [
			{"name": "base-node", "hidden": true, "binaryDir": "${sourceDir}/build"},
			{"name": "linux-opengl-node", "inherits": "base-node"},
			{"name": "macos-metal-node", "inherits": ["missing", "base-node"]}
		]
	}`))
	require.NoError(t, err)

	assert.Equal(t, "${sourceDir}/build", m.BinaryDir("linux-opengl-node"))
	assert.Equal(t, "${sourceDir}/build", m.BinaryDir("macos-metal-node"))
	assert.Empty(t, m.BinaryDir("no-such-preset"))
}

func TestBinaryDirInheritanceCycle(t *testing.T) {
	m, err := ParseManifest("", []byte(`{
		"configurePresets": [
			{"name": "a", "inherits": "b"},
			{"name": "b", "inherits": "a"}
		]
	}`))
	require.NoError(t, err)

	// Must terminate and come back empty, not recurse forever.
	assert.Empty(t, m.BinaryDir("a"))
}

func TestBuildTypeForms(t *testing.T) {
	m, err := ParseManifest("", []byte(`{
		"configurePresets": [
			{
				"name": "plain",
				"cacheVariables": {"CMAKE_BUILD_TYPE": "Debug"}
			},
			{
				"name": "typed",
				"cacheVariables": {"CMAKE_BUILD_TYPE": {"type": "STRING", "value": "RelWithDebInfo"}}
			},
			{"name": "child", "inherits": "plain"},
			{"name": "none"}
		]
	}`))
	require.NoError(t, err)

	assert.Equal(t, "Debug", m.BuildType("plain"))
	assert.Equal(t, "RelWithDebInfo", m.BuildType("typed"))
	assert.Equal(t, "Debug", m.BuildType("child"))
	assert.Empty(t, m.BuildType("none"))
}

func TestCacheValueNonString(t *testing.T) {
	m, err := ParseManifest("", []byte(`{
		"configurePresets": [
			{
				"name": "p",
				"cacheVariables": {
					"BUILD_SHARED_LIBS": true,
					"SOME_COUNT": 4
				}
			}
		]
	}`))
	require.NoError(t, err)

	p, ok := m.Lookup("p")
	require.True(t, ok)
	assert.Equal(t, "true", p.CacheVariables["BUILD_SHARED_LIBS"].Value)
	assert.Equal(t, "4", p.CacheVariables["SOME_COUNT"].Value)
}

func TestExpandSourceDir(t *testing.T) {
	tests := []struct {
		template string
		want     string
		wantOK   bool
	}{
		{"${sourceDir}/build", "/src/build", true},
		{"/abs/build", "/abs/build", true},
		{"${sourceDir}/${presetName}", "/src/${presetName}", false},
		{"${sourceParentDir}/build", "${sourceParentDir}/build", false},
	}

	for _, tt := range tests {
		got, ok := expandSourceDir(tt.template, "/src")
		assert.Equal(t, tt.want, got, "template %q", tt.template)
		assert.Equal(t, tt.wantOK, ok, "template %q", tt.template)
	}
}
