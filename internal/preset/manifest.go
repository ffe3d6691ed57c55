package preset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// ManifestName is the preset manifest file at the root of a CMake source tree.
const ManifestName = "CMakePresets.json"

// Manifest is the subset of CMakePresets.json that resolution reads:
// configure preset names, where each puts its build tree, and the build
// type it caches. The manifest belongs to the native project; we never
// write it.
type Manifest struct {
	Version          int               `json:"version"`
	ConfigurePresets []ConfigurePreset `json:"configurePresets"`

	byName map[string]*ConfigurePreset
}

// ConfigurePreset is one entry under configurePresets.
type ConfigurePreset struct {
	Name           string                `json:"name"`
	Inherits       inheritsList          `json:"inherits"`
	BinaryDir      string                `json:"binaryDir"`
	CacheVariables map[string]cacheValue `json:"cacheVariables"`
}

// inheritsList accepts both the string and the array form of "inherits".
type inheritsList []string

func (l *inheritsList) UnmarshalJSON(data []byte) error {
	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		*l = inheritsList{one}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*l = inheritsList(many)
	return nil
}

// cacheValue accepts the plain form ("Release") and the typed form
// ({"type": "STRING", "value": "Release"}) of a cache variable.
type cacheValue struct {
	Value string
}

func (v *cacheValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		v.Value = s
		return nil
	}
	var typed struct {
		Value any `json:"value"`
	}
	if err := json.Unmarshal(data, &typed); err == nil && typed.Value != nil {
		v.Value = fmt.Sprint(typed.Value)
		return nil
	}
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw != nil {
		v.Value = fmt.Sprint(raw)
	}
	return nil
}

// ParseManifest parses a preset manifest. If data is nil it is read from
// file. Callers treat a parse failure as recoverable: resolution accepts
// a nil manifest.
func ParseManifest(file string, data []byte) (*Manifest, error) {
	var reader io.Reader

	if data != nil {
		reader = bytes.NewBuffer(data)
	} else {
		f, err := os.Open(file)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		reader = f
	}

	var m Manifest
	if err := json.NewDecoder(reader).Decode(&m); err != nil {
		return nil, err
	}

	m.byName = make(map[string]*ConfigurePreset, len(m.ConfigurePresets))
	for i := range m.ConfigurePresets {
		p := &m.ConfigurePresets[i]
		m.byName[p.Name] = p
	}
	return &m, nil
}

// Lookup returns the configure preset with the given name.
func (m *Manifest) Lookup(name string) (*ConfigurePreset, bool) {
	p, ok := m.byName[name]
	return p, ok
}

// BinaryDir returns the effective binaryDir template for name, walking
// the inherits chain until one is found.
func (m *Manifest) BinaryDir(name string) string {
	return m.walk(name, func(p *ConfigurePreset) string { return p.BinaryDir })
}

// BuildType returns the effective CMAKE_BUILD_TYPE cache variable for
// name, walking the inherits chain until one is found.
func (m *Manifest) BuildType(name string) string {
	return m.walk(name, func(p *ConfigurePreset) string {
		return p.CacheVariables["CMAKE_BUILD_TYPE"].Value
	})
}

// walk does a depth-first search along inherits links, returning the
// first non-empty value of field. Visited tracking guards against
// inheritance cycles in a hand-edited manifest.
func (m *Manifest) walk(name string, field func(*ConfigurePreset) string) string {
	visited := make(map[string]bool)

	var visit func(name string) string
	visit = func(name string) string {
		if visited[name] {
			return ""
		}
		visited[name] = true

		p, ok := m.byName[name]
		if !ok {
			return ""
		}
		if v := field(p); v != "" {
			return v
		}
		for _, base := range p.Inherits {
			if v := visit(base); v != "" {
				return v
			}
		}
		return ""
	}
	return visit(name)
}

// expandSourceDir substitutes the ${sourceDir} macro in a binaryDir
// template. It reports whether the result is fully expanded; templates
// using macros we do not model stay unexpanded and must not be used.
func expandSourceDir(template, sourceDir string) (string, bool) {
	expanded := strings.ReplaceAll(template, "${sourceDir}", sourceDir)
	return expanded, !strings.Contains(expanded, "${")
}
