// Package platform identifies the host (OS family, CPU architecture) pair
// that preset resolution keys on.
package platform

import "runtime"

// OS families with a build preset.
const (
	Darwin  = "darwin"
	Linux   = "linux"
	Windows = "windows"
)

// Architectures, in vcpkg/preset vocabulary rather than Go's.
const (
	X64   = "x64"
	Arm64 = "arm64"
)

// Platform describes a host a build can target.
type Platform struct {
	// OS is the operating system family of the host.
	OS string
	// Arch is the CPU architecture of the host.
	Arch string
}

func (p Platform) String() string {
	return p.OS + "-" + p.Arch
}

var xarch = map[string]string{
	"amd64": X64,
	"arm64": Arm64,
}

// ArchFromGo maps a GOARCH value to the preset vocabulary.
// Unknown architectures pass through unchanged.
func ArchFromGo(goarch string) string {
	if a, ok := xarch[goarch]; ok {
		return a
	}
	return goarch
}

// Detect samples the process environment once. On Windows the probe sees
// through x64 emulation on ARM64 hosts; elsewhere it is runtime.GOARCH.
func Detect() Platform {
	return Platform{OS: runtime.GOOS, Arch: ArchFromGo(nativeArch())}
}
