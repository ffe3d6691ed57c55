//go:build windows

package platform

import (
	"runtime"

	"golang.org/x/sys/windows"
)

// nativeArch reports the machine architecture of the host, not the process.
// An x64 build of this tool running emulated on a Windows-on-ARM host must
// still pick the arm64 preset, so ask the kernel what the real machine is.
func nativeArch() string {
	var processMachine, nativeMachine uint16
	if err := windows.IsWow64Process2(windows.CurrentProcess(), &processMachine, &nativeMachine); err != nil {
		return runtime.GOARCH
	}
	if nativeMachine == windows.IMAGE_FILE_MACHINE_ARM64 {
		return "arm64"
	}
	return runtime.GOARCH
}
