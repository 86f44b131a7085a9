package platform

import (
	"runtime"

	"github.com/resumeai/resumeai-desktop/internal/model"
)

// Family values reported to the frontend
const (
	FamilyWindows = "windows"
	FamilyUnix    = "unix"
)

// Conventional architecture names keyed by GOARCH. The frontend and backend
// diagnostics use machine-style names, not toolchain spellings.
var archNames = map[string]string{
	"amd64": "x86_64",
	"arm64": "aarch64",
	"386":   "x86",
	"arm":   "arm",
}

// Info reports the OS, CPU architecture and OS family of the running build.
// The triple is derived from compile-time constants, so it is identical on
// every call within one process and cannot fail.
func Info() model.PlatformInfo {
	return model.PlatformInfo{
		OS:     runtime.GOOS,
		Arch:   archName(runtime.GOARCH),
		Family: familyForOS(runtime.GOOS),
	}
}

// Info reports the platform triple; see the package-level Info
func (s *Service) Info() model.PlatformInfo {
	return Info()
}

// archName maps a GOARCH value to its conventional machine name
func archName(goarch string) string {
	if name, ok := archNames[goarch]; ok {
		return name
	}
	return goarch
}

// familyForOS returns the OS family: windows, or unix for everything else
func familyForOS(goos string) string {
	if goos == OSWindows {
		return FamilyWindows
	}
	return FamilyUnix
}
