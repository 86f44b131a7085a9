package model

// PlatformInfo describes the host system the shell is running on. Arch uses
// conventional machine names (x86_64, aarch64) rather than Go toolchain
// spellings because that is what the frontend displays and what the backend
// expects in diagnostics.
type PlatformInfo struct {
	OS     string `json:"os"`
	Arch   string `json:"arch"`
	Family string `json:"family"`
}
