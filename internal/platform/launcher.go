package platform

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Launcher is the file-manager command used to open a folder. Exactly one
// launcher is resolved per process at startup; there is no fallback chain.
type Launcher string

const (
	WindowsLauncher Launcher = "explorer"
	MacLauncher     Launcher = "open"
	LinuxLauncher   Launcher = "xdg-open"
)

// String returns the executable name of the launcher
func (l Launcher) String() string {
	return string(l)
}

// LauncherForOS returns the file-manager launcher for a GOOS value
func LauncherForOS(goos string) (Launcher, error) {
	switch goos {
	case OSWindows:
		return WindowsLauncher, nil
	case OSDarwin:
		return MacLauncher, nil
	case OSLinux:
		return LinuxLauncher, nil
	default:
		return "", fmt.Errorf("unsupported operating system: %s", goos)
	}
}

// Service owns the resolved launcher and spawns it on request
type Service struct {
	launcher    Launcher
	launcherErr error
}

// NewService resolves the launcher for the current OS once at startup. On
// systems with no known file manager the service still reports platform info;
// OpenFolder returns the resolution error.
func NewService() *Service {
	launcher, err := LauncherForOS(runtime.GOOS)
	return &Service{launcher: launcher, launcherErr: err}
}

// Launcher returns the resolved launcher command
func (s *Service) Launcher() Launcher {
	return s.launcher
}

// OpenFolder spawns the file manager pointed at path and returns as soon as
// the child process has started. The path is not validated for existence and
// the child is neither tracked nor awaited; success means the spawn call
// itself did not fail.
func (s *Service) OpenFolder(path string) error {
	if s.launcherErr != nil {
		return s.launcherErr
	}

	cmd := exec.Command(s.launcher.String(), path)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to launch %s: %w", s.launcher, err)
	}

	// Reap the child in the background so it does not linger as a zombie
	go func() {
		_ = cmd.Wait()
	}()

	return nil
}
