package platform

import (
	"runtime"
	"testing"
)

func TestLauncherForOS(t *testing.T) {
	tests := []struct {
		goos     string
		expected Launcher
		wantErr  bool
	}{
		{OSWindows, WindowsLauncher, false},
		{OSDarwin, MacLauncher, false},
		{OSLinux, LinuxLauncher, false},
		{"plan9", "", true},
		{"js", "", true},
	}

	for _, test := range tests {
		launcher, err := LauncherForOS(test.goos)
		if test.wantErr {
			if err == nil {
				t.Errorf("LauncherForOS(%s) should return an error", test.goos)
			}
			continue
		}
		if err != nil {
			t.Errorf("LauncherForOS(%s) returned error: %v", test.goos, err)
			continue
		}
		if launcher != test.expected {
			t.Errorf("LauncherForOS(%s) = %s, expected %s", test.goos, launcher, test.expected)
		}
	}
}

func TestNewService_ResolvesCurrentOS(t *testing.T) {
	service := NewService()

	expected, err := LauncherForOS(runtime.GOOS)
	if err != nil {
		// Running on an OS with no known file manager; the service must
		// surface the resolution error from OpenFolder
		if openErr := service.OpenFolder(t.TempDir()); openErr == nil {
			t.Error("OpenFolder() on an unsupported OS should return an error")
		}
		return
	}

	if service.Launcher() != expected {
		t.Errorf("Launcher() = %s, expected %s", service.Launcher(), expected)
	}
}

func TestOpenFolder_SpawnFailure(t *testing.T) {
	// A launcher binary that cannot exist on PATH forces a spawn failure
	service := &Service{launcher: Launcher("resumeai-missing-launcher-binary")}

	err := service.OpenFolder(t.TempDir())
	if err == nil {
		t.Fatal("OpenFolder() with a missing launcher binary should return an error")
	}
}

func TestOpenFolder_UnsupportedOS(t *testing.T) {
	_, resolveErr := LauncherForOS("plan9")
	service := &Service{launcherErr: resolveErr}

	if err := service.OpenFolder("/tmp"); err == nil {
		t.Error("OpenFolder() should propagate the launcher resolution error")
	}
}

func TestLauncher_String(t *testing.T) {
	tests := []struct {
		launcher Launcher
		expected string
	}{
		{WindowsLauncher, "explorer"},
		{MacLauncher, "open"},
		{LinuxLauncher, "xdg-open"},
	}

	for _, test := range tests {
		if test.launcher.String() != test.expected {
			t.Errorf("Launcher.String() = %s, expected %s", test.launcher.String(), test.expected)
		}
	}
}
