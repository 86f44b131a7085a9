package command

import (
	"github.com/resumeai/resumeai-desktop/internal/model"
)

// Greeter formats the welcome greeting shown by the frontend.
type Greeter interface {
	Greet(name string) string
}

// HealthChecker probes the backend API with a single GET request.
type HealthChecker interface {
	Check(url string) (bool, error)
}

// FolderOpener reveals a folder in the system file manager.
type FolderOpener interface {
	OpenFolder(path string) error
}

// PlatformReporter reports the OS/architecture triple of the running build.
type PlatformReporter interface {
	Info() model.PlatformInfo
}
