package config

import (
	"strings"

	"fyne.io/fyne/v2"

	"github.com/resumeai/resumeai-desktop/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyAPIBaseURL     = "api_base_url"
	KeyOutputDir      = "output_directory"
	KeyLanguage       = "app_language"
	KeyCheckOnStartup = "check_on_startup"
)

// Default values
const (
	// DefaultAPIBaseURL is where the ResumeAI FastAPI backend listens locally
	DefaultAPIBaseURL = "http://127.0.0.1:8000"

	DefaultLanguage       = "system"
	DefaultCheckOnStartup = true
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetAPIBaseURL returns the configured backend API base URL
func (s *Settings) GetAPIBaseURL() string {
	url := s.app.Preferences().String(KeyAPIBaseURL)
	if url == "" {
		s.SetAPIBaseURL(DefaultAPIBaseURL)
		return DefaultAPIBaseURL
	}
	return url
}

// SetAPIBaseURL sets the backend API base URL
func (s *Settings) SetAPIBaseURL(url string) {
	url = strings.TrimRight(strings.TrimSpace(url), "/")
	if url == "" {
		url = DefaultAPIBaseURL
	}
	s.app.Preferences().SetString(KeyAPIBaseURL, url)
}

// GetOutputDirectory returns the configured output directory
func (s *Settings) GetOutputDirectory() string {
	dir := s.app.Preferences().String(KeyOutputDir)
	if dir == "" {
		// Use the default documents location
		defaultDir, err := platform.GetHomeOutputDir()
		if err != nil {
			defaultDir = "/tmp/resumeai"
		}
		s.SetOutputDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetOutputDirectory sets the output directory
func (s *Settings) SetOutputDirectory(dir string) {
	s.app.Preferences().SetString(KeyOutputDir, dir)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetCheckOnStartup returns whether to check backend health on startup
func (s *Settings) GetCheckOnStartup() bool {
	return s.app.Preferences().BoolWithFallback(KeyCheckOnStartup, DefaultCheckOnStartup)
}

// SetCheckOnStartup sets whether to check backend health on startup
func (s *Settings) SetCheckOnStartup(check bool) {
	s.app.Preferences().SetBool(KeyCheckOnStartup, check)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
