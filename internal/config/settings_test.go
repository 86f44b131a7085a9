package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestAPIBaseURL(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	url := settings.GetAPIBaseURL()
	if url != DefaultAPIBaseURL {
		t.Errorf("Expected default API base URL %s, got %s", DefaultAPIBaseURL, url)
	}

	// Test setting custom value
	settings.SetAPIBaseURL("https://api.resumeai.example")
	if got := settings.GetAPIBaseURL(); got != "https://api.resumeai.example" {
		t.Errorf("Expected API base URL https://api.resumeai.example, got %s", got)
	}

	// Trailing slashes are trimmed
	settings.SetAPIBaseURL("http://localhost:8000/")
	if got := settings.GetAPIBaseURL(); got != "http://localhost:8000" {
		t.Errorf("Expected trailing slash to be trimmed, got %s", got)
	}

	// Empty value falls back to the default
	settings.SetAPIBaseURL("   ")
	if got := settings.GetAPIBaseURL(); got != DefaultAPIBaseURL {
		t.Errorf("Expected empty URL to fall back to default, got %s", got)
	}
}

func TestOutputDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	dir := settings.GetOutputDirectory()
	if dir == "" {
		t.Error("Output directory should not be empty")
	}

	// Test setting custom value
	customDir := "/custom/resumes"
	settings.SetOutputDirectory(customDir)

	retrievedDir := settings.GetOutputDirectory()
	if retrievedDir != customDir {
		t.Errorf("Expected output directory %s, got %s", customDir, retrievedDir)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("ru")
	if got := settings.GetLanguage(); got != "ru" {
		t.Errorf("Expected language ru, got %s", got)
	}
}

func TestCheckOnStartup(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if settings.GetCheckOnStartup() != DefaultCheckOnStartup {
		t.Errorf("Expected default check-on-startup %v", DefaultCheckOnStartup)
	}

	// Test setting custom value
	settings.SetCheckOnStartup(false)
	if settings.GetCheckOnStartup() {
		t.Error("Expected check-on-startup to be disabled")
	}
}

func TestLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()
	if _, exists := options["system"]; !exists {
		t.Error("Language options should include the system default")
	}
	if _, exists := options["en"]; !exists {
		t.Error("Language options should include English")
	}
}
