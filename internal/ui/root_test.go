package ui

import (
	"strings"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"

	"github.com/resumeai/resumeai-desktop/internal/command"
	"github.com/resumeai/resumeai-desktop/internal/config"
	"github.com/resumeai/resumeai-desktop/internal/greet"
	"github.com/resumeai/resumeai-desktop/internal/health"
	"github.com/resumeai/resumeai-desktop/internal/model"
	"github.com/resumeai/resumeai-desktop/internal/platform"
)

// newTestRootUI builds a RootUI against real services with the startup
// health probe disabled
func newTestRootUI(t *testing.T) *RootUI {
	t.Helper()

	app := test.NewApp()
	app.Preferences().SetBool(config.KeyCheckOnStartup, false)
	app.Preferences().SetString(config.KeyOutputDir, t.TempDir())

	window := app.NewWindow("test")

	healthSvc := health.NewService()
	platformSvc := platform.NewService()

	registry := command.NewRegistry()
	command.RegisterShellHandlers(registry, greet.NewService(), healthSvc, platformSvc, platformSvc)

	return NewRootUI(window, app, registry, healthSvc)
}

func TestNewRootUI(t *testing.T) {
	ui := newTestRootUI(t)

	if ui.nameEntry == nil || ui.urlEntry == nil || ui.historyList == nil {
		t.Fatal("RootUI widgets should be initialized")
	}

	if ui.urlEntry.Text != config.DefaultAPIBaseURL {
		t.Errorf("URL entry prefilled with %q, expected %q", ui.urlEntry.Text, config.DefaultAPIBaseURL)
	}

	if ui.greetBtn.Text != ui.localization.GetText(KeyGreet) {
		t.Errorf("Greet button text = %q, expected localized label", ui.greetBtn.Text)
	}
}

func TestValidateURL(t *testing.T) {
	ui := newTestRootUI(t)

	tests := []struct {
		input   string
		wantErr bool
	}{
		{"", false}, // empty is allowed
		{"http://127.0.0.1:8000", false},
		{"https://api.resumeai.example", false},
		{"ftp://example.test", true},
		{"127.0.0.1:8000", true},
	}

	for _, test := range tests {
		err := ui.validateURL(test.input)
		if test.wantErr && err == nil {
			t.Errorf("validateURL(%q) should return an error", test.input)
		}
		if !test.wantErr && err != nil {
			t.Errorf("validateURL(%q) returned error: %v", test.input, err)
		}
	}
}

func TestRenderHealthReport(t *testing.T) {
	ui := newTestRootUI(t)

	tests := []struct {
		report       *model.HealthReport
		expectedText string
	}{
		{nil, ui.localization.GetText(KeyBackendUnknown)},
		{&model.HealthReport{State: model.HealthStateChecking}, ui.localization.GetText(KeyChecking)},
		{&model.HealthReport{State: model.HealthStateHealthy, Healthy: true}, ui.localization.GetText(KeyBackendHealthy)},
		{&model.HealthReport{State: model.HealthStateUnhealthy}, ui.localization.GetText(KeyBackendUnhealthy)},
		{&model.HealthReport{State: model.HealthStateError, LastError: "no such host"}, "no such host"},
	}

	for _, test := range tests {
		ui.renderHealthReport(test.report)
		if !strings.Contains(ui.healthBadge.Text, test.expectedText) {
			t.Errorf("Badge text %q should contain %q", ui.healthBadge.Text, test.expectedText)
		}
	}
}

func TestUpdateHistoryItem(t *testing.T) {
	ui := newTestRootUI(t)

	now := time.Now()
	ui.invocations = []*model.Invocation{
		{ID: "inv-1", Command: "greet", OK: true, Detail: "Hello, Ava! Welcome to ResumeAI Desktop!", StartedAt: now, FinishedAt: now},
		{ID: "inv-2", Command: "check_api_health", OK: false, Detail: "connection refused", StartedAt: now, FinishedAt: now},
	}

	okLabel := widget.NewLabel("")
	ui.updateHistoryItem(0, okLabel)
	if !strings.HasPrefix(okLabel.Text, IconHealthy) || !strings.Contains(okLabel.Text, "greet") {
		t.Errorf("History row for success rendered as %q", okLabel.Text)
	}

	errLabel := widget.NewLabel("")
	ui.updateHistoryItem(1, errLabel)
	if !strings.HasPrefix(errLabel.Text, IconError) || !strings.Contains(errLabel.Text, "connection refused") {
		t.Errorf("History row for failure rendered as %q", errLabel.Text)
	}

	// Out-of-range rows are ignored
	ui.updateHistoryItem(5, widget.NewLabel(""))
}
