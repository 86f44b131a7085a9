package ui

import (
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/resumeai/resumeai-desktop/internal/command"
	"github.com/resumeai/resumeai-desktop/internal/config"
	"github.com/resumeai/resumeai-desktop/internal/health"
	"github.com/resumeai/resumeai-desktop/internal/model"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	registry     *command.Registry
	checker      health.Checker

	// Welcome section
	nameEntry     *widget.Entry
	greetBtn      *widget.Button
	greetingLabel *widget.Label

	// Backend section
	urlEntry    *widget.Entry
	checkBtn    *widget.Button
	healthBadge *widget.Label

	// Output / platform sections
	openFolderBtn *widget.Button
	platformLabel *widget.Label

	// Invocation history
	historyList *widget.List
	invocations []*model.Invocation

	// Section headings, kept for language switches
	welcomeHeading  *widget.Label
	backendHeading  *widget.Label
	platformHeading *widget.Label
	historyHeading  *widget.Label
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, registry *command.Registry, checker health.Checker) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		registry:     registry,
		checker:      checker,
	}

	// Set window title
	window.SetTitle(localization.GetText(KeyAppTitle))

	// Wire service callbacks to the UI
	ui.checker.SetUpdateCallback(ui.onHealthUpdate)
	ui.registry.SetInvokedCallback(ui.onInvocation)

	ui.setupUI()

	// Populate the platform card and optionally probe the backend
	go ui.loadPlatformInfo()
	if settings.GetCheckOnStartup() {
		ui.startHealthCheck(settings.GetAPIBaseURL())
	}

	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Create menu
	ui.createMenu()

	// Welcome section: name entry, greet button, greeting output
	ui.nameEntry = widget.NewEntry()
	ui.nameEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterName))
	ui.nameEntry.OnSubmitted = func(string) {
		ui.onGreetClick()
	}

	ui.greetBtn = widget.NewButton(ui.localization.GetText(KeyGreet), ui.onGreetClick)
	ui.greetingLabel = widget.NewLabel(ui.localization.GetText(KeyGreetingGoesHere))
	ui.greetingLabel.TextStyle = fyne.TextStyle{Italic: true}

	ui.welcomeHeading = ui.sectionHeading(KeyWelcomeSection)
	welcomeSection := container.NewVBox(
		ui.welcomeHeading,
		container.NewBorder(nil, nil, nil, ui.greetBtn, ui.nameEntry),
		ui.greetingLabel,
	)

	// Backend section: URL entry, check button, status badge
	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterAPIURL))
	ui.urlEntry.SetText(ui.settings.GetAPIBaseURL())
	ui.urlEntry.Validator = ui.validateURL
	ui.urlEntry.OnSubmitted = func(string) {
		ui.onCheckClick()
	}

	ui.checkBtn = widget.NewButton(ui.localization.GetText(KeyCheckHealth), ui.onCheckClick)
	ui.healthBadge = widget.NewLabel(IconUnknown + " " + ui.localization.GetText(KeyBackendUnknown))

	ui.backendHeading = ui.sectionHeading(KeyBackendSection)
	backendSection := container.NewVBox(
		ui.backendHeading,
		container.NewBorder(nil, nil, nil, ui.checkBtn, ui.urlEntry),
		ui.healthBadge,
	)

	// Platform and output sections
	ui.platformLabel = widget.NewLabel(DashPlaceholder)
	ui.openFolderBtn = widget.NewButton(IconFolder+" "+ui.localization.GetText(KeyOpenOutputFolder), ui.onOpenFolderClick)

	ui.platformHeading = ui.sectionHeading(KeyPlatformSection)
	platformSection := container.NewVBox(
		ui.platformHeading,
		container.NewHBox(ui.platformLabel),
		ui.openFolderBtn,
	)

	// Settings button
	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	// Create logo
	logo, err := LoadLogoResource()
	var header *fyne.Container
	if err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(32, 32))
		logoImage.FillMode = canvas.ImageFillContain
		header = container.NewBorder(nil, nil, logoImage, settingsBtn)
	} else {
		// Fallback to text-only header if logo loading fails
		header = container.NewBorder(nil, nil, nil, settingsBtn)
	}

	// Invocation history list
	ui.historyList = widget.NewList(
		func() int {
			return len(ui.invocations)
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("")
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			ui.updateHistoryItem(id, obj)
		},
	)

	ui.historyHeading = ui.sectionHeading(KeyHistorySection)
	historySection := container.NewBorder(ui.historyHeading, nil, nil, nil, ui.historyList)

	top := container.NewVBox(
		header,
		welcomeSection,
		widget.NewSeparator(),
		backendSection,
		widget.NewSeparator(),
		platformSection,
		widget.NewSeparator(),
	)

	content := container.NewBorder(
		top,            // top
		nil,            // bottom
		nil,            // left
		nil,            // right
		historySection, // center - history fills the rest
	)

	ui.window.SetContent(content)

	log.Printf("UI setup completed successfully")
}

// sectionHeading builds a bold section label for a localization key
func (ui *RootUI) sectionHeading(key string) *widget.Label {
	label := widget.NewLabel(ui.localization.GetText(key))
	label.TextStyle = fyne.TextStyle{Bold: true}
	return label
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	// Settings menu item
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for code, name := range availableLanguages {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	// Create main menu
	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	ui.nameEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterName))
	ui.greetBtn.SetText(ui.localization.GetText(KeyGreet))
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterAPIURL))
	ui.checkBtn.SetText(ui.localization.GetText(KeyCheckHealth))
	ui.openFolderBtn.SetText(IconFolder + " " + ui.localization.GetText(KeyOpenOutputFolder))

	ui.welcomeHeading.SetText(ui.localization.GetText(KeyWelcomeSection))
	ui.backendHeading.SetText(ui.localization.GetText(KeyBackendSection))
	ui.platformHeading.SetText(ui.localization.GetText(KeyPlatformSection))
	ui.historyHeading.SetText(ui.localization.GetText(KeyHistorySection))

	// Re-render the badge in the new language
	ui.renderHealthReport(ui.checker.LastReport())
}

// validateURL validates the entered backend URL
func (ui *RootUI) validateURL(input string) error {
	if strings.TrimSpace(input) == "" {
		return nil // Empty is allowed
	}

	parsedURL, err := url.Parse(input)
	if err != nil {
		return err
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("URL must start with http:// or https://")
	}

	return nil
}

// onGreetClick routes the greet command through the registry
func (ui *RootUI) onGreetClick() {
	name := strings.TrimSpace(ui.nameEntry.Text)

	go func() {
		result, err := ui.registry.Invoke(command.CmdGreet, encodeArgs(map[string]string{"name": name}))

		fyne.Do(func() {
			if err != nil {
				ui.greetingLabel.SetText(err.Error())
				return
			}
			greeting, _ := result.(string)
			ui.greetingLabel.SetText(greeting)
		})
	}()
}

// onCheckClick routes the health check command through the registry
func (ui *RootUI) onCheckClick() {
	urlText := strings.TrimSpace(ui.urlEntry.Text)
	if urlText == "" {
		ui.healthBadge.SetText(IconError + " " + ui.localization.GetText(KeyPleaseEnterURL))
		return
	}

	if err := ui.validateURL(urlText); err != nil {
		ui.healthBadge.SetText(IconError + " " + ui.localization.GetText(KeyInvalidURL) + ": " + err.Error())
		return
	}

	ui.checkBtn.Disable()
	ui.startHealthCheck(urlText)
}

// startHealthCheck performs the check off the UI thread. The badge is driven
// by the checker's update callback, not by the returned value.
func (ui *RootUI) startHealthCheck(url string) {
	go func() {
		if _, err := ui.registry.Invoke(command.CmdCheckAPIHealth, encodeArgs(map[string]string{"url": url})); err != nil {
			log.Printf("health check failed: %v", err)
		}

		fyne.Do(func() {
			ui.checkBtn.Enable()
		})
	}()
}

// onOpenFolderClick routes the open-folder command through the registry
func (ui *RootUI) onOpenFolderClick() {
	path := ui.settings.GetOutputDirectory()

	go func() {
		_, err := ui.registry.Invoke(command.CmdOpenOutputFolder, encodeArgs(map[string]string{"path": path}))

		if err != nil {
			log.Printf("open output folder failed: %v", err)
			fyne.Do(func() {
				message := ui.localization.GetText(KeyErrorOpeningDir) + ": " + err.Error()
				widget.ShowPopUp(widget.NewLabel(message), ui.window.Canvas())
			})
		}
	}()
}

// loadPlatformInfo fills the platform card via the command surface
func (ui *RootUI) loadPlatformInfo() {
	result, err := ui.registry.Invoke(command.CmdGetPlatformInfo, nil)
	if err != nil {
		// get_platform_info cannot fail by contract; log and keep the dash
		log.Printf("get_platform_info failed: %v", err)
		return
	}

	info, ok := result.(model.PlatformInfo)
	if !ok {
		return
	}

	fyne.Do(func() {
		ui.platformLabel.SetText(info.OS + MiddleDotSeparator + info.Arch + MiddleDotSeparator + info.Family)
	})
}

// onHealthUpdate handles report updates from the health service
func (ui *RootUI) onHealthUpdate(report *model.HealthReport) {
	log.Printf("health report: url=%s state=%s", report.URL, report.State)

	fyne.Do(func() {
		ui.renderHealthReport(report)
	})
}

// renderHealthReport updates the badge for a report. Must run on the UI thread.
func (ui *RootUI) renderHealthReport(report *model.HealthReport) {
	if report == nil {
		ui.healthBadge.SetText(IconUnknown + " " + ui.localization.GetText(KeyBackendUnknown))
		return
	}

	switch report.State {
	case model.HealthStateChecking:
		ui.healthBadge.SetText(IconUnknown + " " + ui.localization.GetText(KeyChecking))
	case model.HealthStateHealthy:
		ui.healthBadge.SetText(IconHealthy + " " + ui.localization.GetText(KeyBackendHealthy))
	case model.HealthStateUnhealthy:
		ui.healthBadge.SetText(IconError + " " + ui.localization.GetText(KeyBackendUnhealthy))
	case model.HealthStateError:
		ui.healthBadge.SetText(IconError + " " + ui.localization.GetText(KeyBackendError) + ": " + report.LastError)
	default:
		ui.healthBadge.SetText(IconUnknown + " " + ui.localization.GetText(KeyBackendUnknown))
	}
}

// onInvocation refreshes the history panel after every routed command
func (ui *RootUI) onInvocation(inv *model.Invocation) {
	log.Printf("command finished: id=%s command=%s ok=%t elapsed=%s", inv.ID, inv.Command, inv.OK, inv.Elapsed())

	fyne.Do(func() {
		ui.invocations = ui.registry.Recent(HistoryVisibleLimit)
		ui.historyList.Refresh()
	})
}

// updateHistoryItem renders one row of the invocation history
func (ui *RootUI) updateHistoryItem(id widget.ListItemID, obj fyne.CanvasObject) {
	if id >= len(ui.invocations) {
		return
	}

	label, ok := obj.(*widget.Label)
	if !ok {
		return
	}

	inv := ui.invocations[id]
	icon := IconHealthy
	if !inv.OK {
		icon = IconError
	}
	label.SetText(icon + " " + inv.GetDisplaySummary())
}

// onShowSettings opens the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window).Show()
}

// encodeArgs serializes command arguments the way the host channel would
func encodeArgs(args map[string]string) json.RawMessage {
	raw, err := json.Marshal(args)
	if err != nil {
		return json.RawMessage("{}")
	}
	return raw
}
