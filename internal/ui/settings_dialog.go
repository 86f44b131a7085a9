package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/resumeai/resumeai-desktop/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog

	// UI components
	apiURLEntry         *widget.Entry
	outputDirEntry      *widget.Entry
	languageSelect      *widget.Select
	checkOnStartupCheck *widget.Check
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Backend API base URL
	sd.apiURLEntry = widget.NewEntry()
	sd.apiURLEntry.SetPlaceHolder(config.DefaultAPIBaseURL)

	// Output directory selection
	sd.outputDirEntry = widget.NewEntry()
	sd.outputDirEntry.SetPlaceHolder(sd.localization.GetText(KeyOutputDirectory))

	browseDirBtn := widget.NewButton(sd.localization.GetText(KeyBrowse), sd.onBrowseDirectory)
	outputDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.outputDirEntry)

	// Check-on-startup toggle
	sd.checkOnStartupCheck = widget.NewCheck(sd.localization.GetText(KeyCheckOnStartup), nil)

	// Language selection
	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)
	sd.languageSelect.PlaceHolder = sd.localization.GetText(KeyLanguage)

	// Create form
	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyBackendSettings)),
		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyAPIBaseURL)+":"),
		sd.apiURLEntry,

		widget.NewLabel(sd.localization.GetText(KeyOutputDirectory)+":"),
		outputDirRow,

		sd.checkOnStartupCheck,

		widget.NewSeparator(),
		widget.NewLabel(sd.localization.GetText(KeyInterfaceSettings)),
		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	// Create dialog with buttons
	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.apiURLEntry.SetText(sd.settings.GetAPIBaseURL())
	sd.outputDirEntry.SetText(sd.settings.GetOutputDirectory())
	sd.checkOnStartupCheck.SetChecked(sd.settings.GetCheckOnStartup())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onBrowseDirectory opens a folder picker for the output directory
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.outputDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave persists the dialog values
func (sd *SettingsDialog) onSave(save bool) {
	if !save {
		return
	}

	sd.settings.SetAPIBaseURL(sd.apiURLEntry.Text)
	sd.settings.SetOutputDirectory(sd.outputDirEntry.Text)
	sd.settings.SetCheckOnStartup(sd.checkOnStartupCheck.Checked)

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	widget.ShowPopUp(widget.NewLabel(sd.localization.GetText(KeySettingsSaved)), sd.window.Canvas())
}
