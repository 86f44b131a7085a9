package ui

import "testing"

func TestLocalization_Defaults(t *testing.T) {
	l := NewLocalization()

	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Default language = %s, expected en", l.GetCurrentLanguage())
	}

	if got := l.GetText(KeyAppTitle); got != "ResumeAI Desktop" {
		t.Errorf("GetText(app_title) = %q, expected ResumeAI Desktop", got)
	}
}

func TestLocalization_SetLanguage(t *testing.T) {
	l := NewLocalization()

	// system resolves to English
	l.SetLanguage("system")
	if l.GetCurrentLanguage() != "en" {
		t.Errorf("system language resolved to %s, expected en", l.GetCurrentLanguage())
	}

	// switching to a known language takes effect
	l.SetLanguage("ru")
	if l.GetCurrentLanguage() != "ru" {
		t.Errorf("Language = %s, expected ru", l.GetCurrentLanguage())
	}

	// unknown languages are ignored
	l.SetLanguage("xx")
	if l.GetCurrentLanguage() != "ru" {
		t.Errorf("Unknown language should not change selection, got %s", l.GetCurrentLanguage())
	}
}

func TestLocalization_Fallback(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage("ru")

	// A key missing from every table falls back to the key itself
	if got := l.GetText("no_such_key"); got != "no_such_key" {
		t.Errorf("GetText(no_such_key) = %q, expected the key itself", got)
	}
}

func TestLocalization_AllKeysPresent(t *testing.T) {
	l := NewLocalization()

	keys := []string{
		KeyAppTitle, KeyGreet, KeyCheckHealth, KeyOpenOutputFolder,
		KeySettings, KeyFile, KeyLanguage, KeyAPIBaseURL, KeyOutputDirectory,
		KeyCheckOnStartup, KeySave, KeyCancel, KeyBrowse, KeyEnterName,
		KeyEnterAPIURL, KeyPleaseEnterURL, KeyInvalidURL, KeyChecking,
		KeyBackendHealthy, KeyBackendUnhealthy, KeyBackendError,
		KeyBackendUnknown, KeyPlatformSection, KeyHistorySection,
		KeySettingsSaved, KeyErrorOpeningDir, KeyGreetingGoesHere,
		KeyBackendSection, KeyWelcomeSection, KeyOutputSection,
		KeyInterfaceSettings, KeyBackendSettings,
	}

	for lang := range l.GetAvailableLanguages() {
		for _, key := range keys {
			if _, found := l.texts[lang][key]; !found {
				t.Errorf("Language %s is missing key %s", lang, key)
			}
		}
	}
}
