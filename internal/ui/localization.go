package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyGreet             = "greet"
	KeyCheckHealth       = "check_health"
	KeyOpenOutputFolder  = "open_output_folder"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyAPIBaseURL        = "api_base_url"
	KeyOutputDirectory   = "output_directory"
	KeyCheckOnStartup    = "check_on_startup"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyBrowse            = "browse"
	KeyEnterName         = "enter_name"
	KeyEnterAPIURL       = "enter_api_url"
	KeyPleaseEnterURL    = "please_enter_url"
	KeyInvalidURL        = "invalid_url"
	KeyChecking          = "checking"
	KeyBackendHealthy    = "backend_healthy"
	KeyBackendUnhealthy  = "backend_unhealthy"
	KeyBackendError      = "backend_error"
	KeyBackendUnknown    = "backend_unknown"
	KeyPlatformSection   = "platform_section"
	KeyHistorySection    = "history_section"
	KeySettingsSaved     = "settings_saved"
	KeyErrorOpeningDir   = "error_opening_dir"
	KeyGreetingGoesHere  = "greeting_goes_here"
	KeyBackendSection    = "backend_section"
	KeyWelcomeSection    = "welcome_section"
	KeyOutputSection     = "output_section"
	KeyInterfaceSettings = "interface_settings"
	KeyBackendSettings   = "backend_settings"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "ResumeAI Desktop",
		KeyGreet:             "Greet",
		KeyCheckHealth:       "Check",
		KeyOpenOutputFolder:  "Open Output Folder",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyAPIBaseURL:        "API Base URL",
		KeyOutputDirectory:   "Output Directory",
		KeyCheckOnStartup:    "Check backend on startup",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyBrowse:            "Browse",
		KeyEnterName:         "Enter your name",
		KeyEnterAPIURL:       "Backend URL (http://127.0.0.1:8000)",
		KeyPleaseEnterURL:    "Please enter a backend URL",
		KeyInvalidURL:        "Invalid URL",
		KeyChecking:          "Checking…",
		KeyBackendHealthy:    "Backend is up",
		KeyBackendUnhealthy:  "Backend is down",
		KeyBackendError:      "Backend unreachable",
		KeyBackendUnknown:    "Not checked yet",
		KeyPlatformSection:   "Platform",
		KeyHistorySection:    "Recent Commands",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyErrorOpeningDir:   "Could not open output folder",
		KeyGreetingGoesHere:  "Your greeting appears here",
		KeyBackendSection:    "Backend API",
		KeyWelcomeSection:    "Welcome",
		KeyOutputSection:     "Output",
		KeyInterfaceSettings: "Interface Settings",
		KeyBackendSettings:   "Backend Settings",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "ResumeAI Desktop",
		KeyGreet:             "Поприветствовать",
		KeyCheckHealth:       "Проверить",
		KeyOpenOutputFolder:  "Открыть папку результатов",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeyAPIBaseURL:        "Адрес API",
		KeyOutputDirectory:   "Папка результатов",
		KeyCheckOnStartup:    "Проверять бэкенд при запуске",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeyBrowse:            "Обзор",
		KeyEnterName:         "Введите ваше имя",
		KeyEnterAPIURL:       "Адрес бэкенда (http://127.0.0.1:8000)",
		KeyPleaseEnterURL:    "Введите адрес бэкенда",
		KeyInvalidURL:        "Некорректный адрес",
		KeyChecking:          "Проверка…",
		KeyBackendHealthy:    "Бэкенд доступен",
		KeyBackendUnhealthy:  "Бэкенд недоступен",
		KeyBackendError:      "Нет соединения с бэкендом",
		KeyBackendUnknown:    "Ещё не проверялось",
		KeyPlatformSection:   "Платформа",
		KeyHistorySection:    "Последние команды",
		KeySettingsSaved:     "Настройки сохранены!",
		KeyErrorOpeningDir:   "Не удалось открыть папку результатов",
		KeyGreetingGoesHere:  "Здесь появится приветствие",
		KeyBackendSection:    "API бэкенда",
		KeyWelcomeSection:    "Приветствие",
		KeyOutputSection:     "Результаты",
		KeyInterfaceSettings: "Настройки интерфейса",
		KeyBackendSettings:   "Настройки бэкенда",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "ResumeAI Desktop",
		KeyGreet:             "Saudar",
		KeyCheckHealth:       "Verificar",
		KeyOpenOutputFolder:  "Abrir Pasta de Saída",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeyAPIBaseURL:        "URL Base da API",
		KeyOutputDirectory:   "Pasta de Saída",
		KeyCheckOnStartup:    "Verificar backend ao iniciar",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeyBrowse:            "Procurar",
		KeyEnterName:         "Digite seu nome",
		KeyEnterAPIURL:       "URL do backend (http://127.0.0.1:8000)",
		KeyPleaseEnterURL:    "Digite a URL do backend",
		KeyInvalidURL:        "URL inválida",
		KeyChecking:          "Verificando…",
		KeyBackendHealthy:    "Backend disponível",
		KeyBackendUnhealthy:  "Backend indisponível",
		KeyBackendError:      "Backend inacessível",
		KeyBackendUnknown:    "Ainda não verificado",
		KeyPlatformSection:   "Plataforma",
		KeyHistorySection:    "Comandos Recentes",
		KeySettingsSaved:     "Configurações salvas!",
		KeyErrorOpeningDir:   "Não foi possível abrir a pasta de saída",
		KeyGreetingGoesHere:  "Sua saudação aparece aqui",
		KeyBackendSection:    "API do Backend",
		KeyWelcomeSection:    "Boas-vindas",
		KeyOutputSection:     "Saída",
		KeyInterfaceSettings: "Configurações da Interface",
		KeyBackendSettings:   "Configurações do Backend",
	}
}
