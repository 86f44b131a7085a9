package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/resumeai/resumeai-desktop/internal/command"
	"github.com/resumeai/resumeai-desktop/internal/config"
	"github.com/resumeai/resumeai-desktop/internal/greet"
	"github.com/resumeai/resumeai-desktop/internal/health"
	"github.com/resumeai/resumeai-desktop/internal/platform"
	"github.com/resumeai/resumeai-desktop/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.resumeai.desktop"
	AppName = "ResumeAI Desktop"

	WindowWidth  = 800
	WindowHeight = 600
)

func main() {
	// Log version information
	fmt.Printf("ResumeAI Desktop v%s starting...\n", version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	outputDir := settings.GetOutputDirectory()
	if err := platform.CreateDirectoryIfNotExists(outputDir); err != nil {
		fmt.Printf("failed to ensure output dir: %v\n", err)
	}

	greetSvc := greet.NewService()
	healthSvc := health.NewService()
	platformSvc := platform.NewService()

	// Register the command surface the frontend invokes
	registry := command.NewRegistry()
	command.RegisterShellHandlers(registry, greetSvc, healthSvc, platformSvc, platformSvc)

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, registry, healthSvc)

	// Show and run
	myWindow.ShowAndRun()
}
