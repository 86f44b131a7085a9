package ui

// Package ui contains the Fyne-based desktop frontend of the shell. It wires
// user interactions to the command registry, renders backend health state,
// platform information, and the recent-invocation history. All UI strings are
// localized via Localization.
