package platform

// Package platform contains OS integration for the shell: the file-manager
// launcher used to reveal the output folder, platform identification, and
// filesystem helpers.
