package model

// Package model defines the transient records passed between the GUI frontend
// and the command handlers: platform descriptors, backend health reports, and
// command invocation entries kept for display in the history panel.
