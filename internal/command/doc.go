package command

// Package command implements the thin dispatch layer between the GUI frontend
// and the leaf services: named commands with JSON-serialized arguments are
// routed to registered handlers, and every invocation is recorded for the
// history panel. Handler failures are collapsed into a single flat error
// string before they reach the frontend.
