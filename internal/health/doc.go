package health

// Package health performs one-shot reachability checks against the ResumeAI
// backend API. Each check is a single GET with a fresh client; there is no
// retry, no caching, and no shared connection state between calls.
