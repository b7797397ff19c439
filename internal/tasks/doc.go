// Package tasks implements the survey-to-playlist workflow against the
// Zenith backend.
//
// [MoodEngine] orchestrates the operations behind the UI: submitting a
// completed survey for playlist generation, fetching track listings, and the
// play/save actions. Protected operations check the session locally and fail
// with [shared.ErrNotAuthenticated] before any request is issued when it is
// absent. Long-running operations emit [ProgressUpdate] values through a
// channel for non-blocking status reporting to the CLI and TUI layers.
package tasks
