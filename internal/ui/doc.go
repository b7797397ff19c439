// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI is organized as three pages with modal overlays on top:
//  1. [HomePage] : Saved playlists and entry points for the mood survey
//  2. [ProfilePage] : Locally stored profile fields with inline editing
//  3. [AboutPage] : App description plus the shared song catalog
//
// Overlays are a single enum ([Overlay]), so at most one modal is ever
// visible; opening one closes whatever was open before. The survey overlay
// drives a [survey.Wizard] with the digit keys 1-5, and a completed survey
// hands off to [tasks.MoodEngine] for exactly one generation request.
//
// The profile page is gated: without a stored session the page switch is
// refused and the login overlay opens instead.
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern.
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, q) with contextual help displayed via charmbracelet/bubbles/help.
package ui
