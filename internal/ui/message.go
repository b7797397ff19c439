package ui

import (
	"github.com/zenith-music/zenith/internal/models"
	"github.com/zenith-music/zenith/internal/tasks"
)

// loginDoneMsg reports the outcome of a login attempt.
type loginDoneMsg struct {
	session models.Session
	err     error
}

// signupDoneMsg reports the outcome of account creation.
type signupDoneMsg struct {
	err error
}

// generateDoneMsg reports the outcome of a survey submission.
type generateDoneMsg struct {
	result *tasks.GenerateResult
	err    error
}

// tracksFetchedMsg carries the track listing for a playlist reference.
type tracksFetchedMsg struct {
	reference string
	tracks    []models.Track
	err       error
}

// playlistsFetchedMsg carries the user's saved playlists.
type playlistsFetchedMsg struct {
	playlists []models.Playlist
	err       error
}

// songsFetchedMsg carries the shared song catalog.
type songsFetchedMsg struct {
	songs []models.Song
	err   error
}

// playDoneMsg reports the outcome of a playback request.
type playDoneMsg struct {
	err error
}

// saveDoneMsg reports the outcome of saving a playlist association.
type saveDoneMsg struct {
	err error
}

// profileLoadedMsg carries the locally stored profile fields.
type profileLoadedMsg struct {
	profile models.Profile
	err     error
}
