package models

import "strings"

// Session is the locally stored identity: an opaque bearer token and the
// username it was issued for. Both are required for protected actions.
type Session struct {
	Token    string
	Username string
}

// Valid reports whether the session carries both a token and a username.
func (s Session) Valid() bool {
	return s.Token != "" && s.Username != ""
}

// MoodScores maps the four survey answers positionally onto named scores.
type MoodScores struct {
	Happiness int
	Sadness   int
	Love      int
	Energy    int
}

// ScoresFromAnswers builds a MoodScores record from an ordered answer slice.
// Index 0 is happiness, 1 sadness, 2 love, 3 energy.
func ScoresFromAnswers(answers []int) MoodScores {
	var s MoodScores
	if len(answers) > 0 {
		s.Happiness = answers[0]
	}
	if len(answers) > 1 {
		s.Sadness = answers[1]
	}
	if len(answers) > 2 {
		s.Love = answers[2]
	}
	if len(answers) > 3 {
		s.Energy = answers[3]
	}
	return s
}

// Dominant returns the mood label with the highest score. Ties resolve to the
// first of happy, sad, love, energy in that order.
func (s MoodScores) Dominant() string {
	mood, best := "", 0
	for _, c := range []struct {
		label string
		score int
	}{
		{"happy", s.Happiness},
		{"sad", s.Sadness},
		{"love", s.Love},
		{"energy", s.Energy},
	} {
		if c.score > best {
			mood = c.label
			best = c.score
		}
	}
	return mood
}

// Playlist is a saved playlist association as returned by the backend.
type Playlist struct {
	ID                int    `json:"id"`
	Name              string `json:"name"`
	CreatedAt         string `json:"createdAt"`
	Mood              string `json:"mood"`
	SpotifyPlaylistID string `json:"spotifyPlaylistId"`
}

// Track is a single track inside a generated playlist.
type Track struct {
	Name       string
	Artist     string
	PreviewURL string
}

// PlaylistExport bundles a playlist with its resolved tracks for export.
type PlaylistExport struct {
	Playlist Playlist
	Tracks   []Track
}

// Song is an entry from the shared song catalog.
type Song struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Artist string `json:"artist"`
}

// Profile holds the locally edited profile fields. These persist only in the
// local store, namespaced per username, and are never sent to the backend.
type Profile struct {
	Username string
	Bio      string
	Genres   []string
	Avatar   string
}

// SpotifyPlaylistID extracts the playlist identifier from a generation
// reference. The backend returns a full Spotify URL; saved playlists carry the
// bare ID. Anything without a "/playlist/" segment is returned unchanged.
func SpotifyPlaylistID(reference string) string {
	if _, id, ok := strings.Cut(reference, "/playlist/"); ok {
		return id
	}
	return reference
}
