package services

import (
	"context"

	"github.com/zenith-music/zenith/internal/models"
)

// Backend defines the Zenith backend operations consumed by the client.
//
// Protected operations take the session explicitly; implementations attach
// the bearer token but perform no local authorization checks. Those checks
// belong to the caller so that an absent session never produces a request.
type Backend interface {
	// Login exchanges credentials for a bearer token.
	Login(ctx context.Context, username, password string) (string, error)

	// Register creates a new user account.
	Register(ctx context.Context, reg Registration) error

	// SpotifyLoginURL fetches the Spotify authorization URL for the user.
	SpotifyLoginURL(ctx context.Context, username string) (string, error)

	// GeneratePlaylist requests a mood-based playlist and returns its reference.
	GeneratePlaylist(ctx context.Context, session models.Session, playlistName string, scores models.MoodScores) (string, error)

	// PlayPlaylist starts playback of a generated playlist on the user's Spotify device.
	PlayPlaylist(ctx context.Context, session models.Session, playlistID string) error

	// PlaylistTracks fetches the track listing of a generated playlist.
	PlaylistTracks(ctx context.Context, session models.Session, playlistID string) ([]models.Track, error)

	// SavePlaylist persists a playlist association server-side.
	SavePlaylist(ctx context.Context, session models.Session, name, mood, spotifyPlaylistID string) error

	// Playlists lists the playlists previously saved by the user.
	Playlists(ctx context.Context, session models.Session) ([]models.Playlist, error)

	// Songs lists the shared song catalog.
	Songs(ctx context.Context) ([]models.Song, error)

	// SongAudio fetches the raw audio bytes for a catalog song.
	SongAudio(ctx context.Context, songID int) ([]byte, error)

	// Name returns the service name for logging.
	Name() string
}

// Registration is the payload for account creation.
type Registration struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
