// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"testing"

	"github.com/zenith-music/zenith/internal/models"
	"github.com/zenith-music/zenith/internal/services"
)

// MockBackend is a configurable test double for [services.Backend].
//
// Each method records how many times it was called and delegates to the
// corresponding func field when set, so tests can assert both behavior
// and call counts.
type MockBackend struct {
	LoginFunc            func(ctx context.Context, username, password string) (string, error)
	RegisterFunc         func(ctx context.Context, reg services.Registration) error
	SpotifyLoginURLFunc  func(ctx context.Context, username string) (string, error)
	GeneratePlaylistFunc func(ctx context.Context, session models.Session, playlistName string, scores models.MoodScores) (string, error)
	PlayPlaylistFunc     func(ctx context.Context, session models.Session, playlistID string) error
	PlaylistTracksFunc   func(ctx context.Context, session models.Session, playlistID string) ([]models.Track, error)
	SavePlaylistFunc     func(ctx context.Context, session models.Session, name, mood, spotifyPlaylistID string) error
	PlaylistsFunc        func(ctx context.Context, session models.Session) ([]models.Playlist, error)
	SongsFunc            func(ctx context.Context) ([]models.Song, error)
	SongAudioFunc        func(ctx context.Context, songID int) ([]byte, error)

	LoginCalls            int
	RegisterCalls         int
	SpotifyLoginURLCalls  int
	GeneratePlaylistCalls int
	PlayPlaylistCalls     int
	PlaylistTracksCalls   int
	SavePlaylistCalls     int
	PlaylistsCalls        int
	SongsCalls            int
	SongAudioCalls        int
}

func (m *MockBackend) Login(ctx context.Context, username, password string) (string, error) {
	m.LoginCalls++
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, username, password)
	}
	return "eyJtb2NrIjoidG9rZW4ifQ", nil
}

func (m *MockBackend) Register(ctx context.Context, reg services.Registration) error {
	m.RegisterCalls++
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, reg)
	}
	return nil
}

func (m *MockBackend) SpotifyLoginURL(ctx context.Context, username string) (string, error) {
	m.SpotifyLoginURLCalls++
	if m.SpotifyLoginURLFunc != nil {
		return m.SpotifyLoginURLFunc(ctx, username)
	}
	return "https://accounts.spotify.com/authorize?mock=1", nil
}

func (m *MockBackend) GeneratePlaylist(ctx context.Context, session models.Session, playlistName string, scores models.MoodScores) (string, error) {
	m.GeneratePlaylistCalls++
	if m.GeneratePlaylistFunc != nil {
		return m.GeneratePlaylistFunc(ctx, session, playlistName, scores)
	}
	return "https://open.spotify.com/playlist/mock123", nil
}

func (m *MockBackend) PlayPlaylist(ctx context.Context, session models.Session, playlistID string) error {
	m.PlayPlaylistCalls++
	if m.PlayPlaylistFunc != nil {
		return m.PlayPlaylistFunc(ctx, session, playlistID)
	}
	return nil
}

func (m *MockBackend) PlaylistTracks(ctx context.Context, session models.Session, playlistID string) ([]models.Track, error) {
	m.PlaylistTracksCalls++
	if m.PlaylistTracksFunc != nil {
		return m.PlaylistTracksFunc(ctx, session, playlistID)
	}
	return []models.Track{}, nil
}

func (m *MockBackend) SavePlaylist(ctx context.Context, session models.Session, name, mood, spotifyPlaylistID string) error {
	m.SavePlaylistCalls++
	if m.SavePlaylistFunc != nil {
		return m.SavePlaylistFunc(ctx, session, name, mood, spotifyPlaylistID)
	}
	return nil
}

func (m *MockBackend) Playlists(ctx context.Context, session models.Session) ([]models.Playlist, error) {
	m.PlaylistsCalls++
	if m.PlaylistsFunc != nil {
		return m.PlaylistsFunc(ctx, session)
	}
	return []models.Playlist{}, nil
}

func (m *MockBackend) Songs(ctx context.Context) ([]models.Song, error) {
	m.SongsCalls++
	if m.SongsFunc != nil {
		return m.SongsFunc(ctx)
	}
	return []models.Song{}, nil
}

func (m *MockBackend) SongAudio(ctx context.Context, songID int) ([]byte, error) {
	m.SongAudioCalls++
	if m.SongAudioFunc != nil {
		return m.SongAudioFunc(ctx, songID)
	}
	return []byte{}, nil
}

func (m *MockBackend) Name() string { return "mock" }

// TotalCalls sums every recorded backend call.
func (m *MockBackend) TotalCalls() int {
	return m.LoginCalls + m.RegisterCalls + m.SpotifyLoginURLCalls +
		m.GeneratePlaylistCalls + m.PlayPlaylistCalls + m.PlaylistTracksCalls +
		m.SavePlaylistCalls + m.PlaylistsCalls + m.SongsCalls + m.SongAudioCalls
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// FCloser simulates a failure when reading response body
type FCloser struct{}

func (f *FCloser) Read(p []byte) (n int, err error) {
	return 0, errors.New("read failed")
}

func (f *FCloser) Close() error {
	return nil
}

func MustGetwd(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	return wd
}

func MustChdir(t *testing.T, dir string) {
	t.Helper()
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to change directory to %s: %v", dir, err)
	}
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
