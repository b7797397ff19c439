// Zenith backend implementation of [Backend]
//
// Endpoint paths and wire shapes follow the Zenith HTTP API; the track listing
// mirrors the Spotify playlist object the backend proxies through.
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/zenith-music/zenith/internal/models"
	"github.com/zenith-music/zenith/internal/shared"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

const defaultBaseURL = "http://localhost:8080"

// trackListing is the track payload under /api/spotify/view-playlist.
type trackListing struct {
	Tracks struct {
		Items []struct {
			Track struct {
				Name    string `json:"name"`
				Artists []struct {
					Name string `json:"name"`
				} `json:"artists"`
				PreviewURL string `json:"preview_url"`
			} `json:"track"`
		} `json:"items"`
	} `json:"tracks"`
}

// ZenithService implements [Backend] against a single backend origin.
//
// Bearer tokens are attached per call through an [oauth2.StaticTokenSource];
// all requests pass through a client-side [rate.Limiter].
type ZenithService struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

var _ Backend = (*ZenithService)(nil)

// NewZenithService creates a backend client from the given configuration.
// A nil client falls back to one built from the configured timeout.
func NewZenithService(cfg shared.BackendConfig, client *http.Client) *ZenithService {
	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	if client == nil {
		timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
		if timeout <= 0 {
			timeout = 15 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}

	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 8
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 4
	}

	return &ZenithService{
		baseURL:    baseURL,
		httpClient: client,
		limiter:    rate.NewLimiter(rate.Limit(rps), burst),
	}
}

func (s *ZenithService) Name() string {
	return "Zenith"
}

// client returns an HTTP client that attaches the bearer token, or the bare
// client when no token is supplied.
func (s *ZenithService) client(ctx context.Context, token string) *http.Client {
	if token == "" {
		return s.httpClient
	}
	ctx = context.WithValue(ctx, oauth2.HTTPClient, s.httpClient)
	return oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}))
}

// do performs a rate-limited request and returns the response body and status.
func (s *ZenithService) do(ctx context.Context, method, path string, query url.Values, body any, token string) ([]byte, int, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, 0, fmt.Errorf("rate limiter: %w", err)
	}

	endpoint := s.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.client(ctx, token).Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to read response: %w", err)
	}

	return data, resp.StatusCode, nil
}

// Login exchanges credentials for a bearer token.
//
// The backend responds with the token as a plain string. Anything that does
// not look like a JWT is treated as a malformed server response, distinct
// from a credential failure.
func (s *ZenithService) Login(ctx context.Context, username, password string) (string, error) {
	payload := map[string]string{"username": username, "password": password}

	data, status, err := s.do(ctx, http.MethodPost, "/api/auth/login", nil, payload, "")
	if err != nil {
		return "", err
	}
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		return "", shared.ErrLoginFailed
	}
	if status < 200 || status >= 300 {
		return "", fmt.Errorf("%w: login status %d", shared.ErrAPIRequest, status)
	}

	token := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if !strings.HasPrefix(token, "ey") {
		return "", fmt.Errorf("%w: token payload", shared.ErrInvalidServerResponse)
	}

	return token, nil
}

// Register creates a new user account.
func (s *ZenithService) Register(ctx context.Context, reg Registration) error {
	_, status, err := s.do(ctx, http.MethodPost, "/api/user/add", nil, reg, "")
	if err != nil {
		return err
	}
	if status < 200 || status >= 300 {
		return fmt.Errorf("%w: registration status %d", shared.ErrAPIRequest, status)
	}
	return nil
}

// SpotifyLoginURL fetches the Spotify authorization URL for the user.
func (s *ZenithService) SpotifyLoginURL(ctx context.Context, username string) (string, error) {
	query := url.Values{"username": {username}}

	data, status, err := s.do(ctx, http.MethodGet, "/api/spotify/login", query, nil, "")
	if err != nil {
		return "", err
	}
	if status < 200 || status >= 300 {
		return "", fmt.Errorf("%w: spotify login status %d", shared.ErrAPIRequest, status)
	}

	authURL := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if authURL == "" {
		return "", fmt.Errorf("%w: empty authorization URL", shared.ErrInvalidServerResponse)
	}

	return authURL, nil
}

// GeneratePlaylist requests a mood-based playlist. The four scores travel as
// query parameters; the response body is the playlist reference.
func (s *ZenithService) GeneratePlaylist(ctx context.Context, session models.Session, playlistName string, scores models.MoodScores) (string, error) {
	query := url.Values{
		"username":       {session.Username},
		"playlistName":   {playlistName},
		"happinessScore": {strconv.Itoa(scores.Happiness)},
		"sadnessScore":   {strconv.Itoa(scores.Sadness)},
		"loveScore":      {strconv.Itoa(scores.Love)},
		"energyScore":    {strconv.Itoa(scores.Energy)},
	}

	data, status, err := s.do(ctx, http.MethodPost, "/api/spotify/generate-playlist", query, nil, session.Token)
	if err != nil {
		return "", err
	}
	if status < 200 || status >= 300 {
		return "", fmt.Errorf("%w: generate status %d", shared.ErrAPIRequest, status)
	}

	reference := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if reference == "" {
		return "", fmt.Errorf("%w: empty playlist reference", shared.ErrInvalidServerResponse)
	}

	return reference, nil
}

// PlayPlaylist starts playback of a generated playlist.
func (s *ZenithService) PlayPlaylist(ctx context.Context, session models.Session, playlistID string) error {
	query := url.Values{
		"username":   {session.Username},
		"playlistId": {playlistID},
	}

	_, status, err := s.do(ctx, http.MethodPost, "/api/spotify/play-playlist", query, nil, session.Token)
	if err != nil {
		return err
	}
	if status < 200 || status >= 300 {
		return fmt.Errorf("%w: play status %d", shared.ErrAPIRequest, status)
	}
	return nil
}

// PlaylistTracks fetches the track listing of a generated playlist.
func (s *ZenithService) PlaylistTracks(ctx context.Context, session models.Session, playlistID string) ([]models.Track, error) {
	query := url.Values{
		"username":   {session.Username},
		"playlistId": {playlistID},
	}

	data, status, err := s.do(ctx, http.MethodGet, "/api/spotify/view-playlist", query, nil, session.Token)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", shared.ErrPlaylistNotFound, playlistID)
	}
	if status < 200 || status >= 300 {
		return nil, fmt.Errorf("%w: view status %d", shared.ErrAPIRequest, status)
	}

	var listing trackListing
	if err := json.Unmarshal(data, &listing); err != nil {
		return nil, fmt.Errorf("%w: track listing", shared.ErrInvalidServerResponse)
	}

	tracks := make([]models.Track, 0, len(listing.Tracks.Items))
	for _, item := range listing.Tracks.Items {
		track := models.Track{
			Name:       item.Track.Name,
			PreviewURL: item.Track.PreviewURL,
		}
		if len(item.Track.Artists) > 0 {
			track.Artist = item.Track.Artists[0].Name
		}
		tracks = append(tracks, track)
	}

	return tracks, nil
}

// SavePlaylist persists a playlist association server-side.
func (s *ZenithService) SavePlaylist(ctx context.Context, session models.Session, name, mood, spotifyPlaylistID string) error {
	query := url.Values{
		"username":          {session.Username},
		"name":              {name},
		"mood":              {mood},
		"spotifyPlaylistId": {spotifyPlaylistID},
	}

	_, status, err := s.do(ctx, http.MethodPost, "/api/playlists/add", query, nil, session.Token)
	if err != nil {
		return err
	}
	if status < 200 || status >= 300 {
		return fmt.Errorf("%w: save status %d", shared.ErrAPIRequest, status)
	}
	return nil
}

// Playlists lists the playlists previously saved by the user.
func (s *ZenithService) Playlists(ctx context.Context, session models.Session) ([]models.Playlist, error) {
	path := "/api/playlists/getPlaylists/" + url.PathEscape(session.Username)

	data, status, err := s.do(ctx, http.MethodGet, path, nil, nil, session.Token)
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		return nil, fmt.Errorf("%w: playlists status %d", shared.ErrAPIRequest, status)
	}

	var playlists []models.Playlist
	if err := json.Unmarshal(data, &playlists); err != nil {
		return nil, fmt.Errorf("%w: playlist list", shared.ErrInvalidServerResponse)
	}

	return playlists, nil
}

// Songs lists the shared song catalog.
func (s *ZenithService) Songs(ctx context.Context) ([]models.Song, error) {
	data, status, err := s.do(ctx, http.MethodGet, "/api/song/getAll", nil, nil, "")
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		return nil, fmt.Errorf("%w: songs status %d", shared.ErrAPIRequest, status)
	}

	var songs []models.Song
	if err := json.Unmarshal(data, &songs); err != nil {
		return nil, fmt.Errorf("%w: song list", shared.ErrInvalidServerResponse)
	}

	return songs, nil
}

// SongAudio fetches the raw audio bytes for a catalog song.
func (s *ZenithService) SongAudio(ctx context.Context, songID int) ([]byte, error) {
	path := "/api/song/play/" + strconv.Itoa(songID)

	data, status, err := s.do(ctx, http.MethodGet, path, nil, nil, "")
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, fmt.Errorf("%w: id %d", shared.ErrSongNotFound, songID)
	}
	if status < 200 || status >= 300 {
		return nil, fmt.Errorf("%w: audio status %d", shared.ErrAPIRequest, status)
	}

	return data, nil
}
