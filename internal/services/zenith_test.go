package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/zenith-music/zenith/internal/models"
	"github.com/zenith-music/zenith/internal/shared"
)

var testSession = models.Session{Token: "eyJ0ZXN0IjoidG9rZW4ifQ", Username: "alice"}

func newTestService(handler http.HandlerFunc) (*ZenithService, *httptest.Server) {
	srv := httptest.NewServer(handler)
	svc := NewZenithService(shared.BackendConfig{BaseURL: srv.URL, RequestsPerSecond: 1000, Burst: 100}, srv.Client())
	return svc, srv
}

func TestLogin(t *testing.T) {
	t.Run("accepts a JWT-shaped token", func(t *testing.T) {
		svc, srv := newTestService(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/auth/login" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			if r.Method != http.MethodPost {
				t.Errorf("unexpected method %s", r.Method)
			}
			w.Write([]byte("eyJhbGciOiJIUzI1NiJ9.payload.sig"))
		})
		defer srv.Close()

		token, err := svc.Login(context.Background(), "alice", "secret")
		if err != nil {
			t.Fatalf("login failed: %v", err)
		}
		if token != "eyJhbGciOiJIUzI1NiJ9.payload.sig" {
			t.Errorf("unexpected token %q", token)
		}
	})

	t.Run("rejects non-JWT payloads as malformed", func(t *testing.T) {
		svc, srv := newTestService(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<html>error page</html>"))
		})
		defer srv.Close()

		_, err := svc.Login(context.Background(), "alice", "secret")
		if !errors.Is(err, shared.ErrInvalidServerResponse) {
			t.Errorf("expected ErrInvalidServerResponse, got %v", err)
		}
	})

	t.Run("maps 401 to a credential failure", func(t *testing.T) {
		svc, srv := newTestService(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})
		defer srv.Close()

		_, err := svc.Login(context.Background(), "alice", "wrong")
		if !errors.Is(err, shared.ErrLoginFailed) {
			t.Errorf("expected ErrLoginFailed, got %v", err)
		}
	})

	t.Run("handles quoted token bodies", func(t *testing.T) {
		svc, srv := newTestService(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`"eyJxdW90ZWQifQ.p.s"`))
		})
		defer srv.Close()

		token, err := svc.Login(context.Background(), "alice", "secret")
		if err != nil {
			t.Fatalf("login failed: %v", err)
		}
		if token != "eyJxdW90ZWQifQ.p.s" {
			t.Errorf("expected quotes stripped, got %q", token)
		}
	})
}

func TestGeneratePlaylist(t *testing.T) {
	t.Run("sends scores as query parameters with bearer token", func(t *testing.T) {
		svc, srv := newTestService(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/spotify/generate-playlist" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			q := r.URL.Query()
			if q.Get("happinessScore") != "5" || q.Get("sadnessScore") != "1" ||
				q.Get("loveScore") != "3" || q.Get("energyScore") != "4" {
				t.Errorf("unexpected score params: %v", q)
			}
			if q.Get("username") != "alice" {
				t.Errorf("unexpected username %q", q.Get("username"))
			}
			if q.Get("playlistName") == "" {
				t.Error("missing playlistName")
			}
			if got := r.Header.Get("Authorization"); got != "Bearer "+testSession.Token {
				t.Errorf("unexpected authorization header %q", got)
			}
			w.Write([]byte("https://open.spotify.com/playlist/abc123"))
		})
		defer srv.Close()

		scores := models.MoodScores{Happiness: 5, Sadness: 1, Love: 3, Energy: 4}
		ref, err := svc.GeneratePlaylist(context.Background(), testSession, "playlist_alice_beef", scores)
		if err != nil {
			t.Fatalf("generate failed: %v", err)
		}
		if ref != "https://open.spotify.com/playlist/abc123" {
			t.Errorf("unexpected reference %q", ref)
		}
	})

	t.Run("empty reference is a malformed response", func(t *testing.T) {
		svc, srv := newTestService(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(""))
		})
		defer srv.Close()

		_, err := svc.GeneratePlaylist(context.Background(), testSession, "p", models.MoodScores{})
		if !errors.Is(err, shared.ErrInvalidServerResponse) {
			t.Errorf("expected ErrInvalidServerResponse, got %v", err)
		}
	})
}

func TestPlaylistTracks(t *testing.T) {
	t.Run("parses the nested track listing", func(t *testing.T) {
		svc, srv := newTestService(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/spotify/view-playlist" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			if r.URL.Query().Get("playlistId") != "abc123" {
				t.Errorf("unexpected playlistId %q", r.URL.Query().Get("playlistId"))
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"tracks": {"items": [
					{"track": {"name": "Song One", "artists": [{"name": "Artist One"}, {"name": "Feature"}], "preview_url": "https://p.example/1"}},
					{"track": {"name": "Song Two", "artists": [], "preview_url": null}}
				]}
			}`))
		})
		defer srv.Close()

		tracks, err := svc.PlaylistTracks(context.Background(), testSession, "abc123")
		if err != nil {
			t.Fatalf("tracks failed: %v", err)
		}
		if len(tracks) != 2 {
			t.Fatalf("expected 2 tracks, got %d", len(tracks))
		}
		if tracks[0].Name != "Song One" || tracks[0].Artist != "Artist One" || tracks[0].PreviewURL != "https://p.example/1" {
			t.Errorf("unexpected first track: %+v", tracks[0])
		}
		if tracks[1].Artist != "" {
			t.Errorf("expected empty artist for artistless track, got %q", tracks[1].Artist)
		}
	})

	t.Run("maps 404 to playlist not found", func(t *testing.T) {
		svc, srv := newTestService(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})
		defer srv.Close()

		_, err := svc.PlaylistTracks(context.Background(), testSession, "missing")
		if !errors.Is(err, shared.ErrPlaylistNotFound) {
			t.Errorf("expected ErrPlaylistNotFound, got %v", err)
		}
	})

	t.Run("garbage body is a malformed response", func(t *testing.T) {
		svc, srv := newTestService(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		})
		defer srv.Close()

		_, err := svc.PlaylistTracks(context.Background(), testSession, "abc123")
		if !errors.Is(err, shared.ErrInvalidServerResponse) {
			t.Errorf("expected ErrInvalidServerResponse, got %v", err)
		}
	})
}

func TestPlaylistsAndSongs(t *testing.T) {
	t.Run("playlists hit the per-user path", func(t *testing.T) {
		svc, srv := newTestService(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/playlists/getPlaylists/alice" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`[{"id": 1, "name": "playlist_alice_beef", "mood": "happy", "spotifyPlaylistId": "abc123", "createdAt": "2024-01-01"}]`))
		})
		defer srv.Close()

		playlists, err := svc.Playlists(context.Background(), testSession)
		if err != nil {
			t.Fatalf("playlists failed: %v", err)
		}
		if len(playlists) != 1 {
			t.Fatalf("expected 1 playlist, got %d", len(playlists))
		}
		p := playlists[0]
		if p.ID != 1 || p.Name != "playlist_alice_beef" || p.Mood != "happy" || p.SpotifyPlaylistID != "abc123" {
			t.Errorf("unexpected playlist: %+v", p)
		}
	})

	t.Run("songs decode without a session", func(t *testing.T) {
		svc, srv := newTestService(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/song/getAll" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			if r.Header.Get("Authorization") != "" {
				t.Error("song catalog should not carry a token")
			}
			w.Write([]byte(`[{"id": 7, "title": "Tune", "artist": "Band"}]`))
		})
		defer srv.Close()

		songs, err := svc.Songs(context.Background())
		if err != nil {
			t.Fatalf("songs failed: %v", err)
		}
		if len(songs) != 1 || songs[0].ID != 7 || songs[0].Title != "Tune" {
			t.Errorf("unexpected songs: %+v", songs)
		}
	})

	t.Run("song audio maps 404 to not found", func(t *testing.T) {
		svc, srv := newTestService(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})
		defer srv.Close()

		_, err := svc.SongAudio(context.Background(), 99)
		if !errors.Is(err, shared.ErrSongNotFound) {
			t.Errorf("expected ErrSongNotFound, got %v", err)
		}
	})
}

func TestSaveAndPlay(t *testing.T) {
	t.Run("save sends the association as query parameters", func(t *testing.T) {
		svc, srv := newTestService(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/playlists/add" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			q := r.URL.Query()
			if q.Get("name") != "playlist_alice_beef" || q.Get("mood") != "happy" || q.Get("spotifyPlaylistId") != "abc123" {
				t.Errorf("unexpected save params: %v", q)
			}
			w.WriteHeader(http.StatusOK)
		})
		defer srv.Close()

		if err := svc.SavePlaylist(context.Background(), testSession, "playlist_alice_beef", "happy", "abc123"); err != nil {
			t.Fatalf("save failed: %v", err)
		}
	})

	t.Run("play surfaces non-2xx statuses", func(t *testing.T) {
		svc, srv := newTestService(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})
		defer srv.Close()

		err := svc.PlayPlaylist(context.Background(), testSession, "abc123")
		if !errors.Is(err, shared.ErrAPIRequest) {
			t.Errorf("expected ErrAPIRequest, got %v", err)
		}
	})
}
