package tasks

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/zenith-music/zenith/internal/models"
	"github.com/zenith-music/zenith/internal/shared"
	"github.com/zenith-music/zenith/internal/survey"
	th "github.com/zenith-music/zenith/internal/testing"
)

var testSession = models.Session{Token: "eyJtb2NrIjoidG9rZW4ifQ", Username: "alice"}

func completeAnswers() []int {
	answers := make([]int, len(survey.Questions))
	for i := range answers {
		answers[i] = i + 1
	}
	return answers
}

func TestGenerate(t *testing.T) {
	t.Run("requires a session before any request", func(t *testing.T) {
		backend := &th.MockBackend{}
		engine := NewMoodEngine(backend)

		_, err := engine.Generate(context.Background(), models.Session{}, completeAnswers(), nil)
		if !errors.Is(err, shared.ErrNotAuthenticated) {
			t.Errorf("expected ErrNotAuthenticated, got %v", err)
		}
		if backend.TotalCalls() != 0 {
			t.Errorf("expected zero backend calls, got %d", backend.TotalCalls())
		}
	})

	t.Run("issues exactly one generation request", func(t *testing.T) {
		backend := &th.MockBackend{}
		engine := NewMoodEngine(backend)

		result, err := engine.Generate(context.Background(), testSession, []int{5, 1, 3, 4}, nil)
		if err != nil {
			t.Fatalf("generate failed: %v", err)
		}
		if backend.GeneratePlaylistCalls != 1 {
			t.Errorf("expected 1 generate call, got %d", backend.GeneratePlaylistCalls)
		}
		if result.Mood != "happy" {
			t.Errorf("expected dominant mood happy, got %q", result.Mood)
		}
		if result.SpotifyID != "mock123" {
			t.Errorf("expected spotify ID extracted from reference, got %q", result.SpotifyID)
		}
	})

	t.Run("playlist name embeds username and suffix", func(t *testing.T) {
		var gotName string
		backend := &th.MockBackend{
			GeneratePlaylistFunc: func(ctx context.Context, session models.Session, playlistName string, scores models.MoodScores) (string, error) {
				gotName = playlistName
				return "https://open.spotify.com/playlist/abc", nil
			},
		}
		engine := NewMoodEngine(backend)

		if _, err := engine.Generate(context.Background(), testSession, completeAnswers(), nil); err != nil {
			t.Fatalf("generate failed: %v", err)
		}

		if !strings.HasPrefix(gotName, "playlist_alice_") {
			t.Errorf("expected name prefix playlist_alice_, got %q", gotName)
		}
		suffix := strings.TrimPrefix(gotName, "playlist_alice_")
		if len(suffix) != 4 {
			t.Errorf("expected 4-character suffix, got %q", suffix)
		}
	})

	t.Run("scores map onto answers positionally", func(t *testing.T) {
		var gotScores models.MoodScores
		backend := &th.MockBackend{
			GeneratePlaylistFunc: func(ctx context.Context, session models.Session, playlistName string, scores models.MoodScores) (string, error) {
				gotScores = scores
				return "https://open.spotify.com/playlist/abc", nil
			},
		}
		engine := NewMoodEngine(backend)

		if _, err := engine.Generate(context.Background(), testSession, []int{5, 1, 3, 4}, nil); err != nil {
			t.Fatalf("generate failed: %v", err)
		}

		want := models.MoodScores{Happiness: 5, Sadness: 1, Love: 3, Energy: 4}
		if gotScores != want {
			t.Errorf("expected scores %+v, got %+v", want, gotScores)
		}
	})

	t.Run("rejects incomplete answer sets", func(t *testing.T) {
		backend := &th.MockBackend{}
		engine := NewMoodEngine(backend)

		_, err := engine.Generate(context.Background(), testSession, []int{5, 1}, nil)
		if !errors.Is(err, shared.ErrSurveyIncomplete) {
			t.Errorf("expected ErrSurveyIncomplete, got %v", err)
		}
		if backend.GeneratePlaylistCalls != 0 {
			t.Errorf("expected no generate call, got %d", backend.GeneratePlaylistCalls)
		}
	})

	t.Run("rejects out-of-range answers", func(t *testing.T) {
		backend := &th.MockBackend{}
		engine := NewMoodEngine(backend)

		answers := completeAnswers()
		answers[2] = 9

		_, err := engine.Generate(context.Background(), testSession, answers, nil)
		if !errors.Is(err, shared.ErrInvalidAnswer) {
			t.Errorf("expected ErrInvalidAnswer, got %v", err)
		}
	})

	t.Run("propagates backend failure", func(t *testing.T) {
		backend := &th.MockBackend{
			GeneratePlaylistFunc: func(ctx context.Context, session models.Session, playlistName string, scores models.MoodScores) (string, error) {
				return "", fmt.Errorf("backend down")
			},
		}
		engine := NewMoodEngine(backend)

		if _, err := engine.Generate(context.Background(), testSession, completeAnswers(), nil); err == nil {
			t.Error("expected error from backend failure")
		}
	})

	t.Run("progress never blocks on a full channel", func(t *testing.T) {
		backend := &th.MockBackend{}
		engine := NewMoodEngine(backend)

		// Unbuffered channel with no reader: sends must be dropped, not block.
		progress := make(chan ProgressUpdate)

		done := make(chan struct{})
		go func() {
			defer close(done)
			engine.Generate(context.Background(), testSession, completeAnswers(), progress)
		}()

		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("generate blocked on progress channel")
		}
	})

	t.Run("progress updates arrive in phase order", func(t *testing.T) {
		backend := &th.MockBackend{}
		engine := NewMoodEngine(backend)

		progress := make(chan ProgressUpdate, 10)
		if _, err := engine.Generate(context.Background(), testSession, completeAnswers(), progress); err != nil {
			t.Fatalf("generate failed: %v", err)
		}
		close(progress)

		var phases []Phase
		for update := range progress {
			phases = append(phases, update.Phase)
		}
		if len(phases) < 2 {
			t.Fatalf("expected at least 2 updates, got %d", len(phases))
		}
		if phases[0] != BuildScores {
			t.Errorf("expected first phase build_scores, got %s", phases[0])
		}
		if phases[len(phases)-1] != GeneratePlaylist {
			t.Errorf("expected final phase generate_playlist, got %s", phases[len(phases)-1])
		}
	})
}

func TestTracks(t *testing.T) {
	t.Run("requires a session", func(t *testing.T) {
		backend := &th.MockBackend{}
		engine := NewMoodEngine(backend)

		_, err := engine.Tracks(context.Background(), models.Session{}, "abc", nil)
		if !errors.Is(err, shared.ErrNotAuthenticated) {
			t.Errorf("expected ErrNotAuthenticated, got %v", err)
		}
		if backend.PlaylistTracksCalls != 0 {
			t.Errorf("expected no track fetch, got %d", backend.PlaylistTracksCalls)
		}
	})

	t.Run("rejects an empty reference", func(t *testing.T) {
		engine := NewMoodEngine(&th.MockBackend{})

		_, err := engine.Tracks(context.Background(), testSession, "", nil)
		if !errors.Is(err, shared.ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument, got %v", err)
		}
	})

	t.Run("returns backend tracks", func(t *testing.T) {
		backend := &th.MockBackend{
			PlaylistTracksFunc: func(ctx context.Context, session models.Session, playlistID string) ([]models.Track, error) {
				return []models.Track{{Name: "Song", Artist: "Artist"}}, nil
			},
		}
		engine := NewMoodEngine(backend)

		tracks, err := engine.Tracks(context.Background(), testSession, "abc", nil)
		if err != nil {
			t.Fatalf("tracks failed: %v", err)
		}
		if len(tracks) != 1 || tracks[0].Name != "Song" {
			t.Errorf("unexpected tracks: %+v", tracks)
		}
	})
}

func TestPlaySaveList(t *testing.T) {
	t.Run("play and save require a session", func(t *testing.T) {
		backend := &th.MockBackend{}
		engine := NewMoodEngine(backend)

		if err := engine.Play(context.Background(), models.Session{}, "abc"); !errors.Is(err, shared.ErrNotAuthenticated) {
			t.Errorf("play: expected ErrNotAuthenticated, got %v", err)
		}
		if err := engine.Save(context.Background(), models.Session{}, "n", "happy", "abc"); !errors.Is(err, shared.ErrNotAuthenticated) {
			t.Errorf("save: expected ErrNotAuthenticated, got %v", err)
		}
		if backend.TotalCalls() != 0 {
			t.Errorf("expected zero backend calls, got %d", backend.TotalCalls())
		}
	})

	t.Run("save passes the dominant mood through", func(t *testing.T) {
		var gotMood string
		backend := &th.MockBackend{
			SavePlaylistFunc: func(ctx context.Context, session models.Session, name, mood, spotifyPlaylistID string) error {
				gotMood = mood
				return nil
			},
		}
		engine := NewMoodEngine(backend)

		result, err := engine.Generate(context.Background(), testSession, []int{1, 2, 5, 3}, nil)
		if err != nil {
			t.Fatalf("generate failed: %v", err)
		}
		if err := engine.Save(context.Background(), testSession, result.PlaylistName, result.Mood, result.SpotifyID); err != nil {
			t.Fatalf("save failed: %v", err)
		}
		if gotMood != "love" {
			t.Errorf("expected mood love, got %q", gotMood)
		}
	})

	t.Run("playlists requires a session", func(t *testing.T) {
		backend := &th.MockBackend{}
		engine := NewMoodEngine(backend)

		if _, err := engine.Playlists(context.Background(), models.Session{}); !errors.Is(err, shared.ErrNotAuthenticated) {
			t.Errorf("expected ErrNotAuthenticated, got %v", err)
		}
		if backend.PlaylistsCalls != 0 {
			t.Errorf("expected no playlist fetch, got %d", backend.PlaylistsCalls)
		}
	})

	t.Run("nil backend fails fast", func(t *testing.T) {
		engine := NewMoodEngine(nil)

		if _, err := engine.Generate(context.Background(), testSession, completeAnswers(), nil); !errors.Is(err, shared.ErrServiceUnavailable) {
			t.Errorf("expected ErrServiceUnavailable, got %v", err)
		}
	})
}
