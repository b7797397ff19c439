package tasks

import (
	"context"
	"fmt"

	"github.com/zenith-music/zenith/internal/models"
	"github.com/zenith-music/zenith/internal/services"
	"github.com/zenith-music/zenith/internal/shared"
	"github.com/zenith-music/zenith/internal/survey"
)

// GenerateResult contains all data from a completed survey submission.
//
// The dominant mood is derived from the scores and threaded through here to
// the save action; nothing in the workflow holds mood state between
// submissions.
type GenerateResult struct {
	PlaylistName string            // Generated playlist name (playlist_<user>_<suffix>)
	Reference    string            // Reference returned by the backend (Spotify URL)
	SpotifyID    string            // Bare Spotify playlist ID extracted from the reference
	Scores       models.MoodScores // Submitted scores
	Mood         string            // Dominant mood label for the save action
}

// MoodEngine implements the survey-to-playlist workflow.
type MoodEngine struct {
	backend services.Backend
}

// NewMoodEngine creates a new MoodEngine over the given backend client.
func NewMoodEngine(backend services.Backend) *MoodEngine {
	return &MoodEngine{backend: backend}
}

// sendProgress sends a progress update through the channel without blocking.
// Uses select with default to ensure progress reporting never blocks execution.
func (e *MoodEngine) sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
	default:
	}
}

// requireSession rejects protected operations before any request is issued.
func (e *MoodEngine) requireSession(session models.Session) error {
	if !session.Valid() {
		return shared.ErrNotAuthenticated
	}
	return nil
}

// Generate submits a completed answer sequence for playlist generation.
//
// Exactly one generation request is issued per call. The answer count must
// match the survey question count; the session is checked locally first.
func (e *MoodEngine) Generate(ctx context.Context, session models.Session, answers []int, progress chan<- ProgressUpdate) (*GenerateResult, error) {
	if e.backend == nil {
		return nil, fmt.Errorf("%w: backend not initialized", shared.ErrServiceUnavailable)
	}
	if err := e.requireSession(session); err != nil {
		return nil, err
	}
	if len(answers) != len(survey.Questions) {
		return nil, fmt.Errorf("%w: %d of %d answered", shared.ErrSurveyIncomplete, len(answers), len(survey.Questions))
	}
	for _, a := range answers {
		if a < survey.MinAnswer || a > survey.MaxAnswer {
			return nil, fmt.Errorf("%w: got %d", shared.ErrInvalidAnswer, a)
		}
	}

	scores := models.ScoresFromAnswers(answers)
	e.sendProgress(progress, buildScoresUpdate(scores))

	name := fmt.Sprintf("playlist_%s_%s", session.Username, shared.ShortID())
	e.sendProgress(progress, generateUpdate(name))

	reference, err := e.backend.GeneratePlaylist(ctx, session, name, scores)
	if err != nil {
		return nil, fmt.Errorf("failed to generate playlist: %w", err)
	}

	result := &GenerateResult{
		PlaylistName: name,
		Reference:    reference,
		SpotifyID:    models.SpotifyPlaylistID(reference),
		Scores:       scores,
		Mood:         scores.Dominant(),
	}
	e.sendProgress(progress, generatedUpdate(result))

	return result, nil
}

// Tracks fetches the track listing for a playlist reference.
func (e *MoodEngine) Tracks(ctx context.Context, session models.Session, playlistID string, progress chan<- ProgressUpdate) ([]models.Track, error) {
	if e.backend == nil {
		return nil, fmt.Errorf("%w: backend not initialized", shared.ErrServiceUnavailable)
	}
	if err := e.requireSession(session); err != nil {
		return nil, err
	}
	if playlistID == "" {
		return nil, fmt.Errorf("%w: empty playlist reference", shared.ErrInvalidArgument)
	}

	e.sendProgress(progress, fetchTracksUpdate(playlistID))

	tracks, err := e.backend.PlaylistTracks(ctx, session, playlistID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tracks: %w", err)
	}
	return tracks, nil
}

// Play starts playback of a playlist on the user's Spotify device.
// Fire-and-forget: success or failure is reported once, with no retry.
func (e *MoodEngine) Play(ctx context.Context, session models.Session, playlistID string) error {
	if e.backend == nil {
		return fmt.Errorf("%w: backend not initialized", shared.ErrServiceUnavailable)
	}
	if err := e.requireSession(session); err != nil {
		return err
	}

	if err := e.backend.PlayPlaylist(ctx, session, playlistID); err != nil {
		return fmt.Errorf("failed to play playlist: %w", err)
	}
	return nil
}

// Save persists the playlist association server-side, carrying the dominant
// mood computed at generation time.
func (e *MoodEngine) Save(ctx context.Context, session models.Session, name, mood, spotifyPlaylistID string) error {
	if e.backend == nil {
		return fmt.Errorf("%w: backend not initialized", shared.ErrServiceUnavailable)
	}
	if err := e.requireSession(session); err != nil {
		return err
	}

	if err := e.backend.SavePlaylist(ctx, session, name, mood, spotifyPlaylistID); err != nil {
		return fmt.Errorf("failed to save playlist: %w", err)
	}
	return nil
}

// Playlists lists the user's saved playlists.
func (e *MoodEngine) Playlists(ctx context.Context, session models.Session) ([]models.Playlist, error) {
	if e.backend == nil {
		return nil, fmt.Errorf("%w: backend not initialized", shared.ErrServiceUnavailable)
	}
	if err := e.requireSession(session); err != nil {
		return nil, err
	}

	playlists, err := e.backend.Playlists(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch playlists: %w", err)
	}
	return playlists, nil
}
