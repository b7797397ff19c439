package tasks

import (
	"fmt"

	"github.com/zenith-music/zenith/internal/models"
)

// ProgressUpdate represents a progress event during a long-running operation.
//
// Used to send real-time updates to the CLI or UI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
	Data    any    // Optional phase-specific data for advanced UIs
}

// Operation phase enumeration
type Phase int

const (
	BuildScores Phase = iota
	GeneratePlaylist
	FetchTracks
	PlayPlaylist
	SavePlaylist
	FetchPlaylists
)

func (p Phase) String() string {
	switch p {
	case BuildScores:
		return "build_scores"
	case GeneratePlaylist:
		return "generate_playlist"
	case FetchTracks:
		return "fetch_tracks"
	case PlayPlaylist:
		return "play_playlist"
	case SavePlaylist:
		return "save_playlist"
	case FetchPlaylists:
		return "fetch_playlists"
	default:
		return ""
	}
}

func buildScoresUpdate(scores models.MoodScores) ProgressUpdate {
	return ProgressUpdate{
		Phase:   BuildScores,
		Step:    1,
		Total:   2,
		Message: fmt.Sprintf("Scores: happiness %d, sadness %d, love %d, energy %d", scores.Happiness, scores.Sadness, scores.Love, scores.Energy),
		Data:    scores,
	}
}

func generateUpdate(name string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   GeneratePlaylist,
		Step:    2,
		Total:   2,
		Message: fmt.Sprintf("Generating playlist %s...", name),
	}
}

func generatedUpdate(result *GenerateResult) ProgressUpdate {
	return ProgressUpdate{
		Phase:   GeneratePlaylist,
		Step:    2,
		Total:   2,
		Message: fmt.Sprintf("Playlist ready: %s (%s mood)", result.PlaylistName, result.Mood),
		Data:    result,
	}
}

func fetchTracksUpdate(playlistID string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchTracks,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Fetching tracks for %s...", playlistID),
	}
}
