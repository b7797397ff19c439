package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
	"github.com/zenith-music/zenith/internal/shared"
)

// SongList prints the shared song catalog. No session is required.
func (r *Runner) SongList(ctx context.Context, cmd *cli.Command) error {
	songs, err := r.backend.Songs(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(songs, true)
	}

	if len(songs) == 0 {
		return r.writePlain("The song catalog is empty.\n")
	}

	r.writePlain("Found %d songs:\n\n", len(songs))
	for _, s := range songs {
		r.writePlain("%d. %s - %s\n", s.ID, s.Artist, s.Title)
	}
	return nil
}

// SongFetch downloads a song's audio bytes to a file.
func (r *Runner) SongFetch(ctx context.Context, cmd *cli.Command) error {
	songID := int(cmd.Int("id"))
	output := cmd.String("output")
	if output == "" {
		output = fmt.Sprintf("song_%d.mp3", songID)
	}

	r.logger.Infof("fetching audio for song %v", songID)

	audio, err := r.backend.SongAudio(ctx, songID)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if len(audio) == 0 {
		return fmt.Errorf("%w: empty audio response", shared.ErrSongNotFound)
	}

	if err := os.WriteFile(output, audio, 0644); err != nil {
		return fmt.Errorf("failed to write audio file: %w", err)
	}

	return r.writePlain("✓ Saved %d bytes to %s\n", len(audio), output)
}
