package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"
	"github.com/zenith-music/zenith/internal/shared"
	"github.com/zenith-music/zenith/internal/survey"
	"github.com/zenith-music/zenith/internal/tasks"
)

// SurveyQuestions prints the survey questions in order.
func (r *Runner) SurveyQuestions(ctx context.Context, cmd *cli.Command) error {
	r.writePlainHeader("Mood Survey")
	for i, q := range survey.Questions {
		r.writePlain("%d. %s\n", i+1, q)
	}
	r.writePlain("\nAnswer each with a rating from %d to %d.\n", survey.MinAnswer, survey.MaxAnswer)
	return nil
}

// SurveyRun submits a full answer set and generates a playlist.
//
// Progress updates stream to the logger while the engine works. The --save,
// --play and --tracks flags chain the follow-up actions onto the result.
func (r *Runner) SurveyRun(ctx context.Context, cmd *cli.Command) error {
	answers, err := parseAnswers(cmd.String("answers"))
	if err != nil {
		return err
	}

	db, store, err := r.openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	session, err := r.session(store)
	if err != nil {
		return err
	}

	progress := make(chan tasks.ProgressUpdate, 10)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for update := range progress {
			r.logger.Info(update.Message, "phase", update.Phase.String())
		}
	}()

	result, err := r.engine.Generate(ctx, session, answers, progress)
	close(progress)
	<-done
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(result, true)
	}

	r.writePlain("✓ Playlist generated\n\n")
	r.writePlain("Name: %s\n", result.PlaylistName)
	r.writePlain("Mood: %s\n", result.Mood)
	r.writePlain("Spotify: %s\n", result.Reference)

	if cmd.Bool("tracks") {
		tracks, err := r.engine.Tracks(ctx, session, result.SpotifyID, nil)
		if err != nil {
			return fmt.Errorf("failed to fetch tracks: %w", err)
		}
		r.writePlainln("Tracks:")
		for i, t := range tracks {
			r.writePlain("%d. %s - %s\n", i+1, t.Artist, t.Name)
		}
	}

	if cmd.Bool("save") {
		if err := r.engine.Save(ctx, session, result.PlaylistName, result.Mood, result.SpotifyID); err != nil {
			return fmt.Errorf("failed to save playlist: %w", err)
		}
		r.writePlain("✓ Playlist saved\n")
	}

	if cmd.Bool("play") {
		if err := r.engine.Play(ctx, session, result.SpotifyID); err != nil {
			return fmt.Errorf("failed to start playback: %w", err)
		}
		r.writePlain("✓ Playing on Spotify\n")
	}

	return nil
}

// parseAnswers parses the comma-separated --answers value. The count and
// range checks happen again in the engine; this only rejects non-numbers.
func parseAnswers(raw string) ([]int, error) {
	parts := strings.Split(raw, ",")
	answers := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", shared.ErrInvalidFlag, p)
		}
		answers = append(answers, n)
	}
	return answers, nil
}
