package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"
	"github.com/zenith-music/zenith/internal/formatter"
	"github.com/zenith-music/zenith/internal/models"
	"github.com/zenith-music/zenith/internal/shared"
)

// PlaylistList lists the user's saved playlists.
func (r *Runner) PlaylistList(ctx context.Context, cmd *cli.Command) error {
	db, store, err := r.openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	session, err := r.session(store)
	if err != nil {
		return err
	}

	r.logger.Infof("listing playlists for %v", session.Username)

	playlists, err := r.engine.Playlists(ctx, session)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(playlists, cmd.Bool("pretty"))
	}

	if len(playlists) == 0 {
		return r.writePlain("No saved playlists yet. Run 'zenith survey run' to create one.\n")
	}

	r.writePlain("Found %d playlists:\n\n", len(playlists))
	for i, p := range playlists {
		r.writePlain("%d. %s\n", i+1, p.Name)
		if p.Mood != "" {
			r.writePlain("   Mood: %s\n", p.Mood)
		}
		if p.CreatedAt != "" {
			r.writePlain("   Created: %s\n", p.CreatedAt)
		}
		r.writePlain("   Spotify ID: %s\n", p.SpotifyPlaylistID)
	}

	return nil
}

// PlaylistView shows the tracks of a playlist.
func (r *Runner) PlaylistView(ctx context.Context, cmd *cli.Command) error {
	playlistID := models.SpotifyPlaylistID(cmd.String("id"))

	db, store, err := r.openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	session, err := r.session(store)
	if err != nil {
		return err
	}

	tracks, err := r.engine.Tracks(ctx, session, playlistID, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(tracks, true)
	}

	if len(tracks) == 0 {
		return r.writePlain("No tracks to show.\n")
	}

	r.writePlain("Found %d tracks:\n\n", len(tracks))
	for i, t := range tracks {
		r.writePlain("%d. %s - %s\n", i+1, t.Artist, t.Name)
		if t.PreviewURL != "" {
			r.writePlain("   Preview: %s\n", t.PreviewURL)
		}
	}

	return nil
}

// PlaylistPlay starts playback on the user's Spotify device.
func (r *Runner) PlaylistPlay(ctx context.Context, cmd *cli.Command) error {
	playlistID := models.SpotifyPlaylistID(cmd.String("id"))

	db, store, err := r.openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	session, err := r.session(store)
	if err != nil {
		return err
	}

	if err := r.engine.Play(ctx, session, playlistID); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	return r.writePlain("✓ Playing on Spotify\n")
}

// PlaylistSave saves a playlist association server-side.
func (r *Runner) PlaylistSave(ctx context.Context, cmd *cli.Command) error {
	name := cmd.String("name")
	mood := strings.ToLower(cmd.String("mood"))
	playlistID := models.SpotifyPlaylistID(cmd.String("id"))

	db, store, err := r.openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	session, err := r.session(store)
	if err != nil {
		return err
	}

	if err := r.engine.Save(ctx, session, name, mood, playlistID); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	return r.writePlain("✓ Playlist saved\n")
}

// PlaylistExport writes a playlist's tracks to a file in the chosen format.
func (r *Runner) PlaylistExport(ctx context.Context, cmd *cli.Command) error {
	playlistID := models.SpotifyPlaylistID(cmd.String("id"))
	name := cmd.String("name")
	format := cmd.String("format")
	output := cmd.String("output")

	if name == "" {
		name = playlistID
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

	tracks, err := r.engine.Tracks(ctx, session, playlistID, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	export := &models.PlaylistExport{
		Playlist: models.Playlist{Name: name, SpotifyPlaylistID: playlistID},
		Tracks:   tracks,
	}

	switch format {
	case "csv":
		result, err := formatter.WriteCSVExport(export, output)
		if err != nil {
			return err
		}
		r.writePlain("✓ Exported to %s\n", result.TracksFile)
		r.writePlain("✓ Metadata written to %s\n", result.MetadataFile)
		return nil
	case "markdown", "md":
		path, err := formatter.WriteMarkdownExport(export, output)
		if err != nil {
			return err
		}
		return r.writePlain("✓ Exported to %s\n", path)
	case "text", "txt":
		path, err := formatter.WriteTextExport(export, output)
		if err != nil {
			return err
		}
		return r.writePlain("✓ Exported to %s\n", path)
	default:
		return fmt.Errorf("%w: unknown format %q", shared.ErrInvalidFlag, format)
	}
}
