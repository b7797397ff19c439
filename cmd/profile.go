package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"
	"github.com/zenith-music/zenith/internal/shared"
)

// ProfileShow prints the locally stored profile fields.
func (r *Runner) ProfileShow(ctx context.Context, cmd *cli.Command) error {
	db, store, err := r.openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	session, err := r.session(store)
	if err != nil {
		return err
	}

	profile, err := store.Profile(session.Username)
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}

	picture, err := store.ProfilePicture(session.Username)
	if err != nil {
		return fmt.Errorf("failed to load profile picture: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(map[string]any{
			"username": profile.Username,
			"bio":      profile.Bio,
			"genres":   profile.Genres,
			"avatar":   profile.Avatar,
			"picture":  picture,
		}, true)
	}

	r.writePlainHeader(fmt.Sprintf("Profile: %s", profile.Username))
	r.writePlain("Bio: %s\n", orNone(profile.Bio))
	r.writePlain("Favorite genres: %s\n", orNone(strings.Join(profile.Genres, ", ")))
	r.writePlain("Avatar: %s\n", orNone(profile.Avatar))
	r.writePlain("Picture: %s\n", orNone(picture))
	return nil
}

// ProfileEdit updates profile fields in the local store. Only the flags that
// were provided change; everything else keeps its stored value. Nothing here
// talks to the backend.
func (r *Runner) ProfileEdit(ctx context.Context, cmd *cli.Command) error {
	db, store, err := r.openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	session, err := r.session(store)
	if err != nil {
		return err
	}

	profile, err := store.Profile(session.Username)
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}

	changed := false
	if cmd.IsSet("bio") {
		profile.Bio = cmd.String("bio")
		changed = true
	}
	if cmd.IsSet("genres") {
		profile.Genres = splitList(cmd.String("genres"))
		changed = true
	}
	if cmd.IsSet("avatar") {
		profile.Avatar = cmd.String("avatar")
		changed = true
	}

	if changed {
		if err := store.SaveProfile(profile); err != nil {
			return fmt.Errorf("failed to save profile: %w", err)
		}
	}

	if cmd.IsSet("picture") {
		if err := store.SetProfilePicture(session.Username, cmd.String("picture")); err != nil {
			return fmt.Errorf("failed to save profile picture: %w", err)
		}
		changed = true
	}

	if !changed {
		return fmt.Errorf("%w: nothing to change, pass --bio, --genres, --avatar or --picture", shared.ErrMissingArgument)
	}

	return r.writePlain("✓ Profile saved\n")
}

// ProfileTheme shows or sets the stored UI theme.
func (r *Runner) ProfileTheme(ctx context.Context, cmd *cli.Command) error {
	db, store, err := r.openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	if target := cmd.String("set"); target != "" {
		if target != "light" && target != "dark" {
			return fmt.Errorf("%w: theme must be light or dark", shared.ErrInvalidFlag)
		}
		if err := store.SetTheme(target); err != nil {
			return fmt.Errorf("failed to store theme: %w", err)
		}
		return r.writePlain("✓ Theme set to %s\n", target)
	}

	theme, err := store.Theme()
	if err != nil {
		return fmt.Errorf("failed to load theme: %w", err)
	}
	return r.writePlain("Theme: %s\n", theme)
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}
