package repositories

import (
	"encoding/json"
	"fmt"

	"github.com/zenith-music/zenith/internal/models"
)

// Well-known storage keys. Profile keys are suffixed with the username.
const (
	keyToken    = "token"
	keyUsername = "username"
	keyTheme    = "current_theme"
)

func bioKey(username string) string { return "bio_" + username }

func genresKey(username string) string { return "favoriteGenres_" + username }

func avatarKey(username string) string { return "avatar_" + username }

func pictureKey(username string) string { return "profile_picture_" + username }

// SessionStore persists the session and locally edited profile fields.
//
// Profile fields are namespaced per username; one user's edits are never
// visible under another user's keys. None of this data is sent to the
// backend.
type SessionStore struct {
	storage *StorageRepository
}

// NewSessionStore creates a [SessionStore] over the given storage repository.
func NewSessionStore(storage *StorageRepository) *SessionStore {
	return &SessionStore{storage: storage}
}

// Session loads the stored session. An absent token or username yields an
// invalid (but non-error) session.
func (s *SessionStore) Session() (models.Session, error) {
	token, err := s.storage.Get(keyToken)
	if err != nil {
		return models.Session{}, err
	}
	username, err := s.storage.Get(keyUsername)
	if err != nil {
		return models.Session{}, err
	}
	return models.Session{Token: token, Username: username}, nil
}

// SaveSession stores the session after a successful login.
func (s *SessionStore) SaveSession(session models.Session) error {
	if err := s.storage.Set(keyToken, session.Token); err != nil {
		return err
	}
	return s.storage.Set(keyUsername, session.Username)
}

// ClearSession removes the session at logout. Profile fields stay.
func (s *SessionStore) ClearSession() error {
	if err := s.storage.Delete(keyToken); err != nil {
		return err
	}
	return s.storage.Delete(keyUsername)
}

// Theme returns the stored UI theme, defaulting to "light".
func (s *SessionStore) Theme() (string, error) {
	theme, err := s.storage.Get(keyTheme)
	if err != nil {
		return "", err
	}
	if theme == "" {
		theme = "light"
	}
	return theme, nil
}

// SetTheme stores the UI theme.
func (s *SessionStore) SetTheme(theme string) error {
	return s.storage.Set(keyTheme, theme)
}

// Profile loads the locally edited profile fields for a username.
func (s *SessionStore) Profile(username string) (models.Profile, error) {
	profile := models.Profile{Username: username}

	bio, err := s.storage.Get(bioKey(username))
	if err != nil {
		return profile, err
	}
	profile.Bio = bio

	avatar, err := s.storage.Get(avatarKey(username))
	if err != nil {
		return profile, err
	}
	profile.Avatar = avatar

	raw, err := s.storage.Get(genresKey(username))
	if err != nil {
		return profile, err
	}
	if raw != "" {
		if err := json.Unmarshal([]byte(raw), &profile.Genres); err != nil {
			return profile, fmt.Errorf("failed to decode genres for %s: %w", username, err)
		}
	}

	return profile, nil
}

// SaveProfile stores the profile fields under the user's key namespace.
func (s *SessionStore) SaveProfile(profile models.Profile) error {
	if profile.Username == "" {
		return fmt.Errorf("profile requires a username")
	}

	if err := s.storage.Set(bioKey(profile.Username), profile.Bio); err != nil {
		return err
	}
	if err := s.storage.Set(avatarKey(profile.Username), profile.Avatar); err != nil {
		return err
	}

	raw, err := json.Marshal(profile.Genres)
	if err != nil {
		return fmt.Errorf("failed to encode genres: %w", err)
	}
	return s.storage.Set(genresKey(profile.Username), string(raw))
}

// SetProfilePicture stores a profile picture reference for a username.
func (s *SessionStore) SetProfilePicture(username, picture string) error {
	return s.storage.Set(pictureKey(username), picture)
}

// ProfilePicture returns the stored profile picture reference, or "".
func (s *SessionStore) ProfilePicture(username string) (string, error) {
	return s.storage.Get(pictureKey(username))
}
