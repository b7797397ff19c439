package repositories

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/zenith-music/zenith/internal/models"
	"github.com/zenith-music/zenith/internal/shared"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := shared.RunMigrations(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}
	return db
}

func TestStorageRepository(t *testing.T) {
	repo := NewStorageRepository(newTestDB(t))

	t.Run("missing keys read as empty", func(t *testing.T) {
		value, err := repo.Get("nope")
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if value != "" {
			t.Errorf("expected empty value, got %q", value)
		}
	})

	t.Run("set then get roundtrips", func(t *testing.T) {
		if err := repo.Set("greeting", "hello"); err != nil {
			t.Fatalf("set failed: %v", err)
		}
		value, err := repo.Get("greeting")
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if value != "hello" {
			t.Errorf("expected hello, got %q", value)
		}
	})

	t.Run("set overwrites existing values", func(t *testing.T) {
		repo.Set("counter", "1")
		repo.Set("counter", "2")
		value, _ := repo.Get("counter")
		if value != "2" {
			t.Errorf("expected 2, got %q", value)
		}
	})

	t.Run("delete removes the key", func(t *testing.T) {
		repo.Set("temp", "x")
		if err := repo.Delete("temp"); err != nil {
			t.Fatalf("delete failed: %v", err)
		}
		value, _ := repo.Get("temp")
		if value != "" {
			t.Errorf("expected empty after delete, got %q", value)
		}
	})

	t.Run("keys filters by prefix", func(t *testing.T) {
		repo.Set("bio_alice", "hi")
		repo.Set("bio_bob", "yo")
		repo.Set("avatar_alice", "a")

		keys, err := repo.Keys("bio_")
		if err != nil {
			t.Fatalf("keys failed: %v", err)
		}
		if len(keys) != 2 {
			t.Errorf("expected 2 bio keys, got %v", keys)
		}
	})
}

func TestSessionStore(t *testing.T) {
	t.Run("session roundtrip and clear", func(t *testing.T) {
		store := NewSessionStore(NewStorageRepository(newTestDB(t)))

		session, err := store.Session()
		if err != nil {
			t.Fatalf("session failed: %v", err)
		}
		if session.Valid() {
			t.Error("expected no session initially")
		}

		want := models.Session{Token: "eyJ0In0", Username: "alice"}
		if err := store.SaveSession(want); err != nil {
			t.Fatalf("save session failed: %v", err)
		}

		session, err = store.Session()
		if err != nil {
			t.Fatalf("session failed: %v", err)
		}
		if session != want {
			t.Errorf("expected %+v, got %+v", want, session)
		}

		if err := store.ClearSession(); err != nil {
			t.Fatalf("clear failed: %v", err)
		}
		session, _ = store.Session()
		if session.Valid() {
			t.Error("expected session cleared")
		}
	})

	t.Run("clearing the session keeps profile fields", func(t *testing.T) {
		store := NewSessionStore(NewStorageRepository(newTestDB(t)))

		store.SaveSession(models.Session{Token: "eyJ0In0", Username: "alice"})
		store.SaveProfile(models.Profile{Username: "alice", Bio: "hi there"})
		store.ClearSession()

		profile, err := store.Profile("alice")
		if err != nil {
			t.Fatalf("profile failed: %v", err)
		}
		if profile.Bio != "hi there" {
			t.Errorf("expected bio to survive logout, got %q", profile.Bio)
		}
	})

	t.Run("profiles are namespaced per username", func(t *testing.T) {
		store := NewSessionStore(NewStorageRepository(newTestDB(t)))

		store.SaveProfile(models.Profile{Username: "alice", Bio: "alice bio", Genres: []string{"jazz", "soul"}})
		store.SaveProfile(models.Profile{Username: "bob", Bio: "bob bio"})

		alice, err := store.Profile("alice")
		if err != nil {
			t.Fatalf("profile failed: %v", err)
		}
		bob, err := store.Profile("bob")
		if err != nil {
			t.Fatalf("profile failed: %v", err)
		}

		if alice.Bio != "alice bio" || bob.Bio != "bob bio" {
			t.Errorf("profiles bleed across users: alice=%q bob=%q", alice.Bio, bob.Bio)
		}
		if len(alice.Genres) != 2 || alice.Genres[0] != "jazz" {
			t.Errorf("unexpected genres for alice: %v", alice.Genres)
		}
		if len(bob.Genres) != 0 {
			t.Errorf("expected no genres for bob, got %v", bob.Genres)
		}
	})

	t.Run("profile without a username is rejected", func(t *testing.T) {
		store := NewSessionStore(NewStorageRepository(newTestDB(t)))

		if err := store.SaveProfile(models.Profile{Bio: "orphan"}); err == nil {
			t.Error("expected error for missing username")
		}
	})

	t.Run("theme defaults to light", func(t *testing.T) {
		store := NewSessionStore(NewStorageRepository(newTestDB(t)))

		theme, err := store.Theme()
		if err != nil {
			t.Fatalf("theme failed: %v", err)
		}
		if theme != "light" {
			t.Errorf("expected light, got %q", theme)
		}

		store.SetTheme("dark")
		theme, _ = store.Theme()
		if theme != "dark" {
			t.Errorf("expected dark, got %q", theme)
		}
	})

	t.Run("profile picture roundtrip", func(t *testing.T) {
		store := NewSessionStore(NewStorageRepository(newTestDB(t)))

		if err := store.SetProfilePicture("alice", "pic.png"); err != nil {
			t.Fatalf("set picture failed: %v", err)
		}
		picture, err := store.ProfilePicture("alice")
		if err != nil {
			t.Fatalf("picture failed: %v", err)
		}
		if picture != "pic.png" {
			t.Errorf("expected pic.png, got %q", picture)
		}

		other, _ := store.ProfilePicture("bob")
		if other != "" {
			t.Errorf("expected no picture for bob, got %q", other)
		}
	})
}
