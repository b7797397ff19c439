package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// StorageRepository reads and writes raw key-value pairs in the storage table.
// A missing key reads as the empty string; absence is a normal state, not an
// error.
type StorageRepository struct {
	db *sql.DB
}

// NewStorageRepository creates a new [StorageRepository] with the given database connection
func NewStorageRepository(db *sql.DB) *StorageRepository {
	return &StorageRepository{db: db}
}

// Get retrieves the value for a key. Returns "" when the key is absent.
func (r *StorageRepository) Get(key string) (string, error) {
	var value string
	err := r.db.QueryRow("SELECT value FROM storage WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return value, nil
}

// Set writes a value for a key, overwriting any existing value.
func (r *StorageRepository) Set(key, value string) error {
	query := `
		INSERT INTO storage (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`
	if _, err := r.db.Exec(query, key, value, time.Now()); err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}

// Delete removes a key. Deleting an absent key is not an error.
func (r *StorageRepository) Delete(key string) error {
	if _, err := r.db.Exec("DELETE FROM storage WHERE key = ?", key); err != nil {
		return fmt.Errorf("failed to delete key %q: %w", key, err)
	}
	return nil
}

// Keys lists all stored keys with the given prefix, ordered lexically.
func (r *StorageRepository) Keys(prefix string) ([]string, error) {
	rows, err := r.db.Query("SELECT key FROM storage WHERE key LIKE ? ORDER BY key ASC", prefix+"%")
	if err != nil {
		return nil, fmt.Errorf("failed to list keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("failed to scan key: %w", err)
		}
		keys = append(keys, key)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return keys, nil
}
