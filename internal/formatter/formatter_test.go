package formatter

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/zenith-music/zenith/internal/models"
	th "github.com/zenith-music/zenith/internal/testing"
)

func testExport() *models.PlaylistExport {
	return &models.PlaylistExport{
		Playlist: models.Playlist{
			ID:                42,
			Name:              "playlist_alice_beef",
			Mood:              "happy",
			SpotifyPlaylistID: "abc123",
		},
		Tracks: []models.Track{
			{Name: "Song One", Artist: "Artist One", PreviewURL: "https://p.example/1"},
			{Name: "Song Two", Artist: "Artist Two"},
		},
	}
}

func TestExporters(t *testing.T) {
	t.Run("ExportToCSV", func(t *testing.T) {
		data, err := ExportToCSV(testExport())
		if err != nil {
			t.Fatalf("ExportToCSV failed: %v", err)
		}

		output := string(data)
		if !strings.Contains(output, "Name,Artist,PreviewURL") {
			t.Errorf("CSV missing headers, got: %s", output)
		}
		if !strings.Contains(output, "Song One") {
			t.Errorf("CSV missing track name")
		}
		if !strings.Contains(output, "https://p.example/1") {
			t.Errorf("CSV missing preview URL")
		}
	})

	t.Run("ExportToMarkdown", func(t *testing.T) {
		data, err := ExportToMarkdown(testExport())
		if err != nil {
			t.Fatalf("ExportToMarkdown failed: %v", err)
		}

		output := string(data)
		if !strings.Contains(output, "# playlist_alice_beef") {
			t.Errorf("Markdown missing title, got: %s", output)
		}
		if !strings.Contains(output, "**Mood**: happy") {
			t.Errorf("Markdown missing mood")
		}
		if !strings.Contains(output, "1. Artist One - Song One ([preview](https://p.example/1))") {
			t.Errorf("Markdown missing first track with preview link, got: %s", output)
		}
		if !strings.Contains(output, "2. Artist Two - Song Two\n") {
			t.Errorf("Markdown should omit the preview link when absent")
		}
	})

	t.Run("ExportToText", func(t *testing.T) {
		data, err := ExportToText(testExport())
		if err != nil {
			t.Fatalf("ExportToText failed: %v", err)
		}

		output := string(data)
		if !strings.Contains(output, "Playlist: playlist_alice_beef") {
			t.Errorf("text missing playlist name")
		}
		if !strings.Contains(output, "Tracks: 2") {
			t.Errorf("text missing track count")
		}
		if !strings.Contains(output, "1. Artist One - Song One") {
			t.Errorf("text missing first track")
		}
	})
}

func TestWriteExports(t *testing.T) {
	t.Run("WriteCSVExport creates tracks and metadata files", func(t *testing.T) {
		base := filepath.Join(t.TempDir(), "export")

		result, err := WriteCSVExport(testExport(), base)
		if err != nil {
			t.Fatalf("WriteCSVExport failed: %v", err)
		}

		th.AssertFileExists(t, result.TracksFile)
		th.AssertFileExists(t, result.MetadataFile)

		metadata := th.MustReadFile(t, result.MetadataFile)
		if !strings.Contains(metadata, `"spotifyPlaylistId": "abc123"`) {
			t.Errorf("metadata missing playlist ID, got: %s", metadata)
		}
	})

	t.Run("WriteMarkdownExport writes a markdown file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "export.md")

		got, err := WriteMarkdownExport(testExport(), path)
		if err != nil {
			t.Fatalf("WriteMarkdownExport failed: %v", err)
		}
		if got != path {
			t.Errorf("expected path %s, got %s", path, got)
		}
		th.AssertFileExists(t, path)
	})

	t.Run("WriteTextExport writes a text file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "export.txt")

		got, err := WriteTextExport(testExport(), path)
		if err != nil {
			t.Fatalf("WriteTextExport failed: %v", err)
		}
		if got != path {
			t.Errorf("expected path %s, got %s", path, got)
		}

		content := th.MustReadFile(t, path)
		if !strings.Contains(content, "Mood: happy") {
			t.Errorf("text export missing mood, got: %s", content)
		}
	})
}
