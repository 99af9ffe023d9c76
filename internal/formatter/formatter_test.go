package formatter

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/desertthunder/ytimport/internal/services"
)

func sampleExport() *services.PlaylistExport {
	return &services.PlaylistExport{
		Playlist: services.Playlist{
			ID:          "PL123",
			Title:       "Favorites",
			Description: "Assorted videos",
			Privacy:     "unlisted",
			ItemCount:   2,
		},
		Items: []services.PlaylistItem{
			{VideoID: "dQw4w9WgXcQ", Title: "First Video", Position: 0},
			{VideoID: "abcdefghijk", Title: "Second Video", Position: 1},
		},
	}
}

func TestExportToCSV(t *testing.T) {
	data, err := ExportToCSV(sampleExport())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	if err != nil {
		t.Fatalf("failed to parse CSV output: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("expected header + 2 records, got %d rows", len(records))
	}
	if records[0][1] != "VideoID" {
		t.Errorf("expected VideoID header, got %s", records[0][1])
	}
	if records[1][1] != "dQw4w9WgXcQ" {
		t.Errorf("expected first video ID in row 1, got %s", records[1][1])
	}
	if records[2][3] != "https://www.youtube.com/watch?v=abcdefghijk" {
		t.Errorf("unexpected watch URL: %s", records[2][3])
	}
}

func TestExportToText(t *testing.T) {
	data, err := ExportToText(sampleExport())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	out := string(data)
	if !strings.Contains(out, "# Playlist: Favorites") {
		t.Error("expected playlist header comment")
	}
	if !strings.Contains(out, "https://www.youtube.com/watch?v=dQw4w9WgXcQ") {
		t.Error("expected watch URL line for first video")
	}

	// Every non-comment, non-blank line must be a watch URL so the file can
	// be fed back into a file import.
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !strings.HasPrefix(line, "https://www.youtube.com/watch?v=") {
			t.Errorf("unexpected non-URL line: %q", line)
		}
	}
}

func TestWriteExports(t *testing.T) {
	t.Run("WriteTextExport", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "out.txt")

		written, err := WriteTextExport(sampleExport(), path)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if written != path {
			t.Errorf("expected path %s, got %s", path, written)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read output: %v", err)
		}
		if !strings.Contains(string(data), "dQw4w9WgXcQ") {
			t.Error("expected video ID in output file")
		}
	})

	t.Run("WriteCSVExport", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "out.csv")

		if _, err := WriteCSVExport(sampleExport(), path); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if _, err := os.Stat(path); err != nil {
			t.Errorf("expected CSV file to exist: %v", err)
		}
	})

	t.Run("WriteBulkExportManifest", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "manifest.json")

		summary := map[string]any{"total_playlists": 2}
		if err := WriteBulkExportManifest(summary, "txt", path); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read manifest: %v", err)
		}
		if !strings.Contains(string(data), `"format": "txt"`) {
			t.Error("expected format field in manifest")
		}
	})
}
