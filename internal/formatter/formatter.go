// package formatter provides functions to export playlist data to various formats (CSV, plain text, JSON)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/desertthunder/ytimport/internal/services"
	"github.com/desertthunder/ytimport/internal/shared"
)

// ExportToCSV converts a PlaylistExport to CSV format with columns: Position, VideoID, Title, URL
func ExportToCSV(export *services.PlaylistExport) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Position", "VideoID", "Title", "URL"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, item := range export.Items {
		record := []string{
			strconv.FormatInt(item.Position, 10),
			item.VideoID,
			item.Title,
			services.WatchURL(item.VideoID),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToText converts a PlaylistExport to plain text: a commented header
// followed by one watch URL per line. The output is itself valid input for
// a file-based import.
func ExportToText(export *services.PlaylistExport) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# Playlist: %s\n", export.Playlist.Title))
	if export.Playlist.Description != "" {
		buf.WriteString(fmt.Sprintf("# Description: %s\n", export.Playlist.Description))
	}
	buf.WriteString(fmt.Sprintf("# Videos: %d\n\n", len(export.Items)))

	for _, item := range export.Items {
		buf.WriteString(services.WatchURL(item.VideoID) + "\n")
	}

	return buf.Bytes(), nil
}

// ToMetadataJSON generates a JSON representation of playlist metadata (without items)
func ToMetadataJSON(playlist services.Playlist) ([]byte, error) {
	return shared.MarshalJSON(playlist, true)
}

// WriteCSVExport exports a playlist's items to a CSV file.
//
// Defaults to {playlist.ID}.csv as the filename.
func WriteCSVExport(export *services.PlaylistExport, filepath string) (string, error) {
	if filepath == "" {
		filepath = fmt.Sprintf("%s.csv", export.Playlist.ID)
	}

	csvData, err := ExportToCSV(export)
	if err != nil {
		return "", fmt.Errorf("failed to generate CSV: %w", err)
	}

	if err := os.WriteFile(filepath, csvData, 0644); err != nil {
		return "", fmt.Errorf("failed to write CSV file: %w", err)
	}

	return filepath, nil
}

// WriteTextExport exports a playlist to plain text format.
//
// Defaults to {playlist.ID}.txt as the filename.
func WriteTextExport(export *services.PlaylistExport, filepath string) (string, error) {
	if filepath == "" {
		filepath = fmt.Sprintf("%s.txt", export.Playlist.ID)
	}

	textData, err := ExportToText(export)
	if err != nil {
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	if err := os.WriteFile(filepath, textData, 0644); err != nil {
		return "", fmt.Errorf("failed to write text file: %w", err)
	}

	return filepath, nil
}

// WriteBulkExportManifest writes a JSON manifest summarizing a bulk export.
func WriteBulkExportManifest(result any, format, path string) error {
	manifest := struct {
		Format string `json:"format"`
		Result any    `json:"result"`
	}{
		Format: format,
		Result: result,
	}

	data, err := shared.MarshalJSON(manifest, true)
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	return nil
}
