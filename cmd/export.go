package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/desertthunder/ytimport/internal/shared"
	"github.com/desertthunder/ytimport/internal/tasks"
	"github.com/urfave/cli/v3"
)

var validFormats = map[string]bool{
	"json": true,
	"csv":  true,
	"txt":  true,
}

// ExportPlaylists exports playlists to local files with a concurrent worker pool.
//
// With no arguments every playlist owned by the authenticated user is
// exported; otherwise only the given playlist IDs are.
func (r *Runner) ExportPlaylists(ctx context.Context, cmd *cli.Command) error {
	format := cmd.String("format")
	if !validFormats[format] {
		return fmt.Errorf("%w: format must be json, csv or txt (got %q)", shared.ErrInvalidFlag, format)
	}

	if err := r.ensureAuthenticated(ctx); err != nil {
		return err
	}

	ids := cmd.Args().Slice()
	if len(ids) == 0 {
		var err error
		if ids, err = r.allPlaylistIDs(ctx); err != nil {
			if !errors.Is(err, shared.ErrTokenExpired) {
				return err
			}
			if reauthErr := r.reauthorize(ctx); reauthErr != nil {
				return reauthErr
			}
			if ids, err = r.allPlaylistIDs(ctx); err != nil {
				return err
			}
		}
	}

	if len(ids) == 0 {
		r.writePlain("No playlists found to export.\n")
		return nil
	}

	r.logger.Info("exporting playlists", "count", len(ids), "format", format)
	r.writePlain("Exporting %d playlists as %s...\n\n", len(ids), format)

	opts := tasks.BulkExportOpts{
		Format:     format,
		OutputDir:  cmd.String("output"),
		NumWorkers: cmd.Int("workers"),
		RateLimit:  cmd.Float("rate-limit"),
	}

	progressCh := make(chan tasks.ProgressUpdate, 50)
	done := make(chan struct{})
	go func() {
		for update := range progressCh {
			r.writePlain("%s\n", update.Message)
		}
		close(done)
	}()

	result, err := r.engine.BulkExport(ctx, progressCh, ids, opts)
	close(progressCh)
	<-done

	if err != nil {
		return err
	}

	r.writePlain("\n")
	r.writePlainHeader("Export Complete!")
	r.writePlain("Exported: %d/%d playlists\n", result.SuccessfulExports, result.TotalPlaylists)
	r.writePlain("Output directory: %s\n", result.OutputDirectory)
	if result.ManifestPath != "" {
		r.writePlain("Manifest: %s\n", result.ManifestPath)
	}

	if result.FailedExports > 0 {
		r.writePlain("\nFailed to export %d playlists:\n", result.FailedExports)
		for _, res := range result.Results {
			if !res.Success {
				r.writePlain("  - %s: %v\n", res.PlaylistTitle, res.Error)
			}
		}
	}

	return nil
}

// allPlaylistIDs drains the authenticated user's playlist listing.
func (r *Runner) allPlaylistIDs(ctx context.Context) ([]string, error) {
	var ids []string
	pageToken := ""
	for {
		page, err := r.youtube.ListMyPlaylists(ctx, pageToken)
		if err != nil {
			return nil, err
		}
		for _, pl := range page.Playlists {
			ids = append(ids, pl.ID)
		}
		if page.NextPageToken == "" {
			return ids, nil
		}
		pageToken = page.NextPageToken
	}
}
