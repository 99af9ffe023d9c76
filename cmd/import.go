package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/desertthunder/ytimport/internal/services"
	"github.com/desertthunder/ytimport/internal/shared"
	"github.com/desertthunder/ytimport/internal/tasks"
	"github.com/urfave/cli/v3"
)

var validPrivacies = map[string]bool{
	"public":   true,
	"private":  true,
	"unlisted": true,
}

// importFunc runs one engine operation with progress reporting.
type importFunc func(ctx context.Context, progress chan<- tasks.ProgressUpdate) (*tasks.ImportRunResult, error)

// ImportFromFile creates a playlist from a newline-delimited file of video references.
func (r *Runner) ImportFromFile(ctx context.Context, cmd *cli.Command) error {
	path := cmd.StringArg("file")
	if path == "" {
		return fmt.Errorf("%w: path to a file of video URLs or IDs", shared.ErrMissingArgument)
	}

	if err := r.applyConfigFlag(cmd); err != nil {
		return err
	}

	opts, err := r.importOpts(cmd)
	if err != nil {
		return err
	}

	r.logger.Info("importing from file", "path", path, "title", opts.Title)

	return r.runImport(ctx, cmd, func(ctx context.Context, progress chan<- tasks.ProgressUpdate) (*tasks.ImportRunResult, error) {
		return r.engine.FromFile(ctx, path, opts, progress)
	})
}

// ImportFromPlaylistURL duplicates an existing playlist referenced by URL.
func (r *Runner) ImportFromPlaylistURL(ctx context.Context, cmd *cli.Command) error {
	rawURL := cmd.StringArg("url")
	if rawURL == "" {
		return fmt.Errorf("%w: playlist URL", shared.ErrMissingArgument)
	}

	if err := r.applyConfigFlag(cmd); err != nil {
		return err
	}

	opts, err := r.importOpts(cmd)
	if err != nil {
		return err
	}

	r.logger.Info("importing from playlist URL", "url", rawURL, "title", opts.Title)

	return r.runImport(ctx, cmd, func(ctx context.Context, progress chan<- tasks.ProgressUpdate) (*tasks.ImportRunResult, error) {
		return r.engine.FromPlaylistURL(ctx, rawURL, opts, progress)
	})
}

// ImportWatchLater duplicates the authenticated user's Watch Later playlist.
func (r *Runner) ImportWatchLater(ctx context.Context, cmd *cli.Command) error {
	if err := r.applyConfigFlag(cmd); err != nil {
		return err
	}

	opts, err := r.importOpts(cmd)
	if err != nil {
		return err
	}
	if cmd.String("title") == "" {
		opts.Title = "Watch Later (copy)"
	}

	r.logger.Info("duplicating watch later", "title", opts.Title)

	return r.runImport(ctx, cmd, func(ctx context.Context, progress chan<- tasks.ProgressUpdate) (*tasks.ImportRunResult, error) {
		return r.engine.FromWatchLater(ctx, opts, progress)
	})
}

// importOpts resolves playlist options from flags and config defaults.
func (r *Runner) importOpts(cmd *cli.Command) (tasks.ImportOpts, error) {
	opts := tasks.ImportOpts{
		Title:       cmd.String("title"),
		Description: cmd.String("description"),
		Privacy:     cmd.String("privacy"),
	}

	if opts.Title == "" {
		opts.Title = r.config.Importer.DefaultTitle
	}
	if opts.Description == "" {
		opts.Description = r.config.Importer.DefaultDescription
	}
	if opts.Privacy == "" {
		opts.Privacy = r.config.Importer.DefaultPrivacy
	}
	if opts.Privacy == "" {
		opts.Privacy = "unlisted"
	}

	if !validPrivacies[opts.Privacy] {
		return opts, fmt.Errorf("%w: privacy must be public, private or unlisted (got %q)", shared.ErrInvalidFlag, opts.Privacy)
	}

	return opts, nil
}

// runImport executes an engine operation with progress plumbing, one reauth
// retry on token expiry, and summary output.
func (r *Runner) runImport(ctx context.Context, cmd *cli.Command, run importFunc) error {
	if err := r.ensureAuthenticated(ctx); err != nil {
		return err
	}

	result, err := r.execImport(ctx, run)
	if err != nil && errors.Is(err, shared.ErrTokenExpired) {
		if reauthErr := r.reauthorize(ctx); reauthErr != nil {
			return reauthErr
		}
		result, err = r.execImport(ctx, run)
	}

	if err != nil {
		if errors.Is(err, shared.ErrWatchLaterUnavailable) {
			r.writePlainln("⚠ Your Watch Later playlist is empty or not accessible through the API.")
			r.writePlain("Export your Watch Later videos (e.g. via Google Takeout) and run\n")
			r.writePlain("'ytimport playlist-from-url <file>' with the exported list instead.\n")
			return nil
		}
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(result, cmd.Bool("pretty"))
	}

	r.printSummary(result)
	return nil
}

// execImport wires a progress channel and consumer around one engine call.
func (r *Runner) execImport(ctx context.Context, run importFunc) (*tasks.ImportRunResult, error) {
	progressCh := make(chan tasks.ProgressUpdate, 50)
	done := make(chan struct{})
	go r.consumeProgress(progressCh, done)

	result, err := run(ctx, progressCh)
	close(progressCh)
	<-done

	return result, err
}

// consumeProgress prints progress updates until the channel closes.
func (r *Runner) consumeProgress(progressCh <-chan tasks.ProgressUpdate, done chan<- struct{}) {
	for update := range progressCh {
		switch update.Phase {
		case tasks.ReadSource, tasks.ResolveSource:
			r.writePlain("📄 %s\n", update.Message)
		case tasks.FetchItems:
			r.writePlain("📥 %s\n", update.Message)
		case tasks.CreatePlaylist:
			r.writePlain("\n📝 %s\n", update.Message)
		case tasks.AddItems:
			r.writePlain("   %s\n", update.Message)
		}
	}
	close(done)
}

func (r *Runner) printSummary(result *tasks.ImportRunResult) {
	r.writePlain("\n")
	r.writePlainHeader("Import Complete!")
	r.writePlain("Playlist: %s\n", result.Title)
	r.writePlain("URL: %s\n", result.PlaylistURL)
	r.writePlain("Added: %d/%d\n", result.Added, result.Attempted)
	if result.Skipped > 0 {
		r.writePlain("Skipped: %d invalid input lines\n", result.Skipped)
	}

	if result.Failed > 0 {
		r.writePlain("\nFailed to add %d videos:\n", result.Failed)
		for _, item := range result.Items {
			if item.Err != nil {
				r.writePlain("  - %s: %v\n", item.VideoID, item.Err)
			}
		}
	}
}

// ensureAuthenticated primes the service with tokens stored in the config.
func (r *Runner) ensureAuthenticated(ctx context.Context) error {
	if r.youtube == nil {
		return fmt.Errorf("%w: YouTube credentials not configured, run 'ytimport setup config' and fill in config.toml", shared.ErrMissingCredentials)
	}

	if r.config.Credentials.YouTube.AccessToken == "" {
		return fmt.Errorf("%w: run 'ytimport auth login' first", shared.ErrNotAuthenticated)
	}

	if err := r.youtube.Authenticate(ctx, r.config.Credentials.YouTube.Map()); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAuthFailed, err)
	}

	return nil
}

// reauthorize runs the OAuth flow again after a token expiry and retries with
// the fresh tokens.
func (r *Runner) reauthorize(ctx context.Context) error {
	r.writePlainln("⚠ Access token expired. Starting reauthorization...")

	oauthSrv, ok := r.youtube.(services.OAuthService)
	if !ok {
		return fmt.Errorf("%w: service does not support reauthorization", shared.ErrAuthFailed)
	}

	token, err := r.doOAuth(oauthSrv, "reauthorization")
	if err != nil {
		return fmt.Errorf("reauthorization failed: %w", err)
	}

	if err := r.saveTokens(token); err != nil {
		return err
	}

	if err := oauthSrv.OAuthenticate(ctx, token); err != nil {
		return fmt.Errorf("failed to authenticate with new tokens: %w", err)
	}

	r.writePlainln("✓ Successfully reauthenticated. Retrying operation...")
	return nil
}
