// package tasks implements playlist import operations against a remote video service.
//
// The core abstraction is ImportEngine, which orchestrates the three import
// sources (reference file, source playlist, Watch Later) through a shared
// create-and-append tail. Operations emit progress updates via channels for
// non-blocking status reporting to CLI/UI layers.
package tasks

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/desertthunder/ytimport/internal/extract"
	"github.com/desertthunder/ytimport/internal/models"
	"github.com/desertthunder/ytimport/internal/services"
	"github.com/desertthunder/ytimport/internal/shared"
)

// WatchLaterID is the sentinel playlist ID the API historically used for
// Watch Later. The resolver falls back to it when no matching playlist
// appears in the user's library listing.
const WatchLaterID = "WL"

// DefaultWatchLaterNames are the localized Watch Later titles the resolver
// matches against when the importer config does not override them.
var DefaultWatchLaterNames = []string{
	"Watch Later",
	"Watch later",
	"Assistir mais tarde",
	"Ver más tarde",
	WatchLaterID,
}

// ImportOpts describes the destination playlist to create.
type ImportOpts struct {
	Title       string
	Description string
	Privacy     string
}

// ItemResult records the outcome of a single append attempt.
type ItemResult struct {
	VideoID string
	Err     error
}

// ImportRunResult contains all data from a completed import.
type ImportRunResult struct {
	PlaylistID  string       // Created playlist ID
	PlaylistURL string       // Canonical playlist URL
	Title       string       // Destination playlist title
	Attempted   int          // Items submitted to the append loop
	Added       int          // Successful appends
	Failed      int          // Failed appends
	Skipped     int          // Input lines that yielded no video ID
	Items       []ItemResult // Per-item outcomes in submission order
}

// RunRecorder persists import run summaries. Recording is best effort and
// never disrupts an import.
type RunRecorder interface {
	Record(run *models.ImportRun) error
}

// ImportEngine orchestrates playlist imports against a single remote service.
type ImportEngine struct {
	youtube  services.Service
	recorder RunRecorder

	// WatchLaterNames overrides the resolver's title list when non-empty.
	WatchLaterNames []string
}

// NewImportEngine creates a new ImportEngine. The recorder may be nil to
// disable run history.
func NewImportEngine(youtube services.Service, recorder RunRecorder) *ImportEngine {
	return &ImportEngine{youtube: youtube, recorder: recorder}
}

// SetService replaces the engine's remote service, used after the CLI builds
// a service during authentication.
func (e *ImportEngine) SetService(svc services.Service) {
	e.youtube = svc
}

// sendProgress sends a progress update through the channel without blocking.
// Uses select with default to ensure progress reporting never blocks execution.
func (e *ImportEngine) sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
		// Sent successfully
	default:
		// Channel full or closed, skip this update
	}
}

// FromFile imports videos listed in a newline-delimited reference file.
// Blank lines and lines starting with '#' are ignored; lines that match none
// of the supported reference shapes are counted as skipped.
func (e *ImportEngine) FromFile(ctx context.Context, path string, opts ImportOpts, progress chan<- ProgressUpdate) (*ImportRunResult, error) {
	e.sendProgress(progress, readSourceUpdate(path))

	ids, skipped, err := readReferences(path)
	if err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: %s contains no usable video references", shared.ErrNoValidReferences, path)
	}

	result, err := e.createAndPopulate(ctx, ids, opts, progress)
	if err != nil {
		return nil, err
	}

	result.Skipped = skipped
	e.record(models.RunModeFile, path, opts, result)
	return result, nil
}

// FromPlaylistURL imports the contents of an existing playlist identified by
// URL. Fails before any remote call when the URL carries no list parameter.
func (e *ImportEngine) FromPlaylistURL(ctx context.Context, rawURL string, opts ImportOpts, progress chan<- ProgressUpdate) (*ImportRunResult, error) {
	sourceID, ok := extract.PlaylistID(rawURL)
	if !ok {
		return nil, fmt.Errorf("%w: no playlist ID found in URL %q", shared.ErrInvalidInput, rawURL)
	}

	result, err := e.fromPlaylist(ctx, sourceID, opts, progress)
	if err != nil {
		return nil, err
	}

	e.record(models.RunModePlaylist, rawURL, opts, result)
	return result, nil
}

// FromPlaylist imports the contents of a source playlist by ID. Used by the
// TUI, which already holds resolved playlist IDs.
func (e *ImportEngine) FromPlaylist(ctx context.Context, sourceID string, opts ImportOpts, progress chan<- ProgressUpdate) (*ImportRunResult, error) {
	result, err := e.fromPlaylist(ctx, sourceID, opts, progress)
	if err != nil {
		return nil, err
	}

	e.record(models.RunModePlaylist, services.PlaylistURL(sourceID), opts, result)
	return result, nil
}

func (e *ImportEngine) fromPlaylist(ctx context.Context, sourceID string, opts ImportOpts, progress chan<- ProgressUpdate) (*ImportRunResult, error) {
	ids, err := e.collectVideoIDs(ctx, sourceID, progress)
	if err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: source playlist %s has no videos", shared.ErrInvalidInput, sourceID)
	}

	return e.createAndPopulate(ctx, ids, opts, progress)
}

// FromWatchLater duplicates the authenticated user's Watch Later playlist.
// Returns [shared.ErrWatchLaterUnavailable] when the resolved playlist has no
// retrievable items, which callers should treat as guidance rather than
// failure.
func (e *ImportEngine) FromWatchLater(ctx context.Context, opts ImportOpts, progress chan<- ProgressUpdate) (*ImportRunResult, error) {
	watchLaterID := e.resolveWatchLater(ctx, progress)

	ids, err := e.collectVideoIDs(ctx, watchLaterID, progress)
	if err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return nil, shared.ErrWatchLaterUnavailable
	}

	result, err := e.createAndPopulate(ctx, ids, opts, progress)
	if err != nil {
		return nil, err
	}

	e.record(models.RunModeWatchLater, "", opts, result)
	return result, nil
}

// resolveWatchLater pages through the user's playlists looking for a title
// from the configured Watch Later list or the literal sentinel ID. The first
// match wins without fetching further pages; when nothing matches the
// sentinel ID is returned. Resolution never fails.
func (e *ImportEngine) resolveWatchLater(ctx context.Context, progress chan<- ProgressUpdate) string {
	e.sendProgress(progress, resolveSourceUpdate())

	names := e.WatchLaterNames
	if len(names) == 0 {
		names = DefaultWatchLaterNames
	}

	pageToken := ""
	for {
		page, err := e.youtube.ListMyPlaylists(ctx, pageToken)
		if err != nil {
			return WatchLaterID
		}

		for _, pl := range page.Playlists {
			if pl.ID == WatchLaterID {
				return pl.ID
			}
			for _, name := range names {
				if pl.Title == name {
					return pl.ID
				}
			}
		}

		if page.NextPageToken == "" {
			return WatchLaterID
		}
		pageToken = page.NextPageToken
	}
}

// CollectItems drains every page of a playlist's items in playlist order.
// An empty first page yields an empty slice, not an error.
func (e *ImportEngine) CollectItems(ctx context.Context, playlistID string, progress chan<- ProgressUpdate) ([]services.PlaylistItem, error) {
	var items []services.PlaylistItem

	pageToken := ""
	for {
		e.sendProgress(progress, fetchItemsUpdate(len(items)))

		page, err := e.youtube.ListPlaylistItems(ctx, playlistID, pageToken)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to list items of %s: %w", shared.ErrAPIRequest, playlistID, err)
		}

		items = append(items, page.Items...)

		if page.NextPageToken == "" {
			return items, nil
		}
		pageToken = page.NextPageToken
	}
}

func (e *ImportEngine) collectVideoIDs(ctx context.Context, playlistID string, progress chan<- ProgressUpdate) ([]string, error) {
	items, err := e.CollectItems(ctx, playlistID, progress)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(items))
	for _, item := range items {
		if item.VideoID != "" {
			ids = append(ids, item.VideoID)
		}
	}
	return ids, nil
}

// createAndPopulate creates the destination playlist and appends each video
// sequentially. A create failure aborts before any append; append failures
// are recorded per item and never stop the loop.
func (e *ImportEngine) createAndPopulate(ctx context.Context, ids []string, opts ImportOpts, progress chan<- ProgressUpdate) (*ImportRunResult, error) {
	e.sendProgress(progress, createPlaylistUpdate(opts.Title))

	playlist, err := e.youtube.CreatePlaylist(ctx, opts.Title, opts.Description, opts.Privacy)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", shared.ErrPlaylistCreate, err)
	}

	result := &ImportRunResult{
		PlaylistID:  playlist.ID,
		PlaylistURL: services.PlaylistURL(playlist.ID),
		Title:       playlist.Title,
		Attempted:   len(ids),
		Items:       make([]ItemResult, 0, len(ids)),
	}

	for i, videoID := range ids {
		e.sendProgress(progress, addItemUpdate(i+1, len(ids), videoID))

		err := e.youtube.AddPlaylistItem(ctx, playlist.ID, videoID)
		result.Items = append(result.Items, ItemResult{VideoID: videoID, Err: err})
		if err != nil {
			result.Failed++
			continue
		}
		result.Added++
	}

	return result, nil
}

// record persists a run summary when a recorder is configured. Failures are
// swallowed so history never breaks an import.
func (e *ImportEngine) record(mode, sourceRef string, opts ImportOpts, result *ImportRunResult) {
	if e.recorder == nil {
		return
	}

	run := models.NewImportRun(0, mode, sourceRef, result.PlaylistID, result.PlaylistURL, result.Title, opts.Privacy)
	run.SetCounts(result.Attempted, result.Added, result.Failed, result.Skipped)
	_ = e.recorder.Record(run)
}

// readReferences parses a newline-delimited reference file into video IDs.
// The second return value counts non-blank, non-comment lines that matched
// no supported reference shape.
func readReferences(path string) ([]string, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: cannot read %s: %v", shared.ErrInvalidInput, path, err)
	}
	defer f.Close()

	var ids []string
	skipped := 0

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		id, ok := extract.VideoID(line)
		if !ok {
			skipped++
			continue
		}
		ids = append(ids, id)
	}

	if err := scanner.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: failed reading %s: %v", shared.ErrInvalidInput, path, err)
	}

	return ids, skipped, nil
}
