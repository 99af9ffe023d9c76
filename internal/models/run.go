package models

import (
	"fmt"
	"time"
)

// Import run modes.
const (
	RunModeFile       = "file"
	RunModePlaylist   = "playlist"
	RunModeWatchLater = "watch-later"
)

// ImportRun records the outcome of a single playlist import: where the
// videos came from, the playlist that was created, and the per-item tallies.
type ImportRun struct {
	id          string
	sequence    int
	mode        string
	sourceRef   string
	playlistID  string
	playlistURL string
	title       string
	privacy     string
	attempted   int
	added       int
	failed      int
	skipped     int
	createdAt   time.Time
	updatedAt   time.Time
	deletedAt   *time.Time
}

// NewImportRun creates an import run for the given mode. The source
// reference is the input file path, source playlist URL, or empty for
// watch-later imports.
func NewImportRun(sequence int, mode, sourceRef, playlistID, playlistURL, title, privacy string) *ImportRun {
	now := time.Now()
	return &ImportRun{
		sequence:    sequence,
		mode:        mode,
		sourceRef:   sourceRef,
		playlistID:  playlistID,
		playlistURL: playlistURL,
		title:       title,
		privacy:     privacy,
		createdAt:   now,
		updatedAt:   now,
	}
}

func (r *ImportRun) ID() string            { return r.id }
func (r *ImportRun) Sequence() int         { return r.sequence }
func (r *ImportRun) Mode() string          { return r.mode }
func (r *ImportRun) SourceRef() string     { return r.sourceRef }
func (r *ImportRun) PlaylistID() string    { return r.playlistID }
func (r *ImportRun) PlaylistURL() string   { return r.playlistURL }
func (r *ImportRun) Title() string         { return r.title }
func (r *ImportRun) Privacy() string       { return r.privacy }
func (r *ImportRun) Attempted() int        { return r.attempted }
func (r *ImportRun) Added() int            { return r.added }
func (r *ImportRun) Failed() int           { return r.failed }
func (r *ImportRun) Skipped() int          { return r.skipped }
func (r *ImportRun) CreatedAt() time.Time  { return r.createdAt }
func (r *ImportRun) UpdatedAt() time.Time  { return r.updatedAt }
func (r *ImportRun) DeletedAt() *time.Time { return r.deletedAt }

func (r *ImportRun) SetID(id string)           { r.id = id }
func (r *ImportRun) SetSequence(n int)         { r.sequence = n }
func (r *ImportRun) SetCreatedAt(t time.Time)  { r.createdAt = t }
func (r *ImportRun) SetUpdatedAt(t time.Time)  { r.updatedAt = t }
func (r *ImportRun) SetDeletedAt(t *time.Time) { r.deletedAt = t }

// SetCounts records the per-item tallies for the run.
func (r *ImportRun) SetCounts(attempted, added, failed, skipped int) {
	r.attempted = attempted
	r.added = added
	r.failed = failed
	r.skipped = skipped
}

// Validate checks the run's data before persistence.
func (r *ImportRun) Validate() error {
	switch r.mode {
	case RunModeFile, RunModePlaylist, RunModeWatchLater:
	default:
		return fmt.Errorf("invalid run mode: %q", r.mode)
	}

	switch r.privacy {
	case "public", "private", "unlisted":
	default:
		return fmt.Errorf("invalid privacy value: %q", r.privacy)
	}

	if r.playlistID == "" {
		return fmt.Errorf("playlist ID is required")
	}

	if r.attempted < 0 || r.added < 0 || r.failed < 0 || r.skipped < 0 {
		return fmt.Errorf("counts cannot be negative")
	}

	if r.attempted != r.added+r.failed {
		return fmt.Errorf("attempted count %d does not match added %d + failed %d", r.attempted, r.added, r.failed)
	}

	return nil
}
