// Package tasks orchestrates playlist imports against the remote video service with real-time progress reporting.
//
// # Core Operations
//
// [ImportEngine] exposes three import sources:
//
//  1. [ImportEngine.FromFile] : newline-delimited reference file
//     - Parses each line with the extract package (blank and '#' lines skipped)
//     - Counts lines that yield no video ID as skipped input
//     - Fails before any remote call when no line yields an ID
//
//  2. [ImportEngine.FromPlaylistURL] : existing playlist by URL
//     - Extracts the list parameter, then drains every item page in order
//     - Fails before any remote call when the URL carries no list parameter
//
//  3. [ImportEngine.FromWatchLater] : the user's Watch Later playlist
//     - Resolves the playlist by localized title or the "WL" sentinel
//     - An empty result is reported as [shared.ErrWatchLaterUnavailable],
//       guidance rather than failure
//
// All three share one tail: create the destination playlist, then append
// each video strictly in sequence. A create failure aborts with zero
// appends; append failures are recorded per item and never stop the loop.
//
// # Progress Reporting
//
// All operations use non-blocking channels for progress updates.
//
// The [ProgressUpdate] struct contains phase, step counters, messages, and optional data for advanced UI rendering.
// Updates use select with default to prevent blocking.
//
// # Run History
//
// The optional [RunRecorder] interface enables automatic run persistence after imports.
//
// Runs are recorded silently (errors ignored) to avoid disrupting imports.
//
// # Bulk Export
//
// [ImportEngine.BulkExport] exports multiple playlists to files through a
// rate-limited worker pool. Text exports are valid input for FromFile,
// closing the backup/restore loop.
package tasks
