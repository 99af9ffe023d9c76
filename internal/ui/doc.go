// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a multi-view workflow for duplicating a playlist into a new one:
//  1. [PlaylistListView] : Browse and select one of your YouTube playlists
//  2. [ItemListView] : Preview the playlist's videos before duplicating
//  3. [ConfirmView] : Confirm the destination title and privacy
//  4. [ImportView] : Monitor real-time progress updates
//  5. [ResultView] : Display the created playlist URL and any failed appends
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern.
// Progress updates flow through a channel from the ImportEngine, providing non-blocking status reporting during imports.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, y/n, q) with contextual help displayed via charmbracelet/bubbles/help.
package ui
