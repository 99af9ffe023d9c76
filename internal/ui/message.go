package ui

import (
	"github.com/desertthunder/ytimport/internal/services"
	"github.com/desertthunder/ytimport/internal/tasks"
)

// playlistsFetchedMsg carries the full playlist listing after pagination.
type playlistsFetchedMsg struct {
	playlists []services.Playlist
	err       error
}

// itemsFetchedMsg carries the selected playlist's full item listing.
type itemsFetchedMsg struct {
	export *services.PlaylistExport
	err    error
}

// progressUpdateMsg forwards one engine progress event into the Elm loop.
type progressUpdateMsg tasks.ProgressUpdate

// importCompleteMsg signals that the duplication run finished.
type importCompleteMsg struct {
	result *tasks.ImportRunResult
	err    error
}
