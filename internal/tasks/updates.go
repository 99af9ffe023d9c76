package tasks

import "fmt"

// ProgressUpdate represents a progress event during a long-running operation.
//
// Used to send real-time updates to the CLI or UI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
	Data    any    // Optional phase-specific data for advanced UIs
}

// Operation phase enumeration
type Phase int

const (
	ReadSource Phase = iota
	ResolveSource
	FetchItems
	CreatePlaylist
	AddItems
	ExportPlaylists
)

func (p Phase) String() string {
	switch p {
	case ReadSource:
		return "read_source"
	case ResolveSource:
		return "resolve_source"
	case FetchItems:
		return "fetch_items"
	case CreatePlaylist:
		return "create_playlist"
	case AddItems:
		return "add_items"
	case ExportPlaylists:
		return "export_playlists"
	default:
		return ""
	}
}

func readSourceUpdate(path string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ReadSource,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Reading video references from %s...", path),
	}
}

func resolveSourceUpdate() ProgressUpdate {
	return ProgressUpdate{
		Phase:   ResolveSource,
		Step:    1,
		Total:   1,
		Message: "Looking up Watch Later playlist...",
	}
}

func fetchItemsUpdate(fetched int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchItems,
		Step:    fetched,
		Message: fmt.Sprintf("Fetching playlist items (%d so far)...", fetched),
	}
}

func createPlaylistUpdate(title string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   CreatePlaylist,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Creating playlist %q...", title),
	}
}

func addItemUpdate(step, total int, videoID string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   AddItems,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] Adding %s...", step, total, videoID),
	}
}

func exportingPlaylistUpdate(step, total int, name string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ExportPlaylists,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] Exporting: %s...", step, total, name),
	}
}

func exportCompletedUpdate(step, total int, name string, filesCount int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ExportPlaylists,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] ✓ %s (%d files)", step, total, name, filesCount),
	}
}

func exportFailedUpdate(step, total int, name string, err error) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ExportPlaylists,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] ✗ %s: %v", step, total, name, err),
	}
}
