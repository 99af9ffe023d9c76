// package services defines interface Service for interacting with the
// YouTube Data API
package services

import (
	"context"
	"fmt"
)

// Service defines the operations the import pipeline needs from a remote
// video platform: authentication, playlist enumeration, playlist creation,
// and sequential item appends.
type Service interface {
	// Authenticate performs OAuth authentication with the service.
	// Returns an error if authentication fails.
	Authenticate(ctx context.Context, credentials map[string]string) error

	// ChannelInfo retrieves the authenticated user's channel.
	ChannelInfo(ctx context.Context) (*Channel, error)

	// GetPlaylist retrieves a specific playlist by ID.
	GetPlaylist(ctx context.Context, playlistID string) (*Playlist, error)

	// ListMyPlaylists retrieves one page of the authenticated user's
	// playlists. Pass an empty pageToken for the first page; a response with
	// an empty NextPageToken is the last page.
	ListMyPlaylists(ctx context.Context, pageToken string) (*PlaylistPage, error)

	// ListPlaylistItems retrieves one page of a playlist's items in playlist
	// order, using the same continuation-token contract as ListMyPlaylists.
	ListPlaylistItems(ctx context.Context, playlistID, pageToken string) (*PlaylistItemPage, error)

	// CreatePlaylist creates a new playlist owned by the authenticated user.
	// Privacy is one of "public", "private" or "unlisted".
	CreatePlaylist(ctx context.Context, title, description, privacy string) (*Playlist, error)

	// AddPlaylistItem appends a single video to the end of a playlist.
	AddPlaylistItem(ctx context.Context, playlistID, videoID string) error

	// Name returns the name of the service (e.g., "YouTube")
	Name() string
}

// Playlist represents a video playlist.
type Playlist struct {
	ID          string
	Title       string
	Description string
	Privacy     string
	ItemCount   int
}

// PlaylistItem represents a single video entry within a playlist.
type PlaylistItem struct {
	VideoID  string
	Title    string
	Position int64
}

// PlaylistPage is one page of a paginated playlist listing.
type PlaylistPage struct {
	Playlists     []Playlist
	NextPageToken string
}

// PlaylistItemPage is one page of a paginated playlist item listing.
type PlaylistItemPage struct {
	Items         []PlaylistItem
	NextPageToken string
}

// PlaylistExport represents a playlist with all its items, for file export.
type PlaylistExport struct {
	Playlist Playlist
	Items    []PlaylistItem
}

// Channel represents the authenticated user's channel.
type Channel struct {
	ID          string
	Title       string
	Description string
}

// PlaylistURL returns the canonical public URL for a playlist ID.
func PlaylistURL(playlistID string) string {
	return fmt.Sprintf("https://www.youtube.com/playlist?list=%s", playlistID)
}

// WatchURL returns the canonical watch URL for a video ID.
func WatchURL(videoID string) string {
	return fmt.Sprintf("https://www.youtube.com/watch?v=%s", videoID)
}
