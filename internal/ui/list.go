package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/desertthunder/ytimport/internal/services"
)

var (
	_ list.Item = playlistItem{}
	_ list.Item = videoItem{}
)

// playlistItem wraps [services.Playlist] to implement [list.Item].
type playlistItem struct {
	playlist services.Playlist
}

func (i playlistItem) FilterValue() string { return i.playlist.Title }
func (i playlistItem) Title() string       { return i.playlist.Title }
func (i playlistItem) Description() string {
	desc := fmt.Sprintf("%d videos", i.playlist.ItemCount)
	if i.playlist.Description != "" {
		desc = fmt.Sprintf("%s • %s", desc, i.playlist.Description)
	}
	return desc
}

// videoItem wraps [services.PlaylistItem] to implement [list.Item].
type videoItem struct {
	item services.PlaylistItem
}

func (i videoItem) FilterValue() string { return i.item.Title }
func (i videoItem) Title() string {
	if i.item.Title != "" {
		return i.item.Title
	}
	return i.item.VideoID
}

func (i videoItem) Description() string {
	return services.WatchURL(i.item.VideoID)
}
