// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"testing"

	"github.com/desertthunder/ytimport/internal/services"
)

// MockService is a configurable test double for [services.Service].
//
// The zero value authenticates successfully and returns empty listings.
type MockService struct {
	Playlists    []services.Playlist
	Items        map[string][]services.PlaylistItem
	Created      []services.Playlist
	Added        map[string][]string
	AuthErr      error
	ListItemsErr error
	CreateErr    error
	AddErr       error
	ServiceName  string
}

func (m *MockService) Authenticate(ctx context.Context, credentials map[string]string) error {
	return m.AuthErr
}

func (m *MockService) ChannelInfo(ctx context.Context) (*services.Channel, error) {
	return &services.Channel{ID: "mock-channel", Title: "Mock Channel"}, nil
}

func (m *MockService) GetPlaylist(ctx context.Context, playlistID string) (*services.Playlist, error) {
	for _, pl := range m.Playlists {
		if pl.ID == playlistID {
			return &pl, nil
		}
	}
	return nil, errors.New("playlist not found")
}

func (m *MockService) ListMyPlaylists(ctx context.Context, pageToken string) (*services.PlaylistPage, error) {
	return &services.PlaylistPage{Playlists: m.Playlists}, nil
}

func (m *MockService) ListPlaylistItems(ctx context.Context, playlistID, pageToken string) (*services.PlaylistItemPage, error) {
	if m.ListItemsErr != nil {
		return nil, m.ListItemsErr
	}
	return &services.PlaylistItemPage{Items: m.Items[playlistID]}, nil
}

func (m *MockService) CreatePlaylist(ctx context.Context, title, description, privacy string) (*services.Playlist, error) {
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}

	created := services.Playlist{
		ID:          "mock-playlist",
		Title:       title,
		Description: description,
		Privacy:     privacy,
	}
	m.Created = append(m.Created, created)
	return &created, nil
}

func (m *MockService) AddPlaylistItem(ctx context.Context, playlistID, videoID string) error {
	if m.AddErr != nil {
		return m.AddErr
	}

	if m.Added == nil {
		m.Added = make(map[string][]string)
	}
	m.Added[playlistID] = append(m.Added[playlistID], videoID)
	return nil
}

func (m *MockService) Name() string {
	if m.ServiceName != "" {
		return m.ServiceName
	}
	return "mock"
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// FCloser simulates a failure when reading response body
type FCloser struct{}

func (f *FCloser) Read(p []byte) (n int, err error) {
	return 0, errors.New("read failed")
}

func (f *FCloser) Close() error {
	return nil
}

func MustGetwd(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	return wd
}

func MustChdir(t *testing.T, dir string) {
	t.Helper()
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to change directory to %s: %v", dir, err)
	}
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func AssertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		t.Errorf("Directory does not exist: %s", path)
		return
	}
	if !info.IsDir() {
		t.Errorf("Path is not a directory: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
