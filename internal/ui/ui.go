package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/ytimport/internal/services"
	"github.com/desertthunder/ytimport/internal/tasks"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	PlaylistListView ViewState = iota
	ItemListView
	ConfirmView
	ImportView
	ResultView
)

// Model represents the TUI application state.
type Model struct {
	ctx          context.Context
	view         ViewState
	youtube      services.Service
	engine       *tasks.ImportEngine
	opts         tasks.ImportOpts
	width        int
	height       int
	playlistList list.Model
	playlists    []services.Playlist
	itemList     list.Model
	selected     *services.PlaylistExport
	progressChan chan tasks.ProgressUpdate
	progress     tasks.ProgressUpdate
	result       *tasks.ImportRunResult
	err          error
	help         help.Model
	keys         keyMap
}

// NewModel creates a new TUI model with the provided dependencies.
//
// opts supplies defaults for the destination playlist; an empty Title is
// derived from the source playlist at confirmation time.
func NewModel(ctx context.Context, youtube services.Service, engine *tasks.ImportEngine, opts tasks.ImportOpts) *Model {
	return &Model{
		ctx:     ctx,
		view:    PlaylistListView,
		youtube: youtube,
		engine:  engine,
		opts:    opts,
		help:    help.New(),
		keys:    newKeyMap(),
	}
}

// Init initializes the TUI by fetching the user's playlists.
func (m *Model) Init() tea.Cmd {
	return m.fetchPlaylists()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.playlistList.Width() == 0 {
			m.playlistList.SetSize(msg.Width-4, msg.Height-8)
		}
		if m.itemList.Width() == 0 {
			m.itemList.SetSize(msg.Width-4, msg.Height-8)
		}
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case PlaylistListView:
			return m.handlePlaylistListKeys(msg)
		case ItemListView:
			return m.handleItemListKeys(msg)
		case ConfirmView:
			return m.handleConfirmKeys(msg)
		case ResultView:
			return m.handleResultKeys(msg)
		}

	case playlistsFetchedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.playlists = msg.playlists
		items := make([]list.Item, len(msg.playlists))
		for i, pl := range msg.playlists {
			items[i] = playlistItem{playlist: pl}
		}
		m.playlistList = list.New(items, list.NewDefaultDelegate(), 0, 0)
		m.playlistList.Title = "Your YouTube Playlists"
		m.playlistList.SetSize(m.width-4, m.height-8)
		return m, nil

	case itemsFetchedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.view = PlaylistListView
			return m, nil
		}
		m.selected = msg.export
		items := make([]list.Item, len(msg.export.Items))
		for i, item := range msg.export.Items {
			items[i] = videoItem{item: item}
		}
		m.itemList = list.New(items, list.NewDefaultDelegate(), 0, 0)
		m.itemList.Title = fmt.Sprintf("Videos in '%s'", msg.export.Playlist.Title)
		m.itemList.SetSize(m.width-4, m.height-8)
		m.view = ItemListView
		return m, nil

	case progressUpdateMsg:
		m.progress = tasks.ProgressUpdate(msg)
		return m, m.waitForProgress()

	case importCompleteMsg:
		m.result = msg.result
		m.err = msg.err
		m.view = ResultView
		if m.progressChan != nil {
			m.progressChan = nil
		}
		return m, nil
	}

	return m.updateLists(msg)
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	if m.err != nil && m.view != ResultView {
		return styles.err.Render(fmt.Sprintf("Error: %v\n\nPress q to quit", m.err))
	}

	switch m.view {
	case PlaylistListView:
		return m.renderPlaylistList()
	case ItemListView:
		return m.renderItemList()
	case ConfirmView:
		return m.renderConfirm()
	case ImportView:
		return m.renderImport()
	case ResultView:
		return m.renderResult()
	default:
		return ""
	}
}

func (m *Model) handlePlaylistListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "enter":
		selected := m.playlistList.SelectedItem()
		if selected != nil {
			if pl, ok := selected.(playlistItem); ok {
				return m, m.fetchItems(pl.playlist.ID)
			}
		}
	}

	var cmd tea.Cmd
	m.playlistList, cmd = m.playlistList.Update(msg)
	return m, cmd
}

func (m *Model) handleItemListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = PlaylistListView
		return m, nil
	case "enter":
		m.view = ConfirmView
		return m, nil
	}

	var cmd tea.Cmd
	m.itemList, cmd = m.itemList.Update(msg)
	return m, cmd
}

func (m *Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "n":
		m.view = ItemListView
		return m, nil
	case "y":
		m.view = ImportView
		return m, m.startImport()
	}
	return m, nil
}

func (m *Model) handleResultKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "r":
		m.view = PlaylistListView
		m.selected = nil
		m.result = nil
		m.err = nil
		return m, nil
	}
	return m, nil
}

func (m *Model) updateLists(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case PlaylistListView:
		m.playlistList, cmd = m.playlistList.Update(msg)
	case ItemListView:
		m.itemList, cmd = m.itemList.Update(msg)
	}
	return m, cmd
}

func (m *Model) fetchPlaylists() tea.Cmd {
	return func() tea.Msg {
		var playlists []services.Playlist
		pageToken := ""
		for {
			page, err := m.youtube.ListMyPlaylists(m.ctx, pageToken)
			if err != nil {
				return playlistsFetchedMsg{err: err}
			}
			playlists = append(playlists, page.Playlists...)
			if page.NextPageToken == "" {
				break
			}
			pageToken = page.NextPageToken
		}
		return playlistsFetchedMsg{playlists: playlists}
	}
}

func (m *Model) fetchItems(playlistID string) tea.Cmd {
	return func() tea.Msg {
		export, err := m.engine.ExportPlaylist(m.ctx, playlistID)
		return itemsFetchedMsg{export: export, err: err}
	}
}

// destOpts derives the destination playlist options for the selected source.
func (m *Model) destOpts() tasks.ImportOpts {
	opts := m.opts
	if opts.Title == "" {
		opts.Title = fmt.Sprintf("%s (copy)", m.selected.Playlist.Title)
	}
	return opts
}

func (m *Model) startImport() tea.Cmd {
	m.progressChan = make(chan tasks.ProgressUpdate, 50)
	progressChan := m.progressChan

	go func() {
		result, err := m.engine.FromPlaylist(m.ctx, m.selected.Playlist.ID, m.destOpts(), progressChan)
		m.result = result
		m.err = err
		close(progressChan)
	}()

	return m.waitForProgress()
}

func (m *Model) waitForProgress() tea.Cmd {
	return func() tea.Msg {
		if m.progressChan == nil {
			return importCompleteMsg{result: m.result, err: m.err}
		}

		update, ok := <-m.progressChan
		if !ok {
			return importCompleteMsg{result: m.result, err: m.err}
		}
		return progressUpdateMsg(update)
	}
}

func (m *Model) renderPlaylistList() string {
	helpKeys := []key.Binding{m.keys.enter, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n\n%s", m.playlistList.View(), helpView)
}

func (m *Model) renderItemList() string {
	duplicateKey := key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "duplicate"),
	)
	helpKeys := []key.Binding{duplicateKey, m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n\n%s", m.itemList.View(), helpView)
}

func (m *Model) renderConfirm() string {
	opts := m.destOpts()
	title := styles.title.Render(fmt.Sprintf("Duplicate '%s'?", m.selected.Playlist.Title))
	info := fmt.Sprintf(
		"\nSource: %s\nVideos: %d\nNew playlist: %s (%s)\n",
		m.selected.Playlist.Title, len(m.selected.Items), opts.Title, opts.Privacy,
	)

	helpKeys := []key.Binding{m.keys.yes, m.keys.no, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s\n%s\n%s", title, info, helpView)
}

func (m *Model) renderImport() string {
	title := styles.title.Render("Duplicating Playlist")

	var phase string
	switch m.progress.Phase {
	case tasks.FetchItems:
		phase = "Fetching source videos..."
	case tasks.CreatePlaylist:
		phase = "Creating destination playlist..."
	case tasks.AddItems:
		phase = fmt.Sprintf("Adding videos (%d/%d)", m.progress.Step, m.progress.Total)
	default:
		phase = "Processing..."
	}

	return fmt.Sprintf("%s\n\n%s\n%s", title, phase, m.progress.Message)
}

func (m *Model) renderResult() string {
	if m.err != nil {
		return styles.err.Render(fmt.Sprintf("Import failed: %v\n\nPress r to retry, q to quit", m.err))
	}

	if m.result == nil {
		return styles.err.Render("No result available\n\nPress r to retry, q to quit")
	}

	title := styles.ok.Render("✓ Playlist Duplicated!")
	info := fmt.Sprintf(
		"\nPlaylist: %s\nURL: %s\nAdded: %d/%d",
		m.result.Title,
		m.result.PlaylistURL,
		m.result.Added,
		m.result.Attempted,
	)

	var failed string
	if m.result.Failed > 0 {
		failed = fmt.Sprintf("\n\n%s", styles.warn.Render(fmt.Sprintf("Failed to add %d videos:", m.result.Failed)))
		for _, item := range m.result.Items {
			if item.Err != nil {
				failed += fmt.Sprintf("\n  • %s", item.VideoID)
			}
		}
	}

	helpKeys := []key.Binding{m.keys.restart, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s\n%s%s\n\n%s", title, info, failed, helpView)
}
