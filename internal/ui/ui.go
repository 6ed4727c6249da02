package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/desertthunder/resonate/internal/library"
	"github.com/desertthunder/resonate/internal/playback"
	"github.com/desertthunder/resonate/internal/theme"
)

// volumeStep is how far +/- moves the volume per keypress.
const volumeStep = 5

// ViewState represents the current view in the TUI.
type ViewState int

const (
	PlaylistListView ViewState = iota
	TrackListView
)

// Model represents the TUI application state.
type Model struct {
	ctx        context.Context
	view       ViewState
	manager    *library.Manager
	controller *playback.Controller

	width  int
	height int

	playlistList list.Model
	trackList    list.Model
	openPlaylist string // id of the playlist shown in TrackListView

	help help.Model
	keys keyMap
	err  error
}

// NewModel creates a new TUI model with the provided dependencies.
func NewModel(ctx context.Context, manager *library.Manager, controller *playback.Controller) *Model {
	m := &Model{
		ctx:        ctx,
		view:       PlaylistListView,
		manager:    manager,
		controller: controller,
		help:       help.New(),
		keys:       newKeyMap(),
	}
	m.playlistList = list.New(nil, list.NewDefaultDelegate(), 0, 0)
	m.playlistList.Title = "Playlists"
	m.trackList = list.New(nil, list.NewDefaultDelegate(), 0, 0)
	m.refreshPlaylists()
	return m
}

// Init is a no-op; the library is already loaded when the model is built.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.playlistList.SetSize(msg.Width-4, msg.Height-8)
		m.trackList.SetSize(msg.Width-4, msg.Height-8)
		return m, nil

	case tea.KeyMsg:
		if cmd, handled := m.handlePlayerKeys(msg); handled {
			return m, cmd
		}
		switch m.view {
		case PlaylistListView:
			return m.handlePlaylistListKeys(msg)
		case TrackListView:
			return m.handleTrackListKeys(msg)
		}
	}

	return m.updateLists(msg)
}

// View renders the current list above the transport line.
func (m *Model) View() string {
	th := m.currentTheme()

	var body string
	switch m.view {
	case PlaylistListView:
		body = m.playlistList.View()
	case TrackListView:
		body = m.trackList.View()
	}

	status := ""
	if m.err != nil {
		status = "\n" + th.Help.Render(fmt.Sprintf("error: %v", m.err))
	}

	helpView := m.help.ShortHelpView(m.helpKeys())
	return fmt.Sprintf("%s\n\n%s%s\n%s", body, m.renderTransport(th), status, helpView)
}

// handlePlayerKeys processes transport keys that work in every view.
func (m *Model) handlePlayerKeys(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return tea.Quit, true
	case key.Matches(msg, m.keys.playPause):
		m.controller.TogglePlayPause()
		return nil, true
	case key.Matches(msg, m.keys.next):
		m.err = m.controller.Advance(m.ctx, playback.Next)
		return nil, true
	case key.Matches(msg, m.keys.previous):
		m.err = m.controller.Advance(m.ctx, playback.Previous)
		return nil, true
	case key.Matches(msg, m.keys.mute):
		m.controller.ToggleMute()
		return nil, true
	case key.Matches(msg, m.keys.volumeUp):
		m.controller.SetVolume(m.controller.State().Volume + volumeStep)
		return nil, true
	case key.Matches(msg, m.keys.volumeDown):
		m.controller.SetVolume(m.controller.State().Volume - volumeStep)
		return nil, true
	}
	return nil, false
}

func (m *Model) handlePlaylistListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.enter):
		if pl, ok := m.playlistList.SelectedItem().(playlistItem); ok {
			m.openTrackList(pl.playlist.ID)
		}
		return m, nil
	case key.Matches(msg, m.keys.remove):
		if pl, ok := m.playlistList.SelectedItem().(playlistItem); ok {
			m.err = m.manager.DeletePlaylist(pl.playlist.ID)
			m.refreshPlaylists()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.playlistList, cmd = m.playlistList.Update(msg)
	return m, cmd
}

func (m *Model) handleTrackListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.back):
		m.view = PlaylistListView
		m.refreshPlaylists()
		return m, nil
	case key.Matches(msg, m.keys.enter):
		if item, ok := m.trackList.SelectedItem().(trackItem); ok {
			m.err = m.controller.SelectTrack(m.ctx, m.openPlaylist, item.track.ID)
		}
		return m, nil
	case key.Matches(msg, m.keys.remove):
		if item, ok := m.trackList.SelectedItem().(trackItem); ok {
			m.err = m.manager.DeleteTrack(m.openPlaylist, item.track.ID)
			m.refreshTracks()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.trackList, cmd = m.trackList.Update(msg)
	return m, cmd
}

func (m *Model) updateLists(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case PlaylistListView:
		m.playlistList, cmd = m.playlistList.Update(msg)
	case TrackListView:
		m.trackList, cmd = m.trackList.Update(msg)
	}
	return m, cmd
}

func (m *Model) openTrackList(playlistID string) {
	m.openPlaylist = playlistID
	m.refreshTracks()
	m.view = TrackListView
}

func (m *Model) refreshPlaylists() {
	playlists := m.manager.Library().Playlists
	items := make([]list.Item, len(playlists))
	for i, pl := range playlists {
		items[i] = playlistItem{playlist: pl}
	}
	m.playlistList.SetItems(items)
	m.playlistList.SetSize(m.width-4, m.height-8)
}

func (m *Model) refreshTracks() {
	pl := m.manager.Library().Playlist(m.openPlaylist)
	if pl == nil {
		m.view = PlaylistListView
		m.refreshPlaylists()
		return
	}

	items := make([]list.Item, len(pl.Songs))
	for i, track := range pl.Songs {
		items[i] = trackItem{track: track}
	}
	m.trackList.SetItems(items)
	m.trackList.Title = pl.Name
	m.trackList.SetSize(m.width-4, m.height-8)
}

// currentTheme adapts the stylesheet to the playing track's palette.
func (m *Model) currentTheme() theme.Theme {
	if track := m.controller.Current(); track != nil {
		return theme.FromPalette(track.ColorPalette)
	}
	return theme.Default()
}

func (m *Model) renderTransport(th theme.Theme) string {
	title, artist, duration := m.controller.Display()
	state := m.controller.State()

	icon := "⏸"
	if state.IsPlaying {
		icon = "▶"
	}

	elapsed, _ := m.controller.Progress()

	volume := fmt.Sprintf("vol %d%%", state.Volume)
	if state.IsMuted {
		volume = "muted"
	}

	return fmt.Sprintf("%s %s %s %s  %s",
		th.Transport.Render(icon),
		th.Title.Render(title),
		th.Subtitle.Render(artist),
		th.Transport.Render(elapsed+" / "+duration),
		th.Help.Render(volume),
	)
}

func (m *Model) helpKeys() []key.Binding {
	if m.view == TrackListView {
		return []key.Binding{m.keys.enter, m.keys.playPause, m.keys.next, m.keys.back, m.keys.quit}
	}
	return []key.Binding{m.keys.enter, m.keys.remove, m.keys.quit}
}
