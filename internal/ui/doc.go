// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a two-view workflow over the local library:
//  1. [PlaylistListView] : Browse playlists
//  2. [TrackListView] : Browse tracks and drive playback
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern.
// All library and playback mutations happen synchronously inside Update, so the
// rendered view is always a pure function of the library and playback state.
//
// The transport line restyles itself from the playing track's color palette,
// falling back to the default accent theme when nothing is selected.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, q) plus
// player keys (space, n, p, m, +/-) with contextual help displayed via
// charmbracelet/bubbles/help.
package ui
