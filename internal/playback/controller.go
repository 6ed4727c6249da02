// package playback owns the transient "now playing" state machine.
//
// The controller is either idle (nothing selected) or holds one track from
// one playlist. Media backend failures are logged and absorbed; they flip
// the playing flag but never surface to callers, so a broken audio device
// cannot corrupt library operations.
package playback

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/desertthunder/resonate/internal/models"
	"github.com/desertthunder/resonate/internal/shared"
)

// Direction selects which neighbor Advance moves to.
type Direction int

const (
	Next Direction = iota
	Previous
)

// Controller sequences tracks and tracks volume/mute. It resolves tracks
// against the live library on every call, so library mutations made after
// selection are observed rather than cached.
type Controller struct {
	media   Media
	library func() *models.Library
	logger  *log.Logger
	state   models.PlaybackState

	// transient progress reported by the media backend, never persisted
	elapsed  float64
	duration float64
}

// NewController creates a controller starting idle at the given volume.
// The library func must return the current library on every call.
func NewController(media Media, library func() *models.Library, volume int, logger *log.Logger) *Controller {
	if media == nil {
		media = NopMedia{}
	}
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Controller{
		media:   media,
		library: library,
		logger:  logger,
		state:   models.NewPlaybackState(volume),
	}
}

// State returns a copy of the current playback state.
func (c *Controller) State() models.PlaybackState {
	return c.state
}

// Current returns the selected track, or nil when idle or when the track
// no longer exists in the library.
func (c *Controller) Current() *models.Track {
	if c.state.Idle() {
		return nil
	}
	return c.library().Track(c.state.PlaylistID, c.state.TrackID)
}

// Display returns the title, artist, and duration label for the transport
// line, substituting the idle defaults when nothing is selected.
func (c *Controller) Display() (title, artist, duration string) {
	track := c.Current()
	if track == nil {
		return models.DefaultTitle, models.UnknownArtist, shared.FormatTime(0)
	}
	return track.Title, track.Artist, track.Duration
}

// SelectTrack loads and plays the given track. Unknown playlist or track
// ids are errors; media failures are logged and leave the track selected
// but paused.
func (c *Controller) SelectTrack(ctx context.Context, playlistID, trackID string) error {
	lib := c.library()
	if lib.Playlist(playlistID) == nil {
		return fmt.Errorf("%w: %s", shared.ErrPlaylistNotFound, playlistID)
	}
	track := lib.Track(playlistID, trackID)
	if track == nil {
		return fmt.Errorf("%w: %s", shared.ErrTrackNotFound, trackID)
	}

	c.state.PlaylistID = playlistID
	c.state.TrackID = trackID
	c.state.IsPlaying = false
	c.elapsed = 0
	c.duration = 0

	if err := c.media.Load(ctx, track.FilePath); err != nil {
		c.logger.Warn("failed to load track", "path", track.FilePath, "err", err)
		return nil
	}
	c.applyVolume()

	if err := c.media.Play(); err != nil {
		c.logger.Warn("failed to start playback", "path", track.FilePath, "err", err)
		return nil
	}
	c.state.IsPlaying = true
	return nil
}

// TogglePlayPause flips between playing and paused. Idle is a no-op.
func (c *Controller) TogglePlayPause() {
	if c.state.Idle() {
		return
	}

	if c.state.IsPlaying {
		if err := c.media.Pause(); err != nil {
			c.logger.Warn("failed to pause playback", "err", err)
		}
		c.state.IsPlaying = false
		return
	}

	if err := c.media.Play(); err != nil {
		c.logger.Warn("failed to resume playback", "err", err)
		return
	}
	c.state.IsPlaying = true
}

// Advance moves to the neighboring track in the source playlist, wrapping
// at either end. A single-track playlist wraps onto itself and restarts.
// Idle, or a source playlist that no longer exists, is a no-op into idle.
func (c *Controller) Advance(ctx context.Context, dir Direction) error {
	if c.state.Idle() {
		return nil
	}

	pl := c.library().Playlist(c.state.PlaylistID)
	if pl == nil || len(pl.Songs) == 0 {
		c.clearSelection()
		return nil
	}

	idx := pl.TrackIndex(c.state.TrackID)
	if idx < 0 {
		c.clearSelection()
		return nil
	}

	n := len(pl.Songs)
	if dir == Previous {
		idx = (idx - 1 + n) % n
	} else {
		idx = (idx + 1) % n
	}

	return c.SelectTrack(ctx, pl.ID, pl.Songs[idx].ID)
}

// OnTimeUpdate records playhead progress reported by the media backend.
func (c *Controller) OnTimeUpdate(seconds float64) {
	c.elapsed = seconds
}

// OnMetadataLoaded records the decoded duration reported by the backend.
func (c *Controller) OnMetadataLoaded(durationSeconds float64) {
	c.duration = durationSeconds
}

// Progress returns the elapsed and total time labels for the transport.
func (c *Controller) Progress() (elapsed, total string) {
	return shared.FormatTime(c.elapsed), shared.FormatTime(c.duration)
}

// OnEnded advances to the next track when the current one finishes.
func (c *Controller) OnEnded(ctx context.Context) {
	if err := c.Advance(ctx, Next); err != nil {
		c.logger.Warn("failed to advance after track end", "err", err)
	}
}

// HandleRemoved clears playback when the selected track or its playlist is
// removed from the library. An empty trackID means the whole playlist is
// gone. Removals elsewhere leave playback untouched.
func (c *Controller) HandleRemoved(playlistID, trackID string) {
	if c.state.Idle() || c.state.PlaylistID != playlistID {
		return
	}
	if trackID != "" && trackID != c.state.TrackID {
		return
	}
	c.clearSelection()
}

// Seek moves the playhead within the selected track. Idle is a no-op;
// backend rejection is logged and absorbed.
func (c *Controller) Seek(seconds float64) {
	if c.state.Idle() {
		return
	}
	if seconds < 0 {
		seconds = 0
	}
	if err := c.media.Seek(seconds); err != nil {
		c.logger.Warn("failed to seek", "seconds", seconds, "err", err)
	}
}

// SetVolume clamps to 0-100 and applies it. Any explicit volume change
// lifts mute; non-zero volumes become the unmute restore point.
func (c *Controller) SetVolume(percent int) {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	c.state.Volume = percent
	c.state.IsMuted = false
	if percent > 0 {
		c.state.PreviousVolume = percent
	}
	c.applyVolume()
}

// ToggleMute drops the volume to zero, remembering the level it held;
// unmuting restores the exact volume present when mute was engaged.
func (c *Controller) ToggleMute() {
	if c.state.IsMuted {
		c.state.IsMuted = false
		c.state.Volume = c.state.PreviousVolume
	} else {
		c.state.PreviousVolume = c.state.Volume
		c.state.Volume = 0
		c.state.IsMuted = true
	}
	c.applyVolume()
}

func (c *Controller) applyVolume() {
	v := c.state.Volume
	if c.state.IsMuted {
		v = 0
	}
	if err := c.media.SetVolume(v); err != nil {
		c.logger.Warn("failed to set volume", "volume", v, "err", err)
	}
}

func (c *Controller) clearSelection() {
	if err := c.media.Stop(); err != nil {
		c.logger.Warn("failed to stop playback", "err", err)
	}
	c.state.PlaylistID = ""
	c.state.TrackID = ""
	c.state.IsPlaying = false
	c.elapsed = 0
	c.duration = 0
}
