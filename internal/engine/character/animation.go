package character

import (
	"errors"
	"fmt"
	"image"

	"go.uber.org/zap"

	"github.com/Faultbox/yarpgp/internal/logger"
)

var (
	// ErrEmptyClip is returned when a clip is registered without frames.
	ErrEmptyClip = errors.New("clip has no frames")
	// ErrRegionTooSmall is returned when a clip region cannot hold one frame.
	ErrRegionTooSmall = errors.New("clip region narrower than one frame")
	// ErrInvalidFrameID is returned for negative atlas frame ids.
	ErrInvalidFrameID = errors.New("invalid frame id")
	// ErrFrameOutOfRange is returned when seeking outside the current clip.
	ErrFrameOutOfRange = errors.New("frame index out of range")
	// ErrNoClip is returned when seeking before any clip is selected.
	ErrNoClip = errors.New("no clip selected")
)

// Clip is an immutable ordered list of frame ids addressed within an atlas
// region. Frame ids index the region row-major in frame-size cells, so the
// playback order can differ from the storage order.
type Clip struct {
	frames []int
	region image.Rectangle
}

// FrameCount returns the number of frames, always at least 1.
func (c *Clip) FrameCount() int {
	return len(c.frames)
}

// FrameID returns the atlas frame id shown at playback index i.
func (c *Clip) FrameID(i int) int {
	return c.frames[i]
}

// Region returns the atlas sub-rectangle the frame ids are addressed within.
func (c *Clip) Region() image.Rectangle {
	return c.region
}

// Animation is the playback state of one entity: its clip catalog, the
// selected clip, the frame cursor and the frame timer.
type Animation struct {
	frameSize image.Point
	clips     map[string]*Clip

	current     *Clip
	currentName string

	frame         int
	elapsed       float64 // Seconds accumulated toward the next frame
	duration      float64 // Seconds for one pass of the clip
	frameDuration float64 // duration / frame count

	playing bool
	looping bool
}

// NewAnimation creates an empty catalog for an atlas with fixed-size frames.
// Playback starts in the playing, looping state.
func NewAnimation(frameWidth, frameHeight int) *Animation {
	return &Animation{
		frameSize: image.Pt(frameWidth, frameHeight),
		clips:     make(map[string]*Clip),
		playing:   true,
		looping:   true,
	}
}

// AddClip registers a clip under name. An existing clip with the same name is
// replaced. The frame ids are copied.
func (a *Animation) AddClip(name string, frameIDs []int, region image.Rectangle) error {
	if len(frameIDs) == 0 {
		return fmt.Errorf("clip %q: %w", name, ErrEmptyClip)
	}
	if a.frameSize.X <= 0 || a.frameSize.Y <= 0 || region.Dx() < a.frameSize.X {
		return fmt.Errorf("clip %q: region %v, frame %v: %w", name, region, a.frameSize, ErrRegionTooSmall)
	}
	for _, id := range frameIDs {
		if id < 0 {
			return fmt.Errorf("clip %q: frame id %d: %w", name, id, ErrInvalidFrameID)
		}
	}

	frames := make([]int, len(frameIDs))
	copy(frames, frameIDs)
	a.clips[name] = &Clip{frames: frames, region: region}
	return nil
}

// Clip returns the clip registered under name.
func (a *Animation) Clip(name string) (*Clip, bool) {
	c, ok := a.clips[name]
	return c, ok
}

// SelectClip makes name the current clip and rewinds to its first frame.
// An unknown name leaves the current clip untouched and returns false.
func (a *Animation) SelectClip(name string) bool {
	c, ok := a.clips[name]
	if !ok {
		logger.Debug("unknown animation clip",
			zap.String("clip", name),
			zap.String("current", a.currentName),
		)
		return false
	}

	a.current = c
	a.currentName = name
	a.frame = 0
	a.elapsed = 0
	a.recomputeFrameDuration()
	return true
}

// SetDuration sets the time in seconds for one pass of the current clip.
func (a *Animation) SetDuration(totalSeconds float64) {
	a.duration = totalSeconds
	a.recomputeFrameDuration()
}

func (a *Animation) recomputeFrameDuration() {
	if a.current == nil {
		a.frameDuration = 0
		return
	}
	a.frameDuration = a.duration / float64(a.current.FrameCount())
}

// GotoAndPlay seeks to frame and resumes playback.
func (a *Animation) GotoAndPlay(frame int) error {
	return a.seek(frame, true)
}

// GotoAndStop seeks to frame and pauses playback.
func (a *Animation) GotoAndStop(frame int) error {
	return a.seek(frame, false)
}

func (a *Animation) seek(frame int, playing bool) error {
	if a.current == nil {
		return ErrNoClip
	}
	if frame < 0 || frame >= a.current.FrameCount() {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrFrameOutOfRange, frame, a.current.FrameCount())
	}
	a.frame = frame
	a.playing = playing
	a.elapsed = 0
	return nil
}

// Update advances the frame cursor by dt seconds. Past the last frame a
// looping clip wraps to 0; a non-looping clip stops on its last frame.
func (a *Animation) Update(dt float64) {
	if !a.playing || a.current == nil || a.frameDuration <= 0 {
		return
	}

	a.elapsed += dt
	for a.elapsed >= a.frameDuration {
		a.elapsed -= a.frameDuration
		a.frame++
		if a.frame < a.current.FrameCount() {
			continue
		}
		if a.looping {
			a.frame = 0
			continue
		}
		a.frame = a.current.FrameCount() - 1
		a.stop()
		return
	}
}

func (a *Animation) stop() {
	a.playing = false
	a.elapsed = 0
}

// CurrentFrameRect returns the atlas source rectangle of the frame on screen.
// It reports false until a clip has been selected.
func (a *Animation) CurrentFrameRect() (image.Rectangle, bool) {
	if a.current == nil {
		return image.Rectangle{}, false
	}

	id := a.current.frames[a.frame]
	perRow := a.current.region.Dx() / a.frameSize.X
	origin := a.current.region.Min.Add(image.Pt(
		(id%perRow)*a.frameSize.X,
		(id/perRow)*a.frameSize.Y,
	))
	return image.Rectangle{Min: origin, Max: origin.Add(a.frameSize)}, true
}

// ClipName returns the name of the current clip, or "" if none is selected.
func (a *Animation) ClipName() string {
	return a.currentName
}

// Frame returns the current playback index within the clip.
func (a *Animation) Frame() int {
	return a.frame
}

// Elapsed returns the seconds accumulated toward the next frame.
func (a *Animation) Elapsed() float64 {
	return a.elapsed
}

// Duration returns the seconds for one pass of the clip.
func (a *Animation) Duration() float64 {
	return a.duration
}

// FrameDuration returns the seconds each frame is shown.
func (a *Animation) FrameDuration() float64 {
	return a.frameDuration
}

// Playing reports whether Update advances frames.
func (a *Animation) Playing() bool {
	return a.playing
}

// Looping reports whether playback wraps past the last frame.
func (a *Animation) Looping() bool {
	return a.looping
}

// SetLooping sets whether playback wraps past the last frame.
func (a *Animation) SetLooping(looping bool) {
	a.looping = looping
}

// FrameSize returns the atlas cell size.
func (a *Animation) FrameSize() image.Point {
	return a.frameSize
}
