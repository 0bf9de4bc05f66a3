// Package audio plays short sound effects such as footsteps.
package audio

import (
	"errors"
	"fmt"
	"io"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
	"go.uber.org/zap"

	"github.com/Faultbox/yarpgp/internal/logger"
)

// DefaultSampleRate is the speaker rate. Loaded sounds are resampled to it.
const DefaultSampleRate = beep.SampleRate(44100)

var (
	// ErrNotInitialized is returned by Play before Init succeeded.
	ErrNotInitialized = errors.New("audio not initialized")
	// ErrUnknownSound is returned by Play for a name that was never loaded.
	ErrUnknownSound = errors.New("unknown sound")
)

// Manager holds decoded sound effects and mixes them into the speaker.
type Manager struct {
	mu sync.RWMutex

	initialized bool
	volume      float64 // 0.0 to 1.0
	sounds      map[string]*beep.Buffer

	// Every playing effect is added here so sounds overlap
	mixer *beep.Mixer
	log   *zap.Logger
}

// New creates a new audio manager at full volume.
func New() *Manager {
	return &Manager{
		volume: 1.0,
		sounds: make(map[string]*beep.Buffer),
		mixer:  &beep.Mixer{},
		log:    logger.Named("audio"),
	}
}

// Init opens the speaker. Calling it twice is a no-op.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	if err := speaker.Init(DefaultSampleRate, DefaultSampleRate.N(time.Second/30)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(m.mixer)

	m.initialized = true
	m.log.Info("speaker ready", zap.Int("sample_rate", int(DefaultSampleRate)))
	return nil
}

// Close silences the speaker. Loaded sounds are kept.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	m.initialized = false
}

// Initialized reports whether the speaker is open.
func (m *Manager) Initialized() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.initialized
}

// Load decodes WAV data from r and stores it under name, replacing any sound
// with that name. It works without Init so sounds can be prepared headless.
func (m *Manager) Load(name string, r io.Reader) error {
	streamer, format, err := wav.Decode(r)
	if err != nil {
		return fmt.Errorf("decode wav %s: %w", name, err)
	}
	defer streamer.Close()

	var src beep.Streamer = streamer
	if format.SampleRate != DefaultSampleRate {
		src = beep.Resample(4, format.SampleRate, DefaultSampleRate, streamer)
		format.SampleRate = DefaultSampleRate
	}

	buf := beep.NewBuffer(format)
	buf.Append(src)

	m.mu.Lock()
	m.sounds[name] = buf
	m.mu.Unlock()

	m.log.Debug("sound loaded",
		zap.String("name", name),
		zap.Int("samples", buf.Len()),
		zap.Int("channels", format.NumChannels),
	)
	return nil
}

// Has reports whether name was loaded.
func (m *Manager) Has(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.sounds[name]
	return ok
}

// Length returns the duration of a loaded sound.
func (m *Manager) Length(name string) (time.Duration, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	buf, ok := m.sounds[name]
	if !ok {
		return 0, false
	}
	return DefaultSampleRate.D(buf.Len()), true
}

// Play starts the named sound. It returns immediately; the sound overlaps
// anything already playing.
func (m *Manager) Play(name string) error {
	m.mu.RLock()
	initialized := m.initialized
	buf, ok := m.sounds[name]
	vol := m.volume
	m.mu.RUnlock()

	if !initialized {
		return ErrNotInitialized
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSound, name)
	}

	s := &effects.Volume{
		Streamer: buf.Streamer(0, buf.Len()),
		Base:     2,
		Volume:   gainExponent(vol),
		Silent:   vol <= 0,
	}

	speaker.Lock()
	m.mixer.Add(s)
	speaker.Unlock()
	return nil
}

// SetVolume sets the effect volume (0.0 to 1.0). Sounds already playing keep
// their volume.
func (m *Manager) SetVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.volume = clamp(vol, 0, 1)
}

// Volume returns the effect volume.
func (m *Manager) Volume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.volume
}

// gainExponent converts a 0-1 volume to the base 2 exponent effects.Volume
// applies: 1 is unchanged, 0.5 is -1.
func gainExponent(vol float64) float64 {
	if vol <= 0 {
		return -100 // Effectively silent
	}
	return math.Log2(vol)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
