package sound

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"os"
	"path/filepath"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/rs/zerolog"

	"github.com/marioamitrano01/Mario-s-Pac-Man/internal/log"
)

const sampleRate = 44100

// Effect names double as the WAV file names looked up in the sounds directory.
type Effect string

const (
	EffectStart  Effect = "start"
	EffectPellet Effect = "pellet"
	EffectDeath  Effect = "death"
	EffectWin    Effect = "win"
)

// fallback tones for effects without a file: duration (ms) and frequency (Hz)
var fallback = map[Effect]struct {
	ms   int
	freq float64
}{
	EffectStart:  {ms: 300, freq: 523},
	EffectPellet: {ms: 60, freq: 880},
	EffectDeath:  {ms: 400, freq: 220},
	EffectWin:    {ms: 500, freq: 1046},
}

var (
	audioOnce sync.Once
	audioCtx  *audio.Context
)

func audioContext() *audio.Context {
	audioOnce.Do(func() {
		audioCtx = audio.NewContext(sampleRate)
	})
	return audioCtx
}

// Manager plays short effects. A nil or disabled Manager is silent.
type Manager struct {
	ctx    *audio.Context
	clips  map[Effect][]byte
	logger zerolog.Logger
}

// New loads every effect from dir, synthesizing a beep for any missing file.
// The audio device is only opened when enabled is true.
func New(dir string, enabled bool) *Manager {
	m := &Manager{clips: make(map[Effect][]byte, len(fallback)), logger: log.WithComponent("sound")}
	if enabled {
		m.ctx = audioContext()
	}
	for effect, tone := range fallback {
		raw, err := os.ReadFile(filepath.Join(dir, string(effect)+".wav"))
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				m.logger.Warn().Err(err).Str("effect", string(effect)).Msg("load sound")
			}
			raw = synthBeepWAV(sampleRate, tone.ms, tone.freq)
		}
		m.clips[effect] = raw
	}
	m.logger.Debug().Bool("enabled", enabled).Str("dir", dir).Msg("sound ready")
	return m
}

// Enabled reports whether effects reach the audio device.
func (m *Manager) Enabled() bool {
	return m != nil && m.ctx != nil
}

func (m *Manager) Play(e Effect) {
	if !m.Enabled() {
		return
	}
	raw := m.clips[e]
	if len(raw) == 0 {
		return
	}
	// Decode from bytes each time to allow overlapping plays
	stream, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(raw))
	if err != nil {
		m.logger.Debug().Err(err).Str("effect", string(e)).Msg("decode sound")
		return
	}
	p, err := m.ctx.NewPlayer(stream)
	if err != nil {
		m.logger.Debug().Err(err).Str("effect", string(e)).Msg("create player")
		return
	}
	p.Play()
}

// wavHeader is the canonical 44-byte header of a PCM WAV file.
type wavHeader struct {
	RIFF          [4]byte
	ChunkSize     uint32
	WAVE          [4]byte
	Fmt           [4]byte
	FmtSize       uint32
	AudioFormat   uint16
	Channels      uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
	Data          [4]byte
	DataSize      uint32
}

// synthBeepWAV returns a mono 16-bit PCM WAV holding a sine tone.
func synthBeepWAV(rate, durationMs int, freq float64) []byte {
	samples := make([]int16, rate*durationMs/1000)
	for i := range samples {
		phase := 2 * math.Pi * freq * float64(i) / float64(rate)
		samples[i] = int16(math.Sin(phase) * math.MaxInt16 / 4)
	}
	dataSize := uint32(len(samples) * 2)
	hdr := wavHeader{
		RIFF:          [4]byte{'R', 'I', 'F', 'F'},
		ChunkSize:     36 + dataSize,
		WAVE:          [4]byte{'W', 'A', 'V', 'E'},
		Fmt:           [4]byte{'f', 'm', 't', ' '},
		FmtSize:       16,
		AudioFormat:   1,
		Channels:      1,
		SampleRate:    uint32(rate),
		ByteRate:      uint32(rate * 2),
		BlockAlign:    2,
		BitsPerSample: 16,
		Data:          [4]byte{'d', 'a', 't', 'a'},
		DataSize:      dataSize,
	}
	var buf bytes.Buffer
	buf.Grow(44 + int(dataSize))
	// Writes to a bytes.Buffer cannot fail.
	_ = binary.Write(&buf, binary.LittleEndian, hdr)
	_ = binary.Write(&buf, binary.LittleEndian, samples)
	return buf.Bytes()
}
