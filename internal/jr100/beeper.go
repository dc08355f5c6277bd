package jr100

import (
	"errors"
	"fmt"
	"log"
	"math"
	"os"
	"sync"

	"github.com/ebitengine/oto/v3"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// ErrAudioUnavailable reports that no host audio device could be opened.
// The beeper keeps tracking frequency and gating so the core behaves the
// same, it just stays silent.
var ErrAudioUnavailable = errors.New("audio device unavailable")

const (
	DefaultSampleRate = 44100

	beeperAmplitude = 0.35
	debugEnvVar     = "JR100_DEBUG"
	debugAudio      = "audio"
	captureFile     = "jr100-audio.wav"
)

// Beeper renders the square wave gated by VIA Timer 1 through PB7. The
// frequency follows the timer latch: clock / (2 * (latch + 2)). Playback
// runs on oto's mixer goroutine, so the few fields shared with the
// emulation thread sit behind a mutex.
type Beeper struct {
	mu         sync.Mutex
	sampleRate int
	frequency  float64
	lineOn     bool
	phase      float64

	ctx    *oto.Context
	player *oto.Player

	debug    bool
	captured []int
}

func NewBeeper(sampleRate int) *Beeper {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	return &Beeper{
		sampleRate: sampleRate,
		debug:      os.Getenv(debugEnvVar) == debugAudio,
	}
}

// Start opens the host audio device and begins playback. A failure is
// reported as ErrAudioUnavailable and leaves the beeper in silent mode.
func (b *Beeper) Start() error {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   b.sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAudioUnavailable, err)
	}
	<-ready
	b.ctx = ctx
	b.player = ctx.NewPlayer(b)
	b.player.Play()
	return nil
}

// SetFrequency follows a Timer 1 reload. The new frequency takes effect
// at the next generated sample, which the CPU cannot distinguish from the
// next reload boundary.
func (b *Beeper) SetFrequency(hz float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.debug && hz != b.frequency {
		log.Printf("beeper: frequency %.1f Hz", hz)
	}
	b.frequency = hz
}

// LineOn opens the PB7 gate.
func (b *Beeper) LineOn() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.debug && !b.lineOn {
		log.Printf("beeper: line on at %.1f Hz", b.frequency)
	}
	b.lineOn = true
}

// LineOff closes the PB7 gate.
func (b *Beeper) LineOff() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.debug && b.lineOn {
		log.Print("beeper: line off")
	}
	b.lineOn = false
}

func (b *Beeper) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.frequency = 0
	b.lineOn = false
	b.phase = 0
}

// Read generates float32 little-endian mono samples for the oto player.
func (b *Beeper) Read(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := len(p) / 4
	step := b.frequency / float64(b.sampleRate)
	for i := 0; i < n; i++ {
		var sample float32
		if b.lineOn && b.frequency > 0 {
			if b.phase < 0.5 {
				sample = beeperAmplitude
			} else {
				sample = -beeperAmplitude
			}
			b.phase += step
			if b.phase >= 1 {
				b.phase -= 1
			}
		}
		putFloat32LE(p[i*4:], sample)
		if b.debug {
			b.captured = append(b.captured, int(sample*0x7FFF))
		}
	}
	return n * 4, nil
}

// Close stops playback and, in audio-debug mode, flushes the captured
// samples to a WAV file in the working directory.
func (b *Beeper) Close() error {
	if b.player != nil {
		b.player.Close()
	}

	b.mu.Lock()
	captured := b.captured
	b.captured = nil
	b.mu.Unlock()
	if !b.debug || len(captured) == 0 {
		return nil
	}

	f, err := os.Create(captureFile)
	if err != nil {
		return fmt.Errorf("beeper: couldn't create capture file: %w", err)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, b.sampleRate, 16, 1, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: b.sampleRate},
		Data:           captured,
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("beeper: couldn't write capture: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("beeper: couldn't finish capture: %w", err)
	}
	log.Printf("beeper: wrote %d samples to %s", len(captured), captureFile)
	return nil
}

func putFloat32LE(p []byte, v float32) {
	bits := math.Float32bits(v)
	p[0] = byte(bits)
	p[1] = byte(bits >> 8)
	p[2] = byte(bits >> 16)
	p[3] = byte(bits >> 24)
}
