// Package beep synthesizes the single fixed tone a CHIP-8 machine plays
// whenever its sound timer is nonzero. The core never touches audio
// itself (spec.md §1 treats the audio device as an external
// collaborator); the renderer polls CPU.ST() and calls Play here.
package beep

import (
	"bytes"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const (
	sampleRate = 44100
	toneHz     = 440
	duration   = time.Second

	volumeStep = 0.2
	volumeMax  = 1.0
	volumeMin  = 0.0
)

// Beep is a one-shot sine tone, rewound and replayed every time the
// sound timer transitions from zero to nonzero.
type Beep struct {
	player *audio.Player
}

// New synthesizes the tone once and prepares it for playback.
func New() (*Beep, error) {
	numSamples := sampleRate * int(duration.Seconds())
	buf := make([]byte, numSamples*2)
	for i := 0; i < numSamples; i++ {
		amplitude := math.Sin(2.0 * math.Pi * float64(toneHz) * float64(i) / float64(sampleRate))
		sample := int16(amplitude * math.MaxInt16)
		buf[2*i] = byte(sample)
		buf[2*i+1] = byte(sample >> 8)
	}

	ctx := audio.NewContext(sampleRate)
	player, err := ctx.NewPlayer(bytes.NewReader(buf))
	if err != nil {
		return nil, fmt.Errorf("create audio player: %w", err)
	}

	return &Beep{player: player}, nil
}

// Play rewinds and starts the tone. It is safe to call while it is
// already playing.
func (b *Beep) Play() {
	if err := b.player.Rewind(); err != nil {
		log.Printf("couldn't rewind the audio player: %s\n", err.Error())
		return
	}
	b.player.Play()
}

func (b *Beep) VolumeUp() {
	b.setVolume(b.player.Volume() + volumeStep)
}

func (b *Beep) VolumeDown() {
	b.setVolume(b.player.Volume() - volumeStep)
}

func (b *Beep) setVolume(volume float64) {
	volume = min(volume, volumeMax)
	volume = max(volume, volumeMin)
	b.player.SetVolume(volume)
}
