package audio

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lguibr/pickleball/game"
)

const sampleRate = beep.SampleRate(44100)

// SoundBoard plays the sound of every event in the frames it is handed.
// Until Initialize succeeds it is silent, so the game runs the same without
// an audio device.
type SoundBoard struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewSoundBoard() *SoundBoard {
	return &SoundBoard{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker. On failure the board stays silent.
func (sb *SoundBoard) Initialize() error {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	if sb.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		log.Printf("[AUDIO] speaker unavailable, running without sound: %v", err)
		return err
	}
	speaker.Play(sb.mixer)
	sb.initialized = true
	return nil
}

func (sb *SoundBoard) Enabled() bool {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	return sb.initialized
}

func (sb *SoundBoard) Present(frame game.Frame) {
	for _, sound := range SoundsFor(frame) {
		sb.Play(sound)
	}
}

// Play queues a sound on the mixer. It reports false when the board is silent.
func (sb *SoundBoard) Play(sound SoundType) bool {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	if !sb.initialized {
		return false
	}
	streamer := NewSound(sound, sampleRate)
	if streamer == nil {
		return false
	}
	speaker.Lock()
	sb.mixer.Add(streamer)
	speaker.Unlock()
	return true
}

// Cleanup stops all sounds and closes the speaker.
func (sb *SoundBoard) Cleanup() {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	if !sb.initialized {
		return
	}
	speaker.Lock()
	sb.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sb.initialized = false
}
