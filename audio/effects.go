package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/lguibr/pickleball/game"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
)

type SoundType int

const (
	SoundPaddle SoundType = iota
	SoundWall
	SoundScore
	SoundWin
	SoundLose
)

func (s SoundType) String() string {
	switch s {
	case SoundPaddle:
		return "paddle"
	case SoundWall:
		return "wall"
	case SoundScore:
		return "score"
	case SoundWin:
		return "win"
	case SoundLose:
		return "lose"
	}
	return "unknown"
}

// Volumes is the playback gain of every sound, between 0 and 1.
var Volumes = map[SoundType]float64{
	SoundPaddle: 0.4,
	SoundWall:   0.3,
	SoundScore:  0.5,
	SoundWin:    0.7,
	SoundLose:   0.7,
}

const (
	blipDuration  = 60 * time.Millisecond
	scoreDuration = 180 * time.Millisecond
	noteDuration  = 120 * time.Millisecond
	finalDuration = 240 * time.Millisecond
	attack        = 5 * time.Millisecond
	release       = 30 * time.Millisecond
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1.0
			if o.phase >= 0.5 {
				val = -1.0
			}
		}
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume maps a linear gain to a beep volume. Zero is silent since log2(0) is -Inf.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func tone(freq float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(freq, duration, WaveSquare, rate)
	return NewEnvelope(osc, duration, attack, release, rate)
}

func melody(rate beep.SampleRate, freqs ...float64) beep.Streamer {
	notes := make([]beep.Streamer, 0, len(freqs))
	for i, freq := range freqs {
		duration := noteDuration
		if i == len(freqs)-1 {
			duration = finalDuration
		}
		notes = append(notes, tone(freq, duration, rate))
	}
	return beep.Seq(notes...)
}

// NewSound builds the streamer for a sound at its configured volume.
func NewSound(sound SoundType, rate beep.SampleRate) beep.Streamer {
	var s beep.Streamer
	switch sound {
	case SoundPaddle:
		s = tone(440, blipDuration, rate)
	case SoundWall:
		s = tone(280, blipDuration, rate)
	case SoundScore:
		s = tone(660, scoreDuration, rate)
	case SoundWin:
		s = melody(rate, 523.25, 659.25, 783.99)
	case SoundLose:
		s = melody(rate, 659.25, 523.25, 392.00)
	default:
		return nil
	}
	return newVolume(s, Volumes[sound])
}

// SoundsFor lists the sounds a frame's events trigger, in event order.
func SoundsFor(frame game.Frame) []SoundType {
	var sounds []SoundType
	for _, event := range frame.Events {
		switch event.Type {
		case game.EventPaddleHit:
			sounds = append(sounds, SoundPaddle)
		case game.EventWallHit:
			sounds = append(sounds, SoundWall)
		case game.EventScored:
			sounds = append(sounds, SoundScore)
		case game.EventMatchComplete:
			if event.Side == game.SidePlayer {
				sounds = append(sounds, SoundWin)
			} else {
				sounds = append(sounds, SoundLose)
			}
		}
	}
	return sounds
}
