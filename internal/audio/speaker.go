package audio

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Speaker plays cues on the local sound device through one mixer.
type Speaker struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSpeaker creates a speaker. Call Init before playing.
func NewSpeaker() *Speaker {
	return &Speaker{
		mixer: &beep.Mixer{},
	}
}

// Init opens the sound device and starts the mixer.
func (s *Speaker) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}

	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Play mixes the cue in and returns immediately.
func (s *Speaker) Play(c Cue) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}

	st := Stream(c)
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// Close stops all sounds and releases the device.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}

	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	s.initialized = false
}

// Stream builds the finite streamer for a cue.
func Stream(c Cue) beep.Streamer {
	switch c {
	case CueHit:
		return beep.Take(sampleRate.N(180*time.Millisecond), newThud(sampleRate))
	case CueFlap:
		return beep.Take(sampleRate.N(60*time.Millisecond), newChirp(sampleRate, 500, 900))
	case CuePoint:
		return beep.Seq(
			beep.Take(sampleRate.N(50*time.Millisecond), newChirp(sampleRate, 880, 880)),
			beep.Take(sampleRate.N(70*time.Millisecond), newChirp(sampleRate, 1320, 1320)),
		)
	default:
		return beep.Silence(0)
	}
}

// thud is a low rumble mixed with noise under a fast exponential decay.
type thud struct {
	sr  beep.SampleRate
	pos int
	rng *rand.Rand
}

func newThud(sr beep.SampleRate) *thud {
	return &thud{sr: sr, rng: rand.New(rand.NewSource(1))}
}

func (g *thud) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Exp(-t * 20)
		noise := g.rng.Float64()*2 - 1
		rumble := math.Sin(2 * math.Pi * 90 * t)

		sample := 0.3 * envelope * (0.4*noise + 0.6*rumble)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *thud) Err() error {
	return nil
}

// chirp is a sine sweep from one frequency to another over 60ms, with a
// short fade in to avoid clicks.
type chirp struct {
	sr       beep.SampleRate
	from, to float64
	phase    float64
	pos      int
}

func newChirp(sr beep.SampleRate, from, to float64) *chirp {
	return &chirp{sr: sr, from: from, to: to}
}

func (g *chirp) Stream(samples [][2]float64) (n int, ok bool) {
	sweep := float64(g.sr.N(60 * time.Millisecond))
	for i := range samples {
		progress := math.Min(float64(g.pos)/sweep, 1)
		freq := g.from + (g.to-g.from)*progress
		fade := math.Min(float64(g.pos)/float64(g.sr.N(5*time.Millisecond)), 1)

		sample := 0.2 * fade * math.Sin(2*math.Pi*g.phase)
		samples[i][0] = sample
		samples[i][1] = sample

		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)
		g.pos++
	}
	return len(samples), true
}

func (g *chirp) Err() error {
	return nil
}
