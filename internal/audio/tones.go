package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
)

// tone is a fixed-length oscillator.
type tone struct {
	freq     float64
	phase    float64
	length   int
	position int
	wave     Wave
	rate     beep.SampleRate
}

// NewTone creates a streamer that plays freq for d and then drains.
func NewTone(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &tone{freq: freq, length: rate.N(d), wave: wave, rate: rate}
}

func (o *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.length {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = -1
			if o.phase < 0.5 {
				val = 1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		}
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *tone) Err() error { return nil }

// fade applies a linear attack and release to a stream.
type fade struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewFade shapes s so it ramps up over attack and down over the final release
// of a sound lasting d.
func NewFade(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &fade{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(d),
	}
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if f.position < f.attack {
			vol = float64(f.position) / float64(f.attack)
		}
		if remaining := f.total - f.position; remaining < f.release {
			vol = math.Max(float64(remaining)/float64(f.release), 0)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		f.position++
	}
	return n, ok
}

func (f *fade) Err() error { return f.streamer.Err() }

// withVolume scales s linearly; 0 or less mutes it.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// CollectChime is a short bell: A5 with a quieter octave on top.
func CollectChime(rate beep.SampleRate, vol float64) beep.Streamer {
	const d = 120 * time.Millisecond
	fund := NewFade(NewTone(880, d, WaveSine, rate), d, 5*time.Millisecond, 100*time.Millisecond, rate)
	over := NewFade(NewTone(1760, d, WaveSine, rate), d, 5*time.Millisecond, 60*time.Millisecond, rate)
	return withVolume(beep.Mix(withVolume(fund, 0.7), withVolume(over, 0.3)), vol)
}

// WaveChime is a rising two-note square chime played when a new wave appears.
func WaveChime(rate beep.SampleRate, vol float64) beep.Streamer {
	n1 := NewFade(NewTone(987.77, 80*time.Millisecond, WaveSquare, rate), 80*time.Millisecond, 2*time.Millisecond, 30*time.Millisecond, rate)
	n2 := NewFade(NewTone(1318.51, 160*time.Millisecond, WaveSquare, rate), 160*time.Millisecond, 2*time.Millisecond, 120*time.Millisecond, rate)
	return withVolume(beep.Seq(n1, n2), vol)
}

// LossBuzz is a low sawtooth drop for a lost round.
func LossBuzz(rate beep.SampleRate, vol float64) beep.Streamer {
	n1 := NewFade(NewTone(220, 150*time.Millisecond, WaveSaw, rate), 150*time.Millisecond, 5*time.Millisecond, 40*time.Millisecond, rate)
	n2 := NewFade(NewTone(110, 350*time.Millisecond, WaveSaw, rate), 350*time.Millisecond, 5*time.Millisecond, 250*time.Millisecond, rate)
	return withVolume(beep.Seq(n1, n2), vol)
}
