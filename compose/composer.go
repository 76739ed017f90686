package compose

import (
	"errors"
	"math"
	"math/rand"

	"github.com/kostchei/Yourdio"
)

type (
	// Chapter is one generation request: an independent stretch of
	// music of the given duration, with its own prime sequence and
	// chaos seed. Chapters share nothing, so they can be rendered in
	// any order.
	Chapter struct {
		Index     int
		Minutes   float64
		Primes    []int
		ChaosSeed float64
	}

	// Composer renders the four layers of a chapter into a Sink. The
	// multi-chapter orchestration builds a fresh one per chapter, which
	// is how tempo and polyphony get to differ between chapters.
	Composer struct {
		params Params
		sink   yourdio.Sink
		voices Voices
	}
)

// NewComposer returns a Composer writing to sink with the given
// parameters.
func NewComposer(params Params, sink yourdio.Sink) *Composer {
	return &Composer{
		params: params,
		sink:   sink,
		voices: Voices{Max: params.MaxPolyphony},
	}
}

// GenerateChapter writes one whole chapter: tempo and program setup on
// all four tracks, then the harmonic bed, the melodic texture, the
// drones and the ambient events. The prime sequence must be non-empty.
// A non-positive duration produces just the setup events.
func (c *Composer) GenerateChapter(chapter Chapter) error {
	if len(chapter.Primes) == 0 {
		return errors.New("chapter needs a non-empty prime sequence")
	}
	for track := 0; track < yourdio.NumTracks; track++ {
		c.sink.Tempo(track, 0, float64(c.params.Tempo))
		c.sink.Program(track, track, clamp7(c.params.Patches[track]))
	}
	beats := int(chapter.Minutes * float64(c.params.Tempo))
	rng := rand.New(rand.NewSource(ornamentSeed(chapter)))
	c.generateHarmonicBed(beats, chapter.Primes)
	c.generateMelodicTexture(beats, chapter.Primes, rng)
	c.generateDrones(beats, chapter.Primes)
	c.generateAmbientEvents(beats, chapter.ChaosSeed)
	return nil
}

// ornamentSeed derives the ornament randomness from the chapter inputs,
// so identical requests render identical output.
func ornamentSeed(chapter Chapter) int64 {
	return int64(math.Float64bits(chapter.ChaosSeed)) ^ int64(chapter.Index)
}

// note writes directly to the sink, with pitch and velocity clamped to
// the MIDI range. Track doubles as the channel throughout.
func (c *Composer) note(track, pitch int, beat, duration float64, velocity int) {
	c.sink.Note(track, track, clamp7(pitch), beat, duration, clamp7(velocity))
}

// play is note routed through the polyphony manager.
func (c *Composer) play(track, pitch int, beat, duration float64, velocity int) bool {
	return c.voices.Note(c.sink, track, track, clamp7(pitch), beat, duration, clamp7(velocity))
}

func clamp7(v int) int {
	if v < 0 {
		return 0
	}
	if v > 127 {
		return 127
	}
	return v
}

func clamp7f(v float64) int {
	if v < 0 {
		return 0
	}
	if v > 127 {
		return 127
	}
	return int(v)
}
