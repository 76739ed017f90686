package compose

import (
	"errors"

	"github.com/kostchei/Yourdio"
)

// MasterPrimes is the prime pool a full composition draws from: chapter
// c takes the 8-element window starting at offset c, wrapping around
// the end of the pool.
var MasterPrimes = []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53}

const (
	DefaultChapters       = 12
	DefaultChapterMinutes = 30.0

	chapterPrimeWindow = 8
)

type (
	// Composition describes a full multi-chapter generation run. Zero
	// fields take the defaults, so Composition{Theme: t} is a complete
	// request.
	Composition struct {
		Theme    yourdio.Theme
		Chapters int     // number of chapters, DefaultChapters when zero
		Minutes  float64 // minutes per chapter, DefaultChapterMinutes when zero
		Primes   []int   // prime pool, MasterPrimes when empty
	}

	// ChapterPlan is one resolved chapter: the generation request plus
	// the intensity, tempo and polyphony the structural arc assigns to
	// it.
	ChapterPlan struct {
		Chapter
		Intensity float64
		Tempo     int
		Polyphony int
	}
)

// Plan resolves the composition into per-chapter plans. Each chapter
// gets its prime window and chaos seed, its arc intensity, a tempo
// interpolated across the theme's variation range and a polyphony
// ceiling between 18 and 32 voices; the tempo and polyphony movements
// only apply when the theme's evolution flags enable them.
func (c Composition) Plan() ([]ChapterPlan, error) {
	chapters := c.Chapters
	if chapters == 0 {
		chapters = DefaultChapters
	}
	if chapters < 0 {
		return nil, errors.New("composition needs a positive chapter count")
	}
	minutes := c.Minutes
	if minutes == 0 {
		minutes = DefaultChapterMinutes
	}
	pool := c.Primes
	if len(pool) == 0 {
		pool = MasterPrimes
	}
	plans := make([]ChapterPlan, chapters)
	for i := range plans {
		plans[i] = c.planChapter(i, chapters, minutes, pool)
	}
	return plans, nil
}

func (c Composition) planChapter(index, total int, minutes float64, pool []int) ChapterPlan {
	primes := make([]int, chapterPrimeWindow)
	for j := range primes {
		primes[j] = pool[(index+j)%len(pool)]
	}
	intensity := yourdio.ChapterIntensity(c.Theme.Arc, index, total)
	tempo := intOr(c.Theme.Tempo.Base, 58)
	if c.Theme.Evolution.Tempo {
		lo, hi := 52, 68
		if len(c.Theme.Tempo.VariationRange) >= 2 {
			lo, hi = c.Theme.Tempo.VariationRange[0], c.Theme.Tempo.VariationRange[1]
		}
		tempo = int(float64(lo) + intensity*float64(hi-lo))
	}
	polyphony := 32
	if c.Theme.Evolution.Polyphony {
		polyphony = int(18 + intensity*14)
	}
	return ChapterPlan{
		Chapter: Chapter{
			Index:     index,
			Minutes:   minutes,
			Primes:    primes,
			ChaosSeed: float64(pool[index%len(pool)]%97) / 97,
		},
		Intensity: intensity,
		Tempo:     tempo,
		Polyphony: polyphony,
	}
}

// GenerateChapter renders one planned chapter into sink, using the
// composition's theme with the plan's tempo and polyphony applied on
// top.
func (c Composition) GenerateChapter(plan ChapterPlan, sink yourdio.Sink) error {
	params := ResolveParams(c.Theme)
	params.Tempo = intOr(plan.Tempo, params.Tempo)
	params.MaxPolyphony = intOr(plan.Polyphony, params.MaxPolyphony)
	return NewComposer(params, sink).GenerateChapter(plan.Chapter)
}
