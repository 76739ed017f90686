// Package soundscape renders short, loopable pieces for named game
// moments: single chapters with a preset duration, prime flavor and
// chaos seed instead of a full structural arc.
package soundscape

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kostchei/Yourdio"
	"github.com/kostchei/Yourdio/compose"
)

// Preset is the generation profile of one moment. The primes lean
// sparser for calm moments and denser for violent ones, and the chaos
// seed decides how eventful the ambient layer gets.
type Preset struct {
	Minutes     float64
	Primes      []int
	ChaosSeed   float64
	Description string
}

var presets = map[string]Preset{
	"carousing": {
		Minutes:     2,
		Primes:      []int{3, 5, 7, 11},
		ChaosSeed:   0.42,
		Description: "Lively tavern atmosphere",
	},
	"fight": {
		Minutes:     1.5,
		Primes:      []int{2, 3, 5, 7},
		ChaosSeed:   0.87,
		Description: "Intense combat music",
	},
	"stealth": {
		Minutes:     3,
		Primes:      []int{5, 7, 11, 13},
		ChaosSeed:   0.23,
		Description: "Tense sneaking atmosphere",
	},
	"victory": {
		Minutes:     1,
		Primes:      []int{3, 5, 7},
		ChaosSeed:   0.65,
		Description: "Victory fanfare",
	},
	"exploration": {
		Minutes:     4,
		Primes:      []int{7, 11, 13, 17},
		ChaosSeed:   0.31,
		Description: "Atmospheric exploration",
	},
	"tension": {
		Minutes:     2.5,
		Primes:      []int{2, 5, 11},
		ChaosSeed:   0.91,
		Description: "Building tension/dread",
	},
	"rest": {
		Minutes:     3,
		Primes:      []int{11, 13, 17},
		ChaosSeed:   0.15,
		Description: "Peaceful rest/campfire",
	},
	"death": {
		Minutes:     0.5,
		Primes:      []int{2, 3},
		ChaosSeed:   0.73,
		Description: "Death/failure sting",
	},
}

// Names returns the available preset names, sorted.
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the preset of the given name.
func Lookup(name string) (Preset, bool) {
	preset, ok := presets[name]
	return preset, ok
}

// Generate renders the named preset into sink as a single chapter of
// the given theme, at the theme's base tempo and default polyphony.
func Generate(name string, theme yourdio.Theme, sink yourdio.Sink) error {
	preset, ok := presets[name]
	if !ok {
		return fmt.Errorf("unknown event type %q, available: %v", name, strings.Join(Names(), ", "))
	}
	comp := compose.NewComposer(compose.ResolveParams(theme), sink)
	return comp.GenerateChapter(compose.Chapter{
		Minutes:   preset.Minutes,
		Primes:    preset.Primes,
		ChaosSeed: preset.ChaosSeed,
	})
}
