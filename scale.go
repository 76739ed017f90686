package yourdio

import "sort"

// Scale is an ordered set of MIDI note numbers, low to high, that all
// pitch material is drawn from. The built-in scales span one octave of a
// diatonic mode plus the octave root, 8 notes in total.
type Scale []int

// Degree returns the note at the given scale degree. Degrees wrap around
// the scale in both directions, so any integer is a valid degree. An
// empty scale yields 0.
func (s Scale) Degree(i int) int {
	if len(s) == 0 {
		return 0
	}
	return s[(i%len(s)+len(s))%len(s)]
}

// Copy makes a copy of a Scale.
func (s Scale) Copy() Scale {
	ret := make(Scale, len(s))
	copy(ret, s)
	return ret
}

var modalScales = map[string]Scale{
	"D_dorian":   {62, 64, 65, 67, 69, 71, 72, 74}, // D E F G A B C D
	"A_aeolian":  {69, 71, 72, 74, 76, 77, 79, 81}, // A B C D E F G A
	"E_phrygian": {64, 65, 67, 69, 71, 72, 74, 76}, // E F G A B C D E
}

// ModalScale returns the built-in scale of the given mode. Unknown names
// map to D_dorian so a composer can always be constructed; rejecting bad
// names is Theme.Validate's job.
func ModalScale(mode string) Scale {
	if s, ok := modalScales[mode]; ok {
		return s.Copy()
	}
	return modalScales["D_dorian"].Copy()
}

// ModeNames returns the names of the built-in modal scales, sorted.
func ModeNames() []string {
	names := make([]string, 0, len(modalScales))
	for name := range modalScales {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
