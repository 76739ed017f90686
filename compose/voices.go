package compose

import "github.com/kostchei/Yourdio"

type (
	// Voices enforces the polyphony ceiling for the layers that submit
	// notes through it. Voices are freed when their note has ended by
	// the onset of the next submission; when all of them are busy, the
	// oldest sounding note loses its voice to the new one.
	Voices struct {
		Max    int
		active []voice
	}

	voice struct {
		track int
		pitch int
		end   float64
	}
)

// Note submits a note through the ceiling and returns whether it was
// written to the sink. Only a ceiling of zero or less makes submissions
// drop; otherwise the note always sounds, at worst cutting the oldest
// voice short.
func (v *Voices) Note(sink yourdio.Sink, track, channel, pitch int, beat, duration float64, velocity int) bool {
	n := 0
	for _, a := range v.active {
		if a.end > beat {
			v.active[n] = a
			n++
		}
	}
	v.active = v.active[:n]
	if len(v.active) >= v.Max {
		if len(v.active) == 0 {
			return false
		}
		copy(v.active, v.active[1:]) // steal the oldest voice
		v.active = v.active[:len(v.active)-1]
	}
	sink.Note(track, channel, pitch, beat, duration, velocity)
	v.active = append(v.active, voice{track: track, pitch: pitch, end: beat + duration})
	return true
}

// Active returns how many voices were sounding as of the last
// submission.
func (v *Voices) Active() int {
	return len(v.active)
}

// Pitches returns the pitches of the sounding voices, oldest first.
func (v *Voices) Pitches() []int {
	pitches := make([]int, len(v.active))
	for i, a := range v.active {
		pitches[i] = a.pitch
	}
	return pitches
}
