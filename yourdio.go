package yourdio

// The four textural layers of a chapter. Each layer writes all of its
// events to the track of the same index, and the MIDI channel always
// equals the track number.
const (
	TrackHarmonicBed = iota
	TrackMelodicTexture
	TrackDrones
	TrackAmbientEvents

	NumTracks
)

// DefaultPatch is the General MIDI program used for any layer the theme
// leaves unmapped (89, warm pad).
const DefaultPatch = 89

// Sink receives the events of a chapter as the composer produces them,
// one call per event. Times are in beats (quarter notes) from the start
// of the chapter. Events may arrive out of time order, so
// implementations that need an ordered stream have to sort. The
// composer clamps pitches, velocities and controller values to 0-127
// before emitting them.
type Sink interface {
	// Tempo sets the tempo of a track in beats per minute.
	Tempo(track int, beat float64, bpm float64)
	// Program assigns a General MIDI program to a channel at the start
	// of a track.
	Program(track, channel, patch int)
	// Note adds a note with the given onset and duration in beats.
	Note(track, channel, pitch int, beat, duration float64, velocity int)
	// Controller adds a control change event.
	Controller(track, channel int, beat float64, controller, value int)
	// PitchBend adds a pitch wheel event; value ranges -8192..8191 with
	// 0 centered.
	PitchBend(track, channel int, beat float64, value int)
}
