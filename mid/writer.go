package mid

import (
	"fmt"
	"io"
	"math"
	"sort"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// TicksPerQuarter is the resolution of all written files. One beat of
// the composers maps to one quarter note.
const TicksPerQuarter = 480

// Event kinds in the order simultaneous events are written. Note offs
// go before note ons so a note ending exactly where the next one starts
// cannot swallow it.
const (
	kindTempo = iota
	kindProgram
	kindController
	kindPitchBend
	kindNoteOff
	kindNoteOn
)

type (
	// Writer buffers the events of one rendering and encodes them as a
	// multi-track Standard MIDI File, one SMF track per composer track.
	// Events may arrive in any order and at any beat; they are sorted
	// when the file is assembled. The zero Writer is ready to use and
	// grows its track list on demand.
	Writer struct {
		tracks []track
	}

	track []event

	event struct {
		tick uint32
		kind int
		msg  []byte
	}
)

// New returns a Writer preallocated for the given number of tracks.
// Writing to a higher track index later just grows the list.
func New(tracks int) *Writer {
	return &Writer{tracks: make([]track, tracks)}
}

// Tempo implements yourdio.Sink.
func (w *Writer) Tempo(t int, beat float64, bpm float64) {
	w.add(t, toTicks(beat), kindTempo, smf.MetaTempo(bpm))
}

// Program implements yourdio.Sink.
func (w *Writer) Program(t, channel, patch int) {
	w.add(t, 0, kindProgram, midi.ProgramChange(b4(channel), b7(patch)))
}

// Note implements yourdio.Sink, expanding the note into an on/off pair.
// A note too short for the resolution still ends one tick after it
// starts.
func (w *Writer) Note(t, channel, pitch int, beat, duration float64, velocity int) {
	on := toTicks(beat)
	off := toTicks(beat + duration)
	if off <= on {
		off = on + 1
	}
	w.add(t, on, kindNoteOn, midi.NoteOn(b4(channel), b7(pitch), b7(velocity)))
	w.add(t, off, kindNoteOff, midi.NoteOff(b4(channel), b7(pitch)))
}

// Controller implements yourdio.Sink.
func (w *Writer) Controller(t, channel int, beat float64, controller, value int) {
	w.add(t, toTicks(beat), kindController, midi.ControlChange(b4(channel), b7(controller), b7(value)))
}

// PitchBend implements yourdio.Sink. The value is relative, -8192 to
// 8191, with 0 centered.
func (w *Writer) PitchBend(t, channel int, beat float64, value int) {
	w.add(t, toTicks(beat), kindPitchBend, midi.Pitchbend(b4(channel), bend14(value)))
}

func (w *Writer) add(t int, tick uint32, kind int, msg []byte) {
	if t < 0 {
		return
	}
	for t >= len(w.tracks) {
		w.tracks = append(w.tracks, nil)
	}
	w.tracks[t] = append(w.tracks[t], event{tick: tick, kind: kind, msg: msg})
}

// SMF assembles the buffered events into an SMF document.
func (w *Writer) SMF() (*smf.SMF, error) {
	sm := smf.New()
	sm.TimeFormat = smf.MetricTicks(TicksPerQuarter)
	for i, events := range w.tracks {
		sorted := make(track, len(events))
		copy(sorted, events)
		sort.SliceStable(sorted, func(a, b int) bool {
			if sorted[a].tick != sorted[b].tick {
				return sorted[a].tick < sorted[b].tick
			}
			return sorted[a].kind < sorted[b].kind
		})
		var tr smf.Track
		last := uint32(0)
		for _, ev := range sorted {
			tr.Add(ev.tick-last, ev.msg)
			last = ev.tick
		}
		tr.Close(0)
		if err := sm.Add(tr); err != nil {
			return nil, fmt.Errorf("adding track %v: %w", i, err)
		}
	}
	return sm, nil
}

// WriteTo encodes the buffered file into out.
func (w *Writer) WriteTo(out io.Writer) (int64, error) {
	sm, err := w.SMF()
	if err != nil {
		return 0, err
	}
	return sm.WriteTo(out)
}

// WriteFile encodes the buffered file to the given path.
func (w *Writer) WriteFile(path string) error {
	sm, err := w.SMF()
	if err != nil {
		return err
	}
	return sm.WriteFile(path)
}

// toTicks converts a beat position to absolute ticks, clamping negative
// beats to zero.
func toTicks(beat float64) uint32 {
	if beat <= 0 {
		return 0
	}
	return uint32(math.Round(beat * TicksPerQuarter))
}

func b7(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 127 {
		return 127
	}
	return uint8(v)
}

func b4(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 15 {
		return 15
	}
	return uint8(v)
}

func bend14(v int) int16 {
	if v < -8192 {
		return -8192
	}
	if v > 8191 {
		return 8191
	}
	return int16(v)
}
