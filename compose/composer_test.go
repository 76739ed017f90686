package compose_test

import (
	"reflect"
	"testing"

	"github.com/kostchei/Yourdio"
	"github.com/kostchei/Yourdio/compose"
)

// collector is a Sink recording every event it receives, in call order.
type collector struct {
	events []sinkEvent
}

type sinkEvent struct {
	kind              string
	track, channel    int
	beat, duration    float64
	pitch, velocity   int
	controller, value int
	bpm               float64
}

func (c *collector) Tempo(track int, beat, bpm float64) {
	c.events = append(c.events, sinkEvent{kind: "tempo", track: track, beat: beat, bpm: bpm})
}

func (c *collector) Program(track, channel, patch int) {
	c.events = append(c.events, sinkEvent{kind: "program", track: track, channel: channel, value: patch})
}

func (c *collector) Note(track, channel, pitch int, beat, duration float64, velocity int) {
	c.events = append(c.events, sinkEvent{kind: "note", track: track, channel: channel, pitch: pitch,
		beat: beat, duration: duration, velocity: velocity})
}

func (c *collector) Controller(track, channel int, beat float64, controller, value int) {
	c.events = append(c.events, sinkEvent{kind: "cc", track: track, channel: channel, beat: beat,
		controller: controller, value: value})
}

func (c *collector) PitchBend(track, channel int, beat float64, value int) {
	c.events = append(c.events, sinkEvent{kind: "bend", track: track, channel: channel, beat: beat, value: value})
}

func (c *collector) notes(track int) []sinkEvent {
	var notes []sinkEvent
	for _, e := range c.events {
		if e.kind == "note" && e.track == track {
			notes = append(notes, e)
		}
	}
	return notes
}

func (c *collector) kind(kind string) []sinkEvent {
	var events []sinkEvent
	for _, e := range c.events {
		if e.kind == kind {
			events = append(events, e)
		}
	}
	return events
}

func TestResolveParamsDefaultTheme(t *testing.T) {
	got := compose.ResolveParams(yourdio.DefaultTheme())
	expected := compose.Params{
		Scale:              yourdio.Scale{62, 64, 65, 67, 69, 71, 72, 74},
		Tempo:              58,
		Patches:            [yourdio.NumTracks]int{89, 92, 95, 99},
		ChordIntervals:     []int{0, 3, 6},
		VariationIntervals: []int{0, 2, 4},
		VariationMod:       3,
		BedBaseDuration:    32,
		BedPrimeMod:        8,
		BedVelocity:        45,
		BedVelocityMod:     20,
		Motif:              []int{0, 2, 5, 7},
		MotifInterval:      17,
		RegisterMod:        2,
		OrnamentMod:        5,
		FibLength:          8,
		FibBaseUnit:        0.25,
		MelodyVelocity:     55,
		MelodyVelocityMod:  25,
		DroneMultiplier:    4,
		DroneCCInterval:    4,
		DroneVelocity:      50,
		EventThreshold:     0.87,
		EventCount:         64,
		LogisticR:          3.86,
		LorenzSigma:        10,
		LorenzRho:          28,
		LorenzBeta:         8.0 / 3.0,
		MaxPolyphony:       32,
	}
	if !reflect.DeepEqual(got, expected) {
		t.Fatalf("resolved params to unexpected result, got %#v, expected %#v", got, expected)
	}
}

func TestResolveParamsZeroTheme(t *testing.T) {
	got := compose.ResolveParams(yourdio.Theme{})
	if got.Tempo != 58 {
		t.Fatalf("tempo, got %v, expected 58", got.Tempo)
	}
	if !reflect.DeepEqual(got.Scale, yourdio.ModalScale("D_dorian")) {
		t.Fatalf("scale, got %v, expected D_dorian", got.Scale)
	}
	if got.EventThreshold != 0.87 {
		t.Fatalf("event threshold, got %v, expected 0.87", got.EventThreshold)
	}
	// an explicit all-zero ensemble means patch 0 on every track
	if got.Patches != [yourdio.NumTracks]int{} {
		t.Fatalf("patches, got %v, expected all zero", got.Patches)
	}
}

func TestResolveParamsBadThreshold(t *testing.T) {
	theme := yourdio.DefaultTheme()
	theme.Rhythm.AmbientEvents.Threshold = 1.5
	if got := compose.ResolveParams(theme).EventThreshold; got != 0.87 {
		t.Fatalf("threshold above 1, got %v, expected the default 0.87", got)
	}
	theme.Rhythm.AmbientEvents.Threshold = -2
	if got := compose.ResolveParams(theme).EventThreshold; got != 0.87 {
		t.Fatalf("negative threshold, got %v, expected the default 0.87", got)
	}
}

func TestGenerateChapterEmptyPrimes(t *testing.T) {
	composer := compose.NewComposer(compose.ResolveParams(yourdio.DefaultTheme()), &collector{})
	if err := composer.GenerateChapter(compose.Chapter{Minutes: 1}); err == nil {
		t.Fatalf("empty prime sequence should be an error")
	}
}

func TestGenerateChapter(t *testing.T) {
	sink := &collector{}
	params := compose.ResolveParams(yourdio.DefaultTheme())
	params.Tempo = 80
	composer := compose.NewComposer(params, sink)
	chapter := compose.Chapter{Index: 0, Minutes: 2, Primes: []int{2, 3, 5, 7, 11}, ChaosSeed: 0.5}
	if err := composer.GenerateChapter(chapter); err != nil {
		t.Fatalf("cannot generate chapter: %v", err)
	}
	// setup: one tempo and one program event per track
	tempos := sink.kind("tempo")
	if len(tempos) != yourdio.NumTracks {
		t.Fatalf("tempo events, got %v, expected %v", len(tempos), yourdio.NumTracks)
	}
	for _, ev := range tempos {
		if ev.bpm != 80 || ev.beat != 0 {
			t.Fatalf("tempo event, got %v BPM at %v, expected 80 at 0", ev.bpm, ev.beat)
		}
	}
	expectedPatches := []int{89, 92, 95, 99}
	for i, ev := range sink.kind("program") {
		if ev.track != i || ev.channel != i || ev.value != expectedPatches[i] {
			t.Fatalf("program event %v, got patch %v on track %v channel %v, expected %v on %v/%v",
				i, ev.value, ev.track, ev.channel, expectedPatches[i], i, i)
		}
	}
	// all four layers produced notes
	for track := 0; track < yourdio.NumTracks; track++ {
		if len(sink.notes(track)) == 0 {
			t.Fatalf("track %v produced no notes", track)
		}
	}
	// the bed starts at beat 0 and its pads cover the whole chapter
	beats := 2 * 80.0
	bed := sink.notes(yourdio.TrackHarmonicBed)
	if bed[0].beat != 0 {
		t.Fatalf("first bed note at %v, expected 0", bed[0].beat)
	}
	last := bed[len(bed)-1]
	if last.beat+last.duration < beats-2 {
		t.Fatalf("bed ends at %v, expected it to reach %v beats", last.beat+last.duration, beats)
	}
	// the drone sweep stays on CC 74 within the chapter
	ccs := sink.kind("cc")
	if len(ccs) == 0 {
		t.Fatalf("no drone controller sweep")
	}
	for _, ev := range ccs {
		if ev.track != yourdio.TrackDrones || ev.controller != 74 {
			t.Fatalf("controller event, got CC %v on track %v, expected 74 on %v",
				ev.controller, ev.track, yourdio.TrackDrones)
		}
		if ev.value < 0 || ev.value > 127 {
			t.Fatalf("controller value %v outside 0..127", ev.value)
		}
		if ev.beat < 0 || ev.beat >= beats {
			t.Fatalf("controller event at %v outside the chapter", ev.beat)
		}
	}
	// everything written is within MIDI range, channel matching track
	for _, ev := range sink.events {
		if ev.kind != "note" {
			continue
		}
		if ev.channel != ev.track {
			t.Fatalf("note channel %v on track %v", ev.channel, ev.track)
		}
		if ev.pitch < 0 || ev.pitch > 127 || ev.velocity < 0 || ev.velocity > 127 {
			t.Fatalf("note out of MIDI range: pitch %v velocity %v", ev.pitch, ev.velocity)
		}
	}
}

func TestGenerateChapterDeterministic(t *testing.T) {
	chapter := compose.Chapter{Index: 3, Minutes: 2, Primes: []int{5, 7, 11}, ChaosSeed: 0.37}
	a, b := &collector{}, &collector{}
	if err := compose.NewComposer(compose.ResolveParams(yourdio.DefaultTheme()), a).GenerateChapter(chapter); err != nil {
		t.Fatalf("cannot generate chapter: %v", err)
	}
	if err := compose.NewComposer(compose.ResolveParams(yourdio.DefaultTheme()), b).GenerateChapter(chapter); err != nil {
		t.Fatalf("cannot generate chapter: %v", err)
	}
	if !reflect.DeepEqual(a.events, b.events) {
		t.Fatalf("same chapter rendered differently on repeat")
	}
}

func TestGenerateChapterZeroDuration(t *testing.T) {
	sink := &collector{}
	composer := compose.NewComposer(compose.ResolveParams(yourdio.DefaultTheme()), sink)
	if err := composer.GenerateChapter(compose.Chapter{Primes: []int{2, 3}}); err != nil {
		t.Fatalf("cannot generate chapter: %v", err)
	}
	// setup only: a tempo and a program event per track, no music
	if got := len(sink.events); got != 2*yourdio.NumTracks {
		t.Fatalf("events for an empty chapter, got %v, expected %v", got, 2*yourdio.NumTracks)
	}
}

func TestGenerateChapterZeroPolyphony(t *testing.T) {
	sink := &collector{}
	params := compose.ResolveParams(yourdio.DefaultTheme())
	params.MaxPolyphony = 0
	composer := compose.NewComposer(params, sink)
	chapter := compose.Chapter{Minutes: 2, Primes: []int{2, 3, 5, 7, 11}, ChaosSeed: 0.5}
	if err := composer.GenerateChapter(chapter); err != nil {
		t.Fatalf("cannot generate chapter: %v", err)
	}
	// the melodic and drone layers submit through the voice ceiling and
	// get dropped; the bed and the ambient events write directly
	if got := len(sink.notes(yourdio.TrackMelodicTexture)); got != 0 {
		t.Fatalf("melodic notes with no voices, got %v, expected 0", got)
	}
	if got := len(sink.notes(yourdio.TrackDrones)); got != 0 {
		t.Fatalf("drone notes with no voices, got %v, expected 0", got)
	}
	if len(sink.notes(yourdio.TrackHarmonicBed)) == 0 || len(sink.notes(yourdio.TrackAmbientEvents)) == 0 {
		t.Fatalf("bed and ambient layers should not be affected by the voice ceiling")
	}
	// the controller sweep does not go through the ceiling either
	if len(sink.kind("cc")) == 0 {
		t.Fatalf("drone controller sweep should not be affected by the voice ceiling")
	}
}

func TestGenerateChapterThunder(t *testing.T) {
	// a growth rate this high pushes the map maximum far enough above
	// the threshold for the intense event pattern, which bends pitch
	sink := &collector{}
	params := compose.ResolveParams(yourdio.DefaultTheme())
	params.LogisticR = 3.99
	composer := compose.NewComposer(params, sink)
	if err := composer.GenerateChapter(compose.Chapter{Minutes: 2, Primes: []int{2, 3, 5}, ChaosSeed: 0.5}); err != nil {
		t.Fatalf("cannot generate chapter: %v", err)
	}
	bends := sink.kind("bend")
	if len(bends) < 2 {
		t.Fatalf("pitch bends, got %v, expected at least a dive and a recentering", len(bends))
	}
	if bends[0].value != -4096 || bends[0].track != yourdio.TrackAmbientEvents {
		t.Fatalf("first bend, got %v on track %v, expected -4096 on %v",
			bends[0].value, bends[0].track, yourdio.TrackAmbientEvents)
	}
	if bends[1].value != 0 {
		t.Fatalf("second bend, got %v, expected recentering to 0", bends[1].value)
	}
	rumble := 0
	for _, ev := range sink.notes(yourdio.TrackAmbientEvents) {
		if ev.pitch == 36 {
			rumble++
		}
	}
	if rumble < 8 {
		t.Fatalf("rumble notes, got %v, expected at least 8", rumble)
	}
}

func TestFibonacci(t *testing.T) {
	if got := compose.Fibonacci(0); len(got) != 0 {
		t.Fatalf("fibonacci of 0 terms, got %v, expected none", got)
	}
	if got := compose.Fibonacci(1); !reflect.DeepEqual(got, []int{1}) {
		t.Fatalf("fibonacci of 1 term, got %v, expected [1]", got)
	}
	if got := compose.Fibonacci(5); !reflect.DeepEqual(got, []int{1, 1, 2, 3, 5}) {
		t.Fatalf("fibonacci of 5 terms, got %v, expected [1 1 2 3 5]", got)
	}
	expected := []int{1, 1, 2, 3, 5, 8, 13, 21}
	if got := compose.Fibonacci(8); !reflect.DeepEqual(got, expected) {
		t.Fatalf("fibonacci of 8 terms, got %v, expected %v", got, expected)
	}
}
