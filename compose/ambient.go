package compose

import "github.com/kostchei/Yourdio"

// generateAmbientEvents writes track 3: rare textural events at the
// points where the logistic map breaks above its threshold. The
// event intensity picks one of three micro-patterns. This layer writes
// directly to the sink, not through the polyphony manager.
func (c *Composer) generateAmbientEvents(beatsTotal int, seed float64) {
	if beatsTotal <= 0 {
		return
	}
	p := &c.params
	for _, ev := range LogisticEvents(p.LogisticR, seed, p.EventCount, p.EventThreshold) {
		beat := ev.Timestamp * float64(beatsTotal)
		switch {
		case ev.Intensity > 0.9:
			c.thunderRoll(beat, ev.Intensity)
		case ev.Intensity > 0.7:
			c.metallicSwell(beat, ev.Intensity)
		default:
			c.shimmer(beat, ev.Intensity)
		}
	}
}

// thunderRoll is a low tremolo rumble with a pitch dive under it.
func (c *Composer) thunderRoll(beat, intensity float64) {
	velocity := clamp7f(60 + intensity*30)
	for i := 0; i < 8; i++ {
		c.note(yourdio.TrackAmbientEvents, 36, beat+float64(i)*0.125, 0.25, velocity)
	}
	c.sink.PitchBend(yourdio.TrackAmbientEvents, yourdio.TrackAmbientEvents, beat, -4096)
	c.sink.PitchBend(yourdio.TrackAmbientEvents, yourdio.TrackAmbientEvents, beat+1, 0)
}

// metallicSwell is twelve high strikes cresting upward in velocity.
func (c *Composer) metallicSwell(beat, intensity float64) {
	for i := 0; i < 12; i++ {
		velocity := clamp7f(30 + float64(i)/12*intensity*60)
		c.note(yourdio.TrackAmbientEvents, 84+i%5, beat+float64(i)*0.5, 2, velocity)
	}
}

// shimmer is a soft rising four-note sparkle.
func (c *Composer) shimmer(beat, intensity float64) {
	velocity := clamp7f(35 + intensity*20)
	for i := 0; i < 4; i++ {
		c.note(yourdio.TrackAmbientEvents, 72+i*2, beat+float64(i)*0.25, 1.5, velocity)
	}
}
