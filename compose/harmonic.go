package compose

import "github.com/kostchei/Yourdio"

// generateHarmonicBed writes track 0: slow chord pads covering the
// whole chapter back to back. One prime per chord, consumed cyclically,
// stretches the chord duration, switches between the interval sets,
// picks the octave and scales the velocity.
func (c *Composer) generateHarmonicBed(beatsTotal int, primes []int) {
	p := &c.params
	cursor := 0
	for idx := 0; cursor < beatsTotal; idx++ {
		prime := primes[idx%len(primes)]
		length := p.BedBaseDuration + prime%p.BedPrimeMod
		if length < 1 {
			length = 1
		}
		rootIdx := idx * 2 % len(p.Scale)
		velocity := p.BedVelocity + prime%p.BedVelocityMod
		for _, pitch := range c.chord(rootIdx, prime) {
			c.note(yourdio.TrackHarmonicBed, pitch, float64(cursor), float64(length)*0.95, velocity)
		}
		cursor += length
	}
}

// chord voices a chord on the scale degree rootIdx. The variation
// interval set applies when it is configured and the prime divides by
// the variation mod; even primes drop the whole chord an octave.
func (c *Composer) chord(rootIdx, prime int) []int {
	p := &c.params
	intervals := p.ChordIntervals
	if p.ChordVariation && prime%p.VariationMod == 0 {
		intervals = p.VariationIntervals
	}
	shift := 0
	if prime%2 == 0 {
		shift = -12
	}
	pitches := make([]int, len(intervals))
	for i, interval := range intervals {
		pitches[i] = p.Scale.Degree(rootIdx+interval) + shift
	}
	return pitches
}
