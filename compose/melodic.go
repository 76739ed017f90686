package compose

import (
	"math/rand"

	"github.com/kostchei/Yourdio"
)

// Fibonacci returns the first n Fibonacci numbers starting 1, 1. n of
// zero or less yields an empty sequence.
func Fibonacci(n int) []int {
	if n <= 0 {
		return nil
	}
	seq := make([]int, n)
	seq[0] = 1
	if n > 1 {
		seq[1] = 1
		for i := 2; i < n; i++ {
			seq[i] = seq[i-1] + seq[i-2]
		}
	}
	return seq
}

// generateMelodicTexture writes track 1: sparse restatements of the
// motif, one every MotifInterval minutes. The prime of each restatement
// sets the register, the velocity, the onset jitter and how likely
// ornament grace notes are; note durations cycle through a Fibonacci
// sequence. Everything goes through the polyphony manager.
func (c *Composer) generateMelodicTexture(beatsTotal int, primes []int, rng *rand.Rand) {
	p := &c.params
	interval := int(p.MotifInterval * float64(p.Tempo))
	if interval < 1 {
		interval = 1
	}
	fib := Fibonacci(p.FibLength)
	if len(fib) == 0 {
		fib = []int{1}
	}
	for count, cursor := 0, 0; cursor < beatsTotal; count, cursor = count+1, cursor+interval {
		prime := primes[count%len(primes)]
		shift := 0
		if prime%p.RegisterMod == 0 {
			shift = 12
		}
		density := float64(prime%p.OrnamentMod) / float64(p.OrnamentMod)
		velocity := p.MelodyVelocity + prime%p.MelodyVelocityMod
		for i, degree := range p.Motif {
			pitch := p.Scale.Degree(degree) + shift
			onset := float64(cursor) + float64(i*2) + float64(prime%3)*0.1
			duration := float64(fib[i%len(fib)])*p.FibBaseUnit + 1
			c.play(yourdio.TrackMelodicTexture, pitch, onset, duration, velocity)
			if rng.Float64() < density {
				ornament := p.Scale.Degree(degree+1) + shift
				c.play(yourdio.TrackMelodicTexture, ornament, onset+0.5, 0.5, velocity-10)
			}
		}
	}
}
