package compose

import (
	"math"

	"github.com/kostchei/Yourdio"
)

// generateDrones writes track 2: long drones on the low root, each
// lasting prime times DroneMultiplier beats. A Lorenz attractor,
// stepped once per controller event, sweeps the brightness controller
// (CC 74) across each drone; its state carries over from drone to drone
// for the whole chapter. The drone notes go through the polyphony
// manager, the controller sweep does not.
func (c *Composer) generateDrones(beatsTotal int, primes []int) {
	p := &c.params
	lorenz := Lorenz{X: 0.1, Sigma: p.LorenzSigma, Rho: p.LorenzRho, Beta: p.LorenzBeta}
	root := p.Scale.Degree(0) - 24
	cursor := 0
	for idx := 0; cursor < beatsTotal; idx++ {
		prime := primes[idx%len(primes)]
		length := prime * p.DroneMultiplier
		if length < 1 {
			length = 1
		}
		numCC := int(float64(length) / p.DroneCCInterval)
		for i := 0; i < numCC; i++ {
			lorenz.Step(0.01)
			swing := math.Min(math.Max(lorenz.X/20, -1), 1)
			brightness := int(math.Round(65 + 35*swing))
			beat := float64(cursor) + float64(i)*p.DroneCCInterval
			if beat < float64(beatsTotal) {
				c.sink.Controller(yourdio.TrackDrones, yourdio.TrackDrones, beat, 74, clamp7(brightness))
			}
		}
		duration := math.Min(float64(length), float64(beatsTotal-cursor))
		c.play(yourdio.TrackDrones, root, float64(cursor), duration, p.DroneVelocity)
		cursor += length
	}
}
