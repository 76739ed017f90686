package compose

type (
	// LogisticEvent is one above-threshold excursion of the logistic
	// map: the iteration it happened on, how far past the threshold it
	// went (rescaled to 0..1) and its position in the scanned range
	// (0..1).
	LogisticEvent struct {
		Iteration int
		Intensity float64
		Timestamp float64
	}

	// Lorenz is the state of a Lorenz attractor, advanced with
	// fixed-step explicit Euler integration. The zero value sits on the
	// origin fixed point, so callers should start slightly off it.
	Lorenz struct {
		X, Y, Z          float64
		Sigma, Rho, Beta float64
	}
)

// LogisticEvents iterates the logistic map x = r*x*(1-x) from seed for n
// steps and returns an event for every iterate that exceeds threshold.
// The scan is deterministic: same inputs, same events.
func LogisticEvents(r, seed float64, n int, threshold float64) []LogisticEvent {
	x := seed
	var events []LogisticEvent
	for i := 0; i < n; i++ {
		x = r * x * (1 - x)
		if x > threshold {
			events = append(events, LogisticEvent{
				Iteration: i,
				Intensity: (x - threshold) / (1 - threshold),
				Timestamp: float64(i) / float64(n),
			})
		}
	}
	return events
}

// Step advances the attractor by one Euler step of size dt.
func (l *Lorenz) Step(dt float64) {
	dx := l.Sigma * (l.Y - l.X) * dt
	dy := (l.X*(l.Rho-l.Z) - l.Y) * dt
	dz := (l.X*l.Y - l.Beta*l.Z) * dt
	l.X += dx
	l.Y += dy
	l.Z += dz
}
