package compose

import "github.com/kostchei/Yourdio"

// Params is the fully resolved parameter set the generators run from.
// ResolveParams fills every field with a workable value, so the
// generators themselves never default or guard anything.
type Params struct {
	Scale yourdio.Scale

	// Tempo in BPM; a chapter of m minutes spans m*Tempo beats.
	Tempo int

	// GM programs per track, in track order.
	Patches [yourdio.NumTracks]int

	// Harmonic bed.
	ChordIntervals     []int
	ChordVariation     bool
	VariationIntervals []int
	VariationMod       int
	BedBaseDuration    int
	BedPrimeMod        int
	BedVelocity        int
	BedVelocityMod     int

	// Melodic texture.
	Motif             []int
	MotifInterval     float64 // minutes between restatements
	RegisterMod       int
	OrnamentMod       int
	FibLength         int
	FibBaseUnit       float64
	MelodyVelocity    int
	MelodyVelocityMod int

	// Drones.
	DroneMultiplier int
	DroneCCInterval float64
	DroneVelocity   int

	// Ambient events.
	EventThreshold float64
	EventCount     int

	// Chaos coefficients.
	LogisticR   float64
	LorenzSigma float64
	LorenzRho   float64
	LorenzBeta  float64

	// MaxPolyphony is the voice ceiling shared by the melodic texture
	// and drone layers.
	MaxPolyphony int
}

// ResolveParams derives generation parameters from a theme. Zero fields
// fall back to the values the default theme carries, and every divisor
// and step size ends up positive, so even a zero Theme resolves to
// something playable.
func ResolveParams(theme yourdio.Theme) Params {
	p := Params{
		Scale:              theme.Scale(),
		Tempo:              intOr(theme.Tempo.Base, 58),
		ChordIntervals:     intsOr(theme.Harmony.Intervals, []int{0, 3, 6}),
		ChordVariation:     theme.Harmony.Variation,
		VariationIntervals: intsOr(theme.Harmony.VariationIntervals, []int{0, 2, 4}),
		VariationMod:       intOr(theme.Harmony.VariationChanceMod, 3),
		BedBaseDuration:    intOr(theme.Rhythm.HarmonicBed.BaseDuration, 32),
		BedPrimeMod:        intOr(theme.Rhythm.HarmonicBed.PrimeModFactor, 8),
		BedVelocity:        intOr(theme.Dynamics.HarmonicBed.BaseVelocity, 45),
		BedVelocityMod:     intOr(theme.Dynamics.HarmonicBed.PrimeModRange, 20),
		Motif:              intsOr(theme.Motif.CorePattern, []int{0, 2, 5, 7}),
		MotifInterval:      floatOr(theme.Motif.IntervalMinutes, 17),
		RegisterMod:        intOr(theme.Motif.RegisterShiftPrimeMod, 2),
		OrnamentMod:        intOr(theme.Motif.OrnamentDensityMod, 5),
		FibLength:          intOr(theme.Rhythm.MelodicTexture.SequenceLength, 8),
		FibBaseUnit:        floatOr(theme.Rhythm.MelodicTexture.BaseUnit, 0.25),
		MelodyVelocity:     intOr(theme.Dynamics.MelodicTexture.BaseVelocity, 55),
		MelodyVelocityMod:  intOr(theme.Dynamics.MelodicTexture.PrimeModRange, 25),
		DroneMultiplier:    intOr(theme.Rhythm.Drones.DurationMultiplier, 4),
		DroneCCInterval:    floatOr(theme.Rhythm.Drones.CCEventInterval, 4),
		DroneVelocity:      intOr(theme.Dynamics.Drones.Velocity, 50),
		EventThreshold:     theme.Rhythm.AmbientEvents.Threshold,
		EventCount:         intOr(theme.Rhythm.AmbientEvents.EventCount, 64),
		LogisticR:          floatOr(theme.Chaos.LogisticR, 3.86),
		LorenzSigma:        floatOr(theme.Chaos.LorenzSigma, 10),
		LorenzRho:          floatOr(theme.Chaos.LorenzRho, 28),
		LorenzBeta:         floatOr(theme.Chaos.LorenzBeta, 8.0/3.0),
		MaxPolyphony:       32,
	}
	for track := range p.Patches {
		p.Patches[track] = theme.Patch(track)
	}
	// The threshold has to leave room above itself for the intensity
	// rescale, so anything outside (0,1) takes the default.
	if p.EventThreshold <= 0 || p.EventThreshold >= 1 {
		p.EventThreshold = 0.87
	}
	return p
}

func intOr(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

func floatOr(v, def float64) float64 {
	if v <= 0 {
		return def
	}
	return v
}

func intsOr(v, def []int) []int {
	if len(v) == 0 {
		return def
	}
	return v
}
