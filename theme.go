package yourdio

type (
	// Theme is the declarative style configuration driving the composer:
	// which scale and harmony to use, how each layer behaves rhythmically
	// and dynamically, and how the music evolves over the chapters of a
	// full composition. Themes are usually loaded from yaml files with
	// LoadTheme, which merges partial files over DefaultTheme, so a theme
	// file only needs the fields it wants to change.
	Theme struct {
		Name        string `yaml:"name,omitempty"`
		Description string `yaml:"description,omitempty"`

		// ModalCenter selects one of the built-in modal scales. Ignored
		// when CustomScale is set. Unknown names fall back to D_dorian at
		// composition time; Validate rejects them earlier.
		ModalCenter string `yaml:"modal_center"`

		// CustomScale, when non-empty, is used verbatim as the scale:
		// ordered MIDI note numbers, low to high.
		CustomScale []int `yaml:"custom_scale,flow,omitempty"`

		Harmony   HarmonyRules     `yaml:"harmony_rules"`
		Rhythm    RhythmicLanguage `yaml:"rhythmic_language"`
		Ensemble  Ensemble         `yaml:"ensemble_gm"`
		Tempo     Tempo            `yaml:"tempo"`
		Dynamics  Dynamics         `yaml:"dynamics"`
		Arc       StructuralArc    `yaml:"structural_arc"`
		Evolution Evolution        `yaml:"parameter_evolution"`
		Chaos     Chaos            `yaml:"chaos"`
		Motif     Motif            `yaml:"motif"`
	}

	// HarmonyRules controls how the harmonic bed builds chords from the
	// scale. Type is only a descriptive tag; the interval sets decide the
	// actual sound.
	HarmonyRules struct {
		Type      string `yaml:"type,omitempty"`
		Intervals []int  `yaml:"intervals,flow"`

		// Variation enables the alternate interval set: a chord whose
		// prime divides evenly by VariationChanceMod is voiced with
		// VariationIntervals instead of Intervals.
		Variation          bool  `yaml:"variation,omitempty"`
		VariationIntervals []int `yaml:"variation_intervals,flow,omitempty"`
		VariationChanceMod int   `yaml:"variation_chance_mod,omitempty"`
	}

	// RhythmicLanguage holds the per-layer rhythm parameters.
	RhythmicLanguage struct {
		HarmonicBed    BedRhythm    `yaml:"harmonic_bed"`
		MelodicTexture MelodyRhythm `yaml:"melodic_texture"`
		Drones         DroneRhythm  `yaml:"drones"`
		AmbientEvents  EventRhythm  `yaml:"ambient_events"`
	}

	// BedRhythm: each chord sustains for BaseDuration beats plus a
	// prime-dependent extra of up to PrimeModFactor beats.
	BedRhythm struct {
		Type           string `yaml:"type,omitempty"`
		BaseDuration   int    `yaml:"base_duration"`
		PrimeModFactor int    `yaml:"prime_mod_factor"`
	}

	// MelodyRhythm: motif note durations follow a Fibonacci sequence of
	// SequenceLength terms, scaled by BaseUnit beats.
	MelodyRhythm struct {
		Type           string  `yaml:"type,omitempty"`
		SequenceLength int     `yaml:"sequence_length"`
		BaseUnit       float64 `yaml:"base_unit"`
	}

	// DroneRhythm: a drone lasts prime times DurationMultiplier beats and
	// emits a brightness controller event every CCEventInterval beats.
	DroneRhythm struct {
		Type               string  `yaml:"type,omitempty"`
		DurationMultiplier int     `yaml:"duration_multiplier"`
		CCEventInterval    float64 `yaml:"cc_event_interval"`
	}

	// EventRhythm: the logistic map runs EventCount iterations and every
	// excursion above Threshold becomes an ambient event.
	EventRhythm struct {
		Type       string  `yaml:"type,omitempty"`
		Threshold  float64 `yaml:"threshold"`
		EventCount int     `yaml:"event_count"`
	}

	// Ensemble assigns a General MIDI program (0-127) to each layer.
	Ensemble struct {
		HarmonicBed    int `yaml:"harmonic_bed"`
		MelodicTexture int `yaml:"melodic_texture"`
		Drones         int `yaml:"drones"`
		AmbientEvents  int `yaml:"ambient_events"`
	}

	// Tempo holds the base tempo in BPM and the range the tempo moves in
	// when tempo evolution is enabled. Old theme files carried a bare
	// number instead of a mapping; those still parse, with the range
	// defaulting to base plus/minus 6.
	Tempo struct {
		Base           int   `yaml:"base"`
		VariationRange []int `yaml:"variation_range,flow"`
	}

	// Dynamics holds the per-layer velocity parameters.
	Dynamics struct {
		HarmonicBed    LayerDynamics `yaml:"harmonic_bed"`
		MelodicTexture LayerDynamics `yaml:"melodic_texture"`
		Drones         DroneDynamics `yaml:"drones"`
		AmbientEvents  EventDynamics `yaml:"ambient_events"`
	}

	// LayerDynamics: velocity = BaseVelocity + (prime mod PrimeModRange).
	LayerDynamics struct {
		BaseVelocity  int `yaml:"base_velocity"`
		PrimeModRange int `yaml:"prime_mod_range"`
	}

	// DroneDynamics: drones play at a fixed velocity.
	DroneDynamics struct {
		Velocity int `yaml:"velocity"`
	}

	// EventDynamics is part of the theme schema but the ambient event
	// patterns use their own fixed velocity curves; see the ambient
	// generator.
	EventDynamics struct {
		BaseVelocity     int `yaml:"base_velocity"`
		IntensityScaling int `yaml:"intensity_scaling"`
	}

	// StructuralArc shapes the intensity curve over the chapters of a
	// composition. Type is one of parabolic, slow_burn, descending or
	// flat; anything else is treated as parabolic.
	StructuralArc struct {
		Type          string  `yaml:"type"`
		MinIntensity  float64 `yaml:"min_intensity"`
		MaxIntensity  float64 `yaml:"max_intensity"`
		ClimaxChapter int     `yaml:"climax_chapter"`
	}

	// Evolution flags gate which parameters follow the structural arc
	// from chapter to chapter.
	Evolution struct {
		Tempo     bool `yaml:"tempo"`
		Polyphony bool `yaml:"polyphony"`
		Velocity  bool `yaml:"velocity"`
		Register  bool `yaml:"register"`
	}

	// Chaos holds the coefficients of the two chaotic systems: the
	// logistic map growth rate and the Lorenz attractor parameters.
	Chaos struct {
		LogisticR   float64 `yaml:"logistic_r"`
		LorenzSigma float64 `yaml:"lorenz_sigma"`
		LorenzRho   float64 `yaml:"lorenz_rho"`
		LorenzBeta  float64 `yaml:"lorenz_beta"`
	}

	// Motif is the recurring melodic cell of the melodic texture layer:
	// scale degrees restated every IntervalMinutes, with prime-driven
	// register shifts and ornament density.
	Motif struct {
		CorePattern           []int   `yaml:"core_pattern,flow"`
		IntervalMinutes       float64 `yaml:"interval_minutes"`
		RegisterShiftPrimeMod int     `yaml:"register_shift_prime_mod"`
		OrnamentDensityMod    int     `yaml:"ornament_density_mod"`
	}
)

// DefaultTheme returns the built-in theme: a slow D dorian quartal pad
// piece. All loaded themes start from this and override.
func DefaultTheme() Theme {
	return Theme{
		Name:        "Default",
		ModalCenter: "D_dorian",
		Harmony:     HarmonyRules{Type: "quartal", Intervals: []int{0, 3, 6}},
		Rhythm: RhythmicLanguage{
			HarmonicBed:    BedRhythm{Type: "prime_modulated", BaseDuration: 32, PrimeModFactor: 8},
			MelodicTexture: MelodyRhythm{Type: "fibonacci", SequenceLength: 8, BaseUnit: 0.25},
			Drones:         DroneRhythm{Type: "lorenz_attractor", DurationMultiplier: 4, CCEventInterval: 4},
			AmbientEvents:  EventRhythm{Type: "logistic_map", Threshold: 0.87, EventCount: 64},
		},
		Ensemble: Ensemble{HarmonicBed: 89, MelodicTexture: 92, Drones: 95, AmbientEvents: 99},
		Tempo:    Tempo{Base: 58, VariationRange: []int{52, 68}},
		Dynamics: Dynamics{
			HarmonicBed:    LayerDynamics{BaseVelocity: 45, PrimeModRange: 20},
			MelodicTexture: LayerDynamics{BaseVelocity: 55, PrimeModRange: 25},
			Drones:         DroneDynamics{Velocity: 50},
			AmbientEvents:  EventDynamics{BaseVelocity: 60, IntensityScaling: 30},
		},
		Arc:       StructuralArc{Type: "parabolic", MinIntensity: 0.2, MaxIntensity: 0.8, ClimaxChapter: 6},
		Evolution: Evolution{Tempo: true, Polyphony: true, Velocity: true, Register: true},
		Chaos:     Chaos{LogisticR: 3.86, LorenzSigma: 10, LorenzRho: 28, LorenzBeta: 8.0 / 3.0},
		Motif:     Motif{CorePattern: []int{0, 2, 5, 7}, IntervalMinutes: 17, RegisterShiftPrimeMod: 2, OrnamentDensityMod: 5},
	}
}

// Copy makes a deep copy of a Theme.
func (t *Theme) Copy() Theme {
	ret := *t
	ret.CustomScale = make([]int, len(t.CustomScale))
	copy(ret.CustomScale, t.CustomScale)
	ret.Harmony.Intervals = make([]int, len(t.Harmony.Intervals))
	copy(ret.Harmony.Intervals, t.Harmony.Intervals)
	ret.Harmony.VariationIntervals = make([]int, len(t.Harmony.VariationIntervals))
	copy(ret.Harmony.VariationIntervals, t.Harmony.VariationIntervals)
	ret.Tempo.VariationRange = make([]int, len(t.Tempo.VariationRange))
	copy(ret.Tempo.VariationRange, t.Tempo.VariationRange)
	ret.Motif.CorePattern = make([]int, len(t.Motif.CorePattern))
	copy(ret.Motif.CorePattern, t.Motif.CorePattern)
	return ret
}

// Scale returns the active scale of the theme: the custom scale when one
// is set, otherwise the modal scale named by ModalCenter.
func (t *Theme) Scale() Scale {
	if len(t.CustomScale) > 0 {
		return Scale(t.CustomScale)
	}
	return ModalScale(t.ModalCenter)
}

// Patch returns the General MIDI program of a track, falling back to
// DefaultPatch for track indices outside the four layers.
func (t *Theme) Patch(track int) int {
	switch track {
	case TrackHarmonicBed:
		return t.Ensemble.HarmonicBed
	case TrackMelodicTexture:
		return t.Ensemble.MelodicTexture
	case TrackDrones:
		return t.Ensemble.Drones
	case TrackAmbientEvents:
		return t.Ensemble.AmbientEvents
	}
	return DefaultPatch
}
