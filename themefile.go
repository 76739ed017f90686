package yourdio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadTheme reads and validates a theme from a yaml file. Fields missing
// from the file keep their DefaultTheme values.
func LoadTheme(path string) (Theme, error) {
	f, err := os.Open(path)
	if err != nil {
		return Theme{}, fmt.Errorf("opening theme: %w", err)
	}
	defer f.Close()
	theme, err := ReadTheme(f)
	if err != nil {
		return Theme{}, fmt.Errorf("theme %v: %w", path, err)
	}
	return theme, nil
}

// ReadTheme reads a yaml theme from r, merged over the default theme and
// validated.
func ReadTheme(r io.Reader) (Theme, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return Theme{}, err
	}
	theme := DefaultTheme()
	if err := yaml.Unmarshal(b, &theme); err != nil {
		return Theme{}, fmt.Errorf("unmarshaling theme: %w", err)
	}
	if err := theme.Validate(); err != nil {
		return Theme{}, err
	}
	return theme, nil
}

// WriteTheme writes a theme as yaml.
func WriteTheme(w io.Writer, theme *Theme) error {
	contents, err := yaml.Marshal(theme)
	if err != nil {
		return fmt.Errorf("marshaling theme: %w", err)
	}
	_, err = w.Write(contents)
	return err
}

// SaveTheme writes a theme as a yaml file.
func SaveTheme(path string, theme *Theme) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating theme file: %w", err)
	}
	if err := WriteTheme(f, theme); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ListThemes returns the yaml theme files under dir, sorted by name. A
// missing directory is not an error, just an empty list.
func ListThemes(dir string) []string {
	matches, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil
	}
	sort.Strings(matches)
	return matches
}

// Validate checks that the theme can drive a composer: a known mode or a
// custom scale, at least one harmony interval, and patch numbers in the
// General MIDI range.
func (t *Theme) Validate() error {
	if len(t.CustomScale) == 0 {
		if _, ok := modalScales[t.ModalCenter]; !ok {
			return fmt.Errorf("invalid modal_center %q: must be one of %v, or provide custom_scale",
				t.ModalCenter, strings.Join(ModeNames(), ", "))
		}
	}
	if len(t.Harmony.Intervals) == 0 {
		return errors.New("harmony_rules should specify intervals")
	}
	layers := [NumTracks]string{"harmonic_bed", "melodic_texture", "drones", "ambient_events"}
	for track, name := range layers {
		if p := t.Patch(track); p < 0 || p > 127 {
			return fmt.Errorf("invalid GM patch %v for %v: patches should be within 0-127", p, name)
		}
	}
	return nil
}

// UnmarshalYAML accepts either the tempo mapping or, for old theme
// files, a bare BPM number, in which case the variation range becomes
// base plus/minus 6.
func (t *Tempo) UnmarshalYAML(value *yaml.Node) error {
	var base int
	if err := value.Decode(&base); err == nil {
		t.Base = base
		t.VariationRange = []int{base - 6, base + 6}
		return nil
	}
	type rawTempo Tempo
	raw := rawTempo(*t)
	if err := value.Decode(&raw); err != nil {
		return err
	}
	*t = Tempo(raw)
	return nil
}
