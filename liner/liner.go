// Package liner renders session notes for a composition run: a plain
// text sheet of what was generated, chapter by chapter, suitable for
// dropping next to the MIDI files.
package liner

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/Masterminds/sprig"

	"github.com/kostchei/Yourdio"
	"github.com/kostchei/Yourdio/compose"
)

type (
	// Notes renders the sheet from a template. The built-in template
	// can be swapped for a custom file with the same data shape.
	Notes struct {
		Template *template.Template
	}

	// Sheet is the data handed to the template.
	Sheet struct {
		Theme        yourdio.Theme
		Chapters     []compose.ChapterPlan
		TotalMinutes float64
	}
)

const defaultNotes = `{{ repeat 60 "=" }}
YOURDIO SESSION NOTES
{{ repeat 60 "=" }}
Theme: {{ .Theme.Name | default "Default" }}
{{- with .Theme.Description }}
{{ . }}
{{- end }}
{{ range .Chapters }}
Chapter {{ add .Index 1 }}: {{ .Minutes }} min at {{ .Tempo }} BPM, {{ .Polyphony }} voices (intensity {{ printf "%.2f" .Intensity }})
  primes {{ .Primes }}, chaos seed {{ printf "%.3f" .ChaosSeed }}
{{- end }}

Total: {{ len .Chapters }} chapters, {{ .TotalMinutes }} minutes of music
{{ repeat 60 "=" }}
`

// New returns a renderer using the built-in sheet template.
func New() (*Notes, error) {
	tmpl, err := template.New("notes").Funcs(sprig.TxtFuncMap()).Parse(defaultNotes)
	if err != nil {
		return nil, fmt.Errorf(`could not parse the built-in notes template: %v`, err)
	}
	return &Notes{Template: tmpl}, nil
}

// NewFromFile returns a renderer using a custom template file, with the
// same functions and data as the built-in one.
func NewFromFile(path string) (*Notes, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(`could not read notes template "%v": %v`, path, err)
	}
	tmpl, err := template.New(filepath.Base(path)).Funcs(sprig.TxtFuncMap()).Parse(string(src))
	if err != nil {
		return nil, fmt.Errorf(`could not parse notes template "%v": %v`, path, err)
	}
	return &Notes{Template: tmpl}, nil
}

// Render produces the notes for a planned composition.
func (n *Notes) Render(theme yourdio.Theme, plans []compose.ChapterPlan) (string, error) {
	total := 0.0
	for _, plan := range plans {
		total += plan.Minutes
	}
	result := bytes.NewBufferString("")
	err := n.Template.Execute(result, Sheet{Theme: theme, Chapters: plans, TotalMinutes: total})
	if err != nil {
		return "", fmt.Errorf(`could not execute the notes template: %v`, err)
	}
	return result.String(), nil
}
