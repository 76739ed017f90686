package liner_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kostchei/Yourdio"
	"github.com/kostchei/Yourdio/compose"
	"github.com/kostchei/Yourdio/liner"
)

func testPlans(t *testing.T) []compose.ChapterPlan {
	t.Helper()
	plans, err := compose.Composition{Theme: yourdio.DefaultTheme(), Chapters: 2, Minutes: 15}.Plan()
	if err != nil {
		t.Fatalf("cannot plan composition: %v", err)
	}
	return plans
}

func TestRenderBuiltIn(t *testing.T) {
	notes, err := liner.New()
	if err != nil {
		t.Fatalf("cannot build renderer: %v", err)
	}
	sheet, err := notes.Render(yourdio.DefaultTheme(), testPlans(t))
	if err != nil {
		t.Fatalf("cannot render notes: %v", err)
	}
	for _, expected := range []string{
		"YOURDIO SESSION NOTES",
		"Theme: Default",
		"Chapter 1: 15 min",
		"Chapter 2: 15 min",
		"Total: 2 chapters, 30 minutes of music",
		strings.Repeat("=", 60),
	} {
		if !strings.Contains(sheet, expected) {
			t.Fatalf("notes missing %q:\n%v", expected, sheet)
		}
	}
}

func TestRenderUnnamedTheme(t *testing.T) {
	notes, err := liner.New()
	if err != nil {
		t.Fatalf("cannot build renderer: %v", err)
	}
	theme := yourdio.DefaultTheme()
	theme.Name = ""
	sheet, err := notes.Render(theme, testPlans(t))
	if err != nil {
		t.Fatalf("cannot render notes: %v", err)
	}
	if !strings.Contains(sheet, "Theme: Default") {
		t.Fatalf("unnamed theme should render as Default:\n%v", sheet)
	}
}

func TestRenderFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.tmpl")
	src := `{{ len .Chapters }} chapters of {{ .Theme.Name }}, {{ .TotalMinutes }} minutes`
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatalf("cannot write template: %v", err)
	}
	notes, err := liner.NewFromFile(path)
	if err != nil {
		t.Fatalf("cannot build renderer: %v", err)
	}
	sheet, err := notes.Render(yourdio.DefaultTheme(), testPlans(t))
	if err != nil {
		t.Fatalf("cannot render notes: %v", err)
	}
	if sheet != "2 chapters of Default, 30 minutes" {
		t.Fatalf("custom template, got %q, expected %q", sheet, "2 chapters of Default, 30 minutes")
	}
}

func TestNewFromFileErrors(t *testing.T) {
	if _, err := liner.NewFromFile(filepath.Join(t.TempDir(), "missing.tmpl")); err == nil {
		t.Fatalf("missing template file should be an error")
	}
	path := filepath.Join(t.TempDir(), "broken.tmpl")
	if err := os.WriteFile(path, []byte("{{ .Theme"), 0644); err != nil {
		t.Fatalf("cannot write template: %v", err)
	}
	if _, err := liner.NewFromFile(path); err == nil {
		t.Fatalf("unparsable template should be an error")
	}
}
