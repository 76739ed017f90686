package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kostchei/Yourdio"
	"github.com/kostchei/Yourdio/compose"
	"github.com/kostchei/Yourdio/liner"
	"github.com/kostchei/Yourdio/mid"
	"github.com/kostchei/Yourdio/soundscape"
	"github.com/kostchei/Yourdio/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "yourdio",
	Short: "Generative ambient MIDI composer",
	Long: `Yourdio writes long-form generative ambient music as Standard MIDI
Files: four layered tracks driven by prime number sequences, chaos maps
and a structural arc, all shaped by a YAML theme.`,
	Version: version.VersionOrHash,
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the full multi-chapter composition",
	Long: `Generate the full composition, one Standard MIDI File per chapter.

Examples:
  yourdio generate
  yourdio generate --theme themes/deep_sea.yaml
  yourdio generate --chapters 4 --minutes 10 --notes`,
	RunE: runGenerate,
}

var eventCmd = &cobra.Command{
	Use:   "event [name]",
	Short: "Generate short soundscapes for game events",
	Long: `Generate a short loopable soundscape for a named game moment.

Examples:
  yourdio event fight
  yourdio event rest --theme themes/deep_sea.yaml
  yourdio event --all
  yourdio event --list`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEvent,
}

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "Manage theme files",
	Long: `List theme files or write a starter theme to edit.

Subcommands:
  list   List theme files in a directory
  init   Write the default theme to a YAML file`,
}

var themesListCmd = &cobra.Command{
	Use:   "list [dir]",
	Short: "List theme files in a directory (default: themes)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runThemesList,
}

var themesInitCmd = &cobra.Command{
	Use:   "init <path>",
	Short: "Write the default theme to a YAML file",
	Args:  cobra.ExactArgs(1),
	RunE:  runThemesInit,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.VersionOrHash)
	},
}

var (
	// generate flags
	themePath     string
	outputDir     string
	chapterCount  int
	chapterMins   float64
	writeNotes    bool
	notesTemplate string

	// event flags
	eventOutput string
	eventAll    bool
	eventList   bool
)

func init() {
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(eventCmd)
	rootCmd.AddCommand(themesCmd)
	rootCmd.AddCommand(versionCmd)

	themesCmd.AddCommand(themesListCmd)
	themesCmd.AddCommand(themesInitCmd)

	generateCmd.Flags().StringVarP(&themePath, "theme", "t", "", "Path to YAML theme file (default: built-in theme)")
	generateCmd.Flags().StringVarP(&outputDir, "output", "o", "midi_output", "Output directory for MIDI files")
	generateCmd.Flags().IntVar(&chapterCount, "chapters", compose.DefaultChapters, "Number of chapters to generate")
	generateCmd.Flags().Float64Var(&chapterMins, "minutes", compose.DefaultChapterMinutes, "Minutes per chapter")
	generateCmd.Flags().BoolVar(&writeNotes, "notes", false, "Write session notes next to the MIDI files")
	generateCmd.Flags().StringVar(&notesTemplate, "notes-template", "", "Custom template file for the session notes")

	eventCmd.Flags().StringVarP(&themePath, "theme", "t", "", "Path to YAML theme file (default: built-in theme)")
	eventCmd.Flags().StringVarP(&eventOutput, "output", "o", "events_output", "Output directory for MIDI files")
	eventCmd.Flags().BoolVar(&eventAll, "all", false, "Generate every event soundscape")
	eventCmd.Flags().BoolVar(&eventList, "list", false, "List available event types")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	theme, err := loadTheme(themePath)
	if err != nil {
		return err
	}
	comp := compose.Composition{
		Theme:    theme,
		Chapters: chapterCount,
		Minutes:  chapterMins,
	}
	plans, err := comp.Plan()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	fmt.Println()
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("YOURDIO - Retro Lo-Fi Algorithmic Composer")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Theme: %s\n", themeName(theme))
	if theme.Description != "" {
		fmt.Printf("  %s\n", theme.Description)
	}
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println()

	for _, plan := range plans {
		fmt.Printf("Generating Chapter %d... ", plan.Index)
		writer := mid.New(yourdio.NumTracks)
		if err := comp.GenerateChapter(plan, writer); err != nil {
			return err
		}
		path := filepath.Join(outputDir, fmt.Sprintf("chapter_%02d.mid", plan.Index))
		if err := writer.WriteFile(path); err != nil {
			return fmt.Errorf("write %v: %w", path, err)
		}
		fmt.Printf("Done! (intensity: %.2f, tempo: %d BPM)\n", plan.Intensity, plan.Tempo)
		fmt.Printf("  -> %s\n", path)
	}

	if writeNotes {
		notes, err := newNotes(notesTemplate)
		if err != nil {
			return err
		}
		text, err := notes.Render(theme, plans)
		if err != nil {
			return err
		}
		notesPath := filepath.Join(outputDir, "SESSION_NOTES.txt")
		if err := os.WriteFile(notesPath, []byte(text), 0644); err != nil {
			return fmt.Errorf("write %v: %w", notesPath, err)
		}
		fmt.Printf("  -> %s\n", notesPath)
	}

	total := 0.0
	for _, plan := range plans {
		total += plan.Minutes
	}
	fmt.Println()
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Generation complete! %d chapters saved to: %s\n", len(plans), outputDir)
	fmt.Printf("Total duration: %.1f hours\n", total/60)
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println()
	return nil
}

func runEvent(cmd *cobra.Command, args []string) error {
	if eventList {
		listEvents()
		return nil
	}
	if !eventAll && len(args) == 0 {
		return errors.New("specify an event name, or use --all or --list")
	}
	theme, err := loadTheme(themePath)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(eventOutput, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if !eventAll {
		return generateEvent(args[0], theme)
	}

	names := soundscape.Names()
	fmt.Println()
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("YOURDIO EVENT SOUNDSCAPE GENERATOR")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Theme: %s\n", themeName(theme))
	fmt.Printf("Generating %d event soundscapes\n", len(names))
	fmt.Printf("Output: %s\n", eventOutput)
	fmt.Println(strings.Repeat("=", 60))

	generated := 0
	for _, name := range names {
		if err := generateEvent(name, theme); err != nil {
			fmt.Fprintf(os.Stderr, "  Error generating %s: %v\n", name, err)
			continue
		}
		generated++
	}

	fmt.Println()
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Generated %d event soundscapes\n", generated)
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println()
	return nil
}

func generateEvent(name string, theme yourdio.Theme) error {
	if preset, ok := soundscape.Lookup(name); ok {
		fmt.Printf("\nGenerating '%s' soundscape...\n", name)
		fmt.Printf("  Description: %s\n", preset.Description)
		fmt.Printf("  Duration: %v minutes\n", preset.Minutes)
		fmt.Printf("  Theme: %s\n", themeName(theme))
	}
	writer := mid.New(yourdio.NumTracks)
	if err := soundscape.Generate(name, theme, writer); err != nil {
		return err
	}
	path := filepath.Join(eventOutput, fmt.Sprintf("%s_%s.mid", name, themeSlug(theme)))
	if err := writer.WriteFile(path); err != nil {
		return fmt.Errorf("write %v: %w", path, err)
	}
	fmt.Printf("  Saved: %s\n", path)
	return nil
}

func listEvents() {
	fmt.Println("\nAvailable Event Types:")
	fmt.Println(strings.Repeat("=", 60))
	for _, name := range soundscape.Names() {
		preset, _ := soundscape.Lookup(name)
		fmt.Printf("  %-15s - %-30s (%v min)\n", name, preset.Description, preset.Minutes)
	}
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println()
}

func runThemesList(cmd *cobra.Command, args []string) error {
	dir := "themes"
	if len(args) > 0 {
		dir = args[0]
	}
	files := yourdio.ListThemes(dir)
	if len(files) == 0 {
		fmt.Printf("No theme files found in %s\n", dir)
		return nil
	}
	for _, file := range files {
		theme, err := yourdio.LoadTheme(file)
		if err != nil {
			fmt.Printf("  %-30s (invalid: %v)\n", filepath.Base(file), err)
			continue
		}
		fmt.Printf("  %-30s %s\n", filepath.Base(file), themeName(theme))
	}
	return nil
}

func runThemesInit(cmd *cobra.Command, args []string) error {
	path := args[0]
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%v already exists", path)
	}
	theme := yourdio.DefaultTheme()
	if err := yourdio.SaveTheme(path, &theme); err != nil {
		return err
	}
	fmt.Printf("Wrote default theme to %s\n", path)
	return nil
}

func loadTheme(path string) (yourdio.Theme, error) {
	if path == "" {
		return yourdio.DefaultTheme(), nil
	}
	return yourdio.LoadTheme(path)
}

func themeName(theme yourdio.Theme) string {
	if theme.Name == "" {
		return "Default"
	}
	return theme.Name
}

func themeSlug(theme yourdio.Theme) string {
	name := theme.Name
	if name == "" {
		name = "default"
	}
	return strings.ReplaceAll(strings.ToLower(name), " ", "_")
}

func newNotes(templatePath string) (*liner.Notes, error) {
	if templatePath == "" {
		return liner.New()
	}
	return liner.NewFromFile(templatePath)
}
