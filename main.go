package main

import (
	"fmt"
	"os"

	"breathe.klederson.com/internal/animation"
	"breathe.klederson.com/internal/app"
	"breathe.klederson.com/internal/config"
	"breathe.klederson.com/internal/preset"
	"breathe.klederson.com/internal/shape"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	flagConfig   string
	flagDebug    bool
	flagPreset   string
	flagShape    string
	flagDuration int
	flagFPS      int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "breathe",
		Short: "BREATHE - guided breathing with a rotating shape in the terminal",
		Long: `BREATHE traces a marker around a triangle or square, one side per
breathing phase. The shape swells on the inhale, glows while held and
shrinks on the exhale, slowly rotating a full turn every cycle.

Presets are stored in ~/.config/breathe/presets.db. Use "breathe presets"
to manage them and "breathe trace" to print frames without a terminal UI.`,
		SilenceUsage: true,
		RunE:         run,
	}

	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config.toml")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Preset id to use instead of the stored selection")
	rootCmd.Flags().StringVar(&flagShape, "shape", "", "Override the preset with a uniform triangle or square")
	rootCmd.Flags().IntVar(&flagDuration, "duration", 0, "Uniform phase duration in milliseconds (with --shape)")
	rootCmd.Flags().IntVar(&flagFPS, "fps", 0, "Frames per second")

	rootCmd.AddCommand(presetsCmd(), traceCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadSettings() (config.Settings, error) {
	s, err := config.Load(config.ResolvePath(flagConfig))
	if err != nil {
		return s, fmt.Errorf("load config: %w", err)
	}
	if flagDebug {
		s.Log.Debug = true
	}
	if flagPreset != "" {
		s.Preset = flagPreset
	}
	return s, nil
}

func openStore(s config.Settings) (*preset.Store, error) {
	path, err := s.DatabasePath()
	if err != nil {
		return nil, err
	}
	store, err := preset.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open presets %s: %w", path, err)
	}
	return store, nil
}

// overrideConfig builds a uniform config from --shape and --duration, or
// returns nil when neither is set.
func overrideConfig(shapeName string, durationMs int) (*animation.Config, error) {
	if shapeName == "" && durationMs == 0 {
		return nil, nil
	}
	k := shape.Triangle
	if shapeName != "" {
		var err error
		if k, err = shape.Parse(shapeName); err != nil {
			return nil, err
		}
	}
	if durationMs == 0 {
		durationMs = config.DefaultPhaseDurationMs
	}
	cfg := animation.UniformConfig(k, durationMs)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func run(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	logFile, err := setupLogging(true, settings.Log)
	if err != nil {
		return err
	}
	defer logFile.Close()

	override, err := overrideConfig(flagShape, flagDuration)
	if err != nil {
		return err
	}

	store, err := openStore(settings)
	if err != nil {
		return err
	}
	defer store.Close()

	fps := settings.FPS
	if flagFPS > 0 {
		fps = flagFPS
	}

	model, err := app.New(app.Options{
		Store:    store,
		PresetID: settings.Preset,
		Override: override,
		FPS:      fps,
		AutoStop: settings.AutoStop,
	})
	if err != nil {
		return err
	}

	log.Info().Int("fps", fps).Str("preset", settings.Preset).Msg("Starting UI")

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithFPS(fps),
	)
	_, err = p.Run()
	return err
}
