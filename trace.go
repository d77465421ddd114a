package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"breathe.klederson.com/internal/animation"
	"breathe.klederson.com/internal/config"
	"breathe.klederson.com/internal/shape"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func traceCmd() *cobra.Command {
	var (
		shapeName  string
		durationMs int
		stepMs     int
		forMs      int
	)
	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Run a session headlessly and print one row per tick",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings()
			if err != nil {
				return err
			}
			if _, err := setupLogging(false, settings.Log); err != nil {
				return err
			}

			cfg, err := traceConfig(settings, shapeName, durationMs, flagPreset)
			if err != nil {
				return err
			}
			if stepMs <= 0 || forMs < 0 {
				return fmt.Errorf("step must be positive and for non-negative, got %d and %d", stepMs, forMs)
			}

			log.Debug().Str("shape", cfg.Shape.String()).Ints("phases_ms", cfg.PhaseDurationsMs).Msg("Tracing session")
			return trace(os.Stdout, cfg, time.Duration(stepMs)*time.Millisecond, time.Duration(forMs)*time.Millisecond)
		},
	}
	cmd.Flags().StringVar(&shapeName, "shape", "", "triangle or square (default triangle)")
	cmd.Flags().IntVar(&durationMs, "duration", 0, "Uniform phase duration in milliseconds")
	cmd.Flags().IntVar(&stepMs, "step", 100, "Milliseconds between ticks")
	cmd.Flags().IntVar(&forMs, "for", 16000, "Total milliseconds to run")
	return cmd
}

// traceConfig prefers explicit --shape/--duration, then --preset from the
// store, then the default triangle.
func traceConfig(settings config.Settings, shapeName string, durationMs int, presetID string) (animation.Config, error) {
	override, err := overrideConfig(shapeName, durationMs)
	if err != nil {
		return animation.Config{}, err
	}
	if override != nil {
		return *override, nil
	}
	if presetID != "" {
		store, err := openStore(settings)
		if err != nil {
			return animation.Config{}, err
		}
		defer store.Close()
		p, err := store.Get(presetID)
		if err != nil {
			return animation.Config{}, err
		}
		return p.Config()
	}
	return animation.DefaultConfig(shape.Triangle), nil
}

// trace drives a session on a synthetic clock and writes tab-aligned rows.
func trace(out io.Writer, cfg animation.Config, step, total time.Duration) error {
	s, err := animation.NewSession(cfg)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(out, "# %s path %s\n", cfg.Shape, shape.PathData(cfg.Shape)); err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "T_MS\tPHASE\tLABEL\tPROGRESS\tX\tY\tROTATION\tSCALE\tGLOW\tTRAIL\tHEAD\tPULSE\tCYCLES")

	t0 := time.Unix(0, 0)
	s.Start(t0)
	writeRow(w, 0, s.Frame())
	for d := step; d <= total; d += step {
		f, _ := s.Advance(t0.Add(d))
		writeRow(w, d, f)
	}
	return w.Flush()
}

func writeRow(w io.Writer, d time.Duration, f animation.Frame) {
	pulse := "-"
	if f.PulseVisible {
		pulse = "on"
	}
	fmt.Fprintf(w, "%d\t%d\t%s\t%.3f\t%.2f\t%.2f\t%.2f\t%.4f\t%.3f\t%s@%.2f\t%.2f\t%s\t%d\n",
		d.Milliseconds(), f.CurrentPhase, f.Label, f.PhaseProgress,
		f.Position.X, f.Position.Y, f.RotationDegrees, f.Scale, f.GlowIntensity,
		f.Trail.DashArray(), f.Trail.Offset, f.Trail.Head(), pulse, f.CompletedCycles)
}
