package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"breathe.klederson.com/internal/preset"
	"breathe.klederson.com/internal/shape"
	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// withStore wraps a presets subcommand so it runs against an open store.
func withStore(fn func(store *preset.Store, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings()
		if err != nil {
			return err
		}
		if _, err := setupLogging(false, settings.Log); err != nil {
			return err
		}
		store, err := openStore(settings)
		if err != nil {
			return err
		}
		defer store.Close()
		return fn(store, args)
	}
}

func presetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List and manage breathing presets",
	}

	var (
		addShape  string
		addPhases []int
		addCycles int
		addTempo  float64
		addTags   []string
		addDesc   string
	)
	add := &cobra.Command{
		Use:   "add NAME",
		Short: "Add a custom preset",
		Args:  cobra.ExactArgs(1),
		RunE: withStore(func(store *preset.Store, args []string) error {
			k, err := shape.Parse(addShape)
			if err != nil {
				return err
			}
			phases := addPhases
			if len(phases) == 0 {
				phases = make([]int, k.PhaseCount())
				for i := range phases {
					phases[i] = 4000
				}
			}
			p := preset.NewCustom(args[0], k, phases)
			p.Description = addDesc
			p.DefaultCycles = addCycles
			p.Tempo = addTempo
			p.Metadata.Tags = addTags

			p, err = store.Add(p)
			if err != nil {
				return err
			}
			fmt.Println(p.ID)
			return nil
		}),
	}
	add.Flags().StringVar(&addShape, "shape", "triangle", "triangle or square")
	add.Flags().IntSliceVar(&addPhases, "phases", nil, "Phase durations in milliseconds, e.g. 4000,7000,8000")
	add.Flags().IntVar(&addCycles, "cycles", 5, "Default cycle count")
	add.Flags().Float64Var(&addTempo, "tempo", 1.0, "Tempo multiplier (2 is twice as fast)")
	add.Flags().StringSliceVar(&addTags, "tags", nil, "Comma separated tags")
	add.Flags().StringVar(&addDesc, "description", "", "Description")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List presets",
			Args:  cobra.NoArgs,
			RunE: withStore(func(store *preset.Store, _ []string) error {
				all, err := store.List()
				if err != nil {
					return err
				}
				sel, err := store.Selected()
				if err != nil {
					return err
				}
				printPresets(all, sel.ID)
				return nil
			}),
		},
		&cobra.Command{
			Use:   "show ID",
			Short: "Show one preset",
			Args:  cobra.ExactArgs(1),
			RunE: withStore(func(store *preset.Store, args []string) error {
				p, err := store.Get(args[0])
				if err != nil {
					return err
				}
				printPreset(p)
				return nil
			}),
		},
		add,
		&cobra.Command{
			Use:   "delete ID",
			Short: "Delete a custom preset",
			Args:  cobra.ExactArgs(1),
			RunE: withStore(func(store *preset.Store, args []string) error {
				if err := store.Delete(args[0]); err != nil {
					return err
				}
				log.Info().Str("id", args[0]).Msg("Preset deleted")
				return nil
			}),
		},
		&cobra.Command{
			Use:   "favorite ID",
			Short: "Toggle a preset's favourite flag",
			Args:  cobra.ExactArgs(1),
			RunE: withStore(func(store *preset.Store, args []string) error {
				on, err := store.ToggleFavorite(args[0])
				if err != nil {
					return err
				}
				log.Info().Str("id", args[0]).Bool("favorite", on).Msg("Favourite toggled")
				return nil
			}),
		},
		&cobra.Command{
			Use:   "select ID",
			Short: "Make a preset the default for new sessions",
			Args:  cobra.ExactArgs(1),
			RunE: withStore(func(store *preset.Store, args []string) error {
				if err := store.Select(args[0]); err != nil {
					return err
				}
				log.Info().Str("id", args[0]).Msg("Preset selected")
				return nil
			}),
		},
		&cobra.Command{
			Use:   "reset",
			Short: "Delete custom presets and restore the built-ins",
			Args:  cobra.NoArgs,
			RunE: withStore(func(store *preset.Store, _ []string) error {
				if err := store.ResetToDefaults(); err != nil {
					return err
				}
				log.Info().Msg("Presets reset to defaults")
				return nil
			}),
		},
	)
	return cmd
}

func printPresets(all []preset.Pattern, selectedID string) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "\tID\tNAME\tSHAPE\tPHASES\tCYCLE\tADDED")
	for _, p := range all {
		mark := ""
		if p.ID == selectedID {
			mark = "*"
		}
		if p.IsFavorite {
			mark += "♥"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			mark, p.ID, p.Name, p.Shape, phaseList(p), cycleString(p), humanize.Time(p.CreatedAt))
	}
	_ = w.Flush()
}

func printPreset(p preset.Pattern) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "ID\t%s\n", p.ID)
	fmt.Fprintf(w, "Name\t%s\n", p.Name)
	if p.Description != "" {
		fmt.Fprintf(w, "Description\t%s\n", p.Description)
	}
	fmt.Fprintf(w, "Shape\t%s\n", p.Shape)
	for i, ph := range p.Phases {
		label := ph.Label
		if label == "" {
			label = string(ph.Type)
		}
		fmt.Fprintf(w, "Phase %d\t%s %s\n", i+1, label, time.Duration(ph.Duration)*time.Millisecond)
	}
	fmt.Fprintf(w, "Cycle\t%s\n", cycleString(p))
	fmt.Fprintf(w, "Cycles\t%d\n", p.DefaultCycles)
	fmt.Fprintf(w, "Tempo\t%gx\n", p.Tempo)
	fmt.Fprintf(w, "Difficulty\t%s\n", p.Metadata.Difficulty)
	fmt.Fprintf(w, "Tags\t%s\n", p.Tags())
	fmt.Fprintf(w, "Custom\t%t\n", p.IsCustom)
	fmt.Fprintf(w, "Favorite\t%t\n", p.IsFavorite)
	fmt.Fprintf(w, "Added\t%s (%s)\n", humanize.Time(p.CreatedAt), p.CreatedAt.Format(time.DateTime))
	_ = w.Flush()
}

func phaseList(p preset.Pattern) string {
	parts := make([]string, len(p.Phases))
	for i, ph := range p.Phases {
		parts[i] = humanize.Comma(int64(ph.Duration))
	}
	return strings.Join(parts, "/")
}

func cycleString(p preset.Pattern) string {
	return (time.Duration(p.CycleDuration()) * time.Millisecond).String()
}
