package app

import (
	"fmt"
	"math"
	"time"

	"breathe.klederson.com/internal/animation"
	"breathe.klederson.com/internal/canvas"
	"breathe.klederson.com/internal/config"
	"breathe.klederson.com/internal/preset"
	"breathe.klederson.com/internal/shape"
	"breathe.klederson.com/internal/ui"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"
)

// shared holds state shared between the Bubble Tea model copies and main.go.
// Because Bubble Tea uses value receivers, pointer fields ensure all copies
// see the same underlying data.
type shared struct {
	session *animation.Session
	store   *preset.Store
	deltas  *SampleRing
	glow    *SampleRing
	now     func() time.Time
}

// Options configures a new AppModel.
type Options struct {
	Store    *preset.Store     // nil runs on the built-in presets without persistence
	PresetID string            // overrides the stored selection when set
	Override *animation.Config // replaces the preset timing, e.g. from --shape/--duration
	FPS      int
	AutoStop bool
	Clock    func() time.Time
}

// AppModel is the root Bubble Tea model for BREATHE.
type AppModel struct {
	width  int
	height int

	fps      int
	autoStop bool

	presets  []preset.Pattern
	cursor   int
	current  preset.Pattern
	override bool

	frame    animation.Frame
	lastTick time.Time
	message  string
	err      error

	help   help.Model
	shared *shared
}

// New creates an AppModel with a stopped session on the selected preset.
func New(opts Options) (AppModel, error) {
	fps := opts.FPS
	if fps <= 0 {
		fps = config.TargetFPS
	}
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}

	presets, current, err := loadPresets(opts.Store, opts.PresetID)
	if err != nil {
		return AppModel{}, err
	}

	var cfg animation.Config
	if opts.Override != nil {
		cfg = *opts.Override
	} else if cfg, err = current.Config(); err != nil {
		return AppModel{}, fmt.Errorf("preset %s: %w", current.ID, err)
	}

	session, err := animation.NewSession(cfg)
	if err != nil {
		return AppModel{}, err
	}

	m := AppModel{
		fps:      fps,
		autoStop: opts.AutoStop,
		presets:  presets,
		current:  current,
		override: opts.Override != nil,
		help:     help.New(),
		shared: &shared{
			session: session,
			store:   opts.Store,
			deltas:  NewSampleRing(config.DeltaHistorySize),
			glow:    NewSampleRing(config.DeltaHistorySize),
			now:     clock,
		},
	}
	m.cursor = m.indexOf(current.ID)
	m.frame = session.Frame()
	return m, nil
}

func loadPresets(store *preset.Store, id string) ([]preset.Pattern, preset.Pattern, error) {
	if store == nil {
		all := preset.Defaults()
		if id == "" {
			id = preset.DefaultSelectedID
		}
		for _, p := range all {
			if p.ID == id {
				return all, p, nil
			}
		}
		return nil, preset.Pattern{}, fmt.Errorf("%w: %s", preset.ErrNotFound, id)
	}

	all, err := store.List()
	if err != nil {
		return nil, preset.Pattern{}, err
	}
	var current preset.Pattern
	if id != "" {
		current, err = store.Get(id)
	} else {
		current, err = store.Selected()
	}
	if err != nil {
		return nil, preset.Pattern{}, err
	}
	return all, current, nil
}

func (m AppModel) Init() tea.Cmd {
	return tickCmd(m.fps)
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		return m.tick(time.Time(msg))

	case PulseEndMsg:
		m.shared.session.EndPulse(msg.Token)
		m.frame = m.shared.session.Frame()
		return m, nil

	case ErrorMsg:
		m.err = msg.Err
		return m, nil
	}

	return m, nil
}

func (m AppModel) tick(now time.Time) (tea.Model, tea.Cmd) {
	if !m.lastTick.IsZero() {
		if d := now.Sub(m.lastTick); d > 0 {
			m.shared.deltas.Push(float64(d) / float64(time.Millisecond))
		}
	}
	m.lastTick = now

	session := m.shared.session
	f, armed := session.Advance(now)
	cmds := []tea.Cmd{tickCmd(m.fps)}
	if armed != nil {
		cmds = append(cmds, pulseEndCmd(*armed, now))
	}
	if f.Active {
		m.shared.glow.Push(f.GlowIntensity)
	}

	target := m.current.DefaultCycles
	if m.autoStop && f.Active && target > 0 && f.CompletedCycles >= target {
		session.Stop()
		f = session.Frame()
		m.message = fmt.Sprintf("Completed %d cycles", f.CompletedCycles)
		log.Info().Str("preset", m.current.ID).Int("cycles", f.CompletedCycles).Msg("Session auto-stopped")
	}

	m.frame = f
	return m, tea.Batch(cmds...)
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	session := m.shared.session
	m.err = nil

	switch {
	case key.Matches(msg, keys.Quit):
		session.Stop()
		return m, tea.Quit

	case key.Matches(msg, keys.Start):
		if !session.Active() {
			session.Start(m.shared.now())
			m.message = ""
			log.Info().Str("preset", m.current.ID).Str("shape", session.Config().Shape.String()).Msg("Session started")
		}

	case key.Matches(msg, keys.Stop):
		session.Stop()
		session.Reset()
		m.shared.glow.Reset()
		log.Info().Msg("Session stopped")

	case key.Matches(msg, keys.Restart):
		session.Restart(m.shared.now())
		m.shared.glow.Reset()
		m.message = ""
		log.Info().Msg("Session restarted")

	case key.Matches(msg, keys.Shape):
		m.switchShape()

	case key.Matches(msg, keys.Next):
		if len(m.presets) > 0 {
			m.cursor = (m.cursor + 1) % len(m.presets)
		}

	case key.Matches(msg, keys.Prev):
		if len(m.presets) > 0 {
			m.cursor = (m.cursor - 1 + len(m.presets)) % len(m.presets)
		}

	case key.Matches(msg, keys.Select):
		cmd := m.usePreset()
		m.frame = session.Frame()
		return m, cmd

	case key.Matches(msg, keys.Favorite):
		m.toggleFavorite()
	}

	m.frame = session.Frame()
	return m, nil
}

// switchShape flips between triangle and square, keeping the current mean
// phase duration. The session is stopped and reset first.
func (m *AppModel) switchShape() {
	session := m.shared.session
	cfg := session.Config()
	next := shape.Square
	if cfg.Shape == shape.Square {
		next = shape.Triangle
	}

	session.Stop()
	session.Reset()
	d := int(math.Round(cfg.PhaseDurationMs()))
	if err := session.Reconfigure(animation.UniformConfig(next, d)); err != nil {
		m.err = err
		return
	}
	m.override = true
	m.shared.glow.Reset()
	log.Info().Str("shape", next.String()).Int("phase_ms", d).Msg("Shape switched")
}

// usePreset reconfigures the session from the preset under the cursor. The
// selection is persisted by the returned command.
func (m *AppModel) usePreset() tea.Cmd {
	if len(m.presets) == 0 {
		return nil
	}
	p := m.presets[m.cursor]
	cfg, err := p.Config()
	if err != nil {
		m.err = err
		return nil
	}

	session := m.shared.session
	session.Stop()
	session.Reset()
	if err := session.Reconfigure(cfg); err != nil {
		m.err = err
		return nil
	}
	m.current = p
	m.override = false
	m.message = ""
	m.shared.glow.Reset()

	log.Info().Str("preset", p.ID).Msg("Preset selected")
	if m.shared.store == nil {
		return nil
	}
	return persistSelectionCmd(m.shared.store, p.ID)
}

func persistSelectionCmd(store *preset.Store, id string) tea.Cmd {
	return func() tea.Msg {
		if err := store.Select(id); err != nil {
			log.Error().Err(err).Str("preset", id).Msg("Failed to persist selection")
			return ErrorMsg{Err: err}
		}
		return nil
	}
}

func (m *AppModel) toggleFavorite() {
	if len(m.presets) == 0 {
		return
	}
	p := &m.presets[m.cursor]
	on := !p.IsFavorite
	if m.shared.store != nil {
		var err error
		if on, err = m.shared.store.ToggleFavorite(p.ID); err != nil {
			m.err = err
			return
		}
	}
	p.IsFavorite = on
	if p.ID == m.current.ID {
		m.current.IsFavorite = on
	}
}

func (m AppModel) indexOf(id string) int {
	for i, p := range m.presets {
		if p.ID == id {
			return i
		}
	}
	return 0
}

// measuredFPS estimates the real frame rate from recent tick deltas.
func (m AppModel) measuredFPS() float64 {
	mean := m.shared.deltas.Mean()
	if mean <= 0 {
		return 0
	}
	return 1000 / mean
}

func (m AppModel) View() string {
	if m.width == 0 || m.height == 0 {
		return fmt.Sprintf("Initializing %s...", config.AppName)
	}

	bodyH := m.height - 2
	if bodyH < 8 {
		bodyH = 8
	}

	canvasW := m.width * 2 / 3
	if canvasW < 30 {
		canvasW = 30
	}
	sideW := m.width - canvasW
	if sideW < 24 {
		sideW = 24
		canvasW = m.width - sideW
	}

	name := m.current.Name
	if m.override {
		name += " (custom timing)"
	}
	menuBar := ui.RenderMenuBar(m.width, m.help.View(keys), m.frame.Active, name)

	innerW := canvasW - 4
	innerH := bodyH - 3
	if innerW < 10 {
		innerW = 10
	}
	if innerH < 5 {
		innerH = 5
	}
	content := canvas.Render(innerW, innerH, m.frame)
	phaseLine := ui.RenderPhaseLine(innerW, m.frame)
	canvasPanel := ui.RenderCanvasPanel(canvasW, bodyH, content, phaseLine)

	listH := bodyH / 2
	list := ui.RenderPresetList(m.presets, sideW, listH, m.cursor, m.current.ID)
	var detail string
	if len(m.presets) > 0 {
		detail = ui.RenderPresetDetail(m.presets[m.cursor], sideW, bodyH-listH, m.frame, m.shared.glow.Values(), m.shared.now())
	}
	side := lipgloss.JoinVertical(lipgloss.Left, list, detail)

	cfg := m.shared.session.Config()
	status := ui.RenderStatusBar(m.width, ui.Status{
		Running:      m.frame.Active,
		Phase:        m.frame.CurrentPhase,
		PhaseCount:   cfg.PhaseCount(),
		Cycles:       m.frame.CompletedCycles,
		TargetCycles: m.current.DefaultCycles,
		Rotation:     m.frame.RotationDegrees,
		CycleMs:      cfg.CycleDurationMs(),
		FPS:          m.measuredFPS(),
		Message:      m.message,
		Err:          m.err,
	})

	return ui.ComposeLayout(menuBar, canvasPanel, side, status, m.width)
}

func tickCmd(fps int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// pulseEndCmd schedules the clear for an armed pulse. The token makes a clear
// that outlives a stop or restart harmless.
func pulseEndCmd(p animation.Pulse, now time.Time) tea.Cmd {
	return tea.Tick(p.ClearAt.Sub(now), func(time.Time) tea.Msg {
		return PulseEndMsg{Token: p.Token}
	})
}
