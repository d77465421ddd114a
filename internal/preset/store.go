package preset

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"breathe.klederson.com/internal/shape"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

const selectedKey = "selected_preset_id"

// Store persists patterns and the selected pattern in SQLite.
type Store struct {
	db *sqlx.DB
}

type patternRow struct {
	ID            string  `db:"id"`
	Position      int     `db:"position"`
	Name          string  `db:"name"`
	Description   string  `db:"description"`
	Shape         string  `db:"shape"`
	PhasesJSON    string  `db:"phases_json"`
	DefaultCycles int     `db:"default_cycles"`
	Tempo         float64 `db:"tempo"`
	TagsJSON      string  `db:"tags_json"`
	Difficulty    string  `db:"difficulty"`
	TotalDuration int     `db:"total_duration"`
	Sound         bool    `db:"sound"`
	Haptics       bool    `db:"haptics"`
	VoiceCues     string  `db:"voice_cues"`
	CreatedAt     int64   `db:"created_at"` // unix milliseconds
	IsCustom      bool    `db:"is_custom"`
	IsFavorite    bool    `db:"is_favorite"`
}

// Open opens or creates the preset database at path. A new database is
// seeded with the built-in patterns.
func Open(path string) (*Store, error) {
	conn, err := sqlx.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	conn.SetMaxOpenConns(1)

	s := &Store{db: conn}
	if err := s.migrate(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	var count int
	if err := s.db.Get(&count, `SELECT COUNT(*) FROM presets`); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("count presets: %w", err)
	}
	if count == 0 {
		log.Info().Str("path", path).Msg("Seeding default presets")
		if err := s.ResetToDefaults(); err != nil {
			_ = conn.Close()
			return nil, err
		}
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS presets (
		id TEXT PRIMARY KEY,
		position INTEGER NOT NULL,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		shape TEXT NOT NULL,
		phases_json TEXT NOT NULL,
		default_cycles INTEGER NOT NULL,
		tempo REAL NOT NULL,
		tags_json TEXT NOT NULL,
		difficulty TEXT NOT NULL,
		total_duration INTEGER NOT NULL,
		sound INTEGER NOT NULL,
		haptics INTEGER NOT NULL,
		voice_cues TEXT NOT NULL,
		created_at INTEGER NOT NULL,
		is_custom INTEGER NOT NULL,
		is_favorite INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS preset_meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_presets_position ON presets(position);
	`
	_, err := s.db.Exec(schema)
	return err
}

// List returns every pattern in display order.
func (s *Store) List() ([]Pattern, error) {
	var rows []patternRow
	if err := s.db.Select(&rows, `SELECT * FROM presets ORDER BY position`); err != nil {
		return nil, fmt.Errorf("list presets: %w", err)
	}

	out := make([]Pattern, 0, len(rows))
	for _, r := range rows {
		p, err := r.pattern()
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// Get returns the pattern with id.
func (s *Store) Get(id string) (Pattern, error) {
	var r patternRow
	err := s.db.Get(&r, `SELECT * FROM presets WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return Pattern{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return Pattern{}, fmt.Errorf("get preset: %w", err)
	}
	return r.pattern()
}

// Add stores a new pattern at the end of the list. Missing IDs and creation
// times are filled in.
func (s *Store) Add(p Pattern) (Pattern, error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	if p.Tempo == 0 {
		p.Tempo = 1.0
	}
	p.Metadata.TotalDuration = p.CycleDuration()
	if err := p.Validate(); err != nil {
		return Pattern{}, err
	}

	var pos int
	if err := s.db.Get(&pos, `SELECT COALESCE(MAX(position), -1) + 1 FROM presets`); err != nil {
		return Pattern{}, fmt.Errorf("next position: %w", err)
	}

	r, err := rowFor(p, pos)
	if err != nil {
		return Pattern{}, err
	}
	if _, err := s.db.NamedExec(`
		INSERT INTO presets (id, position, name, description, shape, phases_json, default_cycles,
			tempo, tags_json, difficulty, total_duration, sound, haptics, voice_cues,
			created_at, is_custom, is_favorite)
		VALUES (:id, :position, :name, :description, :shape, :phases_json, :default_cycles,
			:tempo, :tags_json, :difficulty, :total_duration, :sound, :haptics, :voice_cues,
			:created_at, :is_custom, :is_favorite)`, r); err != nil {
		return Pattern{}, fmt.Errorf("add preset: %w", err)
	}

	log.Debug().Str("id", p.ID).Str("name", p.Name).Msg("Preset added")
	return p, nil
}

// Update replaces a stored pattern, keeping its position.
func (s *Store) Update(p Pattern) error {
	p.Metadata.TotalDuration = p.CycleDuration()
	if err := p.Validate(); err != nil {
		return err
	}
	r, err := rowFor(p, 0)
	if err != nil {
		return err
	}

	res, err := s.db.NamedExec(`
		UPDATE presets SET name = :name, description = :description, shape = :shape,
			phases_json = :phases_json, default_cycles = :default_cycles, tempo = :tempo,
			tags_json = :tags_json, difficulty = :difficulty, total_duration = :total_duration,
			sound = :sound, haptics = :haptics, voice_cues = :voice_cues,
			is_custom = :is_custom, is_favorite = :is_favorite
		WHERE id = :id`, r)
	if err != nil {
		return fmt.Errorf("update preset: %w", err)
	}
	return requireRow(res, p.ID)
}

// Delete removes a custom pattern. If it was selected, the first remaining
// pattern becomes selected.
func (s *Store) Delete(id string) error {
	p, err := s.Get(id)
	if err != nil {
		return err
	}
	if !p.IsCustom {
		return fmt.Errorf("%w: %s", ErrBuiltin, id)
	}

	if _, err := s.db.Exec(`DELETE FROM presets WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete preset: %w", err)
	}

	selected, err := s.selectedID()
	if err != nil {
		return err
	}
	if selected == id {
		var first string
		err := s.db.Get(&first, `SELECT id FROM presets ORDER BY position LIMIT 1`)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("pick replacement: %w", err)
		}
		if err := s.setSelected(first); err != nil {
			return err
		}
	}

	log.Debug().Str("id", id).Msg("Preset deleted")
	return nil
}

// Select marks id as the selected pattern.
func (s *Store) Select(id string) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.setSelected(id)
}

// Selected returns the selected pattern, falling back to the first one when
// nothing valid is selected.
func (s *Store) Selected() (Pattern, error) {
	id, err := s.selectedID()
	if err != nil {
		return Pattern{}, err
	}
	if id != "" {
		p, err := s.Get(id)
		if err == nil {
			return p, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return Pattern{}, err
		}
	}

	all, err := s.List()
	if err != nil {
		return Pattern{}, err
	}
	if len(all) == 0 {
		return Pattern{}, ErrNotFound
	}
	return all[0], nil
}

// ToggleFavorite flips the favourite flag and returns the new value.
func (s *Store) ToggleFavorite(id string) (bool, error) {
	p, err := s.Get(id)
	if err != nil {
		return false, err
	}
	p.IsFavorite = !p.IsFavorite
	if err := s.Update(p); err != nil {
		return false, err
	}
	return p.IsFavorite, nil
}

// ResetToDefaults drops every pattern, custom ones included, and restores
// the built-ins.
func (s *Store) ResetToDefaults() error {
	tx, err := s.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM presets`); err != nil {
		return fmt.Errorf("clear presets: %w", err)
	}
	for i, p := range Defaults() {
		r, err := rowFor(p, i)
		if err != nil {
			return err
		}
		if _, err := tx.NamedExec(`
			INSERT INTO presets (id, position, name, description, shape, phases_json, default_cycles,
				tempo, tags_json, difficulty, total_duration, sound, haptics, voice_cues,
				created_at, is_custom, is_favorite)
			VALUES (:id, :position, :name, :description, :shape, :phases_json, :default_cycles,
				:tempo, :tags_json, :difficulty, :total_duration, :sound, :haptics, :voice_cues,
				:created_at, :is_custom, :is_favorite)`, r); err != nil {
			return fmt.Errorf("seed %s: %w", p.ID, err)
		}
	}
	if _, err := tx.Exec(`INSERT INTO preset_meta (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, selectedKey, DefaultSelectedID); err != nil {
		return fmt.Errorf("select default: %w", err)
	}
	return tx.Commit()
}

func (s *Store) selectedID() (string, error) {
	var id string
	err := s.db.Get(&id, `SELECT value FROM preset_meta WHERE key = ?`, selectedKey)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("selected preset: %w", err)
	}
	return id, nil
}

func (s *Store) setSelected(id string) error {
	_, err := s.db.Exec(`INSERT INTO preset_meta (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, selectedKey, id)
	if err != nil {
		return fmt.Errorf("select preset: %w", err)
	}
	return nil
}

func requireRow(res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

func rowFor(p Pattern, position int) (patternRow, error) {
	phases, err := json.Marshal(p.Phases)
	if err != nil {
		return patternRow{}, fmt.Errorf("marshal phases: %w", err)
	}
	tags := p.Metadata.Tags
	if tags == nil {
		tags = []string{}
	}
	tagsJSON, err := json.Marshal(tags)
	if err != nil {
		return patternRow{}, fmt.Errorf("marshal tags: %w", err)
	}

	return patternRow{
		ID:            p.ID,
		Position:      position,
		Name:          p.Name,
		Description:   p.Description,
		Shape:         p.Shape.String(),
		PhasesJSON:    string(phases),
		DefaultCycles: p.DefaultCycles,
		Tempo:         p.Tempo,
		TagsJSON:      string(tagsJSON),
		Difficulty:    string(p.Metadata.Difficulty),
		TotalDuration: p.Metadata.TotalDuration,
		Sound:         p.Preferences.Sound,
		Haptics:       p.Preferences.Haptics,
		VoiceCues:     string(p.Preferences.VoiceCues),
		CreatedAt:     p.CreatedAt.UnixMilli(),
		IsCustom:      p.IsCustom,
		IsFavorite:    p.IsFavorite,
	}, nil
}

func (r patternRow) pattern() (Pattern, error) {
	k, err := shape.Parse(r.Shape)
	if err != nil {
		return Pattern{}, fmt.Errorf("preset %s: %w", r.ID, err)
	}

	var phases []Phase
	if err := json.Unmarshal([]byte(r.PhasesJSON), &phases); err != nil {
		return Pattern{}, fmt.Errorf("preset %s phases: %w", r.ID, err)
	}
	var tags []string
	if err := json.Unmarshal([]byte(r.TagsJSON), &tags); err != nil {
		return Pattern{}, fmt.Errorf("preset %s tags: %w", r.ID, err)
	}

	return Pattern{
		ID:            r.ID,
		Name:          r.Name,
		Description:   r.Description,
		Shape:         k,
		Phases:        phases,
		DefaultCycles: r.DefaultCycles,
		Tempo:         r.Tempo,
		Metadata: Metadata{
			Tags:          tags,
			Difficulty:    Difficulty(r.Difficulty),
			TotalDuration: r.TotalDuration,
		},
		Preferences: Preferences{
			Sound:     r.Sound,
			Haptics:   r.Haptics,
			VoiceCues: VoiceCues(r.VoiceCues),
		},
		CreatedAt:  time.UnixMilli(r.CreatedAt),
		IsCustom:   r.IsCustom,
		IsFavorite: r.IsFavorite,
	}, nil
}
