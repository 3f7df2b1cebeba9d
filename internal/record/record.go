// Package record archives finished and in-progress games to a SQL database
// through GORM. It is an append-only history; games are never resumed from it.
package record

import (
	"errors"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Garsondee/Skies-Seas/internal/game"
)

// Config selects and names the archive database.
type Config struct {
	Driver    string // "sqlite" or "postgres"
	Path      string // sqlite file; empty means in-memory
	DSN       string // postgres connection string
	PlayerOne string
	PlayerTwo string
}

// Recorder is a game.EventSink that writes every event to the archive.
// Sink callbacks cannot fail, so write errors are logged and the first one
// is kept for Err.
type Recorder struct {
	db      *gorm.DB
	log     zerolog.Logger
	names   [2]string
	current *Match
	err     error
}

func gormConfig() *gorm.Config {
	return &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	}
}

// OpenDB connects to the configured database without migrating it.
func OpenDB(cfg Config) (*gorm.DB, error) {
	switch cfg.Driver {
	case "", "sqlite":
		path := cfg.Path
		if path == "" {
			path = "file::memory:?cache=shared"
		}
		return gorm.Open(sqlite.Open(path), gormConfig())
	case "postgres":
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  cfg.DSN,
			PreferSimpleProtocol: true,
		}), gormConfig())
	default:
		return nil, fmt.Errorf("unknown record driver %q", cfg.Driver)
	}
}

// Open connects, migrates the schema and returns a ready Recorder.
func Open(cfg Config, log zerolog.Logger) (*Recorder, error) {
	db, err := OpenDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s archive: %w", cfg.Driver, err)
	}
	return New(db, cfg, log)
}

// New wraps an already opened database.
func New(db *gorm.DB, cfg Config, log zerolog.Logger) (*Recorder, error) {
	if err := db.AutoMigrate(Models...); err != nil {
		return nil, fmt.Errorf("failed to migrate archive schema: %w", err)
	}
	log = log.With().Str("component", "record").Str("driver", db.Dialector.Name()).Logger()
	log.Info().Msg("Match archive ready")
	return &Recorder{
		db:    db,
		log:   log,
		names: [2]string{cfg.PlayerOne, cfg.PlayerTwo},
	}, nil
}

// Err returns the first write error seen, if any.
func (r *Recorder) Err() error { return r.err }

func (r *Recorder) fail(err error, msg string) {
	r.log.Error().Err(err).Msg(msg)
	if r.err == nil {
		r.err = err
	}
}

// HandleEvent implements game.EventSink.
func (r *Recorder) HandleEvent(e game.Event) {
	if e.Kind == game.EventGameStarted || r.current == nil || r.current.GameID != e.Game {
		if err := r.begin(e); err != nil {
			r.fail(err, "failed to create match")
			return
		}
	}

	row := toRow(r.current.ID, e)
	if err := r.db.Create(&row).Error; err != nil {
		r.fail(err, "failed to store event")
		return
	}

	switch e.Kind {
	case game.EventTurnEnded:
		r.current.Turns = e.Turn
		if err := r.db.Model(r.current).Update("turns", e.Turn).Error; err != nil {
			r.fail(err, "failed to update turns")
		}
	case game.EventVictory:
		now := time.Now().UTC()
		r.current.Turns, r.current.Winner, r.current.EndedAt = e.Turn, e.Actor, &now
		err := r.db.Model(r.current).Updates(map[string]any{
			"turns":    e.Turn,
			"winner":   e.Actor,
			"ended_at": now,
		}).Error
		if err != nil {
			r.fail(err, "failed to close match")
			return
		}
		r.log.Info().Str("game", e.Game).Int("winner", e.Actor).Int("turns", e.Turn).Msg("Match archived")
	}
}

func (r *Recorder) begin(e game.Event) error {
	m := &Match{
		GameID:    e.Game,
		PlayerOne: r.names[0],
		PlayerTwo: r.names[1],
		StartedAt: time.Now().UTC(),
		Winner:    game.NoPlayer,
	}
	if err := r.db.Create(m).Error; err != nil {
		return err
	}
	r.current = m
	return nil
}

func toRow(matchID uint, e game.Event) MatchEvent {
	row := MatchEvent{
		MatchID:  matchID,
		Seq:      e.Seq,
		Turn:     e.Turn,
		Kind:     e.Kind.String(),
		Actor:    e.Actor,
		Subject:  e.Subject,
		Cell:     e.Cell,
		Unit:     string(e.Unit),
		Occupied: e.Occupied,
		Cleared:  e.Cleared,
		Answer:   e.Answer,
	}
	if e.Unit != "" {
		row.UnitKind = e.UnitKind.String()
	}
	switch e.Kind {
	case game.EventGameStarted, game.EventBattleStarted, game.EventLockedIn,
		game.EventRandomPlaced, game.EventPlacementCleared, game.EventTurnEnded:
	default:
		row.Layer = e.Layer.String()
	}
	switch e.Kind {
	case game.EventActionSelected:
		row.Detail = e.Action.String()
	case game.EventQueryAnswered:
		row.Detail = e.Query.String() + " " + e.Query.LineLabel(e.Line)
	}
	return row
}

// ErrMatchNotFound is returned for an unknown game id.
var ErrMatchNotFound = errors.New("match not found")

// Matches returns the most recent matches first, at most limit (0 = all).
func (r *Recorder) Matches(limit int) ([]Match, error) {
	var out []Match
	q := r.db.Order("started_at DESC").Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Match loads one match by game id.
func (r *Recorder) Match(gameID string) (Match, error) {
	var m Match
	err := r.db.Where("game_id = ?", gameID).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Match{}, fmt.Errorf("%w: %s", ErrMatchNotFound, gameID)
	}
	return m, err
}

// Events returns a match's events in sequence order.
func (r *Recorder) Events(gameID string) ([]MatchEvent, error) {
	m, err := r.Match(gameID)
	if err != nil {
		return nil, err
	}
	var out []MatchEvent
	if err := r.db.Where("match_id = ?", m.ID).Order("seq").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Close releases the database connection.
func (r *Recorder) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
