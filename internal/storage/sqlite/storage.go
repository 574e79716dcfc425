package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // pure go sqlite driver

	"github.com/mcoot/wordwolf/internal/model"
	"github.com/mcoot/wordwolf/internal/storage"
)

//go:embed schema.sql
var schema string

// DefaultPath is used when no database path is configured
const DefaultPath = "wordwolf.db"

// Storage is a SQLite-backed implementation of the storage interface.
// Rooms and games are stored as JSON payloads; themes are stored as columns.
type Storage struct {
	db *sql.DB
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// New opens (creating if needed) the database at path and applies the schema
func New(path string) (*Storage, error) {
	if path == "" {
		path = DefaultPath
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("create dirs: %w", err)
	}
	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// A single connection serialises writers
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Storage{db: db}, nil
}

// Close closes the database handle
func (s *Storage) Close() error {
	return s.db.Close()
}

func fail(err error, format string, args ...any) error {
	return model.NewRepositoryError(model.RepositoryFail, err, format, args...)
}

func (s *Storage) savePayload(ctx context.Context, table, id string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fail(err, "encode %s %s", table, id)
	}
	query := fmt.Sprintf(`INSERT INTO %s (id, payload) VALUES (?, ?)
		ON CONFLICT(id) DO UPDATE SET payload = excluded.payload`, table)
	if _, err := s.db.ExecContext(ctx, query, id, payload); err != nil {
		return fail(err, "save %s %s", table, id)
	}
	return nil
}

func (s *Storage) loadPayload(ctx context.Context, table, id string, dst any) error {
	var payload []byte
	query := fmt.Sprintf(`SELECT payload FROM %s WHERE id = ?`, table)
	err := s.db.QueryRowContext(ctx, query, id).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return model.NewRepositoryError(model.RepositoryNotFound, nil, "%s %s", table, id)
	}
	if err != nil {
		return fail(err, "get %s %s", table, id)
	}
	if err := json.Unmarshal(payload, dst); err != nil {
		return fail(err, "decode %s %s", table, id)
	}
	return nil
}

func (s *Storage) deleteRow(ctx context.Context, table, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = ?`, table)
	if _, err := s.db.ExecContext(ctx, query, id); err != nil {
		return fail(err, "delete %s %s", table, id)
	}
	return nil
}

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	return s.savePayload(ctx, "players", player.ID().Raw(), player)
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	var player model.Player
	if err := s.loadPayload(ctx, "players", id.Raw(), &player); err != nil {
		return nil, err
	}
	return &player, nil
}

func (s *Storage) DeletePlayer(ctx context.Context, id model.PlayerID) error {
	return s.deleteRow(ctx, "players", id.Raw())
}

// Room operations

func (s *Storage) SaveRoom(ctx context.Context, room *model.Room) error {
	return s.savePayload(ctx, "rooms", room.ID().Raw(), room)
}

func (s *Storage) GetRoom(ctx context.Context, id model.RoomID) (*model.Room, error) {
	var room model.Room
	if err := s.loadPayload(ctx, "rooms", id.Raw(), &room); err != nil {
		return nil, err
	}
	return &room, nil
}

func (s *Storage) DeleteRoom(ctx context.Context, id model.RoomID) error {
	return s.deleteRow(ctx, "rooms", id.Raw())
}

// Game operations

func (s *Storage) SaveGame(ctx context.Context, game *model.Game) error {
	return s.savePayload(ctx, "games", game.ID().Raw(), game)
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	var game model.Game
	if err := s.loadPayload(ctx, "games", id.Raw(), &game); err != nil {
		return nil, err
	}
	return &game, nil
}

func (s *Storage) DeleteGame(ctx context.Context, id model.GameID) error {
	return s.deleteRow(ctx, "games", id.Raw())
}

// Theme operations

func (s *Storage) SaveThemes(ctx context.Context, themes []model.Theme) (retErr error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fail(err, "begin theme import")
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO themes (id, kind, first, second) VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET kind = excluded.kind, first = excluded.first, second = excluded.second`)
	if err != nil {
		return fail(err, "prepare theme upsert")
	}
	defer func() { _ = stmt.Close() }()

	for _, theme := range themes {
		if _, err := stmt.ExecContext(ctx, theme.ID().Raw(), theme.Kind().String(),
			theme.First().String(), theme.Second().String()); err != nil {
			return fail(err, "save theme %s", theme.ID())
		}
	}
	if err := tx.Commit(); err != nil {
		return fail(err, "commit theme import")
	}
	return nil
}

func (s *Storage) FindThemesByKind(ctx context.Context, kind model.ThemeKind) ([]model.Theme, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, first, second FROM themes WHERE kind = ? ORDER BY id`, kind.String())
	if err != nil {
		return nil, fail(err, "find themes of kind %s", kind)
	}
	defer func() { _ = rows.Close() }()

	themes := []model.Theme{}
	for rows.Next() {
		var id, first, second string
		if err := rows.Scan(&id, &first, &second); err != nil {
			return nil, fail(err, "scan theme")
		}
		theme, err := themeFromRow(id, kind, first, second)
		if err != nil {
			return nil, fail(err, "decode theme %s", id)
		}
		themes = append(themes, theme)
	}
	if err := rows.Err(); err != nil {
		return nil, fail(err, "find themes of kind %s", kind)
	}
	return themes, nil
}

func (s *Storage) ListThemeKinds(ctx context.Context) ([]model.ThemeKind, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT kind FROM themes ORDER BY kind`)
	if err != nil {
		return nil, fail(err, "list theme kinds")
	}
	defer func() { _ = rows.Close() }()

	kinds := []model.ThemeKind{}
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fail(err, "scan theme kind")
		}
		kind, err := model.NewThemeKind(raw)
		if err != nil {
			return nil, fail(err, "decode theme kind")
		}
		kinds = append(kinds, kind)
	}
	if err := rows.Err(); err != nil {
		return nil, fail(err, "list theme kinds")
	}
	return kinds, nil
}

func themeFromRow(id string, kind model.ThemeKind, first, second string) (model.Theme, error) {
	firstWord, err := model.NewWord(first)
	if err != nil {
		return model.Theme{}, err
	}
	secondWord, err := model.NewWord(second)
	if err != nil {
		return model.Theme{}, err
	}
	return model.NewTheme(model.NewID[model.Theme](id), kind, firstWord, secondWord)
}
