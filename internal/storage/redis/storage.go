package redis

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"slices"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/wordwolf/internal/model"
	"github.com/mcoot/wordwolf/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func fail(err error, format string, args ...any) error {
	return model.NewRepositoryError(model.RepositoryFail, err, format, args...)
}

// getDocument loads key into dst, mapping redis.Nil to RepositoryNotFound
func (s *Storage) getDocument(ctx context.Context, key string, dst any) error {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return model.NewRepositoryError(model.RepositoryNotFound, nil, "%s", key)
		}
		return fail(err, "get %s", key)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fail(err, "decode %s", key)
	}
	return nil
}

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	data, err := json.Marshal(player)
	if err != nil {
		return fail(err, "encode player %s", player.ID())
	}
	if err := s.client.Set(ctx, playerKey(player.ID()), data, s.cfg.PlayerTTL).Err(); err != nil {
		return fail(err, "save player %s", player.ID())
	}
	return nil
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	var player model.Player
	if err := s.getDocument(ctx, playerKey(id), &player); err != nil {
		return nil, err
	}
	return &player, nil
}

func (s *Storage) DeletePlayer(ctx context.Context, id model.PlayerID) error {
	if err := s.client.Del(ctx, playerKey(id)).Err(); err != nil {
		return fail(err, "delete player %s", id)
	}
	return nil
}

// Room operations

func (s *Storage) SaveRoom(ctx context.Context, room *model.Room) error {
	data, err := json.Marshal(room)
	if err != nil {
		return fail(err, "encode room %s", room.ID())
	}
	if err := s.client.Set(ctx, roomKey(room.ID()), data, s.cfg.RoomTTL).Err(); err != nil {
		return fail(err, "save room %s", room.ID())
	}
	return nil
}

func (s *Storage) GetRoom(ctx context.Context, id model.RoomID) (*model.Room, error) {
	var room model.Room
	if err := s.getDocument(ctx, roomKey(id), &room); err != nil {
		return nil, err
	}
	return &room, nil
}

func (s *Storage) DeleteRoom(ctx context.Context, id model.RoomID) error {
	if err := s.client.Del(ctx, roomKey(id)).Err(); err != nil {
		return fail(err, "delete room %s", id)
	}
	return nil
}

// Game operations

func (s *Storage) SaveGame(ctx context.Context, game *model.Game) error {
	data, err := json.Marshal(game)
	if err != nil {
		return fail(err, "encode game %s", game.ID())
	}
	if err := s.client.Set(ctx, gameKey(game.ID()), data, s.cfg.GameTTL).Err(); err != nil {
		return fail(err, "save game %s", game.ID())
	}
	return nil
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	var game model.Game
	if err := s.getDocument(ctx, gameKey(id), &game); err != nil {
		return nil, err
	}
	return &game, nil
}

func (s *Storage) DeleteGame(ctx context.Context, id model.GameID) error {
	if err := s.client.Del(ctx, gameKey(id)).Err(); err != nil {
		return fail(err, "delete game %s", id)
	}
	return nil
}

// Theme operations

func (s *Storage) SaveThemes(ctx context.Context, themes []model.Theme) error {
	if len(themes) == 0 {
		return nil
	}

	keys := make([]string, len(themes))
	for i, theme := range themes {
		keys[i] = themeKey(theme.ID())
	}

	// Load previous versions so a theme that changed kind leaves its old index
	previous, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return fail(err, "load existing themes")
	}

	pipe := s.client.TxPipeline()
	for i, theme := range themes {
		if raw, ok := previous[i].(string); ok {
			var old model.Theme
			if err := json.Unmarshal([]byte(raw), &old); err == nil && old.Kind() != theme.Kind() {
				pipe.SRem(ctx, themesByKindIndexKey(old.Kind()), keys[i])
			}
		}

		data, err := json.Marshal(theme)
		if err != nil {
			return fail(err, "encode theme %s", theme.ID())
		}
		pipe.Set(ctx, keys[i], data, 0)
		pipe.SAdd(ctx, themesByKindIndexKey(theme.Kind()), keys[i])
		pipe.SAdd(ctx, themeKindsKey(), theme.Kind().String())
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fail(err, "save themes")
	}
	return nil
}

func (s *Storage) FindThemesByKind(ctx context.Context, kind model.ThemeKind) ([]model.Theme, error) {
	keys, err := s.client.SMembers(ctx, themesByKindIndexKey(kind)).Result()
	if err != nil {
		return nil, fail(err, "list themes of kind %s", kind)
	}

	themes := []model.Theme{}
	if len(keys) == 0 {
		return themes, nil
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fail(err, "load themes of kind %s", kind)
	}

	for i, val := range values {
		raw, ok := val.(string)
		if !ok {
			continue // Removed behind the index
		}
		var theme model.Theme
		if err := json.Unmarshal([]byte(raw), &theme); err != nil {
			return nil, fail(err, "decode %s", keys[i])
		}
		themes = append(themes, theme)
	}

	slices.SortFunc(themes, func(a, b model.Theme) int {
		return a.ID().Compare(b.ID())
	})
	return themes, nil
}

func (s *Storage) ListThemeKinds(ctx context.Context) ([]model.ThemeKind, error) {
	members, err := s.client.SMembers(ctx, themeKindsKey()).Result()
	if err != nil {
		return nil, fail(err, "list theme kinds")
	}

	kinds := make([]model.ThemeKind, 0, len(members))
	for _, member := range members {
		kind, err := model.NewThemeKind(member)
		if err != nil {
			continue
		}
		kinds = append(kinds, kind)
	}

	// Drop kinds whose index has been emptied by upserts
	pipe := s.client.Pipeline()
	counts := make([]*redis.IntCmd, len(kinds))
	for i, kind := range kinds {
		counts[i] = pipe.SCard(ctx, themesByKindIndexKey(kind))
	}
	if len(kinds) > 0 {
		if _, err := pipe.Exec(ctx); err != nil {
			return nil, fail(err, "count themes by kind")
		}
	}

	result := []model.ThemeKind{}
	for i, kind := range kinds {
		if counts[i].Val() > 0 {
			result = append(result, kind)
		}
	}
	slices.SortFunc(result, func(a, b model.ThemeKind) int {
		return cmp.Compare(a.String(), b.String())
	})
	return result, nil
}
