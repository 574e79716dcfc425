package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/mcoot/wordwolf/internal/model"
	"github.com/mcoot/wordwolf/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// Aggregates are cloned on the way in and out so callers never share state.
type Storage struct {
	mu sync.RWMutex

	players map[model.PlayerID]model.Player
	rooms   map[model.RoomID]*model.Room
	games   map[model.GameID]*model.Game
	themes  map[model.ThemeID]model.Theme
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		players: make(map[model.PlayerID]model.Player),
		rooms:   make(map[model.RoomID]*model.Room),
		games:   make(map[model.GameID]*model.Game),
		themes:  make(map[model.ThemeID]model.Theme),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players[player.ID()] = *player
	return nil
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.players[id]
	if !ok {
		return nil, model.NewRepositoryError(model.RepositoryNotFound, nil, "player %s", id)
	}
	return &player, nil
}

func (s *Storage) DeletePlayer(ctx context.Context, id model.PlayerID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.players, id)
	return nil
}

// Room operations

func (s *Storage) SaveRoom(ctx context.Context, room *model.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms[room.ID()] = room.Clone()
	return nil
}

func (s *Storage) GetRoom(ctx context.Context, id model.RoomID) (*model.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	room, ok := s.rooms[id]
	if !ok {
		return nil, model.NewRepositoryError(model.RepositoryNotFound, nil, "room %s", id)
	}
	return room.Clone(), nil
}

func (s *Storage) DeleteRoom(ctx context.Context, id model.RoomID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rooms, id)
	return nil
}

// Game operations

func (s *Storage) SaveGame(ctx context.Context, game *model.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[game.ID()] = game.Clone()
	return nil
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	game, ok := s.games[id]
	if !ok {
		return nil, model.NewRepositoryError(model.RepositoryNotFound, nil, "game %s", id)
	}
	return game.Clone(), nil
}

func (s *Storage) DeleteGame(ctx context.Context, id model.GameID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.games, id)
	return nil
}

// Theme operations

func (s *Storage) SaveThemes(ctx context.Context, themes []model.Theme) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, theme := range themes {
		s.themes[theme.ID()] = theme
	}
	return nil
}

func (s *Storage) FindThemesByKind(ctx context.Context, kind model.ThemeKind) ([]model.Theme, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := []model.Theme{}
	for _, theme := range s.themes {
		if theme.Kind() == kind {
			result = append(result, theme)
		}
	}
	slices.SortFunc(result, func(a, b model.Theme) int {
		return a.ID().Compare(b.ID())
	})
	return result, nil
}

func (s *Storage) ListThemeKinds(ctx context.Context) ([]model.ThemeKind, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	seen := make(map[model.ThemeKind]struct{})
	kinds := []model.ThemeKind{}
	for _, theme := range s.themes {
		if _, ok := seen[theme.Kind()]; ok {
			continue
		}
		seen[theme.Kind()] = struct{}{}
		kinds = append(kinds, theme.Kind())
	}
	slices.SortFunc(kinds, func(a, b model.ThemeKind) int {
		return cmp.Compare(a.String(), b.String())
	})
	return kinds, nil
}
