package storage

import (
	"context"

	"github.com/mcoot/wordwolf/internal/model"
)

// Storage defines the interface for data persistence.
//
// Backends return *model.RepositoryError: RepositoryNotFound for a missing
// aggregate and RepositoryFail for everything else.
type Storage interface {
	PlayerStore
	RoomStore
	GameStore
	ThemeStore
}

// PlayerStore persists player profiles
type PlayerStore interface {
	SavePlayer(ctx context.Context, player *model.Player) error
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)
	DeletePlayer(ctx context.Context, id model.PlayerID) error
}

// RoomStore persists rooms
type RoomStore interface {
	SaveRoom(ctx context.Context, room *model.Room) error
	GetRoom(ctx context.Context, id model.RoomID) (*model.Room, error)
	DeleteRoom(ctx context.Context, id model.RoomID) error
}

// GameStore persists games
type GameStore interface {
	SaveGame(ctx context.Context, game *model.Game) error
	GetGame(ctx context.Context, id model.GameID) (*model.Game, error)
	DeleteGame(ctx context.Context, id model.GameID) error
}

// ThemeStore persists the theme catalogue
type ThemeStore interface {
	// SaveThemes upserts themes by id
	SaveThemes(ctx context.Context, themes []model.Theme) error

	// FindThemesByKind returns the themes of a kind ordered by id.
	// An unknown kind yields an empty slice, not an error.
	FindThemesByKind(ctx context.Context, kind model.ThemeKind) ([]model.Theme, error)

	// ListThemeKinds returns every kind with at least one theme, sorted
	ListThemeKinds(ctx context.Context) ([]model.ThemeKind, error)
}
