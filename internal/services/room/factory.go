package room

import (
	"github.com/mcoot/wordwolf/internal/dependencies/ids"
	"github.com/mcoot/wordwolf/internal/model"
)

// Factory builds new rooms with generated ids
type Factory struct {
	ids ids.Generator
}

// NewFactory creates a new room Factory
func NewFactory(ids ids.Generator) *Factory {
	return &Factory{ids: ids}
}

// Create builds a room whose only member is its host
func (f *Factory) Create(
	playerCount model.PlayerCount,
	wolfCount model.WolfCount,
	host model.PlayerID,
	gameTime model.GameMinutes,
	themeKind model.ThemeKind,
) (*model.Room, error) {
	return model.NewRoom(
		model.NewID[model.Room](f.ids.NewID()),
		playerCount,
		wolfCount,
		host,
		[]model.PlayerID{host},
		gameTime,
		themeKind,
	)
}
