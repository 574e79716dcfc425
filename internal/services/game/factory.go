package game

import (
	"context"
	"time"

	"github.com/mcoot/wordwolf/internal/dependencies/ids"
	"github.com/mcoot/wordwolf/internal/model"
)

// Factory builds fresh games: talking, with an empty vote box
type Factory struct {
	ids ids.Generator
}

// NewFactory creates a new game Factory
func NewFactory(ids ids.Generator) *Factory {
	return &Factory{ids: ids}
}

// Create builds a new game in the talking phase
func (f *Factory) Create(
	ctx context.Context,
	roomID model.RoomID,
	themeID model.ThemeID,
	endedAt time.Time,
	wolves model.WolfGroup,
	citizens model.CitizenGroup,
) (*model.Game, error) {
	return model.NewGame(
		model.NewID[model.Game](f.ids.NewID()),
		roomID,
		themeID,
		endedAt,
		wolves,
		citizens,
		model.NewVoteBox(nil),
		model.GameStatusTalking,
	)
}
