package game

import (
	"context"
	"log/slog"

	"github.com/mcoot/wordwolf/internal/dependencies/clock"
	"github.com/mcoot/wordwolf/internal/model"
	"github.com/mcoot/wordwolf/internal/services/locker"
	"github.com/mcoot/wordwolf/internal/storage"
)

// Outcome is the result of a closed vote
type Outcome struct {
	Selected    []model.PlayerID       // Every player tied on the most votes, sorted by id
	Tally       map[model.PlayerID]int // Votes received per target
	WolvesFound bool                   // Selection is non-empty and contains only wolves
}

// Controller manages the game phase machine and voting
type Controller struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
	locks   locker.Keyed[model.GameID]
}

// NewController creates a new game Controller
func NewController(
	storage storage.Storage,
	clock clock.Clock,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// GetGame retrieves a game by ID
func (c *Controller) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	game, err := c.storage.GetGame(ctx, id)
	if err != nil {
		return nil, model.FromRepositoryError(err, "game %s", id)
	}
	return game, nil
}

// StartVoting closes the talk phase. It may be called before the talk timer
// runs out; the host decides when discussion is over.
func (c *Controller) StartVoting(ctx context.Context, id model.GameID) (*model.Game, error) {
	unlock := c.locks.Lock(id)
	defer unlock()

	game, err := c.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := game.StartVoting(); err != nil {
		return nil, err
	}
	if err := c.save(ctx, game); err != nil {
		return nil, err
	}

	c.logger.Info("voting started",
		slog.String("game_id", id.String()),
		slog.Bool("early", c.clock.Now().Before(game.EndedAt())),
	)
	return game, nil
}

// CastVote records voter's accusation of target. Voting closes automatically
// once every player has voted.
func (c *Controller) CastVote(ctx context.Context, id model.GameID, voter, target model.PlayerID) (model.VoteResult, error) {
	unlock := c.locks.Lock(id)
	defer unlock()

	game, err := c.GetGame(ctx, id)
	if err != nil {
		return model.VoteResult{}, err
	}
	result, err := game.Vote(model.Vote{Target: target, Voter: voter})
	if err != nil {
		return model.VoteResult{}, err
	}
	if result.IsEnd {
		if err := game.End(); err != nil {
			return model.VoteResult{}, err
		}
	}
	if err := c.save(ctx, game); err != nil {
		return model.VoteResult{}, err
	}

	c.logger.Info("vote cast",
		slog.String("game_id", id.String()),
		slog.String("voter", voter.String()),
		slog.Int("votes", game.VoteBox().Len()),
		slog.Int("players", game.PlayerCount()),
	)
	if result.IsEnd {
		c.logger.Info("voting ended", slog.String("game_id", id.String()))
	}
	return result, nil
}

// EndVoting closes voting early and returns the outcome
func (c *Controller) EndVoting(ctx context.Context, id model.GameID) (Outcome, error) {
	unlock := c.locks.Lock(id)
	defer unlock()

	game, err := c.GetGame(ctx, id)
	if err != nil {
		return Outcome{}, err
	}
	if err := game.End(); err != nil {
		return Outcome{}, err
	}
	if err := c.save(ctx, game); err != nil {
		return Outcome{}, err
	}

	c.logger.Info("voting ended",
		slog.String("game_id", id.String()),
		slog.Int("votes", game.VoteBox().Len()),
	)
	return outcomeOf(game), nil
}

// Outcome returns the result of a game whose voting has closed
func (c *Controller) Outcome(ctx context.Context, id model.GameID) (Outcome, error) {
	game, err := c.GetGame(ctx, id)
	if err != nil {
		return Outcome{}, err
	}
	if game.Status() != model.GameStatusEnded {
		return Outcome{}, model.NewDomainError(model.KindFail, "game status is not ended")
	}
	return outcomeOf(game), nil
}

// DeleteGame removes a game
func (c *Controller) DeleteGame(ctx context.Context, id model.GameID) error {
	unlock := c.locks.Lock(id)
	defer unlock()

	if _, err := c.GetGame(ctx, id); err != nil {
		return err
	}
	if err := c.storage.DeleteGame(ctx, id); err != nil {
		return model.FromRepositoryError(err, "delete game %s", id)
	}
	c.logger.Info("game deleted", slog.String("game_id", id.String()))
	return nil
}

func (c *Controller) save(ctx context.Context, game *model.Game) error {
	if err := c.storage.SaveGame(ctx, game); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", game.ID().String()),
			slog.String("error", err.Error()),
		)
		return model.FromRepositoryError(err, "save game %s", game.ID())
	}
	return nil
}

func outcomeOf(game *model.Game) Outcome {
	votes := game.VoteBox().Votes()
	selected := model.Selection(votes)

	found := len(selected) > 0
	for _, id := range selected {
		if !game.IsWolf(id) {
			found = false
			break
		}
	}

	return Outcome{
		Selected:    selected,
		Tally:       model.Tally(votes),
		WolvesFound: found,
	}
}
