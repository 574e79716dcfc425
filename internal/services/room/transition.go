package room

import (
	"context"
	"log/slog"
	"time"

	"github.com/mcoot/wordwolf/internal/dependencies/clock"
	"github.com/mcoot/wordwolf/internal/dependencies/random"
	"github.com/mcoot/wordwolf/internal/model"
)

// ThemeLookup finds the candidate themes for a room
type ThemeLookup interface {
	FindThemesByKind(ctx context.Context, kind model.ThemeKind) ([]model.Theme, error)
}

// GameFactory builds the game a room transitions into
type GameFactory interface {
	Create(
		ctx context.Context,
		roomID model.RoomID,
		themeID model.ThemeID,
		endedAt time.Time,
		wolves model.WolfGroup,
		citizens model.CitizenGroup,
	) (*model.Game, error)
}

// TransitionService turns a room into a running game: it picks a theme,
// splits the players into wolves and citizens and hands out the words.
type TransitionService struct {
	themes ThemeLookup
	games  GameFactory
	clock  clock.Clock
	random random.Random
	logger *slog.Logger
}

// NewTransitionService creates a new TransitionService
func NewTransitionService(
	themes ThemeLookup,
	games GameFactory,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *TransitionService {
	return &TransitionService{
		themes: themes,
		games:  games,
		clock:  clock,
		random: random,
		logger: logger,
	}
}

// StartGame builds the game for room. Random draws happen in a fixed order:
// theme choice, then the shuffle, then the word coin flip.
func (s *TransitionService) StartGame(ctx context.Context, room *model.Room) (*model.Game, error) {
	kind := room.ThemeKind()
	themes, err := s.themes.FindThemesByKind(ctx, kind)
	if err != nil {
		return nil, model.WrapDomainError(model.KindFail, err, "not found themes by search theme kind: %s", kind)
	}
	if len(themes) == 0 {
		return nil, model.NewDomainError(model.KindFail, "themes related to %s do not exist", kind)
	}
	theme := random.Choose(s.random, themes)

	players := room.AllPlayers()
	random.Shuffle(s.random, players)

	wolfCount := room.WolfCount().Int()
	if len(players) < wolfCount {
		return nil, model.NewDomainError(model.KindInvalidInput,
			"not enough players to assign %d wolves: have %d", wolfCount, len(players))
	}

	wolfWord, citizenWord := theme.ChoiceWord(s.random)
	wolves := model.NewWolfGroup(players[:wolfCount], wolfWord)
	citizens := model.NewCitizenGroup(players[wolfCount:], citizenWord)

	endedAt := room.GameTime().EndedAt(s.clock.Now())

	game, err := s.games.Create(ctx, room.ID(), theme.ID(), endedAt, wolves, citizens)
	if err != nil {
		return nil, err
	}

	s.logger.Info("game assigned",
		slog.String("room_id", room.ID().String()),
		slog.String("theme_id", theme.ID().String()),
		slog.Int("wolves", len(wolves.Players())),
		slog.Int("citizens", len(citizens.Players())),
	)
	return game, nil
}
