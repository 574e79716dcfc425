package room

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/wordwolf/internal/dependencies/mocks"
	"github.com/mcoot/wordwolf/internal/dependencies/random"
	"github.com/mcoot/wordwolf/internal/model"
	"github.com/mcoot/wordwolf/internal/services/game"
	"github.com/mcoot/wordwolf/internal/testutil"
)

type stubThemes struct {
	themes []model.Theme
	err    error
	kinds  []model.ThemeKind
}

func (s *stubThemes) FindThemesByKind(ctx context.Context, kind model.ThemeKind) ([]model.Theme, error) {
	s.kinds = append(s.kinds, kind)
	return s.themes, s.err
}

type failingGames struct {
	err error
}

func (f failingGames) Create(
	ctx context.Context,
	roomID model.RoomID,
	themeID model.ThemeID,
	endedAt time.Time,
	wolves model.WolfGroup,
	citizens model.CitizenGroup,
) (*model.Game, error) {
	return nil, f.err
}

type TransitionSuite struct {
	suite.Suite
	themes  *stubThemes
	clock   *mocks.MockClock
	random  *mocks.MockRandom
	service *TransitionService
	ctx     context.Context
}

func TestTransitionSuite(t *testing.T) {
	suite.Run(t, new(TransitionSuite))
}

func (s *TransitionSuite) SetupTest() {
	s.themes = &stubThemes{themes: []model.Theme{
		testutil.Theme(s.T(), "theme-1", "food", "ramen", "udon"),
		testutil.Theme(s.T(), "theme-2", "food", "apple", "pear"),
	}}
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	ids := mocks.NewMockIDs()
	ids.Queue("game-1")
	s.service = NewTransitionService(s.themes, game.NewFactory(ids), s.clock, s.random, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *TransitionSuite) fullRoom() *model.Room {
	return testutil.Room(s.T(), "room-1", 5, 2, "p1", "p1", "p2", "p3", "p4", "p5")
}

func (s *TransitionSuite) TestExampleScenario() {
	// Theme 0, identity shuffle, wolves take the first word
	s.random.QueueIntn(0, 4, 3, 2, 1)
	s.random.QueueBool(true)

	g, err := s.service.StartGame(s.ctx, s.fullRoom())
	s.Require().NoError(err)

	s.Equal("game-1", g.ID().Raw())
	s.Equal("room-1", g.RoomID().Raw())
	s.Equal("theme-1", g.ThemeID().Raw())
	s.Equal(testutil.PlayerIDs("p1", "p2"), g.Wolves().Players())
	s.Equal("ramen", g.Wolves().Word().String())
	s.Equal(testutil.PlayerIDs("p3", "p4", "p5"), g.Citizens().Players())
	s.Equal("udon", g.Citizens().Word().String())
	s.Equal(time.Date(2024, 1, 1, 12, 5, 0, 0, time.UTC), g.EndedAt())
	s.Equal(model.GameStatusTalking, g.Status())
	s.Equal(0, g.VoteBox().Len())
	s.Equal([]model.ThemeKind{testutil.ThemeKind(s.T(), "food")}, s.themes.kinds)
}

func (s *TransitionSuite) TestZeroDrawsRotatePlayersAndSwapWords() {
	g, err := s.service.StartGame(s.ctx, s.fullRoom())
	s.Require().NoError(err)

	s.Equal("theme-1", g.ThemeID().Raw())
	s.Equal(testutil.PlayerIDs("p2", "p3"), g.Wolves().Players())
	s.Equal(testutil.PlayerIDs("p4", "p5", "p1"), g.Citizens().Players())
	s.Equal("udon", g.Wolves().Word().String())
	s.Equal("ramen", g.Citizens().Word().String())
}

func (s *TransitionSuite) TestChoosesThemeByDraw() {
	s.random.QueueIntn(1)

	g, err := s.service.StartGame(s.ctx, s.fullRoom())
	s.Require().NoError(err)
	s.Equal("theme-2", g.ThemeID().Raw())
}

func (s *TransitionSuite) TestPartitionIsComplete() {
	g, err := s.service.StartGame(s.ctx, s.fullRoom())
	s.Require().NoError(err)

	s.Len(g.Wolves().Players(), 2)
	s.ElementsMatch(testutil.PlayerIDs("p1", "p2", "p3", "p4", "p5"), g.AllPlayers())
	s.NotEqual(g.Wolves().Word(), g.Citizens().Word())
}

func (s *TransitionSuite) TestLookupErrorIsFail() {
	cause := errors.New("connection refused")
	s.themes.err = cause

	_, err := s.service.StartGame(s.ctx, s.fullRoom())
	s.ErrorIs(err, model.ErrFail)
	s.ErrorIs(err, cause)
	s.EqualError(err, "fail: not found themes by search theme kind: food: connection refused")
}

func (s *TransitionSuite) TestNoThemesIsFail() {
	s.themes.themes = nil

	_, err := s.service.StartGame(s.ctx, s.fullRoom())
	s.ErrorIs(err, model.ErrFail)
	s.EqualError(err, "fail: themes related to food do not exist")
}

func (s *TransitionSuite) TestTooFewPlayersIsInvalidInput() {
	room := testutil.Room(s.T(), "room-1", 5, 3, "p1", "p1", "p2")

	_, err := s.service.StartGame(s.ctx, room)
	s.ErrorIs(err, model.ErrInvalidInput)
	s.EqualError(err, "invalid_input: not enough players to assign 3 wolves: have 2")
}

func (s *TransitionSuite) TestAllWolvesLeavesCitizensEmpty() {
	room := testutil.Room(s.T(), "room-1", 5, 2, "p1", "p1", "p2")

	g, err := s.service.StartGame(s.ctx, room)
	s.Require().NoError(err)
	s.Len(g.Wolves().Players(), 2)
	s.Empty(g.Citizens().Players())
}

func (s *TransitionSuite) TestGameFactoryErrorIsReturnedUnchanged() {
	cause := errors.New("boom")
	s.service = NewTransitionService(s.themes, failingGames{err: cause}, s.clock, s.random, testutil.NopLogger())

	_, err := s.service.StartGame(s.ctx, s.fullRoom())
	s.Equal(cause, err)
}

func (s *TransitionSuite) TestEndedAtFollowsClock() {
	tokyo := time.FixedZone("JST", 9*60*60)
	s.clock.Set(time.Date(2024, 6, 30, 23, 58, 0, 0, tokyo))

	g, err := s.service.StartGame(s.ctx, s.fullRoom())
	s.Require().NoError(err)
	s.Equal(time.Date(2024, 7, 1, 0, 3, 0, 0, tokyo), g.EndedAt())
	s.Equal(tokyo, g.EndedAt().Location())
}

func (s *TransitionSuite) TestWordCoinDecidesWolfWord() {
	cases := []struct {
		coin        bool
		wolfWord    string
		citizenWord string
	}{
		{coin: true, wolfWord: "ramen", citizenWord: "udon"},
		{coin: false, wolfWord: "udon", citizenWord: "ramen"},
		{coin: true, wolfWord: "ramen", citizenWord: "udon"},
	}

	for _, c := range cases {
		s.random.Reset()
		s.random.QueueIntn(0, 4, 3, 2, 1)
		s.random.QueueBool(c.coin)

		g, err := s.service.StartGame(s.ctx, s.fullRoom())
		s.Require().NoError(err)
		s.Equal(testutil.PlayerIDs("p1", "p2"), g.Wolves().Players())
		s.Equal(c.wolfWord, g.Wolves().Word().String())
		s.Equal(c.citizenWord, g.Citizens().Word().String())
	}
}

// Seeded randomness

func (s *TransitionSuite) seededService(seed uint64, themes []model.Theme) *TransitionService {
	return NewTransitionService(
		&stubThemes{themes: themes},
		game.NewFactory(mocks.NewMockIDs()),
		s.clock,
		random.NewSeeded(seed),
		testutil.NopLogger(),
	)
}

func (s *TransitionSuite) seededThemes() []model.Theme {
	return []model.Theme{
		testutil.Theme(s.T(), "theme-1", "food", "ramen", "udon"),
		testutil.Theme(s.T(), "theme-2", "food", "apple", "pear"),
		testutil.Theme(s.T(), "theme-3", "food", "tea", "coffee"),
		testutil.Theme(s.T(), "theme-4", "food", "rice", "bread"),
	}
}

func (s *TransitionSuite) seededRoom(size, wolves int) *model.Room {
	players := make([]string, 0, size)
	for i := 1; i <= size; i++ {
		players = append(players, fmt.Sprintf("p%02d", i))
	}
	return testutil.Room(s.T(), "room-1", size, wolves, players[0], players...)
}

func (s *TransitionSuite) TestSameSeedDealsSameGame() {
	themes := s.seededThemes()

	for _, seed := range []uint64{1, 7, 42, 20240101} {
		first, err := s.seededService(seed, themes).StartGame(s.ctx, s.seededRoom(8, 3))
		s.Require().NoError(err)
		second, err := s.seededService(seed, themes).StartGame(s.ctx, s.seededRoom(8, 3))
		s.Require().NoError(err)

		s.Equal(first.ThemeID(), second.ThemeID(), "seed %d", seed)
		s.Equal(first.Wolves().Players(), second.Wolves().Players(), "seed %d", seed)
		s.Equal(first.Citizens().Players(), second.Citizens().Players(), "seed %d", seed)
		s.Equal(first.Wolves().Word(), second.Wolves().Word(), "seed %d", seed)
		s.Equal(first.Citizens().Word(), second.Citizens().Word(), "seed %d", seed)
		s.Equal(first.EndedAt(), second.EndedAt(), "seed %d", seed)
	}
}

func (s *TransitionSuite) TestSeededDealsKeepPartitionInvariants() {
	themes := s.seededThemes()
	byID := make(map[model.ThemeID]model.Theme, len(themes))
	for _, t := range themes {
		byID[t.ID()] = t
	}

	sizes := []struct{ players, wolves int }{
		{players: 3, wolves: 1},
		{players: 5, wolves: 2},
		{players: 8, wolves: 3},
		{players: 12, wolves: 5},
	}

	for seed := uint64(1); seed <= 25; seed++ {
		for _, size := range sizes {
			s.Run(fmt.Sprintf("seed=%d/players=%d/wolves=%d", seed, size.players, size.wolves), func() {
				room := s.seededRoom(size.players, size.wolves)

				g, err := s.seededService(seed, themes).StartGame(s.ctx, room)
				s.Require().NoError(err)

				wolves := g.Wolves().Players()
				citizens := g.Citizens().Players()
				s.Len(wolves, size.wolves)
				s.Len(citizens, size.players-size.wolves)
				for _, w := range wolves {
					s.NotContains(citizens, w)
				}
				s.ElementsMatch(room.AllPlayers(), append(append([]model.PlayerID{}, wolves...), citizens...))

				s.NotEqual(g.Wolves().Word(), g.Citizens().Word())
				theme, ok := byID[g.ThemeID()]
				s.Require().True(ok)
				s.ElementsMatch(
					[]model.Word{theme.First(), theme.Second()},
					[]model.Word{g.Wolves().Word(), g.Citizens().Word()},
				)
			})
		}
	}
}
