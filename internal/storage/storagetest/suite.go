// Package storagetest holds the behaviour every storage backend must share.
package storagetest

import (
	"context"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/wordwolf/internal/model"
	"github.com/mcoot/wordwolf/internal/storage"
	"github.com/mcoot/wordwolf/internal/testutil"
)

// Suite is embedded by backend test suites. The embedding suite sets Storage
// (and Ctx) in its SetupTest before any test runs.
type Suite struct {
	suite.Suite
	Storage storage.Storage
	Ctx     context.Context
}

// Player tests

func (s *Suite) TestSaveAndGetPlayer() {
	player := testutil.Player(s.T(), "p1", model.PlayerKindHost, "Alice")

	s.Require().NoError(s.Storage.SavePlayer(s.Ctx, player))

	retrieved, err := s.Storage.GetPlayer(s.Ctx, player.ID())
	s.Require().NoError(err)
	s.Equal(*player, *retrieved)
}

func (s *Suite) TestSavePlayerOverwrites() {
	s.Require().NoError(s.Storage.SavePlayer(s.Ctx, testutil.Player(s.T(), "p1", model.PlayerKindGuest, "Alice")))
	s.Require().NoError(s.Storage.SavePlayer(s.Ctx, testutil.Player(s.T(), "p1", model.PlayerKindHost, "Alicia")))

	retrieved, err := s.Storage.GetPlayer(s.Ctx, model.NewID[model.Player]("p1"))
	s.Require().NoError(err)
	s.Equal("Alicia", retrieved.Name().String())
	s.Equal(model.PlayerKindHost, retrieved.Kind())
}

func (s *Suite) TestGetPlayerNotFound() {
	_, err := s.Storage.GetPlayer(s.Ctx, model.NewID[model.Player]("missing"))
	s.ErrorIs(err, model.ErrRepositoryNotFound)
}

func (s *Suite) TestDeletePlayer() {
	player := testutil.Player(s.T(), "p1", model.PlayerKindGuest, "Bob")
	s.Require().NoError(s.Storage.SavePlayer(s.Ctx, player))

	s.Require().NoError(s.Storage.DeletePlayer(s.Ctx, player.ID()))
	s.NoError(s.Storage.DeletePlayer(s.Ctx, player.ID()))

	_, err := s.Storage.GetPlayer(s.Ctx, player.ID())
	s.ErrorIs(err, model.ErrRepositoryNotFound)
}

// Room tests

func (s *Suite) TestSaveAndGetRoom() {
	room := testutil.Room(s.T(), "room-1", 5, 2, "p1", "p1", "p2")

	s.Require().NoError(s.Storage.SaveRoom(s.Ctx, room))

	retrieved, err := s.Storage.GetRoom(s.Ctx, room.ID())
	s.Require().NoError(err)
	s.Equal(room.ID(), retrieved.ID())
	s.Equal(room.AllPlayers(), retrieved.AllPlayers())
	s.Equal(room.HostPlayerID(), retrieved.HostPlayerID())
	s.Equal(room.WolfCount(), retrieved.WolfCount())
	s.Equal(room.GameTime(), retrieved.GameTime())
	s.Equal(room.ThemeKind(), retrieved.ThemeKind())
}

func (s *Suite) TestSaveRoomOverwrites() {
	room := testutil.Room(s.T(), "room-1", 5, 2, "p1", "p1")
	s.Require().NoError(s.Storage.SaveRoom(s.Ctx, room))

	s.Require().NoError(room.JoinPlayer(model.NewID[model.Player]("p2")))
	s.Require().NoError(s.Storage.SaveRoom(s.Ctx, room))

	retrieved, err := s.Storage.GetRoom(s.Ctx, room.ID())
	s.Require().NoError(err)
	s.Equal(testutil.PlayerIDs("p1", "p2"), retrieved.AllPlayers())
}

func (s *Suite) TestGetRoomReturnsCopy() {
	room := testutil.Room(s.T(), "room-1", 5, 2, "p1", "p1")
	s.Require().NoError(s.Storage.SaveRoom(s.Ctx, room))

	retrieved, err := s.Storage.GetRoom(s.Ctx, room.ID())
	s.Require().NoError(err)
	s.Require().NoError(retrieved.JoinPlayer(model.NewID[model.Player]("p2")))

	again, err := s.Storage.GetRoom(s.Ctx, room.ID())
	s.Require().NoError(err)
	s.Len(again.AllPlayers(), 1)
}

func (s *Suite) TestGetRoomNotFound() {
	_, err := s.Storage.GetRoom(s.Ctx, model.NewID[model.Room]("missing"))
	s.ErrorIs(err, model.ErrRepositoryNotFound)
}

func (s *Suite) TestDeleteRoom() {
	room := testutil.Room(s.T(), "room-1", 5, 2, "p1", "p1")
	s.Require().NoError(s.Storage.SaveRoom(s.Ctx, room))

	s.Require().NoError(s.Storage.DeleteRoom(s.Ctx, room.ID()))

	_, err := s.Storage.GetRoom(s.Ctx, room.ID())
	s.ErrorIs(err, model.ErrRepositoryNotFound)
}

func (s *Suite) TestDeleteMissingRoomIsNoop() {
	s.NoError(s.Storage.DeleteRoom(s.Ctx, model.NewID[model.Room]("missing")))
}

// Game tests

func (s *Suite) TestSaveAndGetGame() {
	game := testutil.Game(s.T(), "game-1", model.GameStatusVoting,
		[]string{"p1"}, []string{"p2", "p3"}, testutil.Vote("p1", "p2"))

	s.Require().NoError(s.Storage.SaveGame(s.Ctx, game))

	retrieved, err := s.Storage.GetGame(s.Ctx, game.ID())
	s.Require().NoError(err)
	s.Equal(game.ID(), retrieved.ID())
	s.Equal(game.RoomID(), retrieved.RoomID())
	s.Equal(game.ThemeID(), retrieved.ThemeID())
	s.True(game.EndedAt().Equal(retrieved.EndedAt()))
	s.Equal(game.Wolves(), retrieved.Wolves())
	s.Equal(game.Citizens(), retrieved.Citizens())
	s.Equal(game.VoteBox().Votes(), retrieved.VoteBox().Votes())
	s.Equal(model.GameStatusVoting, retrieved.Status())
}

func (s *Suite) TestGetGameNotFound() {
	_, err := s.Storage.GetGame(s.Ctx, model.NewID[model.Game]("missing"))
	s.ErrorIs(err, model.ErrRepositoryNotFound)
}

func (s *Suite) TestDeleteGame() {
	game := testutil.Game(s.T(), "game-1", model.GameStatusTalking, []string{"p1"}, []string{"p2"})
	s.Require().NoError(s.Storage.SaveGame(s.Ctx, game))

	s.Require().NoError(s.Storage.DeleteGame(s.Ctx, game.ID()))

	_, err := s.Storage.GetGame(s.Ctx, game.ID())
	s.ErrorIs(err, model.ErrRepositoryNotFound)
}

// Theme tests

func (s *Suite) TestFindThemesByKindOrdersByID() {
	themes := []model.Theme{
		testutil.Theme(s.T(), "t3", "food", "ramen", "udon"),
		testutil.Theme(s.T(), "t1", "food", "apple", "pear"),
		testutil.Theme(s.T(), "t2", "animal", "cat", "dog"),
	}
	s.Require().NoError(s.Storage.SaveThemes(s.Ctx, themes))

	found, err := s.Storage.FindThemesByKind(s.Ctx, testutil.ThemeKind(s.T(), "food"))
	s.Require().NoError(err)
	s.Require().Len(found, 2)
	s.Equal(themes[1], found[0])
	s.Equal(themes[0], found[1])
}

func (s *Suite) TestFindThemesByUnknownKindIsEmpty() {
	found, err := s.Storage.FindThemesByKind(s.Ctx, testutil.ThemeKind(s.T(), "space"))
	s.Require().NoError(err)
	s.Empty(found)
}

func (s *Suite) TestSaveThemesUpsertsByID() {
	s.Require().NoError(s.Storage.SaveThemes(s.Ctx, []model.Theme{
		testutil.Theme(s.T(), "t1", "food", "apple", "pear"),
	}))
	s.Require().NoError(s.Storage.SaveThemes(s.Ctx, []model.Theme{
		testutil.Theme(s.T(), "t1", "drink", "tea", "coffee"),
	}))

	food, err := s.Storage.FindThemesByKind(s.Ctx, testutil.ThemeKind(s.T(), "food"))
	s.Require().NoError(err)
	s.Empty(food)

	drink, err := s.Storage.FindThemesByKind(s.Ctx, testutil.ThemeKind(s.T(), "drink"))
	s.Require().NoError(err)
	s.Require().Len(drink, 1)
	s.Equal("tea", drink[0].First().String())
}

func (s *Suite) TestListThemeKinds() {
	s.Require().NoError(s.Storage.SaveThemes(s.Ctx, []model.Theme{
		testutil.Theme(s.T(), "t1", "food", "apple", "pear"),
		testutil.Theme(s.T(), "t2", "animal", "cat", "dog"),
		testutil.Theme(s.T(), "t3", "food", "ramen", "udon"),
	}))

	kinds, err := s.Storage.ListThemeKinds(s.Ctx)
	s.Require().NoError(err)
	s.Equal([]model.ThemeKind{
		testutil.ThemeKind(s.T(), "animal"),
		testutil.ThemeKind(s.T(), "food"),
	}, kinds)
}
