package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/wordwolf/internal/model"
	"github.com/mcoot/wordwolf/internal/storage/storagetest"
	"github.com/mcoot/wordwolf/internal/testutil"
)

type StorageSuite struct {
	storagetest.Suite
	storage *Storage
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.Storage = s.storage
	s.Ctx = context.Background()
}

func (s *StorageSuite) TestSaveRoomStoresCopy() {
	room := testutil.Room(s.T(), "room-1", 5, 2, "p1", "p1")
	s.Require().NoError(s.storage.SaveRoom(s.Ctx, room))

	s.Require().NoError(room.JoinPlayer(model.NewID[model.Player]("p2")))

	retrieved, err := s.storage.GetRoom(s.Ctx, room.ID())
	s.Require().NoError(err)
	s.Len(retrieved.AllPlayers(), 1)
}

func (s *StorageSuite) TestSaveGameStoresCopy() {
	game := testutil.Game(s.T(), "game-1", model.GameStatusTalking, []string{"p1"}, []string{"p2"})
	s.Require().NoError(s.storage.SaveGame(s.Ctx, game))

	s.Require().NoError(game.StartVoting())

	retrieved, err := s.storage.GetGame(s.Ctx, game.ID())
	s.Require().NoError(err)
	s.Equal(model.GameStatusTalking, retrieved.Status())
}
