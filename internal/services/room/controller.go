package room

import (
	"context"
	"log/slog"

	"github.com/mcoot/wordwolf/internal/model"
	"github.com/mcoot/wordwolf/internal/services/locker"
	"github.com/mcoot/wordwolf/internal/storage"
)

// CreateRoomParams holds the unvalidated settings of a new room
type CreateRoomParams struct {
	Host        string
	HostName    string
	PlayerCount int
	WolfCount   int
	GameMinutes int
	ThemeKind   string
}

// Controller manages room membership and starting games
type Controller struct {
	storage    storage.Storage
	factory    *Factory
	transition *TransitionService
	logger     *slog.Logger
	locks      locker.Keyed[model.RoomID]
}

// NewController creates a new room Controller
func NewController(
	storage storage.Storage,
	factory *Factory,
	transition *TransitionService,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:    storage,
		factory:    factory,
		transition: transition,
		logger:     logger,
	}
}

// CreateRoom validates params and stores a new room hosted by params.Host
func (c *Controller) CreateRoom(ctx context.Context, params CreateRoomParams) (*model.Room, error) {
	if params.Host == "" {
		return nil, model.NewDomainError(model.KindInvalidInput, "host should not be blank")
	}
	hostName, err := model.NewPlayerName(params.HostName)
	if err != nil {
		return nil, err
	}
	playerCount, err := model.NewPlayerCount(params.PlayerCount)
	if err != nil {
		return nil, err
	}
	wolfCount, err := model.NewWolfCount(params.WolfCount)
	if err != nil {
		return nil, err
	}
	gameTime, err := model.NewGameMinutes(params.GameMinutes)
	if err != nil {
		return nil, err
	}
	themeKind, err := model.NewThemeKind(params.ThemeKind)
	if err != nil {
		return nil, err
	}

	host, err := model.NewPlayer(model.NewID[model.Player](params.Host), model.PlayerKindHost, hostName)
	if err != nil {
		return nil, err
	}

	room, err := c.factory.Create(playerCount, wolfCount, host.ID(), gameTime, themeKind)
	if err != nil {
		return nil, err
	}
	if err := c.savePlayer(ctx, host); err != nil {
		return nil, err
	}
	if err := c.save(ctx, room); err != nil {
		return nil, err
	}

	c.logger.Info("room created",
		slog.String("room_id", room.ID().String()),
		slog.String("host", params.Host),
		slog.Int("player_count", playerCount.Int()),
		slog.Int("wolf_count", wolfCount.Int()),
	)
	return room, nil
}

// GetRoom retrieves a room by ID
func (c *Controller) GetRoom(ctx context.Context, id model.RoomID) (*model.Room, error) {
	room, err := c.storage.GetRoom(ctx, id)
	if err != nil {
		return nil, model.FromRepositoryError(err, "room %s", id)
	}
	return room, nil
}

// DeleteRoom removes a room
func (c *Controller) DeleteRoom(ctx context.Context, id model.RoomID) error {
	unlock := c.locks.Lock(id)
	defer unlock()

	if _, err := c.GetRoom(ctx, id); err != nil {
		return err
	}
	if err := c.storage.DeleteRoom(ctx, id); err != nil {
		return model.FromRepositoryError(err, "delete room %s", id)
	}
	c.logger.Info("room deleted", slog.String("room_id", id.String()))
	return nil
}

// JoinRoom adds a guest named name to a room
func (c *Controller) JoinRoom(ctx context.Context, id model.RoomID, player model.PlayerID, name string) (*model.Room, error) {
	playerName, err := model.NewPlayerName(name)
	if err != nil {
		return nil, err
	}
	guest, err := model.NewPlayer(player, model.PlayerKindGuest, playerName)
	if err != nil {
		return nil, err
	}
	return c.update(ctx, id, "player joined", player, func(room *model.Room) error {
		if err := room.JoinPlayer(player); err != nil {
			return err
		}
		return c.savePlayer(ctx, guest)
	})
}

// LeaveRoom removes a player from a room. The host cannot leave.
func (c *Controller) LeaveRoom(ctx context.Context, id model.RoomID, player model.PlayerID) (*model.Room, error) {
	return c.update(ctx, id, "player left", player, func(room *model.Room) error {
		return room.LeavePlayer(player)
	})
}

// Members returns the profiles of the room's players in room order
func (c *Controller) Members(ctx context.Context, room *model.Room) ([]*model.Player, error) {
	players := room.AllPlayers()
	members := make([]*model.Player, 0, len(players))
	for _, id := range players {
		player, err := c.storage.GetPlayer(ctx, id)
		if err != nil {
			return nil, model.FromRepositoryError(err, "player %s", id)
		}
		members = append(members, player)
	}
	return members, nil
}

// StartGame assigns roles and words for the room's current players and stores the new game
func (c *Controller) StartGame(ctx context.Context, id model.RoomID) (*model.Game, error) {
	unlock := c.locks.Lock(id)
	defer unlock()

	room, err := c.GetRoom(ctx, id)
	if err != nil {
		return nil, err
	}
	game, err := c.transition.StartGame(ctx, room)
	if err != nil {
		c.logger.Error("failed to start game",
			slog.String("room_id", id.String()),
			slog.String("error", err.Error()),
		)
		return nil, err
	}
	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, model.FromRepositoryError(err, "save game %s", game.ID())
	}

	c.logger.Info("game started",
		slog.String("room_id", id.String()),
		slog.String("game_id", game.ID().String()),
	)
	return game, nil
}

// update runs a read-modify-write cycle on a room under its lock
func (c *Controller) update(
	ctx context.Context,
	id model.RoomID,
	event string,
	player model.PlayerID,
	mutate func(*model.Room) error,
) (*model.Room, error) {
	unlock := c.locks.Lock(id)
	defer unlock()

	room, err := c.GetRoom(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := mutate(room); err != nil {
		return nil, err
	}
	if err := c.save(ctx, room); err != nil {
		return nil, err
	}

	c.logger.Info(event,
		slog.String("room_id", id.String()),
		slog.String("player_id", player.String()),
		slog.Int("players", len(room.AllPlayers())),
	)
	return room, nil
}

func (c *Controller) savePlayer(ctx context.Context, player *model.Player) error {
	if err := c.storage.SavePlayer(ctx, player); err != nil {
		c.logger.Error("failed to save player",
			slog.String("player_id", player.ID().String()),
			slog.String("error", err.Error()),
		)
		return model.FromRepositoryError(err, "save player %s", player.ID())
	}
	return nil
}

func (c *Controller) save(ctx context.Context, room *model.Room) error {
	if err := c.storage.SaveRoom(ctx, room); err != nil {
		c.logger.Error("failed to save room",
			slog.String("room_id", room.ID().String()),
			slog.String("error", err.Error()),
		)
		return model.FromRepositoryError(err, "save room %s", room.ID())
	}
	return nil
}
