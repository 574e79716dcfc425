package model

import (
	"encoding/json"
	"slices"
)

// Room is the pre-game lobby: who is in, how many may join, and how the game
// will be configured once it starts.
//
// Every mutation either leaves the room fully valid or returns an error and
// leaves it untouched.
type Room struct {
	id           RoomID
	playerCount  PlayerCount
	wolfCount    WolfCount
	hostPlayerID PlayerID
	allPlayers   []PlayerID // Insertion order on creation, sorted after joins
	gameTime     GameMinutes
	themeKind    ThemeKind
}

// NewRoom validates and creates a room
func NewRoom(
	id RoomID,
	playerCount PlayerCount,
	wolfCount WolfCount,
	hostPlayerID PlayerID,
	allPlayers []PlayerID,
	gameTime GameMinutes,
	themeKind ThemeKind,
) (*Room, error) {
	room := &Room{
		id:           id,
		playerCount:  playerCount,
		wolfCount:    wolfCount,
		hostPlayerID: hostPlayerID,
		allPlayers:   slices.Clone(allPlayers),
		gameTime:     gameTime,
		themeKind:    themeKind,
	}
	if err := room.validate(room.allPlayers); err != nil {
		return nil, err
	}
	return room, nil
}

func (r *Room) ID() RoomID { return r.id }
func (r *Room) PlayerCount() PlayerCount { return r.playerCount }
func (r *Room) WolfCount() WolfCount { return r.wolfCount }
func (r *Room) HostPlayerID() PlayerID { return r.hostPlayerID }
func (r *Room) GameTime() GameMinutes { return r.gameTime }
func (r *Room) ThemeKind() ThemeKind { return r.themeKind }
func (r *Room) AllPlayers() []PlayerID { return slices.Clone(r.allPlayers) }
func (r *Room) HasPlayer(id PlayerID) bool { return slices.Contains(r.allPlayers, id) }

// PlayerKind reports whether id is the host or a guest of this room
func (r *Room) PlayerKind(id PlayerID) (PlayerKind, error) {
	switch {
	case id == r.hostPlayerID:
		return PlayerKindHost, nil
	case r.HasPlayer(id):
		return PlayerKindGuest, nil
	}
	return "", invalidInput("player %s is not in the room", id)
}

// IsFull returns true if no more players can join
func (r *Room) IsFull() bool {
	return len(r.allPlayers) >= r.playerCount.Int()
}

// JoinPlayer adds a player and re-sorts the member list
func (r *Room) JoinPlayer(id PlayerID) error {
	players := append(slices.Clone(r.allPlayers), id)
	slices.SortStableFunc(players, PlayerID.Compare)
	if err := r.validate(players); err != nil {
		return err
	}
	r.allPlayers = players
	return nil
}

// LeavePlayer removes a non-host player
func (r *Room) LeavePlayer(id PlayerID) error {
	if id == r.hostPlayerID {
		return invalidInput("host cannot leave the room")
	}
	idx := slices.Index(r.allPlayers, id)
	if idx < 0 {
		return invalidInput("player %s is not in the room", id)
	}
	players := slices.Delete(slices.Clone(r.allPlayers), idx, idx+1)
	if err := r.validate(players); err != nil {
		return err
	}
	r.allPlayers = players
	return nil
}

// Clone returns a deep copy
func (r *Room) Clone() *Room {
	c := *r
	c.allPlayers = slices.Clone(r.allPlayers)
	return &c
}

// validate checks the room invariants against a candidate member list
func (r *Room) validate(players []PlayerID) error {
	if !r.playerCount.Exceeds(r.wolfCount) {
		return invalidInput("player count must be bigger than wolf count")
	}
	if len(players) > r.playerCount.Int() {
		return invalidInput("room is full: %d players exceed capacity %d", len(players), r.playerCount.Int())
	}
	seen := make(map[PlayerID]struct{}, len(players))
	for _, p := range players {
		if _, ok := seen[p]; ok {
			return invalidInput("player %s is already in the room", p)
		}
		seen[p] = struct{}{}
	}
	return nil
}

type roomJSON struct {
	ID           RoomID      `json:"id"`
	PlayerCount  PlayerCount `json:"player_count"`
	WolfCount    WolfCount   `json:"wolf_count"`
	HostPlayerID PlayerID    `json:"host_player_id"`
	AllPlayers   []PlayerID  `json:"all_players"`
	GameTime     GameMinutes `json:"game_time"`
	ThemeKind    ThemeKind   `json:"theme_kind"`
}

func (r *Room) MarshalJSON() ([]byte, error) {
	return json.Marshal(roomJSON{
		ID:           r.id,
		PlayerCount:  r.playerCount,
		WolfCount:    r.wolfCount,
		HostPlayerID: r.hostPlayerID,
		AllPlayers:   r.allPlayers,
		GameTime:     r.gameTime,
		ThemeKind:    r.themeKind,
	})
}

// UnmarshalJSON rebuilds the room through NewRoom so stored data is re-validated
func (r *Room) UnmarshalJSON(data []byte) error {
	var raw roomJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	room, err := NewRoom(raw.ID, raw.PlayerCount, raw.WolfCount, raw.HostPlayerID,
		raw.AllPlayers, raw.GameTime, raw.ThemeKind)
	if err != nil {
		return err
	}
	*r = *room
	return nil
}
