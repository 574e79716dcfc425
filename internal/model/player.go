package model

import (
	"encoding/json"
	"strings"
)

// PlayerKind is the role a player took when entering a room
type PlayerKind string

const (
	PlayerKindHost  PlayerKind = "host"  // Created the room
	PlayerKindGuest PlayerKind = "guest" // Joined an existing room
)

// ParsePlayerKind validates a stored kind value
func ParsePlayerKind(s string) (PlayerKind, error) {
	switch PlayerKind(s) {
	case PlayerKindHost, PlayerKindGuest:
		return PlayerKind(s), nil
	}
	return "", invalidInput("unknown player kind %q", s)
}

// PlayerName is the display name of a player
type PlayerName struct {
	raw string
}

// NewPlayerName rejects empty or whitespace-only names
func NewPlayerName(raw string) (PlayerName, error) {
	if strings.TrimSpace(raw) == "" {
		return PlayerName{}, invalidInput("name should not be blank")
	}
	return PlayerName{raw: raw}, nil
}

func (n PlayerName) String() string { return n.raw }

func (n PlayerName) MarshalText() ([]byte, error) {
	return []byte(n.raw), nil
}

func (n *PlayerName) UnmarshalText(text []byte) error {
	v, err := NewPlayerName(string(text))
	if err != nil {
		return err
	}
	*n = v
	return nil
}

// Player is a participant. Rooms and games only hold PlayerIDs; the profile is
// stored on its own.
type Player struct {
	id   PlayerID
	kind PlayerKind
	name PlayerName
}

// NewPlayer creates a player
func NewPlayer(id PlayerID, kind PlayerKind, name PlayerName) (*Player, error) {
	if id.IsZero() {
		return nil, invalidInput("player id should not be blank")
	}
	if _, err := ParsePlayerKind(string(kind)); err != nil {
		return nil, err
	}
	if name.raw == "" {
		return nil, invalidInput("name should not be blank")
	}
	return &Player{id: id, kind: kind, name: name}, nil
}

func (p *Player) ID() PlayerID { return p.id }
func (p *Player) Kind() PlayerKind { return p.kind }
func (p *Player) Name() PlayerName { return p.name }

// IsHost returns true if the player created their room
func (p *Player) IsHost() bool {
	return p.kind == PlayerKindHost
}

type playerJSON struct {
	ID   PlayerID   `json:"id"`
	Kind PlayerKind `json:"kind"`
	Name PlayerName `json:"name"`
}

func (p *Player) MarshalJSON() ([]byte, error) {
	return json.Marshal(playerJSON{ID: p.id, Kind: p.kind, Name: p.name})
}

// UnmarshalJSON rebuilds the player through NewPlayer
func (p *Player) UnmarshalJSON(data []byte) error {
	var raw playerJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	player, err := NewPlayer(raw.ID, raw.Kind, raw.Name)
	if err != nil {
		return err
	}
	*p = *player
	return nil
}
