package model

import (
	"encoding/json"
	"fmt"
	"slices"
	"time"
)

// GameStatus represents the current phase of a game
type GameStatus string

const (
	GameStatusTalking GameStatus = "talking" // Players discuss their words
	GameStatusVoting  GameStatus = "voting"  // Votes are being collected
	GameStatusEnded   GameStatus = "ended"   // Voting closed
)

// ParseGameStatus validates a stored status value
func ParseGameStatus(s string) (GameStatus, error) {
	switch GameStatus(s) {
	case GameStatusTalking, GameStatusVoting, GameStatusEnded:
		return GameStatus(s), nil
	}
	return "", invalidInput("unknown game status %q", s)
}

// group is the shared shape of wolves and citizens
type group struct {
	players []PlayerID
	word    Word
}

func (g group) withAdded(id PlayerID) group {
	return group{players: append(slices.Clone(g.players), id), word: g.word}
}

// WolfGroup is the minority that received the odd word
type WolfGroup struct {
	group
}

// NewWolfGroup creates a wolf group
func NewWolfGroup(players []PlayerID, word Word) WolfGroup {
	return WolfGroup{group{players: slices.Clone(players), word: word}}
}

func (g WolfGroup) Players() []PlayerID { return slices.Clone(g.players) }
func (g WolfGroup) Word() Word { return g.word }

// WithAdded returns a copy of the group with id appended
func (g WolfGroup) WithAdded(id PlayerID) WolfGroup {
	return WolfGroup{g.withAdded(id)}
}

// CitizenGroup is the majority
type CitizenGroup struct {
	group
}

// NewCitizenGroup creates a citizen group
func NewCitizenGroup(players []PlayerID, word Word) CitizenGroup {
	return CitizenGroup{group{players: slices.Clone(players), word: word}}
}

func (g CitizenGroup) Players() []PlayerID { return slices.Clone(g.players) }
func (g CitizenGroup) Word() Word { return g.word }

// WithAdded returns a copy of the group with id appended
func (g CitizenGroup) WithAdded(id PlayerID) CitizenGroup {
	return CitizenGroup{g.withAdded(id)}
}

// Vote is one player's accusation
type Vote struct {
	Target PlayerID `json:"target"`
	Voter  PlayerID `json:"voter"`
}

// VoteResult reports whether every player has voted
type VoteResult struct {
	IsEnd bool
}

// VoteBox collects at most one vote per voter
type VoteBox struct {
	votes []Vote
}

// NewVoteBox creates a box from existing votes
func NewVoteBox(votes []Vote) VoteBox {
	return VoteBox{votes: slices.Clone(votes)}
}

// Votes returns a copy of the accepted votes
func (b VoteBox) Votes() []Vote { return slices.Clone(b.votes) }

// Len returns the number of accepted votes
func (b VoteBox) Len() int { return len(b.votes) }

// HasVoted reports whether voter already cast a vote
func (b VoteBox) HasVoted(voter PlayerID) bool {
	return slices.ContainsFunc(b.votes, func(v Vote) bool { return v.Voter == voter })
}

// WithAdded returns a new box with vote appended, rejecting a second vote from the same voter
func (b VoteBox) WithAdded(vote Vote) (VoteBox, error) {
	if b.HasVoted(vote.Voter) {
		return b, invalidInput("already voted in voter. vote: %v", vote)
	}
	return VoteBox{votes: append(slices.Clone(b.votes), vote)}, nil
}

// Game is a running round: role groups, collected votes and the phase
type Game struct {
	id       GameID
	roomID   RoomID
	themeID  ThemeID
	endedAt  time.Time
	wolves   WolfGroup
	citizens CitizenGroup
	voteBox  VoteBox
	status   GameStatus
}

// NewGame validates and creates a game
func NewGame(
	id GameID,
	roomID RoomID,
	themeID ThemeID,
	endedAt time.Time,
	wolves WolfGroup,
	citizens CitizenGroup,
	voteBox VoteBox,
	status GameStatus,
) (*Game, error) {
	g := &Game{
		id:       id,
		roomID:   roomID,
		themeID:  themeID,
		endedAt:  endedAt,
		wolves:   wolves,
		citizens: citizens,
		voteBox:  voteBox,
		status:   status,
	}
	if err := g.validate(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) ID() GameID { return g.id }
func (g *Game) RoomID() RoomID { return g.roomID }
func (g *Game) ThemeID() ThemeID { return g.themeID }
func (g *Game) EndedAt() time.Time { return g.endedAt }
func (g *Game) Wolves() WolfGroup { return g.wolves }
func (g *Game) Citizens() CitizenGroup { return g.citizens }
func (g *Game) VoteBox() VoteBox { return g.voteBox }
func (g *Game) Status() GameStatus { return g.status }

// AllPlayers returns wolves followed by citizens
func (g *Game) AllPlayers() []PlayerID {
	return slices.Concat(g.wolves.players, g.citizens.players)
}

// PlayerCount returns the number of players in the game
func (g *Game) PlayerCount() int {
	return len(g.wolves.players) + len(g.citizens.players)
}

// HasPlayer reports whether id plays in this game
func (g *Game) HasPlayer(id PlayerID) bool {
	return g.IsWolf(id) || slices.Contains(g.citizens.players, id)
}

// IsWolf reports whether id belongs to the wolf group
func (g *Game) IsWolf(id PlayerID) bool {
	return slices.Contains(g.wolves.players, id)
}

// WordOf returns the secret word dealt to id
func (g *Game) WordOf(id PlayerID) (Word, error) {
	switch {
	case g.IsWolf(id):
		return g.wolves.word, nil
	case slices.Contains(g.citizens.players, id):
		return g.citizens.word, nil
	}
	return Word{}, invalidInput("player %s is not in the game", id)
}

// StartVoting moves the game from talking to voting
func (g *Game) StartVoting() error {
	if g.status != GameStatusTalking {
		return NewDomainError(KindFail, "game status is not talking")
	}
	g.status = GameStatusVoting
	return nil
}

// End closes voting
func (g *Game) End() error {
	if g.status != GameStatusVoting {
		return NewDomainError(KindFail, "game status is not voting")
	}
	g.status = GameStatusEnded
	return nil
}

// Vote records a vote. The vote box is only replaced once every check passed.
func (g *Game) Vote(vote Vote) (VoteResult, error) {
	if g.status != GameStatusVoting {
		return VoteResult{}, NewDomainError(KindFail, "game status is not voting")
	}
	for _, id := range []PlayerID{vote.Voter, vote.Target} {
		if !g.HasPlayer(id) {
			return VoteResult{}, invalidInput("player %s is not in the game", id)
		}
	}
	box, err := g.voteBox.WithAdded(vote)
	if err != nil {
		return VoteResult{}, err
	}
	g.voteBox = box
	return VoteResult{IsEnd: box.Len() == g.PlayerCount()}, nil
}

// Clone returns a deep copy
func (g *Game) Clone() *Game {
	c := *g
	c.wolves = NewWolfGroup(g.wolves.players, g.wolves.word)
	c.citizens = NewCitizenGroup(g.citizens.players, g.citizens.word)
	c.voteBox = NewVoteBox(g.voteBox.votes)
	return &c
}

func (g *Game) validate() error {
	if _, err := ParseGameStatus(string(g.status)); err != nil {
		return err
	}
	seen := make(map[PlayerID]struct{}, g.PlayerCount())
	for _, p := range g.AllPlayers() {
		if _, ok := seen[p]; ok {
			return invalidInput("player %s is assigned twice", p)
		}
		seen[p] = struct{}{}
	}
	voters := make(map[PlayerID]struct{}, g.voteBox.Len())
	for _, v := range g.voteBox.votes {
		if _, ok := voters[v.Voter]; ok {
			return invalidInput("already voted in voter. vote: %v", v)
		}
		voters[v.Voter] = struct{}{}
	}
	return nil
}

// String implements fmt.Stringer for log output
func (v Vote) String() string {
	return fmt.Sprintf("{target:%s voter:%s}", v.Target, v.Voter)
}

type groupJSON struct {
	Players []PlayerID `json:"players"`
	Word    Word       `json:"word"`
}

type gameJSON struct {
	ID       GameID     `json:"id"`
	RoomID   RoomID     `json:"room_id"`
	ThemeID  ThemeID    `json:"theme_id"`
	EndedAt  time.Time  `json:"ended_at"`
	Wolves   groupJSON  `json:"wolves"`
	Citizens groupJSON  `json:"citizens"`
	Votes    []Vote     `json:"votes"`
	Status   GameStatus `json:"status"`
}

func (g *Game) MarshalJSON() ([]byte, error) {
	return json.Marshal(gameJSON{
		ID:       g.id,
		RoomID:   g.roomID,
		ThemeID:  g.themeID,
		EndedAt:  g.endedAt,
		Wolves:   groupJSON{Players: g.wolves.players, Word: g.wolves.word},
		Citizens: groupJSON{Players: g.citizens.players, Word: g.citizens.word},
		Votes:    g.voteBox.votes,
		Status:   g.status,
	})
}

// UnmarshalJSON rebuilds the game through NewGame
func (g *Game) UnmarshalJSON(data []byte) error {
	var raw gameJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	game, err := NewGame(
		raw.ID,
		raw.RoomID,
		raw.ThemeID,
		raw.EndedAt,
		NewWolfGroup(raw.Wolves.Players, raw.Wolves.Word),
		NewCitizenGroup(raw.Citizens.Players, raw.Citizens.Word),
		NewVoteBox(raw.Votes),
		raw.Status,
	)
	if err != nil {
		return err
	}
	*g = *game
	return nil
}
