package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/mcoot/wordwolf/internal/model"
	"github.com/mcoot/wordwolf/internal/services/game"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		o.printJSON(map[string]string{"message": msg})
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Room:
		o.printRoom(v)
	case Game:
		o.printGame(v)
	case PlayerWord:
		fmt.Fprintf(o.w, "%s: %s\n", v.PlayerID, v.Word)
	case VoteResult:
		o.printVoteResult(v)
	case Outcome:
		o.printOutcome(v)
	case []Theme:
		o.printThemes(v)
	case ThemeKinds:
		for _, k := range v.Kinds {
			fmt.Fprintln(o.w, k)
		}
	case LoadResult:
		fmt.Fprintf(o.w, "Loaded %d themes from %s\n", v.Count, v.Path)
	case HealthResult:
		fmt.Fprintf(o.w, "Status: %s\n", v.Status)
		fmt.Fprintf(o.w, "Storage: %s\n", v.Storage)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Member output type
type Member struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Kind string `json:"kind"`
}

// Room output type
type Room struct {
	ID          string   `json:"id"`
	Host        string   `json:"host"`
	Players     []Member `json:"players"`
	PlayerCount int      `json:"player_count"`
	WolfCount   int      `json:"wolf_count"`
	GameMinutes int      `json:"game_minutes"`
	ThemeKind   string   `json:"theme_kind"`
	Full        bool     `json:"full"`
}

// Group output type
type Group struct {
	Players []string `json:"players"`
	Word    string   `json:"word"`
}

// Vote output type
type Vote struct {
	Voter  string `json:"voter"`
	Target string `json:"target"`
}

// Game output type. Wolves and Citizens are only filled once the game has ended.
type Game struct {
	ID       string    `json:"id"`
	RoomID   string    `json:"room_id"`
	ThemeID  string    `json:"theme_id"`
	Status   string    `json:"status"`
	EndedAt  time.Time `json:"ended_at"`
	Players  []string  `json:"players"`
	Votes    []Vote    `json:"votes"`
	Wolves   *Group    `json:"wolves,omitempty"`
	Citizens *Group    `json:"citizens,omitempty"`
}

// PlayerWord output type
type PlayerWord struct {
	PlayerID string `json:"player_id"`
	Word     string `json:"word"`
}

// VoteResult output type
type VoteResult struct {
	Voter  string `json:"voter"`
	Target string `json:"target"`
	IsEnd  bool   `json:"is_end"`
}

// Outcome output type
type Outcome struct {
	Selected    []string       `json:"selected"`
	Tally       map[string]int `json:"tally"`
	WolvesFound bool           `json:"wolves_found"`
	Wolves      []string       `json:"wolves"`
}

// Theme output type
type Theme struct {
	ID     string `json:"id"`
	Kind   string `json:"kind"`
	First  string `json:"first"`
	Second string `json:"second"`
}

// ThemeKinds output type
type ThemeKinds struct {
	Kinds []string `json:"kinds"`
}

// LoadResult output type
type LoadResult struct {
	Path  string `json:"path"`
	Count int    `json:"count"`
}

// HealthResult output type
type HealthResult struct {
	Status  string `json:"status"`
	Storage string `json:"storage"`
}

func rawIDs[T any](ids []model.ID[T]) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.Raw()
	}
	return out
}

func newRoom(r *model.Room, members []*model.Player) Room {
	players := make([]Member, len(members))
	for i, m := range members {
		players[i] = Member{ID: m.ID().Raw(), Name: m.Name().String(), Kind: string(m.Kind())}
		if kind, err := r.PlayerKind(m.ID()); err == nil {
			players[i].Kind = string(kind)
		}
	}
	return Room{
		ID:          r.ID().Raw(),
		Host:        r.HostPlayerID().Raw(),
		Players:     players,
		PlayerCount: r.PlayerCount().Int(),
		WolfCount:   r.WolfCount().Int(),
		GameMinutes: r.GameTime().Int(),
		ThemeKind:   r.ThemeKind().String(),
		Full:        r.IsFull(),
	}
}

func newGame(g *model.Game) Game {
	players := rawIDs(g.AllPlayers())
	slices.Sort(players)

	votes := []Vote{}
	for _, v := range g.VoteBox().Votes() {
		votes = append(votes, Vote{Voter: v.Voter.Raw(), Target: v.Target.Raw()})
	}

	out := Game{
		ID:      g.ID().Raw(),
		RoomID:  g.RoomID().Raw(),
		ThemeID: g.ThemeID().Raw(),
		Status:  string(g.Status()),
		EndedAt: g.EndedAt(),
		Players: players,
		Votes:   votes,
	}
	if g.Status() == model.GameStatusEnded {
		out.Wolves = &Group{Players: rawIDs(g.Wolves().Players()), Word: g.Wolves().Word().String()}
		out.Citizens = &Group{Players: rawIDs(g.Citizens().Players()), Word: g.Citizens().Word().String()}
	}
	return out
}

func newOutcome(g *model.Game, o game.Outcome) Outcome {
	tally := make(map[string]int, len(o.Tally))
	for id, n := range o.Tally {
		tally[id.Raw()] = n
	}
	return Outcome{
		Selected:    rawIDs(o.Selected),
		Tally:       tally,
		WolvesFound: o.WolvesFound,
		Wolves:      rawIDs(g.Wolves().Players()),
	}
}

func newTheme(t model.Theme) Theme {
	return Theme{
		ID:     t.ID().Raw(),
		Kind:   t.Kind().String(),
		First:  t.First().String(),
		Second: t.Second().String(),
	}
}

func (o *Output) printRoom(r Room) {
	fmt.Fprintf(o.w, "Room: %s\n", r.ID)
	fmt.Fprintf(o.w, "Theme Kind: %s\n", r.ThemeKind)
	fmt.Fprintf(o.w, "Wolves: %d\n", r.WolfCount)
	fmt.Fprintf(o.w, "Game Time: %d min\n", r.GameMinutes)
	fmt.Fprintf(o.w, "Players (%d/%d):\n", len(r.Players), r.PlayerCount)
	for _, p := range r.Players {
		hostStr := ""
		if p.ID == r.Host {
			hostStr = " [host]"
		}
		fmt.Fprintf(o.w, "  - %s (%s)%s\n", p.Name, p.ID, hostStr)
	}
}

func (o *Output) printGame(g Game) {
	fmt.Fprintf(o.w, "Game: %s\n", g.ID)
	fmt.Fprintf(o.w, "Room: %s\n", g.RoomID)
	fmt.Fprintf(o.w, "Status: %s\n", g.Status)
	fmt.Fprintf(o.w, "Talk Ends: %s\n", g.EndedAt.Format(time.RFC3339))
	fmt.Fprintf(o.w, "Players: %s\n", strings.Join(g.Players, ", "))
	if len(g.Votes) > 0 {
		fmt.Fprintf(o.w, "Votes (%d/%d):\n", len(g.Votes), len(g.Players))
		for _, v := range g.Votes {
			fmt.Fprintf(o.w, "  - %s -> %s\n", v.Voter, v.Target)
		}
	}
	if g.Wolves != nil {
		fmt.Fprintf(o.w, "Wolves: %s (%s)\n", strings.Join(g.Wolves.Players, ", "), g.Wolves.Word)
	}
	if g.Citizens != nil {
		fmt.Fprintf(o.w, "Citizens: %s (%s)\n", strings.Join(g.Citizens.Players, ", "), g.Citizens.Word)
	}
}

func (o *Output) printVoteResult(v VoteResult) {
	fmt.Fprintf(o.w, "%s voted for %s\n", v.Voter, v.Target)
	if v.IsEnd {
		fmt.Fprintln(o.w, "Everyone has voted. Voting closed.")
	}
}

func (o *Output) printOutcome(out Outcome) {
	if len(out.Selected) == 0 {
		fmt.Fprintln(o.w, "Nobody was selected")
	} else {
		fmt.Fprintf(o.w, "Selected: %s\n", strings.Join(out.Selected, ", "))
	}
	fmt.Fprintf(o.w, "Wolves: %s\n", strings.Join(out.Wolves, ", "))
	if out.WolvesFound {
		fmt.Fprintln(o.w, "The wolves were found!")
	} else {
		fmt.Fprintln(o.w, "The wolves got away!")
	}

	targets := make([]string, 0, len(out.Tally))
	for t := range out.Tally {
		targets = append(targets, t)
	}
	slices.Sort(targets)
	if len(targets) > 0 {
		fmt.Fprintln(o.w, "\nVotes:")
		for _, t := range targets {
			fmt.Fprintf(o.w, "  %s: %d\n", t, out.Tally[t])
		}
	}
}

func (o *Output) printThemes(themes []Theme) {
	for _, t := range themes {
		fmt.Fprintf(o.w, "%s: %s / %s (%s)\n", t.Kind, t.First, t.Second, t.ID)
	}
}
