package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/wordwolf/internal/cli"
)

// cliRunner runs the command tree in-process against one sqlite database
type cliRunner struct {
	dbPath  string
	envFile string
}

func newCLIRunner(t *testing.T) *cliRunner {
	t.Helper()

	dir := t.TempDir()
	return &cliRunner{
		dbPath:  filepath.Join(dir, "wordwolf.db"),
		envFile: filepath.Join(dir, "missing.env"),
	}
}

func (r *cliRunner) run(args ...string) (string, error) {
	fullArgs := append([]string{
		"--env-file", r.envFile,
		"--storage", "sqlite",
		"--sqlite-path", r.dbPath,
		"--log-level", "error",
		"--output", "json",
	}, args...)

	var stdout, stderr bytes.Buffer
	err := cli.Run(context.Background(), fullArgs, &stdout, &stderr)
	if err != nil {
		return stdout.String() + stderr.String(), err
	}
	return stdout.String(), nil
}

func (r *cliRunner) mustRun(t *testing.T, out any, args ...string) {
	t.Helper()

	output, err := r.run(args...)
	require.NoError(t, err, "output: %s", output)
	if out != nil {
		require.NoError(t, json.Unmarshal([]byte(output), out), "output: %s", output)
	}
}

type memberResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Kind string `json:"kind"`
}

type roomResponse struct {
	ID          string           `json:"id"`
	Host        string           `json:"host"`
	Players     []memberResponse `json:"players"`
	PlayerCount int              `json:"player_count"`
	WolfCount   int              `json:"wolf_count"`
	ThemeKind   string           `json:"theme_kind"`
	Full        bool             `json:"full"`
}

func (r roomResponse) playerIDs() []string {
	ids := make([]string, 0, len(r.Players))
	for _, p := range r.Players {
		ids = append(ids, p.ID)
	}
	return ids
}

type groupResponse struct {
	Players []string `json:"players"`
	Word    string   `json:"word"`
}

type gameResponse struct {
	ID       string         `json:"id"`
	RoomID   string         `json:"room_id"`
	Status   string         `json:"status"`
	Players  []string       `json:"players"`
	Wolves   *groupResponse `json:"wolves"`
	Citizens *groupResponse `json:"citizens"`
}

type wordResponse struct {
	PlayerID string `json:"player_id"`
	Word     string `json:"word"`
}

type voteResponse struct {
	IsEnd bool `json:"is_end"`
}

type outcomeResponse struct {
	Selected    []string       `json:"selected"`
	Tally       map[string]int `json:"tally"`
	WolvesFound bool           `json:"wolves_found"`
	Wolves      []string       `json:"wolves"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Storage string `json:"storage"`
}

// Tests

func TestCLI_HealthCheck(t *testing.T) {
	r := newCLIRunner(t)

	var resp healthResponse
	r.mustRun(t, &resp, "health")
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "sqlite", resp.Storage)
}

func TestCLI_ThemeCommands(t *testing.T) {
	r := newCLIRunner(t)

	var load struct {
		Count int `json:"count"`
	}
	r.mustRun(t, &load, "themes", "load", filepath.Join("testdata", "themes.csv"))
	assert.Equal(t, 3, load.Count)

	var kinds struct {
		Kinds []string `json:"kinds"`
	}
	r.mustRun(t, &kinds, "themes", "kinds")
	assert.Equal(t, []string{"animal", "food"}, kinds.Kinds)

	var themes []struct {
		Kind  string `json:"kind"`
		First string `json:"first"`
	}
	r.mustRun(t, &themes, "themes", "list", "food")
	assert.Len(t, themes, 2)

	// Loading the same file again keeps ids stable
	r.mustRun(t, &load, "themes", "load", filepath.Join("testdata", "themes.csv"))
	r.mustRun(t, &themes, "themes", "list", "food")
	assert.Len(t, themes, 2)
}

func TestCLI_RoomCommands(t *testing.T) {
	r := newCLIRunner(t)

	var room roomResponse
	r.mustRun(t, &room, "room", "create", "--host", "alice", "--name", "Alice", "--players", "3", "--wolves", "1", "--theme-kind", "food")
	assert.Equal(t, "alice", room.Host)
	assert.Equal(t, []memberResponse{{ID: "alice", Name: "Alice", Kind: "host"}}, room.Players)
	assert.Equal(t, 3, room.PlayerCount)
	roomID := room.ID

	r.mustRun(t, &room, "room", "join", roomID, "carol", "--name", "Carol")
	r.mustRun(t, &room, "room", "join", roomID, "bob", "--name", "Bob")
	assert.Equal(t, []string{"alice", "bob", "carol"}, room.playerIDs())
	assert.Equal(t, memberResponse{ID: "carol", Name: "Carol", Kind: "guest"}, room.Players[2])
	assert.True(t, room.Full)

	output, err := r.run("room", "join", roomID, "dave", "--name", "Dave")
	assert.Error(t, err)
	assert.Contains(t, output, "room is full")

	output, err = r.run("room", "leave", roomID, "alice")
	assert.Error(t, err)
	assert.Contains(t, output, "host cannot leave the room")

	r.mustRun(t, &room, "room", "leave", roomID, "bob")
	assert.Equal(t, []string{"alice", "carol"}, room.playerIDs())

	r.mustRun(t, &room, "room", "get", roomID)
	assert.Equal(t, []string{"alice", "carol"}, room.playerIDs())

	var msg struct {
		Message string `json:"message"`
	}
	r.mustRun(t, &msg, "room", "delete", roomID)
	assert.Equal(t, "Room deleted", msg.Message)

	output, err = r.run("room", "get", roomID)
	assert.Error(t, err)
	assert.Contains(t, output, "not_found")
}

func TestCLI_FullGameFlow(t *testing.T) {
	r := newCLIRunner(t)
	r.mustRun(t, nil, "themes", "load", filepath.Join("testdata", "themes.csv"))

	var room roomResponse
	r.mustRun(t, &room, "room", "create", "--host", "p1", "--name", "P1", "--players", "3", "--wolves", "1", "--minutes", "3", "--theme-kind", "animal")
	r.mustRun(t, &room, "room", "join", room.ID, "p2", "--name", "P2")
	r.mustRun(t, &room, "room", "join", room.ID, "p3", "--name", "P3")

	var game gameResponse
	r.mustRun(t, &game, "room", "start", room.ID)
	assert.Equal(t, "talking", game.Status)
	assert.Equal(t, room.ID, game.RoomID)
	assert.Equal(t, []string{"p1", "p2", "p3"}, game.Players)
	assert.Nil(t, game.Wolves, "roles stay hidden while the game runs")

	// One player holds the odd word out
	counts := map[string]int{}
	for _, p := range game.Players {
		var word wordResponse
		r.mustRun(t, &word, "game", "word", game.ID, p)
		assert.Equal(t, p, word.PlayerID)
		counts[word.Word]++
	}
	require.Len(t, counts, 2)
	for w, n := range counts {
		assert.Contains(t, []string{"cat", "dog"}, w)
		assert.Contains(t, []int{1, 2}, n)
	}

	output, err := r.run("game", "vote", game.ID, "--voter", "p1", "--target", "p2")
	assert.Error(t, err)
	assert.Contains(t, output, "game status is not voting")

	r.mustRun(t, &game, "game", "start-vote", game.ID)
	assert.Equal(t, "voting", game.Status)

	var vote voteResponse
	r.mustRun(t, &vote, "game", "vote", game.ID, "--voter", "p1", "--target", "p2")
	assert.False(t, vote.IsEnd)

	output, err = r.run("game", "vote", game.ID, "--voter", "p1", "--target", "p3")
	assert.Error(t, err)
	assert.Contains(t, output, "already voted")

	r.mustRun(t, &vote, "game", "vote", game.ID, "--voter", "p3", "--target", "p2")
	assert.False(t, vote.IsEnd)
	r.mustRun(t, &vote, "game", "vote", game.ID, "--voter", "p2", "--target", "p1")
	assert.True(t, vote.IsEnd)

	r.mustRun(t, &game, "game", "get", game.ID)
	assert.Equal(t, "ended", game.Status)
	require.NotNil(t, game.Wolves)
	require.NotNil(t, game.Citizens)
	assert.Len(t, game.Wolves.Players, 1)
	assert.Len(t, game.Citizens.Players, 2)

	var outcome outcomeResponse
	r.mustRun(t, &outcome, "game", "outcome", game.ID)
	assert.Equal(t, []string{"p2"}, outcome.Selected)
	assert.Equal(t, map[string]int{"p1": 1, "p2": 2}, outcome.Tally)
	assert.Equal(t, game.Wolves.Players, outcome.Wolves)
	assert.Equal(t, slices.Contains(outcome.Wolves, "p2"), outcome.WolvesFound)
}

func TestCLI_TextOutput(t *testing.T) {
	r := newCLIRunner(t)

	var room roomResponse
	r.mustRun(t, &room, "room", "create", "--host", "alice", "--name", "Alice", "--players", "4", "--wolves", "1", "--theme-kind", "food")

	output, err := r.run("--output", "text", "room", "get", room.ID)
	require.NoError(t, err, "output: %s", output)
	assert.Contains(t, output, "Room: "+room.ID)
	assert.Contains(t, output, "Players (1/4):")
	assert.Contains(t, output, "Alice (alice) [host]")
}

func TestCLI_ErrorHandling(t *testing.T) {
	r := newCLIRunner(t)

	// Starting a game without themes for the kind
	var room roomResponse
	r.mustRun(t, &room, "room", "create", "--host", "alice", "--name", "Alice", "--players", "3", "--wolves", "1", "--theme-kind", "nothing")
	r.mustRun(t, &room, "room", "join", room.ID, "bob", "--name", "Bob")

	output, err := r.run("room", "start", room.ID)
	assert.Error(t, err)
	assert.Contains(t, output, "themes related to nothing do not exist")

	// Invalid room settings
	output, err = r.run("room", "create", "--host", "alice", "--name", "Alice", "--players", "2", "--wolves", "2", "--theme-kind", "food")
	assert.Error(t, err)
	assert.Contains(t, output, "player count must be bigger than wolf count")

	output, err = r.run("room", "create", "--host", "alice", "--name", "Alice", "--minutes", "61", "--theme-kind", "food")
	assert.Error(t, err)
	assert.Contains(t, output, "outside of limits")

	// Unknown game
	output, err = r.run("game", "get", "missing")
	assert.Error(t, err)
	assert.True(t, strings.Contains(output, "not_found"), "output: %s", output)

	// Missing required flag
	_, err = r.run("room", "create", "--theme-kind", "food")
	assert.Error(t, err)

	_, err = r.run("room", "join", room.ID, "carol")
	assert.Error(t, err)
}

func TestCLI_PlayerNames(t *testing.T) {
	r := newCLIRunner(t)

	output, err := r.run("room", "create", "--host", "alice", "--name", "   ", "--theme-kind", "food")
	assert.Error(t, err)
	assert.Contains(t, output, "name should not be blank")

	var room roomResponse
	r.mustRun(t, &room, "room", "create", "--host", "alice", "--name", "Alice Liddell", "--players", "3", "--theme-kind", "food")

	output, err = r.run("room", "join", room.ID, "bob", "--name", "")
	assert.Error(t, err)
	assert.Contains(t, output, "name should not be blank")

	r.mustRun(t, &room, "room", "join", room.ID, "bob", "--name", "Bob")
	assert.Equal(t, []memberResponse{
		{ID: "alice", Name: "Alice Liddell", Kind: "host"},
		{ID: "bob", Name: "Bob", Kind: "guest"},
	}, room.Players)

	output, err = r.run("--output", "text", "room", "get", room.ID)
	require.NoError(t, err, "output: %s", output)
	assert.Contains(t, output, "Alice Liddell (alice) [host]")
	assert.Contains(t, output, "Bob (bob)")
}
