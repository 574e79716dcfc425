package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mcoot/wordwolf/internal/model"
)

// PlayerIDs converts raw strings into player ids
func PlayerIDs(raw ...string) []model.PlayerID {
	ids := make([]model.PlayerID, len(raw))
	for i, r := range raw {
		ids[i] = model.NewID[model.Player](r)
	}
	return ids
}

// Player builds a player
func Player(t testing.TB, id string, kind model.PlayerKind, name string) *model.Player {
	t.Helper()
	playerName, err := model.NewPlayerName(name)
	require.NoError(t, err)
	player, err := model.NewPlayer(model.NewID[model.Player](id), kind, playerName)
	require.NoError(t, err)
	return player
}

// Room builds a valid room with a five minute game and theme kind "food"
func Room(t testing.TB, id string, playerCount, wolfCount int, host string, players ...string) *model.Room {
	t.Helper()
	pc, err := model.NewPlayerCount(playerCount)
	require.NoError(t, err)
	wc, err := model.NewWolfCount(wolfCount)
	require.NoError(t, err)
	minutes, err := model.NewGameMinutes(5)
	require.NoError(t, err)
	room, err := model.NewRoom(model.NewID[model.Room](id), pc, wc, model.NewID[model.Player](host),
		PlayerIDs(players...), minutes, ThemeKind(t, "food"))
	require.NoError(t, err)
	return room
}

// ThemeKind builds a theme kind
func ThemeKind(t testing.TB, raw string) model.ThemeKind {
	t.Helper()
	kind, err := model.NewThemeKind(raw)
	require.NoError(t, err)
	return kind
}

// Word builds a word
func Word(t testing.TB, raw string) model.Word {
	t.Helper()
	word, err := model.NewWord(raw)
	require.NoError(t, err)
	return word
}

// Theme builds a theme
func Theme(t testing.TB, id, kind, first, second string) model.Theme {
	t.Helper()
	theme, err := model.NewTheme(model.NewID[model.Theme](id), ThemeKind(t, kind), Word(t, first), Word(t, second))
	require.NoError(t, err)
	return theme
}

// Game builds a game with words "cat" for wolves and "dog" for citizens
func Game(t testing.TB, id string, status model.GameStatus, wolves, citizens []string, votes ...model.Vote) *model.Game {
	t.Helper()
	game, err := model.NewGame(
		model.NewID[model.Game](id),
		model.NewID[model.Room]("room-"+id),
		model.NewID[model.Theme]("theme-"+id),
		time.Date(2024, 1, 1, 12, 5, 0, 0, time.UTC),
		model.NewWolfGroup(PlayerIDs(wolves...), Word(t, "cat")),
		model.NewCitizenGroup(PlayerIDs(citizens...), Word(t, "dog")),
		model.NewVoteBox(votes),
		status,
	)
	require.NoError(t, err)
	return game
}

// Vote builds a vote
func Vote(target, voter string) model.Vote {
	return model.Vote{Target: model.NewID[model.Player](target), Voter: model.NewID[model.Player](voter)}
}
