package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlayerCount(t *testing.T) {
	for _, n := range []int{1, 5, 100} {
		c, err := NewPlayerCount(n)
		require.NoError(t, err)
		assert.Equal(t, n, c.Int())
	}

	_, err := NewPlayerCount(0)
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.EqualError(t, err, "invalid_input: player count should not be zero")

	_, err = NewPlayerCount(-1)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestNewWolfCount(t *testing.T) {
	c, err := NewWolfCount(2)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Int())

	_, err = NewWolfCount(0)
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.EqualError(t, err, "invalid_input: wolf count should not be zero")
}

func TestPlayerCountExceeds(t *testing.T) {
	five, _ := NewPlayerCount(5)
	four, _ := NewWolfCount(4)
	wolvesFive, _ := NewWolfCount(5)

	assert.True(t, five.Exceeds(four))
	assert.False(t, five.Exceeds(wolvesFive))
}

func TestNewGameMinutes(t *testing.T) {
	tests := []struct {
		minutes int
		wantErr string
	}{
		{minutes: 1},
		{minutes: 30},
		{minutes: 60},
		{minutes: 0, wantErr: "invalid_input: 0 is outside of limits. the range is min:1 ~ max:60"},
		{minutes: 61, wantErr: "invalid_input: 61 is outside of limits. the range is min:1 ~ max:60"},
	}

	for _, tt := range tests {
		m, err := NewGameMinutes(tt.minutes)
		if tt.wantErr != "" {
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.EqualError(t, err, tt.wantErr)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.minutes, m.Int())
	}
}

func TestGameMinutesEndedAt(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	start := time.Date(2021, 3, 4, 2, 30, 0, 0, tokyo)
	m, _ := NewGameMinutes(3)

	ended := m.EndedAt(start)

	assert.Equal(t, time.Date(2021, 3, 4, 2, 33, 0, 0, tokyo), ended)
	assert.Equal(t, tokyo, ended.Location())
}

func TestNewThemeKindAndWord(t *testing.T) {
	k, err := NewThemeKind("food")
	require.NoError(t, err)
	assert.Equal(t, "food", k.String())

	_, err = NewThemeKind("")
	assert.EqualError(t, err, "invalid_input: theme kind should not be blank")

	w, err := NewWord("apple")
	require.NoError(t, err)
	assert.Equal(t, "apple", w.String())

	_, err = NewWord("")
	assert.EqualError(t, err, "invalid_input: word should not be blank")
}
