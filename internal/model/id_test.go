package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDEquality(t *testing.T) {
	assert.Equal(t, NewID[Player]("p1"), NewID[Player]("p1"))
	assert.NotEqual(t, NewID[Player]("p1"), NewID[Player]("p2"))
	assert.True(t, NewID[Room]("").IsZero())
}

func TestIDCompare(t *testing.T) {
	a := NewID[Player]("a")
	b := NewID[Player]("b")

	assert.Negative(t, a.Compare(b))
	assert.Positive(t, b.Compare(a))
	assert.Zero(t, a.Compare(a))
}

func TestIDUsableAsMapKey(t *testing.T) {
	m := map[PlayerID]int{NewID[Player]("p1"): 1}
	m[NewID[Player]("p1")]++

	assert.Equal(t, 2, m[NewID[Player]("p1")])
}

func TestIDMarshalsRawValueOnly(t *testing.T) {
	data, err := json.Marshal(struct {
		ID RoomID `json:"id"`
	}{ID: NewID[Room]("room1")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"room1"}`, string(data))

	var decoded struct {
		ID RoomID `json:"id"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "room1", decoded.ID.Raw())
}
