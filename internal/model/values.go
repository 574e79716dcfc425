package model

import (
	"encoding/json"
	"time"
)

// PlayerCount is the capacity of a room
type PlayerCount struct {
	raw int
}

// NewPlayerCount validates a room capacity
func NewPlayerCount(raw int) (PlayerCount, error) {
	if raw <= 0 {
		return PlayerCount{}, invalidInput("player count should not be zero")
	}
	return PlayerCount{raw: raw}, nil
}

// Int returns the raw count
func (c PlayerCount) Int() int { return c.raw }

// Exceeds reports whether the capacity is strictly bigger than the wolf count
func (c PlayerCount) Exceeds(w WolfCount) bool {
	return c.raw > w.raw
}

func (c PlayerCount) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.raw)
}

func (c *PlayerCount) UnmarshalJSON(data []byte) error {
	var raw int
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v, err := NewPlayerCount(raw)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// WolfCount is the number of wolves assigned when a game starts
type WolfCount struct {
	raw int
}

// NewWolfCount validates a wolf count
func NewWolfCount(raw int) (WolfCount, error) {
	if raw <= 0 {
		return WolfCount{}, invalidInput("wolf count should not be zero")
	}
	return WolfCount{raw: raw}, nil
}

// Int returns the raw count
func (c WolfCount) Int() int { return c.raw }

func (c WolfCount) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.raw)
}

func (c *WolfCount) UnmarshalJSON(data []byte) error {
	var raw int
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v, err := NewWolfCount(raw)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// Limits for GameMinutes
const (
	MinGameMinutes = 1
	MaxGameMinutes = 60
)

// GameMinutes is the length of the talk phase
type GameMinutes struct {
	raw int
}

// NewGameMinutes validates a talk duration in minutes
func NewGameMinutes(raw int) (GameMinutes, error) {
	if raw < MinGameMinutes || raw > MaxGameMinutes {
		return GameMinutes{}, invalidInput("%d is outside of limits. the range is min:%d ~ max:%d",
			raw, MinGameMinutes, MaxGameMinutes)
	}
	return GameMinutes{raw: raw}, nil
}

// Int returns the raw number of minutes
func (m GameMinutes) Int() int { return m.raw }

// Duration returns the talk phase as a time.Duration
func (m GameMinutes) Duration() time.Duration {
	return time.Duration(m.raw) * time.Minute
}

// EndedAt returns the end of a talk phase started at startedAt
func (m GameMinutes) EndedAt(startedAt time.Time) time.Time {
	return startedAt.Add(m.Duration())
}

func (m GameMinutes) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.raw)
}

func (m *GameMinutes) UnmarshalJSON(data []byte) error {
	var raw int
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v, err := NewGameMinutes(raw)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// ThemeKind is a topic category, e.g. "food"
type ThemeKind struct {
	raw string
}

// NewThemeKind rejects blank kinds
func NewThemeKind(raw string) (ThemeKind, error) {
	if raw == "" {
		return ThemeKind{}, invalidInput("theme kind should not be blank")
	}
	return ThemeKind{raw: raw}, nil
}

func (k ThemeKind) String() string { return k.raw }

func (k ThemeKind) MarshalText() ([]byte, error) {
	return []byte(k.raw), nil
}

func (k *ThemeKind) UnmarshalText(text []byte) error {
	v, err := NewThemeKind(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// Word is one of the two secret words of a theme
type Word struct {
	raw string
}

// NewWord rejects blank words
func NewWord(raw string) (Word, error) {
	if raw == "" {
		return Word{}, invalidInput("word should not be blank")
	}
	return Word{raw: raw}, nil
}

func (w Word) String() string { return w.raw }

func (w Word) MarshalText() ([]byte, error) {
	return []byte(w.raw), nil
}

func (w *Word) UnmarshalText(text []byte) error {
	v, err := NewWord(string(text))
	if err != nil {
		return err
	}
	*w = v
	return nil
}
