package model

import "strings"

// ID identifies an entity of kind T. T is only a marker: ID[Room] and ID[Player]
// share a representation but are distinct types.
type ID[T any] struct {
	raw string
}

// NewID wraps a raw identifier
func NewID[T any](raw string) ID[T] {
	return ID[T]{raw: raw}
}

// Raw returns the underlying identifier value
func (id ID[T]) Raw() string {
	return id.raw
}

// String implements fmt.Stringer
func (id ID[T]) String() string {
	return id.raw
}

// IsZero reports whether the identifier is empty
func (id ID[T]) IsZero() bool {
	return id.raw == ""
}

// Compare orders identifiers by their raw value
func (id ID[T]) Compare(other ID[T]) int {
	return strings.Compare(id.raw, other.raw)
}

// MarshalText encodes only the raw value
func (id ID[T]) MarshalText() ([]byte, error) {
	return []byte(id.raw), nil
}

// UnmarshalText decodes a raw value
func (id *ID[T]) UnmarshalText(text []byte) error {
	id.raw = string(text)
	return nil
}

// Identifier aliases for each entity kind
type (
	PlayerID = ID[Player]
	RoomID   = ID[Room]
	GameID   = ID[Game]
	ThemeID  = ID[Theme]
)
