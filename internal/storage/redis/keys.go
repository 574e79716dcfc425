package redis

import (
	"fmt"

	"github.com/mcoot/wordwolf/internal/model"
)

// Key prefix for all wordwolf data
const keyPrefix = "wordwolf"

// playerKey returns the Redis key for a Player
func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, id)
}

// roomKey returns the Redis key for a Room
func roomKey(id model.RoomID) string {
	return fmt.Sprintf("%s:room:%s", keyPrefix, id)
}

// gameKey returns the Redis key for a Game
func gameKey(id model.GameID) string {
	return fmt.Sprintf("%s:game:%s", keyPrefix, id)
}

// themeKey returns the Redis key for a Theme
func themeKey(id model.ThemeID) string {
	return fmt.Sprintf("%s:theme:%s", keyPrefix, id)
}

// themesByKindIndexKey returns the Redis key for the SET of theme keys of a kind
func themesByKindIndexKey(kind model.ThemeKind) string {
	return fmt.Sprintf("%s:idx:themes_by_kind:%s", keyPrefix, kind)
}

// themeKindsKey returns the Redis key for the SET of known kinds
func themeKindsKey() string {
	return fmt.Sprintf("%s:idx:theme_kinds", keyPrefix)
}
