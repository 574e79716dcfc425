package model

import "encoding/json"

// Coin is the single random draw a theme needs to hand out its words
type Coin interface {
	Bool() bool
}

// Theme pairs two secret words under a topic category. Immutable once built.
type Theme struct {
	id     ThemeID
	kind   ThemeKind
	first  Word
	second Word
}

// NewTheme creates a theme from validated parts. The two words must differ so
// wolves and citizens never share a word.
func NewTheme(id ThemeID, kind ThemeKind, first, second Word) (Theme, error) {
	if first == second {
		return Theme{}, invalidInput("theme words should differ: %s", first)
	}
	return Theme{id: id, kind: kind, first: first, second: second}, nil
}

func (t Theme) ID() ThemeID { return t.id }
func (t Theme) Kind() ThemeKind { return t.kind }
func (t Theme) First() Word { return t.first }
func (t Theme) Second() Word { return t.second }

// ChoiceWord decides which word goes to the wolves and which to the citizens.
// It draws exactly one coin flip and returns (wolf word, citizen word).
func (t Theme) ChoiceWord(coin Coin) (Word, Word) {
	if coin.Bool() {
		return t.first, t.second
	}
	return t.second, t.first
}

type themeJSON struct {
	ID     ThemeID   `json:"id"`
	Kind   ThemeKind `json:"kind"`
	First  Word      `json:"first"`
	Second Word      `json:"second"`
}

func (t Theme) MarshalJSON() ([]byte, error) {
	return json.Marshal(themeJSON{ID: t.id, Kind: t.kind, First: t.first, Second: t.second})
}

func (t *Theme) UnmarshalJSON(data []byte) error {
	var raw themeJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Kind.raw == "" || raw.First.raw == "" || raw.Second.raw == "" {
		return invalidInput("theme %s is incomplete", raw.ID)
	}
	theme, err := NewTheme(raw.ID, raw.Kind, raw.First, raw.Second)
	if err != nil {
		return err
	}
	*t = theme
	return nil
}
