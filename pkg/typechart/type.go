package typechart

import "strings"

// Type identifies one of the eighteen battle types. Canonical values are
// lower-case; use Normalize to fold arbitrary input to canonical form.
type Type string

const (
	Normal   Type = "normal"
	Fire     Type = "fire"
	Water    Type = "water"
	Electric Type = "electric"
	Grass    Type = "grass"
	Ice      Type = "ice"
	Fighting Type = "fighting"
	Poison   Type = "poison"
	Ground   Type = "ground"
	Flying   Type = "flying"
	Psychic  Type = "psychic"
	Bug      Type = "bug"
	Rock     Type = "rock"
	Ghost    Type = "ghost"
	Dragon   Type = "dragon"
	Dark     Type = "dark"
	Steel    Type = "steel"
	Fairy    Type = "fairy"
)

var allTypes = []Type{
	Normal,
	Fire,
	Water,
	Electric,
	Grass,
	Ice,
	Fighting,
	Poison,
	Ground,
	Flying,
	Psychic,
	Bug,
	Rock,
	Ghost,
	Dragon,
	Dark,
	Steel,
	Fairy,
}

// All returns the canonical types in pokedex order.
func All() []Type {
	types := make([]Type, len(allTypes))
	copy(types, allTypes)
	return types
}

// Normalize folds a type name to its canonical lower-case form. The result
// is not guaranteed to name a known type; Lookup reports whether it does.
func Normalize(name string) Type {
	return Type(strings.ToLower(strings.TrimSpace(name)))
}
