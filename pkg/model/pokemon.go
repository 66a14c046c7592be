package model

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/typedex/matchup/pkg/typechart"
)

// Pokemon is the entity record shared by every retrieval backend. The core
// packages only ever read it.
type Pokemon struct {
	ID        int
	Name      string
	Types     []typechart.Type
	SpriteURL string
}

var ErrPokemonNotFound = errors.New("no matching pokemon found")

// Fetcher resolves a pokedex query to a Pokemon record. The query is either
// a positive integer id or a case-insensitive name; an empty query defaults
// to id 1. Misses are reported with ErrPokemonNotFound.
type Fetcher interface {
	Fetch(ctx context.Context, query string) (*Pokemon, error)
}

// NormalizeQuery folds a pokedex query to the form the backends expect.
func NormalizeQuery(query string) string {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return "1"
	}

	return query
}

// FallbackSpriteURL builds the sprite location used when a backend has no
// sprite of its own for a pokemon.
func FallbackSpriteURL(id int) string {
	return fmt.Sprintf("https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/%d.png", id)
}
