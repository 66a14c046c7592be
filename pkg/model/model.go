package model

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/typedex/matchup/pkg/typechart"
)

// Model reads pokemon records out of a local pokeapi database dump.
type Model struct {
	db *sqlx.DB
}

func New(ctx context.Context, dbPath string) (*Model, error) {
	db, err := sqlx.Open("sqlite3", fmt.Sprintf("file:%s?mode=ro", dbPath))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	err = db.PingContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to read from database: %w", err)
	}

	return &Model{db: db}, nil
}

func (m *Model) Close() error {
	return m.db.Close()
}

// Fetch implements Fetcher against the local database.
func (m *Model) Fetch(ctx context.Context, query string) (*Pokemon, error) {
	query = NormalizeQuery(query)
	id, err := strconv.Atoi(query)
	if err == nil {
		if id <= 0 {
			return nil, fmt.Errorf("pokedex id %d out of range: %w", id, ErrPokemonNotFound)
		}
		return m.PokemonById(ctx, id)
	}

	return m.PokemonByName(ctx, query)
}

func (m *Model) PokemonById(ctx context.Context, id int) (*Pokemon, error) {
	pokemon := Pokemon{}
	err := m.db.QueryRowxContext(ctx,
		/* sql */ `
		SELECT id, name
		FROM pokemon_v2_pokemon
		WHERE id = ?
	`, id).Scan(&pokemon.ID, &pokemon.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("no pokemon with id %d: %w", id, ErrPokemonNotFound)
		}
		return nil, fmt.Errorf("error while querying pokemon by id: %w", err)
	}

	return m.finishPokemon(ctx, &pokemon)
}

func (m *Model) PokemonByName(ctx context.Context, name string) (*Pokemon, error) {
	pokemon := Pokemon{}
	err := m.db.QueryRowxContext(ctx,
		/* sql */ `
		SELECT id, name
		FROM pokemon_v2_pokemon
		WHERE name = ?
	`, name).Scan(&pokemon.ID, &pokemon.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("no pokemon named %q: %w", name, ErrPokemonNotFound)
		}
		return nil, fmt.Errorf("error while querying pokemon by name: %w", err)
	}

	return m.finishPokemon(ctx, &pokemon)
}

func (m *Model) finishPokemon(ctx context.Context, pokemon *Pokemon) (*Pokemon, error) {
	types, err := m.pokemonTypes(ctx, pokemon.ID)
	if err != nil {
		return nil, fmt.Errorf("error while getting types for pokemon %q: %w", pokemon.Name, err)
	}
	pokemon.Types = types
	pokemon.SpriteURL = FallbackSpriteURL(pokemon.ID)

	return pokemon, nil
}

func (m *Model) pokemonTypes(ctx context.Context, id int) ([]typechart.Type, error) {
	var names []string
	err := m.db.SelectContext(ctx, &names,
		/* sql */ `
		SELECT t.name
		FROM pokemon_v2_pokemontype pt
		JOIN pokemon_v2_type t
			ON pt.type_id = t.id
		WHERE pt.pokemon_id = ?
		ORDER BY pt.slot ASC
	`, id)
	if err != nil {
		return nil, fmt.Errorf("error while querying pokemon types: %w", err)
	}

	types := make([]typechart.Type, len(names))
	for i, name := range names {
		types[i] = typechart.Normalize(name)
	}

	return types, nil
}
