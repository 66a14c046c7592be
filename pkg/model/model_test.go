package model_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/typedex/matchup/pkg/model"
	"github.com/typedex/matchup/pkg/typechart"
)

func newTestDB(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "pokedex.sqlite3")
	db, err := sqlx.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	db.MustExec(`CREATE TABLE pokemon_v2_pokemon (id INTEGER PRIMARY KEY, name TEXT NOT NULL)`)
	db.MustExec(`CREATE TABLE pokemon_v2_type (id INTEGER PRIMARY KEY, name TEXT NOT NULL)`)
	db.MustExec(`CREATE TABLE pokemon_v2_pokemontype (
		id INTEGER PRIMARY KEY,
		pokemon_id INTEGER NOT NULL,
		type_id INTEGER NOT NULL,
		slot INTEGER NOT NULL
	)`)

	db.MustExec(`INSERT INTO pokemon_v2_pokemon (id, name) VALUES (1, 'bulbasaur'), (6, 'charizard')`)
	db.MustExec(`INSERT INTO pokemon_v2_type (id, name) VALUES (3, 'flying'), (4, 'poison'), (10, 'fire'), (12, 'grass')`)
	db.MustExec(`INSERT INTO pokemon_v2_pokemontype (pokemon_id, type_id, slot) VALUES
		(1, 12, 1),
		(1, 4, 2),
		(6, 10, 1),
		(6, 3, 2)`)

	return path
}

func newTestModel(t *testing.T) *model.Model {
	t.Helper()

	mdl, err := model.New(context.Background(), newTestDB(t))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mdl.Close())
	})

	return mdl
}

func TestFetchByID(t *testing.T) {
	mdl := newTestModel(t)

	pokemon, err := mdl.Fetch(context.Background(), "6")
	require.NoError(t, err)

	assert.Equal(t, 6, pokemon.ID)
	assert.Equal(t, "charizard", pokemon.Name)
	assert.Equal(t, []typechart.Type{typechart.Fire, typechart.Flying}, pokemon.Types)
	assert.NotEmpty(t, pokemon.SpriteURL)
}

func TestFetchByName(t *testing.T) {
	mdl := newTestModel(t)

	pokemon, err := mdl.Fetch(context.Background(), "Bulbasaur")
	require.NoError(t, err)

	assert.Equal(t, 1, pokemon.ID)
	assert.Equal(t, []typechart.Type{typechart.Grass, typechart.Poison}, pokemon.Types)
}

func TestFetchEmptyQueryDefaults(t *testing.T) {
	mdl := newTestModel(t)

	pokemon, err := mdl.Fetch(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, 1, pokemon.ID)
	assert.Equal(t, "bulbasaur", pokemon.Name)
}

func TestFetchMisses(t *testing.T) {
	mdl := newTestModel(t)

	tests := []struct {
		name  string
		query string
	}{
		{name: "unknown id", query: "151"},
		{name: "unknown name", query: "missingno"},
		{name: "non-positive id", query: "0"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := mdl.Fetch(context.Background(), tc.query)
			assert.ErrorIs(t, err, model.ErrPokemonNotFound)
		})
	}
}

func TestNormalizeQuery(t *testing.T) {
	assert.Equal(t, "1", model.NormalizeQuery(""))
	assert.Equal(t, "1", model.NormalizeQuery("  "))
	assert.Equal(t, "pikachu", model.NormalizeQuery(" Pikachu "))
	assert.Equal(t, "25", model.NormalizeQuery("25"))
}
