package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/typedex/matchup/pkg/model"
	"github.com/typedex/matchup/pkg/typechart"
)

const DefaultBaseURL = "https://pokeapi.co/api/v2"

// Client fetches pokemon records from a remote pokeapi instance. It
// implements model.Fetcher.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type pokemonResponse struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Types []struct {
		Slot int `json:"slot"`
		Type struct {
			Name string `json:"name"`
		} `json:"type"`
	} `json:"types"`
	Sprites struct {
		FrontDefault *string `json:"front_default"`
		Other        struct {
			OfficialArtwork struct {
				FrontDefault *string `json:"front_default"`
			} `json:"official-artwork"`
		} `json:"other"`
	} `json:"sprites"`
}

func (c *Client) Fetch(ctx context.Context, query string) (*model.Pokemon, error) {
	query = model.NormalizeQuery(query)
	endpoint := fmt.Sprintf("%s/pokemon/%s", c.baseURL, url.PathEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build pokeapi request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error while fetching pokemon %q: %w", query, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("pokemon %q: %w", query, model.ErrPokemonNotFound)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("unexpected status %q while fetching pokemon %q", resp.Status, query)
	}

	var body pokemonResponse
	err = json.NewDecoder(resp.Body).Decode(&body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode pokeapi response for %q: %w", query, err)
	}

	return body.pokemon(), nil
}

func (body *pokemonResponse) pokemon() *model.Pokemon {
	sort.Slice(body.Types, func(i, j int) bool {
		return body.Types[i].Slot < body.Types[j].Slot
	})

	types := make([]typechart.Type, len(body.Types))
	for i, entry := range body.Types {
		types[i] = typechart.Normalize(entry.Type.Name)
	}

	return &model.Pokemon{
		ID:        body.ID,
		Name:      body.Name,
		Types:     types,
		SpriteURL: body.spriteURL(),
	}
}

// spriteURL resolves the default sprite, falling back to the official
// artwork and finally to the well-known sprite location by id.
func (body *pokemonResponse) spriteURL() string {
	if u := body.Sprites.FrontDefault; u != nil && *u != "" {
		return *u
	}
	if u := body.Sprites.Other.OfficialArtwork.FrontDefault; u != nil && *u != "" {
		return *u
	}

	return model.FallbackSpriteURL(body.ID)
}
