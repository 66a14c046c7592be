package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/typedex/matchup/pkg/config"
	"github.com/typedex/matchup/pkg/model"
	"github.com/typedex/matchup/pkg/pokeapi"
	"github.com/typedex/matchup/pkg/team"
	"github.com/typedex/matchup/pkg/typechart"
)

const defaultTimeout = 10 * time.Second

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Read()
	if err != nil {
		log.Fatal(err)
	}

	args := os.Args[1:]
	if len(args) == 0 {
		log.Fatal("usage: matchup <subject> [member ...]")
	}

	fetcher, closer, err := newFetcher(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	if closer != nil {
		defer closer()
	}

	subject := fetch(ctx, fetcher, args[0])

	roster := team.New()
	for _, query := range args[1:] {
		member := fetch(ctx, fetcher, query)
		if member == nil {
			continue
		}
		err := roster.Add(*member)
		if err != nil {
			log.Printf("skipping %q: %v", member.Name, err)
		}
	}

	report(os.Stdout, subject, roster)
}

func newFetcher(ctx context.Context, cfg *config.Config) (model.Fetcher, func(), error) {
	if cfg.DB.Path != "" {
		mdl, err := model.New(ctx, cfg.DB.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("error while opening local pokedex: %w", err)
		}
		closer := func() {
			err := mdl.Close()
			if err != nil {
				log.Printf("error while closing local pokedex: %v", err)
			}
		}
		return mdl, closer, nil
	}

	timeout := defaultTimeout
	if cfg.PokeAPI.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.PokeAPI.TimeoutSeconds) * time.Second
	}

	return pokeapi.New(cfg.PokeAPI.URL, timeout), nil, nil
}

// fetch resolves a query, downgrading a miss to a warning. The comparison
// simply proceeds without the missing pokemon.
func fetch(ctx context.Context, fetcher model.Fetcher, query string) *model.Pokemon {
	pokemon, err := fetcher.Fetch(ctx, query)
	if err != nil {
		if errors.Is(err, model.ErrPokemonNotFound) {
			log.Printf("no pokemon found for %q", query)
			return nil
		}
		log.Fatal(err)
	}

	return pokemon
}

func report(w io.Writer, subject *model.Pokemon, roster *team.Team) {
	if subject != nil {
		fmt.Fprintf(w, "%s (%s)\n", subject.Name, joinTypes(subject.Types))

		matchups := typechart.DefensiveMatchups(subject.Types)
		for _, group := range matchupGroups(matchups) {
			if len(group.types) == 0 {
				continue
			}
			fmt.Fprintf(w, "%s: %s\n", group.name, joinTypes(group.types))
		}

		strengths := typechart.OffensiveStrengths(subject.Types)
		fmt.Fprintf(w, "Strong against: %s\n", joinTypes(sortedSet(strengths)))
	}

	cmp := team.Compare(subject, roster)
	fmt.Fprintf(w, "Advantaged against subject: %s\n", joinNames(cmp.Advantages))
	fmt.Fprintf(w, "At risk from subject: %s\n", joinNames(cmp.Risks))
}

type matchupGroup struct {
	name  string
	types []typechart.Type
}

// matchupGroups buckets the defensive chart the way the weakness listing
// groups efficacies, in canonical type order within each bucket.
func matchupGroups(matchups map[typechart.Type]typechart.Multiplier) []matchupGroup {
	groups := []matchupGroup{
		{name: "Weaknesses (4x)"},
		{name: "Weaknesses (2x)"},
		{name: "Resistances (0.5x)"},
		{name: "Resistances (0.25x)"},
		{name: "Immunities"},
	}

	for _, typ := range typechart.All() {
		var i int
		switch mult := matchups[typ]; {
		case mult > typechart.SuperEffective:
			i = 0
		case mult == typechart.SuperEffective:
			i = 1
		case mult == typechart.NotVeryEffective:
			i = 2
		case mult > typechart.Immune && mult < typechart.NotVeryEffective:
			i = 3
		case mult == typechart.Immune:
			i = 4
		default:
			continue
		}
		groups[i].types = append(groups[i].types, typ)
	}

	return groups
}

func sortedSet(set map[typechart.Type]struct{}) []typechart.Type {
	types := make([]typechart.Type, 0, len(set))
	for _, typ := range typechart.All() {
		if _, ok := set[typ]; ok {
			types = append(types, typ)
		}
	}

	return types
}

func joinTypes(types []typechart.Type) string {
	if len(types) == 0 {
		return "none"
	}

	names := make([]string, len(types))
	for i, typ := range types {
		names[i] = string(typ)
	}

	return strings.Join(names, " ")
}

func joinNames(members []model.Pokemon) string {
	if len(members) == 0 {
		return "none"
	}

	names := make([]string, len(members))
	for i, member := range members {
		names[i] = member.Name
	}

	return strings.Join(names, " ")
}
