package team

import (
	"errors"
	"fmt"

	"github.com/typedex/matchup/pkg/model"
)

// MaxMembers is the fixed roster capacity.
const MaxMembers = 6

var (
	ErrTeamFull        = errors.New("team already has the maximum number of members")
	ErrDuplicateMember = errors.New("pokemon is already on the team")
)

// Team is an ordered roster of up to six pokemon, unique by pokedex id.
type Team struct {
	members []model.Pokemon
}

func New() *Team {
	return &Team{}
}

// Add appends a member. A full team or a duplicate id is reported as an
// advisory error and leaves the team unchanged.
func (t *Team) Add(pokemon model.Pokemon) error {
	if len(t.members) >= MaxMembers {
		return fmt.Errorf("cannot add %q: %w", pokemon.Name, ErrTeamFull)
	}
	for _, member := range t.members {
		if member.ID == pokemon.ID {
			return fmt.Errorf("cannot add %q: %w", pokemon.Name, ErrDuplicateMember)
		}
	}
	t.members = append(t.members, pokemon)

	return nil
}

// Remove drops the member with the given pokedex id, if present.
func (t *Team) Remove(id int) {
	for i, member := range t.members {
		if member.ID == id {
			t.members = append(t.members[:i], t.members[i+1:]...)
			return
		}
	}
}

func (t *Team) Clear() {
	t.members = nil
}

func (t *Team) Len() int {
	return len(t.members)
}

// Members returns a copy of the roster in insertion order.
func (t *Team) Members() []model.Pokemon {
	members := make([]model.Pokemon, len(t.members))
	copy(members, t.members)

	return members
}
