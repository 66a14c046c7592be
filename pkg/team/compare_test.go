package team_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/typedex/matchup/pkg/model"
	"github.com/typedex/matchup/pkg/team"
	"github.com/typedex/matchup/pkg/typechart"
)

func TestCompareAdvantages(t *testing.T) {
	subject := member(4, typechart.Fire)

	roster := team.New()
	waterMember := member(7, typechart.Water)
	require.NoError(t, roster.Add(waterMember))
	require.NoError(t, roster.Add(member(19, typechart.Normal)))

	cmp := team.Compare(&subject, roster)

	assert.Equal(t, []model.Pokemon{waterMember}, cmp.Advantages)
	// Water is weak to grass, and fire attacks exploit grass types, so the
	// water member also lands in the risk set. The normal member does not.
	assert.Equal(t, []model.Pokemon{waterMember}, cmp.Risks)
}

func TestCompareRisks(t *testing.T) {
	subject := member(92, typechart.Ghost)

	roster := team.New()
	psychicMember := member(63, typechart.Psychic)
	require.NoError(t, roster.Add(psychicMember))

	cmp := team.Compare(&subject, roster)

	assert.Equal(t, []model.Pokemon{psychicMember}, cmp.Risks)
}

func TestCompareMemberInBothSets(t *testing.T) {
	subject := member(4, typechart.Fire)

	// Water gives the advantage; the grass half brings a bug weakness,
	// which fire attacks exploit.
	roster := team.New()
	dual := member(270, typechart.Water, typechart.Grass)
	require.NoError(t, roster.Add(dual))

	cmp := team.Compare(&subject, roster)

	assert.Equal(t, []model.Pokemon{dual}, cmp.Advantages)
	assert.Equal(t, []model.Pokemon{dual}, cmp.Risks)
}

func TestCompareWithoutSubject(t *testing.T) {
	roster := team.New()
	require.NoError(t, roster.Add(member(7, typechart.Water)))

	cmp := team.Compare(nil, roster)

	assert.Empty(t, cmp.Advantages)
	assert.Empty(t, cmp.Risks)
}

func TestCompareEmptyTeam(t *testing.T) {
	subject := member(4, typechart.Fire)

	cmp := team.Compare(&subject, team.New())

	assert.Empty(t, cmp.Advantages)
	assert.Empty(t, cmp.Risks)
}
