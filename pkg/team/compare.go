package team

import (
	"github.com/typedex/matchup/pkg/model"
	"github.com/typedex/matchup/pkg/typechart"
)

// Comparison classifies team members against a subject pokemon. Advantages
// holds the members with at least one type the subject is defensively weak
// to; Risks holds the members whose own weaknesses overlap the subject's
// offensive strengths. A member may appear in both.
type Comparison struct {
	Advantages []model.Pokemon
	Risks      []model.Pokemon
}

// Compare recomputes the classification from scratch. It is a pure function
// of its inputs; a nil subject or an empty team yields an empty comparison.
func Compare(subject *model.Pokemon, t *Team) Comparison {
	var cmp Comparison
	if subject == nil || t == nil || t.Len() == 0 {
		return cmp
	}

	weaknesses := typechart.Weaknesses(subject.Types)
	strengths := typechart.OffensiveStrengths(subject.Types)

	for _, member := range t.Members() {
		for _, typ := range member.Types {
			if _, ok := weaknesses[typechart.Normalize(string(typ))]; ok {
				cmp.Advantages = append(cmp.Advantages, member)
				break
			}
		}

		for typ := range typechart.Weaknesses(member.Types) {
			if _, ok := strengths[typ]; ok {
				cmp.Risks = append(cmp.Risks, member)
				break
			}
		}
	}

	return cmp
}
