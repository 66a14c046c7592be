package typechart

// Multiplier is the net damage factor an attacking type deals to a
// defending type combination, the product of the individual factors
// 2, 0.5 and 0 starting from 1.
type Multiplier float64

const (
	Immune               Multiplier = 0
	DoubleNotEffective   Multiplier = 0.25
	NotVeryEffective     Multiplier = 0.5
	NormalEffective      Multiplier = 1
	SuperEffective       Multiplier = 2
	DoubleSuperEffective Multiplier = 4
)

// DefensiveMatchups computes the net incoming-damage multiplier for every
// canonical attacking type against the given defending combination. The
// result always carries all eighteen types and is independent of input
// order; unknown defending types contribute nothing.
func DefensiveMatchups(defending []Type) map[Type]Multiplier {
	matchups := make(map[Type]Multiplier, len(allTypes))
	for _, typ := range allTypes {
		matchups[typ] = NormalEffective
	}

	for _, def := range defending {
		rel, ok := Lookup(def)
		if !ok {
			continue
		}
		for _, atk := range rel.Double {
			matchups[atk] *= 2
		}
		for _, atk := range rel.Half {
			matchups[atk] *= 0.5
		}
		for _, atk := range rel.Zero {
			matchups[atk] = Immune
		}
	}

	return matchups
}

// Weaknesses returns the attacking types whose net multiplier against the
// defending combination exceeds neutral.
func Weaknesses(defending []Type) map[Type]struct{} {
	weak := make(map[Type]struct{})
	for typ, mult := range DefensiveMatchups(defending) {
		if mult > NormalEffective {
			weak[typ] = struct{}{}
		}
	}

	return weak
}

// OffensiveStrengths returns the defending types that at least one of the
// attacking types is super-effective against. The relation is the inverse
// of the chart entries: a chart entry lists what hurts its owning type, so
// the strengths of an attacker are found by scanning every entry's Double
// list for it, not by reading the attacker's own entry.
func OffensiveStrengths(attacking []Type) map[Type]struct{} {
	strengths := make(map[Type]struct{})
	for _, atk := range attacking {
		norm := Normalize(string(atk))
		for _, def := range allTypes {
			for _, double := range chart[def].Double {
				if double == norm {
					strengths[def] = struct{}{}
				}
			}
		}
	}

	return strengths
}
