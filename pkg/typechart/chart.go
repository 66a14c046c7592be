package typechart

// Relations describes how attacks of other types land on the owning type:
// Double lists the attacking types that deal twice the usual damage to it,
// Half the ones it resists, Zero the ones that cannot hurt it at all. A
// type absent from all three lists hits for the neutral x1.
type Relations struct {
	Double []Type
	Half   []Type
	Zero   []Type
}

var chart = map[Type]Relations{
	Normal: {
		Double: []Type{Fighting},
		Zero:   []Type{Ghost},
	},
	Fire: {
		Double: []Type{Water, Ground, Rock},
		Half:   []Type{Fire, Grass, Ice, Bug, Steel, Fairy},
	},
	Water: {
		Double: []Type{Electric, Grass},
		Half:   []Type{Fire, Water, Ice, Steel},
	},
	Electric: {
		Double: []Type{Ground},
		Half:   []Type{Electric, Flying, Steel},
	},
	Grass: {
		Double: []Type{Fire, Ice, Poison, Flying, Bug},
		Half:   []Type{Water, Electric, Grass, Ground},
	},
	Ice: {
		Double: []Type{Fire, Fighting, Rock, Steel},
		Half:   []Type{Ice},
	},
	Fighting: {
		Double: []Type{Flying, Psychic, Fairy},
		Half:   []Type{Bug, Rock, Dark},
	},
	Poison: {
		Double: []Type{Ground, Psychic},
		Half:   []Type{Grass, Fighting, Poison, Bug, Fairy},
	},
	Ground: {
		Double: []Type{Water, Grass, Ice},
		Half:   []Type{Poison, Rock},
		Zero:   []Type{Electric},
	},
	Flying: {
		Double: []Type{Electric, Ice, Rock},
		Half:   []Type{Grass, Fighting, Bug},
		Zero:   []Type{Ground},
	},
	Psychic: {
		Double: []Type{Bug, Ghost, Dark},
		Half:   []Type{Fighting, Psychic},
	},
	Bug: {
		Double: []Type{Fire, Flying, Rock},
		Half:   []Type{Grass, Fighting, Ground},
	},
	Rock: {
		Double: []Type{Water, Grass, Fighting, Ground, Steel},
		Half:   []Type{Normal, Fire, Poison, Flying},
	},
	Ghost: {
		Double: []Type{Ghost, Dark},
		Half:   []Type{Poison, Bug},
		Zero:   []Type{Normal, Fighting},
	},
	Dragon: {
		Double: []Type{Ice, Dragon, Fairy},
		Half:   []Type{Fire, Water, Electric, Grass},
	},
	Dark: {
		Double: []Type{Fighting, Bug, Fairy},
		Half:   []Type{Ghost, Dark},
		Zero:   []Type{Psychic},
	},
	Steel: {
		Double: []Type{Fire, Fighting, Ground},
		Half:   []Type{Normal, Grass, Ice, Flying, Psychic, Bug, Rock, Dragon, Steel, Fairy},
		Zero:   []Type{Poison},
	},
	Fairy: {
		Double: []Type{Poison, Steel},
		Half:   []Type{Fighting, Bug, Dark},
		Zero:   []Type{Dragon},
	},
}

// Lookup returns the damage relations for a defending type. The lookup is
// case-insensitive; identifiers outside the canonical set report false, and
// callers treat the missing entry as a neutral contribution.
func Lookup(typ Type) (Relations, bool) {
	rel, ok := chart[Normalize(string(typ))]
	return rel, ok
}
