package typechart_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/typedex/matchup/pkg/typechart"
)

func TestChartCoversAllTypes(t *testing.T) {
	all := typechart.All()
	require.Len(t, all, 18)

	for _, typ := range all {
		rel, ok := typechart.Lookup(typ)
		require.True(t, ok, "missing chart entry for %q", typ)

		for _, group := range [][]typechart.Type{rel.Double, rel.Half, rel.Zero} {
			for _, other := range group {
				_, ok := typechart.Lookup(other)
				assert.True(t, ok, "entry for %q references unknown type %q", typ, other)
			}
		}
	}
}

func TestLookupIsCaseInsensitive(t *testing.T) {
	upper, ok := typechart.Lookup(typechart.Type("FIRE"))
	require.True(t, ok)

	lower, ok := typechart.Lookup(typechart.Fire)
	require.True(t, ok)

	assert.Equal(t, lower, upper)
}

func TestLookupUnknownType(t *testing.T) {
	_, ok := typechart.Lookup(typechart.Type("shadow"))
	assert.False(t, ok)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, typechart.Fire, typechart.Normalize(" Fire "))
	assert.Equal(t, typechart.Type("shadow"), typechart.Normalize("SHADOW"))
}
