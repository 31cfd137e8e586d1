package textdist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistance_KnownValues(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"kitten", "sitting", 3},
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"same", "same", 0},
		{"Same", "sAME", 0},
		{"build", "buld", 1},
		{"flaw", "lawn", 2},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Distance(tt.a, tt.b), "Distance(%q, %q)", tt.a, tt.b)
	}
}

func TestDistance_MetricLaws(t *testing.T) {
	words := []string{"build", "test", "deploy", "", "kitten", "sitting", "config"}

	for _, a := range words {
		for _, b := range words {
			d := Distance(a, b)
			assert.GreaterOrEqual(t, d, 0)
			assert.Equal(t, d, Distance(b, a), "symmetry for %q/%q", a, b)
			if a == b {
				assert.Zero(t, d)
			} else {
				assert.NotZero(t, d)
			}
			for _, c := range words {
				assert.LessOrEqual(t, Distance(a, c), d+Distance(b, c),
					"triangle inequality for %q/%q/%q", a, b, c)
			}
		}
	}
}

func TestFindMostSimilar(t *testing.T) {
	got, ok := FindMostSimilar("buld", []string{"build", "test", "deploy"})
	require.True(t, ok)
	assert.Equal(t, "build", got)

	_, ok = FindMostSimilar("xyz", []string{"build", "test"})
	assert.False(t, ok)
}

func TestFindMostSimilar_LongTokens(t *testing.T) {
	got, ok := FindMostSimilar("large-cnd-50", []string{"small-cmd-1", "large-cmd-50"})
	require.True(t, ok)
	assert.Equal(t, "large-cmd-50", got)
}

func TestFindMostSimilar_TieBreaksByOrder(t *testing.T) {
	got, ok := FindMostSimilar("lst", []string{"list", "last"})
	require.True(t, ok)
	assert.Equal(t, "list", got)
}

func TestFindSimilar(t *testing.T) {
	candidates := []string{"track", "stack", "pack", "unrelated"}

	got := FindSimilar("trak", candidates, 3)
	require.NotEmpty(t, got)
	assert.Equal(t, "track", got[0])
	assert.NotContains(t, got, "unrelated")

	assert.Len(t, FindSimilar("trak", candidates, 1), 1)
	assert.Empty(t, FindSimilar("zzzzzz", candidates, 3))
}
