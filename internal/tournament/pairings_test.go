package tournament

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeneratePairings_FourParticipants(t *testing.T) {
	pairs := GeneratePairings([]string{"P1", "P2", "P3", "P4"})

	assert.Equal(t, []Pair[string]{
		{"P1", "P2"},
		{"P1", "P3"},
		{"P1", "P4"},
		{"P2", "P3"},
		{"P2", "P4"},
		{"P3", "P4"},
	}, pairs)
}

func TestGeneratePairings_Count(t *testing.T) {
	for n := 0; n <= 8; n++ {
		participants := make([]int, n)
		for i := range participants {
			participants[i] = i
		}
		pairs := GeneratePairings(participants)

		want := 0
		if n >= 2 {
			want = n * (n - 1) / 2
		}
		assert.Len(t, pairs, want, "n=%d", n)
		for _, p := range pairs {
			assert.Less(t, p.First, p.Second, "no self pairs and no reversed duplicates")
		}
	}
}

func TestGeneratePairings_TooFewParticipants(t *testing.T) {
	assert.Empty(t, GeneratePairings([]string{}))
	assert.Empty(t, GeneratePairings([]string{"solo"}))
	assert.NotNil(t, GeneratePairings[string](nil))
}
