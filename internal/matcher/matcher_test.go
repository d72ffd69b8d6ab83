package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		candidate string
		want      int
	}{
		{name: "empty query", query: "", candidate: "atocha", want: ScoreNone},
		{name: "empty candidate", query: "atocha", candidate: "", want: ScoreNone},
		{name: "exact", query: "atocha", candidate: "atocha", want: ScoreExact},
		{name: "prefix", query: "atocha", candidate: "atocha cercanias", want: ScorePrefix},
		{name: "substring", query: "cercanias", candidate: "atocha cercanias", want: ScoreSubstring},
		{name: "two tokens", query: "san juan", candidate: "estacion san juan de vera", want: ScoreSubstring},
		{name: "two scattered tokens", query: "juan san", candidate: "estacion san juan de vera", want: 80},
		{name: "one token partial", query: "tocha x", candidate: "atocha", want: ScoreNone},
		{name: "three tokens", query: "vera san est", candidate: "estacion san juan de vera", want: 85},
		{name: "bonus capped", query: "de juan san vera est", candidate: "estacion san juan de vera", want: 90},
		{name: "token reuse", query: "an an", candidate: "san", want: 80},
		{name: "no match", query: "sol", candidate: "atocha", want: ScoreNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.query, tt.candidate))
		})
	}
}

func TestResolve(t *testing.T) {
	stations := []string{"Atocha", "Atocha Cercanías"}

	t.Run("exact beats prefix", func(t *testing.T) {
		name, ok := Resolve("atocha", stations)
		require.True(t, ok)
		assert.Equal(t, "Atocha", name)
	})

	t.Run("substring keeps original spelling", func(t *testing.T) {
		name, ok := Resolve("cercanias", stations)
		require.True(t, ok)
		assert.Equal(t, "Atocha Cercanías", name)
	})

	t.Run("token match", func(t *testing.T) {
		name, ok := Resolve("juan vera", []string{"Sol", "Estación San Juan de Vera"})
		require.True(t, ok)
		assert.Equal(t, "Estación San Juan de Vera", name)
	})

	t.Run("empty query", func(t *testing.T) {
		_, ok := Resolve("", stations)
		assert.False(t, ok)
	})

	t.Run("no candidates", func(t *testing.T) {
		_, ok := Resolve("atocha", nil)
		assert.False(t, ok)
	})

	t.Run("nothing scores", func(t *testing.T) {
		_, ok := Resolve("chamartin", stations)
		assert.False(t, ok)
	})

	t.Run("first candidate wins ties", func(t *testing.T) {
		name, ok := Resolve("sol", []string{"Sol.", "SOL", "Sol"})
		require.True(t, ok)
		assert.Equal(t, "Sol.", name)
	})
}

func TestBest(t *testing.T) {
	best := Best("atocha", []string{"Atocha Cercanías", "Atocha"})
	assert.Equal(t, Match{Name: "Atocha", Score: ScoreExact}, best)

	assert.Equal(t, Match{}, Best("", []string{"Atocha"}))
}
