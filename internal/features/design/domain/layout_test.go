package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFurniture(t *testing.T) {
	t.Run("trims and drops empty entries", func(t *testing.T) {
		assert.Equal(t, []string{"Sofa", "Bed", "Lamp"}, ParseFurniture("Sofa, Bed ,  Lamp"))
		assert.Equal(t, []string{"Desk", "Chair"}, ParseFurniture(",Desk,,  ,Chair,"))
	})

	t.Run("falls back to defaults", func(t *testing.T) {
		for _, in := range []string{"", "   ", ",,,", " , ,\t, "} {
			assert.Equal(t, []string{"Sofa", "Bed"}, ParseFurniture(in), "input %q", in)
		}
	})

	t.Run("default list is not shared", func(t *testing.T) {
		items := ParseFurniture("")
		items[0] = "Rug"
		assert.Equal(t, "Sofa", DefaultFurniture[0])
	})
}

func TestPlaceFurniture_UniqueAnchorsUpToEight(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	for n := 1; n <= len(items); n++ {
		placements := PlaceFurniture(items[:n], 4, 3)
		require.Len(t, placements, n)

		seen := map[int]bool{}
		for i, p := range placements {
			assert.Equal(t, i, p.Anchor)
			assert.False(t, seen[p.Anchor], "anchor %d reused", p.Anchor)
			seen[p.Anchor] = true
			assert.InDelta(t, AnchorTable[i].X*4, p.X, 1e-9)
			assert.InDelta(t, AnchorTable[i].Y*3, p.Y, 1e-9)
			assert.Equal(t, items[i], p.Name)
		}
	}
}

func TestPlaceFurniture_WrapsAround(t *testing.T) {
	items := make([]string, 20)
	for i := range items {
		items[i] = string(rune('A' + i))
	}

	placements := PlaceFurniture(items, 5.5, 2.5)
	require.Len(t, placements, 20)
	for i := 0; i+8 < len(placements); i++ {
		assert.Equal(t, placements[i].Anchor, placements[i+8].Anchor)
		assert.Equal(t, placements[i].X, placements[i+8].X)
		assert.Equal(t, placements[i].Y, placements[i+8].Y)
	}
}

func TestPlacement_LabelY(t *testing.T) {
	p := PlaceFurniture([]string{"Sofa"}, 10, 5)[0]
	assert.InDelta(t, 0.5+0.15, p.LabelY(5), 1e-9)
}

func TestValidateDimensions(t *testing.T) {
	assert.NoError(t, ValidateDimensions(4, 3))
	assert.NoError(t, ValidateDimensions(0.5, 100))

	bad := [][2]float64{{0, 3}, {4, 0}, {-1, 3}, {4, -2}, {math.NaN(), 3}, {4, math.Inf(1)}}
	for _, d := range bad {
		assert.ErrorIs(t, ValidateDimensions(d[0], d[1]), ErrInvalidDimensions, "dims %v", d)
	}
}

func TestNewSuggestionResponse(t *testing.T) {
	resp := NewSuggestionResponse("ideas", "aGk=")
	require.NotNil(t, resp.Suggestions)
	require.NotNil(t, resp.PlotBase64)
	assert.Equal(t, "ideas", *resp.Suggestions)
	assert.Equal(t, "aGk=", *resp.PlotBase64)
}
