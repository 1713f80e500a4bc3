package cuboid

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClip(t *testing.T) {
	limit := NewRegion(10, 10, 10, 10, 10, 10)
	assert.Equal(t, []Instruction{
		{On, limit},
		{Off, limit},
		{On, limit},
	}, ClipAll(sampleInstructions(), limit))

	_, ok := Clip(Instruction{On, NewRegion(51, 60, 0, 0, 0, 0)}, InitializationLimit)
	assert.False(t, ok)

	c, ok := Clip(Instruction{Off, NewRegion(-80, -40, 0, 80, 3, 3)}, InitializationLimit)
	require.True(t, ok)
	assert.Equal(t, Instruction{Off, NewRegion(-50, -40, 0, 50, 3, 3)}, c)

	assert.Empty(t, ClipAll(nil, InitializationLimit))
}

func TestClipMatchesRestriction(t *testing.T) {
	rng := rand.New(rand.NewSource(50))
	limit := NewRegion(-5, 5, -5, 5, -5, 5)

	for i := 0; i < 50; i++ {
		var instructions []Instruction
		for j := 0; j < 20; j++ {
			instructions = append(instructions, Instruction{Switch(rng.Intn(2)), randomRegion(rng, 12)})
		}

		clipped := RunAll(ClipAll(instructions, limit))
		for _, r := range clipped.Regions() {
			c, ok := Intersect(r, limit)
			require.True(t, ok)
			require.Equal(t, r, c, "%v leaves the limit", r)
		}

		var restricted []Region
		for _, r := range RunAll(instructions).Regions() {
			if c, ok := Intersect(r, limit); ok {
				restricted = append(restricted, c)
			}
		}
		require.Equal(t, TotalVolume(restricted), clipped.Volume())

		for x := limit.X.Min; x <= limit.X.Max; x++ {
			for y := limit.Y.Min; y <= limit.Y.Max; y++ {
				for z := limit.Z.Min; z <= limit.Z.Max; z++ {
					require.Equal(t, covers(restricted, x, y, z), covers(clipped.Regions(), x, y, z))
				}
			}
		}
	}
}

func covers(regions []Region, x, y, z int64) bool {
	for _, r := range regions {
		if r.Contains(x, y, z) {
			return true
		}
	}
	return false
}
