package input

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/b97tsk/reboot/cuboid"
)

func TestParseLine(t *testing.T) {
	in, err := ParseLine("on x=10..12,y=10..12,z=10..12")
	require.NoError(t, err)
	assert.Equal(t, cuboid.Instruction{
		Switch: cuboid.On,
		Region: cuboid.NewRegion(10, 12, 10, 12, 10, 12),
	}, in)

	in, err = ParseLine("  off x=-54112..-39298,y=-85059..-49293,z=-27449..7877 ")
	require.NoError(t, err)
	assert.Equal(t, cuboid.Instruction{
		Switch: cuboid.Off,
		Region: cuboid.NewRegion(-54112, -39298, -85059, -49293, -27449, 7877),
	}, in)

	in, err = ParseLine("on x=5..5,y=0..0,z=-1..-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), in.Region.Volume())
}

func TestParseLineRoundTrip(t *testing.T) {
	const line = "off x=-20..26,y=-36..17,z=-47..7"
	in, err := ParseLine(line)
	require.NoError(t, err)
	assert.Equal(t, line, in.String())
}

func TestParseLineRejects(t *testing.T) {
	for _, line := range []string{
		"",
		"toggle x=1..2,y=1..2,z=1..2",
		"on x=1..2,y=1..2",
		"on x=1..2,z=1..2,y=1..2",
		"on x=1..2,y=1..2,z=1..2,w=1..2",
		"on x=1.2,y=1..2,z=1..2",
		"on x=a..2,y=1..2,z=1..2",
		"onx=1..2,y=1..2,z=1..2",
	} {
		_, err := ParseLine(line)
		assert.Error(t, err, "%q", line)
	}
}

func TestParseLineInvertedSpan(t *testing.T) {
	_, err := ParseLine("on x=1..2,y=5..4,z=1..2")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvertedSpan))
	assert.Contains(t, err.Error(), "y=5..4")
}

func TestParseLineCoordinateRange(t *testing.T) {
	_, err := ParseLine("on x=1..2,y=1..2,z=-1000001..0")
	require.Error(t, err)
	assert.Equal(t, ErrCoordinateRange, errors.Cause(err))

	_, err = ParseLine("on x=-1000000..1000000,y=0..0,z=0..0")
	assert.NoError(t, err)
}

func TestParseRegion(t *testing.T) {
	r, err := ParseRegion("x=-50..50,y=-50..50,z=-50..50")
	require.NoError(t, err)
	assert.Equal(t, cuboid.InitializationLimit, r)

	_, err = ParseRegion("on x=-50..50,y=-50..50,z=-50..50")
	assert.Error(t, err)
}

func TestRead(t *testing.T) {
	instructions, err := Read(strings.NewReader(`on x=10..12,y=10..12,z=10..12
on x=11..13,y=11..13,z=11..13

off x=9..11,y=9..11,z=9..11
on x=10..10,y=10..10,z=10..10
`))
	require.NoError(t, err)
	assert.Equal(t, []cuboid.Instruction{
		{Switch: cuboid.On, Region: cuboid.NewRegion(10, 12, 10, 12, 10, 12)},
		{Switch: cuboid.On, Region: cuboid.NewRegion(11, 13, 11, 13, 11, 13)},
		{Switch: cuboid.Off, Region: cuboid.NewRegion(9, 11, 9, 11, 9, 11)},
		{Switch: cuboid.On, Region: cuboid.NewRegion(10, 10, 10, 10, 10, 10)},
	}, instructions)

	instructions, err = Read(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, instructions)
}

func TestReadStopsAtFirstError(t *testing.T) {
	instructions, err := Read(strings.NewReader(`on x=10..12,y=10..12,z=10..12
flip x=11..13,y=11..13,z=11..13
on x=10..10,y=10..10,z=10..10
`))
	require.Error(t, err)
	assert.Nil(t, instructions)
	assert.Contains(t, err.Error(), "line 2")
}
