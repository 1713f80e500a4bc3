// Package input reads reboot instructions such as
//
//	on x=10..12,y=10..12,z=10..12
//	off x=-5..5,y=0..0,z=3..9
package input

import (
	"bufio"
	"io"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"

	"github.com/b97tsk/reboot/cuboid"
)

// MaxCoordinate bounds the magnitude of every coordinate. Within it, the
// volumes of disjoint regions always sum to less than 1<<63.
const MaxCoordinate = 1000000

var (
	ErrInvertedSpan    = errors.New("range minimum exceeds maximum")
	ErrCoordinateRange = errors.New("coordinate out of range")
)

type _Line struct {
	Switch string   `parser:"@('on' | 'off')"`
	Region *_Region `parser:"@@"`
}

type _Region struct {
	X *_Span `parser:"'x' '=' @@ ','"`
	Y *_Span `parser:"'y' '=' @@ ','"`
	Z *_Span `parser:"'z' '=' @@"`
}

type _Span struct {
	Min int64 `parser:"@Int"`
	Max int64 `parser:"'..' @Int"`
}

var (
	_lexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Ident", Pattern: `[a-z]+`},
		{Name: "Int", Pattern: `[-+]?\d+`},
		{Name: "Punct", Pattern: `\.\.|[=,]`},
		{Name: "Whitespace", Pattern: `[ \t]+`},
	})

	_lineParser = participle.MustBuild[_Line](
		participle.Lexer(_lexer),
		participle.Elide("Whitespace"),
	)

	_regionParser = participle.MustBuild[_Region](
		participle.Lexer(_lexer),
		participle.Elide("Whitespace"),
	)
)

// ParseLine parses a single instruction.
func ParseLine(s string) (cuboid.Instruction, error) {
	line, err := _lineParser.ParseString("", strings.TrimSpace(s))
	if err != nil {
		return cuboid.Instruction{}, err
	}
	r, err := line.Region.region()
	if err != nil {
		return cuboid.Instruction{}, err
	}
	in := cuboid.Instruction{Switch: cuboid.Off, Region: r}
	if line.Switch == "on" {
		in.Switch = cuboid.On
	}
	return in, nil
}

// ParseRegion parses a region written as x=a..b,y=c..d,z=e..f.
func ParseRegion(s string) (cuboid.Region, error) {
	r, err := _regionParser.ParseString("", strings.TrimSpace(s))
	if err != nil {
		return cuboid.Region{}, err
	}
	return r.region()
}

// Read parses one instruction per line from r, in order. Blank lines are
// skipped. The first malformed line stops the read.
func Read(r io.Reader) (instructions []cuboid.Instruction, err error) {
	s := bufio.NewScanner(r)
	for n := 1; s.Scan(); n++ {
		line := s.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		in, err := ParseLine(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", n)
		}
		instructions = append(instructions, in)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return
}

func (r *_Region) region() (cuboid.Region, error) {
	x, err := r.X.span("x")
	if err != nil {
		return cuboid.Region{}, err
	}
	y, err := r.Y.span("y")
	if err != nil {
		return cuboid.Region{}, err
	}
	z, err := r.Z.span("z")
	if err != nil {
		return cuboid.Region{}, err
	}
	return cuboid.Region{X: x, Y: y, Z: z}, nil
}

func (s *_Span) span(axis string) (cuboid.Span, error) {
	for _, v := range [...]int64{s.Min, s.Max} {
		if v < -MaxCoordinate || v > MaxCoordinate {
			return cuboid.Span{}, errors.Wrapf(ErrCoordinateRange, "%s=%d", axis, v)
		}
	}
	if s.Min > s.Max {
		return cuboid.Span{}, errors.Wrapf(ErrInvertedSpan, "%s=%d..%d", axis, s.Min, s.Max)
	}
	return cuboid.Span{Min: s.Min, Max: s.Max}, nil
}
