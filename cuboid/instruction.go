package cuboid

import (
	"strconv"
)

// Switch tells whether an instruction turns its region on or off.
type Switch uint8

const (
	Off Switch = iota
	On
)

func (s Switch) String() string {
	switch s {
	case On:
		return "on"
	case Off:
		return "off"
	}
	return "Switch(" + strconv.Itoa(int(s)) + ")"
}

// MarshalText implements encoding.TextMarshaler.
func (s Switch) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Instruction turns every unit cube of Region on or off.
type Instruction struct {
	Switch Switch
	Region Region
}

func (in Instruction) String() string {
	return in.Switch.String() + " " + in.Region.String()
}
