package cuboid

// InitializationLimit bounds the initialization procedure: -50..50 on
// every axis.
var InitializationLimit = NewRegion(-50, 50, -50, 50, -50, 50)

// Clip restricts in to limit. The second result is false if nothing of in
// lies inside limit.
func Clip(in Instruction, limit Region) (Instruction, bool) {
	r, ok := Intersect(in.Region, limit)
	if !ok {
		return Instruction{}, false
	}
	return Instruction{Switch: in.Switch, Region: r}, true
}

// ClipAll clips every instruction to limit, dropping those that fall
// outside. Order is kept.
func ClipAll(instructions []Instruction, limit Region) []Instruction {
	var clipped []Instruction
	for _, in := range instructions {
		if c, ok := Clip(in, limit); ok {
			clipped = append(clipped, c)
		}
	}
	return clipped
}
