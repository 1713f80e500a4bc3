package cuboid

// Space is the set of active unit cubes, kept as disjoint regions.
//
// A Space is not safe for concurrent use.
type Space struct {
	regions []Region
	spare   []Region
	steps   int
	observe func(step int, s *Space)
}

// Observe registers f to be called after every Apply with the number of
// instructions applied so far. A nil f removes the observer.
func (s *Space) Observe(f func(step int, s *Space)) {
	s.observe = f
}

// Apply carves in.Region out of every stored region and, if in switches
// the region on, adds it back whole.
func (s *Space) Apply(in Instruction) {
	next := s.spare[:0]
	for _, r := range s.regions {
		next = r.SubtractAppend(next, in.Region)
	}
	if in.Switch == On {
		next = append(next, in.Region)
	}
	s.regions, s.spare = next, s.regions
	s.steps++
	if s.observe != nil {
		s.observe(s.steps, s)
	}
}

// Len returns the number of disjoint regions in s.
func (s *Space) Len() int {
	return len(s.regions)
}

// Steps returns the number of instructions applied since s was created or
// last reset.
func (s *Space) Steps() int {
	return s.steps
}

// Regions returns a copy of the disjoint regions in s.
func (s *Space) Regions() []Region {
	return append([]Region(nil), s.regions...)
}

// Volume returns the number of active unit cubes.
func (s *Space) Volume() int64 {
	return TotalVolume(s.regions)
}

// Reset turns everything off. The observer is kept.
func (s *Space) Reset() {
	s.regions = s.regions[:0]
	s.spare = s.spare[:0]
	s.steps = 0
}

// RunAll applies instructions in order to an empty Space.
func RunAll(instructions []Instruction) *Space {
	var s Space
	s.ApplyAll(instructions)
	return &s
}

// ApplyAll applies instructions to s in order.
func (s *Space) ApplyAll(instructions []Instruction) {
	for _, in := range instructions {
		s.Apply(in)
	}
}
