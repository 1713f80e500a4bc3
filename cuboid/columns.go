package cuboid

import (
	"github.com/b97tsk/rangeset"
)

type _Column struct {
	X, Y int64
}

// CountColumns counts the unit cubes left on inside limit after applying
// instructions, one (x, y) column at a time.
//
// It does not share any code with Space and walks every column that an
// instruction touches, so it is only practical for small limits.
func CountColumns(instructions []Instruction, limit Region) (total int64) {
	columns := make(map[_Column]rangeset.RangeSet[int64])
	for _, in := range ClipAll(instructions, limit) {
		r := in.Region
		low, high := r.Z.Min, r.Z.Max+1
		for x := r.X.Min; x <= r.X.Max; x++ {
			for y := r.Y.Min; y <= r.Y.Max; y++ {
				k := _Column{x, y}
				s := columns[k]
				if in.Switch == On {
					s.AddRange(low, high)
				} else {
					s.DeleteRange(low, high)
				}
				columns[k] = s
			}
		}
	}
	for _, s := range columns {
		for _, r := range s {
			total += r.High - r.Low
		}
	}
	return
}
