package cuboid

// TotalVolume sums the volumes of regions. For disjoint regions this is the
// number of unit cubes they cover.
func TotalVolume(regions []Region) (total int64) {
	for _, r := range regions {
		total += r.Volume()
	}
	return
}
