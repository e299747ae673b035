package main

// RemoveDuplicates returns a fresh track with consecutive points dropped
// when they sit at zero distance from the last retained point. The first
// point is always kept, ordering is preserved, and every present channel is
// filtered by the same retained-index set. Applying it twice yields the same
// result as applying it once.
func RemoveDuplicates(t *Track) *Track {
	keep := make([]int, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		if i == 0 {
			keep = append(keep, i)
			continue
		}
		last := keep[len(keep)-1]
		if haversineDistance(t.Lat[last], t.Lon[last], t.Lat[i], t.Lon[i]) != 0 {
			keep = append(keep, i)
		}
	}
	return t.selectIndices(keep)
}
