package voxel

// LoadArea iterates the cube of chunk coordinates around a center: X advances
// fastest, then Y, then Z.
type LoadArea struct {
	start   ChunkCoord
	end     ChunkCoord
	current ChunkCoord
}

// NewLoadArea spans the cube reaching radius chunks out from the center on every
// axis.
func NewLoadArea(center ChunkCoord, radius int32) *LoadArea {
	start := ChunkCoord{X: center.X - radius, Y: center.Y - radius, Z: center.Z - radius}
	end := ChunkCoord{X: center.X + radius, Y: center.Y + radius, Z: center.Z + radius}
	return &LoadArea{start: start, end: end, current: start}
}

// Next returns the next coordinate of the area, or false once it is exhausted.
func (a *LoadArea) Next() (ChunkCoord, bool) {
	if a.current.Z > a.end.Z {
		return ChunkCoord{}, false
	}
	item := a.current

	next := a.current
	if clampedInc(&next.X, a.end.X) {
		next.X = a.start.X
		if clampedInc(&next.Y, a.end.Y) {
			next.Y = a.start.Y
			clampedInc(&next.Z, a.end.Z+1)
		}
	}
	a.current = next

	return item, true
}

// clampedInc advances v by one and reports whether it was already at the clamp.
func clampedInc(v *int32, clamp int32) bool {
	if *v < clamp {
		*v++
		return false
	}
	return true
}
