package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Point is an integer coordinate on the simulation grid.
type Point struct {
	X int
	Y int
}

// Clamp constrains v to lie within the inclusive [min, max] range.
func Clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
