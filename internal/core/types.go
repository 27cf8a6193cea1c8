package core

// Size describes the dimensions of a terrain grid.
type Size struct {
	W int
	H int
}

// Point addresses a single cell by its grid coordinates.
type Point struct {
	X int
	Y int
}
