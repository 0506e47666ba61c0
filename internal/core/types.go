package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Cell addresses a single grid position, or an offset when used in a pattern.
type Cell struct {
	Col int
	Row int
}

// Board is the read-only view a frontend needs to draw a binary grid.
type Board interface {
	Size() Size
	Get(col, row int) bool
}
