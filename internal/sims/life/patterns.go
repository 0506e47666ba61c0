package life

import "life-canvas/internal/core"

// GliderGunOrigin is where the seed pattern is stamped on a fresh board.
var GliderGunOrigin = core.Cell{Col: 6, Row: 4}

// GliderGun is Gosper's glider gun: period 30, one glider per period.
var GliderGun = []core.Cell{
	{0, 4}, {0, 5}, {1, 4}, {1, 5},
	{10, 4}, {10, 5}, {10, 6}, {11, 3}, {11, 7}, {12, 2}, {12, 8}, {13, 2}, {13, 8},
	{14, 5}, {15, 3}, {15, 7}, {16, 4}, {16, 5}, {16, 6}, {17, 5},
	{20, 2}, {20, 3}, {20, 4}, {21, 2}, {21, 3}, {21, 4}, {22, 1}, {22, 5},
	{24, 0}, {24, 1}, {24, 5}, {24, 6},
	{34, 2}, {34, 3}, {35, 2}, {35, 3},
}

// Extent returns the width and height of the bounding box of offsets.
func Extent(offsets []core.Cell) core.Size {
	var s core.Size
	for _, o := range offsets {
		s.W = max(s.W, o.Col+1)
		s.H = max(s.H, o.Row+1)
	}
	return s
}
