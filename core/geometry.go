package core

// Point represents a 2D coordinate in whole world units
type Point struct {
	X, Y int
}

// Rect is an axis-aligned rectangle in Q32.32 world coordinates
type Rect struct {
	MinX, MinY int64
	MaxX, MaxY int64
}

// Width returns the horizontal extent
func (r Rect) Width() int64 {
	return r.MaxX - r.MinX
}

// Height returns the vertical extent
func (r Rect) Height() int64 {
	return r.MaxY - r.MinY
}

// CenterX returns the horizontal midpoint
func (r Rect) CenterX() int64 {
	return r.MinX + (r.MaxX-r.MinX)/2
}

// CenterY returns the vertical midpoint
func (r Rect) CenterY() int64 {
	return r.MinY + (r.MaxY-r.MinY)/2
}

// Contains reports whether the point lies inside or on the boundary
func (r Rect) Contains(x, y int64) bool {
	return x >= r.MinX && x <= r.MaxX && y >= r.MinY && y <= r.MaxY
}

// Inset returns the rectangle shrunk by d on every side
func (r Rect) Inset(d int64) Rect {
	return Rect{MinX: r.MinX + d, MinY: r.MinY + d, MaxX: r.MaxX - d, MaxY: r.MaxY - d}
}
