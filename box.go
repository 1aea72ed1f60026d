package spatialtree

import "math"

// Rect is an axis-aligned rectangle: minX <= maxX and minY <= maxY.
// It is a value type, copied by assignment throughout the package.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// NewRect builds a Rect from two opposite corners, returning an error if
// the resulting rectangle would violate minX<=maxX or minY<=maxY.
func NewRect(minX, minY, maxX, maxY float64) (Rect, error) {
	r := Rect{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
	if minX > maxX || minY > maxY {
		return Rect{}, ErrInvalidRect
	}
	return r, nil
}

// Combine returns the smallest rectangle enclosing both a and b.
func Combine(a, b Rect) Rect {
	return Rect{
		MinX: math.Min(a.MinX, b.MinX),
		MinY: math.Min(a.MinY, b.MinY),
		MaxX: math.Max(a.MaxX, b.MaxX),
		MaxY: math.Max(a.MaxY, b.MaxY),
	}
}

// Intersects reports whether a and b overlap, using closed-interval
// boundaries: rectangles that merely touch are considered intersecting.
func Intersects(a, b Rect) bool {
	if a.MaxX < b.MinX || b.MaxX < a.MinX {
		return false
	}
	if a.MaxY < b.MinY || b.MaxY < a.MinY {
		return false
	}
	return true
}

// ContainsPoint reports whether (x, y) lies within r, boundary inclusive.
func ContainsPoint(r Rect, x, y float64) bool {
	return x >= r.MinX && x <= r.MaxX && y >= r.MinY && y <= r.MaxY
}

// Contains reports whether outer fully encloses inner, boundary inclusive.
func Contains(outer, inner Rect) bool {
	return inner.MinX >= outer.MinX && inner.MaxX <= outer.MaxX &&
		inner.MinY >= outer.MinY && inner.MaxY <= outer.MaxY
}

// Area returns the rectangle's area.
func Area(r Rect) float64 {
	return (r.MaxX - r.MinX) * (r.MaxY - r.MinY)
}

// Perimeter returns the rectangle's half-perimeter sum (width + height).
func Perimeter(r Rect) float64 {
	return (r.MaxX - r.MinX) + (r.MaxY - r.MinY)
}

// OverlapArea returns the area of the geometric intersection of a and b,
// or 0 if they are disjoint.
func OverlapArea(a, b Rect) float64 {
	width := math.Min(a.MaxX, b.MaxX) - math.Max(a.MinX, b.MinX)
	if width <= 0 {
		return 0
	}
	height := math.Min(a.MaxY, b.MaxY) - math.Max(a.MinY, b.MinY)
	if height <= 0 {
		return 0
	}
	return width * height
}

// MBRDistance returns the Euclidean distance from (x, y) to the nearest
// point of r; 0 when the point is inside or on the boundary of r.
func MBRDistance(r Rect, x, y float64) float64 {
	dx := math.Max(math.Max(r.MinX-x, 0), x-r.MaxX)
	dy := math.Max(math.Max(r.MinY-y, 0), y-r.MaxY)
	return math.Hypot(dx, dy)
}

// enlargement returns the area increase required to extend r so that it
// also covers other.
func enlargement(r, other Rect) float64 {
	return Area(Combine(r, other)) - Area(r)
}

// combineAll returns the MBR of every rectangle in boxes. Panics if boxes
// is empty; callers are expected to guard against that themselves.
func combineAll(boxes []Rect) Rect {
	mbr := boxes[0]
	for _, b := range boxes[1:] {
		mbr = Combine(mbr, b)
	}
	return mbr
}
