package model

import "math"

// Vec2 is a battlefield position. Value type, passed by value.
type Vec2 struct {
	X float64
	Y float64
}

// NewVec2 creates a Vec2 with the given coordinates.
func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v+o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v-o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by k.
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Len returns the vector length.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// DistanceSquared returns the squared distance to another point (no sqrt for hot paths).
func (v Vec2) DistanceSquared(o Vec2) float64 {
	dx := v.X - o.X
	dy := v.Y - o.Y
	return dx*dx + dy*dy
}

// Distance returns the euclidean distance to another point.
func (v Vec2) Distance(o Vec2) float64 {
	return math.Sqrt(v.DistanceSquared(o))
}

// Within reports whether o lies inside the circle of the given radius around v (inclusive).
func (v Vec2) Within(o Vec2, radius float64) bool {
	return v.DistanceSquared(o) <= radius*radius
}

// MoveToward returns the point reached after travelling at most step units from v toward to.
// Never overshoots the destination.
func (v Vec2) MoveToward(to Vec2, step float64) Vec2 {
	d := to.Sub(v)
	l := d.Len()
	if l <= step || l == 0 {
		return to
	}
	return v.Add(d.Scale(step / l))
}

// Centroid returns the arithmetic mean of the given points.
// Returns the zero vector for an empty slice.
func Centroid(points []Vec2) Vec2 {
	if len(points) == 0 {
		return Vec2{}
	}
	var sum Vec2
	for _, p := range points {
		sum = sum.Add(p)
	}
	return sum.Scale(1 / float64(len(points)))
}
