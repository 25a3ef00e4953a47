package geom

import "math"

// MinDistance is the distance used when two points coincide and a direction is still needed
const MinDistance = 0.1

// SafeDistance returns the length of (dx, dy), or MinDistance when it is zero
func SafeDistance(dx, dy float64) float64 {
	d := math.Sqrt(dx*dx + dy*dy)
	if d == 0 {
		return MinDistance
	}
	return d
}

// Distance calculates the Euclidean distance between two points
func Distance(a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// DistanceSq calculates the squared distance between two points
func DistanceSq(a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return dx*dx + dy*dy
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// ClosestPointOnSegment projects q onto the segment a-b.
// A zero-length segment uses a denominator of 1 so the result is a.
func ClosestPointOnSegment(a, b, q Point) Point {
	dx := b.X - a.X
	dy := b.Y - a.Y
	den := dx*dx + dy*dy
	if den == 0 {
		den = 1
	}
	t := Clamp(((q.X-a.X)*dx+(q.Y-a.Y)*dy)/den, 0, 1)
	return Point{X: a.X + t*dx, Y: a.Y + t*dy}
}

// ClampToRect returns the point of r nearest to p
func ClampToRect(p Point, r Rect) Point {
	return Point{
		X: Clamp(p.X, r.X, r.Right()),
		Y: Clamp(p.Y, r.Y, r.Bottom()),
	}
}

// CircleRectOverlap reports whether a circle overlaps a rectangle
func CircleRectOverlap(c Point, radius float64, r Rect) bool {
	return DistanceSq(c, ClampToRect(c, r)) < radius*radius
}

// CircleRectContact returns the minimum translation needed to push a circle out of r
func CircleRectContact(c Point, radius float64, r Rect) (Contact, bool) {
	closest := ClampToRect(c, r)
	return contactFrom(c, closest, radius)
}

// CircleSegmentContact returns the minimum translation needed to push a circle off segment a-b
func CircleSegmentContact(c Point, radius float64, a, b Point) (Contact, bool) {
	closest := ClosestPointOnSegment(a, b, c)
	return contactFrom(c, closest, radius)
}

func contactFrom(c, closest Point, radius float64) (Contact, bool) {
	dx := c.X - closest.X
	dy := c.Y - closest.Y
	if dx*dx+dy*dy >= radius*radius {
		return Contact{}, false
	}
	d := SafeDistance(dx, dy)
	return Contact{
		Closest:     closest,
		Normal:      Point{X: dx / d, Y: dy / d},
		Penetration: radius - d,
	}, true
}

// Rotate rotates p about the origin by angle radians
func Rotate(p Point, angle float64) Point {
	cos, sin := math.Cos(angle), math.Sin(angle)
	return Point{X: p.X*cos - p.Y*sin, Y: p.X*sin + p.Y*cos}
}

// Transform maps local points into world space using a rigid transform.
// dst is reused when it has enough capacity.
func Transform(dst []Point, local []Point, pos Point, angle float64) []Point {
	cos, sin := math.Cos(angle), math.Sin(angle)
	dst = dst[:0]
	for _, p := range local {
		dst = append(dst, Point{
			X: pos.X + (p.X*cos - p.Y*sin),
			Y: pos.Y + (p.X*sin + p.Y*cos),
		})
	}
	return dst
}

// Centroid returns the arithmetic mean of pts, or the zero point for an empty slice
func Centroid(pts []Point) Point {
	if len(pts) == 0 {
		return Point{}
	}
	var sum Point
	for _, p := range pts {
		sum = sum.Add(p)
	}
	n := float64(len(pts))
	return Point{X: sum.X / n, Y: sum.Y / n}
}

// PathLength returns the total length of a polyline
func PathLength(pts []Point) float64 {
	total := 0.0
	for i := 1; i < len(pts); i++ {
		total += Distance(pts[i-1], pts[i])
	}
	return total
}

// IsFinite reports whether both coordinates are finite numbers
func IsFinite(p Point) bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// PushOutMinAxis moves p just outside r through the nearest edge when p lies inside r
// inflated by margin. The returned edge is EdgeNone when p was already clear.
func PushOutMinAxis(p Point, r Rect, margin float64) (Point, Edge) {
	if !r.Inflate(margin).ContainsOpen(p) {
		return p, EdgeNone
	}

	dl := p.X - r.X
	dr := r.Right() - p.X
	dt := p.Y - r.Y
	db := r.Bottom() - p.Y
	m := math.Min(math.Min(dl, dr), math.Min(dt, db))

	switch m {
	case dl:
		p.X = r.X - margin
		return p, EdgeLeft
	case dr:
		p.X = r.Right() + margin
		return p, EdgeRight
	case dt:
		p.Y = r.Y - margin
		return p, EdgeTop
	default:
		p.Y = r.Bottom() + margin
		return p, EdgeBottom
	}
}
