package geom

// Point represents a 2D point in canvas space
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns p + q
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns p scaled by f
func (p Point) Scale(f float64) Point {
	return Point{X: p.X * f, Y: p.Y * f}
}

// Dot returns the dot product of p and q
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// LenSq returns the squared length of p
func (p Point) LenSq() float64 {
	return p.X*p.X + p.Y*p.Y
}

// Rect is an axis-aligned rectangle anchored at its top-left corner
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"width"`
	H float64 `json:"height"`
}

// Right returns the x coordinate of the right edge
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Inflate grows the rectangle by m on every side
func (r Rect) Inflate(m float64) Rect {
	return Rect{X: r.X - m, Y: r.Y - m, W: r.W + 2*m, H: r.H + 2*m}
}

// ContainsOpen reports whether p lies strictly inside r
func (r Rect) ContainsOpen(p Point) bool {
	return p.X > r.X && p.X < r.Right() && p.Y > r.Y && p.Y < r.Bottom()
}

// Contact describes a circle penetrating another shape
type Contact struct {
	Closest     Point   // Closest point on the other shape
	Normal      Point   // Unit vector from Closest toward the circle center
	Penetration float64 // How far the circle must move along Normal to separate
}

// Edge names a side of a rectangle
type Edge uint8

const (
	EdgeNone Edge = iota
	EdgeLeft
	EdgeRight
	EdgeTop
	EdgeBottom
)

// Horizontal reports whether the edge is the left or right side
func (e Edge) Horizontal() bool {
	return e == EdgeLeft || e == EdgeRight
}
