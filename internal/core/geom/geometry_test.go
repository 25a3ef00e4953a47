package geom

import (
	"math"
	"testing"
)

func TestClosestPointOnSegmentClampsToEndpoints(t *testing.T) {
	a := Point{X: 0, Y: 0}
	b := Point{X: 10, Y: 0}

	tests := []struct {
		name string
		q    Point
		want Point
	}{
		{"before start", Point{X: -5, Y: 3}, Point{X: 0, Y: 0}},
		{"past end", Point{X: 15, Y: -2}, Point{X: 10, Y: 0}},
		{"interior", Point{X: 4, Y: 7}, Point{X: 4, Y: 0}},
	}

	for _, tt := range tests {
		got := ClosestPointOnSegment(a, b, tt.q)
		if got != tt.want {
			t.Errorf("%s: got %+v, want %+v", tt.name, got, tt.want)
		}
	}
}

func TestClosestPointOnDegenerateSegment(t *testing.T) {
	a := Point{X: 3, Y: 3}
	got := ClosestPointOnSegment(a, a, Point{X: 50, Y: -20})
	if got != a {
		t.Fatalf("zero-length segment should collapse to its endpoint, got %+v", got)
	}
	if !IsFinite(got) {
		t.Fatalf("result is not finite: %+v", got)
	}
}

func TestCircleRectOverlap(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 10, H: 10}

	if !CircleRectOverlap(Point{X: 5, Y: 5}, 1, r) {
		t.Errorf("center inside rect should overlap")
	}
	if !CircleRectOverlap(Point{X: 12, Y: 5}, 3, r) {
		t.Errorf("circle reaching the edge should overlap")
	}
	if CircleRectOverlap(Point{X: 13, Y: 13}, 3, r) {
		t.Errorf("corner distance is sqrt(18) > 3, expected no overlap")
	}
}

func TestCircleRectContactPushesUpward(t *testing.T) {
	r := Rect{X: 0, Y: 100, W: 200, H: 20}
	c, ok := CircleRectContact(Point{X: 50, Y: 90}, 28, r)
	if !ok {
		t.Fatalf("expected contact")
	}
	if math.Abs(c.Normal.Y+1) > 1e-9 || c.Normal.X != 0 {
		t.Errorf("normal should point straight up, got %+v", c.Normal)
	}
	if math.Abs(c.Penetration-18) > 1e-9 {
		t.Errorf("penetration = %f, want 18", c.Penetration)
	}
}

func TestCircleSegmentContactCoincidentPoint(t *testing.T) {
	c, ok := CircleSegmentContact(Point{X: 5, Y: 0}, 2, Point{X: 0, Y: 0}, Point{X: 10, Y: 0})
	if !ok {
		t.Fatalf("center on the segment must be a contact")
	}
	if !IsFinite(c.Normal) || math.IsNaN(c.Penetration) {
		t.Fatalf("contact must stay finite, got %+v", c)
	}
	if math.Abs(c.Penetration-(2-MinDistance)) > 1e-9 {
		t.Errorf("penetration = %f, want %f", c.Penetration, 2-MinDistance)
	}
}

func TestTransformRoundTrip(t *testing.T) {
	local := []Point{{X: -10, Y: 0}, {X: 10, Y: 0}}
	world := Transform(nil, local, Point{X: 100, Y: 50}, math.Pi/2)

	if math.Abs(world[0].X-100) > 1e-9 || math.Abs(world[0].Y-40) > 1e-9 {
		t.Errorf("first point = %+v, want (100, 40)", world[0])
	}
	if math.Abs(world[1].X-100) > 1e-9 || math.Abs(world[1].Y-60) > 1e-9 {
		t.Errorf("second point = %+v, want (100, 60)", world[1])
	}
}

func TestCentroidAndPathLength(t *testing.T) {
	pts := []Point{{X: 0, Y: 0}, {X: 3, Y: 4}, {X: 6, Y: 8}}
	if c := Centroid(pts); c != (Point{X: 3, Y: 4}) {
		t.Errorf("centroid = %+v", c)
	}
	if l := PathLength(pts); math.Abs(l-10) > 1e-9 {
		t.Errorf("path length = %f, want 10", l)
	}
	if c := Centroid(nil); c != (Point{}) {
		t.Errorf("empty centroid = %+v", c)
	}
}

func TestPushOutMinAxis(t *testing.T) {
	r := Rect{X: 100, Y: 100, W: 50, H: 20}

	tests := []struct {
		name string
		p    Point
		want Point
		edge Edge
	}{
		{"clear", Point{X: 10, Y: 10}, Point{X: 10, Y: 10}, EdgeNone},
		{"near left", Point{X: 102, Y: 110}, Point{X: 95, Y: 110}, EdgeLeft},
		{"near right", Point{X: 149, Y: 110}, Point{X: 155, Y: 110}, EdgeRight},
		{"near top", Point{X: 125, Y: 101}, Point{X: 125, Y: 95}, EdgeTop},
		{"near bottom", Point{X: 125, Y: 119}, Point{X: 125, Y: 125}, EdgeBottom},
		{"inside margin", Point{X: 97, Y: 110}, Point{X: 95, Y: 110}, EdgeLeft},
	}

	for _, tt := range tests {
		got, edge := PushOutMinAxis(tt.p, r, 5)
		if got != tt.want || edge != tt.edge {
			t.Errorf("%s: got %+v/%d, want %+v/%d", tt.name, got, edge, tt.want, tt.edge)
		}
	}
}
