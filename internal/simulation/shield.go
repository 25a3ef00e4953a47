package simulation

import (
	"chosenoffset.com/saveaunty/internal/core/geom"
	"chosenoffset.com/saveaunty/internal/world/level"
)

// integrateShield applies gravity and damping and advances the shield transform by one sub-step
func (e *Engine) integrateShield(sh *Shield) {
	c := e.cfg.Shield
	n := float64(e.cfg.Step.SubSteps)

	sh.VY += c.Gravity / n
	sh.Pos.X += sh.VX / n
	sh.Pos.Y += sh.VY / n
	sh.Rot += sh.AV / n

	sh.VX = geom.Clamp(sh.VX*c.LinearDamping, -c.MaxSpeed, c.MaxSpeed)
	sh.VY = geom.Clamp(sh.VY*c.LinearDamping, -c.MaxSpeed, c.MaxSpeed)
	sh.AV *= c.AngularDamping
}

// applyImpulse pushes the shield at a world contact point, adding spin about the centroid
func (e *Engine) applyImpulse(sh *Shield, at geom.Point, push geom.Point) {
	sh.VX += push.X
	sh.VY += push.Y
	rx := at.X - sh.Pos.X
	ry := at.Y - sh.Pos.Y
	sh.AV += (rx*push.Y - ry*push.X) * e.cfg.Swarm.TorqueStrength
}

// resolveShieldBounds keeps the shield inside the wall frame and out of obstacles.
// Every point that crossed a boundary contributes a correction; the average correction is
// applied once to the whole body and contact damps its motion.
func (e *Engine) resolveShieldBounds(sh *Shield, world []geom.Point, obstacles []level.Obstacle) {
	c := e.cfg.Shield
	minX := WallThickness + c.WallMargin
	maxX := CanvasWidth - WallThickness - c.WallMargin
	minY := WallThickness + c.WallMargin
	maxY := CanvasHeight - WallThickness - c.WallMargin

	var total geom.Point
	grounded := 0

	for _, p := range world {
		target := p
		hit := false

		if target.X < minX {
			target.X = minX
			hit = true
		}
		if target.X > maxX {
			target.X = maxX
			hit = true
		}
		if target.Y < minY {
			target.Y = minY
			hit = true
		}
		if target.Y > maxY {
			target.Y = maxY
			hit = true
		}

		for _, o := range obstacles {
			var edge geom.Edge
			target, edge = geom.PushOutMinAxis(target, o.Rect, c.ObstacleMargin)
			if edge != geom.EdgeNone {
				hit = true
			}
		}

		if hit {
			total = total.Add(target.Sub(p))
			grounded++
		}
	}

	if grounded == 0 {
		return
	}
	sh.Pos.X += total.X / float64(grounded)
	sh.Pos.Y += total.Y / float64(grounded)
	sh.VX *= c.ContactDamping
	sh.VY *= c.ContactDamping
	sh.AV *= c.ContactSpin
}

// newShield converts a finished stroke into a rigid body centred on the stroke centroid
func newShield(stroke []geom.Point) *Shield {
	center := geom.Centroid(stroke)
	local := make([]geom.Point, len(stroke))
	for i, p := range stroke {
		local[i] = p.Sub(center)
	}
	return &Shield{Points: local, Pos: center}
}
