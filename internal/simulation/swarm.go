package simulation

import (
	"math"

	"chosenoffset.com/saveaunty/internal/core/geom"
	"chosenoffset.com/saveaunty/internal/world/level"
)

// fierceFactor grows linearly with survived time, reaching 1+FierceGrowth at the win threshold
func (e *Engine) fierceFactor(survived float64) float64 {
	return 1 + survived/e.cfg.Step.VictoryDelay*e.cfg.Swarm.FierceGrowth
}

// limitSpeed scales v down so its magnitude does not exceed limit
func limitSpeed(v geom.Point, limit float64) geom.Point {
	speed := math.Sqrt(v.LenSq())
	if speed <= limit || speed == 0 {
		return v
	}
	return v.Scale(limit / speed)
}

// stepThreat seeks the aunty, bounces off the shield and reports whether the threat stung her
func (e *Engine) stepThreat(t *Threat, aunty geom.Point, sh *Shield, world []geom.Point, fierce, dt float64) bool {
	c := e.cfg.Swarm
	n := float64(e.cfg.Step.SubSteps)

	mult := t.SpeedMultiplier
	if mult <= 0 {
		mult = c.DefaultSpeedMultiplier
	}

	dx := aunty.X - t.Pos.X
	dy := aunty.Y - t.Pos.Y
	dist := geom.SafeDistance(dx, dy)
	accel := c.Accel * mult * fierce / n

	t.Vel.X += dx / dist * accel
	t.Vel.Y += dy / dist * accel
	t.Vel = limitSpeed(t.Vel, c.MaxSpeed)
	t.Vel = t.Vel.Scale(c.Damping)

	t.Pos.X += t.Vel.X / n
	t.Pos.Y += t.Vel.Y / n
	t.Impact = max(0, t.Impact-dt/n)

	if sh != nil {
		e.deflectThreat(t, sh, world)
	}

	return geom.Distance(t.Pos, aunty) < CharacterRadius*c.LethalScale
}

// deflectThreat bounces a threat off every shield segment it touches and transfers an impulse
// and torque to the shield
func (e *Engine) deflectThreat(t *Threat, sh *Shield, world []geom.Point) {
	c := e.cfg.Swarm
	reach := e.cfg.Shield.CollisionRadius + c.ShieldMargin

	for i := 0; i < len(world)-1; i++ {
		contact, ok := geom.CircleSegmentContact(t.Pos, reach, world[i], world[i+1])
		if !ok {
			continue
		}
		nrm := contact.Normal
		t.Impact = c.ImpactDuration
		t.Pos = t.Pos.Add(nrm.Scale(contact.Penetration))

		if dot := t.Vel.Dot(nrm); dot < 0 {
			t.Vel = t.Vel.Sub(nrm.Scale(2 * dot)).Scale(c.Bounce)
			t.Vel = limitSpeed(t.Vel, c.MaxSpeed)
		}

		e.applyImpulse(sh, contact.Closest, nrm.Scale(-c.PushStrength))
	}
}

// resolveThreatObstacle reflects a threat off an obstacle through its nearest edge
func (e *Engine) resolveThreatObstacle(t *Threat, o level.Obstacle) {
	c := e.cfg.Swarm
	pos, edge := geom.PushOutMinAxis(t.Pos, o.Rect, c.ObstacleMargin)
	if edge == geom.EdgeNone {
		return
	}
	t.Pos = pos
	if edge.Horizontal() {
		t.Vel.X *= -c.ObstacleRestitution
	} else {
		t.Vel.Y *= -c.ObstacleRestitution
	}
}

// clampThreatToWalls keeps a threat inside the wall frame, reflecting its velocity
func (e *Engine) clampThreatToWalls(t *Threat) {
	c := e.cfg.Swarm
	minX := WallThickness + c.WallMargin
	maxX := CanvasWidth - WallThickness - c.WallMargin
	minY := WallThickness + c.WallMargin
	maxY := CanvasHeight - WallThickness - c.FloorMargin

	if t.Pos.X < minX || t.Pos.X > maxX {
		t.Pos.X = geom.Clamp(t.Pos.X, minX, maxX)
		t.Vel.X *= -c.ObstacleRestitution
	}
	if t.Pos.Y < minY || t.Pos.Y > maxY {
		t.Pos.Y = geom.Clamp(t.Pos.Y, minY, maxY)
		t.Vel.Y *= -c.ObstacleRestitution
	}
}
