package simulation

import (
	"chosenoffset.com/saveaunty/internal/core/geom"
	"chosenoffset.com/saveaunty/internal/world/level"
)

// integrateCharacter applies gravity (or balloon lift) and advances the aunty by one sub-step
func (e *Engine) integrateCharacter(c *Character, hasBalloon bool) {
	n := float64(e.cfg.Step.SubSteps)
	g := e.cfg.Character.Gravity
	if hasBalloon {
		g = e.cfg.Character.BalloonBuoyancy
	}

	c.Vel.Y += g / n
	c.Pos.X += c.Vel.X / n
	c.Pos.Y += c.Vel.Y / n
	c.Vel.X *= e.cfg.Character.HorizontalDamping
}

// resolveBalloon constrains the balloon against the wall frame, solid obstacles and the shield.
// Corrections move the aunty since the balloon hangs rigidly above her.
func (e *Engine) resolveBalloon(c *Character, sh *Shield, world []geom.Point, obstacles []level.Obstacle) {
	b := BalloonPos(c.Pos)
	r := BalloonRadius

	if b.Y-r < WallThickness {
		c.Pos.Y += WallThickness - (b.Y - r)
		c.Vel.Y = max(0, c.Vel.Y)
	}
	if b.X-r < WallThickness {
		c.Pos.X += WallThickness - (b.X - r)
		c.Vel.X = max(0, c.Vel.X)
	}
	if b.X+r > CanvasWidth-WallThickness {
		c.Pos.X -= b.X + r - (CanvasWidth - WallThickness)
		c.Vel.X = min(0, c.Vel.X)
	}

	for _, o := range obstacles {
		if !o.Kind.Solid() {
			continue
		}
		b = BalloonPos(c.Pos)
		if contact, ok := geom.CircleRectContact(b, r, o.Rect); ok {
			c.Pos = c.Pos.Add(contact.Normal.Scale(contact.Penetration))
		}
	}

	if sh == nil || len(world) < 2 {
		return
	}
	reach := r + e.cfg.Character.BalloonLineMargin
	nudge := e.cfg.Character.BalloonLineNudge
	for i := 0; i < len(world)-1; i++ {
		b = BalloonPos(c.Pos)
		contact, ok := geom.CircleSegmentContact(b, reach, world[i], world[i+1])
		if !ok {
			continue
		}
		c.Pos = c.Pos.Add(contact.Normal.Scale(contact.Penetration))
		sh.VX -= contact.Normal.X * nudge
		sh.VY -= contact.Normal.Y * nudge
	}
}

// resolveShieldVsCharacter pushes the aunty off every shield segment and removes most of the
// velocity heading into it
func (e *Engine) resolveShieldVsCharacter(c *Character, world []geom.Point) {
	if len(world) < 2 {
		return
	}
	reach := CharacterRadius + e.cfg.Character.ShieldMargin
	restitution := e.cfg.Character.ShieldRestitution

	for i := 0; i < len(world)-1; i++ {
		contact, ok := geom.CircleSegmentContact(c.Pos, reach, world[i], world[i+1])
		if !ok {
			continue
		}
		n := contact.Normal
		c.Pos = c.Pos.Add(n.Scale(contact.Penetration))
		if dot := c.Vel.Dot(n); dot < 0 {
			c.Vel = c.Vel.Sub(n.Scale(dot * restitution))
		}
	}
}

// characterBounds returns the box the aunty's centre must stay inside
func characterBounds() (minX, maxX, minY, maxY float64) {
	return WallThickness + CharacterRadius,
		CanvasWidth - WallThickness - CharacterRadius,
		WallThickness + CharacterRadius,
		CanvasHeight - WallThickness - FloorClearance
}

// clampCharacterToWalls is the hard wall constraint; the floor pins vertical velocity
func (e *Engine) clampCharacterToWalls(c *Character) {
	minX, maxX, minY, maxY := characterBounds()

	if c.Pos.X < minX {
		c.Pos.X = minX
		c.Vel.X = max(0, c.Vel.X)
	}
	if c.Pos.X > maxX {
		c.Pos.X = maxX
		c.Vel.X = min(0, c.Vel.X)
	}
	if c.Pos.Y < minY {
		c.Pos.Y = minY
		c.Vel.Y = max(0, c.Vel.Y)
	}
	if c.Pos.Y > maxY {
		c.Pos.Y = maxY
		c.Vel.Y = 0
	}
}

// resolveCharacterObstacle pushes the aunty out of a solid obstacle.
// A contact normal pointing mostly upward is a landing and stops vertical motion.
func (e *Engine) resolveCharacterObstacle(c *Character, o level.Obstacle) {
	contact, ok := geom.CircleRectContact(c.Pos, CharacterRadius, o.Rect)
	if !ok {
		return
	}
	c.Pos = c.Pos.Add(contact.Normal.Scale(contact.Penetration))
	if contact.Normal.Y < e.cfg.Character.LandingNormalY {
		c.Vel.Y = 0
	}
}

// hazardContact reports whether the aunty touches a hazard obstacle
func (e *Engine) hazardContact(c *Character, o level.Obstacle) bool {
	return geom.CircleRectOverlap(c.Pos, CharacterRadius*e.cfg.Character.HazardScale, o.Rect)
}

// deriveMood recomputes the aunty's mood. Terminal moods stick.
func (e *Engine) deriveMood(s *State) {
	switch s.Phase {
	case PhaseWon:
		s.Character.Mood = MoodHappy
		return
	case PhaseFailed:
		s.Character.Mood = MoodHarmed
		return
	}
	if s.Character.Mood == MoodHappy || s.Character.Mood == MoodHarmed {
		return
	}

	limit := e.cfg.Character.WorriedRadius * e.cfg.Character.WorriedRadius
	for _, t := range s.Threats {
		if t.Active && geom.DistanceSq(t.Pos, s.Character.Pos) < limit {
			s.Character.Mood = MoodWorried
			return
		}
	}
	s.Character.Mood = MoodCalm
}
