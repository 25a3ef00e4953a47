package game

import (
	"fmt"
	"image/color"
	"math"

	"chosenoffset.com/saveaunty/internal/core/geom"
	"chosenoffset.com/saveaunty/internal/render"
	"chosenoffset.com/saveaunty/internal/simulation"
	"chosenoffset.com/saveaunty/internal/world/level"
)

const (
	beeRadius     = 9
	shieldOutline = 18
	shieldCore    = 4
)

// Draw renders the attempt to the screen. It only reads the snapshot.
func (g *Game) Draw(screen render.Image) {
	snap := g.Driver.Snapshot()

	g.drawBackground(screen)
	g.drawObstacles(screen, snap.Obstacles)
	g.drawWalls(screen)
	g.drawInkBar(screen, snap)
	if snap.Phase == simulation.PhasePlaying {
		g.drawCountdown(screen, snap)
	}
	g.drawHive(screen, snap)
	if snap.Drawing {
		g.drawPolyline(screen, snap.Stroke)
	}
	if snap.Shield != nil {
		g.drawPolyline(screen, snap.Shield.World)
	}
	g.drawThreats(screen, snap.Threats)
	g.drawAunty(screen, snap)
}

func f32(v float64) float32 { return float32(v) }

func (g *Game) drawBackground(screen render.Image) {
	screen.Fill(colorSky)
	g.Renderer.FillCircle(screen, 100, 680, 300, colorHill)
	g.Renderer.FillCircle(screen, 350, 740, 400, colorHill)
}

func (g *Game) drawObstacles(screen render.Image, obstacles []level.Obstacle) {
	for _, o := range obstacles {
		x, y, w, h := f32(o.X), f32(o.Y), f32(o.W), f32(o.H)
		switch o.Kind {
		case level.KindPlatform:
			g.Renderer.FillRect(screen, x, y, w, h, colorPlatform)
			g.Renderer.StrokeRect(screen, x, y, w, h, 3, colorBlack)
			g.Renderer.FillRect(screen, x-4, y-4, w+8, 8, colorGrass)
			g.Renderer.StrokeRect(screen, x-4, y-4, w+8, 8, 3, colorBlack)
		case level.KindCrate:
			g.Renderer.FillRect(screen, x, y, w, h, colorCrate)
			g.Renderer.StrokeRect(screen, x, y, w, h, 3, colorBlack)
			g.Renderer.StrokeLine(screen, x, y, x+w, y+h, 3, colorBlack)
		case level.KindWater:
			g.Renderer.FillRect(screen, x, y, w, h, colorWater)
			for wx := x; wx < x+w; wx += 15 {
				g.Renderer.StrokeCircle(screen, wx+7, y, 5, 2, colorWhite)
			}
		case level.KindSpikes:
			for sx := x; sx < x+w; sx += 12 {
				g.Renderer.StrokeLine(screen, sx, y+h, sx+6, y, 3, colorSpikes)
				g.Renderer.StrokeLine(screen, sx+6, y, sx+12, y+h, 3, colorSpikes)
			}
		}
	}
}

func (g *Game) drawWalls(screen render.Image) {
	w, h, t := f32(simulation.CanvasWidth), f32(simulation.CanvasHeight), f32(simulation.WallThickness)
	g.Renderer.FillRect(screen, 0, 0, w, t, colorWall)
	g.Renderer.FillRect(screen, 0, h-t, w, t, colorWall)
	g.Renderer.FillRect(screen, 0, 0, t, h, colorWall)
	g.Renderer.FillRect(screen, w-t, 0, t, h, colorWall)
	g.Renderer.StrokeRect(screen, 4, 4, w-8, h-8, 2, colorWhite)
}

// drawInkBar shows the unspent drawing budget; it turns red below a quarter
func (g *Game) drawInkBar(screen render.Image, snap simulation.Snapshot) {
	const x, y = 30, 45
	frac := snap.InkFraction()

	g.Renderer.FillRect(screen, x, y, 160, 24, colorBlack)
	g.Renderer.StrokeRect(screen, x, y, 160, 24, 3, colorWhite)
	fill := colorInkOK
	if frac <= 0.25 {
		fill = colorInkLow
	}
	g.Renderer.FillRect(screen, x+4, y+4, f32(152*frac), 16, fill)
	g.Renderer.DrawText(screen, "INK", x+4, y-16, colorWhite, 1)
}

func (g *Game) drawCountdown(screen render.Image, snap simulation.Snapshot) {
	cx, cy := f32(simulation.CanvasWidth-65), f32(75)
	g.Renderer.FillCircle(screen, cx, cy, 36, colorTimer)
	g.Renderer.StrokeCircle(screen, cx, cy, 36, 5, colorBlack)

	text := fmt.Sprintf("%d", snap.SecondsRemaining())
	tw, th := g.Renderer.MeasureText(text, 1)
	g.Renderer.DrawText(screen, text, int(cx)-tw/2, int(cy)-th/2, colorBlack, 1)
}

func (g *Game) drawHive(screen render.Image, snap simulation.Snapshot) {
	hx, hy := f32(snap.Hive.X), f32(snap.Hive.Y)

	// Hang the hive from the first platform above it
	for _, o := range snap.Obstacles {
		if o.Kind == level.KindPlatform && snap.Hive.X >= o.X && snap.Hive.X <= o.Right() && o.Y < snap.Hive.Y {
			g.Renderer.StrokeLine(screen, hx, f32(o.Bottom()), hx, hy-30, 4, colorPlatform)
			break
		}
	}

	g.Renderer.FillCircle(screen, hx, hy, 36, colorHive)
	g.Renderer.StrokeCircle(screen, hx, hy, 36, 3, colorBlack)
	for r := float32(-25); r <= 25; r += 15 {
		g.Renderer.StrokeLine(screen, hx-28, hy+r, hx+28, hy+r, 3, colorBlack)
	}
	g.Renderer.FillCircle(screen, hx, hy+10, 10, colorHiveHole)

	if !snap.Started {
		g.Renderer.FillCircle(screen, hx-8, hy+10, 5, colorBee)
		g.Renderer.FillCircle(screen, hx+8, hy+8, 5, colorBee)
		g.Renderer.FillCircle(screen, hx, hy+18, 5, colorBee)
	}
}

// drawPolyline draws a stroke or the shield as a thick outlined line
func (g *Game) drawPolyline(screen render.Image, pts []geom.Point) {
	if len(pts) < 2 {
		return
	}
	for _, pass := range []struct {
		width float32
		clr   color.Color
	}{{shieldOutline, colorBlack}, {shieldCore, colorWhite}} {
		for i := 0; i < len(pts)-1; i++ {
			a, b := pts[i], pts[i+1]
			g.Renderer.StrokeLine(screen, f32(a.X), f32(a.Y), f32(b.X), f32(b.Y), pass.width, pass.clr)
		}
		// Round caps and joins
		for _, p := range pts {
			g.Renderer.FillCircle(screen, f32(p.X), f32(p.Y), pass.width/2, pass.clr)
		}
	}
}

func (g *Game) drawThreats(screen render.Image, threats []simulation.Threat) {
	for _, t := range threats {
		if !t.Active {
			continue
		}
		x, y := f32(t.Pos.X), f32(t.Pos.Y)
		body := colorBee
		if t.Impact > 0 {
			g.Renderer.FillCircle(screen, x, y, beeRadius+6, colorImpact)
			body = colorBeeHit
		}

		// Wings flip with the direction of travel
		side := float32(1)
		if t.Vel.X < 0 {
			side = -1
		}
		g.Renderer.FillCircle(screen, x-4*side, y-8, 5, colorWhite)
		g.Renderer.FillCircle(screen, x+3*side, y-9, 4, colorWhite)

		g.Renderer.FillCircle(screen, x, y, beeRadius, body)
		g.Renderer.StrokeCircle(screen, x, y, beeRadius, 2, colorBlack)
		g.Renderer.FillRect(screen, x-4, y-beeRadius+2, 2, 2*beeRadius-4, colorBlack)
		g.Renderer.FillRect(screen, x+2, y-beeRadius+2, 2, 2*beeRadius-4, colorBlack)
	}
}

func (g *Game) drawAunty(screen render.Image, snap simulation.Snapshot) {
	x, y := f32(snap.Character.Pos.X), f32(snap.Character.Pos.Y)
	r := f32(simulation.CharacterRadius)

	if snap.HasBalloon {
		bx, by := f32(snap.Balloon.X), f32(snap.Balloon.Y)
		g.Renderer.StrokeLine(screen, x, y-r, bx, by+25, 2, colorBlack)
		g.Renderer.FillCircle(screen, bx, by, f32(simulation.BalloonRadius), colorBalloon)
		g.Renderer.StrokeCircle(screen, bx, by, f32(simulation.BalloonRadius), 2, colorBlack)
		g.Renderer.FillCircle(screen, bx+10, by-15, 6, color.RGBA{0xff, 0xff, 0xff, 0x66})
	}

	// Body
	g.Renderer.FillRect(screen, x-18, y+r-6, 36, 50, colorWhite)
	g.Renderer.StrokeRect(screen, x-18, y+r-6, 36, 50, 2, colorBlack)

	// Head tinted by mood
	face := colorSkin
	switch snap.Character.Mood {
	case simulation.MoodWorried:
		face = colorWorried
	case simulation.MoodHarmed:
		face = colorHarmed
	case simulation.MoodHappy:
		face = colorHappy
	}
	g.Renderer.FillCircle(screen, x, y, r-2, face)
	g.Renderer.StrokeCircle(screen, x, y, r-2, 2, colorBlack)

	// Curlers
	for j := 0; j < 3; j++ {
		a := math.Pi + float64(j+1)*math.Pi/4
		cx := x + f32(math.Cos(a)*float64(r))
		cy := y - 10 + f32(math.Sin(a)*float64(r))
		g.Renderer.FillCircle(screen, cx, cy, 7.5, colorBalloon)
		g.Renderer.StrokeCircle(screen, cx, cy, 7.5, 2, colorBlack)
	}

	// Eyes
	if snap.Character.Mood == simulation.MoodHarmed {
		g.Renderer.DrawText(screen, "x x", int(x)-9, int(y)-10, colorBlack, 1)
	} else {
		g.Renderer.FillRect(screen, x-12, y-6, 8, 2, colorBlack)
		g.Renderer.FillRect(screen, x+4, y-6, 8, 2, colorBlack)
	}

	// Cigarette
	g.Renderer.FillRect(screen, x+6, y+10, 16, 4, colorWhite)
	g.Renderer.FillRect(screen, x+18, y+10, 4, 4, colorInkLow)
}
