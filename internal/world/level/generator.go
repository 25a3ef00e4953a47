package level

import (
	"fmt"
	"math"

	"github.com/aquilax/go-perlin"

	"chosenoffset.com/saveaunty/internal/core/geom"
)

// Archetypes is the number of distinct layouts the generator cycles through
const Archetypes = 25

var flavorTitles = [Archetypes]string{
	"Tea Break", "Curler Crisis", "Rent Duel", "Smoking Zone", "Lace Defense",
	"Buzzing Alley", "Patio Panic", "Garden Gaps", "Hive Siege", "Laundry Day",
	"Slippery Tiles", "Golden Block", "Sky High", "Balcony Defense", "Tight Corner",
	"Swarm Peak", "Narrow Ledge", "Triple Trouble", "The Great Hive", "Market Madness",
	"Vertical Drop", "Island Escape", "Stinger Maze", "Final Stand", "Bee Overlord",
}

// GeneratorConfig holds configuration for level generation
type GeneratorConfig struct {
	Count int   // Number of levels to generate (0 = 50)
	Seed  int64 // 0 = classic layouts; anything else remixes variations with Perlin noise
}

// Generator builds the built-in level sequence
type Generator struct {
	config GeneratorConfig
	noise  *perlin.Perlin
}

// NewGenerator creates a new level generator
func NewGenerator(config GeneratorConfig) *Generator {
	if config.Count <= 0 {
		config.Count = 50
	}
	g := &Generator{config: config}
	if config.Seed != 0 {
		g.noise = perlin.NewPerlin(2, 2, 3, config.Seed)
	}
	return g
}

// Generate returns every level in order
func (g *Generator) Generate() []Level {
	levels := make([]Level, g.config.Count)
	for i := range levels {
		levels[i] = g.Level(i)
	}
	return levels
}

// Pack wraps the generated levels in a named pack
func (g *Generator) Pack(name string) *Pack {
	return &Pack{Name: name, Levels: g.Generate()}
}

// variation returns an offset in [0, 100) used to shift a layout
func (g *Generator) variation(i int) int {
	if g.noise == nil {
		return (i * 19) % 100
	}
	n := g.noise.Noise1D(float64(i)*0.37 + 0.5)
	v := int((n + 1) / 2 * 100)
	if v < 0 {
		v = 0
	}
	if v > 99 {
		v = 99
	}
	return v
}

// agitation returns the swarm speed multiplier for level index i
func (g *Generator) agitation(i int) float64 {
	a := 1.2 + float64(i)*0.04
	if g.noise != nil {
		a += g.noise.Noise1D(float64(i)*0.71+7.3) * 0.1
	}
	return math.Max(a, 1.0)
}

func platform(id string, x, y, w, h float64) Obstacle {
	return Obstacle{ID: id, Kind: KindPlatform, Rect: geom.Rect{X: x, Y: y, W: w, H: h}}
}

func spikes(id string, x, y, w, h float64) Obstacle {
	return Obstacle{ID: id, Kind: KindSpikes, Rect: geom.Rect{X: x, Y: y, W: w, H: h}}
}

func water(id string, x, y, w, h float64) Obstacle {
	return Obstacle{ID: id, Kind: KindWater, Rect: geom.Rect{X: x, Y: y, W: w, H: h}}
}

// Level builds the level at zero-based index i
func (g *Generator) Level(i int) Level {
	beeCount := min(25+i*3, 150)
	inkLimit := math.Max(3500-float64(i)*60, 450)
	variation := float64(g.variation(i))

	var objects []Obstacle
	aunty := geom.Point{X: 200, Y: 485}
	hive := geom.Point{X: 200, Y: 120}
	hasBalloon := false

	switch i % Archetypes {
	case 0: // Basic platform
		objects = append(objects, platform("f", 0, 560, 400, 40))
		aunty = geom.Point{X: 200 + variation - 50, Y: 485}
		hive = geom.Point{X: 200 - variation + 50, Y: 130}
	case 1: // Balloon intro
		hasBalloon = true
		objects = append(objects, platform("p", 150, 530, 100, 20))
		aunty = geom.Point{X: 200, Y: 455}
		hive = geom.Point{X: 200, Y: 80}
	case 2: // Chasm
		objects = append(objects,
			platform("l", 0, 450, 130, 150),
			platform("r", 270, 450, 130, 150),
			spikes("s", 130, 570, 140, 30))
		aunty = geom.Point{X: 65, Y: 375}
		hive = geom.Point{X: 335, Y: 150}
	case 3: // Funnel
		objects = append(objects,
			platform("l", 0, 320, 140, 20),
			platform("r", 260, 320, 140, 20),
			platform("b", 0, 560, 400, 40))
	case 4: // Umbrella, split so the central path stays open
		objects = append(objects,
			platform("fl", 0, 550, 400, 50),
			platform("l_side", 0, 220, 110, 20),
			platform("r_side", 290, 220, 110, 20))
		aunty = geom.Point{X: 200, Y: 475}
		hive = geom.Point{X: 200, Y: 100}
	case 5: // Wall
		objects = append(objects, platform("p", 180, 400, 40, 200))
		aunty = geom.Point{X: 100, Y: 510}
		hive = geom.Point{X: 300, Y: 130}
	case 6: // Ledges
		objects = append(objects,
			platform("l1", 0, 530, 150, 20),
			platform("l2", 250, 380, 150, 20))
		aunty = geom.Point{X: 75, Y: 455}
		hive = geom.Point{X: 325, Y: 130}
	case 7: // Cage
		objects = append(objects,
			platform("wl", 100, 400, 20, 160),
			platform("wr", 280, 400, 20, 160),
			platform("wb", 100, 560, 200, 40))
		aunty = geom.Point{X: 190, Y: 485}
		hive = geom.Point{X: 350, Y: 120}
	case 8: // Ceiling hive
		objects = append(objects, platform("c", 250, 300, 150, 20))
		aunty = geom.Point{X: 100, Y: 225}
		hive = geom.Point{X: 100, Y: 520}
	case 9: // Maze blocks
		objects = append(objects,
			platform("m1", 0, 350, 220, 20),
			platform("m2", 180, 500, 220, 20))
		aunty = geom.Point{X: 350, Y: 425}
		hive = geom.Point{X: 60, Y: 130}
	case 10: // Basic 2
		objects = append(objects, platform("f", 0, 560, 400, 40))
		aunty = geom.Point{X: 100, Y: 485}
		hive = geom.Point{X: 300, Y: 120}
	case 11: // Corner
		objects = append(objects, platform("f", 250, 550, 150, 50))
		aunty = geom.Point{X: 325, Y: 475}
		hive = geom.Point{X: 75, Y: 120}
	case 12: // Floating spikes
		hasBalloon = true
		objects = append(objects,
			spikes("s1", 0, 0, 400, 20),
			platform("p", 50, 450, 100, 20))
		aunty = geom.Point{X: 300, Y: 375}
		hive = geom.Point{X: 300, Y: 540}
	case 13: // Zig-zag
		for j := 0; j < 3; j++ {
			x := 0.0
			if j%2 == 1 {
				x = 150
			}
			objects = append(objects, platform(fmt.Sprintf("z%d", j), x, 220+float64(j)*110, 250, 20))
		}
		aunty = geom.Point{X: 320, Y: 525}
		hive = geom.Point{X: 50, Y: 100}
	case 14: // Pillar
		objects = append(objects, platform("pil", 180, 330, 40, 270))
		aunty = geom.Point{X: 100, Y: 255}
		hive = geom.Point{X: 300, Y: 500}
	case 15: // Ceiling spikes, split
		objects = append(objects,
			platform("gr", 0, 560, 400, 40),
			spikes("sr_l", 0, 360, 120, 20),
			spikes("sr_r", 280, 360, 120, 20))
		hive = geom.Point{X: 200, Y: 100}
	case 16: // Split floor
		objects = append(objects,
			platform("l", 20, 500, 120, 20),
			platform("r", 260, 500, 120, 20))
		aunty = geom.Point{X: 80, Y: 425}
		hive = geom.Point{X: 320, Y: 130}
	case 17: // Balloon box
		hasBalloon = true
		objects = append(objects, platform("b", 120, 450, 160, 20))
		aunty = geom.Point{X: 200, Y: 200}
		hive = geom.Point{X: 200, Y: 550}
	case 18: // Dual choke
		objects = append(objects,
			platform("t", 0, 420, 140, 140),
			platform("b", 260, 420, 140, 140))
		aunty = geom.Point{X: 200, Y: 510}
		hive = geom.Point{X: 200, Y: 100}
	case 19: // Skybox balloon
		hasBalloon = true
		objects = append(objects, platform("ceil", 150, 160, 100, 20))
		aunty = geom.Point{X: 50, Y: 165}
		hive = geom.Point{X: 50, Y: 520}
	case 20: // Eye siege
		objects = append(objects, platform("c", 180, 340, 40, 40))
		aunty = geom.Point{X: 200, Y: 265}
		hive = geom.Point{X: 50, Y: 100}
	case 21: // Ladder steps
		for k := 0; k < 4; k++ {
			objects = append(objects, platform(fmt.Sprintf("k%d", k), float64(k)*90, 560-float64(k)*80, 90, 15))
		}
		aunty = geom.Point{X: 330, Y: 245}
		hive = geom.Point{X: 60, Y: 100}
	case 22: // Water pit
		objects = append(objects,
			platform("l", 0, 520, 110, 80),
			platform("r", 290, 520, 110, 80),
			water("w", 110, 570, 180, 30))
		aunty = geom.Point{X: 55, Y: 445}
		hive = geom.Point{X: 345, Y: 120}
	case 23: // Thin wire
		objects = append(objects, platform("b", 60, 460, 280, 12))
		aunty = geom.Point{X: 200, Y: 385}
		hive = geom.Point{X: 200, Y: 100}
	case 24: // Final arena
		objects = append(objects,
			platform("f", 0, 580, 400, 20),
			platform("l", 40, 360, 20, 180),
			platform("r", 340, 360, 20, 180))
		aunty = geom.Point{X: 200, Y: 505}
		hive = geom.Point{X: 200, Y: 100}
	}

	// Keep the hive clear of the top-centre HUD
	if hive.Y < 120 && hive.X >= 150 && hive.X <= 250 {
		hive.Y = 120
	}

	return Level{
		ID:             i + 1,
		Title:          fmt.Sprintf("Level %d: %s", i+1, flavorTitles[i%Archetypes]),
		CharacterStart: aunty,
		HivePos:        hive,
		Obstacles:      objects,
		Threats:        Swarm(beeCount, g.agitation(i)),
		MaxInk:         inkLimit,
		HasBalloon:     hasBalloon,
	}
}
