// Package simulation provides the physics core: shield, aunty and swarm dynamics,
// drawing input capture and the fixed sub-step driver.
// Tuning values are loaded from data files so the feel can be adjusted without a rebuild.
package simulation

import (
	"encoding/json"
	"fmt"
	"os"
)

// Arena geometry shared by every collision check
const (
	CanvasWidth     = 400.0
	CanvasHeight    = 600.0
	WallThickness   = 14.0
	CharacterRadius = 28.0
	FloorClearance  = 75.0 // Aunty's body hangs this far below her centre
	BalloonRadius   = 30.0
	BalloonOffsetY  = 165.0
	HiveSafeRadius  = 38.0
)

// Config holds all simulation tuning
type Config struct {
	Step      StepConfig      `json:"step"`
	Character CharacterConfig `json:"character"`
	Shield    ShieldConfig    `json:"shield"`
	Swarm     SwarmConfig     `json:"swarm"`
	Drawing   DrawingConfig   `json:"drawing"`
}

// StepConfig controls the tick subdivision and win threshold
type StepConfig struct {
	SubSteps     int     `json:"sub_steps"`     // Fixed sub-steps per tick
	VictoryDelay float64 `json:"victory_delay"` // Survived milliseconds needed to win
}

// CharacterConfig defines aunty and balloon motion
type CharacterConfig struct {
	Gravity           float64 `json:"gravity"`             // Downward acceleration per tick
	BalloonBuoyancy   float64 `json:"balloon_buoyancy"`    // Replaces gravity on balloon levels (negative = up)
	HorizontalDamping float64 `json:"horizontal_damping"`  // Per sub-step multiplier on vx
	ShieldMargin      float64 `json:"shield_margin"`       // Extra clearance kept from the shield
	ShieldRestitution float64 `json:"shield_restitution"`  // Fraction of inward velocity removed on shield contact
	LandingNormalY    float64 `json:"landing_normal_y"`    // Normal y below which a contact counts as landing
	HazardScale       float64 `json:"hazard_scale"`        // Fraction of radius used for hazard contact
	WorriedRadius     float64 `json:"worried_radius"`      // Threat distance that worries the aunty
	BalloonLineMargin float64 `json:"balloon_line_margin"` // Extra clearance kept between balloon and shield
	BalloonLineNudge  float64 `json:"balloon_line_nudge"`  // Velocity fed back into the shield per balloon contact
}

// ShieldConfig defines the rigid-body feel of the drawn line
type ShieldConfig struct {
	Gravity         float64 `json:"gravity"`          // Downward acceleration per tick
	LinearDamping   float64 `json:"linear_damping"`   // Per sub-step multiplier on vx, vy
	AngularDamping  float64 `json:"angular_damping"`  // Per sub-step multiplier on angular velocity
	MaxSpeed        float64 `json:"max_speed"`        // Per-axis clamp on linear velocity
	WallMargin      float64 `json:"wall_margin"`      // Clearance kept from the wall frame
	ObstacleMargin  float64 `json:"obstacle_margin"`  // Clearance kept from obstacles
	ContactDamping  float64 `json:"contact_damping"`  // Linear velocity multiplier on contact
	ContactSpin     float64 `json:"contact_spin"`     // Angular velocity multiplier on contact
	CollisionRadius float64 `json:"collision_radius"` // Half thickness seen by threats
}

// SwarmConfig defines threat seeking and bouncing
type SwarmConfig struct {
	Accel                  float64 `json:"accel"`                    // Base acceleration per tick
	DefaultSpeedMultiplier float64 `json:"default_speed_multiplier"` // Used when a threat has none
	MaxSpeed               float64 `json:"max_speed"`                // Velocity magnitude cap
	Damping                float64 `json:"damping"`                  // Per sub-step velocity multiplier
	FierceGrowth           float64 `json:"fierce_growth"`            // Aggressiveness gained by the win threshold
	Bounce                 float64 `json:"bounce"`                   // Velocity gain on shield deflection
	PushStrength           float64 `json:"push_strength"`            // Impulse given to the shield per contact
	TorqueStrength         float64 `json:"torque_strength"`          // Torque factor given to the shield per contact
	ShieldMargin           float64 `json:"shield_margin"`            // Added to the shield radius for contact
	ObstacleMargin         float64 `json:"obstacle_margin"`          // Clearance kept from obstacles
	ObstacleRestitution    float64 `json:"obstacle_restitution"`     // Velocity kept (inverted) after obstacle/wall hits
	WallMargin             float64 `json:"wall_margin"`              // Clearance kept from side and top walls
	FloorMargin            float64 `json:"floor_margin"`             // Clearance kept from the floor wall
	LethalScale            float64 `json:"lethal_scale"`             // Fraction of aunty radius that counts as a sting
	ImpactDuration         float64 `json:"impact_duration"`          // Milliseconds of emphasis after a deflection
	LethalImpactDuration   float64 `json:"lethal_impact_duration"`   // Milliseconds of emphasis after a sting
}

// DrawingConfig defines stroke capture
type DrawingConfig struct {
	MinPoints      int     `json:"min_points"`      // Points needed to finalize a stroke
	MinSpacing     float64 `json:"min_spacing"`     // Minimum distance between samples
	SampleMargin   float64 `json:"sample_margin"`   // Samples are clamped this far inside the walls
	ObstacleMargin float64 `json:"obstacle_margin"` // Obstacles are inflated by this for overlap tests
}

// DefaultConfig returns the tuning the game ships with
func DefaultConfig() *Config {
	return &Config{
		Step: StepConfig{
			SubSteps:     30,
			VictoryDelay: 8000,
		},
		Character: CharacterConfig{
			Gravity:           0.22,
			BalloonBuoyancy:   -0.08,
			HorizontalDamping: 0.99,
			ShieldMargin:      4,
			ShieldRestitution: 0.8,
			LandingNormalY:    -0.6,
			HazardScale:       0.8,
			WorriedRadius:     140,
			BalloonLineMargin: 2,
			BalloonLineNudge:  0.05,
		},
		Shield: ShieldConfig{
			Gravity:         0.08,
			LinearDamping:   0.998,
			AngularDamping:  0.99,
			MaxSpeed:        12,
			WallMargin:      9,
			ObstacleMargin:  2,
			ContactDamping:  0.5,
			ContactSpin:     0.8,
			CollisionRadius: 12,
		},
		Swarm: SwarmConfig{
			Accel:                  4.0,
			DefaultSpeedMultiplier: 1.6,
			MaxSpeed:               18,
			Damping:                0.985,
			FierceGrowth:           1.5,
			Bounce:                 1.2,
			PushStrength:           0.22,
			TorqueStrength:         0.00045,
			ShieldMargin:           2,
			ObstacleMargin:         5,
			ObstacleRestitution:    0.8,
			WallMargin:             8,
			FloorMargin:            15,
			LethalScale:            0.85,
			ImpactDuration:         300,
			LethalImpactDuration:   500,
		},
		Drawing: DrawingConfig{
			MinPoints:      4,
			MinSpacing:     4,
			SampleMargin:   8,
			ObstacleMargin: 4,
		},
	}
}

// LoadConfig loads simulation tuning from a JSON file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Return defaults if file doesn't exist
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read simulation config: %w", err)
	}

	config := DefaultConfig() // Start with defaults
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse simulation config: %w", err)
	}
	config.sanitize()

	return config, nil
}

// sanitize replaces values that would stall or destabilize the sub-step loop
func (c *Config) sanitize() {
	def := DefaultConfig()
	if c.Step.SubSteps <= 0 {
		c.Step.SubSteps = def.Step.SubSteps
	}
	if c.Step.VictoryDelay <= 0 {
		c.Step.VictoryDelay = def.Step.VictoryDelay
	}
	if c.Shield.MaxSpeed <= 0 {
		c.Shield.MaxSpeed = def.Shield.MaxSpeed
	}
	if c.Swarm.MaxSpeed <= 0 {
		c.Swarm.MaxSpeed = def.Swarm.MaxSpeed
	}
	if c.Swarm.DefaultSpeedMultiplier <= 0 {
		c.Swarm.DefaultSpeedMultiplier = def.Swarm.DefaultSpeedMultiplier
	}
	if c.Drawing.MinPoints < 2 {
		c.Drawing.MinPoints = def.Drawing.MinPoints
	}
}
