package parameter

// Gravity force scales, K in force = K / d²
// Independent tuning constants per body class, not physically derived
const (
	OrbiterGravity = 2.0
	DebrisGravity  = 0.5
)

// OrbitDamping is the per-tick decay of an orbiter's perturbation offset
const OrbitDamping = 0.98

// OrbitPathSteps is the number of samples in a rendered orbit path (every 5°)
const OrbitPathSteps = 72

// Attractor glow
const (
	// GlowOnStrike is the glow intensity armed when debris strikes the attractor
	GlowOnStrike = 20
)

// Edge spawn
const (
	// SpawnChance is the per-tick probability of spawning one edge debris
	SpawnChance = 0.05

	SpawnRadiusMin = 2
	SpawnRadiusMax = 10

	// SpawnSpeedMax bounds each velocity component to [-SpawnSpeedMax, SpawnSpeedMax)
	SpawnSpeedMax = 0.5
)

// Fragmentation
const (
	// FragmentsPerRadius is the fragment count multiplier: count = FragmentsPerRadius * radius
	FragmentsPerRadius = 2

	FragmentRadiusMin = 2
	FragmentRadiusMax = 6

	// FragmentSpeedMax bounds each fragment velocity component to [-FragmentSpeedMax, FragmentSpeedMax)
	FragmentSpeedMax = 1.0
)

// CullMargin scales the domain to the retention bound: keep -W < x < 2W, -H < y < 2H
const CullMargin = 1.0
