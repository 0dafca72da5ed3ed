package constants

// Flow Field Constants
const (
	// FlowCellSize is the side of one flow-field cell in world units
	FlowCellSize = 20

	// FlowNoiseScale scales grid coordinates before sampling noise
	FlowNoiseScale = 0.1

	// FlowTimeStep is the noise time increment per frame
	FlowTimeStep = 0.003

	// FlowInfluence is the damped fraction of the field vector added to a galaxy star
	FlowInfluence = 0.5
)

// Galaxy Constants
const (
	GalaxyStarCount = 250

	GalaxyMinDistance = 50.0
	GalaxyMaxDistance = 200.0

	GalaxyMinAngularSpeed = 0.001
	GalaxyMaxAngularSpeed = 0.01

	GalaxyMinStarSize = 1.0
	GalaxyMaxStarSize = 3.0

	// OrbitXScale stretches orbits along x only, producing ellipses
	OrbitXScale = 1.5

	// GalaxyDriftSpeed is the per-frame translation when the galaxy moves
	GalaxyDriftSpeed = 2.0

	// GalaxyDriftThreshold is the distance under which the galaxy stops drifting
	GalaxyDriftThreshold = 1.0

	// TrailLength is the maximum number of remembered trail points per star
	TrailLength = 12

	// TrailMaxAlpha is the alpha of the newest trail point (0-255)
	TrailMaxAlpha = 200.0
)

// Black Hole Constants
const (
	BlackHoleRadius     = 20.0
	BlackHoleHaloRadius = 60.0
	BlackHoleHaloStep   = 4.0
	BlackHoleHaloAlpha  = 180.0
)

// Starfield Constants
const (
	StarfieldCount  = 400
	StarMinSize     = 1.0
	StarMaxSize     = 3.0
	TwinkleScale    = 0.01
	TwinkleMinAlpha = 40.0
	TwinkleMaxAlpha = 255.0
	StarPhaseMax    = 1000.0
	StarHitRadius   = 10.0
)

// Supernova Constants
const (
	SupernovaLifespan      = 60
	SupernovaMinRadius     = 30.0
	SupernovaMaxRadius     = 80.0
	SupernovaMinBrightness = 200.0
	SupernovaMaxBrightness = 255.0
	SupernovaFillAlpha     = 150.0
	SupernovaRingWeight    = 2.0
)

// Zoom Constants
const (
	// ZoomRadius is the on-screen radius of the magnified star, in world units
	ZoomRadius = 150.0

	// ZoomNoiseScale is the spatial noise scale inside the magnified disk
	ZoomNoiseScale = 0.02

	// ZoomTimeStep is the slow time increment used while zoomed
	ZoomTimeStep = 0.005
)
