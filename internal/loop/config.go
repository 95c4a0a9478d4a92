package loop

// Simulation tuning constants.
// All per-frame rates assume the 60 FPS frame driver.

// Player
const (
	MaxLives      = 3
	PlayerWidth   = 64.0
	PlayerHeight  = 64.0
	PlayerAnchorY = 0.85 // Vertical centre as a fraction of the playfield height
	PlayerMinX    = 0.05
	PlayerMaxX    = 0.95
	SteerStep     = 0.015 // Normalised X change per frame of held steering key
)

// Scoring
const (
	ComboThreshold     = 3
	BullMarketFrames   = 300
	BullMarketMultiple = 2
	MilestoneStep      = 1000
	MilestoneBump      = 1.1 // Speed multiplier factor per milestone
)

// Feedback intensities
const (
	AssetFlash     = 0.4
	CrashFlash     = 0.8
	FlashDecay     = 0.02
	LiabilityShake = 10.0
	CrashShake     = 20.0
	ShakeDecay     = 0.5
)

// Background
const (
	GridScrollRate = 0.02 // Scroll per frame per difficulty tier
	GridWrap       = 20.0
)

// Logical playfield used by every front end. Renderers scale it to their surface.
const (
	FieldWidth  = 960.0
	FieldHeight = 540.0
)
