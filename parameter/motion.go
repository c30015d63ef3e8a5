package parameter

// Unit conversions shared across planning code
const (
	UmPerM    = 1000000 // micrometers per meter
	UmPerMm   = 1000
	MmPerM    = 1000
	SecPerMin = 60

	// StepRateDivisor converts feedrate·stepsPerM (mm/min · steps/m) to steps/s
	StepRateDivisor = MmPerM * SecPerMin
)

// Validated operating envelope of dmath.RampLength; config validation
// rejects machines outside it rather than silently degrading
const (
	AccelerationMin = 10      // mm/s²
	AccelerationMax = 10000   // mm/s²
	StepsPerMMin    = 2000    // steps/m
	StepsPerMMax    = 4096000 // steps/m

	// FeedrateMax is the hard cap: feedrate² must fit in 32 bits
	FeedrateMax = 65535 // mm/min
)

// Defaults for a common belt-driven Cartesian frame: 16x microstepped
// GT2-20 XY (80 steps/mm), leadscrew Z (320 steps/mm)
const (
	DefaultAcceleration = 50     // mm/s²
	DefaultStepsPerM    = 80000  // steps/m, X and Y
	DefaultZStepsPerM   = 320000 // steps/m
	DefaultMaxFeedrate  = 24000  // mm/min
	DefaultHomeFeedrate = 3000   // mm/min
	DefaultTravelUm     = 200000 // 200 mm of travel per axis
)
