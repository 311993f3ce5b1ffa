package service

const (
	MaxPrincipal    = 1_000_000_000.0 // hard cap on loan amount
	MaxAnnualRate   = 1000.0          // nominal annual, percent
	MaxTermYears    = 50
	MaxExtraPayment = 100_000_000.0

	// BalancePaidOffThreshold is the epsilon below which a remaining
	// balance counts as fully paid.
	BalancePaidOffThreshold = 0.01

	// IterationSafetyFactor bounds the schedule length relative to the
	// nominal term; FallbackMaxIterations applies when the nominal term
	// is unknown.
	IterationSafetyFactor = 2
	FallbackMaxIterations = 10000
)
