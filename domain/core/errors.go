package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Parameter errors
	ErrInvalidStdDev   = errors.New("invalid demand standard deviation")
	ErrDegenerateCosts = errors.New("underage plus overage cost is zero")
	ErrInvalidRatio    = errors.New("critical ratio outside (0,1)")

	// Evaluation input errors
	ErrInvalidProbability = errors.New("probability outside (0,1)")
	ErrNegativeQuantity   = errors.New("negative order quantity")
	ErrInvalidSimConfig   = errors.New("invalid simulation configuration")
	ErrInvalidSweepConfig = errors.New("invalid sweep configuration")
)

// Error constructors with context
func NewValidationError(sentinel error, detail string) error {
	return fmt.Errorf("%w: %s", sentinel, detail)
}

func NewSimulationError(stage string, err error) error {
	return fmt.Errorf("simulation failed at %s: %w", stage, err)
}

// Error checking helpers
func IsParameterError(err error) bool {
	return errors.Is(err, ErrInvalidStdDev) ||
		errors.Is(err, ErrDegenerateCosts) ||
		errors.Is(err, ErrInvalidRatio)
}

func IsInputError(err error) bool {
	return errors.Is(err, ErrInvalidProbability) ||
		errors.Is(err, ErrNegativeQuantity) ||
		errors.Is(err, ErrInvalidSimConfig) ||
		errors.Is(err, ErrInvalidSweepConfig)
}
