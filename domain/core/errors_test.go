package core

import (
	"fmt"
	"testing"
)

func TestErrorClassification(t *testing.T) {
	wrapped := fmt.Errorf("solve: %w", ErrInvalidRatio)
	if !IsParameterError(wrapped) {
		t.Errorf("wrapped ErrInvalidRatio not classified as parameter error")
	}
	if IsInputError(wrapped) {
		t.Errorf("ErrInvalidRatio misclassified as input error")
	}

	sim := NewSimulationError("demand draw", ErrInvalidSimConfig)
	if !IsInputError(sim) {
		t.Errorf("wrapped ErrInvalidSimConfig not classified as input error")
	}
	if IsParameterError(sim) {
		t.Errorf("ErrInvalidSimConfig misclassified as parameter error")
	}
}

func TestNewValidationErrorWrapsSentinel(t *testing.T) {
	err := NewValidationError(ErrInvalidStdDev, "-2")
	if !IsParameterError(err) {
		t.Errorf("NewValidationError lost the sentinel: %v", err)
	}
	if got, want := err.Error(), "invalid demand standard deviation: -2"; got != want {
		t.Errorf("message = %q, want %q", got, want)
	}
}
