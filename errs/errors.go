// Package errs defines the sentinel errors returned by rvjitter packages.
//
// Callers branch on error kind with errors.Is:
//
//	est, err := target.RV()
//	if errors.Is(err, errs.ErrNoApplicableModel) {
//	    // supply temperature together with gravity or luminosity
//	}
package errs

import (
	"errors"
	"fmt"
)

// Configuration errors. All of them are terminal: no partial estimate is produced.
var (
	// ErrInsufficientInputs is returned when neither an explicit giant flag, nor log(g),
	// nor the full luminosity/mass/temperature triple is available to pick a branch.
	ErrInsufficientInputs = errors.New("insufficient inputs to determine the giant/dwarf branch")
	// ErrNoApplicableModel is returned when the supplied inputs satisfy none of the four models.
	ErrNoApplicableModel = errors.New("input data does not apply to any of the four models")
	// ErrMissingCoefficient is returned when the coefficient table lacks a required name.
	ErrMissingCoefficient = errors.New("missing coefficient")
)

// Input validation errors.
var (
	ErrInvalidMeasurement      = errors.New("invalid measurement")
	ErrInvalidCorrectionFactor = errors.New("correction factor must be finite and positive")
	ErrInvalidSampleSize       = errors.New("sample size must be positive")
	ErrInvalidClipSigma        = errors.New("clip sigma must be finite and positive")
	ErrNoFiniteSamples         = errors.New("no finite Monte Carlo samples")
)

// Coefficient table errors.
var (
	ErrInvalidTable         = errors.New("invalid coefficient table")
	ErrDuplicateCoefficient = errors.New("duplicate coefficient name")
	ErrEmptyCoefficientName = errors.New("empty coefficient name")
	ErrUnsupportedTableType = errors.New("unsupported coefficient table type")
)

// MissingCoefficientError reports the exact table name that could not be found.
type MissingCoefficientError struct {
	Name string
}

func (e *MissingCoefficientError) Error() string {
	return fmt.Sprintf("%s: %q", ErrMissingCoefficient, e.Name)
}

// Unwrap makes errors.Is(err, ErrMissingCoefficient) hold.
func (e *MissingCoefficientError) Unwrap() error {
	return ErrMissingCoefficient
}
