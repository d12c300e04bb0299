package domain

import "errors"

var (
	// ErrEmptySpec is returned when a Spec has no configs or strides to sweep.
	ErrEmptySpec = errors.New("experiment spec has no configs or strides")

	// ErrInvalidIterations is returned when Spec.Iterations is less than 1.
	ErrInvalidIterations = errors.New("experiment spec must run at least one iteration")

	// ErrVerificationFailed is returned when a built array fails Verify.
	ErrVerificationFailed = errors.New("built array failed verification")

	// ErrReportNotFound is returned when a requested report doesn't exist
	// in the store.
	ErrReportNotFound = errors.New("report not found")
)
