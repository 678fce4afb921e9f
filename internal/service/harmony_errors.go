package service

import "errors"

// Validation errors are returned before any corpus call and always name
// the offending value.
var (
	ErrInvalidNote       = errors.New("invalid note")
	ErrInvalidCategory   = errors.New("invalid chord category")
	ErrInvalidMode       = errors.New("invalid mode")
	ErrInvalidGroupID    = errors.New("invalid scale group id")
	ErrInvalidNotesInput = errors.New("invalid notes input")
	ErrInvalidScaleType  = errors.New("invalid scale type")
	ErrInvalidSubsetSize = errors.New("invalid subset size")
)

var (
	// ErrStorageUnavailable wraps any corpus failure, timeouts included.
	ErrStorageUnavailable = errors.New("corpus storage unavailable")
	// ErrReconstructionFailure marks a stored row that could not be spelled
	// back into a chord or scale.
	ErrReconstructionFailure = errors.New("failed to reconstruct harmonic object")
)

// IsValidationError reports whether err was caused by caller input.
func IsValidationError(err error) bool {
	for _, target := range []error{
		ErrInvalidNote, ErrInvalidCategory, ErrInvalidMode, ErrInvalidGroupID,
		ErrInvalidNotesInput, ErrInvalidScaleType, ErrInvalidSubsetSize,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
