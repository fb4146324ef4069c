package models

import "errors"

// Validation errors. Services map these to invalid-argument responses.
var (
	ErrNameRequired     = errors.New("name is required")
	ErrNameTooLong      = errors.New("name is too long")
	ErrInvalidEmail     = errors.New("invalid email address")
	ErrItemNameRequired = errors.New("item name is required")
	ErrInvalidAmount    = errors.New("amount must be greater than zero with at most two decimal places")
	ErrAmountTooLarge   = errors.New("amount exceeds 12 digits")
	ErrNegativeShare    = errors.New("share amount must be zero or greater with at most two decimal places")
	ErrDuplicateShare   = errors.New("participant has more than one share in the same expense")
	ErrMissingShareUser = errors.New("share is missing a participant")
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidPeriod    = errors.New("period must be one of day, week, month, all")
	ErrInvalidRange     = errors.New("start date is after end date")
	ErrConflictingSplit = errors.New("use either split_among or shares, not both")
)

var validationErrors = []error{
	ErrNameRequired, ErrNameTooLong, ErrInvalidEmail, ErrItemNameRequired,
	ErrInvalidAmount, ErrAmountTooLarge, ErrNegativeShare, ErrDuplicateShare,
	ErrMissingShareUser, ErrInvalidDate, ErrInvalidPeriod, ErrInvalidRange,
	ErrConflictingSplit,
}

// IsValidation reports whether err wraps one of the validation errors above.
func IsValidation(err error) bool {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
