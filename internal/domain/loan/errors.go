package loan

import "errors"

var (
	ErrNotFound                  = errors.New("loan not found")
	ErrInvalidArgument           = errors.New("invalid loan input")
	ErrInvalidTransition         = errors.New("invalid loan status transition")
	ErrDuplicateActiveApplication = errors.New("owner already has an active loan application")
)
