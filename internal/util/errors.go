package util

import "errors"

var (
	ErrMemberNotFound       = errors.New("member not found")
	ErrEmailRegistered      = errors.New("email already registered")
	ErrCheckoutNotAttempted = errors.New("checkout not attempted before check-in")
	ErrCheckinNotAttempted  = errors.New("check-in not attempted before checkout")
	ErrTimeCheckNotFound    = errors.New("time check record not found")
	ErrInvalidTimeFormat    = errors.New("invalid HH:mm:ss time format")
	ErrInvalidDateFormat    = errors.New("invalid yyyy-MM-dd date format")
)
