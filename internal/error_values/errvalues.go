package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")

	ErrValidation     = errors.New("validation failed")
	ErrEntryNotFound  = errors.New("entry doesn't exist")
	ErrStreakNotFound = errors.New("streak doesn't exist")

	ErrFeatureDisabled = errors.New("feature is not configured")
	ErrNoPhone         = errors.New("user has no phone number")
	ErrLockTimeout     = errors.New("timed out waiting for lock")
	ErrTipGeneration   = errors.New("generating tip error")
)
