package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrPasswordTooShort    = errors.New("password must be at least 6 characters")
	ErrWrongPassword       = errors.New("wrong password")
	ErrUserInactive        = errors.New("user account is deactivated")
)
