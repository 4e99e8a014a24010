package user

import "errors"

var (
	ErrUserNotFound = errors.New("user not found")
	ErrInactiveUser = errors.New("user is inactive")
)
