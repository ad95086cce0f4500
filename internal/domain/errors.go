package domain

import "errors"

var (
	ErrStateNotFound  = errors.New("notification state not found")
	ErrUserNotFound   = errors.New("user not found")
	ErrDeviceNotFound = errors.New("device not found")
)
