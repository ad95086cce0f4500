package repository

import "errors"

var (
	ErrInvalidStateData = errors.New("invalid notification state data")
)
