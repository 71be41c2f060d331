package service

import "errors"

var (
	ErrInvalidStatus     = errors.New("invalid vacation status")
	ErrInvalidMonth      = errors.New("month must be between 1 and 12")
	ErrEmptyEmployeeName = errors.New("employee name is empty")
	ErrRequestNotFound   = errors.New("vacation request not found")
	ErrUserNotFound      = errors.New("user not found")
)
