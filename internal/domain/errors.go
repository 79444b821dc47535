package domain

import "errors"

var (
	ErrTaskNotFound   = errors.New("task not found")
	ErrStreakNotFound = errors.New("streak not found")
	ErrTokenNotFound  = errors.New("token not recognized")
	ErrInvalidMode    = errors.New("invalid session mode")
)
