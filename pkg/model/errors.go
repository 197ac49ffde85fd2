package model

import (
	"errors"
)

var (
	ErrAlreadyExists = errors.New("object already exists")
	ErrNotFound      = errors.New("not found")
	ErrConflict      = errors.New("invalid state transition")
)
