package generator

import "errors"

var (
	// ErrFormatNotFound is returned when a format is not registered
	ErrFormatNotFound = errors.New("format not found")

	// ErrFormatAlreadyExists is returned when registering a duplicate format
	ErrFormatAlreadyExists = errors.New("format already exists")

	// ErrInvalidFormatID is returned when a format ID is empty
	ErrInvalidFormatID = errors.New("invalid format ID")

	// ErrInvalidEmitter is returned when a format has no emitter
	ErrInvalidEmitter = errors.New("invalid emitter")
)
