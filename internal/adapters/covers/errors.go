package covers

import "errors"

var (
	// ErrTooLarge is returned when a cover exceeds the configured size limit
	ErrTooLarge = errors.New("cover exceeds maximum image size")
	// ErrInvalidKey is returned for keys that would escape the covers location
	ErrInvalidKey = errors.New("invalid cover key")
)
