package core

import "errors"

// Configuration errors. These are rejected before any ray is traced.
var (
	ErrZeroVector        = errors.New("zero-length vector cannot be normalized")
	ErrDegenerateCamera  = errors.New("camera direction is parallel to up vector")
	ErrInvalidCamera     = errors.New("camera field of view must be in (0, pi) and aspect ratio positive")
	ErrInvalidAntialias  = errors.New("antialias factor must be positive")
	ErrInvalidResolution = errors.New("image width and height must be positive")
	ErrInvalidMaterial   = errors.New("invalid material")
)

// Epsilon offsets secondary ray origins along the surface normal to avoid self-intersection
const Epsilon = 1e-4
