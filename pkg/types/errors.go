// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "errors"

// Error kinds. Conversion errors wrap exactly one of these so callers can
// classify them with errors.Is.
var (
	// ErrInputNotFound means the input file is missing or unreadable. It
	// aborts a run before any record is processed.
	ErrInputNotFound = errors.New("input not found")

	// ErrValidation means a record lacks the fields needed to convert it.
	ErrValidation = errors.New("validation failed")

	// ErrRender means the note document could not be composed.
	ErrRender = errors.New("render failed")

	// ErrWrite means the note file could not be written.
	ErrWrite = errors.New("write failed")
)
