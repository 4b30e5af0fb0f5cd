// Package repository contains data access layer abstractions.
// Implementations live in subpackages (mongo, postgres) inside this directory.
package repository

import "errors"

var (
	// ErrNotFound is returned when a filter matches no row or document. Malformed
	// identifiers are reported the same way.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when a unique key is already taken.
	ErrDuplicate = errors.New("duplicate key")
)
