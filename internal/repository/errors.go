// Package repository is the store handle for venues, artists and shows.
// Reads go straight to the database; every mutation runs inside a single
// transaction so that callers never observe partial writes.
package repository

import "errors"

// ErrNotFound is returned when the requested id has no matching row.
// Detail views and edit submissions both translate it into a 404 page.
var ErrNotFound = errors.New("not found")

// ErrConflict is returned when a delete cannot proceed because other rows
// still depend on the target, e.g. a venue that has shows booked.
var ErrConflict = errors.New("conflict")

// ErrDanglingReference is returned when a show would point at an artist
// or venue that does not exist.
var ErrDanglingReference = errors.New("dangling reference")
