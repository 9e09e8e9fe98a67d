package repository

import "errors"

// ErrNotFound is returned when a filter matched no document owned by the
// caller. Handlers translate it to a 404.
var ErrNotFound = errors.New("document not found")

// ErrNoChange is returned when an update matched but modified nothing.
var ErrNoChange = errors.New("no changes made")
