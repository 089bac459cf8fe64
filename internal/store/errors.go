package store

import "errors"

// ErrNotFound indicates a calendar or event lookup matched no row.
var ErrNotFound = errors.New("record not found")
