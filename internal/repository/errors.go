package repository

import "errors"

// ErrDuplicate is returned by Save when a unique key already exists.
var ErrDuplicate = errors.New("duplicate key")
