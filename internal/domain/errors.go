package domain

import "errors"

// ErrInvalidArgument indicates malformed input to an estimator, generator or sampler.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrNotFound indicates that a stored dataset or report does not exist.
var ErrNotFound = errors.New("not found")
