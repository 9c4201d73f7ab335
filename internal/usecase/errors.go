package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
	// ErrSameFranchise rejects head-to-head requests whose two sides expand
	// to overlapping lineage groups: a franchise has no record against its
	// own history.
	ErrSameFranchise = errors.New("teams belong to the same franchise")
)
