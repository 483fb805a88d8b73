package asset

import "errors"

// Asset domain errors
var (
	ErrAssetNotFound      = errors.New("asset not found")
	ErrAssignmentNotFound = errors.New("asset assignment not found")
)
