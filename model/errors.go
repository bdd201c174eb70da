package model

import "errors"

var (
	// ErrModelUnavailable means no candidate artifact could be loaded.
	ErrModelUnavailable = errors.New("model unavailable")
	// ErrSchemaMismatch means the feature vector does not match what the model was trained on.
	ErrSchemaMismatch = errors.New("feature schema mismatch")
	// ErrInvalidArtifact means the artifact decoded but describes an unusable model.
	ErrInvalidArtifact = errors.New("invalid model artifact")
)
