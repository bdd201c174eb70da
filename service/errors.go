package service

import "errors"

var (
	ErrInvalidPrediction    = errors.New("model returned an invalid prediction")
	ErrModelInfoUnavailable = errors.New("model info unavailable")
)
