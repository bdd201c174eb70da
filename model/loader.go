package model

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// LoadFile reads, decodes and validates a single artifact.
func LoadFile(path string, expected []string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	a, err := DecodeArtifact(path, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	sum := sha256.Sum256(data)
	m, err := New(a, expected, path, hex.EncodeToString(sum[:8]))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// Load tries each candidate path in order and returns the first model that
// loads. When every candidate fails the joined errors are wrapped in
// ErrModelUnavailable.
func Load(paths []string, expected []string, logger zerolog.Logger) (*Model, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: no model sources configured", ErrModelUnavailable)
	}

	var errs []error
	for _, path := range paths {
		m, err := LoadFile(path, expected)
		if err != nil {
			logger.Warn().Err(err).Str("path", path).Msg("model candidate rejected")
			errs = append(errs, err)
			continue
		}

		logger.Info().
			Str("path", path).
			Str("name", m.Name()).
			Str("kind", string(m.Kind())).
			Str("fingerprint", m.Fingerprint()).
			Msg("model loaded")
		return m, nil
	}

	return nil, fmt.Errorf("%w: %w", ErrModelUnavailable, errors.Join(errs...))
}
