package service

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"carbon-predictor/domain"
	"carbon-predictor/model"
)

// ModelDescriber is the metadata side of a loaded model.
type ModelDescriber interface {
	Name() string
	Kind() model.Kind
	Source() string
	Fingerprint() string
	FeatureNames() []string
}

// ModelInfoService reads the free-text description and comparison table
// published next to the model artifact.
type ModelInfoService struct {
	comparisonPath string
	infoPaths      []string
	logger         zerolog.Logger
}

func NewModelInfoService(comparisonPath string, infoPaths []string, logger zerolog.Logger) *ModelInfoService {
	return &ModelInfoService{
		comparisonPath: comparisonPath,
		infoPaths:      infoPaths,
		logger:         logger,
	}
}

// Describe returns the model metadata, plus description and comparison when readable.
func (s *ModelInfoService) Describe(m ModelDescriber) domain.ModelInfo {
	info := domain.ModelInfo{
		Name:         m.Name(),
		Kind:         string(m.Kind()),
		Source:       m.Source(),
		Fingerprint:  m.Fingerprint(),
		FeatureNames: m.FeatureNames(),
	}

	desc, table, err := s.Read()
	if err != nil {
		s.logger.Warn().Err(err).Msg("model info not shown")
		return info
	}

	info.Description = desc
	info.Comparison = table
	return info
}

// Read loads the description from the first readable info path and the
// optional comparison table. It fails only when neither is available.
func (s *ModelInfoService) Read() (string, *domain.ComparisonTable, error) {
	var errs []error

	table, err := readComparison(s.comparisonPath)
	if err != nil {
		errs = append(errs, err)
	}

	desc, err := s.readDescription()
	if err != nil {
		errs = append(errs, err)
	}

	if table == nil && desc == "" {
		return "", nil, fmt.Errorf("%w: %w", ErrModelInfoUnavailable, errors.Join(errs...))
	}
	for _, e := range errs {
		s.logger.Debug().Err(e).Msg("model info source skipped")
	}
	return desc, table, nil
}

func (s *ModelInfoService) readDescription() (string, error) {
	if len(s.infoPaths) == 0 {
		return "", errors.New("no model info paths configured")
	}

	var errs []error
	for _, path := range s.infoPaths {
		data, err := os.ReadFile(path)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		return string(data), nil
	}
	return "", errors.Join(errs...)
}

func readComparison(path string) (*domain.ComparisonTable, error) {
	if path == "" {
		return nil, errors.New("no model comparison path configured")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: empty comparison table", path)
	}

	return &domain.ComparisonTable{
		Columns: records[0],
		Rows:    records[1:],
	}, nil
}
