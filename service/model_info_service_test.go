package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carbon-predictor/domain"
	"carbon-predictor/model"
)

type stubModel struct{}

func (stubModel) Name() string           { return "LinearRegression" }
func (stubModel) Kind() model.Kind       { return model.KindLinear }
func (stubModel) Source() string         { return "models/model.json" }
func (stubModel) Fingerprint() string    { return "abc" }
func (stubModel) FeatureNames() []string { return domain.FeatureNames() }

func TestModelInfoService_FallsBackToSecondInfoFile(t *testing.T) {
	dir := t.TempDir()
	info := filepath.Join(dir, "model_info.txt")
	require.NoError(t, os.WriteFile(info, []byte("R2: 0.91\n"), 0o644))

	svc := NewModelInfoService(
		filepath.Join(dir, "model_comparison.csv"),
		[]string{filepath.Join(dir, "best_model_info.txt"), info},
		zerolog.Nop(),
	)

	desc, table, err := svc.Read()
	require.NoError(t, err)
	assert.Equal(t, "R2: 0.91\n", desc)
	assert.Nil(t, table)
}

func TestModelInfoService_ReadsComparisonTable(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "model_comparison.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("Model,R2\nLinear,0.91\nForest,0.95\n"), 0o644))

	svc := NewModelInfoService(csvPath, nil, zerolog.Nop())

	_, table, err := svc.Read()
	require.NoError(t, err)
	require.NotNil(t, table)
	assert.Equal(t, []string{"Model", "R2"}, table.Columns)
	assert.Equal(t, [][]string{{"Linear", "0.91"}, {"Forest", "0.95"}}, table.Rows)
}

func TestModelInfoService_NothingReadable(t *testing.T) {
	dir := t.TempDir()
	svc := NewModelInfoService(filepath.Join(dir, "x.csv"), []string{filepath.Join(dir, "x.txt")}, zerolog.Nop())

	_, _, err := svc.Read()
	assert.ErrorIs(t, err, ErrModelInfoUnavailable)

	info := svc.Describe(stubModel{})
	assert.Equal(t, "LinearRegression", info.Name)
	assert.Equal(t, "linear", info.Kind)
	assert.Empty(t, info.Description)
	assert.Nil(t, info.Comparison)
}
