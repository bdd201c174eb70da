package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carbon-predictor/domain"
	"carbon-predictor/model"
	"carbon-predictor/service"
)

const linearModel = `{
  "name": "LinearRegression",
  "kind": "linear",
  "feature_names": [
    "Monthly Grocery Bill",
    "Vehicle Monthly Distance Km",
    "How Long TV PC Daily Hour",
    "How Many New Clothes Monthly",
    "How Long Internet Daily Hour"
  ],
  "intercept": 200,
  "coefficients": [0.25, 1.1, 25, 30, 20]
}`

func setupEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	modelPath := filepath.Join(dir, "model.json")
	require.NoError(t, os.WriteFile(modelPath, []byte(linearModel), 0o644))
	infoPath := filepath.Join(dir, "model_info.txt")
	require.NoError(t, os.WriteFile(infoPath, []byte("Test R2: 0.91\n"), 0o644))
	csvPath := filepath.Join(dir, "model_comparison.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("Model,R2\nLinearRegression,0.91\n"), 0o644))

	t.Setenv("CARBON_MODEL_PATHS", filepath.Join(dir, "best_model.json")+","+modelPath)
	t.Setenv("CARBON_MODEL_INFO_PATHS", infoPath)
	t.Setenv("CARBON_MODEL_COMPARISON_PATH", csvPath)
	t.Setenv("CARBON_CACHE_BACKEND", "none")
	t.Setenv("CARBON_LOG_FORMAT", "json")
	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestPredictCmd_JSON(t *testing.T) {
	setupEnv(t)

	out, err := run(t, "predict", "--json")
	require.NoError(t, err)

	var got domain.Assessment
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, domain.DefaultLifestyleInput(), got.Input)
	assert.Equal(t, 1605.0, got.Prediction.Emission)
	assert.Equal(t, domain.BucketMedium, got.Bucket)
}

func TestPredictCmd_AllRulesFire(t *testing.T) {
	setupEnv(t)

	out, err := run(t, "predict",
		"--grocery", "6000", "--distance", "1500", "--tv-hours", "8",
		"--clothes", "15", "--internet-hours", "5")
	require.NoError(t, err)

	assert.Contains(t, out, "HIGH")
	assert.Contains(t, out, service.TipTransport)
	assert.Contains(t, out, service.TipScreenTime)
	assert.Contains(t, out, service.TipFashion)
	assert.Contains(t, out, service.TipLocalFood)
	assert.Contains(t, out, "4,100 units")
}

func TestModelCmd(t *testing.T) {
	setupEnv(t)

	out, err := run(t, "model")
	require.NoError(t, err)
	assert.Contains(t, out, "LinearRegression")
	assert.Contains(t, out, "Vehicle Monthly Distance Km")
	assert.Contains(t, out, "Test R2: 0.91")
	assert.Contains(t, out, "Model | R2")
}

func TestPredictCmd_NoModelIsFatal(t *testing.T) {
	dir := setupEnv(t)
	t.Setenv("CARBON_MODEL_PATHS", filepath.Join(dir, "missing.json"))

	_, err := run(t, "predict")
	assert.ErrorIs(t, err, model.ErrModelUnavailable)
}
