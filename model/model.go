package model

import (
	"fmt"
	"slices"
)

// Model is a loaded regressor. It is immutable and safe for concurrent use.
type Model struct {
	name        string
	kind        Kind
	source      string
	fingerprint string
	features    []string
	eval        func(x []float64) float64
}

// New validates a and builds the evaluator for it.
func New(a Artifact, expected []string, source, fingerprint string) (*Model, error) {
	if err := a.Validate(expected); err != nil {
		return nil, err
	}

	m := &Model{
		name:        a.Name,
		kind:        a.Kind,
		source:      source,
		fingerprint: fingerprint,
		features:    slices.Clone(a.FeatureNames),
	}

	switch a.Kind {
	case KindLinear:
		m.eval = linear(a.Intercept, slices.Clone(a.Coefficients))
	case KindTreeEnsemble:
		m.eval = ensemble(a)
	}

	return m, nil
}

func (m *Model) Name() string           { return m.name }
func (m *Model) Kind() Kind             { return m.kind }
func (m *Model) Source() string         { return m.source }
func (m *Model) Fingerprint() string    { return m.fingerprint }
func (m *Model) FeatureNames() []string { return slices.Clone(m.features) }

// Predict evaluates the model on one feature vector.
func (m *Model) Predict(x []float64) (float64, error) {
	if len(x) != len(m.features) {
		return 0, fmt.Errorf("%w: got %d features, want %d", ErrSchemaMismatch, len(x), len(m.features))
	}
	return m.eval(x), nil
}

func linear(intercept float64, coef []float64) func([]float64) float64 {
	return func(x []float64) float64 {
		y := intercept
		for i, c := range coef {
			y += c * x[i]
		}
		return y
	}
}

func ensemble(a Artifact) func([]float64) float64 {
	trees := make([]Tree, len(a.Trees))
	for i, t := range a.Trees {
		trees[i] = Tree{Nodes: slices.Clone(t.Nodes)}
	}

	if a.Aggregation == AggregationMean {
		return func(x []float64) float64 {
			var sum float64
			for _, t := range trees {
				sum += t.eval(x)
			}
			return sum / float64(len(trees))
		}
	}

	rate := a.LearningRate
	if rate == 0 {
		rate = 1
	}
	base := a.BaseScore
	return func(x []float64) float64 {
		var sum float64
		for _, t := range trees {
			sum += t.eval(x)
		}
		return base + rate*sum
	}
}

func (t Tree) eval(x []float64) float64 {
	i := 0
	for {
		n := t.Nodes[i]
		if n.isLeaf() {
			return n.Value
		}
		if x[n.Feature] <= n.Threshold {
			i = n.Left
		} else {
			i = n.Right
		}
	}
}
