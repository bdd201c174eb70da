package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type Kind string

const (
	KindLinear       Kind = "linear"
	KindTreeEnsemble Kind = "tree_ensemble"
)

const (
	AggregationMean = "mean"
	AggregationSum  = "sum"
)

// Artifact is the on-disk description of a trained regressor.
type Artifact struct {
	Name         string    `json:"name" yaml:"name"`
	Kind         Kind      `json:"kind" yaml:"kind"`
	FeatureNames []string  `json:"feature_names" yaml:"feature_names"`
	Intercept    float64   `json:"intercept" yaml:"intercept"`
	Coefficients []float64 `json:"coefficients" yaml:"coefficients"`
	Aggregation  string    `json:"aggregation" yaml:"aggregation"`
	BaseScore    float64   `json:"base_score" yaml:"base_score"`
	// LearningRate scales the summed trees. Zero is read as 1.
	LearningRate float64 `json:"learning_rate" yaml:"learning_rate"`
	Trees        []Tree  `json:"trees" yaml:"trees"`
}

type Tree struct {
	Nodes []Node `json:"nodes" yaml:"nodes"`
}

// Node is a split or, when both children are -1, a leaf.
type Node struct {
	Feature   int     `json:"feature" yaml:"feature"`
	Threshold float64 `json:"threshold" yaml:"threshold"`
	Left      int     `json:"left" yaml:"left"`
	Right     int     `json:"right" yaml:"right"`
	Value     float64 `json:"value" yaml:"value"`
}

func (n Node) isLeaf() bool {
	return n.Left == -1 && n.Right == -1
}

// DecodeArtifact parses data according to the extension of path.
func DecodeArtifact(path string, data []byte) (Artifact, error) {
	var a Artifact

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&a); err != nil {
			return Artifact{}, fmt.Errorf("%w: decoding json: %v", ErrInvalidArtifact, err)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&a); err != nil {
			return Artifact{}, fmt.Errorf("%w: decoding yaml: %v", ErrInvalidArtifact, err)
		}
	default:
		return Artifact{}, fmt.Errorf("%w: unsupported artifact extension %q", ErrInvalidArtifact, ext)
	}

	return a, nil
}

// Validate checks the artifact against the expected feature schema and its own structure.
func (a Artifact) Validate(expected []string) error {
	if err := checkSchema(a.FeatureNames, expected); err != nil {
		return err
	}

	n := len(a.FeatureNames)

	switch a.Kind {
	case KindLinear:
		if len(a.Coefficients) != n {
			return fmt.Errorf("%w: %d coefficients for %d features", ErrInvalidArtifact, len(a.Coefficients), n)
		}
	case KindTreeEnsemble:
		if a.Aggregation != AggregationMean && a.Aggregation != AggregationSum {
			return fmt.Errorf("%w: unknown aggregation %q", ErrInvalidArtifact, a.Aggregation)
		}
		if len(a.Trees) == 0 {
			return fmt.Errorf("%w: tree ensemble has no trees", ErrInvalidArtifact)
		}
		for i, t := range a.Trees {
			if err := t.validate(n); err != nil {
				return fmt.Errorf("%w: tree %d: %v", ErrInvalidArtifact, i, err)
			}
		}
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidArtifact, a.Kind)
	}

	return nil
}

func checkSchema(got, want []string) error {
	if len(got) != len(want) {
		return fmt.Errorf("%w: artifact declares %d features, want %d", ErrSchemaMismatch, len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			return fmt.Errorf("%w: feature %d is %q, want %q", ErrSchemaMismatch, i, got[i], want[i])
		}
	}
	return nil
}

// validate requires every child index to be greater than its parent so
// evaluation always terminates.
func (t Tree) validate(numFeatures int) error {
	if len(t.Nodes) == 0 {
		return fmt.Errorf("no nodes")
	}
	for i, n := range t.Nodes {
		if n.isLeaf() {
			continue
		}
		if n.Feature < 0 || n.Feature >= numFeatures {
			return fmt.Errorf("node %d: feature index %d out of range", i, n.Feature)
		}
		for _, child := range []int{n.Left, n.Right} {
			if child <= i || child >= len(t.Nodes) {
				return fmt.Errorf("node %d: child index %d out of range", i, child)
			}
		}
	}
	return nil
}
