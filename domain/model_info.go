package domain

// ComparisonTable is the model comparison CSV as read from disk.
type ComparisonTable struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

type ModelInfo struct {
	Name         string           `json:"name"`
	Kind         string           `json:"kind"`
	Source       string           `json:"source"`
	Fingerprint  string           `json:"fingerprint"`
	FeatureNames []string         `json:"feature_names"`
	Description  string           `json:"description,omitempty"`
	Comparison   *ComparisonTable `json:"comparison,omitempty"`
}
