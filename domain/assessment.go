package domain

type Bucket string

const (
	BucketLow    Bucket = "low"
	BucketMedium Bucket = "medium"
	BucketHigh   Bucket = "high"
)

type PredictionResult struct {
	Emission              float64 `json:"emission"`
	YearlyProjection      float64 `json:"yearly_projection"`
	TreesToOffset         int     `json:"trees_to_offset"`
	DeltaVsNationalAvgPct float64 `json:"delta_vs_national_avg_pct"`
}

type Breakdown struct {
	Grocery        float64 `json:"grocery"`
	Transportation float64 `json:"transportation"`
	Electronics    float64 `json:"electronics"`
	Fashion        float64 `json:"fashion"`
}

// Total is the sum of the four categories. It is not the model prediction.
func (b Breakdown) Total() float64 {
	return b.Grocery + b.Transportation + b.Electronics + b.Fashion
}

// CategoryShare is one slice of the breakdown chart.
type CategoryShare struct {
	Category string  `json:"category"`
	Value    float64 `json:"value"`
	Percent  float64 `json:"percent"`
}

type GaugeZone struct {
	From  float64 `json:"from"`
	To    float64 `json:"to"`
	Color string  `json:"color"`
}

type Gauge struct {
	Min   float64     `json:"min"`
	Max   float64     `json:"max"`
	Value float64     `json:"value"`
	Zones []GaugeZone `json:"zones"`
}

type ComparisonBar struct {
	Label    string  `json:"label"`
	Emission float64 `json:"emission"`
}

// Assessment is everything rendered for one submitted form.
type Assessment struct {
	Input           LifestyleInput   `json:"input"`
	Adjustments     []Adjustment     `json:"adjustments,omitempty"`
	Prediction      PredictionResult `json:"prediction"`
	Bucket          Bucket           `json:"bucket"`
	Summary         string           `json:"summary"`
	Breakdown       Breakdown        `json:"breakdown"`
	Shares          []CategoryShare  `json:"shares"`
	Recommendations []string         `json:"recommendations"`
	Gauge           Gauge            `json:"gauge"`
	Comparison      []ComparisonBar  `json:"comparison"`
}
