package service

import "carbon-predictor/domain"

// Classify buckets a predicted emission. Both 1500 and 3000 are Medium.
func Classify(emission float64) domain.Bucket {
	switch {
	case emission < LowThreshold:
		return domain.BucketLow
	case emission <= HighThreshold:
		return domain.BucketMedium
	default:
		return domain.BucketHigh
	}
}

var bucketSummaries = map[domain.Bucket]string{
	domain.BucketLow:    "Excellent! Your carbon footprint is low. Keep up the great work!",
	domain.BucketMedium: "Moderate Impact. Consider these improvements:",
	domain.BucketHigh:   "High Impact! Urgent action recommended:",
}

// Summary returns the headline shown above the recommendations.
func Summary(b domain.Bucket) string {
	return bucketSummaries[b]
}
