package service

import "carbon-predictor/domain"

// AssembleFeatures returns the model input vector in domain.FeatureNames order.
func AssembleFeatures(in domain.LifestyleInput) []float64 {
	return []float64{
		float64(in.MonthlyGroceryBill),
		float64(in.VehicleMonthlyDistanceKm),
		float64(in.TVPCDailyHours),
		float64(in.NewClothesMonthly),
		float64(in.InternetDailyHours),
	}
}
