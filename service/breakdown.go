package service

import "carbon-predictor/domain"

// EstimateBreakdown attributes emissions to categories with fixed factors.
// The result is independent of the model and need not add up to its prediction.
func EstimateBreakdown(in domain.LifestyleInput) domain.Breakdown {
	return domain.Breakdown{
		Grocery:        float64(in.MonthlyGroceryBill) * GroceryFactor,
		Transportation: float64(in.VehicleMonthlyDistanceKm) * TransportationFactor,
		Electronics:    float64(in.ScreenHours()) * ElectronicsFactor,
		Fashion:        float64(in.NewClothesMonthly) * FashionFactor,
	}
}

// Shares converts a breakdown into chart slices. A zero total gives zero percentages.
func Shares(b domain.Breakdown) []domain.CategoryShare {
	shares := []domain.CategoryShare{
		{Category: "Grocery", Value: b.Grocery},
		{Category: "Transportation", Value: b.Transportation},
		{Category: "Electronics", Value: b.Electronics},
		{Category: "Fashion", Value: b.Fashion},
	}

	total := b.Total()
	if total == 0 {
		return shares
	}
	for i := range shares {
		shares[i].Percent = roundTo2Decimals(shares[i].Value / total * 100)
	}
	return shares
}
