package service

import "carbon-predictor/domain"

// ClampInput forces every field into its accepted range and reports what changed.
func ClampInput(in domain.LifestyleInput) (domain.LifestyleInput, []domain.Adjustment) {
	var adjustments []domain.Adjustment

	clamp := func(field string, v *int, max int) {
		orig := *v
		switch {
		case *v < 0:
			*v = 0
		case *v > max:
			*v = max
		default:
			return
		}
		adjustments = append(adjustments, domain.Adjustment{Field: field, From: orig, To: *v})
	}

	clamp("monthly_grocery_bill", &in.MonthlyGroceryBill, MaxGroceryBill)
	clamp("vehicle_monthly_distance_km", &in.VehicleMonthlyDistanceKm, MaxVehicleDistance)
	clamp("tv_pc_daily_hours", &in.TVPCDailyHours, MaxDailyHours)
	clamp("new_clothes_monthly", &in.NewClothesMonthly, MaxNewClothes)
	clamp("internet_daily_hours", &in.InternetDailyHours, MaxDailyHours)

	return in, adjustments
}
