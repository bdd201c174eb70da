package domain

// LifestyleInput holds the five habits the model was trained on.
type LifestyleInput struct {
	MonthlyGroceryBill       int `json:"monthly_grocery_bill"`
	VehicleMonthlyDistanceKm int `json:"vehicle_monthly_distance_km"`
	TVPCDailyHours           int `json:"tv_pc_daily_hours"`
	NewClothesMonthly        int `json:"new_clothes_monthly"`
	InternetDailyHours       int `json:"internet_daily_hours"`
}

// DefaultLifestyleInput returns the values the input form starts with.
func DefaultLifestyleInput() LifestyleInput {
	return LifestyleInput{
		MonthlyGroceryBill:       2000,
		VehicleMonthlyDistanceKm: 500,
		TVPCDailyHours:           5,
		NewClothesMonthly:        5,
		InternetDailyHours:       4,
	}
}

// ScreenHours is the combined daily TV/PC and internet time.
func (in LifestyleInput) ScreenHours() int {
	return in.TVPCDailyHours + in.InternetDailyHours
}

// Adjustment records a field that was clamped into range before prediction.
type Adjustment struct {
	Field string `json:"field"`
	From  int    `json:"from"`
	To    int    `json:"to"`
}
