package service

import "carbon-predictor/domain"

const (
	TipTransport   = "Consider using public transport or carpooling to reduce vehicle emissions"
	TipScreenTime  = "Reduce screen time and use energy-efficient devices"
	TipFashion     = "Adopt sustainable fashion: buy less, choose quality over quantity"
	TipLocalFood   = "Buy local and seasonal produce to reduce transportation emissions"
	TipKeepItGoing = "Continue your eco-friendly habits and inspire others!"
)

type rule struct {
	applies func(domain.LifestyleInput) bool
	tip     string
}

// Checked in this order; every rule that applies contributes its tip.
var rules = []rule{
	{func(in domain.LifestyleInput) bool { return in.VehicleMonthlyDistanceKm > VehicleDistanceTipKm }, TipTransport},
	{func(in domain.LifestyleInput) bool { return in.ScreenHours() > ScreenHoursTip }, TipScreenTime},
	{func(in domain.LifestyleInput) bool { return in.NewClothesMonthly > NewClothesTip }, TipFashion},
	{func(in domain.LifestyleInput) bool { return in.MonthlyGroceryBill > GroceryBillTip }, TipLocalFood},
}

// Recommend returns the tips for in. It never returns an empty list.
func Recommend(in domain.LifestyleInput) []string {
	tips := []string{}
	for _, r := range rules {
		if r.applies(in) {
			tips = append(tips, r.tip)
		}
	}

	if len(tips) == 0 {
		tips = append(tips, TipKeepItGoing)
	}
	return tips
}
