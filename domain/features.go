package domain

// Training column names, in the order the model expects them.
const (
	FeatureGroceryBill     = "Monthly Grocery Bill"
	FeatureVehicleDistance = "Vehicle Monthly Distance Km"
	FeatureTVPCHours       = "How Long TV PC Daily Hour"
	FeatureNewClothes      = "How Many New Clothes Monthly"
	FeatureInternetHours   = "How Long Internet Daily Hour"
)

// FeatureNames returns a fresh copy of the feature schema.
func FeatureNames() []string {
	return []string{
		FeatureGroceryBill,
		FeatureVehicleDistance,
		FeatureTVPCHours,
		FeatureNewClothes,
		FeatureInternetHours,
	}
}
