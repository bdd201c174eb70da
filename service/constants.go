package service

const (
	// Input bounds accepted by the form.
	MaxGroceryBill     = 100_000
	MaxVehicleDistance = 20_000
	MaxDailyHours      = 24
	MaxNewClothes      = 50

	// Bucket thresholds. Medium is the closed interval [LowThreshold, HighThreshold].
	LowThreshold  = 1500.0
	HighThreshold = 3000.0

	// Breakdown coefficients, per unit of input.
	GroceryFactor        = 0.5
	TransportationFactor = 0.6
	ElectronicsFactor    = 30.0
	FashionFactor        = 40.0

	// Recommendation thresholds.
	VehicleDistanceTipKm = 1000
	ScreenHoursTip       = 10
	NewClothesTip        = 10
	GroceryBillTip       = 5000

	// Reference emissions shown next to the prediction.
	NationalAverage = 2000.0
	GlobalAverage   = 2500.0
	TargetEmission  = 1000.0

	GaugeMax        = 5000.0
	EmissionPerTree = 20.0
	MonthsPerYear   = 12

	// MaxEmission is the largest prediction accepted from a model. Larger
	// values are rejected so the yearly projection and tree count stay finite.
	MaxEmission = 1e12
)
