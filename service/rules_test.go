package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carbon-predictor/domain"
)

func TestAssembleFeatures_Defaults(t *testing.T) {
	got := AssembleFeatures(domain.DefaultLifestyleInput())
	assert.Equal(t, []float64{2000, 500, 5, 5, 4}, got)
}

func TestAssembleFeatures_MatchesSchemaLength(t *testing.T) {
	inputs := []domain.LifestyleInput{
		{},
		{MonthlyGroceryBill: MaxGroceryBill, VehicleMonthlyDistanceKm: MaxVehicleDistance, TVPCDailyHours: MaxDailyHours, NewClothesMonthly: MaxNewClothes, InternetDailyHours: MaxDailyHours},
	}
	for _, in := range inputs {
		assert.Len(t, AssembleFeatures(in), len(domain.FeatureNames()))
	}
}

func TestAssembleFeatures_Order(t *testing.T) {
	got := AssembleFeatures(domain.LifestyleInput{
		MonthlyGroceryBill:       1,
		VehicleMonthlyDistanceKm: 2,
		TVPCDailyHours:           3,
		NewClothesMonthly:        4,
		InternetDailyHours:       5,
	})
	assert.Equal(t, []float64{1, 2, 3, 4, 5}, got)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		emission float64
		want     domain.Bucket
	}{
		{0, domain.BucketLow},
		{1499.99, domain.BucketLow},
		{1500, domain.BucketMedium},
		{2200, domain.BucketMedium},
		{3000, domain.BucketMedium},
		{3000.01, domain.BucketHigh},
		{12000, domain.BucketHigh},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.emission), "emission %v", tt.emission)
	}
}

func TestSummary_EveryBucketHasText(t *testing.T) {
	for _, b := range []domain.Bucket{domain.BucketLow, domain.BucketMedium, domain.BucketHigh} {
		assert.NotEmpty(t, Summary(b), b)
	}
}

func TestEstimateBreakdown(t *testing.T) {
	got := EstimateBreakdown(domain.DefaultLifestyleInput())

	assert.Equal(t, domain.Breakdown{
		Grocery:        1000,
		Transportation: 300,
		Electronics:    270,
		Fashion:        200,
	}, got)
	assert.Equal(t, 1770.0, got.Total())
}

func TestEstimateBreakdown_Zero(t *testing.T) {
	got := EstimateBreakdown(domain.LifestyleInput{})
	assert.Equal(t, domain.Breakdown{}, got)

	for _, s := range Shares(got) {
		assert.Zero(t, s.Percent, s.Category)
	}
}

func TestEstimateBreakdown_NonNegativeAtBounds(t *testing.T) {
	b := EstimateBreakdown(domain.LifestyleInput{
		MonthlyGroceryBill:       MaxGroceryBill,
		VehicleMonthlyDistanceKm: MaxVehicleDistance,
		TVPCDailyHours:           MaxDailyHours,
		NewClothesMonthly:        MaxNewClothes,
		InternetDailyHours:       MaxDailyHours,
	})
	for _, v := range []float64{b.Grocery, b.Transportation, b.Electronics, b.Fashion} {
		assert.GreaterOrEqual(t, v, 0.0)
	}
}

func TestShares(t *testing.T) {
	shares := Shares(EstimateBreakdown(domain.DefaultLifestyleInput()))
	require.Len(t, shares, 4)

	var total float64
	for _, s := range shares {
		total += s.Percent
	}
	assert.InDelta(t, 100, total, 0.05)
	assert.Equal(t, "Grocery", shares[0].Category)
	assert.Equal(t, 56.5, shares[0].Percent)
}

func TestRecommend_Fallback(t *testing.T) {
	got := Recommend(domain.LifestyleInput{
		MonthlyGroceryBill: 100,
		TVPCDailyHours:     1,
		InternetDailyHours: 1,
	})
	assert.Equal(t, []string{TipKeepItGoing}, got)
}

func TestRecommend_AllRulesInOrder(t *testing.T) {
	got := Recommend(domain.LifestyleInput{
		MonthlyGroceryBill:       6000,
		VehicleMonthlyDistanceKm: 1500,
		TVPCDailyHours:           8,
		NewClothesMonthly:        15,
		InternetDailyHours:       5,
	})
	assert.Equal(t, []string{TipTransport, TipScreenTime, TipFashion, TipLocalFood}, got)
}

func TestRecommend_ThresholdsAreExclusive(t *testing.T) {
	got := Recommend(domain.LifestyleInput{
		MonthlyGroceryBill:       GroceryBillTip,
		VehicleMonthlyDistanceKm: VehicleDistanceTipKm,
		TVPCDailyHours:           6,
		NewClothesMonthly:        NewClothesTip,
		InternetDailyHours:       4,
	})
	assert.Equal(t, []string{TipKeepItGoing}, got)
}

func TestRecommend_DistanceIsMonotonic(t *testing.T) {
	bases := []domain.LifestyleInput{
		{MonthlyGroceryBill: 100},
		{MonthlyGroceryBill: 6000, TVPCDailyHours: 12, NewClothesMonthly: 20},
		{NewClothesMonthly: 11},
	}

	for _, base := range bases {
		base.VehicleMonthlyDistanceKm = 1000
		before := Recommend(base)
		base.VehicleMonthlyDistanceKm = 1001
		after := Recommend(base)

		assert.Contains(t, after, TipTransport)
		for _, tip := range before {
			if tip == TipKeepItGoing {
				continue
			}
			assert.Contains(t, after, tip)
		}
	}
}

func TestClampInput(t *testing.T) {
	got, adj := ClampInput(domain.LifestyleInput{
		MonthlyGroceryBill:       150_000,
		VehicleMonthlyDistanceKm: -5,
		TVPCDailyHours:           30,
		NewClothesMonthly:        50,
		InternetDailyHours:       4,
	})

	assert.Equal(t, domain.LifestyleInput{
		MonthlyGroceryBill:       MaxGroceryBill,
		VehicleMonthlyDistanceKm: 0,
		TVPCDailyHours:           MaxDailyHours,
		NewClothesMonthly:        50,
		InternetDailyHours:       4,
	}, got)
	assert.Equal(t, []domain.Adjustment{
		{Field: "monthly_grocery_bill", From: 150_000, To: MaxGroceryBill},
		{Field: "vehicle_monthly_distance_km", From: -5, To: 0},
		{Field: "tv_pc_daily_hours", From: 30, To: MaxDailyHours},
	}, adj)
}

func TestClampInput_InRangeUntouched(t *testing.T) {
	in := domain.DefaultLifestyleInput()
	got, adj := ClampInput(in)
	assert.Equal(t, in, got)
	assert.Empty(t, adj)
}
