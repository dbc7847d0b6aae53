package entity

import "github.com/shopspring/decimal"

// Output scales for reward figures
const (
	CarbonSavedScale   int32 = 3
	CarbonCreditsScale int32 = 6
	MoneyScale         int32 = 2
)

var (
	// KgPerCredit is the amount of CO2 that makes one carbon credit
	KgPerCredit = decimal.NewFromInt(1000)
	// CreditPriceINR is the payout for one carbon credit
	CreditPriceINR = decimal.NewFromInt(1500)
)

// Reward is the outcome of converting a driven distance into credits and money
type Reward struct {
	DistanceKm     int64
	VehicleType    VehicleType
	EmissionFactor decimal.Decimal
	CarbonSavedKg  decimal.Decimal
	CarbonCredits  decimal.Decimal
	RewardAmount   decimal.Decimal
}

// ComputeReward converts a distance into carbon saved, credits and INR.
// Every figure is derived from the exact intermediate value and rounded
// only on output, so results do not drift with chained rounding.
func ComputeReward(distanceKm int64, vehicleType VehicleType) Reward {
	if distanceKm < 0 {
		distanceKm = 0
	}

	factor := vehicleType.EmissionFactor()
	saved := decimal.NewFromInt(distanceKm).Mul(factor)
	credits := saved.Div(KgPerCredit)
	amount := credits.Mul(CreditPriceINR)

	return Reward{
		DistanceKm:     distanceKm,
		VehicleType:    vehicleType,
		EmissionFactor: factor,
		CarbonSavedKg:  saved.Round(CarbonSavedScale),
		CarbonCredits:  credits.Round(CarbonCreditsScale),
		RewardAmount:   amount.Round(MoneyScale),
	}
}
