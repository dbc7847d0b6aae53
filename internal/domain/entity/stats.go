package entity

import "github.com/shopspring/decimal"

// UserStats aggregates a user's uploads
type UserStats struct {
	TotalUploads     int64
	TotalKm          int64
	TotalEarned      decimal.Decimal
	TotalCarbonSaved decimal.Decimal
}

// EmptyStats is the aggregate for a user with no uploads
func EmptyStats() UserStats {
	return UserStats{TotalEarned: decimal.Zero, TotalCarbonSaved: decimal.Zero}
}

// Add folds one upload into the aggregate
func (s *UserStats) Add(u *Upload) {
	s.TotalUploads++
	s.TotalKm += u.EstimatedKm
	s.TotalEarned = s.TotalEarned.Add(u.RewardAmount)
	s.TotalCarbonSaved = s.TotalCarbonSaved.Add(u.CarbonSavedKg)
}

// Normalize rounds the sums to the scales of their columns
func (s UserStats) Normalize() UserStats {
	s.TotalEarned = s.TotalEarned.Round(MoneyScale)
	s.TotalCarbonSaved = s.TotalCarbonSaved.Round(CarbonSavedScale)
	return s
}
