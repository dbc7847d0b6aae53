package entity

import (
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/error"
	"github.com/shopspring/decimal"
)

// VehicleType identifies the kind of electric vehicle a user drives
type VehicleType string

// Supported vehicle types
const (
	VehicleERickshaw VehicleType = "E-Rickshaw"
	VehicleEVBike    VehicleType = "EV Bike"
	VehicleEVCar     VehicleType = "EV Car"
)

// Emission factors in kg CO2 saved per km
var (
	factorERickshaw = decimal.RequireFromString("0.05")
	factorEVBike    = decimal.RequireFromString("0.06")
	factorEVCar     = decimal.RequireFromString("0.12")

	// DefaultEmissionFactor applies to any vehicle type missing from the table
	DefaultEmissionFactor = factorERickshaw
)

// VehicleTypes lists the vehicle types accepted at onboarding
func VehicleTypes() []VehicleType {
	return []VehicleType{VehicleERickshaw, VehicleEVBike, VehicleEVCar}
}

// IsValid reports whether the vehicle type is one of the supported values
func (v VehicleType) IsValid() bool {
	switch v {
	case VehicleERickshaw, VehicleEVBike, VehicleEVCar:
		return true
	}
	return false
}

// EmissionFactor returns kg CO2 saved per km for the vehicle type.
// Unknown types use DefaultEmissionFactor.
func (v VehicleType) EmissionFactor() decimal.Decimal {
	switch v {
	case VehicleERickshaw:
		return factorERickshaw
	case VehicleEVBike:
		return factorEVBike
	case VehicleEVCar:
		return factorEVCar
	default:
		return DefaultEmissionFactor
	}
}

// ParseVehicleType validates a raw vehicle type string
func ParseVehicleType(raw string) (VehicleType, error) {
	v := VehicleType(strings.TrimSpace(raw))
	if !v.IsValid() {
		return "", fmt.Errorf("%w: %q", errs.ErrInvalidVehicleType, raw)
	}
	return v, nil
}
