package entity

import (
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/error"
	"github.com/shopspring/decimal"
)

// MaxDecimalPlaces defines the maximum number of decimal places allowed for money amounts
const MaxDecimalPlaces = 2

// MaxAmount caps withdrawal requests; the balance columns hold 10 integer digits
var MaxAmount = decimal.RequireFromString("9999999999.99")

// ParseAmount validates a user supplied INR amount.
// Accepts plain decimal notation with at most two fraction digits, rejects
// negatives, exponents and anything larger than MaxAmount.
func ParseAmount(amount string) (decimal.Decimal, error) {
	amount = strings.TrimSpace(amount)
	if len(amount) == 0 {
		return decimal.Zero, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	if strings.HasPrefix(amount, "-") {
		return decimal.Zero, errs.ErrNegativeAmount
	}

	if strings.ContainsAny(amount, "eE") {
		return decimal.Zero, fmt.Errorf("%w: exponent notation not allowed", errs.ErrInvalidAmount)
	}

	parts := strings.Split(amount, ".")
	if len(parts) > 2 {
		return decimal.Zero, fmt.Errorf("%w: invalid number format", errs.ErrInvalidAmount)
	}
	if len(parts) == 2 && len(parts[1]) > MaxDecimalPlaces {
		return decimal.Zero, fmt.Errorf("%w: maximum %d decimal places allowed", errs.ErrInvalidAmount, MaxDecimalPlaces)
	}

	value, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, err.Error())
	}

	if value.GreaterThan(MaxAmount) {
		return decimal.Zero, errs.ErrAmountOverflow
	}

	return value, nil
}

// FormatAmount renders a money value with exactly two decimal places
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(MoneyScale)
}

// FormatCredits renders a carbon credit value with six decimal places
func FormatCredits(credits decimal.Decimal) string {
	return credits.StringFixed(CarbonCreditsScale)
}

// FormatCarbon renders a carbon mass in kg with three decimal places
func FormatCarbon(kg decimal.Decimal) string {
	return kg.StringFixed(CarbonSavedScale)
}
