package wallet

import (
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/entity"
	errs "github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/error"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/port/usecase"
	"github.com/shopspring/decimal"
)

// WithdrawalValidator provides validation for withdrawal requests
type WithdrawalValidator struct{}

// NewWithdrawalValidator creates a new WithdrawalValidator
func NewWithdrawalValidator() *WithdrawalValidator {
	return &WithdrawalValidator{}
}

// ValidateWithdrawal validates all withdrawal fields
func (v *WithdrawalValidator) ValidateWithdrawal(req usecase.WithdrawRequest) (decimal.Decimal, entity.WithdrawalMethod, error) {
	if req.UserID == 0 || strings.TrimSpace(req.Amount) == "" || strings.TrimSpace(req.Method) == "" {
		return decimal.Zero, "", fmt.Errorf("%w: missing required fields", errs.ErrInvalidRequest)
	}

	amount, err := v.validateAmount(req.Amount)
	if err != nil {
		return decimal.Zero, "", err
	}

	method, err := entity.ParseWithdrawalMethod(req.Method)
	if err != nil {
		return decimal.Zero, "", err
	}

	return amount, method, nil
}

// validateAmount checks the amount is a positive value with at most 2 decimal places
func (v *WithdrawalValidator) validateAmount(raw string) (decimal.Decimal, error) {
	amount, err := entity.ParseAmount(raw)
	if err != nil {
		return decimal.Zero, err
	}

	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: amount must be greater than zero", errs.ErrInvalidAmount)
	}

	return amount, nil
}
