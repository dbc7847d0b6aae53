package entity

import (
	"fmt"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/error"
	"github.com/shopspring/decimal"
)

// WithdrawalMethod is a payout channel offered to users
type WithdrawalMethod string

// Supported payout channels
const (
	MethodBankTransfer WithdrawalMethod = "Bank Transfer"
	MethodUPITransfer  WithdrawalMethod = "UPI Transfer"
)

// ParseWithdrawalMethod validates a raw payout channel
func ParseWithdrawalMethod(raw string) (WithdrawalMethod, error) {
	m := WithdrawalMethod(strings.TrimSpace(raw))
	switch m {
	case MethodBankTransfer, MethodUPITransfer:
		return m, nil
	case "":
		return "", fmt.Errorf("%w: method is required", errs.ErrInvalidWithdrawalMethod)
	}
	return "", fmt.Errorf("%w: %q", errs.ErrInvalidWithdrawalMethod, raw)
}

// WithdrawalReceipt acknowledges a withdrawal request.
// No funds move; the receipt only echoes the accepted request.
type WithdrawalReceipt struct {
	Success       bool
	Message       string
	TransactionID string
	Amount        decimal.Decimal
	Method        WithdrawalMethod
}

// NewWithdrawalReceipt builds the acknowledgement for an accepted request
func NewWithdrawalReceipt(amount decimal.Decimal, method WithdrawalMethod, now time.Time) WithdrawalReceipt {
	return WithdrawalReceipt{
		Success:       true,
		Message:       fmt.Sprintf("Withdrawal of ₹%s via %s initiated successfully", FormatAmount(amount), method),
		TransactionID: fmt.Sprintf("TXN%d", now.UnixMilli()),
		Amount:        amount,
		Method:        method,
	}
}

// WalletSummary is the wallet view of a user
type WalletSummary struct {
	UserID        uint64
	Balance       decimal.Decimal
	CarbonCredits decimal.Decimal
	TotalUploads  int64
}

// UserToWalletSummary combines a user and its stats into a wallet view
func UserToWalletSummary(user *User, stats UserStats) WalletSummary {
	return WalletSummary{
		UserID:        user.ID,
		Balance:       user.Balance,
		CarbonCredits: user.CarbonCredits,
		TotalUploads:  stats.TotalUploads,
	}
}
