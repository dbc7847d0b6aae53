package dto

import (
	"encoding/json"

	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/entity"
)

// WithdrawRequest accepts the amount as a JSON number or a numeric string
type WithdrawRequest struct {
	UserID uint64      `json:"userId" binding:"required"`
	Amount json.Number `json:"amount" binding:"required"`
	Method string      `json:"method" binding:"required"`
}

// WithdrawResponse acknowledges an accepted withdrawal
type WithdrawResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	TransactionID string `json:"transactionId"`
}

func NewWithdrawResponse(r *entity.WithdrawalReceipt) WithdrawResponse {
	return WithdrawResponse{
		Success:       r.Success,
		Message:       r.Message,
		TransactionID: r.TransactionID,
	}
}

// WalletResponse represents the API response for a user's wallet
type WalletResponse struct {
	UserID        uint64 `json:"userId"`
	BalanceINR    string `json:"balanceINR"`
	CarbonCredits string `json:"carbonCredits"`
	TotalUploads  int64  `json:"totalUploads"`
}

func NewWalletResponse(w *entity.WalletSummary) WalletResponse {
	return WalletResponse{
		UserID:        w.UserID,
		BalanceINR:    entity.FormatAmount(w.Balance),
		CarbonCredits: entity.FormatCredits(w.CarbonCredits),
		TotalUploads:  w.TotalUploads,
	}
}
