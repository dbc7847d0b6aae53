package usecase

import (
	"context"

	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/entity"
)

// WithdrawRequest represents an incoming withdrawal request
type WithdrawRequest struct {
	UserID uint64
	Amount string
	Method string
}

// WalletUseCase defines wallet read and payout operations
type WalletUseCase interface {
	// GetWallet returns balance, credits and upload count (GET /api/wallet/:userId)
	GetWallet(ctx context.Context, userID uint64) (*entity.WalletSummary, error)

	// Withdraw acknowledges a payout request (POST /api/withdraw).
	// The balance is checked but never debited.
	Withdraw(ctx context.Context, req WithdrawRequest) (*entity.WithdrawalReceipt, error)
}
