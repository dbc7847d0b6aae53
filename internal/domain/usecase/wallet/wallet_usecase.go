package wallet

import (
	"context"

	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/entity"
	errs "github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/error"
	coreport "github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/port/core"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/port/identity"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/port/usecase"
)

// WalletUseCase implements wallet reads and the payout stub
type WalletUseCase struct {
	userRepo     persistence.UserRepository
	uploads      usecase.UploadUseCase
	validator    *WithdrawalValidator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewWalletUseCase creates a new wallet use case instance
func NewWalletUseCase(
	userRepo persistence.UserRepository,
	uploads usecase.UploadUseCase,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.WalletUseCase {
	return &WalletUseCase{
		userRepo:     userRepo,
		uploads:      uploads,
		validator:    NewWithdrawalValidator(),
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetWallet returns the user's balance, credits and number of uploads
func (w *WalletUseCase) GetWallet(ctx context.Context, userID uint64) (*entity.WalletSummary, error) {
	user, err := w.loadOwnedUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats, err := w.uploads.GetStats(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary := entity.UserToWalletSummary(user, stats)
	return &summary, nil
}

// Withdraw checks the request against the balance and acknowledges it.
// No money moves and the balance is left untouched.
func (w *WalletUseCase) Withdraw(ctx context.Context, req usecase.WithdrawRequest) (*entity.WithdrawalReceipt, error) {
	amount, method, err := w.validator.ValidateWithdrawal(req)
	if err != nil {
		return nil, err
	}

	user, err := w.loadOwnedUser(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	if !user.CanWithdraw(amount) {
		insufficient := &errs.InsufficientBalanceError{
			UserID:      user.ID,
			Amount:      entity.FormatAmount(amount),
			CurrBalance: user.GetBalance(),
		}
		w.logger.Warn("Withdrawal rejected", insufficient.LogFields())
		return nil, insufficient
	}

	receipt := entity.NewWithdrawalReceipt(amount, method, w.timeProvider.Now())

	w.logger.Info("Withdrawal acknowledged", map[string]any{
		"userId":        user.ID,
		"amount":        entity.FormatAmount(amount),
		"method":        string(method),
		"transactionId": receipt.TransactionID,
	})

	return &receipt, nil
}

func (w *WalletUseCase) loadOwnedUser(ctx context.Context, userID uint64) (*entity.User, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	user, err := w.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := identity.CheckOwner(ctx, user.Email); err != nil {
		return nil, err
	}
	return user, nil
}
