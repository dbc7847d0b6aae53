package handler

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/port/core"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// WalletHandler handles wallet reads and withdrawals
type WalletHandler struct {
	walletUseCase usecase.WalletUseCase
	logger        coreport.Logger
}

// NewWalletHandler creates a new wallet handler instance
func NewWalletHandler(walletUseCase usecase.WalletUseCase, logger coreport.Logger) *WalletHandler {
	return &WalletHandler{
		walletUseCase: walletUseCase,
		logger:        logger,
	}
}

// GetWallet handles GET /api/wallet/:userId
func (h *WalletHandler) GetWallet(c *gin.Context) {
	userID, err := parseID(c.Param("userId"))
	if err != nil {
		respondInvalidID(c, "Invalid user ID format")
		return
	}

	summary, err := h.walletUseCase.GetWallet(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, "get_wallet", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewWalletResponse(summary))
}

// Withdraw handles POST /api/withdraw
func (h *WalletHandler) Withdraw(c *gin.Context) {
	var req dto.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	receipt, err := h.walletUseCase.Withdraw(c.Request.Context(), usecase.WithdrawRequest{
		UserID: req.UserID,
		Amount: req.Amount.String(),
		Method: req.Method,
	})
	if err != nil {
		respondError(c, h.logger, "withdraw", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewWithdrawResponse(receipt))
}
