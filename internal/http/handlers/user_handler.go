package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/saradorri/safecasino/internal/domain"
	"github.com/saradorri/safecasino/internal/http/middleware"
)

// UserHandler handles HTTP requests for the signed-in account
type UserHandler struct {
	accountUseCase domain.AccountUseCase
	walletUseCase  domain.WalletUseCase
	reviewUseCase  domain.ReviewUseCase
}

// NewUserHandler creates a new user handler
func NewUserHandler(
	accountUseCase domain.AccountUseCase,
	walletUseCase domain.WalletUseCase,
	reviewUseCase domain.ReviewUseCase,
) *UserHandler {
	return &UserHandler{
		accountUseCase: accountUseCase,
		walletUseCase:  walletUseCase,
		reviewUseCase:  reviewUseCase,
	}
}

// UpdateProfileRequest represents the profile update request body
type UpdateProfileRequest struct {
	FirstName string `json:"first_name" binding:"required" example:"Ada"`
	LastName  string `json:"last_name" binding:"required" example:"Lovelace"`
}

// AmountRequest carries a money amount
type AmountRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required" example:"25.00"`
}

// BalanceResponse represents a balance payload
type BalanceResponse struct {
	Balance decimal.Decimal `json:"balance" example:"125.50"`
}

// GetProfile returns the caller's account
// @Summary Get own profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} APIResponse
// @Failure 401 {object} APIResponse
// @Router /users/profile [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	account, err := h.accountUseCase.GetProfile(middleware.AccountIDFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "", account)
}

// UpdateProfile updates the caller's display fields
// @Summary Update own profile
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateProfileRequest true "Profile fields"
// @Success 200 {object} APIResponse
// @Failure 400 {object} APIResponse
// @Router /users/profile [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}

	account, err := h.accountUseCase.UpdateProfile(middleware.AccountIDFromContext(c), domain.UpdateProfileInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Profile updated.", account)
}

// GetBalance returns the caller's balance
// @Summary Get own balance
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} APIResponse{data=BalanceResponse}
// @Router /users/balance [get]
func (h *UserHandler) GetBalance(c *gin.Context) {
	balance, err := h.walletUseCase.Balance(middleware.AccountIDFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "", BalanceResponse{Balance: balance})
}

// AddBalance credits the caller's balance
// @Summary Add funds
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AmountRequest true "Amount"
// @Success 200 {object} APIResponse{data=BalanceResponse}
// @Failure 400 {object} APIResponse
// @Router /users/balance/add [post]
func (h *UserHandler) AddBalance(c *gin.Context) {
	var req AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}

	balance, err := h.walletUseCase.Credit(middleware.AccountIDFromContext(c), req.Amount)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Funds added.", BalanceResponse{Balance: balance})
}

// WithdrawBalance debits the caller's balance
// @Summary Withdraw funds
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AmountRequest true "Amount"
// @Success 200 {object} APIResponse{data=BalanceResponse}
// @Failure 400 {object} APIResponse
// @Router /users/balance/withdraw [post]
func (h *UserHandler) WithdrawBalance(c *gin.Context) {
	var req AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}

	balance, err := h.walletUseCase.Debit(middleware.AccountIDFromContext(c), req.Amount)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Funds withdrawn.", BalanceResponse{Balance: balance})
}

// MyReviews returns all reviews written by the caller
// @Summary List own reviews
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} APIResponse
// @Router /users/reviews [get]
func (h *UserHandler) MyReviews(c *gin.Context) {
	reviews, err := h.reviewUseCase.ListByAuthor(middleware.AccountIDFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "", reviews)
}
