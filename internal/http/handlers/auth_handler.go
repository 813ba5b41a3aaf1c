package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/saradorri/safecasino/internal/domain"
)

// AuthHandler handles HTTP requests for the account lifecycle
type AuthHandler struct {
	accountUseCase domain.AccountUseCase
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(accountUseCase domain.AccountUseCase) *AuthHandler {
	return &AuthHandler{accountUseCase: accountUseCase}
}

// RegisterRequest represents the registration request body
type RegisterRequest struct {
	Email       string `json:"email" binding:"required" example:"player@example.com"`
	Password    string `json:"password" binding:"required" example:"Str0ng-Pass!"`
	FirstName   string `json:"first_name" binding:"required" example:"Ada"`
	LastName    string `json:"last_name" binding:"required" example:"Lovelace"`
	DateOfBirth string `json:"date_of_birth" binding:"required" example:"1990-05-14"`
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"player@example.com"`
	Password string `json:"password" binding:"required" example:"Str0ng-Pass!"`
}

// LoginResponse represents the login response body
type LoginResponse struct {
	Token   string          `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	Account *domain.Account `json:"account"`
}

// EmailRequest carries a bare email address
type EmailRequest struct {
	Email string `json:"email" binding:"required" example:"player@example.com"`
}

// ResetPasswordRequest represents the password reset request body
type ResetPasswordRequest struct {
	AccountID   string `json:"account_id" binding:"required"`
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// Register handles account registration
// @Summary Register a new account
// @Description Create an unconfirmed account and send a verification email
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration details"
// @Success 201 {object} APIResponse
// @Failure 400 {object} APIResponse
// @Failure 409 {object} APIResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}

	dob, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		respondError(c, domain.NewValidationError("date_of_birth", "must be formatted as YYYY-MM-DD"))
		return
	}

	account, err := h.accountUseCase.Register(domain.RegisterInput{
		Email:       req.Email,
		Password:    req.Password,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		DateOfBirth: dob,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, "Account registered. Check your inbox to confirm your email address.", account)
}

// VerifyEmail handles email verification
// @Summary Verify an email address
// @Description Redeem a verification token sent by email
// @Tags auth
// @Produce json
// @Param accountId query string true "Account ID"
// @Param token query string true "Verification token"
// @Success 200 {object} APIResponse
// @Failure 400 {object} APIResponse
// @Router /auth/verify-email [get]
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	accountID := c.Query("accountId")
	token := c.Query("token")
	if accountID == "" || token == "" {
		respondError(c, domain.NewBusinessRuleError(domain.ErrCodeInvalidToken, "Token is invalid or has expired"))
		return
	}

	account, err := h.accountUseCase.VerifyEmail(accountID, token)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Email address confirmed.", account)
}

// ResendVerification handles verification email resends
// @Summary Resend the verification email
// @Tags auth
// @Accept json
// @Produce json
// @Param request body EmailRequest true "Email address"
// @Success 200 {object} APIResponse
// @Router /auth/resend-verification [post]
func (h *AuthHandler) ResendVerification(c *gin.Context) {
	var req EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}

	if err := h.accountUseCase.ResendVerification(req.Email); err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "If the address is registered and unconfirmed, a new verification email has been sent.", nil)
}

// Login handles authentication
// @Summary Sign in
// @Description Authenticate and return a JWT session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} APIResponse{data=LoginResponse}
// @Failure 401 {object} APIResponse
// @Failure 423 {object} APIResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}

	token, account, err := h.accountUseCase.Authenticate(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Signed in.", LoginResponse{Token: token, Account: account})
}

// ForgotPassword handles password reset requests
// @Summary Request a password reset
// @Tags auth
// @Accept json
// @Produce json
// @Param request body EmailRequest true "Email address"
// @Success 200 {object} APIResponse
// @Router /auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}

	if err := h.accountUseCase.RequestPasswordReset(req.Email); err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "If the address is registered, a password reset email has been sent.", nil)
}

// ResetPassword handles password resets
// @Summary Reset a password
// @Description Redeem a reset token and set a new password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body ResetPasswordRequest true "Reset details"
// @Success 200 {object} APIResponse
// @Failure 400 {object} APIResponse
// @Router /auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}

	if err := h.accountUseCase.ResetPassword(req.AccountID, req.Token, req.NewPassword); err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Password has been reset. You can sign in with the new password.", nil)
}
