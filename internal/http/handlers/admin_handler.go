package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/saradorri/safecasino/internal/domain"
	"github.com/saradorri/safecasino/internal/http/middleware"
)

// AdminHandler handles HTTP requests for the admin console
type AdminHandler struct {
	accountUseCase domain.AccountUseCase
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(accountUseCase domain.AccountUseCase) *AdminHandler {
	return &AdminHandler{accountUseCase: accountUseCase}
}

// AdminUpdateRequest represents the admin account edit body. Omitted
// fields are left untouched.
type AdminUpdateRequest struct {
	FirstName      *string          `json:"first_name,omitempty"`
	LastName       *string          `json:"last_name,omitempty"`
	Balance        *decimal.Decimal `json:"balance,omitempty"`
	EmailConfirmed *bool            `json:"email_confirmed,omitempty"`
	AgeVerified    *bool            `json:"age_verified,omitempty"`
	IsActive       *bool            `json:"is_active,omitempty"`
}

// LockRequest represents the manual lockout body
type LockRequest struct {
	DurationMinutes int `json:"duration_minutes" example:"60"`
}

// RoleRequest carries a role name
type RoleRequest struct {
	Role string `json:"role" binding:"required" example:"Moderator"`
}

// AccountListResponse represents a paged account listing
type AccountListResponse struct {
	Accounts []*domain.Account `json:"accounts"`
	Total    int64             `json:"total"`
}

// ListAccounts lists accounts
// @Summary List accounts
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} APIResponse{data=AccountListResponse}
// @Router /admin/users [get]
func (h *AdminHandler) ListAccounts(c *gin.Context) {
	accounts, total, err := h.accountUseCase.ListAccounts(queryInt(c, "limit", 20), queryInt(c, "offset", 0))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "", AccountListResponse{Accounts: accounts, Total: total})
}

// GetAccount retrieves one account
// @Summary Get an account
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Account ID"
// @Success 200 {object} APIResponse
// @Failure 404 {object} APIResponse
// @Router /admin/users/{id} [get]
func (h *AdminHandler) GetAccount(c *gin.Context) {
	account, err := h.accountUseCase.GetAccount(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "", account)
}

// UpdateAccount edits an account
// @Summary Update an account
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Account ID"
// @Param request body AdminUpdateRequest true "Fields to change"
// @Success 200 {object} APIResponse
// @Failure 404 {object} APIResponse
// @Router /admin/users/{id} [put]
func (h *AdminHandler) UpdateAccount(c *gin.Context) {
	var req AdminUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}

	account, err := h.accountUseCase.UpdateAccount(c.Param("id"), domain.AdminUpdateInput{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Balance:        req.Balance,
		EmailConfirmed: req.EmailConfirmed,
		AgeVerified:    req.AgeVerified,
		IsActive:       req.IsActive,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Account updated.", account)
}

// DeleteAccount removes an account
// @Summary Delete an account
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Account ID"
// @Success 200 {object} APIResponse
// @Failure 404 {object} APIResponse
// @Router /admin/users/{id} [delete]
func (h *AdminHandler) DeleteAccount(c *gin.Context) {
	if err := h.accountUseCase.DeleteAccount(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Account deleted.", nil)
}

// LockAccount places a manual lockout
// @Summary Lock an account
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Account ID"
// @Param request body LockRequest true "Lock duration"
// @Success 200 {object} APIResponse
// @Failure 400 {object} APIResponse
// @Router /admin/users/{id}/lock [post]
func (h *AdminHandler) LockAccount(c *gin.Context) {
	var req LockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}

	err := h.accountUseCase.Lock(
		middleware.AccountIDFromContext(c),
		c.Param("id"),
		time.Duration(req.DurationMinutes)*time.Minute,
	)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Account locked.", nil)
}

// UnlockAccount clears a lockout
// @Summary Unlock an account
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Account ID"
// @Success 200 {object} APIResponse
// @Failure 404 {object} APIResponse
// @Router /admin/users/{id}/unlock [post]
func (h *AdminHandler) UnlockAccount(c *gin.Context) {
	if err := h.accountUseCase.Unlock(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Account unlocked.", nil)
}

// ListRoles lists the defined roles
// @Summary List roles
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} APIResponse
// @Router /admin/roles [get]
func (h *AdminHandler) ListRoles(c *gin.Context) {
	roles, err := h.accountUseCase.ListRoles()
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "", roles)
}

// AccountRoles lists the roles held by an account
// @Summary List an account's roles
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Account ID"
// @Success 200 {object} APIResponse
// @Router /admin/users/{id}/roles [get]
func (h *AdminHandler) AccountRoles(c *gin.Context) {
	roles, err := h.accountUseCase.RolesOf(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "", roles)
}

// AssignRole grants a role
// @Summary Assign a role
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Account ID"
// @Param request body RoleRequest true "Role name"
// @Success 200 {object} APIResponse
// @Failure 409 {object} APIResponse
// @Router /admin/users/{id}/roles [post]
func (h *AdminHandler) AssignRole(c *gin.Context) {
	var req RoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}

	if err := h.accountUseCase.AssignRole(c.Param("id"), req.Role); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Role assigned.", nil)
}

// RemoveRole revokes a role
// @Summary Remove a role
// @Description The last administrator can never be demoted
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Account ID"
// @Param role path string true "Role name"
// @Success 200 {object} APIResponse
// @Failure 409 {object} APIResponse
// @Router /admin/users/{id}/roles/{role} [delete]
func (h *AdminHandler) RemoveRole(c *gin.Context) {
	if err := h.accountUseCase.RemoveRole(c.Param("id"), c.Param("role")); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Role removed.", nil)
}

// AccountStats returns account aggregates
// @Summary Account stats
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} APIResponse
// @Router /admin/stats/users [get]
func (h *AdminHandler) AccountStats(c *gin.Context) {
	stats, err := h.accountUseCase.AccountStats()
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "", stats)
}

// RoleStats returns the holder count per role
// @Summary Role stats
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} APIResponse
// @Router /admin/stats/roles [get]
func (h *AdminHandler) RoleStats(c *gin.Context) {
	stats, err := h.accountUseCase.RoleStats()
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "", stats)
}
