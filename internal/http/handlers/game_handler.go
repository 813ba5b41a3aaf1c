package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/saradorri/safecasino/internal/domain"
)

// GameHandler handles HTTP requests for the game catalog
type GameHandler struct {
	catalogUseCase domain.CatalogUseCase
}

// NewGameHandler creates a new game handler
func NewGameHandler(catalogUseCase domain.CatalogUseCase) *GameHandler {
	return &GameHandler{catalogUseCase: catalogUseCase}
}

// GameRequest represents the create/update game request body
type GameRequest struct {
	Name          string          `json:"name" binding:"required" example:"Starburst"`
	Description   string          `json:"description"`
	ThumbnailURL  string          `json:"thumbnail_url"`
	MinimumBet    decimal.Decimal `json:"minimum_bet" example:"0.10"`
	MaximumBet    decimal.Decimal `json:"maximum_bet" example:"100.00"`
	RtpPercentage decimal.Decimal `json:"rtp_percentage" example:"96.09"`
	IsAvailable   bool            `json:"is_available"`
	IsNew         bool            `json:"is_new"`
	IsPopular     bool            `json:"is_popular"`
	CategoryID    int64           `json:"category_id" binding:"required"`
	ProviderID    int64           `json:"provider_id" binding:"required"`
}

// GameListResponse represents a paged game listing
type GameListResponse struct {
	Games []*domain.CasinoGame `json:"games"`
	Total int64                `json:"total"`
}

func (r GameRequest) toInput() domain.GameInput {
	return domain.GameInput{
		Name:          r.Name,
		Description:   r.Description,
		ThumbnailURL:  r.ThumbnailURL,
		MinimumBet:    r.MinimumBet,
		MaximumBet:    r.MaximumBet,
		RtpPercentage: r.RtpPercentage,
		IsAvailable:   r.IsAvailable,
		IsNew:         r.IsNew,
		IsPopular:     r.IsPopular,
		CategoryID:    r.CategoryID,
		ProviderID:    r.ProviderID,
	}
}

// ListGames lists the catalog
// @Summary List games
// @Tags games
// @Produce json
// @Param category_id query int false "Filter by category"
// @Param provider_id query int false "Filter by provider"
// @Param search query string false "Name search"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} APIResponse{data=GameListResponse}
// @Router /games [get]
func (h *GameHandler) ListGames(c *gin.Context) {
	filter := domain.GameFilter{
		Search:        c.Query("search"),
		AvailableOnly: c.Query("include_unavailable") != "true",
		Limit:         queryInt(c, "limit", 20),
		Offset:        queryInt(c, "offset", 0),
	}
	if v, err := strconv.ParseInt(c.Query("category_id"), 10, 64); err == nil {
		filter.CategoryID = &v
	}
	if v, err := strconv.ParseInt(c.Query("provider_id"), 10, 64); err == nil {
		filter.ProviderID = &v
	}

	games, total, err := h.catalogUseCase.ListGames(filter)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "", GameListResponse{Games: games, Total: total})
}

// GetGame returns a single game
// @Summary Get a game
// @Tags games
// @Produce json
// @Param id path int true "Game ID"
// @Success 200 {object} APIResponse
// @Failure 404 {object} APIResponse
// @Router /games/{id} [get]
func (h *GameHandler) GetGame(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	game, err := h.catalogUseCase.GetGame(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "", game)
}

// PopularGames returns the most-played games
// @Summary List popular games
// @Tags games
// @Produce json
// @Param limit query int false "Result size"
// @Success 200 {object} APIResponse
// @Router /casino/popular [get]
func (h *GameHandler) PopularGames(c *gin.Context) {
	games, err := h.catalogUseCase.PopularGames(queryInt(c, "limit", 0))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "", games)
}

// NewGames returns the most recently added games
// @Summary List new games
// @Tags games
// @Produce json
// @Param limit query int false "Result size"
// @Success 200 {object} APIResponse
// @Router /casino/new [get]
func (h *GameHandler) NewGames(c *gin.Context) {
	games, err := h.catalogUseCase.NewGames(queryInt(c, "limit", 0))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "", games)
}

// ListCategories returns the active categories
// @Summary List categories
// @Tags games
// @Produce json
// @Success 200 {object} APIResponse
// @Router /categories [get]
func (h *GameHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalogUseCase.ListCategories()
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "", categories)
}

// ListProviders returns the active providers
// @Summary List providers
// @Tags games
// @Produce json
// @Success 200 {object} APIResponse
// @Router /providers [get]
func (h *GameHandler) ListProviders(c *gin.Context) {
	providers, err := h.catalogUseCase.ListProviders()
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "", providers)
}

// Dashboard returns the public landing payload
// @Summary Casino dashboard
// @Tags games
// @Produce json
// @Success 200 {object} APIResponse
// @Router /casino/dashboard [get]
func (h *GameHandler) Dashboard(c *gin.Context) {
	summary, err := h.catalogUseCase.Dashboard()
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "", summary)
}

// RecordPlay increments a game's play counter
// @Summary Record a play
// @Tags games
// @Produce json
// @Security BearerAuth
// @Param id path int true "Game ID"
// @Success 200 {object} APIResponse
// @Failure 404 {object} APIResponse
// @Router /games/{id}/play [post]
func (h *GameHandler) RecordPlay(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.catalogUseCase.RecordPlay(id); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Play recorded.", nil)
}

// CreateGame adds a catalog entry
// @Summary Create a game
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body GameRequest true "Game fields"
// @Success 201 {object} APIResponse
// @Failure 400 {object} APIResponse
// @Router /games [post]
func (h *GameHandler) CreateGame(c *gin.Context) {
	var req GameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}

	game, err := h.catalogUseCase.CreateGame(req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "Game created.", game)
}

// UpdateGame edits a catalog entry
// @Summary Update a game
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Game ID"
// @Param request body GameRequest true "Game fields"
// @Success 200 {object} APIResponse
// @Failure 404 {object} APIResponse
// @Router /games/{id} [put]
func (h *GameHandler) UpdateGame(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req GameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}

	game, err := h.catalogUseCase.UpdateGame(id, req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Game updated.", game)
}

// DeleteGame removes a catalog entry
// @Summary Delete a game
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Game ID"
// @Success 200 {object} APIResponse
// @Failure 404 {object} APIResponse
// @Router /games/{id} [delete]
func (h *GameHandler) DeleteGame(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.catalogUseCase.DeleteGame(id); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Game deleted.", nil)
}

// CategoryRequest represents the create/update category request body
type CategoryRequest struct {
	Name         string `json:"name" binding:"required" example:"Slots"`
	Description  string `json:"description"`
	IconURL      string `json:"icon_url"`
	DisplayOrder int    `json:"display_order"`
	IsActive     bool   `json:"is_active"`
}

func (r CategoryRequest) toInput() domain.CategoryInput {
	return domain.CategoryInput{
		Name:         r.Name,
		Description:  r.Description,
		IconURL:      r.IconURL,
		DisplayOrder: r.DisplayOrder,
		IsActive:     r.IsActive,
	}
}

// ProviderRequest represents the create/update provider request body
type ProviderRequest struct {
	Name        string `json:"name" binding:"required" example:"NetEnt"`
	Description string `json:"description"`
	WebsiteURL  string `json:"website_url"`
	LogoURL     string `json:"logo_url"`
	IsActive    bool   `json:"is_active"`
}

func (r ProviderRequest) toInput() domain.ProviderInput {
	return domain.ProviderInput{
		Name:        r.Name,
		Description: r.Description,
		WebsiteURL:  r.WebsiteURL,
		LogoURL:     r.LogoURL,
		IsActive:    r.IsActive,
	}
}

// CreateCategory adds a lookup entry
// @Summary Create a category
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CategoryRequest true "Category fields"
// @Success 201 {object} APIResponse
// @Failure 409 {object} APIResponse
// @Router /categories [post]
func (h *GameHandler) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}

	category, err := h.catalogUseCase.CreateCategory(req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "Category created.", category)
}

// UpdateCategory edits a lookup entry
// @Summary Update a category
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Param request body CategoryRequest true "Category fields"
// @Success 200 {object} APIResponse
// @Failure 404 {object} APIResponse
// @Router /categories/{id} [put]
func (h *GameHandler) UpdateCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}

	category, err := h.catalogUseCase.UpdateCategory(id, req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Category updated.", category)
}

// CreateProvider adds a lookup entry
// @Summary Create a provider
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ProviderRequest true "Provider fields"
// @Success 201 {object} APIResponse
// @Failure 409 {object} APIResponse
// @Router /providers [post]
func (h *GameHandler) CreateProvider(c *gin.Context) {
	var req ProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}

	provider, err := h.catalogUseCase.CreateProvider(req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "Provider created.", provider)
}

// UpdateProvider edits a lookup entry
// @Summary Update a provider
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Provider ID"
// @Param request body ProviderRequest true "Provider fields"
// @Success 200 {object} APIResponse
// @Failure 404 {object} APIResponse
// @Router /providers/{id} [put]
func (h *GameHandler) UpdateProvider(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req ProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}

	provider, err := h.catalogUseCase.UpdateProvider(id, req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Provider updated.", provider)
}

// DeleteCategory removes an unused category
// @Summary Delete a category
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Success 200 {object} APIResponse
// @Failure 409 {object} APIResponse
// @Router /categories/{id} [delete]
func (h *GameHandler) DeleteCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.catalogUseCase.DeleteCategory(id); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Category deleted.", nil)
}

// DeleteProvider removes an unused provider
// @Summary Delete a provider
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Provider ID"
// @Success 200 {object} APIResponse
// @Failure 409 {object} APIResponse
// @Router /providers/{id} [delete]
func (h *GameHandler) DeleteProvider(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.catalogUseCase.DeleteProvider(id); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Provider deleted.", nil)
}

// pathID parses the :id path parameter, responding on failure
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, domain.NewAppError(domain.ErrCodeInvalidFormat, "Invalid ID", http.StatusBadRequest, err))
		return 0, false
	}
	return id, true
}

// queryInt parses an optional integer query parameter
func queryInt(c *gin.Context, name string, fallback int) int {
	if v, err := strconv.Atoi(c.Query(name)); err == nil {
		return v
	}
	return fallback
}
