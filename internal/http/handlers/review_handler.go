package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/saradorri/safecasino/internal/domain"
	"github.com/saradorri/safecasino/internal/http/middleware"
)

// ReviewHandler handles HTTP requests for reviews and moderation
type ReviewHandler struct {
	reviewUseCase domain.ReviewUseCase
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(reviewUseCase domain.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{reviewUseCase: reviewUseCase}
}

// ReviewRequest represents the create/edit review request body
type ReviewRequest struct {
	Title  string `json:"title" binding:"required" example:"Great game"`
	Body   string `json:"body" binding:"required" example:"Fast rounds, fair payouts."`
	Rating int    `json:"rating" binding:"required" example:"4"`
}

// ReviewListResponse represents a paged review listing
type ReviewListResponse struct {
	Reviews []*domain.Review `json:"reviews"`
	Total   int64            `json:"total"`
}

// ListGameReviews lists the reviews of a game the caller may see
// @Summary List a game's reviews
// @Description Approved reviews plus, when authenticated, the caller's own pending one; staff see all
// @Tags reviews
// @Produce json
// @Param id path int true "Game ID"
// @Success 200 {object} APIResponse
// @Router /games/{id}/reviews [get]
func (h *ReviewHandler) ListGameReviews(c *gin.Context) {
	gameID, ok := pathID(c)
	if !ok {
		return
	}

	reviews, err := h.reviewUseCase.ListVisibleReviews(
		gameID,
		middleware.AccountIDFromContext(c),
		middleware.IsStaff(c),
	)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "", reviews)
}

// GameRatingStats returns the approved-rating aggregate of a game
// @Summary Game rating stats
// @Tags reviews
// @Produce json
// @Param id path int true "Game ID"
// @Success 200 {object} APIResponse
// @Failure 404 {object} APIResponse
// @Router /games/{id}/rating [get]
func (h *ReviewHandler) GameRatingStats(c *gin.Context) {
	gameID, ok := pathID(c)
	if !ok {
		return
	}

	stats, err := h.reviewUseCase.GameRatingStats(gameID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "", stats)
}

// CreateReview submits a review for moderation
// @Summary Submit a review
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Game ID"
// @Param request body ReviewRequest true "Review fields"
// @Success 201 {object} APIResponse
// @Failure 409 {object} APIResponse
// @Router /games/{id}/reviews [post]
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	gameID, ok := pathID(c)
	if !ok {
		return
	}
	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}

	review, err := h.reviewUseCase.CreateReview(
		middleware.AccountIDFromContext(c),
		gameID,
		domain.ReviewInput{Title: req.Title, Body: req.Body, Rating: req.Rating},
	)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "Review submitted for moderation.", review)
}

// EditReview updates a review
// @Summary Edit a review
// @Description Author-only; the edit returns the review to the moderation queue
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Review ID"
// @Param request body ReviewRequest true "Review fields"
// @Success 200 {object} APIResponse
// @Failure 403 {object} APIResponse
// @Router /reviews/{id} [put]
func (h *ReviewHandler) EditReview(c *gin.Context) {
	reviewID, ok := pathID(c)
	if !ok {
		return
	}
	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}

	review, err := h.reviewUseCase.EditReview(
		reviewID,
		middleware.AccountIDFromContext(c),
		domain.ReviewInput{Title: req.Title, Body: req.Body, Rating: req.Rating},
	)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Review updated and returned to the moderation queue.", review)
}

// DeleteReview removes a review
// @Summary Delete a review
// @Description The author or staff may delete
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param id path int true "Review ID"
// @Success 200 {object} APIResponse
// @Failure 403 {object} APIResponse
// @Router /reviews/{id} [delete]
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	reviewID, ok := pathID(c)
	if !ok {
		return
	}

	err := h.reviewUseCase.DeleteReview(
		reviewID,
		middleware.AccountIDFromContext(c),
		middleware.IsStaff(c),
	)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Review deleted.", nil)
}

// ApproveReview makes a review publicly visible
// @Summary Approve a review
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param id path int true "Review ID"
// @Success 200 {object} APIResponse
// @Failure 403 {object} APIResponse
// @Router /reviews/{id}/approve [post]
func (h *ReviewHandler) ApproveReview(c *gin.Context) {
	reviewID, ok := pathID(c)
	if !ok {
		return
	}

	review, err := h.reviewUseCase.ApproveReview(reviewID, middleware.IsStaff(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Review approved.", review)
}

// ListAllReviews lists reviews for the moderation console
// @Summary List all reviews
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param pending query bool false "Only pending reviews"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} APIResponse{data=ReviewListResponse}
// @Router /reviews [get]
func (h *ReviewHandler) ListAllReviews(c *gin.Context) {
	filter := domain.ReviewFilter{
		PendingOnly: c.Query("pending") == "true",
		Limit:       queryInt(c, "limit", 20),
		Offset:      queryInt(c, "offset", 0),
	}

	reviews, total, err := h.reviewUseCase.ListAllReviews(filter)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "", ReviewListResponse{Reviews: reviews, Total: total})
}
