package review

import (
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/saradorri/safecasino/internal/domain"
	"github.com/saradorri/safecasino/internal/infrastructure/logger"
)

const (
	minRating = 1
	maxRating = 5
)

// ReviewUseCase implements domain.ReviewUseCase
type ReviewUseCase struct {
	reviewRepo domain.ReviewRepository
	gameRepo   domain.GameRepository
	logger     *logger.Logger
}

// NewReviewUseCase creates a new review use case
func NewReviewUseCase(
	reviewRepo domain.ReviewRepository,
	gameRepo domain.GameRepository,
	logger *logger.Logger,
) domain.ReviewUseCase {
	return &ReviewUseCase{
		reviewRepo: reviewRepo,
		gameRepo:   gameRepo,
		logger:     logger,
	}
}

// CreateReview submits a new review. It enters the moderation queue
// unapproved and stays invisible to other players until approved.
func (uc *ReviewUseCase) CreateReview(authorID string, gameID int64, input domain.ReviewInput) (*domain.Review, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	game, err := uc.gameRepo.GetByID(gameID)
	if err != nil {
		return nil, domain.NewDatabaseError("get game", err)
	}
	if game == nil {
		return nil, domain.NewNotFoundError(domain.ErrCodeGameNotFound, "Game")
	}

	existing, err := uc.reviewRepo.GetByAuthorAndGame(authorID, gameID)
	if err != nil {
		return nil, domain.NewDatabaseError("get review", err)
	}
	if existing != nil {
		return nil, domain.NewConflictError(domain.ErrCodeDuplicateReview, "You have already reviewed this game")
	}

	review := &domain.Review{
		Title:      strings.TrimSpace(input.Title),
		Body:       strings.TrimSpace(input.Body),
		Rating:     input.Rating,
		IsApproved: false,
		AccountID:  authorID,
		GameID:     gameID,
	}
	if err := uc.reviewRepo.Create(review); err != nil {
		// The composite unique index on (account_id, game_id) is the
		// authoritative guard; a concurrent submission loses here.
		if strings.Contains(strings.ToLower(err.Error()), "duplicate") ||
			strings.Contains(strings.ToLower(err.Error()), "unique") {
			return nil, domain.NewConflictError(domain.ErrCodeDuplicateReview, "You have already reviewed this game")
		}
		return nil, domain.NewDatabaseError("create review", err)
	}

	uc.logger.Info("Review submitted",
		zap.Int64("review_id", review.ID),
		zap.Int64("game_id", gameID),
		zap.String("account_id", authorID))

	return review, nil
}

// EditReview updates a review's content. Only the author may edit, and
// any edit sends the review back through moderation.
func (uc *ReviewUseCase) EditReview(reviewID int64, editorID string, input domain.ReviewInput) (*domain.Review, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	review, err := uc.getReview(reviewID)
	if err != nil {
		return nil, err
	}
	if review.AccountID != editorID {
		return nil, domain.NewForbiddenError("Only the author can edit a review")
	}

	review.Title = strings.TrimSpace(input.Title)
	review.Body = strings.TrimSpace(input.Body)
	review.Rating = input.Rating
	review.IsApproved = false

	if err := uc.reviewRepo.Update(review); err != nil {
		return nil, domain.NewDatabaseError("update review", err)
	}

	uc.logger.Info("Review edited, returned to moderation queue",
		zap.Int64("review_id", review.ID))

	return review, nil
}

// DeleteReview removes a review. The author or staff may delete.
func (uc *ReviewUseCase) DeleteReview(reviewID int64, actorID string, actorIsStaff bool) error {
	review, err := uc.getReview(reviewID)
	if err != nil {
		return err
	}
	if review.AccountID != actorID && !actorIsStaff {
		return domain.NewForbiddenError("Only the author or a moderator can delete a review")
	}

	if err := uc.reviewRepo.Delete(reviewID); err != nil {
		return domain.NewDatabaseError("delete review", err)
	}

	uc.logger.Info("Review deleted",
		zap.Int64("review_id", reviewID),
		zap.String("actor_id", actorID))

	return nil
}

// ApproveReview marks a review as visible to all players. Approving an
// already-approved review is a no-op.
func (uc *ReviewUseCase) ApproveReview(reviewID int64, actorIsStaff bool) (*domain.Review, error) {
	if !actorIsStaff {
		return nil, domain.NewForbiddenError("Only moderators can approve reviews")
	}

	review, err := uc.getReview(reviewID)
	if err != nil {
		return nil, err
	}
	if review.IsApproved {
		return review, nil
	}

	review.IsApproved = true
	if err := uc.reviewRepo.Update(review); err != nil {
		return nil, domain.NewDatabaseError("update review", err)
	}

	uc.logger.Info("Review approved", zap.Int64("review_id", review.ID))
	return review, nil
}

// ListVisibleReviews returns the reviews of a game the requester may
// see: approved ones, plus the requester's own pending review. Staff
// see everything.
func (uc *ReviewUseCase) ListVisibleReviews(gameID int64, requesterID string, requesterIsStaff bool) ([]*domain.Review, error) {
	reviews, err := uc.reviewRepo.ListByGame(gameID, false)
	if err != nil {
		return nil, domain.NewDatabaseError("list reviews", err)
	}
	if requesterIsStaff {
		return reviews, nil
	}

	visible := make([]*domain.Review, 0, len(reviews))
	for _, r := range reviews {
		if r.IsApproved || r.AccountID == requesterID {
			visible = append(visible, r)
		}
	}
	return visible, nil
}

// ListAllReviews returns reviews for the moderation console
func (uc *ReviewUseCase) ListAllReviews(filter domain.ReviewFilter) ([]*domain.Review, int64, error) {
	reviews, total, err := uc.reviewRepo.ListAll(filter)
	if err != nil {
		return nil, 0, domain.NewDatabaseError("list reviews", err)
	}
	return reviews, total, nil
}

// ListByAuthor returns all reviews written by an account
func (uc *ReviewUseCase) ListByAuthor(accountID string) ([]*domain.Review, error) {
	reviews, err := uc.reviewRepo.ListByAuthor(accountID)
	if err != nil {
		return nil, domain.NewDatabaseError("list reviews", err)
	}
	return reviews, nil
}

// GameRatingStats aggregates the approved ratings of a game. The
// average is rounded to two decimal places.
func (uc *ReviewUseCase) GameRatingStats(gameID int64) (*domain.RatingStats, error) {
	game, err := uc.gameRepo.GetByID(gameID)
	if err != nil {
		return nil, domain.NewDatabaseError("get game", err)
	}
	if game == nil {
		return nil, domain.NewNotFoundError(domain.ErrCodeGameNotFound, "Game")
	}

	ratings, err := uc.reviewRepo.ApprovedRatings(gameID)
	if err != nil {
		return nil, domain.NewDatabaseError("get ratings", err)
	}

	stats := &domain.RatingStats{
		GameID:    gameID,
		Histogram: make(map[int]int, maxRating),
	}
	for score := minRating; score <= maxRating; score++ {
		stats.Histogram[score] = 0
	}

	if len(ratings) == 0 {
		return stats, nil
	}

	sum := 0
	for _, rating := range ratings {
		sum += rating
		stats.Histogram[rating]++
	}
	stats.ReviewCount = len(ratings)
	stats.AverageScore = math.Round(float64(sum)/float64(len(ratings))*100) / 100

	return stats, nil
}

func (uc *ReviewUseCase) getReview(id int64) (*domain.Review, error) {
	review, err := uc.reviewRepo.GetByID(id)
	if err != nil {
		return nil, domain.NewDatabaseError("get review", err)
	}
	if review == nil {
		return nil, domain.NewNotFoundError(domain.ErrCodeReviewNotFound, "Review")
	}
	return review, nil
}

func validateInput(input domain.ReviewInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return domain.NewValidationError("title", "title is required")
	}
	if strings.TrimSpace(input.Body) == "" {
		return domain.NewValidationError("body", "body is required")
	}
	if input.Rating < minRating || input.Rating > maxRating {
		return domain.NewBusinessRuleError(domain.ErrCodeInvalidRating, "Rating must be between 1 and 5")
	}
	return nil
}
