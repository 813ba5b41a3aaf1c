package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/saradorri/safecasino/internal/domain"
)

// ReviewRepository implements domain.ReviewRepository
type ReviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository creates a new review repository
func NewReviewRepository(db *gorm.DB) domain.ReviewRepository {
	return &ReviewRepository{db: db}
}

// GetByID retrieves a review
func (r *ReviewRepository) GetByID(id int64) (*domain.Review, error) {
	var review domain.Review
	result := r.db.Where("id = ?", id).First(&review)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &review, nil
}

// GetByAuthorAndGame retrieves the unique review for an (author, game) pair
func (r *ReviewRepository) GetByAuthorAndGame(accountID string, gameID int64) (*domain.Review, error) {
	var review domain.Review
	result := r.db.Where("account_id = ? AND game_id = ?", accountID, gameID).First(&review)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &review, nil
}

// Create creates a new review; the unique (account_id, game_id) index
// is the authoritative duplicate guard.
func (r *ReviewRepository) Create(review *domain.Review) error {
	review.CreatedAt = time.Now()
	review.UpdatedAt = time.Now()
	return r.db.Create(review).Error
}

// Update updates an existing review
func (r *ReviewRepository) Update(review *domain.Review) error {
	review.UpdatedAt = time.Now()
	return r.db.Save(review).Error
}

// Delete removes a review
func (r *ReviewRepository) Delete(id int64) error {
	return r.db.Where("id = ?", id).Delete(&domain.Review{}).Error
}

// ListByGame retrieves reviews of a game, newest first
func (r *ReviewRepository) ListByGame(gameID int64, approvedOnly bool) ([]*domain.Review, error) {
	query := r.db.Where("game_id = ?", gameID)
	if approvedOnly {
		query = query.Where("is_approved = ?", true)
	}

	var reviews []*domain.Review
	if err := query.Order("created_at DESC").Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// ListByAuthor retrieves all reviews written by an account
func (r *ReviewRepository) ListByAuthor(accountID string) ([]*domain.Review, error) {
	var reviews []*domain.Review
	err := r.db.Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

// ListAll retrieves reviews across all games for moderation
func (r *ReviewRepository) ListAll(filter domain.ReviewFilter) ([]*domain.Review, int64, error) {
	query := r.db.Model(&domain.Review{})
	if filter.PendingOnly {
		query = query.Where("is_approved = ?", false)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reviews []*domain.Review
	result := query.Order("created_at DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&reviews)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	return reviews, total, nil
}

// ApprovedRatings returns the rating values of all approved reviews of
// a game. Aggregates are recomputed on read, not maintained.
func (r *ReviewRepository) ApprovedRatings(gameID int64) ([]int, error) {
	var ratings []int
	err := r.db.Model(&domain.Review{}).
		Where("game_id = ? AND is_approved = ?", gameID, true).
		Pluck("rating", &ratings).Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}
