package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/saradorri/safecasino/internal/domain"
)

// AuthTokenRepository implements domain.AuthTokenRepository
type AuthTokenRepository struct {
	db *gorm.DB
}

// NewAuthTokenRepository creates a new auth token repository
func NewAuthTokenRepository(db *gorm.DB) domain.AuthTokenRepository {
	return &AuthTokenRepository{db: db}
}

// Create creates a new auth token
func (r *AuthTokenRepository) Create(token *domain.AuthToken) error {
	token.CreatedAt = time.Now()
	return r.db.Create(token).Error
}

// GetActive retrieves an unused, unexpired token matching the hash
func (r *AuthTokenRepository) GetActive(accountID string, purpose domain.TokenPurpose, tokenHash string) (*domain.AuthToken, error) {
	var token domain.AuthToken
	result := r.db.
		Where("account_id = ? AND purpose = ? AND token_hash = ? AND used_at IS NULL AND expires_at > ?",
			accountID, purpose, tokenHash, time.Now()).
		First(&token)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &token, nil
}

// MarkUsed consumes a token
func (r *AuthTokenRepository) MarkUsed(id string) error {
	now := time.Now()
	return r.db.Model(&domain.AuthToken{}).
		Where("id = ?", id).
		Update("used_at", &now).Error
}

// InvalidateForAccount consumes every outstanding token of the given
// purpose, so a fresh issue supersedes older links.
func (r *AuthTokenRepository) InvalidateForAccount(accountID string, purpose domain.TokenPurpose) error {
	now := time.Now()
	return r.db.Model(&domain.AuthToken{}).
		Where("account_id = ? AND purpose = ? AND used_at IS NULL", accountID, purpose).
		Update("used_at", &now).Error
}
