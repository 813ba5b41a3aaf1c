package repository

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/saradorri/safecasino/internal/domain"
)

// AccountRepository implements domain.AccountRepository
type AccountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) domain.AccountRepository {
	return &AccountRepository{db: db}
}

// GetByID retrieves an account with its roles
func (r *AccountRepository) GetByID(id string) (*domain.Account, error) {
	var account domain.Account
	result := r.db.Preload("Roles").Where("id = ?", id).First(&account)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &account, nil
}

// GetByEmail retrieves an account by email, case-insensitively
func (r *AccountRepository) GetByEmail(email string) (*domain.Account, error) {
	var account domain.Account
	result := r.db.Preload("Roles").Where("email = ?", strings.ToLower(email)).First(&account)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &account, nil
}

// GetByIDForUpdate retrieves an account with a row-level lock
func (r *AccountRepository) GetByIDForUpdate(id string) (*domain.Account, error) {
	var account domain.Account
	result := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id).First(&account)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &account, nil
}

// Create creates a new account. Emails are stored lowercase so the
// unique index doubles as the case-insensitive duplicate guard.
func (r *AccountRepository) Create(account *domain.Account) error {
	account.Email = strings.ToLower(account.Email)
	account.CreatedAt = time.Now()
	account.UpdatedAt = time.Now()
	return r.db.Create(account).Error
}

// Update updates an existing account
func (r *AccountRepository) Update(account *domain.Account) error {
	account.UpdatedAt = time.Now()
	return r.db.Omit("Roles").Save(account).Error
}

// Delete removes an account; owned reviews cascade at the storage layer
func (r *AccountRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&domain.Account{}).Error
}

// List retrieves accounts with pagination, newest first
func (r *AccountRepository) List(limit, offset int) ([]*domain.Account, int64, error) {
	var accounts []*domain.Account
	var total int64

	if err := r.db.Model(&domain.Account{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	result := r.db.Preload("Roles").
		Order("registered_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&accounts)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	return accounts, total, nil
}

// UpdateBalance updates only the balance of an account
func (r *AccountRepository) UpdateBalance(id string, newBalance decimal.Decimal) error {
	return r.db.Model(&domain.Account{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"balance":    newBalance,
			"updated_at": time.Now(),
		}).Error
}

// RecordFailedAccess persists the failed-access counter and, when the
// threshold was crossed, the lockout deadline, in one write.
func (r *AccountRepository) RecordFailedAccess(id string, failedCount int, lockoutUntil *time.Time) error {
	return r.db.Model(&domain.Account{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"failed_access_count": failedCount,
			"lockout_until":       lockoutUntil,
			"updated_at":          time.Now(),
		}).Error
}

// ResetAccessState clears the failed counter and any lockout
func (r *AccountRepository) ResetAccessState(id string) error {
	return r.RecordFailedAccess(id, 0, nil)
}

// SetLockout sets or clears the lockout deadline
func (r *AccountRepository) SetLockout(id string, until *time.Time) error {
	return r.db.Model(&domain.Account{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"lockout_until": until,
			"updated_at":    time.Now(),
		}).Error
}

// Stats aggregates account counts
func (r *AccountRepository) Stats() (*domain.AccountStats, error) {
	stats := &domain.AccountStats{}

	if err := r.db.Model(&domain.Account{}).Count(&stats.Total).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&domain.Account{}).Where("email_confirmed = ?", true).Count(&stats.Confirmed).Error; err != nil {
		return nil, err
	}
	stats.Unconfirmed = stats.Total - stats.Confirmed

	if err := r.db.Model(&domain.Account{}).
		Where("lockout_until IS NOT NULL AND lockout_until > ?", time.Now()).
		Count(&stats.LockedOut).Error; err != nil {
		return nil, err
	}

	return stats, nil
}
