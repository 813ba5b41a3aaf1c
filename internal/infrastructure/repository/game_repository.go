package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/saradorri/safecasino/internal/domain"
)

// GameRepository implements domain.GameRepository
type GameRepository struct {
	db *gorm.DB
}

// NewGameRepository creates a new game repository
func NewGameRepository(db *gorm.DB) domain.GameRepository {
	return &GameRepository{db: db}
}

// GetByID retrieves a game with its category and provider
func (r *GameRepository) GetByID(id int64) (*domain.CasinoGame, error) {
	var game domain.CasinoGame
	result := r.db.Preload("Category").Preload("Provider").Where("id = ?", id).First(&game)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &game, nil
}

// List retrieves games matching the filter with pagination
func (r *GameRepository) List(filter domain.GameFilter) ([]*domain.CasinoGame, int64, error) {
	query := r.db.Model(&domain.CasinoGame{})

	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.ProviderID != nil {
		query = query.Where("provider_id = ?", *filter.ProviderID)
	}
	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}
	if filter.AvailableOnly {
		query = query.Where("is_available = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var games []*domain.CasinoGame
	result := query.Preload("Category").Preload("Provider").
		Order("name ASC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&games)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	return games, total, nil
}

// ListPopular retrieves available games flagged popular, most played first
func (r *GameRepository) ListPopular(limit int) ([]*domain.CasinoGame, error) {
	var games []*domain.CasinoGame
	err := r.db.Preload("Category").Preload("Provider").
		Where("is_popular = ? AND is_available = ?", true, true).
		Order("play_count DESC").
		Limit(limit).
		Find(&games).Error
	if err != nil {
		return nil, err
	}
	return games, nil
}

// ListNew retrieves available games flagged new, newest first
func (r *GameRepository) ListNew(limit int) ([]*domain.CasinoGame, error) {
	var games []*domain.CasinoGame
	err := r.db.Preload("Category").Preload("Provider").
		Where("is_new = ? AND is_available = ?", true, true).
		Order("created_at DESC").
		Limit(limit).
		Find(&games).Error
	if err != nil {
		return nil, err
	}
	return games, nil
}

// Create creates a new game
func (r *GameRepository) Create(game *domain.CasinoGame) error {
	game.CreatedAt = time.Now()
	game.UpdatedAt = time.Now()
	return r.db.Create(game).Error
}

// Update updates an existing game
func (r *GameRepository) Update(game *domain.CasinoGame) error {
	game.UpdatedAt = time.Now()
	return r.db.Omit("Category", "Provider").Save(game).Error
}

// Delete removes a game; its reviews cascade at the storage layer
func (r *GameRepository) Delete(id int64) error {
	return r.db.Where("id = ?", id).Delete(&domain.CasinoGame{}).Error
}

// IncrementPlayCount bumps the play counter atomically
func (r *GameRepository) IncrementPlayCount(id int64) error {
	return r.db.Model(&domain.CasinoGame{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"play_count": gorm.Expr("play_count + 1"),
			"updated_at": time.Now(),
		}).Error
}

// CountByCategory counts games referencing a category
func (r *GameRepository) CountByCategory(categoryID int64) (int64, error) {
	var count int64
	err := r.db.Model(&domain.CasinoGame{}).Where("category_id = ?", categoryID).Count(&count).Error
	return count, err
}

// CountByProvider counts games referencing a provider
func (r *GameRepository) CountByProvider(providerID int64) (int64, error) {
	var count int64
	err := r.db.Model(&domain.CasinoGame{}).Where("provider_id = ?", providerID).Count(&count).Error
	return count, err
}

// CategoryRepository implements domain.CategoryRepository
type CategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) domain.CategoryRepository {
	return &CategoryRepository{db: db}
}

// GetByID retrieves a category
func (r *CategoryRepository) GetByID(id int64) (*domain.GameCategory, error) {
	var category domain.GameCategory
	result := r.db.Where("id = ?", id).First(&category)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &category, nil
}

// List retrieves categories in display order
func (r *CategoryRepository) List(activeOnly bool) ([]*domain.GameCategory, error) {
	query := r.db.Order("display_order ASC, name ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	var categories []*domain.GameCategory
	if err := query.Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// Create creates a new category
func (r *CategoryRepository) Create(category *domain.GameCategory) error {
	return r.db.Create(category).Error
}

// Update updates an existing category
func (r *CategoryRepository) Update(category *domain.GameCategory) error {
	return r.db.Save(category).Error
}

// Delete removes a category; callers must verify no game references it
func (r *CategoryRepository) Delete(id int64) error {
	return r.db.Where("id = ?", id).Delete(&domain.GameCategory{}).Error
}

// ProviderRepository implements domain.ProviderRepository
type ProviderRepository struct {
	db *gorm.DB
}

// NewProviderRepository creates a new provider repository
func NewProviderRepository(db *gorm.DB) domain.ProviderRepository {
	return &ProviderRepository{db: db}
}

// GetByID retrieves a provider
func (r *ProviderRepository) GetByID(id int64) (*domain.GameProvider, error) {
	var provider domain.GameProvider
	result := r.db.Where("id = ?", id).First(&provider)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &provider, nil
}

// List retrieves providers by name
func (r *ProviderRepository) List(activeOnly bool) ([]*domain.GameProvider, error) {
	query := r.db.Order("name ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	var providers []*domain.GameProvider
	if err := query.Find(&providers).Error; err != nil {
		return nil, err
	}
	return providers, nil
}

// Create creates a new provider
func (r *ProviderRepository) Create(provider *domain.GameProvider) error {
	return r.db.Create(provider).Error
}

// Update updates an existing provider
func (r *ProviderRepository) Update(provider *domain.GameProvider) error {
	return r.db.Save(provider).Error
}

// Delete removes a provider; callers must verify no game references it
func (r *ProviderRepository) Delete(id int64) error {
	return r.db.Where("id = ?", id).Delete(&domain.GameProvider{}).Error
}
