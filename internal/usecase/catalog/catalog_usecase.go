package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/saradorri/safecasino/internal/domain"
	"github.com/saradorri/safecasino/internal/infrastructure/cache"
	"github.com/saradorri/safecasino/internal/infrastructure/logger"
)

const (
	cacheKeyDashboard = "catalog:dashboard"
	cacheKeyPopular   = "catalog:popular:%d"
	cacheKeyNew       = "catalog:new:%d"

	defaultHighlightLimit = 10
	maxRtp                = 100
)

// CatalogUseCase implements domain.CatalogUseCase
type CatalogUseCase struct {
	gameRepo     domain.GameRepository
	categoryRepo domain.CategoryRepository
	providerRepo domain.ProviderRepository
	cache        *cache.Cache
	logger       *logger.Logger
}

// NewCatalogUseCase creates a new catalog use case. The cache is
// optional; a nil cache disables the read-through layer.
func NewCatalogUseCase(
	gameRepo domain.GameRepository,
	categoryRepo domain.CategoryRepository,
	providerRepo domain.ProviderRepository,
	cache *cache.Cache,
	logger *logger.Logger,
) domain.CatalogUseCase {
	return &CatalogUseCase{
		gameRepo:     gameRepo,
		categoryRepo: categoryRepo,
		providerRepo: providerRepo,
		cache:        cache,
		logger:       logger,
	}
}

// ListGames returns a filtered page of the catalog
func (uc *CatalogUseCase) ListGames(filter domain.GameFilter) ([]*domain.CasinoGame, int64, error) {
	games, total, err := uc.gameRepo.List(filter)
	if err != nil {
		return nil, 0, domain.NewDatabaseError("list games", err)
	}
	return games, total, nil
}

// GetGame retrieves a single catalog entry
func (uc *CatalogUseCase) GetGame(id int64) (*domain.CasinoGame, error) {
	game, err := uc.gameRepo.GetByID(id)
	if err != nil {
		return nil, domain.NewDatabaseError("get game", err)
	}
	if game == nil {
		return nil, domain.NewNotFoundError(domain.ErrCodeGameNotFound, "Game")
	}
	return game, nil
}

// PopularGames returns the most-played games, cached under a short TTL
func (uc *CatalogUseCase) PopularGames(limit int) ([]*domain.CasinoGame, error) {
	if limit <= 0 {
		limit = defaultHighlightLimit
	}

	key := fmt.Sprintf(cacheKeyPopular, limit)
	var cached []*domain.CasinoGame
	if uc.cacheGet(key, &cached) {
		return cached, nil
	}

	games, err := uc.gameRepo.ListPopular(limit)
	if err != nil {
		return nil, domain.NewDatabaseError("list popular games", err)
	}

	uc.cacheSet(key, games)
	return games, nil
}

// NewGames returns the most recently added games, cached under a short TTL
func (uc *CatalogUseCase) NewGames(limit int) ([]*domain.CasinoGame, error) {
	if limit <= 0 {
		limit = defaultHighlightLimit
	}

	key := fmt.Sprintf(cacheKeyNew, limit)
	var cached []*domain.CasinoGame
	if uc.cacheGet(key, &cached) {
		return cached, nil
	}

	games, err := uc.gameRepo.ListNew(limit)
	if err != nil {
		return nil, domain.NewDatabaseError("list new games", err)
	}

	uc.cacheSet(key, games)
	return games, nil
}

// CreateGame adds a catalog entry. The category and provider must exist
// and be active at creation time.
func (uc *CatalogUseCase) CreateGame(input domain.GameInput) (*domain.CasinoGame, error) {
	if err := uc.validateInput(input, true); err != nil {
		return nil, err
	}

	game := &domain.CasinoGame{
		Name:          strings.TrimSpace(input.Name),
		Description:   input.Description,
		ThumbnailURL:  input.ThumbnailURL,
		MinimumBet:    input.MinimumBet,
		MaximumBet:    input.MaximumBet,
		RtpPercentage: input.RtpPercentage,
		IsAvailable:   input.IsAvailable,
		IsNew:         input.IsNew,
		IsPopular:     input.IsPopular,
		CategoryID:    input.CategoryID,
		ProviderID:    input.ProviderID,
	}
	if err := uc.gameRepo.Create(game); err != nil {
		return nil, domain.NewDatabaseError("create game", err)
	}

	uc.logger.Info("Game created",
		zap.Int64("game_id", game.ID),
		zap.String("name", game.Name))

	return game, nil
}

// UpdateGame edits a catalog entry. Category and provider references
// must exist; an inactive category or provider keeps existing games but
// rejects re-pointing to it.
func (uc *CatalogUseCase) UpdateGame(id int64, input domain.GameInput) (*domain.CasinoGame, error) {
	game, err := uc.GetGame(id)
	if err != nil {
		return nil, err
	}

	requireActive := input.CategoryID != game.CategoryID || input.ProviderID != game.ProviderID
	if err := uc.validateInput(input, requireActive); err != nil {
		return nil, err
	}

	game.Name = strings.TrimSpace(input.Name)
	game.Description = input.Description
	game.ThumbnailURL = input.ThumbnailURL
	game.MinimumBet = input.MinimumBet
	game.MaximumBet = input.MaximumBet
	game.RtpPercentage = input.RtpPercentage
	game.IsAvailable = input.IsAvailable
	game.IsNew = input.IsNew
	game.IsPopular = input.IsPopular
	game.CategoryID = input.CategoryID
	game.ProviderID = input.ProviderID

	if err := uc.gameRepo.Update(game); err != nil {
		return nil, domain.NewDatabaseError("update game", err)
	}

	uc.logger.Info("Game updated", zap.Int64("game_id", game.ID))
	return game, nil
}

// DeleteGame removes a catalog entry and, via cascade, its reviews
func (uc *CatalogUseCase) DeleteGame(id int64) error {
	if _, err := uc.GetGame(id); err != nil {
		return err
	}
	if err := uc.gameRepo.Delete(id); err != nil {
		return domain.NewDatabaseError("delete game", err)
	}
	uc.logger.Info("Game deleted", zap.Int64("game_id", id))
	return nil
}

// RecordPlay increments a game's play counter
func (uc *CatalogUseCase) RecordPlay(id int64) error {
	if _, err := uc.GetGame(id); err != nil {
		return err
	}
	if err := uc.gameRepo.IncrementPlayCount(id); err != nil {
		return domain.NewDatabaseError("increment play count", err)
	}
	return nil
}

// ListCategories returns the active categories in display order
func (uc *CatalogUseCase) ListCategories() ([]*domain.GameCategory, error) {
	categories, err := uc.categoryRepo.List(true)
	if err != nil {
		return nil, domain.NewDatabaseError("list categories", err)
	}
	return categories, nil
}

// ListProviders returns the active providers
func (uc *CatalogUseCase) ListProviders() ([]*domain.GameProvider, error) {
	providers, err := uc.providerRepo.List(true)
	if err != nil {
		return nil, domain.NewDatabaseError("list providers", err)
	}
	return providers, nil
}

// CreateCategory adds a lookup entry. The unique index on name is the
// authoritative guard against duplicates.
func (uc *CatalogUseCase) CreateCategory(input domain.CategoryInput) (*domain.GameCategory, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domain.NewValidationError("name", "name is required")
	}

	category := &domain.GameCategory{
		Name:         name,
		Description:  input.Description,
		IconURL:      input.IconURL,
		DisplayOrder: input.DisplayOrder,
		IsActive:     input.IsActive,
	}
	if err := uc.categoryRepo.Create(category); err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "duplicate") ||
			strings.Contains(strings.ToLower(err.Error()), "unique") {
			return nil, domain.NewConflictError(domain.ErrCodeDuplicateName, "A category with this name already exists")
		}
		return nil, domain.NewDatabaseError("create category", err)
	}

	uc.logger.Info("Category created",
		zap.Int64("category_id", category.ID),
		zap.String("name", category.Name))

	return category, nil
}

// UpdateCategory edits a lookup entry. Deactivating a category keeps
// the games that already reference it.
func (uc *CatalogUseCase) UpdateCategory(id int64, input domain.CategoryInput) (*domain.GameCategory, error) {
	category, err := uc.categoryRepo.GetByID(id)
	if err != nil {
		return nil, domain.NewDatabaseError("get category", err)
	}
	if category == nil {
		return nil, domain.NewNotFoundError(domain.ErrCodeCategoryNotFound, "Category")
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domain.NewValidationError("name", "name is required")
	}

	category.Name = name
	category.Description = input.Description
	category.IconURL = input.IconURL
	category.DisplayOrder = input.DisplayOrder
	category.IsActive = input.IsActive

	if err := uc.categoryRepo.Update(category); err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "duplicate") ||
			strings.Contains(strings.ToLower(err.Error()), "unique") {
			return nil, domain.NewConflictError(domain.ErrCodeDuplicateName, "A category with this name already exists")
		}
		return nil, domain.NewDatabaseError("update category", err)
	}

	uc.logger.Info("Category updated", zap.Int64("category_id", category.ID))
	return category, nil
}

// DeleteCategory removes a category unless games still reference it
func (uc *CatalogUseCase) DeleteCategory(id int64) error {
	category, err := uc.categoryRepo.GetByID(id)
	if err != nil {
		return domain.NewDatabaseError("get category", err)
	}
	if category == nil {
		return domain.NewNotFoundError(domain.ErrCodeCategoryNotFound, "Category")
	}

	count, err := uc.gameRepo.CountByCategory(id)
	if err != nil {
		return domain.NewDatabaseError("count games", err)
	}
	if count > 0 {
		return domain.NewConflictError(domain.ErrCodeCategoryInUse, "Category still has games assigned")
	}

	if err := uc.categoryRepo.Delete(id); err != nil {
		return domain.NewDatabaseError("delete category", err)
	}
	return nil
}

// CreateProvider adds a lookup entry. The unique index on name is the
// authoritative guard against duplicates.
func (uc *CatalogUseCase) CreateProvider(input domain.ProviderInput) (*domain.GameProvider, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domain.NewValidationError("name", "name is required")
	}

	provider := &domain.GameProvider{
		Name:        name,
		Description: input.Description,
		WebsiteURL:  input.WebsiteURL,
		LogoURL:     input.LogoURL,
		IsActive:    input.IsActive,
	}
	if err := uc.providerRepo.Create(provider); err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "duplicate") ||
			strings.Contains(strings.ToLower(err.Error()), "unique") {
			return nil, domain.NewConflictError(domain.ErrCodeDuplicateName, "A provider with this name already exists")
		}
		return nil, domain.NewDatabaseError("create provider", err)
	}

	uc.logger.Info("Provider created",
		zap.Int64("provider_id", provider.ID),
		zap.String("name", provider.Name))

	return provider, nil
}

// UpdateProvider edits a lookup entry
func (uc *CatalogUseCase) UpdateProvider(id int64, input domain.ProviderInput) (*domain.GameProvider, error) {
	provider, err := uc.providerRepo.GetByID(id)
	if err != nil {
		return nil, domain.NewDatabaseError("get provider", err)
	}
	if provider == nil {
		return nil, domain.NewNotFoundError(domain.ErrCodeProviderNotFound, "Provider")
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domain.NewValidationError("name", "name is required")
	}

	provider.Name = name
	provider.Description = input.Description
	provider.WebsiteURL = input.WebsiteURL
	provider.LogoURL = input.LogoURL
	provider.IsActive = input.IsActive

	if err := uc.providerRepo.Update(provider); err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "duplicate") ||
			strings.Contains(strings.ToLower(err.Error()), "unique") {
			return nil, domain.NewConflictError(domain.ErrCodeDuplicateName, "A provider with this name already exists")
		}
		return nil, domain.NewDatabaseError("update provider", err)
	}

	uc.logger.Info("Provider updated", zap.Int64("provider_id", provider.ID))
	return provider, nil
}

// DeleteProvider removes a provider unless games still reference it
func (uc *CatalogUseCase) DeleteProvider(id int64) error {
	provider, err := uc.providerRepo.GetByID(id)
	if err != nil {
		return domain.NewDatabaseError("get provider", err)
	}
	if provider == nil {
		return domain.NewNotFoundError(domain.ErrCodeProviderNotFound, "Provider")
	}

	count, err := uc.gameRepo.CountByProvider(id)
	if err != nil {
		return domain.NewDatabaseError("count games", err)
	}
	if count > 0 {
		return domain.NewConflictError(domain.ErrCodeProviderInUse, "Provider still has games assigned")
	}

	if err := uc.providerRepo.Delete(id); err != nil {
		return domain.NewDatabaseError("delete provider", err)
	}
	return nil
}

// Dashboard assembles the public landing payload, cached under a short TTL
func (uc *CatalogUseCase) Dashboard() (*domain.DashboardSummary, error) {
	var cached domain.DashboardSummary
	if uc.cacheGet(cacheKeyDashboard, &cached) {
		return &cached, nil
	}

	_, total, err := uc.gameRepo.List(domain.GameFilter{AvailableOnly: true, Limit: 1})
	if err != nil {
		return nil, domain.NewDatabaseError("count games", err)
	}
	popular, err := uc.gameRepo.ListPopular(defaultHighlightLimit)
	if err != nil {
		return nil, domain.NewDatabaseError("list popular games", err)
	}
	newest, err := uc.gameRepo.ListNew(defaultHighlightLimit)
	if err != nil {
		return nil, domain.NewDatabaseError("list new games", err)
	}
	categories, err := uc.categoryRepo.List(true)
	if err != nil {
		return nil, domain.NewDatabaseError("list categories", err)
	}

	summary := &domain.DashboardSummary{
		TotalGames:   total,
		PopularGames: popular,
		NewGames:     newest,
		Categories:   categories,
	}

	uc.cacheSet(cacheKeyDashboard, summary)
	return summary, nil
}

func (uc *CatalogUseCase) validateInput(input domain.GameInput, requireActiveRefs bool) error {
	if strings.TrimSpace(input.Name) == "" {
		return domain.NewValidationError("name", "name is required")
	}
	if input.MinimumBet.IsNegative() || !input.MaximumBet.IsPositive() ||
		input.MinimumBet.GreaterThan(input.MaximumBet) {
		return domain.NewBusinessRuleError(domain.ErrCodeInvalidBetRange, "Minimum bet must be non-negative and not exceed maximum bet")
	}
	if !input.RtpPercentage.IsPositive() || input.RtpPercentage.GreaterThan(decimal.NewFromInt(maxRtp)) {
		return domain.NewBusinessRuleError(domain.ErrCodeInvalidRtp, "RTP must be between 0 and 100 percent")
	}

	category, err := uc.categoryRepo.GetByID(input.CategoryID)
	if err != nil {
		return domain.NewDatabaseError("get category", err)
	}
	if category == nil {
		return domain.NewNotFoundError(domain.ErrCodeCategoryNotFound, "Category")
	}
	if requireActiveRefs && !category.IsActive {
		return domain.NewBusinessRuleError(domain.ErrCodeCategoryInactive, "Category is not active")
	}

	provider, err := uc.providerRepo.GetByID(input.ProviderID)
	if err != nil {
		return domain.NewDatabaseError("get provider", err)
	}
	if provider == nil {
		return domain.NewNotFoundError(domain.ErrCodeProviderNotFound, "Provider")
	}
	if requireActiveRefs && !provider.IsActive {
		return domain.NewBusinessRuleError(domain.ErrCodeProviderInactive, "Provider is not active")
	}

	return nil
}

func (uc *CatalogUseCase) cacheGet(key string, dest interface{}) bool {
	if uc.cache == nil {
		return false
	}
	err := uc.cache.GetJSON(context.Background(), key, dest)
	if err == nil {
		return true
	}
	if !errors.Is(err, cache.ErrMiss) {
		uc.logger.Warn("Cache read failed", zap.String("key", key), zap.Error(err))
	}
	return false
}

func (uc *CatalogUseCase) cacheSet(key string, value interface{}) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.SetJSON(context.Background(), key, value); err != nil {
		uc.logger.Warn("Cache write failed", zap.String("key", key), zap.Error(err))
	}
}
