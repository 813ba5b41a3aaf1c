package catalog

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/saradorri/safecasino/internal/domain"
	"github.com/saradorri/safecasino/internal/domain/mocks"
	"github.com/saradorri/safecasino/internal/infrastructure/logger"
)

type catalogFixture struct {
	gameRepo     *mocks.MockGameRepository
	categoryRepo *mocks.MockCategoryRepository
	providerRepo *mocks.MockProviderRepository
	useCase      *CatalogUseCase
}

func newCatalogFixture(ctrl *gomock.Controller) *catalogFixture {
	f := &catalogFixture{
		gameRepo:     mocks.NewMockGameRepository(ctrl),
		categoryRepo: mocks.NewMockCategoryRepository(ctrl),
		providerRepo: mocks.NewMockProviderRepository(ctrl),
	}
	f.useCase = &CatalogUseCase{
		gameRepo:     f.gameRepo,
		categoryRepo: f.categoryRepo,
		providerRepo: f.providerRepo,
		cache:        nil,
		logger:       logger.NewLogger("test", "debug"),
	}
	return f
}

func validGameInput() domain.GameInput {
	return domain.GameInput{
		Name:          "Lucky Wheel",
		Description:   "A spinning wheel of fortune.",
		MinimumBet:    decimal.RequireFromString("0.10"),
		MaximumBet:    decimal.RequireFromString("100.00"),
		RtpPercentage: decimal.RequireFromString("96.50"),
		IsAvailable:   true,
		CategoryID:    1,
		ProviderID:    2,
	}
}

func activeCategory() *domain.GameCategory {
	return &domain.GameCategory{ID: 1, Name: "Slots", IsActive: true}
}

func activeProvider() *domain.GameProvider {
	return &domain.GameProvider{ID: 2, Name: "NetEnt", IsActive: true}
}

func TestCatalogUseCase_CreateGame(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("valid input creates the game", func(t *testing.T) {
		f := newCatalogFixture(ctrl)
		f.categoryRepo.EXPECT().GetByID(int64(1)).Return(activeCategory(), nil)
		f.providerRepo.EXPECT().GetByID(int64(2)).Return(activeProvider(), nil)
		f.gameRepo.EXPECT().Create(gomock.Any()).Return(nil)

		game, err := f.useCase.CreateGame(validGameInput())

		assert.NoError(t, err)
		assert.Equal(t, "Lucky Wheel", game.Name)
		assert.Equal(t, int64(1), game.CategoryID)
	})

	t.Run("bet range violations are rejected", func(t *testing.T) {
		tests := []struct {
			name string
			min  string
			max  string
		}{
			{"negative minimum", "-0.10", "100.00"},
			{"zero maximum", "0.00", "0.00"},
			{"minimum above maximum", "50.00", "10.00"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				f := newCatalogFixture(ctrl)
				input := validGameInput()
				input.MinimumBet = decimal.RequireFromString(tt.min)
				input.MaximumBet = decimal.RequireFromString(tt.max)

				_, err := f.useCase.CreateGame(input)

				appErr, ok := domain.IsAppError(err)
				assert.True(t, ok)
				assert.Equal(t, domain.ErrCodeInvalidBetRange, appErr.Code)
			})
		}
	})

	t.Run("RTP outside (0,100] is rejected", func(t *testing.T) {
		for _, rtp := range []string{"0", "-5", "100.01"} {
			f := newCatalogFixture(ctrl)
			input := validGameInput()
			input.RtpPercentage = decimal.RequireFromString(rtp)

			_, err := f.useCase.CreateGame(input)

			appErr, ok := domain.IsAppError(err)
			assert.True(t, ok)
			assert.Equal(t, domain.ErrCodeInvalidRtp, appErr.Code)
		}
	})

	t.Run("inactive category is rejected", func(t *testing.T) {
		f := newCatalogFixture(ctrl)
		inactive := activeCategory()
		inactive.IsActive = false
		f.categoryRepo.EXPECT().GetByID(int64(1)).Return(inactive, nil)

		_, err := f.useCase.CreateGame(validGameInput())

		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeCategoryInactive, appErr.Code)
	})

	t.Run("unknown provider is not found", func(t *testing.T) {
		f := newCatalogFixture(ctrl)
		f.categoryRepo.EXPECT().GetByID(int64(1)).Return(activeCategory(), nil)
		f.providerRepo.EXPECT().GetByID(int64(2)).Return(nil, nil)

		_, err := f.useCase.CreateGame(validGameInput())

		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeProviderNotFound, appErr.Code)
	})
}

func TestCatalogUseCase_UpdateGame(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	existing := func() *domain.CasinoGame {
		return &domain.CasinoGame{
			ID:            7,
			Name:          "Lucky Wheel",
			MinimumBet:    decimal.RequireFromString("0.10"),
			MaximumBet:    decimal.RequireFromString("100.00"),
			RtpPercentage: decimal.RequireFromString("96.50"),
			CategoryID:    1,
			ProviderID:    2,
		}
	}

	t.Run("keeping an inactive category is allowed when unchanged", func(t *testing.T) {
		f := newCatalogFixture(ctrl)
		inactive := activeCategory()
		inactive.IsActive = false
		f.gameRepo.EXPECT().GetByID(int64(7)).Return(existing(), nil)
		f.categoryRepo.EXPECT().GetByID(int64(1)).Return(inactive, nil)
		f.providerRepo.EXPECT().GetByID(int64(2)).Return(activeProvider(), nil)
		f.gameRepo.EXPECT().Update(gomock.Any()).Return(nil)

		game, err := f.useCase.UpdateGame(7, validGameInput())

		assert.NoError(t, err)
		assert.Equal(t, int64(1), game.CategoryID)
	})

	t.Run("re-pointing to an inactive category is rejected", func(t *testing.T) {
		f := newCatalogFixture(ctrl)
		inactive := &domain.GameCategory{ID: 9, Name: "Retired", IsActive: false}
		input := validGameInput()
		input.CategoryID = 9
		f.gameRepo.EXPECT().GetByID(int64(7)).Return(existing(), nil)
		f.categoryRepo.EXPECT().GetByID(int64(9)).Return(inactive, nil)

		_, err := f.useCase.UpdateGame(7, input)

		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeCategoryInactive, appErr.Code)
	})

	t.Run("unknown game is not found", func(t *testing.T) {
		f := newCatalogFixture(ctrl)
		f.gameRepo.EXPECT().GetByID(int64(99)).Return(nil, nil)

		_, err := f.useCase.UpdateGame(99, validGameInput())

		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeGameNotFound, appErr.Code)
	})
}

func TestCatalogUseCase_DeleteCategory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("a category with games assigned cannot be deleted", func(t *testing.T) {
		f := newCatalogFixture(ctrl)
		f.categoryRepo.EXPECT().GetByID(int64(1)).Return(activeCategory(), nil)
		f.gameRepo.EXPECT().CountByCategory(int64(1)).Return(int64(3), nil)

		err := f.useCase.DeleteCategory(1)

		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeCategoryInUse, appErr.Code)
	})

	t.Run("an empty category can be deleted", func(t *testing.T) {
		f := newCatalogFixture(ctrl)
		f.categoryRepo.EXPECT().GetByID(int64(1)).Return(activeCategory(), nil)
		f.gameRepo.EXPECT().CountByCategory(int64(1)).Return(int64(0), nil)
		f.categoryRepo.EXPECT().Delete(int64(1)).Return(nil)

		assert.NoError(t, f.useCase.DeleteCategory(1))
	})
}

func TestCatalogUseCase_DeleteProvider(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("a provider with games assigned cannot be deleted", func(t *testing.T) {
		f := newCatalogFixture(ctrl)
		f.providerRepo.EXPECT().GetByID(int64(2)).Return(activeProvider(), nil)
		f.gameRepo.EXPECT().CountByProvider(int64(2)).Return(int64(1), nil)

		err := f.useCase.DeleteProvider(2)

		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeProviderInUse, appErr.Code)
	})
}

func TestCatalogUseCase_CreateCategory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("a valid category is created with its name trimmed", func(t *testing.T) {
		f := newCatalogFixture(ctrl)
		f.categoryRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(c *domain.GameCategory) error {
			assert.Equal(t, "Table Games", c.Name)
			assert.True(t, c.IsActive)
			c.ID = 7
			return nil
		})

		category, err := f.useCase.CreateCategory(domain.CategoryInput{
			Name:     "  Table Games  ",
			IsActive: true,
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(7), category.ID)
	})

	t.Run("a blank name is rejected", func(t *testing.T) {
		f := newCatalogFixture(ctrl)

		_, err := f.useCase.CreateCategory(domain.CategoryInput{Name: "   "})

		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	})

	t.Run("a unique index violation maps to a name conflict", func(t *testing.T) {
		f := newCatalogFixture(ctrl)
		f.categoryRepo.EXPECT().Create(gomock.Any()).
			Return(assertableError("duplicate key value violates unique constraint"))

		_, err := f.useCase.CreateCategory(domain.CategoryInput{Name: "Slots"})

		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeDuplicateName, appErr.Code)
	})
}

func TestCatalogUseCase_UpdateProvider(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("an existing provider can be renamed and deactivated", func(t *testing.T) {
		f := newCatalogFixture(ctrl)
		f.providerRepo.EXPECT().GetByID(int64(2)).Return(activeProvider(), nil)
		f.providerRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(p *domain.GameProvider) error {
			assert.Equal(t, "NetEnt AB", p.Name)
			assert.False(t, p.IsActive)
			return nil
		})

		provider, err := f.useCase.UpdateProvider(2, domain.ProviderInput{
			Name:     "NetEnt AB",
			IsActive: false,
		})

		assert.NoError(t, err)
		assert.Equal(t, "NetEnt AB", provider.Name)
	})

	t.Run("an unknown provider yields not found", func(t *testing.T) {
		f := newCatalogFixture(ctrl)
		f.providerRepo.EXPECT().GetByID(int64(99)).Return(nil, nil)

		_, err := f.useCase.UpdateProvider(99, domain.ProviderInput{Name: "Ghost"})

		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeProviderNotFound, appErr.Code)
	})
}

func TestCatalogUseCase_RecordPlay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("recording a play increments the counter", func(t *testing.T) {
		f := newCatalogFixture(ctrl)
		f.gameRepo.EXPECT().GetByID(int64(7)).Return(&domain.CasinoGame{ID: 7}, nil)
		f.gameRepo.EXPECT().IncrementPlayCount(int64(7)).Return(nil)

		assert.NoError(t, f.useCase.RecordPlay(7))
	})

	t.Run("unknown game is not found", func(t *testing.T) {
		f := newCatalogFixture(ctrl)
		f.gameRepo.EXPECT().GetByID(int64(99)).Return(nil, nil)

		err := f.useCase.RecordPlay(99)

		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeGameNotFound, appErr.Code)
	})
}

func TestCatalogUseCase_Dashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("dashboard aggregates totals, highlights and categories", func(t *testing.T) {
		f := newCatalogFixture(ctrl)
		popular := []*domain.CasinoGame{{ID: 1, IsPopular: true}}
		newest := []*domain.CasinoGame{{ID: 2, IsNew: true}}
		categories := []*domain.GameCategory{activeCategory()}

		f.gameRepo.EXPECT().List(domain.GameFilter{AvailableOnly: true, Limit: 1}).Return(nil, int64(42), nil)
		f.gameRepo.EXPECT().ListPopular(defaultHighlightLimit).Return(popular, nil)
		f.gameRepo.EXPECT().ListNew(defaultHighlightLimit).Return(newest, nil)
		f.categoryRepo.EXPECT().List(true).Return(categories, nil)

		summary, err := f.useCase.Dashboard()

		assert.NoError(t, err)
		assert.Equal(t, int64(42), summary.TotalGames)
		assert.Len(t, summary.PopularGames, 1)
		assert.Len(t, summary.NewGames, 1)
		assert.Len(t, summary.Categories, 1)
	})
}

func TestCatalogUseCase_PopularGames(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("non-positive limit falls back to the default", func(t *testing.T) {
		f := newCatalogFixture(ctrl)
		f.gameRepo.EXPECT().ListPopular(defaultHighlightLimit).Return([]*domain.CasinoGame{{ID: 1}}, nil)

		games, err := f.useCase.PopularGames(0)

		assert.NoError(t, err)
		assert.Len(t, games, 1)
	})
}

// assertableError keeps the driver error text assertions readable
type assertableError string

func (e assertableError) Error() string { return string(e) }
