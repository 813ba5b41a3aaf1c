package app

import (
	"gorm.io/gorm"

	"github.com/saradorri/safecasino/internal/domain"
	"github.com/saradorri/safecasino/internal/infrastructure/repository"
)

func (a *application) InitRepository(db *gorm.DB) (
	domain.AccountRepository,
	domain.RoleRepository,
	domain.AuthTokenRepository,
	domain.GameRepository,
	domain.CategoryRepository,
	domain.ProviderRepository,
	domain.ReviewRepository,
	domain.OutboxRepository,
) {
	return repository.NewAccountRepository(db),
		repository.NewRoleRepository(db),
		repository.NewAuthTokenRepository(db),
		repository.NewGameRepository(db),
		repository.NewCategoryRepository(db),
		repository.NewProviderRepository(db),
		repository.NewReviewRepository(db),
		repository.NewOutboxRepository(db)
}
