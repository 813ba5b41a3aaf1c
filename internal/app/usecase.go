package app

import (
	"github.com/saradorri/safecasino/internal/domain"
	"github.com/saradorri/safecasino/internal/infrastructure/auth"
	"github.com/saradorri/safecasino/internal/infrastructure/cache"
	"github.com/saradorri/safecasino/internal/infrastructure/lock"
	"github.com/saradorri/safecasino/internal/infrastructure/logger"
	"github.com/saradorri/safecasino/internal/usecase/account"
	"github.com/saradorri/safecasino/internal/usecase/catalog"
	"github.com/saradorri/safecasino/internal/usecase/review"
	"github.com/saradorri/safecasino/internal/usecase/wallet"
)

func (a *application) InitAccountUseCase(
	accountRepo domain.AccountRepository,
	roleRepo domain.RoleRepository,
	tokenRepo domain.AuthTokenRepository,
	outboxRepo domain.OutboxRepository,
	jwtSvc auth.JWTService,
	lockManager *lock.KeyedLockManager,
	log *logger.Logger,
) domain.AccountUseCase {
	return account.NewAccountUseCase(accountRepo, roleRepo, tokenRepo, outboxRepo, jwtSvc, lockManager, a.config.Account, log)
}

func (a *application) InitWalletUseCase(
	accountRepo domain.AccountRepository,
	lockManager *lock.KeyedLockManager,
	log *logger.Logger,
) domain.WalletUseCase {
	return wallet.NewWalletUseCase(accountRepo, lockManager, log)
}

func (a *application) InitReviewUseCase(
	reviewRepo domain.ReviewRepository,
	gameRepo domain.GameRepository,
	log *logger.Logger,
) domain.ReviewUseCase {
	return review.NewReviewUseCase(reviewRepo, gameRepo, log)
}

func (a *application) InitCatalogUseCase(
	gameRepo domain.GameRepository,
	categoryRepo domain.CategoryRepository,
	providerRepo domain.ProviderRepository,
	c *cache.Cache,
	log *logger.Logger,
) domain.CatalogUseCase {
	return catalog.NewCatalogUseCase(gameRepo, categoryRepo, providerRepo, c, log)
}
