package app

import (
	"github.com/saradorri/safecasino/internal/domain"
	"github.com/saradorri/safecasino/internal/infrastructure/seeder"
)

func (a *application) InitSeeder(
	accountRepo domain.AccountRepository,
	roleRepo domain.RoleRepository,
	categoryRepo domain.CategoryRepository,
	providerRepo domain.ProviderRepository,
	gameRepo domain.GameRepository,
) *seeder.Seeder {
	return seeder.NewSeeder(accountRepo, roleRepo, categoryRepo, providerRepo, gameRepo)
}
