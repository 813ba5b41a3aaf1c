package seeder

import (
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/saradorri/safecasino/internal/domain"
	"github.com/saradorri/safecasino/internal/infrastructure/password"
)

// Seeder handles database seeding operations
type Seeder struct {
	accountRepo  domain.AccountRepository
	roleRepo     domain.RoleRepository
	categoryRepo domain.CategoryRepository
	providerRepo domain.ProviderRepository
	gameRepo     domain.GameRepository
}

// NewSeeder creates a new seeder instance
func NewSeeder(
	accountRepo domain.AccountRepository,
	roleRepo domain.RoleRepository,
	categoryRepo domain.CategoryRepository,
	providerRepo domain.ProviderRepository,
	gameRepo domain.GameRepository,
) *Seeder {
	return &Seeder{
		accountRepo:  accountRepo,
		roleRepo:     roleRepo,
		categoryRepo: categoryRepo,
		providerRepo: providerRepo,
		gameRepo:     gameRepo,
	}
}

// SeedAll runs every seeding step. Each step is idempotent, so the
// seeder is safe to run against a populated database.
func (s *Seeder) SeedAll() error {
	if err := s.SeedRoles(); err != nil {
		return err
	}
	if err := s.SeedAdminAccount(); err != nil {
		return err
	}
	if err := s.SeedCatalog(); err != nil {
		return err
	}
	return nil
}

// SeedRoles seeds the fixed role set
func (s *Seeder) SeedRoles() error {
	log.Printf("Seeding roles...")

	for _, name := range []string{domain.RoleAdmin, domain.RoleModerator, domain.RolePlayer} {
		existing, err := s.roleRepo.GetByName(name)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}
		if err := s.roleRepo.Create(&domain.Role{ID: uuid.NewString(), Name: name, IsActive: true}); err != nil {
			return err
		}
		log.Printf("Created role %s", name)
	}

	log.Printf("Role seeding completed successfully")
	return nil
}

// SeedAdminAccount seeds a confirmed administrator account
func (s *Seeder) SeedAdminAccount() error {
	log.Printf("Seeding admin account...")

	const adminEmail = "admin@safecasino.local"

	existing, err := s.accountRepo.GetByEmail(adminEmail)
	if err != nil {
		return err
	}
	if existing != nil {
		log.Printf("Admin account already exists, skipping.")
		return nil
	}

	hash, err := password.Hash("ChangeMe-1!", password.DefaultParams())
	if err != nil {
		return err
	}

	account := &domain.Account{
		ID:             uuid.NewString(),
		Email:          adminEmail,
		PasswordHash:   hash,
		FirstName:      "Site",
		LastName:       "Admin",
		DateOfBirth:    time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		Balance:        decimal.Zero,
		RegisteredAt:   time.Now().UTC(),
		EmailConfirmed: true,
		AgeVerified:    true,
		IsActive:       true,
	}
	if err := s.accountRepo.Create(account); err != nil {
		return err
	}

	adminRole, err := s.roleRepo.GetByName(domain.RoleAdmin)
	if err != nil {
		return err
	}
	if adminRole == nil {
		log.Printf("Admin role missing, run role seeding first")
		return nil
	}
	if err := s.roleRepo.AssignToAccount(account.ID, adminRole.ID); err != nil {
		return err
	}

	log.Printf("Admin account seeding completed successfully")
	return nil
}

// SeedCatalog seeds categories, providers and an initial game set
func (s *Seeder) SeedCatalog() error {
	log.Printf("Seeding catalog...")

	categories := []domain.GameCategory{
		{Name: "Slots", Description: "Slot machines and video slots", DisplayOrder: 1, IsActive: true},
		{Name: "Blackjack", Description: "Classic and multi-hand blackjack tables", DisplayOrder: 2, IsActive: true},
		{Name: "Roulette", Description: "European and American roulette", DisplayOrder: 3, IsActive: true},
		{Name: "Poker", Description: "Video poker and table poker", DisplayOrder: 4, IsActive: true},
		{Name: "Live Casino", Description: "Live dealer tables", DisplayOrder: 5, IsActive: true},
	}

	providers := []domain.GameProvider{
		{Name: "NetEnt", WebsiteURL: "https://www.netent.com", IsActive: true},
		{Name: "Microgaming", WebsiteURL: "https://www.microgaming.co.uk", IsActive: true},
		{Name: "Evolution", WebsiteURL: "https://www.evolution.com", IsActive: true},
		{Name: "Playtech", WebsiteURL: "https://www.playtech.com", IsActive: true},
	}

	existingCategories, err := s.categoryRepo.List(false)
	if err != nil {
		return err
	}
	categoryIDs := make(map[string]int64, len(categories))
	for _, c := range existingCategories {
		categoryIDs[c.Name] = c.ID
	}
	for i := range categories {
		c := categories[i]
		if _, ok := categoryIDs[c.Name]; ok {
			continue
		}
		if err := s.categoryRepo.Create(&c); err != nil {
			return err
		}
		categoryIDs[c.Name] = c.ID
	}

	existingProviders, err := s.providerRepo.List(false)
	if err != nil {
		return err
	}
	providerIDs := make(map[string]int64, len(providers))
	for _, p := range existingProviders {
		providerIDs[p.Name] = p.ID
	}
	for i := range providers {
		p := providers[i]
		if _, ok := providerIDs[p.Name]; ok {
			continue
		}
		if err := s.providerRepo.Create(&p); err != nil {
			return err
		}
		providerIDs[p.Name] = p.ID
	}

	games := []struct {
		name     string
		desc     string
		category string
		provider string
		minBet   string
		maxBet   string
		rtp      string
		popular  bool
		isNew    bool
	}{
		{"Starburst", "Five-reel arcade slot with expanding wilds", "Slots", "NetEnt", "0.10", "100.00", "96.09", true, false},
		{"Book of Gold", "Ancient Egypt themed slot with free spins", "Slots", "Microgaming", "0.20", "250.00", "95.50", false, true},
		{"Classic Blackjack", "Single-deck blackjack, dealer stands on 17", "Blackjack", "Playtech", "1.00", "500.00", "99.54", true, false},
		{"European Roulette", "Single-zero roulette wheel", "Roulette", "Playtech", "0.50", "1000.00", "97.30", true, false},
		{"Jacks or Better", "Classic video poker", "Poker", "Microgaming", "0.25", "125.00", "99.54", false, false},
		{"Lightning Roulette", "Live roulette with multiplied straight-up wins", "Live Casino", "Evolution", "0.20", "2000.00", "97.10", true, true},
	}

	existingGames, _, err := s.gameRepo.List(domain.GameFilter{})
	if err != nil {
		return err
	}
	gameNames := make(map[string]bool, len(existingGames))
	for _, g := range existingGames {
		gameNames[g.Name] = true
	}

	for _, g := range games {
		if gameNames[g.name] {
			continue
		}
		categoryID, ok := categoryIDs[g.category]
		if !ok {
			continue
		}
		providerID, ok := providerIDs[g.provider]
		if !ok {
			continue
		}

		game := &domain.CasinoGame{
			Name:          g.name,
			Description:   g.desc,
			MinimumBet:    decimal.RequireFromString(g.minBet),
			MaximumBet:    decimal.RequireFromString(g.maxBet),
			RtpPercentage: decimal.RequireFromString(g.rtp),
			IsAvailable:   true,
			IsNew:         g.isNew,
			IsPopular:     g.popular,
			CategoryID:    categoryID,
			ProviderID:    providerID,
		}
		if err := s.gameRepo.Create(game); err != nil {
			return err
		}
		log.Printf("Created game %s", g.name)
	}

	log.Printf("Catalog seeding completed successfully")
	return nil
}
