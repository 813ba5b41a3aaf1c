package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CasinoGame is a catalog entry
type CasinoGame struct {
	ID            int64           `json:"id" gorm:"primaryKey;column:id;type:bigint;autoIncrement"`
	Name          string          `json:"name" gorm:"not null;type:varchar(128)"`
	Description   string          `json:"description" gorm:"type:text"`
	ThumbnailURL  string          `json:"thumbnail_url" gorm:"type:varchar(512)"`
	MinimumBet    decimal.Decimal `json:"minimum_bet" gorm:"type:numeric(12,2);not null"`
	MaximumBet    decimal.Decimal `json:"maximum_bet" gorm:"type:numeric(12,2);not null"`
	RtpPercentage decimal.Decimal `json:"rtp_percentage" gorm:"type:numeric(5,2);not null"`
	IsAvailable   bool            `json:"is_available" gorm:"not null;default:true"`
	IsNew         bool            `json:"is_new" gorm:"not null;default:false"`
	IsPopular     bool            `json:"is_popular" gorm:"not null;default:false"`
	PlayCount     int64           `json:"play_count" gorm:"not null;default:0"`
	CategoryID    int64           `json:"category_id" gorm:"index;not null;type:bigint"`
	ProviderID    int64           `json:"provider_id" gorm:"index;not null;type:bigint"`
	CreatedAt     time.Time       `json:"created_at" gorm:"not null"`
	UpdatedAt     time.Time       `json:"updated_at" gorm:"not null"`

	Category GameCategory `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Provider GameProvider `json:"provider,omitempty" gorm:"foreignKey:ProviderID"`
}

// TableName specifies the table name for CasinoGame
func (g CasinoGame) TableName() string {
	return "casino_games"
}

// GameCategory is a lookup entity for game types (Slots, Blackjack, ...)
type GameCategory struct {
	ID           int64  `json:"id" gorm:"primaryKey;column:id;type:bigint;autoIncrement"`
	Name         string `json:"name" gorm:"uniqueIndex;not null;type:varchar(64)"`
	Description  string `json:"description" gorm:"type:varchar(256)"`
	IconURL      string `json:"icon_url" gorm:"type:varchar(512)"`
	DisplayOrder int    `json:"display_order" gorm:"not null;default:0"`
	IsActive     bool   `json:"is_active" gorm:"not null;default:true"`
}

// TableName specifies the table name for GameCategory
func (c GameCategory) TableName() string {
	return "game_categories"
}

// GameProvider is a lookup entity for game studios (NetEnt, Microgaming, ...)
type GameProvider struct {
	ID          int64  `json:"id" gorm:"primaryKey;column:id;type:bigint;autoIncrement"`
	Name        string `json:"name" gorm:"uniqueIndex;not null;type:varchar(64)"`
	Description string `json:"description" gorm:"type:varchar(256)"`
	WebsiteURL  string `json:"website_url" gorm:"type:varchar(512)"`
	LogoURL     string `json:"logo_url" gorm:"type:varchar(512)"`
	IsActive    bool   `json:"is_active" gorm:"not null;default:true"`
}

// TableName specifies the table name for GameProvider
func (p GameProvider) TableName() string {
	return "game_providers"
}

// GameFilter narrows catalog listings
type GameFilter struct {
	CategoryID    *int64
	ProviderID    *int64
	Search        string
	AvailableOnly bool
	Limit         int
	Offset        int
}

// GameRepository defines the interface for catalog data
type GameRepository interface {
	GetByID(id int64) (*CasinoGame, error)
	List(filter GameFilter) ([]*CasinoGame, int64, error)
	ListPopular(limit int) ([]*CasinoGame, error)
	ListNew(limit int) ([]*CasinoGame, error)
	Create(game *CasinoGame) error
	Update(game *CasinoGame) error
	Delete(id int64) error
	IncrementPlayCount(id int64) error
	CountByCategory(categoryID int64) (int64, error)
	CountByProvider(providerID int64) (int64, error)
}

// CategoryRepository defines the interface for category lookup data
type CategoryRepository interface {
	GetByID(id int64) (*GameCategory, error)
	List(activeOnly bool) ([]*GameCategory, error)
	Create(category *GameCategory) error
	Update(category *GameCategory) error
	Delete(id int64) error
}

// ProviderRepository defines the interface for provider lookup data
type ProviderRepository interface {
	GetByID(id int64) (*GameProvider, error)
	List(activeOnly bool) ([]*GameProvider, error)
	Create(provider *GameProvider) error
	Update(provider *GameProvider) error
	Delete(id int64) error
}

// GameInput carries the fields for creating or updating a catalog entry
type GameInput struct {
	Name          string
	Description   string
	ThumbnailURL  string
	MinimumBet    decimal.Decimal
	MaximumBet    decimal.Decimal
	RtpPercentage decimal.Decimal
	IsAvailable   bool
	IsNew         bool
	IsPopular     bool
	CategoryID    int64
	ProviderID    int64
}

// CategoryInput carries the fields for creating or updating a category
type CategoryInput struct {
	Name         string
	Description  string
	IconURL      string
	DisplayOrder int
	IsActive     bool
}

// ProviderInput carries the fields for creating or updating a provider
type ProviderInput struct {
	Name        string
	Description string
	WebsiteURL  string
	LogoURL     string
	IsActive    bool
}

// DashboardSummary is the public landing payload
type DashboardSummary struct {
	TotalGames   int64           `json:"total_games"`
	PopularGames []*CasinoGame   `json:"popular_games"`
	NewGames     []*CasinoGame   `json:"new_games"`
	Categories   []*GameCategory `json:"categories"`
}

// CatalogUseCase defines the interface for catalog business logic
type CatalogUseCase interface {
	ListGames(filter GameFilter) ([]*CasinoGame, int64, error)
	GetGame(id int64) (*CasinoGame, error)
	PopularGames(limit int) ([]*CasinoGame, error)
	NewGames(limit int) ([]*CasinoGame, error)
	CreateGame(input GameInput) (*CasinoGame, error)
	UpdateGame(id int64, input GameInput) (*CasinoGame, error)
	DeleteGame(id int64) error
	RecordPlay(id int64) error
	ListCategories() ([]*GameCategory, error)
	ListProviders() ([]*GameProvider, error)
	CreateCategory(input CategoryInput) (*GameCategory, error)
	UpdateCategory(id int64, input CategoryInput) (*GameCategory, error)
	DeleteCategory(id int64) error
	CreateProvider(input ProviderInput) (*GameProvider, error)
	UpdateProvider(id int64, input ProviderInput) (*GameProvider, error)
	DeleteProvider(id int64) error
	Dashboard() (*DashboardSummary, error)
}
