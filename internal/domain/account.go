package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account represents a registered player or staff member
type Account struct {
	ID                string          `json:"id" gorm:"primaryKey;column:id;type:uuid"`
	Email             string          `json:"email" gorm:"uniqueIndex;not null;type:varchar(256)"`
	PasswordHash      string          `json:"-" gorm:"not null;type:varchar(256)"`
	FirstName         string          `json:"first_name" gorm:"not null;type:varchar(64)"`
	LastName          string          `json:"last_name" gorm:"not null;type:varchar(64)"`
	DateOfBirth       time.Time       `json:"date_of_birth" gorm:"not null"`
	Balance           decimal.Decimal `json:"balance" gorm:"type:numeric(12,2);not null;default:0"`
	RegisteredAt      time.Time       `json:"registered_at" gorm:"not null"`
	EmailConfirmed    bool            `json:"email_confirmed" gorm:"not null;default:false"`
	AgeVerified       bool            `json:"age_verified" gorm:"not null;default:false"`
	IsActive          bool            `json:"is_active" gorm:"not null;default:true"`
	LockoutUntil      *time.Time      `json:"lockout_until,omitempty"`
	FailedAccessCount int             `json:"-" gorm:"not null;default:0"`
	CreatedAt         time.Time       `json:"created_at" gorm:"not null"`
	UpdatedAt         time.Time       `json:"updated_at" gorm:"not null"`

	Roles []Role `json:"roles,omitempty" gorm:"many2many:account_roles"`
}

// TableName specifies the table name for Account
func (a Account) TableName() string {
	return "accounts"
}

// IsLockedOut reports whether the account is locked out at the given instant
func (a *Account) IsLockedOut(now time.Time) bool {
	return a.LockoutUntil != nil && a.LockoutUntil.After(now)
}

// HasRole reports whether the account holds the named role
func (a *Account) HasRole(name string) bool {
	for _, r := range a.Roles {
		if r.Name == name {
			return true
		}
	}
	return false
}

// RoleNames returns the names of all roles held by the account
func (a *Account) RoleNames() []string {
	names := make([]string, 0, len(a.Roles))
	for _, r := range a.Roles {
		names = append(names, r.Name)
	}
	return names
}

// IsStaff reports whether the account holds the Admin or Moderator role
func (a *Account) IsStaff() bool {
	return a.HasRole(RoleAdmin) || a.HasRole(RoleModerator)
}

// Age computes the account holder's age in whole years at the given date
func (a *Account) Age(at time.Time) int {
	age := at.Year() - a.DateOfBirth.Year()
	if at.Month() < a.DateOfBirth.Month() ||
		(at.Month() == a.DateOfBirth.Month() && at.Day() < a.DateOfBirth.Day()) {
		age--
	}
	return age
}

// AccountStats aggregates account counts for the admin dashboard
type AccountStats struct {
	Total       int64 `json:"total"`
	Confirmed   int64 `json:"confirmed"`
	Unconfirmed int64 `json:"unconfirmed"`
	LockedOut   int64 `json:"locked_out"`
}

// AccountRepository defines the interface for account data
type AccountRepository interface {
	GetByID(id string) (*Account, error)
	GetByEmail(email string) (*Account, error)
	Create(account *Account) error
	Update(account *Account) error
	Delete(id string) error
	List(limit, offset int) ([]*Account, int64, error)
	GetByIDForUpdate(id string) (*Account, error)
	UpdateBalance(id string, newBalance decimal.Decimal) error
	RecordFailedAccess(id string, failedCount int, lockoutUntil *time.Time) error
	ResetAccessState(id string) error
	SetLockout(id string, until *time.Time) error
	Stats() (*AccountStats, error)
}

// RegisterInput carries the fields required to register a new account
type RegisterInput struct {
	Email       string
	Password    string
	FirstName   string
	LastName    string
	DateOfBirth time.Time
}

// UpdateProfileInput carries the self-service profile fields
type UpdateProfileInput struct {
	FirstName string
	LastName  string
}

// AdminUpdateInput carries the account fields an admin may overwrite.
// Nil pointers leave the corresponding field untouched.
type AdminUpdateInput struct {
	FirstName      *string
	LastName       *string
	Balance        *decimal.Decimal
	EmailConfirmed *bool
	AgeVerified    *bool
	IsActive       *bool
}

// Principal is the authenticated session identity handed to callers
type Principal struct {
	AccountID string   `json:"account_id"`
	Email     string   `json:"email"`
	Roles     []string `json:"roles"`
}

// AccountUseCase defines the interface for the account lifecycle
type AccountUseCase interface {
	Register(input RegisterInput) (*Account, error)
	VerifyEmail(accountID, token string) (*Account, error)
	ResendVerification(email string) error
	Authenticate(email, password string) (string, *Account, error)
	RequestPasswordReset(email string) error
	ResetPassword(accountID, token, newPassword string) error

	GetProfile(accountID string) (*Account, error)
	UpdateProfile(accountID string, input UpdateProfileInput) (*Account, error)

	ListAccounts(limit, offset int) ([]*Account, int64, error)
	GetAccount(id string) (*Account, error)
	UpdateAccount(id string, input AdminUpdateInput) (*Account, error)
	DeleteAccount(id string) error
	Lock(actorID, accountID string, duration time.Duration) error
	Unlock(accountID string) error

	AssignRole(accountID, roleName string) error
	RemoveRole(accountID, roleName string) error
	RolesOf(accountID string) ([]string, error)
	ListRoles() ([]*Role, error)
	AccountStats() (*AccountStats, error)
	RoleStats() (map[string]int64, error)
}

// WalletUseCase defines the interface for balance mutations
type WalletUseCase interface {
	Balance(accountID string) (decimal.Decimal, error)
	Credit(accountID string, amount decimal.Decimal) (decimal.Decimal, error)
	Debit(accountID string, amount decimal.Decimal) (decimal.Decimal, error)
}
