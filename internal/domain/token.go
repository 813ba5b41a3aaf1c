package domain

import "time"

// TokenPurpose discriminates single-use secrets handed out by email
type TokenPurpose string

const (
	TokenPurposeEmailVerify   TokenPurpose = "email_verify"
	TokenPurposePasswordReset TokenPurpose = "password_reset"
)

// AuthToken is a single-use, time-bounded secret proving control of an
// email address. Only the SHA-256 hash of the secret is stored.
type AuthToken struct {
	ID        string       `json:"id" gorm:"primaryKey;column:id;type:uuid"`
	AccountID string       `json:"account_id" gorm:"index;not null;type:uuid"`
	Purpose   TokenPurpose `json:"purpose" gorm:"not null;type:varchar(32)"`
	TokenHash string       `json:"-" gorm:"not null;type:varchar(64)"`
	ExpiresAt time.Time    `json:"expires_at" gorm:"not null"`
	UsedAt    *time.Time   `json:"used_at,omitempty"`
	CreatedAt time.Time    `json:"created_at" gorm:"not null"`

	Account Account `json:"-" gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for AuthToken
func (t AuthToken) TableName() string {
	return "auth_tokens"
}

// IsValid reports whether the token can still be redeemed at the given instant
func (t *AuthToken) IsValid(now time.Time) bool {
	return t.UsedAt == nil && t.ExpiresAt.After(now)
}

// AuthTokenRepository defines the interface for auth token data
type AuthTokenRepository interface {
	Create(token *AuthToken) error
	GetActive(accountID string, purpose TokenPurpose, tokenHash string) (*AuthToken, error)
	MarkUsed(id string) error
	InvalidateForAccount(accountID string, purpose TokenPurpose) error
}
