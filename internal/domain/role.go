package domain

import "time"

// Well-known role names seeded at bootstrap
const (
	RoleAdmin     = "Admin"
	RoleModerator = "Moderator"
	RolePlayer    = "Player"
)

// Role is a named permission bucket attached to accounts
type Role struct {
	ID          string    `json:"id" gorm:"primaryKey;column:id;type:uuid"`
	Name        string    `json:"name" gorm:"uniqueIndex;not null;type:varchar(64)"`
	Description string    `json:"description" gorm:"type:varchar(256)"`
	IsActive    bool      `json:"is_active" gorm:"not null;default:true"`
	CreatedAt   time.Time `json:"created_at" gorm:"not null"`
}

// TableName specifies the table name for Role
func (r Role) TableName() string {
	return "roles"
}

// IsProtected reports whether the role must always keep at least one holder
func (r Role) IsProtected() bool {
	return r.Name == RoleAdmin
}

// RoleRepository defines the interface for role data
type RoleRepository interface {
	GetByName(name string) (*Role, error)
	List() ([]*Role, error)
	Create(role *Role) error
	AssignToAccount(accountID, roleID string) error
	RemoveFromAccount(accountID, roleID string) error
	ListForAccount(accountID string) ([]*Role, error)
	CountHolders(roleName string) (int64, error)
}
