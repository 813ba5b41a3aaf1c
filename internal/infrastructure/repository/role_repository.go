package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/saradorri/safecasino/internal/domain"
)

// RoleRepository implements domain.RoleRepository
type RoleRepository struct {
	db *gorm.DB
}

// NewRoleRepository creates a new role repository
func NewRoleRepository(db *gorm.DB) domain.RoleRepository {
	return &RoleRepository{db: db}
}

// GetByName retrieves a role by its unique name
func (r *RoleRepository) GetByName(name string) (*domain.Role, error) {
	var role domain.Role
	result := r.db.Where("name = ?", name).First(&role)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &role, nil
}

// List retrieves all roles
func (r *RoleRepository) List() ([]*domain.Role, error) {
	var roles []*domain.Role
	if err := r.db.Order("name ASC").Find(&roles).Error; err != nil {
		return nil, err
	}
	return roles, nil
}

// Create creates a new role
func (r *RoleRepository) Create(role *domain.Role) error {
	role.CreatedAt = time.Now()
	return r.db.Create(role).Error
}

// AssignToAccount adds a membership row; the composite primary key on
// account_roles rejects duplicates.
func (r *RoleRepository) AssignToAccount(accountID, roleID string) error {
	return r.db.Exec(
		"INSERT INTO account_roles (account_id, role_id) VALUES (?, ?)",
		accountID, roleID,
	).Error
}

// RemoveFromAccount deletes a membership row
func (r *RoleRepository) RemoveFromAccount(accountID, roleID string) error {
	return r.db.Exec(
		"DELETE FROM account_roles WHERE account_id = ? AND role_id = ?",
		accountID, roleID,
	).Error
}

// ListForAccount retrieves the roles held by an account
func (r *RoleRepository) ListForAccount(accountID string) ([]*domain.Role, error) {
	var roles []*domain.Role
	err := r.db.
		Joins("JOIN account_roles ON account_roles.role_id = roles.id").
		Where("account_roles.account_id = ?", accountID).
		Order("roles.name ASC").
		Find(&roles).Error
	if err != nil {
		return nil, err
	}
	return roles, nil
}

// CountHolders counts the accounts holding the named role
func (r *RoleRepository) CountHolders(roleName string) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Role{}).
		Joins("JOIN account_roles ON account_roles.role_id = roles.id").
		Where("roles.name = ?", roleName).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
