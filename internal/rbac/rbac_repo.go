package rbac

import (
	"gorm.io/gorm"
)

//go:generate mockgen -source=rbac_repo.go -destination=mock/rbac_repo_mock.go -package=mock
type Repository interface {
	GetUserRoles(agencyID string) ([]UserRole, error)
	GetRolePermissions(agencyID string) ([]RolePermission, error)
	AssignRole(agencyID, userID, roleID string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetUserRoles(agencyID string) ([]UserRole, error) {
	var rows []UserRole
	err := r.db.
		Table("user_roles ur").
		Select("ur.user_id::text AS user_id, ur.role_id::text AS role_id").
		Joins("JOIN roles ON roles.id = ur.role_id").
		Where("roles.agency_id = ?", agencyID).
		Scan(&rows).Error
	return rows, err
}

func (r *repository) GetRolePermissions(agencyID string) ([]RolePermission, error) {
	var rows []RolePermission
	err := r.db.
		Table("role_permissions rp").
		Select("rp.role_id::text AS role_id, rp.resource, rp.action").
		Joins("JOIN roles ON roles.id = rp.role_id").
		Where("roles.agency_id = ?", agencyID).
		Scan(&rows).Error
	return rows, err
}

func (r *repository) AssignRole(agencyID, userID, roleID string) error {
	return r.db.Exec(`
		INSERT INTO user_roles (user_id, role_id)
		SELECT ?, roles.id FROM roles
		WHERE roles.id = ? AND roles.agency_id = ?
		ON CONFLICT DO NOTHING
	`, userID, roleID, agencyID).Error
}
