package rbac

type UserRole struct {
	UserID string
	RoleID string
}

type RolePermission struct {
	RoleID   string
	Resource string
	Action   string
}

type AssignRoleRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
	RoleID string `json:"role_id" binding:"required"`
}
