package models

import "time"

// AdminRole restricts dashboard access to known roles.
type AdminRole string

const (
	RoleAdmin      AdminRole = "admin"
	RoleSuperAdmin AdminRole = "superadmin"
)

func (r AdminRole) IsValid() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// Admin is a dashboard account row
type Admin struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	Role         AdminRole
	CreatedAt    time.Time
}

// AdminSession is the authenticated session stored in request context
type AdminSession struct {
	AdminID   string    `json:"adminId"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      AdminRole `json:"role"`
	ExpiresAt int64     `json:"expiresAt"`
	IssuedAt  int64     `json:"issuedAt"`
}

// AdminLoginRequest is the login form payload
type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AdminLoginResponse is returned after a successful login
type AdminLoginResponse struct {
	Success bool          `json:"success"`
	Session *AdminSession `json:"session"`
}
