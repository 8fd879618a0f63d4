package models

import "time"

// Role values for access control.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents the 'users' table.
type User struct {
	ID        uint      `gorm:"column:id;primaryKey"`
	Email     string    `gorm:"column:email;size:255;uniqueIndex;not null"`
	Password  string    `gorm:"column:password;not null"` // bcrypt hash
	Role      string    `gorm:"column:role;size:16;not null;default:user"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

// TableName overrides the table name.
func (User) TableName() string {
	return "users"
}

// RegisterRequest is the payload for user registration.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// LoginRequest is the payload for user login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse carries an issued access token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// UpdateRoleRequest is the payload for an admin role change.
type UpdateRoleRequest struct {
	Role string `json:"role"`
}

// UserResponse is the public view of a user.
type UserResponse struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// ToResponse converts a User to its public view.
func (u User) ToResponse() UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// ValidRole checks whether the given role is one of the known values.
func ValidRole(role string) bool {
	return role == RoleUser || role == RoleAdmin
}
