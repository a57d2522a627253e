package models

// RoleUser is the role the backend assigns to storefront customers.
const RoleUser = "user"

// User is the profile object the backend returns on login and /auth/me.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
	Role  string `json:"role"`
}

// Session is the locally cached authentication state for one client.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Credentials is the login payload forwarded to the backend.
type Credentials struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Registration is the sign-up payload forwarded to the backend.
type Registration struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"required"`
}

// ProfileUpdate carries editable profile fields.
type ProfileUpdate struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// PasswordUpdate carries a password change request.
type PasswordUpdate struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}
