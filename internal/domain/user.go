package domain

// Role is the access level of an authenticated user.
type Role string

// Known roles.
const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// User is the account returned by the session endpoints.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
}

// IsAdmin reports whether the user may use the admin directory.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// Credentials is the body of POST /auth/login.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginResult is the payload of a successful login or token refresh.
type LoginResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
