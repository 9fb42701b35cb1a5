// Package models declares the wire shapes exchanged with the Epic Robotics
// Academy backend. The backend owns these schemas; the client only decodes
// and passes them through.
package models

// UserRole is the backend-assigned role of an account.
type UserRole string

const (
	RoleStudent    UserRole = "STUDENT"
	RoleInstructor UserRole = "INSTRUCTOR"
	RoleAdmin      UserRole = "ADMIN"
)

// ProfileData holds the free-form profile fields attached to a user.
type ProfileData struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
	Bio    string `json:"bio,omitempty"`
	Phone  string `json:"phone,omitempty"`
}

// User is the current-identity snapshot returned by /users/profile and
// embedded in auth responses.
type User struct {
	ID          string      `json:"id"`
	Email       string      `json:"email"`
	Role        UserRole    `json:"role"`
	ProfileData ProfileData `json:"profileData"`
	CreatedAt   string      `json:"createdAt"`
	UpdatedAt   string      `json:"updatedAt,omitempty"`
}

// AuthResponse is returned by /auth/register and /auth/login.
type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// Message is the acknowledgement envelope for mutations that return no
// resource body.
type Message struct {
	Message string `json:"message"`
}
