package dto

import "github.com/pmapp/personal_management_app/internal/core/domain"

// LoginRequest carries login credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SignupRequest carries the fields needed to create an account.
type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Photo    string `json:"photo,omitempty"`
}

// GoogleLoginRequest carries a Google-issued ID token.
type GoogleLoginRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

// AuthUser is the trimmed account payload returned alongside a token.
type AuthUser struct {
	ID      string   `json:"id"`
	Email   string   `json:"email"`
	Name    string   `json:"name"`
	Devices []string `json:"devices"`
}

// AuthResponse is returned by login, signup and social login.
type AuthResponse struct {
	Message string   `json:"message,omitempty"`
	User    AuthUser `json:"user"`
	Token   string   `json:"token"`
}

// ToAuthUser shapes a domain user for an auth response.
func ToAuthUser(u *domain.User) AuthUser {
	devices := u.DeviceIDs
	if devices == nil {
		devices = []string{}
	}
	return AuthUser{
		ID:      u.ID,
		Email:   u.Email,
		Name:    u.Name,
		Devices: devices,
	}
}
