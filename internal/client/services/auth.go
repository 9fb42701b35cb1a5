package services

import (
	"context"

	"github.com/epicrobotics/academy-cli/internal/client/api"
	"github.com/epicrobotics/academy-cli/internal/client/models"
	"github.com/epicrobotics/academy-cli/internal/client/repositories/token"
)

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Registration struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type ProfileUpdate struct {
	Name   string `json:"name,omitempty"`
	Avatar string `json:"avatar,omitempty"`
	Bio    string `json:"bio,omitempty"`
	Phone  string `json:"phone,omitempty"`
}

type PasswordUpdate struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type PasswordReset struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

type DeletedAccount struct {
	Message       string `json:"message"`
	DeletedUserID string `json:"deletedUserId"`
	DeletedEmail  string `json:"deletedEmail"`
}

// AuthService covers account lifecycle and the current identity.
//
// Contract:
//   - Register/Login persist the returned token into the store on success.
//   - Logout removes the token locally whether or not the server call
//     succeeds; server-side invalidation is best-effort.
//   - DeleteAccount removes the token after the account is gone.
//
// All methods honor context cancellation.
type AuthService interface {
	Register(ctx context.Context, data Registration) (*models.AuthResponse, error)
	Login(ctx context.Context, creds Credentials) (*models.AuthResponse, error)
	Logout(ctx context.Context) error
	Profile(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, data ProfileUpdate) (*models.User, error)
	UpdatePassword(ctx context.Context, data PasswordUpdate) (*models.Message, error)
	RequestPasswordReset(ctx context.Context, email string) (*models.Message, error)
	ResetPassword(ctx context.Context, data PasswordReset) (*models.Message, error)
	DeleteAccount(ctx context.Context) (*DeletedAccount, error)
}

type authService struct {
	api    *api.Client
	tokens token.Store
}

// NewAuthService constructs an AuthService bound to the given API client and
// token store.
func NewAuthService(client *api.Client, tokens token.Store) AuthService {
	return &authService{api: client, tokens: tokens}
}

func (s *authService) Register(ctx context.Context, data Registration) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := s.api.Post(ctx, "/auth/register", data, &resp); err != nil {
		return nil, err
	}
	if resp.Token != "" {
		if err := s.tokens.Set(ctx, resp.Token); err != nil {
			return nil, err
		}
	}
	return &resp, nil
}

func (s *authService) Login(ctx context.Context, creds Credentials) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := s.api.Post(ctx, "/auth/login", creds, &resp); err != nil {
		return nil, err
	}
	if resp.Token != "" {
		if err := s.tokens.Set(ctx, resp.Token); err != nil {
			return nil, err
		}
	}
	return &resp, nil
}

// Logout tells the server to invalidate the session, then removes the local
// token. The token is removed even when the server call fails.
func (s *authService) Logout(ctx context.Context) error {
	serverErr := s.api.Post(ctx, "/auth/logout", nil, nil)
	if err := s.tokens.Clear(ctx); err != nil {
		return err
	}
	return serverErr
}

func (s *authService) Profile(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := s.api.Get(ctx, "/users/profile", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *authService) UpdateProfile(ctx context.Context, data ProfileUpdate) (*models.User, error) {
	var user models.User
	if err := s.api.Put(ctx, "/users/profile", data, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *authService) UpdatePassword(ctx context.Context, data PasswordUpdate) (*models.Message, error) {
	var msg models.Message
	if err := s.api.Put(ctx, "/users/password", data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (s *authService) RequestPasswordReset(ctx context.Context, email string) (*models.Message, error) {
	var msg models.Message
	body := map[string]string{"email": email}
	if err := s.api.Post(ctx, "/auth/password-reset/request", body, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (s *authService) ResetPassword(ctx context.Context, data PasswordReset) (*models.Message, error) {
	var msg models.Message
	if err := s.api.Post(ctx, "/auth/password-reset", data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (s *authService) DeleteAccount(ctx context.Context) (*DeletedAccount, error) {
	var resp DeletedAccount
	if err := s.api.Delete(ctx, "/users/me", &resp); err != nil {
		return nil, err
	}
	if err := s.tokens.Clear(ctx); err != nil {
		return nil, err
	}
	return &resp, nil
}
