package service

import (
	"context"

	"eventplanner-api/internal/core/auth"
	"eventplanner-api/internal/domain"
	"eventplanner-api/pkg/utils"
)

type AuthService struct {
	users domain.UserRepository
	jwt   *auth.JWTer
}

func NewAuthService(users domain.UserRepository, jwt *auth.JWTer) *AuthService {
	return &AuthService{users: users, jwt: jwt}
}

type AuthResult struct {
	User  *domain.User
	Token string
}

// Login authenticates by email and password. An unknown email and a wrong
// password yield the same failure so callers cannot enumerate accounts.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, domain.ErrInternal(err)
	}
	if u == nil || !utils.CheckPassword(password, u.Password) {
		return nil, domain.ErrInvalidCredentials()
	}
	token, err := s.jwt.Issue(u.ID.Hex())
	if err != nil {
		return nil, domain.ErrInternal(err)
	}
	return &AuthResult{User: u, Token: token}, nil
}

// RegisterFirstAdmin is the one-shot bootstrap: it only succeeds while no
// admin account exists. Every later admin is minted by an existing admin.
func (s *AuthService) RegisterFirstAdmin(ctx context.Context, name, email, password string) (*AuthResult, error) {
	if err := validateRegistration(name, email, password); err != nil {
		return nil, err
	}
	exists, err := s.users.AdminExists(ctx)
	if err != nil {
		return nil, domain.ErrInternal(err)
	}
	if exists {
		return nil, domain.ErrAdminExists()
	}
	return s.create(ctx, name, email, password, true)
}

// Register creates a user on behalf of an authenticated admin caller.
func (s *AuthService) Register(ctx context.Context, name, email, password string, isAdmin bool) (*AuthResult, error) {
	if err := validateRegistration(name, email, password); err != nil {
		return nil, err
	}
	return s.create(ctx, name, email, password, isAdmin)
}

func (s *AuthService) create(ctx context.Context, name, email, password string, isAdmin bool) (*AuthResult, error) {
	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, domain.ErrInternal(err)
	}
	if existing != nil {
		return nil, domain.ErrEmailTaken()
	}

	u := &domain.User{
		Name:     name,
		Email:    email,
		Password: utils.HashPassword(password),
		IsAdmin:  isAdmin,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, domain.ErrInternal(err)
	}
	token, err := s.jwt.Issue(u.ID.Hex())
	if err != nil {
		return nil, domain.ErrInternal(err)
	}
	return &AuthResult{User: u, Token: token}, nil
}

func validateRegistration(name, email, password string) error {
	var missing []string
	if name == "" {
		missing = append(missing, "name")
	}
	if email == "" {
		missing = append(missing, "email")
	}
	if password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return domain.ErrValidation(missing...)
	}
	return nil
}
