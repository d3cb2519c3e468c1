package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/bloghub/bloghub-be/internal/apperr"
	"github.com/bloghub/bloghub-be/internal/auth"
	"github.com/bloghub/bloghub-be/internal/models"
	"github.com/bloghub/bloghub-be/internal/models/dto"
	"github.com/bloghub/bloghub-be/internal/storage"
)

// loginFailedMessage must be byte-identical for "no such user" and "wrong
// password" so callers cannot enumerate accounts.
const loginFailedMessage = "invalid email or password"

// AuthService orchestrates registration, login and the current-user lookup.
type AuthService struct {
	users  storage.UserStore
	hasher *auth.CredentialHasher
	tokens *auth.TokenCodec
	log    *zap.Logger
}

func NewAuthService(users storage.UserStore, hasher *auth.CredentialHasher, tokens *auth.TokenCodec, log *zap.Logger) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens, log: log}
}

// Register creates a user with the default USER role and issues a token.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (dto.AuthResponse, error) {
	if problems := req.Validate(); len(problems) > 0 {
		return dto.AuthResponse{}, apperr.Validation("validation failed", problems)
	}

	email := strings.TrimSpace(req.Email)
	exists, err := s.users.ExistsUserByEmail(ctx, email)
	if err != nil {
		return dto.AuthResponse{}, err
	}
	if exists {
		return dto.AuthResponse{}, apperr.Conflict("email already in use")
	}

	// The USER role row is seeded by migration; its absence is a broken
	// deployment, not a user error.
	if _, err := s.users.FindRoleByName(ctx, models.RoleUser); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return dto.AuthResponse{}, apperr.Misconfiguration("USER role not configured")
		}
		return dto.AuthResponse{}, err
	}

	passwordHash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return dto.AuthResponse{}, err
	}

	created, err := s.users.CreateUser(ctx, models.User{
		Email:        email,
		DisplayName:  strings.TrimSpace(req.DisplayName),
		PasswordHash: passwordHash,
		Role:         models.RoleUser,
	})
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			// Lost the race against a concurrent registration.
			return dto.AuthResponse{}, apperr.Conflict("email already in use")
		}
		return dto.AuthResponse{}, err
	}

	return s.respond(created)
}

// Login verifies credentials and issues a token. The failure is identical for
// an unknown email and a wrong password; the real cause is only logged.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (dto.AuthResponse, error) {
	if problems := req.Validate(); len(problems) > 0 {
		return dto.AuthResponse{}, apperr.Validation("validation failed", problems)
	}

	user, err := s.users.FindUserByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.log.Debug("login rejected: unknown email")
			return dto.AuthResponse{}, apperr.Authentication(loginFailedMessage)
		}
		return dto.AuthResponse{}, err
	}

	if !s.hasher.Verify(req.Password, user.PasswordHash) {
		s.log.Debug("login rejected: password mismatch", zap.Int64("uid", user.ID))
		return dto.AuthResponse{}, apperr.Authentication(loginFailedMessage)
	}

	return s.respond(user)
}

// CurrentUser re-fetches the principal's user record for fresh display data.
// A valid token whose subject no longer exists is a data-consistency fault;
// the caller sees an authentication failure.
func (s *AuthService) CurrentUser(ctx context.Context, principal auth.Principal) (dto.UserDto, error) {
	user, err := s.users.FindUserByID(ctx, principal.ID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.log.Error("token subject no longer resolves to a user", zap.Int64("uid", principal.ID))
			return dto.UserDto{}, apperr.Wrap(apperr.KindAuthentication, "account no longer exists", err)
		}
		return dto.UserDto{}, err
	}
	return dto.NewUserDto(user), nil
}

func (s *AuthService) respond(user models.User) (dto.AuthResponse, error) {
	token, err := s.tokens.Issue(auth.PrincipalFromUser(user))
	if err != nil {
		return dto.AuthResponse{}, err
	}
	return dto.AuthResponse{
		AccessToken: token,
		TokenType:   auth.TokenTypeBearer,
		User:        dto.NewUserDto(user),
	}, nil
}
