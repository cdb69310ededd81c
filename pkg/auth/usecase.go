package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/careerpilot/backend/pkg/user"
)

// ErrInvalidCredentials covers unknown users and wrong passwords alike, so
// login failures do not reveal which of the two happened.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthUseCase describes authentication/registration behavior.
type AuthUseCase interface {
	Signup(ctx context.Context, name, email, password string) (AuthResult, error)
	Login(ctx context.Context, email, password string) (AuthResult, error)
}

type AuthResult struct {
	Email string
	Name  string
	Token string
}

type authService struct {
	repo   user.Repository
	tokens TokenGenerator
}

// NewAuthService returns default implementation of AuthUseCase.
func NewAuthService(repo user.Repository, tokens TokenGenerator) AuthUseCase {
	return &authService{repo: repo, tokens: tokens}
}

// Signup hashes the password and creates the record with its initial
// progress snapshot. Inputs arrive trimmed and lowercase-normalized from the
// handler; duplicate emails surface as user.ErrAlreadyExists from the
// repository, which performs the check atomically.
func (s *authService) Signup(ctx context.Context, name, email, password string) (AuthResult, error) {
	hash, err := HashPassword(password)
	if err != nil {
		return AuthResult{}, err
	}

	now := time.Now()
	rec := user.Record{
		ID:           uuid.New(),
		Name:         name,
		PasswordHash: hash,
		Progress:     0,
		SavedRoles:   []string{},
		History:      []user.HistoryEntry{user.Snapshot(now.Unix(), 0)},
		CreatedAt:    now.UTC(),
	}
	if err := s.repo.Create(ctx, email, rec); err != nil {
		return AuthResult{}, err
	}
	token, err := s.tokens.Generate(ctx, email)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{Email: email, Name: name, Token: token}, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (AuthResult, error) {
	rec, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return AuthResult{}, ErrInvalidCredentials
	}
	if !VerifyPassword(password, rec.PasswordHash) {
		return AuthResult{}, ErrInvalidCredentials
	}
	token, err := s.tokens.Generate(ctx, rec.Email)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{Email: rec.Email, Name: rec.Name, Token: token}, nil
}
