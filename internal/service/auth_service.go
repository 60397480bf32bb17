package service

import (
	"context"
	"errors"
	"fmt"

	"mywallet/internal/models"
	"mywallet/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	passwordCost = 10
	// bcrypt only reads the first 72 bytes of its input.
	maxPasswordBytes = 72
)

// Domain errors for auth flows.
var (
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUserNotFound       = errors.New("user not found")
)

// AuthService handles registration, login and bearer token resolution.
type AuthService struct {
	authRepo    repository.Authorization
	sessionRepo repository.SessionRepo
	newToken    func() string
}

func NewAuthService(repo repository.Authorization, sessions repository.SessionRepo) *AuthService {
	return &AuthService{authRepo: repo, sessionRepo: sessions, newToken: uuid.NewString}
}

// SignUp hashes the password and creates a new user unless the email is taken.
func (s *AuthService) SignUp(ctx context.Context, name, email, password string) (int, error) {
	existing, err := s.authRepo.GetByEmail(ctx, email)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		return 0, ErrDuplicateEmail
	}

	hash, err := hashPassword(password)
	if err != nil {
		return 0, fmt.Errorf("invalid password: %w", err)
	}

	id, err := s.authRepo.Create(ctx, name, email, hash)
	if errors.Is(err, repository.ErrDuplicateEmail) {
		// lost the race against a concurrent sign-up with the same email
		return 0, ErrDuplicateEmail
	}
	return id, err
}

// GenerateToken validates credentials and opens a new session.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *AuthService) GenerateToken(ctx context.Context, email, password string) (string, error) {
	u, err := s.authRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", ErrInvalidCredentials
	}
	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return "", ErrInvalidCredentials
	}

	token := s.newToken()
	if err := s.sessionRepo.Create(ctx, u.ID, token); err != nil {
		return "", err
	}
	return token, nil
}

// Authorize resolves a bearer token to its user.
func (s *AuthService) Authorize(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}
	sess, err := s.sessionRepo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}

	u, err := s.authRepo.GetByID(ctx, sess.UserID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// passwordBytes truncates to the bcrypt input limit so hashing and comparing
// always see the same bytes.
func passwordBytes(password string) []byte {
	b := []byte(password)
	if len(b) > maxPasswordBytes {
		b = b[:maxPasswordBytes]
	}
	return b
}

// helper: hash password safely
func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(passwordBytes(password), passwordCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), passwordBytes(password))
}
