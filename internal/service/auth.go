// Package service provides the business logic between HTTP handlers
// and repositories.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/ekaragodin/taskboard/internal/models"
)

// defaultTokenTTL is the claim lifetime used when no TTL is configured.
const defaultTokenTTL = 15 * time.Minute

// AuthRepository defines the persistence operations required by the
// authentication service.
type AuthRepository interface {
	// GetUserByEmail returns the user for email, or nil if absent.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	// GetUsers returns every registered user.
	GetUsers(ctx context.Context) ([]models.User, error)
	// CreateUser inserts a user record with a pre-hashed password.
	CreateUser(ctx context.Context, email, name, passwordHash string) error
	// RemoveUser deletes all users matching email.
	RemoveUser(ctx context.Context, email string) error
	// AddToken inserts an issued token string.
	AddToken(ctx context.Context, token string) error
	// TokenExists reports whether the token string is in the store.
	TokenExists(ctx context.Context, token string) (bool, error)
}

// AuthService implements registration, login, and token validation by
// delegating persistence to an AuthRepository.
type AuthService struct {
	repo   AuthRepository
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewAuthService constructs an AuthService. secret signs issued tokens;
// ttl is the claim lifetime embedded on login (defaultTokenTTL when
// non-positive).
func NewAuthService(repo AuthRepository, secret []byte, ttl time.Duration) *AuthService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &AuthService{repo: repo, secret: secret, ttl: ttl, now: time.Now}
}

// HashPassword produces a salted one-way digest of password. A fresh
// salt is drawn per call, so hashing the same password twice yields
// different digests.
func HashPassword(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(digest), nil
}

// VerifyPassword reports whether password matches digest. Malformed
// digests fail closed.
func VerifyPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}

// Register creates a new user. Returns ErrDuplicateEmail if the email
// is already taken.
func (s *AuthService) Register(ctx context.Context, email, name, password string) error {
	existing, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrDuplicateEmail
	}

	hash, err := HashPassword(password)
	if err != nil {
		return err
	}
	return s.repo.CreateUser(ctx, email, name, hash)
}

// Login checks the credentials, issues a signed token with the
// configured TTL, records it in the token store, and returns it.
// Unknown email and wrong password both yield ErrBadCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil || !VerifyPassword(password, user.PasswordHash) {
		return "", ErrBadCredentials
	}

	token, err := s.issueToken(user.Email, s.ttl)
	if err != nil {
		return "", err
	}
	if err := s.repo.AddToken(ctx, token); err != nil {
		return "", err
	}
	return token, nil
}

// issueToken builds an HS256-signed claim set with the subject and an
// absolute expiry of now+ttl.
func (s *AuthService) issueToken(subject string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(s.now().Add(ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken checks a presented bearer token: the signature and
// embedded expiry must verify, and the literal string must still be
// present in the token store. Store membership acts as revocation; a
// pruned row invalidates an otherwise well-formed token.
func (s *AuthService) ValidateToken(ctx context.Context, tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	exists, err := s.repo.TokenExists(ctx, tokenString)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

// Users returns every registered user, or ErrNotFound when there are
// none.
func (s *AuthService) Users(ctx context.Context) ([]models.User, error) {
	users, err := s.repo.GetUsers(ctx)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, ErrNotFound
	}
	return users, nil
}

// RemoveUser deletes all users with the given email. A missing user is
// a silent no-op.
func (s *AuthService) RemoveUser(ctx context.Context, email string) error {
	return s.repo.RemoveUser(ctx, email)
}
