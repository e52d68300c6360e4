package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ekaragodin/taskboard/internal/models"
)

type mockAuthRepo struct {
	GetUserByEmailFunc func(ctx context.Context, email string) (*models.User, error)
	GetUsersFunc       func(ctx context.Context) ([]models.User, error)
	CreateUserFunc     func(ctx context.Context, email, name, passwordHash string) error
	RemoveUserFunc     func(ctx context.Context, email string) error
	AddTokenFunc       func(ctx context.Context, token string) error
	TokenExistsFunc    func(ctx context.Context, token string) (bool, error)
}

func (m *mockAuthRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return m.GetUserByEmailFunc(ctx, email)
}
func (m *mockAuthRepo) GetUsers(ctx context.Context) ([]models.User, error) {
	return m.GetUsersFunc(ctx)
}
func (m *mockAuthRepo) CreateUser(ctx context.Context, email, name, passwordHash string) error {
	return m.CreateUserFunc(ctx, email, name, passwordHash)
}
func (m *mockAuthRepo) RemoveUser(ctx context.Context, email string) error {
	return m.RemoveUserFunc(ctx, email)
}
func (m *mockAuthRepo) AddToken(ctx context.Context, token string) error {
	return m.AddTokenFunc(ctx, token)
}
func (m *mockAuthRepo) TokenExists(ctx context.Context, token string) (bool, error) {
	return m.TokenExistsFunc(ctx, token)
}

func TestHashPassword_Properties(t *testing.T) {
	d1, err := HashPassword("pw1")
	require.NoError(t, err)
	d2, err := HashPassword("pw1")
	require.NoError(t, err)

	// fresh salt per call
	assert.NotEqual(t, d1, d2)
	assert.NotEqual(t, "pw1", d1)

	assert.True(t, VerifyPassword("pw1", d1))
	assert.True(t, VerifyPassword("pw1", d2))
	assert.False(t, VerifyPassword("pw2", d1))
}

func TestVerifyPassword_MalformedDigest(t *testing.T) {
	// fail closed, never panic
	assert.False(t, VerifyPassword("pw1", ""))
	assert.False(t, VerifyPassword("pw1", "not a bcrypt digest"))
}

func TestRegister_Duplicate(t *testing.T) {
	repo := &mockAuthRepo{
		GetUserByEmailFunc: func(ctx context.Context, email string) (*models.User, error) {
			return &models.User{ID: 1, Email: email}, nil
		},
	}
	svc := NewAuthService(repo, []byte("secret"), 30*time.Minute)

	err := svc.Register(context.Background(), "a@x.com", "A", "pw1")
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("Register error = %v; want ErrDuplicateEmail", err)
	}
}

func TestRegister_Success(t *testing.T) {
	var storedHash string
	repo := &mockAuthRepo{
		GetUserByEmailFunc: func(ctx context.Context, email string) (*models.User, error) {
			return nil, nil
		},
		CreateUserFunc: func(ctx context.Context, email, name, passwordHash string) error {
			storedHash = passwordHash
			return nil
		},
	}
	svc := NewAuthService(repo, []byte("secret"), 30*time.Minute)

	require.NoError(t, svc.Register(context.Background(), "a@x.com", "A", "pw1"))
	assert.NotEqual(t, "pw1", storedHash)
	assert.True(t, VerifyPassword("pw1", storedHash))
}

func TestLogin_UnknownEmail(t *testing.T) {
	repo := &mockAuthRepo{
		GetUserByEmailFunc: func(ctx context.Context, email string) (*models.User, error) {
			return nil, nil
		},
	}
	svc := NewAuthService(repo, []byte("secret"), 30*time.Minute)

	_, err := svc.Login(context.Background(), "a@x.com", "pw1")
	if !errors.Is(err, ErrBadCredentials) {
		t.Fatalf("Login error = %v; want ErrBadCredentials", err)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, err := HashPassword("right")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	repo := &mockAuthRepo{
		GetUserByEmailFunc: func(ctx context.Context, email string) (*models.User, error) {
			return &models.User{ID: 1, Email: email, PasswordHash: hash}, nil
		},
	}
	svc := NewAuthService(repo, []byte("secret"), 30*time.Minute)

	_, err = svc.Login(context.Background(), "a@x.com", "wrong")
	if !errors.Is(err, ErrBadCredentials) {
		t.Fatalf("Login error = %v; want ErrBadCredentials", err)
	}
}

func TestLogin_SuccessIssuesStoredToken(t *testing.T) {
	hash, err := HashPassword("pw1")
	require.NoError(t, err)

	stored := map[string]bool{}
	repo := &mockAuthRepo{
		GetUserByEmailFunc: func(ctx context.Context, email string) (*models.User, error) {
			return &models.User{ID: 1, Email: email, Name: "A", PasswordHash: hash}, nil
		},
		AddTokenFunc: func(ctx context.Context, token string) error {
			stored[token] = true
			return nil
		},
		TokenExistsFunc: func(ctx context.Context, token string) (bool, error) {
			return stored[token], nil
		},
	}
	svc := NewAuthService(repo, []byte("secret"), 30*time.Minute)

	token, err := svc.Login(context.Background(), "a@x.com", "pw1")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.True(t, stored[token], "token must be recorded in the store")

	subject, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", subject)
}

func TestValidateToken_UnknownToken(t *testing.T) {
	repo := &mockAuthRepo{
		TokenExistsFunc: func(ctx context.Context, token string) (bool, error) {
			return false, nil
		},
	}
	svc := NewAuthService(repo, []byte("secret"), 30*time.Minute)

	// a random string is rejected before the store is even consulted
	_, err := svc.ValidateToken(context.Background(), "random-string")
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("ValidateToken error = %v; want ErrInvalidToken", err)
	}

	// a well-formed token absent from the store is rejected too
	token, err := svc.issueToken("a@x.com", time.Minute)
	if err != nil {
		t.Fatalf("issueToken: %v", err)
	}
	_, err = svc.ValidateToken(context.Background(), token)
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("ValidateToken error = %v; want ErrInvalidToken", err)
	}
}

func TestValidateToken_WrongKey(t *testing.T) {
	repo := &mockAuthRepo{
		TokenExistsFunc: func(ctx context.Context, token string) (bool, error) {
			return true, nil
		},
	}
	issuer := NewAuthService(repo, []byte("secret-a"), 30*time.Minute)
	verifier := NewAuthService(repo, []byte("secret-b"), 30*time.Minute)

	token, err := issuer.issueToken("a@x.com", time.Minute)
	if err != nil {
		t.Fatalf("issueToken: %v", err)
	}
	_, err = verifier.ValidateToken(context.Background(), token)
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("ValidateToken error = %v; want ErrInvalidToken", err)
	}
}

func TestValidateToken_Expired(t *testing.T) {
	repo := &mockAuthRepo{
		TokenExistsFunc: func(ctx context.Context, token string) (bool, error) {
			return true, nil
		},
	}
	svc := NewAuthService(repo, []byte("secret"), 30*time.Minute)

	issued := time.Now()
	svc.now = func() time.Time { return issued }
	token, err := svc.issueToken("a@x.com", time.Minute)
	if err != nil {
		t.Fatalf("issueToken: %v", err)
	}

	// still valid just before expiry
	svc.now = func() time.Time { return issued.Add(59 * time.Second) }
	if _, err := svc.ValidateToken(context.Background(), token); err != nil {
		t.Fatalf("unexpected error before expiry: %v", err)
	}

	// rejected after, even though the row is still in the store
	svc.now = func() time.Time { return issued.Add(2 * time.Minute) }
	_, err = svc.ValidateToken(context.Background(), token)
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("ValidateToken error = %v; want ErrInvalidToken", err)
	}
}

func TestUsers_Empty(t *testing.T) {
	repo := &mockAuthRepo{
		GetUsersFunc: func(ctx context.Context) ([]models.User, error) {
			return nil, nil
		},
	}
	svc := NewAuthService(repo, []byte("secret"), 30*time.Minute)

	_, err := svc.Users(context.Background())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Users error = %v; want ErrNotFound", err)
	}
}

func TestRemoveUser_PassesThrough(t *testing.T) {
	wantErr := errors.New("db error")
	repo := &mockAuthRepo{
		RemoveUserFunc: func(ctx context.Context, email string) error {
			if email != "a@x.com" {
				t.Errorf("RemoveUser received email = %q; want %q", email, "a@x.com")
			}
			return wantErr
		},
	}
	svc := NewAuthService(repo, []byte("secret"), 30*time.Minute)

	if err := svc.RemoveUser(context.Background(), "a@x.com"); err != wantErr {
		t.Fatalf("RemoveUser error = %v; want %v", err, wantErr)
	}
}
