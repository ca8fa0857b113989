package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/safari-for-safety/roadkill-api/internal/models"
	appErrors "github.com/safari-for-safety/roadkill-api/pkg/errors"
)

type mockUserRepo struct {
	byEmail   *models.User
	byEmailOK bool
	byID      *models.User
	exists    bool
	created   *models.User
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if !m.byEmailOK {
		return nil, sql.ErrNoRows
	}
	return m.byEmail, nil
}

func (m *mockUserRepo) FindByID(ctx context.Context, id int64) (*models.User, error) {
	if m.byID == nil {
		return nil, sql.ErrNoRows
	}
	return m.byID, nil
}

func (m *mockUserRepo) ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error) {
	return m.exists, nil
}

func (m *mockUserRepo) Create(ctx context.Context, username, email, passwordHash string) (*models.User, error) {
	user := &models.User{ID: 1, Username: username, Email: email, PasswordHash: passwordHash, CreatedAt: time.Now()}
	m.created = user
	return user, nil
}

func newAuthService(repo *mockUserRepo) *AuthService {
	return NewAuthService(repo, nil, nil, AuthConfig{TokenSecret: "test-secret", TokenExpiry: time.Hour})
}

func TestRegisterIssuesToken(t *testing.T) {
	repo := &mockUserRepo{}
	svc := newAuthService(repo)

	res, err := svc.Register(context.Background(), models.RegisterRequest{
		Username: "jihoon",
		Email:    "jihoon@example.com",
		Password: "s3cretpw",
	})
	require.NoError(t, err)
	require.NotEmpty(t, res.Token)
	require.Equal(t, "jihoon", res.User.Username)
	require.NotEqual(t, "s3cretpw", repo.created.PasswordHash)

	claims, err := svc.ValidateToken(res.Token)
	require.NoError(t, err)
	require.Equal(t, int64(1), claims.UserID)
	require.Equal(t, "jihoon", claims.Username)
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	svc := newAuthService(&mockUserRepo{exists: true})

	_, err := svc.Register(context.Background(), models.RegisterRequest{
		Username: "jihoon",
		Email:    "jihoon@example.com",
		Password: "s3cretpw",
	})
	require.Error(t, err)
	require.Equal(t, appErrors.ErrConflict.Code, appErrors.FromError(err).Code)
}

func TestLoginWrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("rightpw1"), bcrypt.MinCost)
	require.NoError(t, err)
	repo := &mockUserRepo{
		byEmailOK: true,
		byEmail:   &models.User{ID: 2, Username: "jihoon", Email: "jihoon@example.com", PasswordHash: string(hash)},
	}
	svc := newAuthService(repo)

	_, err = svc.Login(context.Background(), models.LoginRequest{Email: "jihoon@example.com", Password: "wrongpw1"})
	require.Error(t, err)
	require.Equal(t, appErrors.ErrInvalidCredentials.Code, appErrors.FromError(err).Code)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newAuthService(&mockUserRepo{})

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "nobody@example.com", Password: "whatever1"})
	require.Error(t, err)
	require.Equal(t, appErrors.ErrInvalidCredentials.Code, appErrors.FromError(err).Code)
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	svc := newAuthService(&mockUserRepo{})
	other := NewAuthService(&mockUserRepo{}, nil, nil, AuthConfig{TokenSecret: "other-secret", TokenExpiry: time.Hour})

	res, err := other.Register(context.Background(), models.RegisterRequest{
		Username: "jihoon",
		Email:    "jihoon@example.com",
		Password: "s3cretpw",
	})
	require.NoError(t, err)

	_, err = svc.ValidateToken(res.Token)
	require.Error(t, err)
}
