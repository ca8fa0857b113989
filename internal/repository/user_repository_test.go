package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func newRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestUserRepositoryFindByEmail(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewUserRepository(db)
	rows := sqlmock.NewRows([]string{"id", "username", "email", "password", "created_at"}).
		AddRow(int64(7), "jihoon", "jihoon@example.com", "$2a$10$hash", time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, username, email, password, created_at FROM users WHERE email = $1")).
		WithArgs("jihoon@example.com").
		WillReturnRows(rows)

	user, err := repo.FindByEmail(context.Background(), "jihoon@example.com")
	require.NoError(t, err)
	require.Equal(t, int64(7), user.ID)
	require.Equal(t, "jihoon", user.Username)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryFindByEmailNotFound(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewUserRepository(db)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, username, email, password, created_at FROM users WHERE email = $1")).
		WithArgs("missing@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByEmail(context.Background(), "missing@example.com")
	require.ErrorIs(t, err, sql.ErrNoRows)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryExistsByEmailOrUsername(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewUserRepository(db)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS (SELECT 1 FROM users WHERE email = $1 OR username = $2)")).
		WithArgs("jihoon@example.com", "jihoon").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsByEmailOrUsername(context.Background(), "jihoon@example.com", "jihoon")
	require.NoError(t, err)
	require.True(t, exists)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewUserRepository(db)
	rows := sqlmock.NewRows([]string{"id", "username", "email", "password", "created_at"}).
		AddRow(int64(1), "jihoon", "jihoon@example.com", "$2a$10$hash", time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (username, email, password)")).
		WithArgs("jihoon", "jihoon@example.com", "$2a$10$hash").
		WillReturnRows(rows)

	user, err := repo.Create(context.Background(), "jihoon", "jihoon@example.com", "$2a$10$hash")
	require.NoError(t, err)
	require.Equal(t, int64(1), user.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}
