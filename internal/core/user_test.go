package core

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_Create_HashesPassword(t *testing.T) {
	db := &mockDB{}
	svc := NewUserService(db)
	ctx := context.Background()

	db.On("Exec", ctx, mock.AnythingOfType("string"), mock.Anything).Return(pgconn.CommandTag{}, nil)

	user, err := svc.Create(ctx, "admin", "s3cret-pass", nil)
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, "s3cret-pass", user.PasswordHash)
	assert.True(t, VerifyPassword("s3cret-pass", user.PasswordHash))
	db.AssertExpectations(t)
}

func TestUserService_Create_MissingCredentials(t *testing.T) {
	db := &mockDB{}
	svc := NewUserService(db)

	_, err := svc.Create(context.Background(), "", "pw", nil)
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = svc.Create(context.Background(), "admin", "", nil)
	assert.ErrorIs(t, err, ErrInvalid)
	db.AssertNotCalled(t, "Exec")
}

func TestUserService_Create_DuplicateUsername(t *testing.T) {
	db := &mockDB{}
	svc := NewUserService(db)
	ctx := context.Background()

	db.On("Exec", ctx, mock.AnythingOfType("string"), mock.Anything).
		Return(pgconn.CommandTag{}, &pgconn.PgError{Code: "23505"})

	_, err := svc.Create(ctx, "admin", "s3cret-pass", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "username already exists")
	db.AssertExpectations(t)
}
