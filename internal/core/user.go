package core

import (
	"context"
	"fmt"
	"time"

	"github.com/subsync/subsync/internal/model"
	"github.com/subsync/subsync/internal/platform"
)

type UserService struct {
	db DB
}

func NewUserService(db DB) *UserService {
	return &UserService{db: db}
}

// Create hashes the password with argon2id and inserts the user.
func (s *UserService) Create(ctx context.Context, username, password string, displayName *string) (*model.User, error) {
	if username == "" || password == "" {
		return nil, Invalid("username and password are required")
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	user := &model.User{
		ID:           platform.NewID(),
		Username:     username,
		PasswordHash: hash,
		DisplayName:  displayName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err = s.db.Exec(ctx,
		`INSERT INTO users (id, username, password_hash, display_name, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Username, user.PasswordHash, user.DisplayName, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create user: %w",
			mapStoreError(err, "", "username already exists"))
	}
	return user, nil
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	var u model.User
	err := s.db.QueryRow(ctx,
		`SELECT id, username, password_hash, display_name, created_at, updated_at
		 FROM users WHERE username = $1`, username,
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.DisplayName, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, mapStoreError(err, fmt.Sprintf("user %s not found", username), "")
	}
	return &u, nil
}
