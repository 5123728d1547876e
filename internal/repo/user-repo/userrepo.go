package userrepo

import (
	"context"

	"github.com/ecotrack/greenpoints/internal/domain"
	"github.com/ecotrack/greenpoints/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := repo.db.QueryRow(ctx, "SELECT id, email, name, password_hash FROM users WHERE email = $1", email).
		Scan(&user.ID, &user.Email, &user.Name, &user.PasswordHash)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (email, name, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := repo.db.QueryRow(ctx, query, user.Email, user.Name, user.PasswordHash).Scan(&user.ID)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		UPDATE users
		SET email = $1, name = $2
		WHERE id = $3
		RETURNING id, email, name, password_hash
	`
	var updated domain.User
	err := repo.db.QueryRow(ctx, query, user.Email, user.Name, user.ID).
		Scan(&updated.ID, &updated.Email, &updated.Name, &updated.PasswordHash)
	if err != nil {
		zap.L().Error("can't update user", zap.Error(err))
		return nil, err
	}
	return &updated, nil
}
