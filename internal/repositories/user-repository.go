package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dapittriandi/simdor-service/internal/entities"
	apperrors "github.com/dapittriandi/simdor-service/pkg/errors"
)

type UserRepositoryInterface interface {
	FindUserByID(ctx context.Context, id string) (*entities.User, error)
	FindUserByEmail(ctx context.Context, email string) (*entities.User, error)
	CreateUser(ctx context.Context, user *entities.User) error
}

type UserRepository struct {
	storage *pgxpool.Pool
}

func NewUserRepository(storage *pgxpool.Pool) UserRepositoryInterface {
	return &UserRepository{storage: storage}
}

var userColumns = []string{"id", "name", "email", "password", "role", "portfolio", "created_at", "updated_at"}

func (r *UserRepository) findUserBy(ctx context.Context, pred sq.Eq) (*entities.User, error) {
	query, args, err := psql.Select(userColumns...).From("users").Where(pred).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build user query: %w", err)
	}

	var user entities.User
	err = r.storage.QueryRow(ctx, query, args...).Scan(
		&user.ID, &user.Name, &user.Email, &user.Password,
		&user.Role, &user.Portfolio, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) FindUserByID(ctx context.Context, id string) (*entities.User, error) {
	return r.findUserBy(ctx, sq.Eq{"id": id})
}

func (r *UserRepository) FindUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	return r.findUserBy(ctx, sq.Eq{"email": email})
}

func (r *UserRepository) CreateUser(ctx context.Context, user *entities.User) error {
	query, args, err := psql.Insert("users").
		Columns(userColumns...).
		Values(user.ID, user.Name, user.Email, user.Password,
			user.Role, user.Portfolio, user.CreatedAt, user.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build user insert: %w", err)
	}
	if _, err := r.storage.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}
