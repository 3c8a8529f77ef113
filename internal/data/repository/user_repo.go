package repository

import (
	"context"
	"fmt"

	"movie-catalog/internal/data/entity"
	"movie-catalog/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UserEmailConstraint is the unique index on users.email.
const UserEmailConstraint = "users_email_key"

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmailWithPassword(ctx context.Context, email string) (*entity.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type userRepository struct {
	db  database.DBTX
	log *zap.Logger
}

func NewUserRepository(db database.DBTX, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

// Create inserts a new user record into the database
func (ur *userRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, first_name, last_name, email, password, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := ur.db.Exec(ctx, query,
		user.ID,
		user.FirstName,
		user.LastName,
		user.Email,
		user.PasswordHash,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		if !database.IsUniqueViolation(err, UserEmailConstraint) {
			ur.log.Error("Failed to create user",
				zap.Error(err),
				zap.String("email", user.Email),
			)
		}
		return fmt.Errorf("create user %s: %w", user.Email, err)
	}

	return nil
}

// FindByID never loads the password hash.
func (ur *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	query := `
		SELECT id, first_name, last_name, email, created_at, updated_at
		FROM users
		WHERE id = $1 AND deleted_at IS NULL
	`

	var user entity.User
	err := ur.db.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if database.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user by ID",
			zap.Error(err),
			zap.String("user_id", id.String()),
		)
		return nil, fmt.Errorf("find user by ID %s: %w", id.String(), err)
	}

	return &user, nil
}

func (ur *userRepository) FindByEmailWithPassword(ctx context.Context, email string) (*entity.User, error) {
	query := `
		SELECT id, first_name, last_name, email, password, created_at, updated_at
		FROM users
		WHERE LOWER(email) = LOWER($1) AND deleted_at IS NULL
	`

	var user entity.User
	err := ur.db.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if database.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find user by email %s: %w", email, err)
	}

	return &user, nil
}

func (ur *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE LOWER(email) = LOWER($1))`

	var exists bool
	if err := ur.db.QueryRow(ctx, query, email).Scan(&exists); err != nil {
		ur.log.Error("Database error checking email",
			zap.Error(err),
			zap.String("email", email),
		)
		return false, fmt.Errorf("check email %s: %w", email, err)
	}

	return exists, nil
}
