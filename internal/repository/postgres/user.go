package postgres

import (
	"context"
	"database/sql"

	"github.com/cockroachdb/errors"
	"github.com/coopportal/coopportal/internal/domain/user"
	ierr "github.com/coopportal/coopportal/internal/errors"
	"github.com/coopportal/coopportal/internal/logger"
	"github.com/coopportal/coopportal/internal/postgres"
)

type userRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewUserRepository(db *postgres.DB, logger *logger.Logger) user.Repository {
	return &userRepository{db: db, logger: logger}
}

func (r *userRepository) Create(ctx context.Context, u *user.User) error {
	query := `
	INSERT INTO users (user_id, full_name, email, role, dob, gender)
	VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.GetQuerier(ctx).ExecContext(ctx, query,
		u.ID,
		u.FullName,
		u.Email,
		u.Role,
		u.DOB,
		u.Gender,
	)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create user").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *userRepository) Get(ctx context.Context, id string) (*user.User, error) {
	query := `SELECT user_id, full_name, email, role, dob, gender FROM users WHERE user_id = $1`

	var u user.User
	err := r.db.GetQuerier(ctx).GetContext(ctx, &u, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ierr.WithError(err).
				WithHint("User not found").
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to load user").
			Mark(ierr.ErrDatabase)
	}
	return &u, nil
}

func (r *userRepository) Update(ctx context.Context, u *user.User) error {
	query := `
	UPDATE users SET full_name = $2, email = $3, dob = $4, gender = $5
	WHERE user_id = $1
	`

	res, err := r.db.GetQuerier(ctx).ExecContext(ctx, query,
		u.ID,
		u.FullName,
		u.Email,
		u.DOB,
		u.Gender,
	)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update user").
			Mark(ierr.ErrDatabase)
	}
	return requireRowsAffected(res, "User not found")
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.GetQuerier(ctx).ExecContext(ctx, `DELETE FROM users WHERE user_id = $1`, id)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete user").
			Mark(ierr.ErrDatabase)
	}
	return requireRowsAffected(res, "User not found")
}

// requireRowsAffected converts a zero-row mutation into a not-found error.
func requireRowsAffected(res sql.Result, hint string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to read affected rows").
			Mark(ierr.ErrDatabase)
	}
	if n == 0 {
		return ierr.NewError("no rows affected").
			WithHint(hint).
			Mark(ierr.ErrNotFound)
	}
	return nil
}
