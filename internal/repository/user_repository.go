package repository

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/classforge/classroom-backend/internal/model"
)

var ErrDuplicateUserName = errors.New("user with this user name or email already exists")

// Execer is the narrow statement surface hooks run against. Both pgx.Tx
// and *pgxpool.Pool satisfy it.
type Execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// UserCreateHook runs inside the user-creation transaction, after the user
// row is inserted but before commit. A hook error aborts the whole
// transaction, so the user row is never persisted on failure.
type UserCreateHook func(ctx context.Context, tx Execer, u *model.User) error

// mapUserInsertError converts constraint violations from the users INSERT
// into sentinels. A 23503 on this statement can only come from the default
// enrollment trigger inserting into user_class, so it means the default
// class is missing.
func mapUserInsertError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return ErrDuplicateUserName
		case "23503":
			return ErrUnknownClass
		}
	}
	return err
}

// UserRepository handles user data access.
type UserRepository struct {
	pool        *pgxpool.Pool
	afterCreate []UserCreateHook
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// AfterCreate registers a hook to run inside every Create transaction.
// Register hooks during startup, before the repository is shared.
func (r *UserRepository) AfterCreate(h UserCreateHook) {
	r.afterCreate = append(r.afterCreate, h)
}

// Create inserts a new user and runs all registered after-create hooks in
// the same transaction. The insert and the hooks commit or roll back as
// one unit.
func (r *UserRepository) Create(ctx context.Context, u *model.User) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO users (first_name, last_name, user_name, email, password_hash, is_admin)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, updated_at`,
		u.FirstName, u.LastName, u.UserName, u.Email, u.PasswordHash, u.IsAdmin,
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return mapUserInsertError(err)
	}

	for _, hook := range r.afterCreate {
		if err := hook(ctx, tx, u); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// GetByID retrieves a user by ID.
func (r *UserRepository) GetByID(ctx context.Context, id int) (*model.User, error) {
	u := &model.User{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, first_name, last_name, user_name, email, password_hash, is_admin, created_at, updated_at
		 FROM users WHERE id = $1`, id,
	).Scan(&u.ID, &u.FirstName, &u.LastName, &u.UserName, &u.Email, &u.PasswordHash, &u.IsAdmin, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// GetByUserName retrieves a user by their unique user name.
func (r *UserRepository) GetByUserName(ctx context.Context, userName string) (*model.User, error) {
	u := &model.User{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, first_name, last_name, user_name, email, password_hash, is_admin, created_at, updated_at
		 FROM users WHERE user_name = $1`, userName,
	).Scan(&u.ID, &u.FirstName, &u.LastName, &u.UserName, &u.Email, &u.PasswordHash, &u.IsAdmin, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// ListPaginated retrieves users with pagination and optional class filter.
func (r *UserRepository) ListPaginated(ctx context.Context, classNumber *string, limit, offset int) ([]model.User, int, error) {
	// 1. Get total count
	countQuery := `SELECT COUNT(*) FROM users`
	var countArgs []interface{}
	if classNumber != nil {
		countQuery = `SELECT COUNT(*) FROM users u
			JOIN user_class uc ON uc.user_id = u.id WHERE uc.class_number = $1`
		countArgs = append(countArgs, *classNumber)
	}

	var total int
	if err := r.pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	// 2. Get paginated data
	query := `SELECT u.id, u.first_name, u.last_name, u.user_name, u.email, u.password_hash, u.is_admin, u.created_at, u.updated_at
		FROM users u`
	var args []interface{}
	argIdx := 1

	if classNumber != nil {
		query += ` JOIN user_class uc ON uc.user_id = u.id WHERE uc.class_number = $1`
		args = append(args, *classNumber)
		argIdx++
	}

	query += ` ORDER BY u.user_name LIMIT $` + strconv.Itoa(argIdx) + ` OFFSET $` + strconv.Itoa(argIdx+1)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.FirstName, &u.LastName, &u.UserName, &u.Email, &u.PasswordHash, &u.IsAdmin, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, 0, err
		}
		users = append(users, u)
	}
	return users, total, rows.Err()
}

// Update modifies a user's basic info (excluding password).
func (r *UserRepository) Update(ctx context.Context, u *model.User) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE users SET first_name = $1, last_name = $2, user_name = $3, email = $4, is_admin = $5, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $6`,
		u.FirstName, u.LastName, u.UserName, u.Email, u.IsAdmin, u.ID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateUserName
		}
		return err
	}
	return nil
}

// UpdatePassword updates a user's password hash.
func (r *UserRepository) UpdatePassword(ctx context.Context, id int, passwordHash string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE users SET password_hash = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`,
		passwordHash, id,
	)
	return err
}

// Delete removes a user by ID.
func (r *UserRepository) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	return err
}
