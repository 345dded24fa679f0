package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/classforge/classroom-backend/internal/model"
)

var ErrJoinCodeInvalid = errors.New("join code is unknown or expired")

// JoinCodeRepository handles class join code data access.
type JoinCodeRepository struct {
	pool *pgxpool.Pool
}

// NewJoinCodeRepository creates a new JoinCodeRepository.
func NewJoinCodeRepository(pool *pgxpool.Pool) *JoinCodeRepository {
	return &JoinCodeRepository{pool: pool}
}

// Create inserts a new join code.
func (r *JoinCodeRepository) Create(ctx context.Context, jc *model.JoinCode) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO class_join_codes (join_code, class_number, expiration)
		 VALUES ($1, $2, $3)`,
		jc.JoinCode, jc.ClassNumber, jc.Expiration,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return ErrUnknownClass
		}
		return err
	}
	return nil
}

// Resolve looks up an unexpired join code and returns it.
func (r *JoinCodeRepository) Resolve(ctx context.Context, code string) (*model.JoinCode, error) {
	jc := &model.JoinCode{}
	err := r.pool.QueryRow(ctx,
		`SELECT join_code, class_number, expiration
		 FROM class_join_codes
		 WHERE join_code = $1 AND expiration > CURRENT_TIMESTAMP`, code,
	).Scan(&jc.JoinCode, &jc.ClassNumber, &jc.Expiration)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrJoinCodeInvalid
		}
		return nil, err
	}
	return jc, nil
}

// DeleteExpired removes all expired join codes and reports how many.
func (r *JoinCodeRepository) DeleteExpired(ctx context.Context) (int64, error) {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM class_join_codes WHERE expiration <= CURRENT_TIMESTAMP`)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
