package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/classforge/classroom-backend/internal/model"
)

var ErrDuplicateClass = errors.New("class with this number already exists")

// ClassRepository handles class data access.
type ClassRepository struct {
	pool *pgxpool.Pool
}

// NewClassRepository creates a new ClassRepository.
func NewClassRepository(pool *pgxpool.Pool) *ClassRepository {
	return &ClassRepository{pool: pool}
}

// GetByNumber retrieves a class by its class number.
func (r *ClassRepository) GetByNumber(ctx context.Context, classNumber string) (*model.Class, error) {
	c := &model.Class{}
	err := r.pool.QueryRow(ctx,
		`SELECT class_number, class_description, created_at, updated_at
		 FROM classes WHERE class_number = $1`, classNumber,
	).Scan(&c.ClassNumber, &c.ClassDescription, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// List retrieves all classes.
func (r *ClassRepository) List(ctx context.Context) ([]model.Class, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT class_number, class_description, created_at, updated_at
		 FROM classes ORDER BY class_number`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var classes []model.Class
	for rows.Next() {
		var c model.Class
		if err := rows.Scan(&c.ClassNumber, &c.ClassDescription, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		classes = append(classes, c)
	}
	return classes, rows.Err()
}

// Create inserts a new class.
func (r *ClassRepository) Create(ctx context.Context, c *model.Class) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO classes (class_number, class_description)
		 VALUES ($1, $2)
		 RETURNING created_at, updated_at`,
		c.ClassNumber, c.ClassDescription,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateClass
		}
		return err
	}
	return nil
}

// Update modifies an existing class description.
func (r *ClassRepository) Update(ctx context.Context, c *model.Class) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE classes SET class_description = $1, updated_at = CURRENT_TIMESTAMP
		 WHERE class_number = $2`,
		c.ClassDescription, c.ClassNumber,
	)
	return err
}

// Delete removes a class by its number. Fails with a foreign key error
// while enrollments or join codes still reference it.
func (r *ClassRepository) Delete(ctx context.Context, classNumber string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM classes WHERE class_number = $1`, classNumber)
	return err
}
