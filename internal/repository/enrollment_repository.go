package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/classforge/classroom-backend/internal/model"
)

var (
	ErrAlreadyEnrolled = errors.New("user is already enrolled in this class")
	ErrUnknownClass    = errors.New("class does not exist")
	ErrNotEnrolled     = errors.New("user is not enrolled in this class")
	ErrUnknownUser     = errors.New("no user with this user name")
)

// EnrollmentRepository handles user_class data access.
type EnrollmentRepository struct {
	pool *pgxpool.Pool
}

// NewEnrollmentRepository creates a new EnrollmentRepository.
func NewEnrollmentRepository(pool *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{pool: pool}
}

// enroll inserts one user_class row on any Execer (pool or open tx).
func enroll(ctx context.Context, db Execer, userID int, classNumber string, isInstructor bool) error {
	_, err := db.Exec(ctx,
		`INSERT INTO user_class (user_id, class_number, is_instructor)
		 VALUES ($1, $2, $3)`,
		userID, classNumber, isInstructor,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return ErrAlreadyEnrolled
			case "23503":
				return ErrUnknownClass
			}
		}
		return err
	}
	return nil
}

// DefaultEnrollmentHook returns the after-create hook that enrolls every
// new user into the default class as a regular participant. It runs inside
// the user-creation transaction, so an enrollment failure (e.g. the default
// class is missing) aborts the user creation as well.
//
// Register this hook only when the database trigger is not installed:
// both mechanisms at once would collide on the user_class primary key.
func DefaultEnrollmentHook() UserCreateHook {
	return func(ctx context.Context, tx Execer, u *model.User) error {
		return enroll(ctx, tx, u.ID, model.DefaultClassNumber, model.DefaultIsInstructor)
	}
}

// Add enrolls a user into a class by ID.
func (r *EnrollmentRepository) Add(ctx context.Context, userID int, classNumber string, isInstructor bool) error {
	return enroll(ctx, r.pool, userID, classNumber, isInstructor)
}

// AddByUserName enrolls a user into a class by their user name.
func (r *EnrollmentRepository) AddByUserName(ctx context.Context, userName, classNumber string, isInstructor bool) error {
	tag, err := r.pool.Exec(ctx,
		`INSERT INTO user_class (user_id, class_number, is_instructor)
		 SELECT id, $1, $2 FROM users
		 WHERE user_name = $3`,
		classNumber, isInstructor, userName,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return ErrAlreadyEnrolled
			case "23503":
				return ErrUnknownClass
			}
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUnknownUser
	}
	return nil
}

// ListForUser retrieves all enrollments of a user.
func (r *EnrollmentRepository) ListForUser(ctx context.Context, userID int) ([]model.Enrollment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT user_id, class_number, is_instructor
		 FROM user_class WHERE user_id = $1 ORDER BY class_number`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var enrollments []model.Enrollment
	for rows.Next() {
		var e model.Enrollment
		if err := rows.Scan(&e.UserID, &e.ClassNumber, &e.IsInstructor); err != nil {
			return nil, err
		}
		enrollments = append(enrollments, e)
	}
	return enrollments, rows.Err()
}

// ListRoster retrieves all enrollments of a class joined with user names,
// instructors first.
func (r *EnrollmentRepository) ListRoster(ctx context.Context, classNumber string) ([]model.RosterEntry, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT uc.user_id, u.user_name, u.first_name, u.last_name, uc.is_instructor
		 FROM user_class uc
		 JOIN users u ON u.id = uc.user_id
		 WHERE uc.class_number = $1
		 ORDER BY uc.is_instructor DESC, u.user_name`, classNumber)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roster []model.RosterEntry
	for rows.Next() {
		var e model.RosterEntry
		if err := rows.Scan(&e.UserID, &e.UserName, &e.FirstName, &e.LastName, &e.IsInstructor); err != nil {
			return nil, err
		}
		roster = append(roster, e)
	}
	return roster, rows.Err()
}

// IsInstructor reports whether the user holds the instructor flag in the
// given class.
func (r *EnrollmentRepository) IsInstructor(ctx context.Context, userID int, classNumber string) (bool, error) {
	var isInstructor bool
	err := r.pool.QueryRow(ctx,
		`SELECT is_instructor FROM user_class
		 WHERE user_id = $1 AND class_number = $2`, userID, classNumber,
	).Scan(&isInstructor)
	if err != nil {
		return false, err
	}
	return isInstructor, nil
}

// Remove deletes a user's enrollment in a class and reports whether the
// removed row carried the instructor flag.
func (r *EnrollmentRepository) Remove(ctx context.Context, userID int, classNumber string) (bool, error) {
	var isInstructor bool
	err := r.pool.QueryRow(ctx,
		`DELETE FROM user_class WHERE user_id = $1 AND class_number = $2
		 RETURNING is_instructor`,
		userID, classNumber,
	).Scan(&isInstructor)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, ErrNotEnrolled
		}
		return false, err
	}
	return isInstructor, nil
}
