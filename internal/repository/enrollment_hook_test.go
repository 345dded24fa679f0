package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/classforge/classroom-backend/internal/model"
)

// fakeExecer records every Exec call and returns a canned result.
type fakeExecer struct {
	sql  []string
	args [][]any
	err  error
}

func (f *fakeExecer) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	f.sql = append(f.sql, sql)
	f.args = append(f.args, arguments)
	if f.err != nil {
		return pgconn.CommandTag{}, f.err
	}
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func TestDefaultEnrollmentHookInsertsDefaultClass(t *testing.T) {
	fake := &fakeExecer{}
	hook := DefaultEnrollmentHook()

	user := &model.User{ID: 42, UserName: "jdoe"}
	if err := hook(context.Background(), fake, user); err != nil {
		t.Fatalf("hook returned error: %v", err)
	}

	if len(fake.sql) != 1 {
		t.Fatalf("hook ran %d statements, want exactly 1", len(fake.sql))
	}
	args := fake.args[0]
	if len(args) != 3 {
		t.Fatalf("hook bound %d arguments, want 3", len(args))
	}
	if args[0] != 42 {
		t.Errorf("user_id argument = %v, want 42", args[0])
	}
	if args[1] != model.DefaultClassNumber {
		t.Errorf("class_number argument = %v, want %q", args[1], model.DefaultClassNumber)
	}
	if args[2] != model.DefaultIsInstructor {
		t.Errorf("is_instructor argument = %v, want %v", args[2], model.DefaultIsInstructor)
	}
}

func TestDefaultEnrollmentHookConstants(t *testing.T) {
	if model.DefaultClassNumber != "CSCI1001" {
		t.Errorf("DefaultClassNumber = %q, want %q", model.DefaultClassNumber, "CSCI1001")
	}
	if model.DefaultIsInstructor != false {
		t.Error("DefaultIsInstructor = true, want false")
	}
}

func TestDefaultEnrollmentHookPropagatesFailure(t *testing.T) {
	fake := &fakeExecer{err: &pgconn.PgError{Code: "23503"}}
	hook := DefaultEnrollmentHook()

	err := hook(context.Background(), fake, &model.User{ID: 7})
	if !errors.Is(err, ErrUnknownClass) {
		t.Fatalf("hook error = %v, want ErrUnknownClass", err)
	}
}

func TestEnrollMapsDuplicateKey(t *testing.T) {
	fake := &fakeExecer{err: &pgconn.PgError{Code: "23505"}}

	err := enroll(context.Background(), fake, 1, "CSCI1001", false)
	if !errors.Is(err, ErrAlreadyEnrolled) {
		t.Fatalf("enroll error = %v, want ErrAlreadyEnrolled", err)
	}
}

func TestEnrollPassesThroughUnknownErrors(t *testing.T) {
	boom := errors.New("connection reset")
	fake := &fakeExecer{err: boom}

	err := enroll(context.Background(), fake, 1, "CSCI1001", true)
	if !errors.Is(err, boom) {
		t.Fatalf("enroll error = %v, want the original error", err)
	}
}
