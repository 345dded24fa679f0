package repository

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestMapUserInsertError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{"duplicate user name", &pgconn.PgError{Code: "23505"}, ErrDuplicateUserName},
		{"missing default class", &pgconn.PgError{Code: "23503"}, ErrUnknownClass},
	}

	for _, tt := range tests {
		if got := mapUserInsertError(tt.in); !errors.Is(got, tt.want) {
			t.Errorf("%s: mapUserInsertError = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestMapUserInsertErrorPassesThroughUnknownErrors(t *testing.T) {
	boom := errors.New("connection reset")
	if got := mapUserInsertError(boom); !errors.Is(got, boom) {
		t.Fatalf("mapUserInsertError = %v, want the original error", got)
	}

	other := &pgconn.PgError{Code: "42601"}
	if got := mapUserInsertError(other); !errors.Is(got, other) {
		t.Fatalf("mapUserInsertError = %v, want the original pg error", got)
	}
}
