package e

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapError(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "no rows", err: pgx.ErrNoRows, want: ErrNotFound},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, want: ErrUniqueViolation},
		{name: "check violation", err: &pgconn.PgError{Code: "23514"}, want: ErrInvalidInput},
		{name: "other pg error", err: &pgconn.PgError{Code: "40001"}, want: ErrInternal},
		{name: "deadline", err: context.DeadlineExceeded, want: ErrDeadline},
		{name: "canceled", err: context.Canceled, want: ErrCanceled},
		{name: "unknown", err: errors.New("boom"), want: ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := WrapError(ctx, "op", tt.err)
			assert.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), "op: ")
		})
	}
}

func TestWrapError_Nil(t *testing.T) {
	assert.NoError(t, WrapError(context.Background(), "op", nil))
}
