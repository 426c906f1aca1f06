package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestClassify_NilError(t *testing.T) {
	c := NewPostgresErrorClassifier()
	if got := c.Classify(nil); got != NonRetryable {
		t.Errorf("expected NonRetryable for nil error, got %v", got)
	}
}

func TestClassify_NonPostgresError(t *testing.T) {
	c := NewPostgresErrorClassifier()
	if got := c.Classify(errors.New("plain error")); got != NonRetryable {
		t.Errorf("expected NonRetryable for non-postgres error, got %v", got)
	}
}

func TestClassify_WrappedPgError(t *testing.T) {
	c := NewPostgresErrorClassifier()
	err := fmt.Errorf("unexpected DB error: %w", &pgconn.PgError{Code: pgerrcode.DeadlockDetected})
	if got := c.Classify(err); got != Retryable {
		t.Errorf("expected Retryable for wrapped deadlock, got %v", got)
	}
}

func TestClassifyPgError(t *testing.T) {
	tests := []struct {
		name string
		code string
		want ErrorClassification
	}{
		{"connection exception", pgerrcode.ConnectionException, Retryable},
		{"connection does not exist", pgerrcode.ConnectionDoesNotExist, Retryable},
		{"connection failure", pgerrcode.ConnectionFailure, Retryable},
		{"serialization failure", pgerrcode.SerializationFailure, Retryable},
		{"deadlock detected", pgerrcode.DeadlockDetected, Retryable},
		{"cannot connect now", pgerrcode.CannotConnectNow, Retryable},
		{"unique violation", pgerrcode.UniqueViolation, NonRetryable},
		{"foreign key violation", pgerrcode.ForeignKeyViolation, NonRetryable},
		{"check violation", pgerrcode.CheckViolation, NonRetryable},
		{"value too long", pgerrcode.StringDataRightTruncationDataException, NonRetryable},
		{"insufficient privilege", pgerrcode.InsufficientPrivilege, NonRetryable},
		{"syntax error", pgerrcode.SyntaxError, NonRetryable},
		{"unknown code", "XX000", NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyPgError(&pgconn.PgError{Code: tt.code})
			if got != tt.want {
				t.Errorf("ClassifyPgError(%s) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}
