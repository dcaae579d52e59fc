package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Common repository errors
var (
	// ErrDuplicateKey is returned when an insert collides with a unique index,
	// e.g. two first-adds racing for the same (user, day).
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrVersionConflict is returned when a daily log changed since it was loaded
	ErrVersionConflict = errors.New("daily log was modified concurrently")
)

const pgUniqueViolation = "23505"

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	// sqlite without error translation
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
