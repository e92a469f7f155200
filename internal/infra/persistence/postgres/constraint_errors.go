package postgres

import (
	"checkin/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes, see https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	sqlStateUniqueViolation     = "23505"
	sqlStateForeignKeyViolation = "23503"
	sqlStateNotNullViolation    = "23502"
	sqlStateCheckViolation      = "23514"
)

func sqlState(err error) (code, constraint string) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.ConstraintName
	}

	return "", ""
}

// isUniqueConstraintViolation matches both GORM's translated error and the raw driver error.
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	code, _ := sqlState(err)

	return code == sqlStateUniqueViolation
}

// isConstraintViolation reports a unique violation on the named constraint.
// A violation reported without a constraint name is attributed to it.
func isConstraintViolation(err error, constraint string) bool {
	if !isUniqueConstraintViolation(err) {
		return false
	}
	_, name := sqlState(err)

	return name == "" || name == constraint
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	code, _ := sqlState(err)

	return code == sqlStateForeignKeyViolation
}

func isNotNullConstraintViolation(err error) bool {
	code, _ := sqlState(err)

	return code == sqlStateNotNullViolation
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}
	code, _ := sqlState(err)

	return code == sqlStateCheckViolation
}
