package postgres

import (
	"fmt"
	"testing"

	"checkin/internal/infra/persistence/model"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueConstraintViolation(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueConstraintViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.True(t, isUniqueConstraintViolation(errors.Wrap(&pgconn.PgError{Code: "23505"}, "create")))
	assert.False(t, isUniqueConstraintViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueConstraintViolation(errors.New("boom")))
}

func TestIsConstraintViolation(t *testing.T) {
	named := &pgconn.PgError{Code: "23505", ConstraintName: model.CheckInUniqueIndex}
	other := &pgconn.PgError{Code: "23505", ConstraintName: "checkins_pkey"}

	assert.True(t, isConstraintViolation(named, model.CheckInUniqueIndex))
	assert.False(t, isConstraintViolation(other, model.CheckInUniqueIndex))
	assert.True(t, isConstraintViolation(gorm.ErrDuplicatedKey, model.CheckInUniqueIndex))
	assert.False(t, isConstraintViolation(errors.New("boom"), model.CheckInUniqueIndex))
}

func TestOtherConstraintViolations(t *testing.T) {
	assert.True(t, isForeignKeyConstraintViolation(&pgconn.PgError{Code: "23503"}))
	assert.True(t, isForeignKeyConstraintViolation(gorm.ErrForeignKeyViolated))
	assert.True(t, isNotNullConstraintViolation(&pgconn.PgError{Code: "23502"}))
	assert.True(t, isCheckConstraintViolation(&pgconn.PgError{Code: "23514"}))
	assert.False(t, isNotNullConstraintViolation(errors.New("null value")))
}
