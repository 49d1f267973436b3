package postgres

import (
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintViolationHelpers(t *testing.T) {
	wrap := func(code string) error {
		return fmt.Errorf("insert failed: %w", &pgconn.PgError{Code: code})
	}

	tests := []struct {
		name       string
		err        error
		unique     bool
		foreignKey bool
		notNull    bool
		check      bool
	}{
		{name: "unique violation", err: wrap(pgerrcode.UniqueViolation), unique: true},
		{name: "gorm duplicated key", err: gorm.ErrDuplicatedKey, unique: true},
		{name: "foreign key violation", err: wrap(pgerrcode.ForeignKeyViolation), foreignKey: true},
		{name: "not null violation", err: wrap(pgerrcode.NotNullViolation), notNull: true},
		{name: "check violation", err: wrap(pgerrcode.CheckViolation), check: true},
		{name: "gorm check violation", err: gorm.ErrCheckConstraintViolated, check: true},
		{name: "unrelated error", err: errors.New("connection reset")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.unique, isUniqueConstraintViolation(tt.err))
			assert.Equal(t, tt.foreignKey, isForeignKeyConstraintViolation(tt.err))
			assert.Equal(t, tt.notNull, isNotNullConstraintViolation(tt.err))
			assert.Equal(t, tt.check, isCheckConstraintViolation(tt.err))
		})
	}
}
