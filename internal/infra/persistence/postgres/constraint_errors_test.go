package postgres

import (
	"testing"

	"cabinet/internal/errors"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintClassification(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		unique     bool
		foreignKey bool
		notNull    bool
		check      bool
	}{
		{name: "gorm duplicated key", err: errors.Wrap(gorm.ErrDuplicatedKey, "insert"), unique: true},
		{
			name:   "raw unique violation",
			err:    errors.New(`ERROR: duplicate key value violates unique constraint "items_sku_key" (SQLSTATE 23505)`),
			unique: true,
		},
		{name: "gorm foreign key", err: gorm.ErrForeignKeyViolated, foreignKey: true},
		{
			name:    "not null",
			err:     errors.New(`ERROR: null value in column "email" violates not-null constraint (SQLSTATE 23502)`),
			notNull: true,
		},
		{
			name:  "check",
			err:   errors.New(`ERROR: new row violates check constraint "chk_stock_levels_quantity" (SQLSTATE 23514)`),
			check: true,
		},
		{name: "unrelated", err: errors.New("connection reset by peer")},
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

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `50\% saline`, escapeLike("50% saline"))
	assert.Equal(t, `a\_b\\c`, escapeLike(`a_b\c`))
}

func TestListLimit(t *testing.T) {
	assert.Equal(t, defaultListLimit, listLimit(0))
	assert.Equal(t, defaultListLimit, listLimit(-1))
	assert.Equal(t, 10, listLimit(10))
}
