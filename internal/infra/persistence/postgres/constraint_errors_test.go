package postgres

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintViolationDetection(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		unique     bool
		foreignKey bool
		notNull    bool
	}{
		{name: "nil", err: nil},
		{name: "translated duplicate", err: errors.Wrap(gorm.ErrDuplicatedKey, "insert"), unique: true},
		{
			name:   "raw duplicate",
			err:    errors.New(`ERROR: duplicate key value violates unique constraint "idx_users_email" (SQLSTATE 23505)`),
			unique: true,
		},
		{name: "translated foreign key", err: gorm.ErrForeignKeyViolated, foreignKey: true},
		{
			name:       "raw foreign key",
			err:        errors.New(`ERROR: insert or update on table "orders" violates foreign key constraint (SQLSTATE 23503)`),
			foreignKey: true,
		},
		{
			name:    "not null",
			err:     errors.New(`ERROR: null value in column "name" violates not-null constraint (SQLSTATE 23502)`),
			notNull: true,
		},
		{name: "unrelated", err: errors.New("connection refused")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.unique, isUniqueConstraintViolation(tt.err))
			assert.Equal(t, tt.foreignKey, isForeignKeyConstraintViolation(tt.err))
			assert.Equal(t, tt.notNull, isNotNullConstraintViolation(tt.err))
		})
	}
}
