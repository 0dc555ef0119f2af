package services

import (
	"errors"
	"fmt"
	"testing"

	mysql "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsDuplicateKeyError(t *testing.T) {
	assert.True(t, isDuplicateKeyError(gorm.ErrDuplicatedKey))
	assert.True(t, isDuplicateKeyError(fmt.Errorf("create: %w", gorm.ErrDuplicatedKey)))
	assert.True(t, isDuplicateKeyError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}))

	assert.False(t, isDuplicateKeyError(nil))
	assert.False(t, isDuplicateKeyError(&mysql.MySQLError{Number: 1452, Message: "foreign key"}))
	assert.False(t, isDuplicateKeyError(errors.New("duplicate column name in migration")))
	assert.False(t, isDuplicateKeyError(errors.New("UNIQUE constraint on index rebuild failed")))
}
