package services

import (
	"errors"

	mysql "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrNotFound           = errors.New("not_found")
	ErrValidation         = errors.New("validation")
	ErrSlotUnavailable    = errors.New("slot_unavailable")
	ErrDuplicateUsername  = errors.New("duplicate_username")
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrInvalidSession     = errors.New("invalid_session")
)

// isDuplicateKeyError detects unique violations from any configured driver.
func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var merr *mysql.MySQLError
	return errors.As(err, &merr) && merr.Number == 1062
}
