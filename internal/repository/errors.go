package repository

import (
	"errors"
	"fmt"

	"go_speak_review/internal/model"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL のエラーコードのうち、リトライで解消しうるもの
var conflictCodes = map[string]bool{
	"23505": true, // unique_violation
	"40001": true, // serialization_failure
	"40P01": true, // deadlock_detected
	"55P03": true, // lock_not_available
}

// translateError はドライバのエラーをアプリケーションのセンチネルエラーに変換します
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %v", model.ErrConflict, err)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && conflictCodes[pgErr.Code] {
		return fmt.Errorf("%w: %s (%s)", model.ErrConflict, pgErr.Message, pgErr.Code)
	}
	return err
}
