package postgres

import (
	"errors"
	"fmt"

	"yelpcamp/pkg/storage"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// wrapWriteErr wraps err with msg, translating unique violations into
// storage.ErrDuplicate so callers can react without knowing about pg codes.
func wrapWriteErr(err error, msg string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return fmt.Errorf("%s: %w: %s", msg, storage.ErrDuplicate, pgErr.ConstraintName)
	}

	return fmt.Errorf("%s: %w", msg, err)
}
