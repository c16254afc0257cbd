package repository

import (
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// uuidSlice normalizes a nil slice to an empty one so array columns never
// store NULL.
func uuidSlice(ids []uuid.UUID) []uuid.UUID {
	if ids == nil {
		return []uuid.UUID{}
	}
	return ids
}
