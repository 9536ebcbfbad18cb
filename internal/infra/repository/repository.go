package repository

import (
	"errors"

	"peershare/internal/infra"

	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres error codes worth distinguishing upstream.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

func classifyPgErr(msg string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return infra.WrapRepoErr(msg, err, infra.KindDuplicateKey)
		case pgForeignKeyViolation:
			return infra.WrapRepoErr(msg, err, infra.KindForeignKeyViolated)
		}
	}
	return infra.WrapRepoErr(msg, err)
}
