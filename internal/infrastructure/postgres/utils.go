package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5"
)

// isNoRows verifica se a consulta não devolveu linhas.
func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
