package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// isForeignKeyViolation verifica si un error es una violación de clave foránea (23503).
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	return false
}

// isInvalidText verifica si PostgreSQL rechazó un parámetro por formato (22P02),
// por ejemplo un ID que no es UUID.
func isInvalidText(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "22P02"
	}
	return false
}

// rowScanner lo cumplen pgx.Row y pgx.CollectableRow.
type rowScanner interface {
	Scan(dest ...any) error
}

// collect recorre rows con scan y devuelve la lista (vacía, no nil, si no hay filas).
func collect[T any](rows pgx.Rows, scan func(rowScanner) (*T, error)) ([]*T, error) {
	list, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*T, error) {
		return scan(row)
	})
	if err != nil {
		if isInvalidText(err) {
			return []*T{}, nil
		}
		return nil, err
	}
	if list == nil {
		list = []*T{}
	}
	return list, nil
}

// one ejecuta un QueryRow y traduce ErrNoRows (o un ID mal formado) a (nil, nil).
func one[T any](row pgx.Row, scan func(rowScanner) (*T, error)) (*T, error) {
	v, err := scan(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidText(err) {
			return nil, nil
		}
		return nil, err
	}
	return v, nil
}

// likePattern arma el patrón para búsquedas "contiene" con ILIKE, escapando comodines.
func likePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(s) + "%"
}
