package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, isUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("timeout")))
}

func TestIsForeignKeyViolation(t *testing.T) {
	assert.True(t, isForeignKeyViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isForeignKeyViolation(errors.New("23503")))
}

func TestIsInvalidText(t *testing.T) {
	assert.True(t, isInvalidText(fmt.Errorf("get sale: %w", &pgconn.PgError{Code: "22P02"})))
	assert.False(t, isInvalidText(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isInvalidText(errors.New("22P02")))
}

type errRow struct{ err error }

func (r errRow) Scan(...any) error { return r.err }

func scanName(r rowScanner) (*string, error) {
	var name string
	if err := r.Scan(&name); err != nil {
		return nil, err
	}
	return &name, nil
}

func TestOne_IDMalFormadoEsAusente(t *testing.T) {
	v, err := one(errRow{&pgconn.PgError{Code: "22P02", Message: `invalid input syntax for type uuid: "abc"`}}, scanName)
	assert.NoError(t, err)
	assert.Nil(t, v)

	v, err = one(errRow{pgx.ErrNoRows}, scanName)
	assert.NoError(t, err)
	assert.Nil(t, v)

	_, err = one(errRow{errors.New("conn closed")}, scanName)
	assert.Error(t, err)
}

func TestLikePattern_EscapaComodines(t *testing.T) {
	assert.Equal(t, "%pão%", likePattern("pão"))
	assert.Equal(t, `%50\%\_off%`, likePattern("50%_off"))
}
