package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateParse_RoundTrip(t *testing.T) {
	tok, err := Generate("secreto", "emp-1", "manager", "paofresquim", 5)
	require.NoError(t, err)

	id, role, err := Parse("secreto", tok)
	require.NoError(t, err)
	assert.Equal(t, "emp-1", id)
	assert.Equal(t, "manager", role)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	tok, err := Generate("secreto", "emp-1", "baker", "paofresquim", 5)
	require.NoError(t, err)

	_, _, err = Parse("otro", tok)
	assert.Error(t, err)
}

func TestParse_Expirado(t *testing.T) {
	tok, err := Generate("secreto", "emp-1", "baker", "paofresquim", -1)
	require.NoError(t, err)

	_, _, err = Parse("secreto", tok)
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := Generate("", "emp-1", "baker", "paofresquim", 5)
	assert.Error(t, err)
}
