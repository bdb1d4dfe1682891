package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/paofresquim-api/internal/cli"
	"github.com/jhoicas/paofresquim-api/internal/infrastructure/seed"
	"github.com/jhoicas/paofresquim-api/pkg/jwt"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// ─── token ──────────────────────────────────────────────────────────────────

func TestToken_EmiteTokenValido(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo")
	t.Setenv("STORE_DRIVER", "memory")

	out, err := run(t, "token", "--employee", "emp-1", "--role", "gerente")
	require.NoError(t, err)

	employeeID, role, err := jwt.Parse("segredo", strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, "emp-1", employeeID)
	assert.Equal(t, "manager", role)
}

func TestToken_SinSecreto(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("STORE_DRIVER", "memory")

	_, err := run(t, "token", "--employee", "emp-1", "--role", "baker")
	assert.Error(t, err)
}

func TestToken_CargoInvalido(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo")
	t.Setenv("STORE_DRIVER", "memory")

	_, err := run(t, "token", "--employee", "emp-1", "--role", "chef")
	assert.Error(t, err)
}

// ─── seed / migrate ─────────────────────────────────────────────────────────

func TestSeed_Memoria(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, seed.FileProducts),
		[]byte("id,nome,preco_kg\n1,Pão francês,15.90\n2,Sem preço,abc\n"), 0o600))
	t.Setenv("STORE_DRIVER", "memory")

	out, err := run(t, "seed", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "produtos")
	assert.Contains(t, out, "sin archivo")
	assert.Regexp(t, `produtos\s+1\s+1\s+ok`, out)
}

func TestMigrate_RequierePostgres(t *testing.T) {
	t.Setenv("STORE_DRIVER", "memory")

	_, err := run(t, "migrate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "postgres")
}
