package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv retire les variables lues par Load; t.Setenv restaure les valeurs à la fin du test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		EnvAppEnv, EnvLocation,
		EnvStockCoke, EnvStockSevenUp, EnvStockAppleJuice, EnvStockIcedTea,
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Nil(t, cfg.Machine.Location)
	assert.Nil(t, cfg.Machine.Stock)
}

func TestLoad_Location(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvAppEnv, "production")
	t.Setenv(EnvLocation, "Hall B")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	require.NotNil(t, cfg.Machine.Location)
	assert.Equal(t, "Hall B", *cfg.Machine.Location)
	assert.Nil(t, cfg.Machine.Stock)
}

func TestLoad_EmptyLocationIsSet(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvLocation, "")

	cfg, err := Load()
	require.NoError(t, err)

	require.NotNil(t, cfg.Machine.Location)
	assert.Equal(t, "", *cfg.Machine.Location)
}

func TestLoad_PartialStockLeavesMissingUnset(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvStockCoke, "2")
	t.Setenv(EnvStockIcedTea, "0")

	cfg, err := Load()
	require.NoError(t, err)

	stock := cfg.Machine.Stock
	require.NotNil(t, stock)
	require.NotNil(t, stock.Coke)
	assert.Equal(t, 2, *stock.Coke)
	assert.Nil(t, stock.SevenUp)
	assert.Nil(t, stock.AppleJuice)
	require.NotNil(t, stock.IcedTea)
	assert.Equal(t, 0, *stock.IcedTea)
}

func TestLoad_StockOutOfRangeIsNotValidatedHere(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvStockSevenUp, "9")

	cfg, err := Load()
	require.NoError(t, err)
	require.NotNil(t, cfg.Machine.Stock.SevenUp)
	assert.Equal(t, 9, *cfg.Machine.Stock.SevenUp)
}

func TestLoad_EmptyStockVariableIsInvalid(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvStockCoke, "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvStockCoke)
}

func TestLoad_InvalidInteger(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvStockAppleJuice, "beaucoup")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvStockAppleJuice)
}

func TestLoad_ConflictingMachineConfig(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvLocation, "Hall B")
	t.Setenv(EnvStockCoke, "1")

	_, err := Load()
	assert.ErrorIs(t, err, ErrConflictingMachineConfig)
}

func TestLoad_DotEnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("DISTRIBUTRICE_EMPLACEMENT=Gymnase\nAPP_ENV=staging\n"), 0o600))
	// godotenv écrit dans l'environnement du processus
	t.Cleanup(func() {
		os.Unsetenv(EnvLocation)
		os.Unsetenv(EnvAppEnv)
	})

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "staging", cfg.Env)
	require.NotNil(t, cfg.Machine.Location)
	assert.Equal(t, "Gymnase", *cfg.Machine.Location)
}

func TestLoad_EnvWinsOverDotEnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("APP_ENV=staging\n"), 0o600))
	t.Setenv(EnvAppEnv, "production")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Env)
}
