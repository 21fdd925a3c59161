package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "1.00", cfg.Transfer.MinimumAmount.StringFixed(2))
	assert.Equal(t, "zero", cfg.Fee.Strategy)
	assert.Equal(t, "0.01", cfg.Fee.ServiceFeePercentage.String())
	assert.True(t, cfg.ServiceWindow.Enabled)
	assert.Equal(t, "05:59", cfg.ServiceWindow.Begin)
	assert.Equal(t, "21:59", cfg.ServiceWindow.End)
	assert.Equal(t, 100, cfg.RateLimit.MaxRequests)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, 25, cfg.DB.MaxOpenConns)
	assert.Empty(t, cfg.DB.Url)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DATABASE_URL", "postgres://user:secret@db:5432/bank")
	t.Setenv("DATABASE_AUTO_MIGRATE", "true")
	t.Setenv("MEMORY_ACCOUNTS", "A123:1000.00,C456:250.50")
	t.Setenv("TRANSFER_MINIMUM_AMOUNT", "10.00")
	t.Setenv("FEE_STRATEGY", "flat")
	t.Setenv("FEE_FLAT_AMOUNT", "5.00")
	t.Setenv("SERVICE_WINDOW_ENABLED", "false")
	t.Setenv("SERVICE_WINDOW_TIMEZONE", "Asia/Bangkok")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "postgres://user:secret@db:5432/bank", cfg.DB.Url)
	assert.True(t, cfg.DB.AutoMigrate)
	assert.Equal(t, map[string]string{"A123": "1000.00", "C456": "250.50"}, cfg.Memory.Accounts)
	assert.Equal(t, "10.00", cfg.Transfer.MinimumAmount.StringFixed(2))
	assert.Equal(t, "flat", cfg.Fee.Strategy)
	assert.Equal(t, "5.00", cfg.Fee.FlatAmount.StringFixed(2))
	assert.False(t, cfg.ServiceWindow.Enabled)
	assert.Equal(t, "Asia/Bangkok", cfg.ServiceWindow.TimeZone)
	assert.Equal(t, 30*time.Second, cfg.RateLimit.Window)
}

func TestLoad_InvalidDecimal(t *testing.T) {
	t.Setenv("TRANSFER_MINIMUM_AMOUNT", "ten")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_EnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env.test")
	require.NoError(t, os.WriteFile(path, []byte("FEE_STRATEGY=percentage\n"), 0o600))
	t.Chdir(dir)
	// godotenv does not override variables that are already set; register
	// the key with t.Setenv so it is restored after the test.
	t.Setenv("FEE_STRATEGY", "")
	require.NoError(t, os.Unsetenv("FEE_STRATEGY"))

	cfg, err := Load(".env.test")
	require.NoError(t, err)
	assert.Equal(t, "percentage", cfg.Fee.Strategy)
}

func TestFindEnvFile(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".env.find"), nil, 0o600))
	t.Chdir(nested)

	found, err := FindEnvFile(".env.find")
	require.NoError(t, err)
	want, err := filepath.EvalSymlinks(filepath.Join(root, ".env.find"))
	require.NoError(t, err)
	got, err := filepath.EvalSymlinks(found)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = FindEnvFile(".env.does-not-exist")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMaskValue(t *testing.T) {
	assert.Equal(t, "", maskValue(""))
	assert.Equal(t, "****", maskValue("secret"))
	assert.Equal(t, "po****bank", maskValue("postgres://user:secret@db/bank"))
}
