package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	defer func() { GlobalConfig = nil }()

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, "adm_loja", cfg.Database.DBName)
	assert.Equal(t, "utf8mb4", cfg.Database.Charset)
	assert.True(t, cfg.Database.TLS)
	assert.True(t, cfg.Seed.DefaultUsers)
	assert.False(t, cfg.Backup.Enabled)
	assert.Equal(t, "0 3 * * *", cfg.Backup.Schedule)

	// expire_hours padrão vira duração
	assert.Equal(t, 24, cfg.JWT.ExpireHours)
	assert.Equal(t, cfg.JWT.ExpireTime.Hours(), float64(cfg.JWT.ExpireHours))
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("LIVROCAIXA_DATABASE_PASSWORD", "segredo-env")
	t.Setenv("LIVROCAIXA_SERVER_MODE", "debug")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	defer func() { GlobalConfig = nil }()

	assert.Equal(t, "segredo-env", cfg.Database.Password)
	assert.Equal(t, "debug", cfg.Server.Mode)
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database.password")

	cfg.Database.Password = "x"
	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jwt.secret")

	cfg.JWT.Secret = "y"
	assert.NoError(t, cfg.Validate())
}

func TestSafeErrorMessage(t *testing.T) {
	fallback := "operação falhou"
	testErr := errors.New("internal database error")

	// err nil devolve o fallback
	assert.Equal(t, fallback, SafeErrorMessage(nil, fallback))

	// modo release não expõe detalhes
	GlobalConfig = &Config{Server: ServerConfig{Mode: "release"}}
	defer func() { GlobalConfig = nil }()
	assert.Equal(t, fallback, SafeErrorMessage(testErr, fallback))

	// modo debug devolve err.Error()
	GlobalConfig = &Config{Server: ServerConfig{Mode: "debug"}}
	assert.Equal(t, "internal database error", SafeErrorMessage(testErr, fallback))

	// GlobalConfig nil é tratado como ambiente de desenvolvimento
	GlobalConfig = nil
	assert.Equal(t, "internal database error", SafeErrorMessage(testErr, fallback))
}
