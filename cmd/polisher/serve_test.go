package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setServeFlags points the serve command's flag variables at the given config
// file and restores them when the test finishes.
func setServeFlags(t *testing.T, configPath string) {
	t.Helper()
	prevPort, prevConfig, prevBanks := servePort, serveConfigPath, serveBanksPath
	servePort, serveConfigPath, serveBanksPath = 0, configPath, ""
	t.Cleanup(func() {
		servePort, serveConfigPath, serveBanksPath = prevPort, prevConfig, prevBanks
	})
}

func writeServeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestBuildServeConfig_JWTSecretFromConfigFile(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("JWT_EXPIRATION_HOURS", "")
	t.Setenv("PROXY_SECRET", "")
	t.Setenv("BANKS_PATH", "")
	setServeFlags(t, writeServeConfig(t, `{"jwt_secret": "file-secret", "jwt_expiration_hours": 6}`))

	cfg, err := buildServeConfig()
	require.NoError(t, err)
	require.NotNil(t, cfg.JWTConfig)
	assert.Equal(t, "file-secret", cfg.JWTConfig.Secret)
	assert.Equal(t, 6, cfg.JWTConfig.ExpirationHours)
}

func TestBuildServeConfig_JWTExpirationDefaultsWhenFileOmitsIt(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("JWT_EXPIRATION_HOURS", "")
	t.Setenv("PROXY_SECRET", "")
	t.Setenv("BANKS_PATH", "")
	setServeFlags(t, writeServeConfig(t, `{"jwt_secret": "file-secret"}`))

	cfg, err := buildServeConfig()
	require.NoError(t, err)
	require.NotNil(t, cfg.JWTConfig)
	assert.Equal(t, 24, cfg.JWTConfig.ExpirationHours)
}

func TestBuildServeConfig_EnvOverridesConfigFile(t *testing.T) {
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("JWT_EXPIRATION_HOURS", "3")
	t.Setenv("PROXY_SECRET", "")
	t.Setenv("BANKS_PATH", "")
	setServeFlags(t, writeServeConfig(t, `{"jwt_secret": "file-secret", "jwt_expiration_hours": 6}`))

	cfg, err := buildServeConfig()
	require.NoError(t, err)
	require.NotNil(t, cfg.JWTConfig)
	assert.Equal(t, "env-secret", cfg.JWTConfig.Secret)
	assert.Equal(t, 3, cfg.JWTConfig.ExpirationHours)
}

func TestBuildServeConfig_NoSecretDisablesBearerAuth(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("JWT_EXPIRATION_HOURS", "")
	t.Setenv("PROXY_SECRET", "")
	t.Setenv("BANKS_PATH", "")
	setServeFlags(t, "")

	cfg, err := buildServeConfig()
	require.NoError(t, err)
	assert.Nil(t, cfg.JWTConfig)
	assert.Equal(t, 8080, cfg.Port)
}

func TestBuildServeConfig_RejectsBadExpirationEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("JWT_EXPIRATION_HOURS", "soon")
	setServeFlags(t, "")

	_, err := buildServeConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_EXPIRATION_HOURS")
}
