package config

import (
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("ANALYTICS_TIMEZONE", "")
	t.Setenv("JWT_PRIVATE_KEY", "")
	t.Setenv("JWT_PUBLIC_KEY", "")
	t.Setenv("CORS_ALLOW_ORIGINS", "")

	cfg := Load()

	assert.Equal(t, "UTC", cfg.Analytics.Timezone)
	assert.Equal(t, time.UTC.String(), cfg.Analytics.Location.String())
	assert.Equal(t, 5*time.Minute, cfg.Analytics.CacheTTL)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowOrigins)
	assert.False(t, cfg.Security.CookieSecure)
	assert.NotNil(t, cfg.JWT.PrivateKey)
	assert.NotNil(t, cfg.JWT.PublicKey)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("ANALYTICS_TIMEZONE", "Europe/Berlin")
	t.Setenv("ANALYTICS_CACHE_TTL", "90s")
	t.Setenv("RATE_LIMIT_BURST", "7")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("COOKIE_SECURE", "true")

	cfg := Load()

	assert.Equal(t, "Europe/Berlin", cfg.Analytics.Location.String())
	assert.Equal(t, 90*time.Second, cfg.Analytics.CacheTTL)
	assert.Equal(t, 7, cfg.Security.RateLimitBurst)
	assert.True(t, cfg.Redis.Enabled)
	assert.True(t, cfg.Security.CookieSecure)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSAllowOrigins)
}

func TestEnvHelpers_FallBackOnGarbage(t *testing.T) {
	t.Setenv("CFG_TEST_INT", "seven")
	t.Setenv("CFG_TEST_BOOL", "maybe")
	t.Setenv("CFG_TEST_DURATION", "soon")

	assert.Equal(t, 3, getIntEnv("CFG_TEST_INT", 3))
	assert.True(t, getBoolEnv("CFG_TEST_BOOL", true))
	assert.Equal(t, time.Second, getDurationEnv("CFG_TEST_DURATION", time.Second))
	assert.Equal(t, "fallback", getEnv("CFG_TEST_MISSING", "fallback"))
}

func TestDatabaseConfig_DSN(t *testing.T) {
	pg := DatabaseConfig{Driver: "postgres", Host: "db", Port: "5432", User: "u", Password: "p", Name: "cashflow", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=cashflow sslmode=disable", pg.DSN())
	assert.Equal(t, "postgres://u:p@db:5432/cashflow?sslmode=disable", pg.MigrationURL())

	lite := DatabaseConfig{Driver: "sqlite", Name: "/tmp/cashflow.db"}
	assert.Equal(t, "/tmp/cashflow.db", lite.DSN())
}

func TestLoadKeysFromEnvVars(t *testing.T) {
	privateKey, publicKey, err := GenerateRSAKeyPair()
	require.NoError(t, err)

	privatePEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(privateKey)})
	publicDER, err := x509.MarshalPKIXPublicKey(publicKey)
	require.NoError(t, err)
	publicPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: publicDER})

	cfg := &Config{}
	gotPrivate, gotPublic, err := cfg.loadKeysFromEnvVars(
		base64.StdEncoding.EncodeToString(privatePEM),
		base64.StdEncoding.EncodeToString(publicPEM),
	)
	require.NoError(t, err)
	assert.True(t, privateKey.Equal(gotPrivate))
	assert.True(t, publicKey.Equal(gotPublic))

	_, _, err = cfg.loadKeysFromEnvVars("not base64!", "")
	assert.Error(t, err)
}

func TestLoadJWTKeys_RequiredInProduction(t *testing.T) {
	t.Setenv("JWT_PRIVATE_KEY", "")
	t.Setenv("JWT_PUBLIC_KEY", "")

	cfg := &Config{Server: ServerConfig{Environment: "production"}}
	_, _, err := cfg.loadJWTKeys()
	assert.Error(t, err)
}
