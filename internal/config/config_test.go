package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	unsetEnv(t, "DB_HOST", "REDIS_TTL", "MODERATOR_IDS", "DELETE_POLICY", "MAX_CONTENT_LENGTH", "SERVER_PORT")

	cfg := LoadConfig()
	assert.Equal(t, "postgres", cfg.DBHost)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, 5*time.Minute, cfg.RedisTTL)
	assert.Nil(t, cfg.ModeratorIDs)
	assert.Equal(t, "tombstone", cfg.DeletePolicy)
	assert.Equal(t, 9999, cfg.MaxContentLength)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("REDIS_TTL", "90s")
	t.Setenv("MODERATOR_IDS", " user-pm, ,user-admin ")
	t.Setenv("DELETE_POLICY", "CASCADE")
	t.Setenv("MAX_CONTENT_LENGTH", "500")

	cfg := LoadConfig()
	assert.Equal(t, 90*time.Second, cfg.RedisTTL)
	assert.Equal(t, []string{"user-pm", "user-admin"}, cfg.ModeratorIDs)
	assert.Equal(t, "cascade", cfg.DeletePolicy)
	assert.Equal(t, 500, cfg.MaxContentLength)
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	t.Setenv("REDIS_TTL", "soon")
	t.Setenv("DELETE_POLICY", "shred")
	t.Setenv("MAX_CONTENT_LENGTH", "-4")

	cfg := LoadConfig()
	assert.Equal(t, 5*time.Minute, cfg.RedisTTL)
	assert.Equal(t, "tombstone", cfg.DeletePolicy)
	assert.Equal(t, 9999, cfg.MaxContentLength)
}

func TestPostgresDSN(t *testing.T) {
	cfg := Config{DBHost: "db", DBUser: "u", DBPass: "p", DBName: "n", DBPort: "5433"}
	assert.Equal(t, "host=db user=u password=p dbname=n port=5433 sslmode=disable", cfg.PostgresDSN())
}

// unsetEnv removes keys for the duration of the test. t.Setenv registers the
// restore.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}
