package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, k := range []string{"MONGO_URI", "DB_NAME", "PORT", "SCHEDULE_TIMEZONE", "MONGO_TRANSACTIONS", "MONGO_CONNECT_TIMEOUT", "APP_ENV"} {
		t.Setenv(k, "")
	}
	c := FromEnv()
	assert.Equal(t, "mongodb://localhost:27017", c.MongoURI)
	assert.Equal(t, "smart-attendance", c.DBName)
	assert.Equal(t, "8080", c.Port)
	assert.Equal(t, "Asia/Kolkata", c.Timezone)
	assert.True(t, c.Transactions)
	assert.Equal(t, 10*time.Second, c.ConnectTimeout)
	assert.False(t, c.Development())
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("SCHEDULE_TIMEZONE", "Europe/Paris")
	t.Setenv("MONGO_TRANSACTIONS", "false")
	t.Setenv("MONGO_CONNECT_TIMEOUT", "3s")
	t.Setenv("APP_ENV", "development")
	c := FromEnv()
	assert.Equal(t, "Europe/Paris", c.Timezone)
	assert.False(t, c.Transactions)
	assert.Equal(t, 3*time.Second, c.ConnectTimeout)
	assert.True(t, c.Development())
}

func TestFromEnvIgnoresGarbage(t *testing.T) {
	t.Setenv("MONGO_TRANSACTIONS", "maybe")
	t.Setenv("MONGO_CONNECT_TIMEOUT", "soon")
	c := FromEnv()
	assert.True(t, c.Transactions)
	assert.Equal(t, 10*time.Second, c.ConnectTimeout)
}
