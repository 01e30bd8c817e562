package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadEnvDefauts(t *testing.T) {
	cfg := LoadEnv()

	assert.Equal(t, ":8080", cfg.Server.HTTPPort)
	assert.Equal(t, "", cfg.Database.URL)
	assert.Equal(t, "./achats_local.db", cfg.Database.SQLitePath)
	assert.Equal(t, 24, cfg.JWT.TTLHours)
	assert.Equal(t, "", cfg.Redis.Addr)
	assert.Nil(t, cfg.Kafka.Brokers)
	assert.Equal(t, "commandes.events", cfg.Kafka.Topic)
}

func TestLoadEnvSurcharges(t *testing.T) {
	t.Setenv("HTTP_PORT", ":9090")
	t.Setenv("DATABASE_URL", "postgres://localhost/achats")
	t.Setenv("DB_MAX_OPEN_CONNS", "25")
	t.Setenv("LOGGER_DISABLE_STACKTRACE", "false")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")

	cfg := LoadEnv()

	assert.Equal(t, ":9090", cfg.Server.HTTPPort)
	assert.Equal(t, "postgres://localhost/achats", cfg.Database.URL)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.False(t, cfg.Logger.DisableStacktrace)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
}

func TestLoadEnvEntierInvalide(t *testing.T) {
	t.Setenv("DB_MAX_OPEN_CONNS", "beaucoup")

	cfg := LoadEnv()
	assert.Equal(t, 10, cfg.Database.MaxOpenConns)
}
