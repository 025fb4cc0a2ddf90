package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, "payments", cfg.Database.Database)
	assert.Equal(t, TransportHTTP, cfg.OrderService.Transport)
	assert.Equal(t, uint32(5), cfg.OrderService.Breaker.FailureThreshold)
	assert.Equal(t, 10*time.Second, cfg.HTTPClient.ResponseTimeout)
	assert.Equal(t, "admin", cfg.Auth.AdminRole)
	assert.False(t, cfg.Auth.Enabled)
	assert.Equal(t, 24*time.Hour, cfg.Idempotency.TTL)
	assert.Equal(t, "payments", cfg.Metrics.Namespace)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PAYMENTS_DATABASE_DRIVER", "memory")
	t.Setenv("PAYMENTS_ORDER_SERVICE_TRANSPORT", "kafka")
	t.Setenv("PAYMENTS_KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")
	t.Setenv("PAYMENTS_DB_PASSWORD", "s3cret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverMemory, cfg.Database.Driver)
	assert.Equal(t, TransportKafka, cfg.OrderService.Transport)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.OrderService.Kafka.Brokers)
	assert.Equal(t, "s3cret", cfg.Database.Password)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Database:     DatabaseConfig{Driver: DriverMemory},
			OrderService: OrderServiceConfig{Transport: TransportNone},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"unknown driver", func(c *Config) { c.Database.Driver = "sqlite" }, true},
		{"http without url", func(c *Config) { c.OrderService.Transport = TransportHTTP }, true},
		{"kafka without brokers", func(c *Config) { c.OrderService.Transport = TransportKafka }, true},
		{"unknown transport", func(c *Config) { c.OrderService.Transport = "grpc" }, true},
		{"auth without secret", func(c *Config) { c.Auth.Enabled = true }, true},
		{"unknown server mode", func(c *Config) { c.Server.Mode = "verbose" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	t.Run("postgres", func(t *testing.T) {
		cfg := DatabaseConfig{Driver: DriverPostgres, Host: "db", Port: 5432, User: "u", Database: "payments", SSLMode: "disable", Password: "p"}
		assert.Equal(t, "host=db port=5432 user=u dbname=payments sslmode=disable password=p", cfg.DSN())
	})

	t.Run("mysql", func(t *testing.T) {
		cfg := DatabaseConfig{Driver: DriverMySQL, Host: "db", Port: 3306, User: "u", Password: "p", Database: "payments"}
		assert.Equal(t, "u:p@tcp(db:3306)/payments?charset=utf8mb4&parseTime=True&loc=UTC", cfg.DSN())
	})
}
