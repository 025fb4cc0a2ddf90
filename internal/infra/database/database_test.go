package database

import (
	"testing"

	"github.com/alurafood/payments/internal/infra/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialector(t *testing.T) {
	t.Run("postgres", func(t *testing.T) {
		d, err := Dialector(&config.DatabaseConfig{Driver: config.DriverPostgres, Host: "localhost", Port: 5432})
		require.NoError(t, err)
		assert.Equal(t, "postgres", d.Name())
	})

	t.Run("mysql", func(t *testing.T) {
		d, err := Dialector(&config.DatabaseConfig{Driver: config.DriverMySQL, Host: "localhost", Port: 3306})
		require.NoError(t, err)
		assert.Equal(t, "mysql", d.Name())
	})

	t.Run("memory has no dialector", func(t *testing.T) {
		_, err := Dialector(&config.DatabaseConfig{Driver: config.DriverMemory})
		assert.Error(t, err)
	})
}
