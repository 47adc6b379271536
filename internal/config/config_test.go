package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cf, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "8001", cf.Port)
	assert.Equal(t, DriverMongo, cf.StoreDriver)
	assert.Equal(t, "4242", cf.AdminPin)
	assert.Equal(t, "logs/orders.txt", cf.OrderLogFile)
	assert.Equal(t, []string{"*"}, cf.AllowedOrigins())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(file, []byte("ADMIN_PIN=1111\nDB_NAME=from_file\n"), 0o644))
	t.Setenv("ADMIN_PIN", "9999")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test ,")

	cf, err := Load(file)
	require.NoError(t, err)

	assert.Equal(t, "9999", cf.AdminPin)
	assert.Equal(t, "from_file", cf.DBName)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cf.AllowedOrigins())
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("STORE_DRIVER", "postgres")

	_, err := Load("")
	assert.Error(t, err)
}

func TestMySQL_DSN(t *testing.T) {
	m := MySQL{User: "u", Password: "p", Host: "db", Port: "3306", Database: "shop"}
	assert.Equal(t, "u:p@tcp(db:3306)/shop?charset=utf8mb4&parseTime=True&loc=Local", m.DSN())
}
