package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDatabaseConfig_GetDSN(t *testing.T) {
	base := DatabaseConfig{Host: "db", Port: 3306, Username: "app", Password: "secret", Database: "relatorio"}

	mysql := base
	mysql.Driver = "mysql"
	assert.Equal(t, "app:secret@tcp(db:3306)/relatorio?charset=utf8mb4&collation=utf8mb4_unicode_ci&parseTime=true&loc=UTC", mysql.GetDSN())

	pg := base
	pg.Driver = "postgres"
	pg.Port = 5432
	assert.Contains(t, pg.GetDSN(), "host=db port=5432 user=app")

	lite := DatabaseConfig{Driver: "sqlite"}
	assert.Equal(t, "data/relatorio.db", lite.GetDSN())
	lite.SQLitePath = "/tmp/x.db"
	assert.Equal(t, "/tmp/x.db", lite.GetDSN())
}

func TestGoogleOAuthConfig_Enabled(t *testing.T) {
	assert.False(t, (&GoogleOAuthConfig{ClientID: "id"}).Enabled())
	assert.True(t, (&GoogleOAuthConfig{ClientID: "id", ClientSecret: "s"}).Enabled())
}
