package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSQLiteDSN(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"conduit.db", "conduit.db?_foreign_keys=on"},
		{"file:x?mode=memory", "file:x?mode=memory&_foreign_keys=on"},
		{"conduit.db?_fk=1", "conduit.db?_fk=1"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SQLiteDSN(tt.in))
	}
}

func TestBuildDSN(t *testing.T) {
	c := &PostgresConfig{Username: "conduit", Password: "pw", Database: "conduit"}
	setDefaults(c)
	assert.Equal(t, "host=localhost user=conduit password=pw dbname=conduit port=5432 sslmode=disable", buildDSN(c))
}
