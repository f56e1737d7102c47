package testutils

import (
	"testing"

	"github.com/alicebob/miniredis/v2"

	"terminal-terrace/conduit/internal/database"
	dbPkg "terminal-terrace/conduit/packages/database"
)

// SetupTestRedis 启动 miniredis 并设置全局 database.RedisDB
func SetupTestRedis(t *testing.T) (*dbPkg.RedisClient, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)

	client, err := dbPkg.InitRedis(&dbPkg.RedisConfig{
		ServiceName: "conduit-test",
		Addr:        mr.Addr(),
	})
	if err != nil {
		t.Fatalf("Failed to connect to miniredis: %v", err)
	}

	database.RedisDB = client
	t.Cleanup(func() {
		database.RedisDB = nil
		_ = client.Close()
	})

	return client, mr
}
