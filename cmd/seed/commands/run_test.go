package commands

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"terminal-terrace/conduit/config"
)

func TestApplyFlags(t *testing.T) {
	conf := &config.AppConfig{
		Database: config.DatabaseConfig{Driver: "postgres", URL: "postgres://from-env"},
		Seed:     config.SeedConfig{BaseURL: "https://dev.to/api", Pages: 100, PerPage: 50, Interval: time.Second},
	}

	flags = runFlags{pages: 2, interval: 250 * time.Millisecond, driver: "sqlite", databaseURL: "seed.db"}
	t.Cleanup(func() { flags = runFlags{} })

	applyFlags(conf)

	assert.Equal(t, 2, conf.Seed.Pages)
	assert.Equal(t, 50, conf.Seed.PerPage)
	assert.Equal(t, 250*time.Millisecond, conf.Seed.Interval)
	assert.Equal(t, "https://dev.to/api", conf.Seed.BaseURL)
	assert.Equal(t, "sqlite", conf.Database.Driver)
	assert.Equal(t, "seed.db", conf.Database.URL)
}
