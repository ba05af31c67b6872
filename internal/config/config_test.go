package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"casino-server/internal/util"
)

func TestInstance(t *testing.T) {
	clear1 := util.SetEnv("CASINO_CONFIG_FILE", "testdata/config.yaml")
	defer clear1()
	clear2 := util.SetEnv("CASINO_LOG_LEVEL", "warn")
	defer clear2()

	a := assert.New(t)
	a.NoError(Load())
	cfg := Instance()
	a.Equal(":8080", cfg.Addr)
	a.Equal("json", cfg.Log.Format)
	a.Equal([]string{"http://localhost:3000"}, cfg.CORS.AllowedOrigins)

	// env override beats the file value
	a.Equal("warn", cfg.Log.Level)

	// ensure that it's only loaded once
	_ = os.Setenv("CASINO_LOG_LEVEL", "error")
	// ensure we aren't using a pointer
	cfg.Log.Level = "bad"
	cfg = Instance()
	a.Equal("warn", cfg.Log.Level)
}

func TestLoad_missingFileUsesDefaults(t *testing.T) {
	clear := util.SetEnv("CASINO_CONFIG_FILE", "testdata/does-not-exist.yaml")
	defer clear()

	a := assert.New(t)
	a.NoError(Load())
	cfg := Instance()
	a.Equal(":5000", cfg.Addr)
	a.Equal("info", cfg.Log.Level)
	a.Equal("text", cfg.Log.Format)
	a.Empty(cfg.CORS.AllowedOrigins)
}
