package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "127.0.0.1:8199", c.ListenAddr)
	assert.Equal(t, "about:blank", c.PanelURL)
	assert.False(t, c.Headless)
}

func Test_parseJson(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := filepath.Join(t.TempDir(), "cfg.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"listen_addr": "127.0.0.1:9001",
		"chrome_path": "/usr/bin/chromium",
		"headless": true
	}`), 0o600))

	os.Args = []string{"testbin", "-c", path}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, "127.0.0.1:9001", cfg.ListenAddr)
	assert.Equal(t, "/usr/bin/chromium", cfg.ChromePath)
	assert.Equal(t, "about:blank", cfg.PanelURL)
	assert.True(t, cfg.Headless)
}

func Test_parseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"cmd", "-l", "127.0.0.1:9002", "-w", "https://panel.local", "-headless=true"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, "127.0.0.1:9002", cfg.ListenAddr)
	assert.Equal(t, "https://panel.local", cfg.PanelURL)
	assert.True(t, cfg.Headless)
}
