// Package config loads runtime configuration for the resumefill page
// agent: defaults, then an optional JSON file (-c/-config), then flags.
package config

import (
	"encoding/json"
	"flag"
	"os"

	"github.com/ymxu/resumefill/internal/flagx"
)

// Config holds runtime settings for the page agent.
//
// Fields:
//   - ListenAddr: host:port the action endpoint binds to.
//   - ChromePath: Chrome binary; empty means use the system default.
//   - UserDataDir: Chrome profile directory; empty means a throwaway one.
//   - PanelURL: page shown inside the assistant panels.
//   - Headless: run Chrome without a visible window (tests, CI).
type Config struct {
	ListenAddr  string
	ChromePath  string
	UserDataDir string
	PanelURL    string
	Headless    bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ListenAddr = "127.0.0.1:8199"
	c.PanelURL = "about:blank"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
type JsonConfig struct {
	ListenAddr  string `json:"listen_addr"`
	ChromePath  string `json:"chrome_path"`
	UserDataDir string `json:"user_data_dir"`
	PanelURL    string `json:"panel_url"`
	Headless    *bool  `json:"headless"`
}

func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ListenAddr != "" {
		cfg.ListenAddr = jc.ListenAddr
	}
	if jc.ChromePath != "" {
		cfg.ChromePath = jc.ChromePath
	}
	if jc.UserDataDir != "" {
		cfg.UserDataDir = jc.UserDataDir
	}
	if jc.PanelURL != "" {
		cfg.PanelURL = jc.PanelURL
	}
	if jc.Headless != nil {
		cfg.Headless = *jc.Headless
	}
}

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-l string   address and port to listen on
//	-b string   Chrome binary path
//	-u string   Chrome user data directory
//	-w string   assistant panel URL
//	-headless   run Chrome headless
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-l", "-b", "-u", "-w", "-headless"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ListenAddr, "l", cfg.ListenAddr, "address and port to listen on")
	fs.StringVar(&cfg.ChromePath, "b", cfg.ChromePath, "chrome binary path")
	fs.StringVar(&cfg.UserDataDir, "u", cfg.UserDataDir, "chrome user data directory")
	fs.StringVar(&cfg.PanelURL, "w", cfg.PanelURL, "assistant panel URL")
	fs.BoolVar(&cfg.Headless, "headless", cfg.Headless, "run chrome headless")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
