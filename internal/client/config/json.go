package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/ymxu/resumefill/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Intervals
// are specified in whole seconds.
type JsonConfig struct {
	AgentEndpointAddr   string `json:"agent_endpoint_addr"`
	DatabaseDSN         string `json:"database_dsn"`
	OnlineCheckInterval int    `json:"online_check_interval"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c or -config flag via flagx.JsonConfigFlags; when
// neither is given, nothing is loaded. Read or unmarshal errors panic
// (caller should recover if desired).
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

	if jc.AgentEndpointAddr != "" {
		cfg.AgentEndpointAddr = jc.AgentEndpointAddr
	}
	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.OnlineCheckInterval > 0 {
		cfg.OnlineCheckInterval = time.Duration(jc.OnlineCheckInterval) * time.Second
	}
}
