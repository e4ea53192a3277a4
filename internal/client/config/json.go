package config

import (
	"encoding/json"
	"os"

	"github.com/Zeldris69240/reqres-app/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Values are
// copied into the runtime Config after parsing.
type JsonConfig struct {
	BaseURL string `json:"base_url"`
	Verbose bool   `json:"verbose"`
}

// parseJson overlays Config with values loaded from a JSON file named via
// the -c or -config flags. When no file is named the function returns
// without touching cfg. Read or unmarshal errors panic; intended usage is
// defaults -> parseJson -> parseFlags, where later stages override
// earlier ones.
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

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	cfg.Verbose = jc.Verbose
}
