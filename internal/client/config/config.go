package config

// Config holds runtime settings for the directory CLI.
//
// Fields:
//   - BaseURL: root of the directory service API, without a trailing slash.
//   - Verbose: enable debug-level request logging.
type Config struct {
	BaseURL string
	Verbose bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "https://reqres.in/api"
	c.Verbose = false
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
