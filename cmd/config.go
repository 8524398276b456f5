package cmd

import (
	"fmt"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds the settings read from the configuration file.
//
//	base_url = "https://www.ishares.com"
//	browser = true
//	cookie = "..."
//	[headers]
//	"Accept-Language" = "en-US"
type Config struct {
	BaseURL string
	Browser bool              // send the browser headers
	Cookie  string            // cookie sent with the browser headers
	Headers map[string]string // sent verbatim with every request
}

// LoadConfig reads the TOML configuration file at path.
// An empty path is an empty configuration.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}
	// header names may contain dots but never slashes.
	k := koanf.New("/")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return cfg, fmt.Errorf("error loading file %s: %w", path, err)
	}
	cfg.BaseURL = k.String("base_url")
	cfg.Browser = k.Bool("browser")
	cfg.Cookie = k.String("cookie")
	cfg.Headers = k.StringMap("headers")
	return cfg, nil
}

// loadConfig reads the configuration file named by the -config flag.
func loadConfig() (Config, error) { return LoadConfig(*configFile) }
