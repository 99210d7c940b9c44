package config

import (
	"bytes"
	"os"

	"github.com/haldis/exa-mcp/pkg/exa"
	"github.com/haldis/exa-mcp/pkg/tool"

	"golang.org/x/time/rate"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Address string

	// Transport is "stdio" or "http".
	Transport string

	Client *exa.Client

	Tools []tool.Provider
}

// Parse builds the configuration from an optional YAML file and the
// environment. Environment variables win when both are set.
func Parse(path string) (*Config, error) {
	file, err := parseFile(path)

	if err != nil {
		return nil, err
	}

	c := &Config{
		Address: ":8080",

		Transport: "stdio",
	}

	if err := c.registerLogger(file); err != nil {
		return nil, err
	}

	if err := c.registerServer(file); err != nil {
		return nil, err
	}

	if err := c.registerExa(file); err != nil {
		return nil, err
	}

	if err := c.registerTools(file); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Config) Close() {
	if c.Client != nil {
		c.Client.Close()
	}
}

type configFile struct {
	Log logConfig `yaml:"log"`

	Server serverConfig `yaml:"server"`

	Exa exaConfig `yaml:"exa"`
}

func parseFile(path string) (*configFile, error) {
	if path == "" {
		return &configFile{}, nil
	}

	data, err := os.ReadFile(path)

	if err != nil {
		return nil, err
	}

	data = []byte(os.ExpandEnv(string(data)))

	var config configFile

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func createLimiter(limit *int) *rate.Limiter {
	if limit == nil {
		return nil
	}

	return rate.NewLimiter(rate.Limit(*limit), *limit)
}
