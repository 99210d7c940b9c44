package config

import (
	"errors"
	"os"

	"github.com/haldis/exa-mcp/pkg/exa"
)

type exaConfig struct {
	URL   string `yaml:"url"`
	Token string `yaml:"token"`

	Limit *int `yaml:"limit"`
}

func (c *Config) registerExa(f *configFile) error {
	token := f.Exa.Token

	if val, ok := os.LookupEnv("EXA_API_KEY"); ok {
		token = val
	}

	if token == "" {
		return errors.New("EXA_API_KEY is not set. Get your key at dashboard.exa.ai")
	}

	url := f.Exa.URL

	if val, ok := os.LookupEnv("EXA_BASE_URL"); ok {
		url = val
	}

	var options []exa.Option

	if url != "" {
		options = append(options, exa.WithURL(url))
	}

	if limiter := createLimiter(f.Exa.Limit); limiter != nil {
		options = append(options, exa.WithLimiter(limiter))
	}

	client, err := exa.New(token, options...)

	if err != nil {
		return err
	}

	c.Client = client

	return nil
}
