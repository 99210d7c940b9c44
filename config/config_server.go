package config

import (
	"errors"
	"net"
	"os"
)

type serverConfig struct {
	Transport string `yaml:"transport"`

	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

func (c *Config) registerServer(f *configFile) error {
	transport := f.Server.Transport

	if val, ok := os.LookupEnv("MCP_TRANSPORT"); ok {
		transport = val
	}

	switch transport {
	case "":

	case "stdio", "http":
		c.Transport = transport

	default:
		return errors.New("unsupported transport: " + transport)
	}

	host := f.Server.Host

	if val, ok := os.LookupEnv("MCP_HOST"); ok {
		host = val
	}

	port := f.Server.Port

	if val, ok := os.LookupEnv("MCP_PORT"); ok {
		port = val
	}

	if host != "" || port != "" {
		if port == "" {
			port = "8080"
		}

		c.Address = net.JoinHostPort(host, port)
	}

	return nil
}
