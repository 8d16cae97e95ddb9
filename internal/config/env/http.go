package env

import (
	"fmt"
	"net"
	"os"

	"lucky_wheel/internal/config"
)

const (
	httpAddrEnvName = "HTTP_ADDR"
	defaultHTTPAddr = ":8080"
)

type httpConfig struct {
	address string
}

func NewHTTPConfig() (config.HTTPConfig, error) {
	addr := os.Getenv(httpAddrEnvName)
	if len(addr) == 0 {
		addr = defaultHTTPAddr
	}
	if _, _, err := net.SplitHostPort(addr); err != nil {
		return nil, fmt.Errorf("invalid %s %q: %w", httpAddrEnvName, addr, err)
	}

	return &httpConfig{address: addr}, nil
}

func (cfg *httpConfig) Address() string {
	return cfg.address
}
