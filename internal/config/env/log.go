package env

import (
	"fmt"
	"os"
	"strconv"

	"lucky_wheel/internal/config"
)

const logDebugEnvName = "LOG_DEBUG"

type logConfig struct {
	debug bool
}

func NewLogConfig() (config.LogConfig, error) {
	raw := os.Getenv(logDebugEnvName)
	if len(raw) == 0 {
		return &logConfig{}, nil
	}
	debug, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", logDebugEnvName, err)
	}
	return &logConfig{debug: debug}, nil
}

func (cfg *logConfig) Debug() bool {
	return cfg.debug
}
