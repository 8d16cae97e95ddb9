package env

import (
	"fmt"
	"os"
	"time"

	"lucky_wheel/internal/config"
)

const (
	accessTokenKeyEnvName      = "ACCESS_TOKEN"
	accessTokenDurationEnvName = "ACCESS_TOKEN_DURATION"

	defaultAccessTokenDuration = time.Hour
)

type jwtConfig struct {
	accessTokenSecretKey string
	accessTokenDuration  time.Duration
}

func NewJWTConfig() (config.JWTConfig, error) {
	accessToken := os.Getenv(accessTokenKeyEnvName)
	if len(accessToken) == 0 {
		return nil, fmt.Errorf("access token secret key not found")
	}

	accessTokenDurationParsed := defaultAccessTokenDuration
	if accessTokenDuration := os.Getenv(accessTokenDurationEnvName); len(accessTokenDuration) != 0 {
		d, err := time.ParseDuration(accessTokenDuration)
		if err != nil {
			return nil, fmt.Errorf("invalid access token duration: %w", err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("access token duration must be positive, got %s", d)
		}
		accessTokenDurationParsed = d
	}

	return &jwtConfig{
		accessTokenSecretKey: accessToken,
		accessTokenDuration:  accessTokenDurationParsed,
	}, nil
}

func (j *jwtConfig) AccessTokenSecretKey() []byte {
	return []byte(j.accessTokenSecretKey)
}

func (j *jwtConfig) AccessTokenDuration() time.Duration {
	return j.accessTokenDuration
}
