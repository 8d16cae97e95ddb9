package env

import (
	"errors"
	"os"
	"strings"

	"lucky_wheel/internal/config"
)

const (
	operatorLoginEnvName        = "OPERATOR_LOGIN"
	operatorPasswordHashEnvName = "OPERATOR_PASSWORD_HASH"
)

type operatorConfig struct {
	login        string
	passwordHash string
}

func NewOperatorConfig() (config.OperatorConfig, error) {
	login := strings.TrimSpace(os.Getenv(operatorLoginEnvName))
	if len(login) == 0 {
		return nil, errors.New("operator login not found")
	}

	hash := os.Getenv(operatorPasswordHashEnvName)
	if len(hash) == 0 {
		return nil, errors.New("operator password hash not found")
	}
	// bcrypt hashes carry a $2a$/$2b$/$2y$ prefix
	if !strings.HasPrefix(hash, "$2") {
		return nil, errors.New("operator password hash is not a bcrypt hash")
	}

	return &operatorConfig{
		login:        login,
		passwordHash: hash,
	}, nil
}

func (cfg *operatorConfig) Login() string {
	return cfg.login
}

func (cfg *operatorConfig) PasswordHash() string {
	return cfg.passwordHash
}
