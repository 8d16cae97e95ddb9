package auth

import (
	"go.uber.org/zap"

	"lucky_wheel/internal/config"
	"lucky_wheel/internal/service"
)

type serv struct {
	operatorCfg config.OperatorConfig
	jwtConfig   config.JWTConfig
	log         *zap.SugaredLogger
}

func NewAuthService(operatorCfg config.OperatorConfig, jwtConfig config.JWTConfig, log *zap.SugaredLogger) service.AuthService {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &serv{
		operatorCfg: operatorCfg,
		jwtConfig:   jwtConfig,
		log:         log,
	}
}
