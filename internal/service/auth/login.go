package auth

import (
	"context"
	"crypto/subtle"
	"fmt"

	"lucky_wheel/internal/model"
	"lucky_wheel/internal/service"
	"lucky_wheel/pkg/pass"
	"lucky_wheel/pkg/token"
)

// Login checks the operator credentials and issues an access token for the
// segment editor. There is a single operator, configured from the environment.
func (s *serv) Login(_ context.Context, creds model.Credentials) (*model.AuthData, error) {
	loginOK := subtle.ConstantTimeCompare([]byte(creds.Login), []byte(s.operatorCfg.Login())) == 1
	// bcrypt runs whatever the login was.
	passOK := pass.VerifyPassword(s.operatorCfg.PasswordHash(), creds.Password)
	if !loginOK || !passOK {
		s.log.Warnw("operator login rejected", "login", creds.Login)
		return nil, service.ErrInvalidCredentials
	}

	accessToken, err := token.GenerateAccessToken(
		creds.Login,
		s.jwtConfig.AccessTokenSecretKey(),
		s.jwtConfig.AccessTokenDuration())
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	s.log.Infow("operator logged in", "login", creds.Login)
	return &model.AuthData{AccessToken: accessToken}, nil
}
