package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"lucky_wheel/internal/model"
	"lucky_wheel/internal/service"
	"lucky_wheel/internal/service/auth"
	"lucky_wheel/pkg/token"
)

type operatorCfg struct{ login, hash string }

func (c operatorCfg) Login() string        { return c.login }
func (c operatorCfg) PasswordHash() string { return c.hash }

type jwtCfg struct{}

func (jwtCfg) AccessTokenSecretKey() []byte       { return []byte("test-secret") }
func (jwtCfg) AccessTokenDuration() time.Duration { return time.Minute }

func newService(t *testing.T) service.AuthService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("spin-it"), bcrypt.MinCost)
	require.NoError(t, err)
	return auth.NewAuthService(operatorCfg{login: "booth", hash: string(hash)}, jwtCfg{}, nil)
}

func TestLogin(t *testing.T) {
	s := newService(t)

	data, err := s.Login(context.Background(), model.Credentials{Login: "booth", Password: "spin-it"})
	require.NoError(t, err)

	claims, err := token.VerifyToken(data.AccessToken, jwtCfg{}.AccessTokenSecretKey())
	require.NoError(t, err)
	require.Equal(t, "booth", claims.Subject)
}

func TestLogin_Rejected(t *testing.T) {
	s := newService(t)
	cases := []model.Credentials{
		{Login: "booth", Password: "wrong"},
		{Login: "intruder", Password: "spin-it"},
		{Login: "", Password: ""},
	}
	for _, c := range cases {
		_, err := s.Login(context.Background(), c)
		require.ErrorIs(t, err, service.ErrInvalidCredentials, "%+v", c)
	}
}
