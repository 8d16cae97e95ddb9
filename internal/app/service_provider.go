package app

import (
	"context"
	"sync"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	authAPI "lucky_wheel/internal/api/auth"
	segmentsAPI "lucky_wheel/internal/api/segments"
	wheelAPI "lucky_wheel/internal/api/wheel"
	"lucky_wheel/internal/config"
	"lucky_wheel/internal/config/env"
	"lucky_wheel/internal/logger"
	"lucky_wheel/internal/repository"
	"lucky_wheel/internal/repository/spin_repo"
	"lucky_wheel/internal/repository/stats_repo"
	"lucky_wheel/internal/service"
	"lucky_wheel/internal/service/auth"
	wheelService "lucky_wheel/internal/service/wheel"
	"lucky_wheel/pkg/clock"
	"lucky_wheel/pkg/wheel"
)

type ServiceProvider struct {
	// Logging
	logCfg config.LogConfig
	log    *zap.SugaredLogger

	// TXManager
	txManager trm.Manager

	// Database, optional
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Wheel bits
	wheelCfg  config.WheelConfig
	frameLock sync.Mutex
	ticker    *clock.Ticker
	spinRepo  repository.SpinRepository
	statsRepo repository.StatsRepository
	wheelServ service.WheelService
	wheelHand *wheelAPI.Handler
	segHand   *segmentsAPI.Handler

	// Operator auth bits
	jwtCfg      config.JWTConfig
	operatorCfg config.OperatorConfig
	authServ    service.AuthService
	authHand    *authAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) LogCfg() config.LogConfig {
	if sp.logCfg == nil {
		cfg, err := env.NewLogConfig()
		if err != nil {
			panic("failed to get log config: " + err.Error())
		}
		sp.logCfg = cfg
	}
	return sp.logCfg
}

func (sp *ServiceProvider) Logger() *zap.SugaredLogger {
	if sp.log == nil {
		if err := logger.Init(sp.LogCfg().Debug()); err != nil {
			panic("failed to init logger: " + err.Error())
		}
		sp.log = logger.Get()
	}
	return sp.log
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

// DBClient returns nil when no DSN is configured.
func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil && sp.PgConfig().DSN() != "" {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		dbc := sp.DBClient(ctx)
		if dbc == nil {
			sp.txManager = repository.NopTxManager{}
			return sp.txManager
		}

		m, err := manager.New(trmpgx.NewDefaultFactory(dbc))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}
		sp.txManager = m
	}

	return sp.txManager
}

func (sp *ServiceProvider) WheelCfg() config.WheelConfig {
	if sp.wheelCfg == nil {
		cfg, err := env.NewWheelConfigFromYAML(env.WheelConfigPath())
		if err != nil {
			panic("failed to get wheel config: " + err.Error())
		}
		sp.wheelCfg = cfg
	}
	return sp.wheelCfg
}

// Ticker is the frame clock. Its callbacks run under the same lock as the
// wheel service.
func (sp *ServiceProvider) Ticker() *clock.Ticker {
	if sp.ticker == nil {
		sp.ticker = clock.NewTicker(sp.WheelCfg().FrameInterval(), clock.WithLocker(&sp.frameLock))
	}
	return sp.ticker
}

func (sp *ServiceProvider) SpinRepository(ctx context.Context) repository.SpinRepository {
	if sp.spinRepo == nil {
		if dbc := sp.DBClient(ctx); dbc != nil {
			sp.spinRepo = spin_repo.NewSpinRepository(dbc)
		} else {
			sp.Logger().Info("PG_DSN not set, spin journal kept in memory")
			sp.spinRepo = spin_repo.NewMemorySpinRepository(0)
		}
	}
	return sp.spinRepo
}

func (sp *ServiceProvider) StatsRepository() repository.StatsRepository {
	if sp.statsRepo == nil {
		sp.statsRepo = stats_repo.NewStatsRepository(stats_repo.DefaultWindowSize)
	}
	return sp.statsRepo
}

func (sp *ServiceProvider) WheelService(ctx context.Context) service.WheelService {
	if sp.wheelServ == nil {
		s, err := wheelService.NewWheelService(wheelService.Deps{
			Cfg:       sp.WheelCfg(),
			Clock:     sp.Ticker(),
			RNG:       wheel.DefaultRNG(),
			TxManager: sp.TXManager(ctx),
			SpinRepo:  sp.SpinRepository(ctx),
			StatsRepo: sp.StatsRepository(),
			Log:       sp.Logger().Named("wheel"),
			Lock:      &sp.frameLock,
		})
		if err != nil {
			panic("failed to create wheel service: " + err.Error())
		}
		sp.wheelServ = s
	}
	return sp.wheelServ
}

func (sp *ServiceProvider) WheelHandler(ctx context.Context) *wheelAPI.Handler {
	if sp.wheelHand == nil {
		sp.wheelHand = wheelAPI.NewHandler(wheelAPI.HandlerDeps{
			Serv: sp.WheelService(ctx),
			Log:  sp.Logger(),
		})
	}
	return sp.wheelHand
}

func (sp *ServiceProvider) SegmentsHandler(ctx context.Context) *segmentsAPI.Handler {
	if sp.segHand == nil {
		sp.segHand = segmentsAPI.NewHandler(segmentsAPI.HandlerDeps{
			Serv: sp.WheelService(ctx),
			Log:  sp.Logger(),
		})
	}
	return sp.segHand
}

func (sp *ServiceProvider) JWTCfg() config.JWTConfig {
	if sp.jwtCfg == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtCfg = cfg
	}
	return sp.jwtCfg
}

func (sp *ServiceProvider) OperatorCfg() config.OperatorConfig {
	if sp.operatorCfg == nil {
		cfg, err := env.NewOperatorConfig()
		if err != nil {
			panic("failed to get operator config: " + err.Error())
		}
		sp.operatorCfg = cfg
	}
	return sp.operatorCfg
}

func (sp *ServiceProvider) AuthService() service.AuthService {
	if sp.authServ == nil {
		sp.authServ = auth.NewAuthService(sp.OperatorCfg(), sp.JWTCfg(), sp.Logger().Named("auth"))
	}
	return sp.authServ
}

func (sp *ServiceProvider) AuthHandler() *authAPI.Handler {
	if sp.authHand == nil {
		sp.authHand = authAPI.NewHandler(authAPI.HandlerDeps{
			Serv: sp.AuthService(),
			Log:  sp.Logger(),
		})
	}
	return sp.authHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		sp.router = NewRouter(RouterDeps{
			Wheel:     sp.WheelHandler(ctx),
			Segments:  sp.SegmentsHandler(ctx),
			Auth:      sp.AuthHandler(),
			SecretKey: sp.JWTCfg().AccessTokenSecretKey(),
			Log:       sp.Logger(),
		})
	}

	return sp.router
}
