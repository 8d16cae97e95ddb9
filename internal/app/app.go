package app

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"lucky_wheel/internal/config"
	"lucky_wheel/internal/logger"
)

const (
	shutdownTimeout   = 10 * time.Second
	readHeaderTimeout = 5 * time.Second
)

type App struct {
	ServiceProvider *ServiceProvider
}

func NewApp() *App {
	return &App{}
}

func (s *App) initServiceProvider() {
	s.ServiceProvider = newServiceProvider()
}

// Run serves until SIGINT or SIGTERM, then drains requests and pending
// journal writes.
func (s *App) Run() error {
	err := config.Load(".env")
	if err != nil {
		log.Printf("Error loading .env file: %v", err)
	}
	s.initServiceProvider()
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sp := s.ServiceProvider
	lg := sp.Logger()
	r := sp.Router(ctx)

	tickerCtx, stopTicker := context.WithCancel(ctx)
	defer stopTicker()
	tickerDone := make(chan struct{})
	go func() {
		defer close(tickerDone)
		sp.Ticker().Run(tickerCtx)
	}()

	srv := &http.Server{
		Addr:              sp.HTTPCfg().Address(),
		Handler:           r,
		ErrorLog:          logger.Std(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		lg.Infow("starting server", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err = <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
	case <-ctx.Done():
		lg.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		err = srv.Shutdown(shutdownCtx)

		// No frame may finish a spin while Close waits on the journal.
		stopTicker()
		<-tickerDone
		if closeErr := sp.WheelService(ctx).Close(shutdownCtx); closeErr != nil {
			lg.Warnw("journal writes still pending at shutdown", "error", closeErr)
		}
	}

	if dbc := sp.dbClient; dbc != nil {
		dbc.Close()
	}
	return err
}
