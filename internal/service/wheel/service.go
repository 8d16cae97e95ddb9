package wheel

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"lucky_wheel/internal/config"
	"lucky_wheel/internal/model"
	"lucky_wheel/internal/repository"
	"lucky_wheel/internal/service"
	"lucky_wheel/pkg/wheel"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
	journalTimeout      = 5 * time.Second
)

type Deps struct {
	Cfg       config.WheelConfig
	Clock     wheel.Clock
	RNG       wheel.RNG
	TxManager trm.Manager
	SpinRepo  repository.SpinRepository
	StatsRepo repository.StatsRepository
	Log       *zap.SugaredLogger
	// Lock serializes the service with the clock's frame callbacks. It must
	// be the locker the clock holds while firing, if it holds one.
	Lock sync.Locker
}

// activeSpin is what the host remembers about the spin in flight.
type activeSpin struct {
	id        uuid.UUID
	startedAt time.Time
	segments  []wheel.Segment
}

type serv struct {
	lock sync.Locker

	cfg       config.WheelConfig
	clock     wheel.Clock
	rng       wheel.RNG
	txManager trm.Manager
	spinRepo  repository.SpinRepository
	statsRepo repository.StatsRepository
	log       *zap.SugaredLogger

	engine  *wheel.Engine
	set     *wheel.SegmentSet
	current *activeSpin
	last    *model.SpinResult

	// journal counts in-flight writes. Add only happens under lock while
	// closed is false, so it never races the Wait in Close.
	journal sync.WaitGroup
	closed  bool
}

// NewWheelService builds the host with the stock prize list already shuffled
// onto the wheel.
func NewWheelService(deps Deps) (service.WheelService, error) {
	s := &serv{
		lock:      deps.Lock,
		cfg:       deps.Cfg,
		clock:     deps.Clock,
		rng:       deps.RNG,
		txManager: deps.TxManager,
		spinRepo:  deps.SpinRepo,
		statsRepo: deps.StatsRepo,
		log:       deps.Log,
	}
	if s.lock == nil {
		s.lock = &sync.Mutex{}
	}
	if s.rng == nil {
		s.rng = wheel.DefaultRNG()
	}
	if s.log == nil {
		s.log = zap.NewNop().Sugar()
	}

	minRev, maxRev := s.cfg.Revolutions()
	s.engine = wheel.NewEngine(s.clock, s.rng,
		wheel.WithDuration(s.cfg.SpinDuration()),
		wheel.WithRevolutions(minRev, maxRev),
		wheel.WithSink(wheel.SinkFuncs{
			OnStarted:  s.onSpinStarted,
			OnFinished: s.onSpinFinished,
		}),
	)

	set, err := wheel.GenerateDefault(s.cfg.Defaults(), s.cfg.Palette(), s.rng)
	if err != nil {
		return nil, fmt.Errorf("generate default segments: %w", err)
	}
	s.set = set

	return s, nil
}

func (s *serv) State(_ context.Context) model.WheelState {
	s.lock.Lock()
	defer s.lock.Unlock()

	st := s.engine.State()
	out := model.WheelState{
		Rotation:        st.CurrentRotation,
		DisplayRotation: wheel.DisplayRotation(st.CurrentRotation),
		TargetRotation:  st.TargetRotation,
		Spinning:        st.Spinning(),
		SegmentCount:    s.set.Len(),
	}
	if s.current != nil {
		out.CurrentSpinID = s.current.id
	}
	if s.last != nil {
		last := *s.last
		out.LastResult = &last
	}
	return out
}

func (s *serv) LastResult(_ context.Context) (*model.SpinResult, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.last == nil {
		return nil, service.ErrNoResult
	}
	last := *s.last
	return &last, nil
}

func (s *serv) History(ctx context.Context, limit int) ([]model.SpinRecord, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	limit = min(limit, maxHistoryLimit)

	records, err := s.spinRepo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list spins: %w", err)
	}
	return records, nil
}

func (s *serv) GetSpin(ctx context.Context, id uuid.UUID) (*model.SpinRecord, error) {
	rec, err := s.spinRepo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get spin %s: %w", id, err)
	}
	return rec, nil
}

func (s *serv) Stats(_ context.Context) model.SpinStats {
	return s.statsRepo.Stats()
}

// Close stops journaling new spins and waits for the writes already started.
// Spins that finish afterwards still resolve but are only logged.
func (s *serv) Close(ctx context.Context) error {
	s.lock.Lock()
	s.closed = true
	s.lock.Unlock()

	done := make(chan struct{})
	go func() {
		s.journal.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
