package wheel_test

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"lucky_wheel/internal/model"
	"lucky_wheel/internal/repository"
	"lucky_wheel/internal/repository/spin_repo"
	"lucky_wheel/internal/repository/stats_repo"
	"lucky_wheel/internal/service"
	wheelServ "lucky_wheel/internal/service/wheel"
	"lucky_wheel/pkg/clock"
	"lucky_wheel/pkg/wheel"
)

const frame = 16 * time.Millisecond

type testConfig struct {
	defaults []wheel.DefaultItem
}

func (c testConfig) Geometry() wheel.Geometry        { return wheel.DefaultGeometry(200, 200) }
func (c testConfig) FontSize() float64               { return 12 }
func (c testConfig) SpinDuration() time.Duration     { return wheel.DefaultDuration }
func (c testConfig) Revolutions() (float64, float64) { return 5, 10 }
func (c testConfig) FrameInterval() time.Duration    { return frame }
func (c testConfig) Palette() []string               { return wheel.DefaultPalette }
func (c testConfig) Defaults() []wheel.DefaultItem {
	if c.defaults != nil {
		return c.defaults
	}
	return wheel.DefaultItems
}

type failingRepo struct {
	repository.SpinRepository
}

func (failingRepo) Create(context.Context, *model.SpinRecord) error {
	return errors.New("db down")
}

type fixture struct {
	serv  service.WheelService
	clock *clock.Manual
	spins repository.SpinRepository
	logs  *observer.ObservedLogs
}

func newFixture(t *testing.T, spins repository.SpinRepository) *fixture {
	t.Helper()
	if spins == nil {
		spins = spin_repo.NewMemorySpinRepository(0)
	}
	core, logs := observer.New(zap.DebugLevel)
	clk := clock.NewManual(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))

	s, err := wheelServ.NewWheelService(wheelServ.Deps{
		Cfg:       testConfig{},
		Clock:     clk,
		RNG:       wheel.NewSeededRNG(11),
		TxManager: repository.NopTxManager{},
		SpinRepo:  spins,
		StatsRepo: stats_repo.NewStatsRepository(0),
		Log:       zap.New(core).Sugar(),
	})
	require.NoError(t, err)
	return &fixture{serv: s, clock: clk, spins: spins, logs: logs}
}

// finish runs the spin to the end and waits until it is journaled.
func (f *fixture) finish(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	f.clock.RunFrames(frame, 1000)
	last, err := f.serv.LastResult(ctx)
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		_, err := f.serv.GetSpin(ctx, last.SpinID)
		return err == nil
	}, time.Second, time.Millisecond)
}

func TestWheelService_StartsWithDefaults(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	segs := f.serv.Segments(ctx)
	require.Len(t, segs, 16)
	for i, s := range segs {
		require.Equal(t, wheel.DefaultPalette[i], s.Color)
	}

	st := f.serv.State(ctx)
	require.False(t, st.Spinning)
	require.Equal(t, 16, st.SegmentCount)
	require.Zero(t, st.Rotation)
	require.Nil(t, st.LastResult)

	_, err := f.serv.LastResult(ctx)
	require.ErrorIs(t, err, service.ErrNoResult)
}

func TestWheelService_SpinLifecycle(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	segs := f.serv.Segments(ctx)

	ticket, err := f.serv.Spin(ctx)
	require.NoError(t, err)
	require.True(t, ticket.Started)
	require.NotEqual(t, uuid.Nil, ticket.SpinID)

	st := f.serv.State(ctx)
	require.True(t, st.Spinning)
	require.Equal(t, ticket.SpinID, st.CurrentSpinID)
	require.Equal(t, ticket.TargetRotation, st.TargetRotation)

	again, err := f.serv.Spin(ctx)
	require.NoError(t, err)
	require.False(t, again.Started)
	require.Equal(t, ticket.SpinID, again.SpinID)
	require.Equal(t, ticket.TargetRotation, again.TargetRotation)

	f.finish(t)

	st = f.serv.State(ctx)
	require.False(t, st.Spinning)
	require.Equal(t, ticket.TargetRotation, st.Rotation)
	require.Equal(t, uuid.Nil, st.CurrentSpinID)

	want, idx, err := wheel.Resolve(ticket.TargetRotation, segs)
	require.NoError(t, err)

	last, err := f.serv.LastResult(ctx)
	require.NoError(t, err)
	require.Equal(t, ticket.SpinID, last.SpinID)
	require.Equal(t, want.Label, last.Label)
	require.Equal(t, want.Color, last.Color)
	require.Equal(t, idx, last.Index)
	require.Equal(t, st.LastResult, last)

	history, err := f.serv.History(ctx, 0)
	require.NoError(t, err)
	require.Len(t, history, 1)
	require.Equal(t, ticket.SpinID, history[0].ID)
	require.Equal(t, want.Label, history[0].Label)
	require.Equal(t, 16, history[0].SegmentCount)
	require.Equal(t, 4*time.Second, history[0].FinishedAt.Sub(history[0].StartedAt))

	stats := f.serv.Stats(ctx)
	require.Equal(t, 1, stats.TotalSpins)

	finished := f.logs.FilterMessage("spin finished").All()
	require.Len(t, finished, 1)
	require.Equal(t, want.Label, finished[0].ContextMap()["label"])
}

func TestWheelService_RotationCarriesOver(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	_, err := f.serv.Spin(ctx)
	require.NoError(t, err)
	f.finish(t)
	first := f.serv.State(ctx).Rotation

	require.NoError(t, f.serv.AddSegment(ctx, "Bonus", "#123456"))
	require.Equal(t, first, f.serv.State(ctx).Rotation, "editing never resets the rotation")

	ticket, err := f.serv.Spin(ctx)
	require.NoError(t, err)
	require.GreaterOrEqual(t, ticket.TargetRotation, first+5*360)
	f.finish(t)

	history, err := f.serv.History(ctx, 10)
	require.NoError(t, err)
	require.Len(t, history, 2)
	require.Equal(t, ticket.SpinID, history[0].ID)
	require.Equal(t, 17, history[0].SegmentCount)
}

func TestWheelService_EditsRejectedWhileSpinning(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	_, err := f.serv.Spin(ctx)
	require.NoError(t, err)

	require.ErrorIs(t, f.serv.AddSegment(ctx, "X", "#FFFFFF"), wheel.ErrInvalidState)
	require.ErrorIs(t, f.serv.RemoveSegment(ctx, 0), wheel.ErrInvalidState)
	require.ErrorIs(t, f.serv.ClearSegments(ctx), wheel.ErrInvalidState)
	require.ErrorIs(t, f.serv.EditSegment(ctx, model.SegmentEdit{Index: 0, Field: model.SegmentFieldLabel, Value: "Y"}), wheel.ErrInvalidState)
	_, err = f.serv.ResetDefaults(ctx)
	require.ErrorIs(t, err, wheel.ErrInvalidState)
	require.Len(t, f.serv.Segments(ctx), 16)

	f.finish(t)
	require.NoError(t, f.serv.AddSegment(ctx, "X", "#FFFFFF"))
}

func TestWheelService_SpinEmptyWheel(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	require.NoError(t, f.serv.ClearSegments(ctx))
	_, err := f.serv.Spin(ctx)
	require.ErrorIs(t, err, wheel.ErrEmptySet)

	st := f.serv.State(ctx)
	require.False(t, st.Spinning)
	require.Equal(t, uuid.Nil, st.CurrentSpinID)
	require.Equal(t, 0, f.clock.Pending())
}

func TestWheelService_EditSegment(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	require.NoError(t, f.serv.EditSegment(ctx, model.SegmentEdit{Index: 3, Field: model.SegmentFieldLabel, Value: "  Grand Prize "}))
	require.NoError(t, f.serv.EditSegment(ctx, model.SegmentEdit{Index: 3, Field: model.SegmentFieldColor, Value: "#ABCDEF"}))
	require.Equal(t, wheel.Segment{Label: "Grand Prize", Color: "#ABCDEF"}, f.serv.Segments(ctx)[3])

	err := f.serv.EditSegment(ctx, model.SegmentEdit{Index: 3, Field: "size", Value: "big"})
	require.ErrorIs(t, err, service.ErrUnknownField)

	err = f.serv.EditSegment(ctx, model.SegmentEdit{Index: 99, Field: model.SegmentFieldLabel, Value: "X"})
	require.ErrorIs(t, err, wheel.ErrIndexOutOfRange)

	err = f.serv.EditSegment(ctx, model.SegmentEdit{Index: 0, Field: model.SegmentFieldColor, Value: "red"})
	require.ErrorIs(t, err, wheel.ErrInvalidColor)
}

func TestWheelService_AddRemoveClearSave(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	require.NoError(t, f.serv.ClearSegments(ctx))
	require.ErrorIs(t, f.serv.AddSegment(ctx, "Win", "red"), wheel.ErrInvalidColor)
	require.Empty(t, f.serv.Segments(ctx))

	require.NoError(t, f.serv.AddSegment(ctx, "Win", "#00FF00"))
	_, err := f.serv.SaveSegments(ctx)
	require.ErrorIs(t, err, wheel.ErrTooFewSegments)

	require.NoError(t, f.serv.AddSegment(ctx, "Lose", "#FF0000"))
	saved, err := f.serv.SaveSegments(ctx)
	require.NoError(t, err)
	require.Len(t, saved, 2)

	require.ErrorIs(t, f.serv.RemoveSegment(ctx, 2), wheel.ErrIndexOutOfRange)
	require.NoError(t, f.serv.RemoveSegment(ctx, 0))
	require.Equal(t, []wheel.Segment{{Label: "Lose", Color: "#FF0000"}}, f.serv.Segments(ctx))
}

func TestWheelService_ResetDefaults(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	require.NoError(t, f.serv.ClearSegments(ctx))
	segs, err := f.serv.ResetDefaults(ctx)
	require.NoError(t, err)
	require.Len(t, segs, 16)
	require.Equal(t, segs, f.serv.Segments(ctx))
}

func TestWheelService_Layout(t *testing.T) {
	f := newFixture(t, nil)
	l := f.serv.Layout(context.Background())

	require.Len(t, l.Sectors, 16)
	require.Equal(t, 70.0, l.OuterRadius)
}

func TestWheelService_RenderPNG(t *testing.T) {
	f := newFixture(t, nil)

	var buf bytes.Buffer
	require.NoError(t, f.serv.RenderPNG(context.Background(), &buf))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, 200, img.Bounds().Dx())
}

func TestWheelService_HistoryLimit(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := f.serv.Spin(ctx)
		require.NoError(t, err)
		f.finish(t)
	}

	history, err := f.serv.History(ctx, 2)
	require.NoError(t, err)
	require.Len(t, history, 2)

	history, err = f.serv.History(ctx, 1000)
	require.NoError(t, err)
	require.Len(t, history, 3)
}

func TestWheelService_JournalFailureIsLogged(t *testing.T) {
	f := newFixture(t, failingRepo{})
	ctx := context.Background()

	_, err := f.serv.Spin(ctx)
	require.NoError(t, err)
	f.clock.RunFrames(frame, 1000)
	require.NoError(t, f.serv.Close(ctx))

	_, err = f.serv.LastResult(ctx)
	require.NoError(t, err, "the result stands even when the journal write fails")
	require.Len(t, f.logs.FilterMessage("failed to journal spin").All(), 1)
}

type blockingRepo struct {
	repository.SpinRepository
	release chan struct{}
}

func (r blockingRepo) Create(context.Context, *model.SpinRecord) error {
	<-r.release
	return nil
}

func TestWheelService_CloseWaitsForJournal(t *testing.T) {
	repo := blockingRepo{release: make(chan struct{})}
	f := newFixture(t, repo)
	ctx := context.Background()

	_, err := f.serv.Spin(ctx)
	require.NoError(t, err)
	f.clock.RunFrames(frame, 1000)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	require.ErrorIs(t, f.serv.Close(cancelled), context.Canceled)

	close(repo.release)
	require.NoError(t, f.serv.Close(ctx))
}

func TestWheelService_GetSpin(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	ticket, err := f.serv.Spin(ctx)
	require.NoError(t, err)
	f.finish(t)

	last, err := f.serv.LastResult(ctx)
	require.NoError(t, err)

	rec, err := f.serv.GetSpin(ctx, ticket.SpinID)
	require.NoError(t, err)
	require.Equal(t, ticket.SpinID, rec.ID)
	require.Equal(t, last.Label, rec.Label)
	require.Equal(t, last.Index, rec.SegmentIndex)

	_, err = f.serv.GetSpin(ctx, uuid.New())
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestWheelService_SpinAfterCloseIsNotJournaled(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	ticket, err := f.serv.Spin(ctx)
	require.NoError(t, err)
	require.NoError(t, f.serv.Close(ctx))
	f.clock.RunFrames(frame, 1000)
	require.NoError(t, f.serv.Close(ctx))

	last, err := f.serv.LastResult(ctx)
	require.NoError(t, err)
	require.Equal(t, ticket.SpinID, last.SpinID)

	_, err = f.serv.GetSpin(ctx, ticket.SpinID)
	require.ErrorIs(t, err, repository.ErrNotFound)
	require.Len(t, f.logs.FilterMessage("service closed, spin not journaled").All(), 1)
}
