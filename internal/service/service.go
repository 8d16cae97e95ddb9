package service

import (
	"context"
	"errors"
	"io"

	"github.com/google/uuid"

	"lucky_wheel/internal/model"
	"lucky_wheel/pkg/wheel"
)

var (
	ErrInvalidCredentials = errors.New("invalid login or password")
	ErrNoResult           = errors.New("no finished spin yet")
	ErrUnknownField       = errors.New("unknown segment field")
)

// WheelService hosts one wheel: its segment set, its spin engine and the
// journal of prizes it handed out.
type WheelService interface {
	State(ctx context.Context) model.WheelState
	Spin(ctx context.Context) (*model.SpinTicket, error)
	Layout(ctx context.Context) wheel.Layout
	RenderPNG(ctx context.Context, w io.Writer) error
	LastResult(ctx context.Context) (*model.SpinResult, error)
	History(ctx context.Context, limit int) ([]model.SpinRecord, error)
	// GetSpin looks a journaled spin up by the id handed out with its ticket.
	GetSpin(ctx context.Context, id uuid.UUID) (*model.SpinRecord, error)
	Stats(ctx context.Context) model.SpinStats

	Segments(ctx context.Context) []wheel.Segment
	AddSegment(ctx context.Context, label, color string) error
	EditSegment(ctx context.Context, edit model.SegmentEdit) error
	RemoveSegment(ctx context.Context, index int) error
	ClearSegments(ctx context.Context) error
	ResetDefaults(ctx context.Context) ([]wheel.Segment, error)
	SaveSegments(ctx context.Context) ([]wheel.Segment, error)

	// Close stops journaling and waits for pending journal writes.
	Close(ctx context.Context) error
}

type AuthService interface {
	Login(ctx context.Context, creds model.Credentials) (*model.AuthData, error)
}
