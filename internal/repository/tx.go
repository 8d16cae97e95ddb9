package repository

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

// NopTxManager runs fn directly. It stands in for the pgx manager when the
// journal lives in memory.
type NopTxManager struct{}

var _ trm.Manager = NopTxManager{}

func (NopTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (NopTxManager) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
