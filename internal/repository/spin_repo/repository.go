package spin_repo

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"lucky_wheel/internal/model"
	"lucky_wheel/internal/repository"
)

const (
	table           = "wheel_spins"
	colID           = "id"
	colLabel        = "label"
	colSegmentIndex = "segment_index"
	colColor        = "color"
	colFinalAngle   = "final_angle"
	colSegmentCount = "segment_count"
	colStartedAt    = "started_at"
	colFinishedAt   = "finished_at"
)

var columns = []string{colID, colLabel, colSegmentIndex, colColor, colFinalAngle, colSegmentCount, colStartedAt, colFinishedAt}

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

// NewSpinRepository returns the PostgreSQL journal. Queries join the
// transaction carried by ctx when there is one.
func NewSpinRepository(dbc *pgxpool.Pool) repository.SpinRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

func (r *repo) Create(ctx context.Context, rec *model.SpinRecord) error {
	query := sq.Insert(table).
		Columns(columns...).
		Values(rec.ID, rec.Label, rec.SegmentIndex, rec.Color, rec.FinalAngle, rec.SegmentCount, rec.StartedAt, rec.FinishedAt).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return fmt.Errorf("insert spin %s: %w", rec.ID, err)
	}
	return nil
}

func (r *repo) Get(ctx context.Context, id uuid.UUID) (*model.SpinRecord, error) {
	query := sq.Select(columns...).
		From(table).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rec, err := scanRecord(r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return rec, nil
}

func (r *repo) List(ctx context.Context, limit int) ([]model.SpinRecord, error) {
	query := sq.Select(columns...).
		From(table).
		OrderBy(colFinishedAt + " DESC").
		Limit(uint64(max(limit, 0))).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.SpinRecord, 0, limit)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rec)
	}
	return out, rows.Err()
}

func scanRecord(row pgx.Row) (*model.SpinRecord, error) {
	var rec model.SpinRecord
	err := row.Scan(
		&rec.ID,
		&rec.Label,
		&rec.SegmentIndex,
		&rec.Color,
		&rec.FinalAngle,
		&rec.SegmentCount,
		&rec.StartedAt,
		&rec.FinishedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
