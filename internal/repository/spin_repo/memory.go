package spin_repo

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"lucky_wheel/internal/model"
	"lucky_wheel/internal/repository"
)

// defaultMemoryCapacity bounds the in-memory journal; the oldest records are
// dropped first.
const defaultMemoryCapacity = 1000

type memoryRepo struct {
	mtx      sync.RWMutex
	capacity int
	records  []model.SpinRecord
	byID     map[uuid.UUID]int
	offset   int
}

// NewMemorySpinRepository returns a journal that lives in process memory.
// Non-positive capacity selects the default.
func NewMemorySpinRepository(capacity int) repository.SpinRepository {
	if capacity <= 0 {
		capacity = defaultMemoryCapacity
	}
	return &memoryRepo{
		capacity: capacity,
		byID:     make(map[uuid.UUID]int),
	}
}

func (r *memoryRepo) Create(_ context.Context, rec *model.SpinRecord) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, ok := r.byID[rec.ID]; ok {
		return fmt.Errorf("spin %s already recorded", rec.ID)
	}

	r.records = append(r.records, *rec)
	r.byID[rec.ID] = r.offset + len(r.records) - 1

	if len(r.records) > r.capacity {
		delete(r.byID, r.records[0].ID)
		r.records = r.records[1:]
		r.offset++
	}
	return nil
}

func (r *memoryRepo) Get(_ context.Context, id uuid.UUID) (*model.SpinRecord, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	pos, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	rec := r.records[pos-r.offset]
	return &rec, nil
}

func (r *memoryRepo) List(_ context.Context, limit int) ([]model.SpinRecord, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	n := min(max(limit, 0), len(r.records))
	out := make([]model.SpinRecord, 0, n)
	for i := len(r.records) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, r.records[i])
	}
	return out, nil
}
