package statestore

import (
	"context"
	"errors"
	"time"

	"bulk-cleanup/internal/domain/record"
	"bulk-cleanup/internal/infra/kvstore"
	"bulk-cleanup/internal/pkg/errs"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// PendingIDRepository stores each kind's pending IDs as a roaring bitmap, so
// the sequence is unique and ascending. Emptied sequences drop their key.
type PendingIDRepository struct {
	store kvstore.Store
	ttl   time.Duration
}

func NewPendingIDRepository(store kvstore.Store, ttl time.Duration) *PendingIDRepository {
	return &PendingIDRepository{store: store, ttl: ttl}
}

func (r *PendingIDRepository) load(ctx context.Context, kind record.Kind) (*roaring64.Bitmap, error) {
	if !kind.IsValid() {
		return nil, record.ErrInvalidKind
	}
	bm := roaring64.New()
	data, err := r.store.Get(ctx, pendingKey(kind))
	if errors.Is(err, kvstore.ErrNotFound) {
		return bm, nil
	}
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStateStoreFailed)
	}
	if err := bm.UnmarshalBinary(data); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "decode pending "+kind.String()), errs.ErrStateStoreFailed)
	}
	return bm, nil
}

func (r *PendingIDRepository) save(ctx context.Context, kind record.Kind, bm *roaring64.Bitmap) error {
	if bm.IsEmpty() {
		if err := r.store.Delete(ctx, pendingKey(kind)); err != nil {
			return errs.Mark(err, errs.ErrStateStoreFailed)
		}
		return nil
	}
	data, err := bm.MarshalBinary()
	if err != nil {
		return errs.Wrap(err, "encode pending "+kind.String())
	}
	if err := r.store.Set(ctx, pendingKey(kind), data, r.ttl); err != nil {
		return errs.Mark(err, errs.ErrStateStoreFailed)
	}
	return nil
}

func (r *PendingIDRepository) Append(ctx context.Context, kind record.Kind, ids []int64) error {
	bm, err := r.load(ctx, kind)
	if err != nil {
		return err
	}
	bm.AddMany(toUint64(ids))
	return r.save(ctx, kind, bm)
}

func (r *PendingIDRepository) Peek(ctx context.Context, kind record.Kind, n int) ([]int64, error) {
	bm, err := r.load(ctx, kind)
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		return []int64{}, nil
	}

	ids := make([]int64, 0, min(uint64(n), bm.GetCardinality()))
	it := bm.Iterator()
	for it.HasNext() && len(ids) < n {
		ids = append(ids, int64(it.Next()))
	}
	return ids, nil
}

func (r *PendingIDRepository) Remove(ctx context.Context, kind record.Kind, ids []int64) (int, error) {
	bm, err := r.load(ctx, kind)
	if err != nil {
		return 0, err
	}
	for _, id := range ids {
		bm.Remove(uint64(id))
	}
	if err := r.save(ctx, kind, bm); err != nil {
		return 0, err
	}
	return int(bm.GetCardinality()), nil
}

func (r *PendingIDRepository) Count(ctx context.Context, kind record.Kind) (int, error) {
	bm, err := r.load(ctx, kind)
	if err != nil {
		return 0, err
	}
	return int(bm.GetCardinality()), nil
}

func (r *PendingIDRepository) Clear(ctx context.Context) error {
	keys := make([]string, 0, len(record.Kinds))
	for _, kind := range record.Kinds {
		keys = append(keys, pendingKey(kind))
	}
	if err := r.store.Delete(ctx, keys...); err != nil {
		return errs.Mark(err, errs.ErrStateStoreFailed)
	}
	return nil
}

func toUint64(ids []int64) []uint64 {
	out := make([]uint64, 0, len(ids))
	for _, id := range ids {
		if id > 0 {
			out = append(out, uint64(id))
		}
	}
	return out
}
