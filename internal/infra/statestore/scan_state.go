package statestore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"bulk-cleanup/internal/domain/scan"
	"bulk-cleanup/internal/infra/kvstore"
	"bulk-cleanup/internal/pkg/errs"
	"bulk-cleanup/internal/usecase/shared"
)

// ScanStateRepository keeps the single in-progress scan under one expiring key.
type ScanStateRepository struct {
	store kvstore.Store
	ttl   time.Duration
}

func NewScanStateRepository(store kvstore.Store, ttl time.Duration) *ScanStateRepository {
	return &ScanStateRepository{store: store, ttl: ttl}
}

func (r *ScanStateRepository) Load(ctx context.Context) (*scan.State, error) {
	data, err := r.store.Get(ctx, keyScanState)
	if errors.Is(err, kvstore.ErrNotFound) {
		return nil, shared.ErrStateNotFound
	}
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStateStoreFailed)
	}

	var state scan.State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "decode scan state"), errs.ErrStateStoreFailed)
	}
	if !state.Phase.IsValid() || state.PageSize <= 0 {
		return nil, errs.Mark(scan.ErrInvalidPhase, errs.ErrStateStoreFailed)
	}
	return &state, nil
}

// Save refreshes the expiry on every write.
func (r *ScanStateRepository) Save(ctx context.Context, state *scan.State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return errs.Wrap(err, "encode scan state")
	}
	if err := r.store.Set(ctx, keyScanState, data, r.ttl); err != nil {
		return errs.Mark(err, errs.ErrStateStoreFailed)
	}
	return nil
}

func (r *ScanStateRepository) Delete(ctx context.Context) error {
	if err := r.store.Delete(ctx, keyScanState); err != nil {
		return errs.Mark(err, errs.ErrStateStoreFailed)
	}
	return nil
}
