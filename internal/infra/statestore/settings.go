package statestore

import (
	"context"
	"encoding/json"
	"errors"
	"os"

	"bulk-cleanup/internal/domain/criteria"
	"bulk-cleanup/internal/infra/kvstore"
	"bulk-cleanup/internal/pkg/errs"

	"gopkg.in/yaml.v3"
)

// SettingsRepository persists criteria without expiry. Until something is
// saved, Load returns the seed.
type SettingsRepository struct {
	store kvstore.Store
	seed  criteria.Criteria
}

func NewSettingsRepository(store kvstore.Store, seed criteria.Criteria) *SettingsRepository {
	return &SettingsRepository{store: store, seed: seed}
}

func (r *SettingsRepository) Load(ctx context.Context) (criteria.Criteria, error) {
	data, err := r.store.Get(ctx, keySettings)
	if errors.Is(err, kvstore.ErrNotFound) {
		return r.seed, nil
	}
	if err != nil {
		return criteria.Criteria{}, errs.Mark(err, errs.ErrStateStoreFailed)
	}

	var c criteria.Criteria
	if err := json.Unmarshal(data, &c); err != nil {
		return criteria.Criteria{}, errs.Mark(errs.Wrap(err, "decode settings"), errs.ErrStateStoreFailed)
	}
	c.BatchSize = criteria.NewBatchSize(c.BatchSize.Int())
	return c, nil
}

func (r *SettingsRepository) Save(ctx context.Context, c criteria.Criteria) error {
	data, err := json.Marshal(c)
	if err != nil {
		return errs.Wrap(err, "encode settings")
	}
	if err := r.store.Set(ctx, keySettings, data, 0); err != nil {
		return errs.Mark(err, errs.ErrStateStoreFailed)
	}
	return nil
}

// LoadSeed reads initial criteria from a YAML file. An empty path yields
// criteria.Default().
func LoadSeed(path string) (criteria.Criteria, error) {
	if path == "" {
		return criteria.Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return criteria.Criteria{}, errs.Wrap(err, "read settings file")
	}
	return ParseSeed(data)
}

func ParseSeed(data []byte) (criteria.Criteria, error) {
	var in criteria.Input
	if err := yaml.Unmarshal(data, &in); err != nil {
		return criteria.Criteria{}, errs.Wrap(err, "parse settings file")
	}
	return criteria.NewCriteria(in)
}
